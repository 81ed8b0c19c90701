package resname

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNew(t *testing.T) {
	for name, tc := range map[string]struct {
		namespace, typ, entry string
		want                  string
	}{
		"degenerate": {
			want: ":/",
		},
		"typical": {
			namespace: "app",
			typ:       "string",
			entry:     "title",
			want:      "app:string/title",
		},
		"dots become underscores": {
			namespace: "app",
			typ:       "style",
			entry:     "a.b.c",
			want:      "app:style/a_b_c",
		},
		"entry is trimmed": {
			namespace: "app",
			typ:       "string",
			entry:     "  title\t",
			want:      "app:string/title",
		},
		"dotted entry is trimmed": {
			namespace: "app",
			typ:       "style",
			entry:     " Theme.Dark ",
			want:      "app:style/Theme_Dark",
		},
		"namespace and type are verbatim": {
			namespace: " com.example ",
			typ:       " string ",
			entry:     "title",
			want:      " com.example : string /title",
		},
	} {
		t.Run(name, func(t *testing.T) {
			got := New(tc.namespace, tc.typ, tc.entry).FullyQualifiedName()
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse(t *testing.T) {
	for name, tc := range map[string]struct {
		text    string
		want    Name
		wantErr string
	}{
		"degenerate": {
			wantErr: `"": not fully qualified`,
		},
		"no separators": {
			text:    "noColonOrSlash",
			wantErr: `"noColonOrSlash": not fully qualified`,
		},
		"no slash": {
			text:    "app:title",
			wantErr: `"app:title": not fully qualified`,
		},
		"slash before colon": {
			text:    "string/app:title",
			wantErr: `"string/app:title": not fully qualified`,
		},
		"empty type": {
			text:    "app:/title",
			wantErr: `"app:/title": not fully qualified`,
		},
		"empty entry": {
			text:    "app:string/",
			wantErr: `"app:string/": not fully qualified`,
		},
		"xmlns declaration": {
			text:    "xmlns:android",
			wantErr: `"xmlns:android": not fully qualified`,
		},
		"xmlns namespace": {
			text:    "xmlns:android/foo",
			wantErr: `"xmlns:android/foo": unexpected xmlns namespace`,
		},
		"typical": {
			text: "app:string/title",
			want: New("app", "string", "title"),
		},
		"empty namespace": {
			text: ":string/title",
			want: New("", "string", "title"),
		},
		"trimmed": {
			text: "  android:layout/simple_list_item_1 \n",
			want: New("android", "layout", "simple_list_item_1"),
		},
		"entry keeps slashes": {
			text: "app:raw/sub/file",
			want: New("app", "raw", "sub/file"),
		},
		"entry dots": {
			text: "app:style/Theme.App.Dark",
			want: New("app", "style", "Theme_App_Dark"),
		},
	} {
		t.Run(name, func(t *testing.T) {
			got, err := Parse(tc.text)
			if tc.wantErr != "" {
				if err == nil {
					t.Fatalf("expected error %q, got %v", tc.wantErr, got)
				}
				if !errors.Is(err, ErrMalformedReference) {
					t.Errorf("expected ErrMalformedReference, got %T", err)
				}
				if diff := cmp.Diff(tc.wantErr, err.Error()); diff != "" {
					t.Errorf("error (-want +got):\n%s", diff)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	MustParse("not qualified")
}

func TestRoundTrip(t *testing.T) {
	for _, n := range []Name{
		New("app", "string", "title"),
		New("android", "layout", "simple_list_item_1"),
		New("", "id", "root"),
		New("com.example.lib", "drawable", "ic_launcher"),
	} {
		t.Run(n.FullyQualifiedName(), func(t *testing.T) {
			got, err := Parse(n.FullyQualifiedName())
			if err != nil {
				t.Fatal(err)
			}
			if got != n {
				t.Errorf("round trip: want %#v, got %#v", n, got)
			}
			if got.Hash() != n.Hash() {
				t.Errorf("round trip hash: want %x, got %x", n.Hash(), got.Hash())
			}
		})
	}
}

func TestEquality(t *testing.T) {
	for name, tc := range map[string]struct {
		a, b Name
		want bool
	}{
		"same triple": {
			a:    New("app", "string", "foo"),
			b:    New("app", "string", "foo"),
			want: true,
		},
		"whitespace variants": {
			a:    New("app", "string", " foo "),
			b:    New("app", "string", "foo"),
			want: true,
		},
		"dot variants": {
			a:    New("app", "string", "a.b"),
			b:    New("app", "string", "a_b"),
			want: true,
		},
		"parsed and constructed": {
			a:    MustParse("app:string/a.b"),
			b:    New("app", "string", "a_b"),
			want: true,
		},
		"different namespace": {
			a: New("app", "string", "foo"),
			b: New("lib", "string", "foo"),
		},
		"different type": {
			a: New("app", "string", "foo"),
			b: New("app", "id", "foo"),
		},
		"different entry": {
			a: New("app", "string", "foo"),
			b: New("app", "string", "bar"),
		},
		"separator shift": {
			a: New("ab", "c", "d"),
			b: New("a", "bc", "d"),
		},
	} {
		t.Run(name, func(t *testing.T) {
			if got := tc.a.Equal(tc.b); got != tc.want {
				t.Errorf("Equal: want %t, got %t", tc.want, got)
			}
			if got := tc.a == tc.b; got != tc.want {
				t.Errorf("==: want %t, got %t", tc.want, got)
			}
			if tc.want && tc.a.Hash() != tc.b.Hash() {
				t.Errorf("equal names with different hashes: %x != %x", tc.a.Hash(), tc.b.Hash())
			}
		})
	}
}

func TestNameAsMapKey(t *testing.T) {
	ids := map[Name]int{
		New("app", "string", "foo"): 1,
	}
	if got := ids[MustParse(" app:string/foo ")]; got != 1 {
		t.Errorf("want 1, got %d", got)
	}
}

func TestNamespaceURI(t *testing.T) {
	got := New("com.example", "attr", "color").NamespaceURI()
	want := "http://schemas.android.com/apk/res/com.example"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestWithNamespace(t *testing.T) {
	n := New("app", "string", "foo")

	if got := n.WithNamespace("app"); got != n {
		t.Errorf("same namespace: want %v, got %v", n, got)
	}

	got := n.WithNamespace("lib")
	if diff := cmp.Diff(New("lib", "string", "foo"), got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if n.Namespace() != "app" {
		t.Errorf("original was modified: %v", n)
	}
}

func TestCheckType(t *testing.T) {
	n := New("app", "string", "foo")
	if err := n.CheckType("string"); err != nil {
		t.Fatal(err)
	}

	err := n.CheckType("layout")
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("expected ErrTypeMismatch, got %v", err)
	}
	var mismatch *TypeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected *TypeMismatchError, got %T", err)
	}
	want := &TypeMismatchError{Name: "app:string/foo", Expected: "layout", Actual: "string"}
	if diff := cmp.Diff(want, mismatch); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if diff := cmp.Diff("expected app:string/foo to be a layout, is a string", err.Error()); diff != "" {
		t.Errorf("message (-want +got):\n%s", diff)
	}
}

func TestStringers(t *testing.T) {
	n := New("app", "string", "foo")
	if got := n.String(); got != "app:string/foo" {
		t.Errorf("String: got %q", got)
	}
	if got := n.GoString(); got != "resname.Name{app:string/foo}" {
		t.Errorf("GoString: got %q", got)
	}
}

func TestTextMarshaling(t *testing.T) {
	type doc struct {
		Names map[Name]int `json:"names"`
		Root  Name         `json:"root"`
	}
	want := doc{
		Names: map[Name]int{New("app", "string", "foo"): 0x7f010000},
		Root:  New("app", "layout", "main"),
	}
	data, err := json.Marshal(want)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(`{"names":{"app:string/foo":2130771968},"root":"app:layout/main"}`, string(data)); diff != "" {
		t.Errorf("marshal (-want +got):\n%s", diff)
	}

	var got doc
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unmarshal (-want +got):\n%s", diff)
	}

	if err := json.Unmarshal([]byte(`{"root":"xmlns:android/x"}`), &got); !errors.Is(err, ErrMalformedReference) {
		t.Errorf("expected ErrMalformedReference, got %v", err)
	}
}

func TestIsZero(t *testing.T) {
	if !(Name{}).IsZero() {
		t.Error("zero name should be zero")
	}
	if New("", "", "").IsZero() {
		t.Error("constructed name should not be zero")
	}
}
