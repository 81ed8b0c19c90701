package resindex_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bazelbuild/rules_go/go/tools/bazel"
	"github.com/google/go-cmp/cmp"
	bolt "go.etcd.io/bbolt"

	"github.com/stackb/resname/pkg/resindex"
	"github.com/stackb/resname/pkg/resname"
	"github.com/stackb/resname/pkg/testutil"
)

func TestBoltIndex(t *testing.T) {
	tmpDir, err := bazel.NewTmpDir("")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)
	filename := filepath.Join(tmpDir, "index.db")

	ix, err := resindex.OpenBoltIndex(filename, resindex.WithBoltLogger(testutil.NewTestLogger(t)))
	if err != nil {
		t.Fatal(err)
	}
	if err := exampleSpec.Load(ix); err != nil {
		t.Fatal(err)
	}
	mustPut(t, ix, "app:id/root", 0x7f0a0000)

	var dup *resindex.DuplicateNameError
	if err := ix.Put(resname.New("app", "id", "root"), 0x7f0a0001); !errors.As(err, &dup) {
		t.Fatalf("expected *DuplicateNameError, got %v", err)
	}
	if err := ix.Close(); err != nil {
		t.Fatal(err)
	}

	ro, err := resindex.OpenBoltIndex(filename, resindex.WithReadOnly())
	if err != nil {
		t.Fatal(err)
	}
	defer ro.Close()

	for name, tc := range map[string]struct {
		name   resname.Name
		wantID int
		wantOk bool
	}{
		"from spec": {
			name:   resname.New("app", "layout", "main"),
			wantID: 0x7f020000,
			wantOk: true,
		},
		"from put": {
			name:   resname.New("app", "id", "root"),
			wantID: 0x7f0a0000,
			wantOk: true,
		},
		"empty namespace": {
			name:   resname.New("", "id", "anonymous"),
			wantOk: true,
		},
		"miss": {
			name: resname.New("app", "id", "missing"),
		},
	} {
		t.Run(name, func(t *testing.T) {
			id, ok := ro.ResourceID(tc.name)
			if ok != tc.wantOk || id != tc.wantID {
				t.Errorf("want (%#x, %t), got (%#x, %t)", tc.wantID, tc.wantOk, id, ok)
			}
		})
	}

	want := []resindex.Entry{
		entry(":id/anonymous", 0),
		entry("android:string/ok", 0x0104000a),
		entry("app:id/root", 0x7f0a0000),
		entry("app:layout/main", 0x7f020000),
		entry("app:string/title", 0x7f030000),
	}
	if diff := cmp.Diff(want, ro.Entries()); diff != "" {
		t.Errorf("entries (-want +got):\n%s", diff)
	}

	if err := ro.Put(resname.New("app", "id", "other"), 1); err == nil {
		t.Error("expected error writing a read-only index")
	}
}

func TestBoltIndexConflictWritesNothing(t *testing.T) {
	tmpDir, err := bazel.NewTmpDir("")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	ix, err := resindex.OpenBoltIndex(filepath.Join(tmpDir, "index.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer ix.Close()

	mustPut(t, ix, "app:id/root", 1)
	err = ix.PutAll([]resindex.Entry{
		entry("app:id/first", 2),
		entry("app:id/root", 3),
	})
	if err == nil {
		t.Fatal("expected conflict")
	}
	if _, ok := ix.ResourceID(resname.New("app", "id", "first")); ok {
		t.Error("entries of a failed batch should not be written")
	}
}

func TestBoltIndexRejectsAmbiguousNames(t *testing.T) {
	tmpDir, err := bazel.NewTmpDir("")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	ix, err := resindex.OpenBoltIndex(filepath.Join(tmpDir, "index.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer ix.Close()

	canonical := resname.New("a", "b:c", "d")
	ambiguous := resname.New("a:b", "c", "d")
	if err := ix.Put(canonical, 1); err != nil {
		t.Fatal(err)
	}
	if err := ix.Put(ambiguous, 2); !errors.Is(err, resname.ErrMalformedReference) {
		t.Fatalf("expected ErrMalformedReference, got %v", err)
	}
	if _, ok := ix.ResourceID(ambiguous); ok {
		t.Error("ambiguous name should not resolve to the canonical entry")
	}
}

func TestBoltIndexBadValue(t *testing.T) {
	tmpDir, err := bazel.NewTmpDir("")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)
	filename := filepath.Join(tmpDir, "foreign.db")

	db, err := bolt.Open(filename, 0o644, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte("resources"))
		if err != nil {
			return err
		}
		return b.Put([]byte("app:id/root"), []byte{0x7f, 0x01})
	}); err != nil {
		t.Fatal(err)
	}
	if err := db.Close(); err != nil {
		t.Fatal(err)
	}

	ix, err := resindex.OpenBoltIndex(filename, resindex.WithBoltLogger(testutil.NewTestLogger(t)))
	if err != nil {
		t.Fatal(err)
	}
	defer ix.Close()

	root := resname.New("app", "id", "root")
	testutil.ExpectError(t, errors.New("app:id/root: bad value length 2"), ix.Put(root, 1))
	if _, ok := ix.ResourceID(root); ok {
		t.Error("bad value should not resolve")
	}
	if got := ix.Entries(); len(got) != 0 {
		t.Errorf("bad value should not be listed: %v", got)
	}
}
