package collections

import (
	"flag"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStringSlice(t *testing.T) {
	for name, tc := range map[string]struct {
		args []string
		want StringSlice
	}{
		"degenerate": {},
		"repeated": {
			args: []string{"-f", "a.json", "-f", "b.yaml"},
			want: StringSlice{"a.json", "b.yaml"},
		},
		"comma separated": {
			args: []string{"-f", "a.json, b.yaml,", "-f", "c.pb"},
			want: StringSlice{"a.json", "b.yaml", "c.pb"},
		},
	} {
		t.Run(name, func(t *testing.T) {
			var got StringSlice
			fs := flag.NewFlagSet(name, flag.ContinueOnError)
			fs.Var(&got, "f", "files")
			if err := fs.Parse(tc.args); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}
