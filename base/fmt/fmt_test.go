package fmt_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	gxfmt "github.com/gx-org/primes/base/fmt"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		txt  string
		want string
	}{
		{
			txt: `
2
3
`,
			want: `
1 2
2 3
`,
		},
		{
			txt: `
2
3
5
7
11
13
17
19
23
29
`,
			want: `
01 2
02 3
03 5
04 7
05 11
06 13
07 17
08 19
09 23
10 29
`,
		},
	}
	for _, test := range tests {
		got := gxfmt.Number(strings.TrimSpace(test.txt))
		want := strings.TrimSpace(test.want)
		if got != want {
			t.Errorf("got:\n%s\nbut want:\n%s\ndiff:\n%s", got, want, cmp.Diff(got, want))
		}
	}
}

func TestIndent(t *testing.T) {
	got := gxfmt.Indent("  ", "a\n\nb\n")
	want := "  a\n\n  b\n"
	if got != want {
		t.Errorf("got %q but want %q", got, want)
	}
}

func TestAligned(t *testing.T) {
	got := gxfmt.Aligned(
		gxfmt.Row{Key: "prime", Value: 3},
		gxfmt.Row{Key: "not prime", Value: 12},
	)
	want := `prime:     3
not prime: 12
`
	if got != want {
		t.Errorf("got:\n%s\nbut want:\n%s\ndiff:\n%s", got, want, cmp.Diff(got, want))
	}
}
