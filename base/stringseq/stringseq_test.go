package stringseq_test

import (
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/gx-org/primes/base/stringseq"
)

func TestJoin(t *testing.T) {
	got := stringseq.Join(slices.Values([]string{"2", "3", "5"}), ", ")
	if want := "2, 3, 5"; got != want {
		t.Errorf("got %q but want %q", got, want)
	}
	if got := stringseq.Join(slices.Values([]string{}), ", "); got != "" {
		t.Errorf("got %q but want an empty string", got)
	}
}

func TestMapWrite(t *testing.T) {
	seq := stringseq.Map(slices.Values([]uint64{2, 3, 5, 7}), func(p uint64) string {
		return strconv.FormatUint(p, 10)
	})
	var b strings.Builder
	n, err := stringseq.Write(&b, seq, "\n")
	if err != nil {
		t.Fatal(err)
	}
	if n != 4 {
		t.Errorf("wrote %d elements but want 4", n)
	}
	if got, want := b.String(), "2\n3\n5\n7\n"; got != want {
		t.Errorf("got %q but want %q", got, want)
	}
}
