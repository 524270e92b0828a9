// Package stringseq provides functions for converting iterator sequences to strings.
package stringseq

import (
	"bufio"
	"io"
	"iter"
	"strings"
)

// Append appends the elements of its second argument to the given string builder. The separator
// string sep is placed between elements in the resulting string.
func Append(b *strings.Builder, seq iter.Seq[string], sep string) {
	n := 0
	for item := range seq {
		if n > 0 {
			b.WriteString(sep)
		}
		b.WriteString(item)
		n++
	}
}

// Join concatenates the elements of its first argument to create a single string. The separator
// string sep is placed between elements in the resulting string.
func Join(seq iter.Seq[string], sep string) string {
	var b strings.Builder
	Append(&b, seq, sep)
	return b.String()
}

// Map returns a sequence of the strings returned by f for each element of seq.
func Map[T any](seq iter.Seq[T], f func(T) string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for item := range seq {
			if !yield(f(item)) {
				return
			}
		}
	}
}

// Write writes the elements of seq to w as they are produced, each followed by
// the terminator term. It stops at the first write error.
func Write(w io.Writer, seq iter.Seq[string], term string) (n int, err error) {
	bw := bufio.NewWriter(w)
	for item := range seq {
		if _, err = bw.WriteString(item); err != nil {
			return n, err
		}
		if _, err = bw.WriteString(term); err != nil {
			return n, err
		}
		n++
	}
	return n, bw.Flush()
}
