package sieve_test

import (
	"testing"

	"go.uber.org/goleak"
)

// Basic nests pull cursors: make sure none outlive the sequence.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
