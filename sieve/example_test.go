package sieve_test

import (
	"fmt"
	"slices"

	gxiter "github.com/gx-org/primes/base/iter"
	"github.com/gx-org/primes/sieve"
)

func ExampleBounded() {
	fmt.Println(sieve.Bounded(30))
	// Output: [2 3 5 7 11 13 17 19 23 29]
}

func ExampleDefault() {
	fmt.Println(slices.Collect(gxiter.Take(sieve.Default(), 10)))
	// Output: [2 3 5 7 11 13 17 19 23 29]
}

func ExampleWheel210() {
	for p := range gxiter.Between(sieve.Wheel210(), 1_000_000, 1_000_100) {
		fmt.Println(p)
	}
	// Output:
	// 1000003
	// 1000033
	// 1000037
	// 1000039
	// 1000081
	// 1000099
}
