package primality_test

import (
	"fmt"
	"math/big"
	"math/rand"
	"os"

	"github.com/gx-org/primes/instrument"
	"github.com/gx-org/primes/primality"
)

func ExampleIsPrimeInt() {
	fmt.Println(primality.IsPrimeInt(29), primality.IsPrimeInt(91))
	// Output: true false
}

func ExampleClassify() {
	m61 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 61), big.NewInt(1))
	outcome, err := primality.Classify(m61, primality.WithRand(rand.New(rand.NewSource(1))))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(outcome)
	// Output: probably prime
}

func ExampleWithObserver() {
	in := instrument.New("example", primality.MethodMillerRabin)
	for n := range int64(10) {
		if _, err := primality.IsPrime(big.NewInt(n), primality.WithObserver(in)); err != nil {
			fmt.Println(err)
			return
		}
	}
	in.Display(os.Stdout)
	// Output:
	// Instrumentation for example
	//   - definitely not prime: 6
	//   - definitely prime:     4
	//   - probably prime:       0
	//   - total:                10
	//   MillerRabin: MethodStats(hits=10, low=0, high=9)
}
