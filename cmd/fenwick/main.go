// Command fenwick loads a sequence of numbers into a Fenwick tree and
// answers sum, element and bound queries on it.
//
//	fenwick --values 1,2,3,4,5 sum 1 3
//	fenwick --file weights.txt --float lower-bound 12.5
//	fenwick --values 0,1,0,3 sample --count 10 --seed 7
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
