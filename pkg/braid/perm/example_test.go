package perm_test

import (
	"fmt"

	"github.com/strandlab/braidviz/pkg/braid"
	"github.com/strandlab/braidviz/pkg/braid/perm"
)

func ExampleRows() {
	w, _ := braid.New(3, 1, 2)

	for _, row := range perm.Rows(w) {
		fmt.Println(row)
	}
	// Output:
	// [0 1 2]
	// [1 0 2]
	// [1 2 0]
}

func ExampleFinal() {
	// s1 s2 s1 on three strands reverses the strand order.
	w, _ := braid.New(3, 1, 2, 1)

	fmt.Println(perm.Final(w))
	// Output:
	// [2 1 0]
}
