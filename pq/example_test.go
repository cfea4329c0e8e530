// Package pq_test provides runnable examples for the queue contract.
package pq_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pqpath/pq"
)

// ExampleNew walks through insert, decrease-key and extraction on the bucket backing.
func ExampleNew() {
	q, err := pq.NewInts(pq.KindBucket)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	var h15 *pq.Handle[int]
	for _, v := range []int{10, 5, 15, 8} {
		h, _ := q.Insert(v)
		if v == 15 {
			h15 = h
		}
	}
	m, _ := q.FindMin()
	fmt.Println("min:", m)

	_, _ = q.DecreaseKey(h15, 2)
	m, _ = q.FindMin()
	fmt.Println("min after decrease:", m)

	var out []int
	for !q.IsEmpty() {
		v, _ := q.ExtractMin()
		out = append(out, v)
	}
	fmt.Println(out)
	// Output:
	// min: 5
	// min after decrease: 2
	// [2 5 8 10]
}

// ExampleSort sorts the same input with every backing.
func ExampleSort() {
	in := []int{42, 7, 999, 0, 7, 318}
	for _, k := range pq.Kinds {
		out, err := pq.Sort(k, in)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("%-6s %v\n", k, out)
	}
	// Output:
	// sorted [0 7 7 42 318 999]
	// tree   [0 7 7 42 318 999]
	// bucket [0 7 7 42 318 999]
}

// ExampleHandle_Valid shows that a consumed handle is rejected.
func ExampleHandle_Valid() {
	q, _ := pq.NewInts(pq.KindTree)
	h, _ := q.Insert(40)
	nh, _ := q.DecreaseKey(h, 30)
	fmt.Println(h.Valid(), nh.Valid())

	_, err := q.DecreaseKey(h, 20)
	fmt.Println(errors.Is(err, pq.ErrInvalidHandle))
	// Output:
	// false true
	// true
}
