package compare_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pqpath/compare"
)

func ExampleSort() {
	rep, err := compare.Sort(context.Background(), []int{10, 5, 15, 8})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, run := range rep.Runs {
		fmt.Println(run.Kind, run.Output)
	}
	// Output:
	// sorted [5 8 10 15]
	// tree [5 8 10 15]
	// bucket [5 8 10 15]
}
