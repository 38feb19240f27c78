package rings_test

import (
	"fmt"

	"github.com/watlab/hbnet/build"
	"github.com/watlab/hbnet/cluster"
	"github.com/watlab/hbnet/rings"
)

// ExampleCount counts the primitive rings of the fused-quadrilateral book:
// both 4-rings are primitive, their shared-edge perimeter is not.
func ExampleCount() {
	c, err := cluster.New("book", 6, -45.6, build.Book())
	if err != nil {
		panic(err)
	}

	counts, err := rings.Count(c)
	if err != nil {
		panic(err)
	}

	fmt.Println("ring4:", counts.Of(4))
	fmt.Println("ring6:", counts.Of(6))
	fmt.Println("total:", counts.Total())
	// Output:
	// ring4: 2
	// ring6: 0
	// total: 2
}
