package unionfind_test

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/pathkit/unionfind"
)

// ExampleForest groups a handful of cities connected by roads.
func ExampleForest() {
	f := unionfind.New[string, int]()
	for city, pop := range map[string]int{"Kyiv": 3, "Lviv": 1, "Odesa": 1, "Dnipro": 1} {
		f.InsertRootWeighted(city, pop)
	}
	f.Union("Lviv", "Kyiv")
	f.Union("Dnipro", "Kyiv")

	var sizes []int
	for _, c := range f.Sizes() {
		sizes = append(sizes, c.Size)
	}
	sort.Ints(sizes)
	root, _ := f.Find("Dnipro")
	fmt.Println(sizes, root, f.NumRoots())
	// Output: [1 3] Kyiv 2
}
