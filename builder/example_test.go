package builder_test

import (
	"fmt"

	"github.com/katalvlaran/seqclust/builder"
)

func ExampleBuild() {
	ds, err := builder.Build(nil, builder.Families(2, 2, 0.9), builder.Family(1, 1))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(len(ds.Vertices), len(ds.Hits))
	for _, fam := range ds.Families {
		fmt.Println(fam)
	}
	// Output:
	// 5 4
	// [seq0001 seq0002]
	// [seq0003 seq0004]
	// [seq0005]
}
