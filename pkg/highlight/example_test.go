package highlight_test

import (
	"fmt"

	"github.com/matzehuels/coursemap/pkg/catalog"
	"github.com/matzehuels/coursemap/pkg/highlight"
	"github.com/matzehuels/coursemap/pkg/relation"
)

func ExampleClassifier_Classify() {
	reg := catalog.Default()
	cl := highlight.NewClassifier(relation.New(reg))

	focal, _ := reg.ByID("ELG3175")
	for _, id := range []string{"ELG3175", "ELG3125", "ELG3126", "ELG4176", "ELG2138", "MAT1320"} {
		c, _ := reg.ByID(id)
		fmt.Println(id, cl.Classify(&focal, c))
	}
	// Output:
	// ELG3175 self
	// ELG3125 prerequisite
	// ELG3126 corequisite
	// ELG4176 dependent
	// ELG2138 indirect-prerequisite
	// MAT1320 none
}

func ExampleFocus() {
	f := highlight.Focus{}.Hover("ELG2138").Toggle()
	f = f.Hover("MAT1320")
	id, _ := f.Effective()
	fmt.Println(id, f.IsLocked())

	f = f.Toggle()
	id, _ = f.Effective()
	fmt.Println(id, f.IsLocked())
	// Output:
	// ELG2138 true
	// MAT1320 false
}
