package level

import (
	"strings"

	"github.com/samber/lo"
	"l2lo/ds"
	"l2lo/unr"
)

// Candidates lists the static meshes of pkg that can be added to the object
// list, exports first, keeping the first entry for each display string.
func Candidates(pkg *unr.Package) []unr.Entry {
	meshes := lo.Filter(
		append(pkg.ExportEntries(), pkg.ImportEntries()...),
		func(e unr.Entry, _ int) bool {
			className, _ := pkg.FullClassName(e)
			return strings.EqualFold(className, StaticMeshClassName)
		},
	)

	byDisplay := ds.NewLinkedHashMap[string, unr.Entry]()
	for _, entry := range meshes {
		byDisplay.PutIfAbsent(pkg.Display(entry), entry)
	}

	return byDisplay.Values()
}
