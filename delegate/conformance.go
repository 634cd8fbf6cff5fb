package delegate

import (
	"github.com/hasbyte1/go-primitive-utils/plist"
	"github.com/hasbyte1/go-primitive-utils/pset"
)

// Compile-time checks that the module's containers satisfy these
// interfaces.
var (
	_ List[int64] = (*plist.List[int64])(nil)
	_ Set[int64]  = (*pset.Set[int64])(nil)

	_ Collection[float64] = (*plist.List[float64])(nil)
	_ Collection[float64] = (*pset.Set[float64])(nil)
)
