package Go_RBTree

import (
	_ "runtime"
	_ "unsafe"
)

//go:linkname CheapRandN runtime.cheaprandn
//go:nosplit
func CheapRandN(n uint32) uint32
