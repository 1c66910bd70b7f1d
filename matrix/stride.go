package matrix

// DisplayLimit is the largest side a Grid may have,
// whatever the size of the source matrix.
const DisplayLimit = 800

// Stride returns the sampling step for a size×size source matrix
// and the side n of the grid that results from sampling every
// step-th row and column.
//
// Matrices smaller than DisplayLimit are kept at full resolution.
// Larger ones use step = 1 + size/DisplayLimit, which keeps
// n = ⌈size/step⌉ at or below DisplayLimit.
// A negative size is treated as zero.
func Stride(size int) (step, n int) {
	if size <= 0 {
		return 1, 0
	}
	if size < DisplayLimit {
		return 1, size
	}
	step = 1 + size/DisplayLimit
	return step, (size + step - 1) / step
}
