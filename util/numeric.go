package util

// Numeric is satisfied by every integer and floating point type
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Max returns the larger of x and y
func Max[T Numeric](x, y T) T {
	if x > y {
		return x
	}
	return y
}
