package paula

type numeric interface {
	~int | ~int16 | ~int32 | ~int64 | ~float64
}

func clamp[T numeric](v, min, max T) T {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
