package common

// Coalesce returns the first non-zero value, or the zero value if all are zero.
// Used to fall back to built in defaults for optional config values.
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

// AspectRatio returns width / height, or 1 for a degenerate height.
//
// Parameters:
//   - width: the surface width in pixels
//   - height: the surface height in pixels
//
// Returns:
//   - float32: the aspect ratio
func AspectRatio(width, height int) float32 {
	if height <= 0 || width <= 0 {
		return 1
	}
	return float32(width) / float32(height)
}
