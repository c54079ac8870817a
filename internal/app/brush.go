package app

const (
	minBrushSize = 1
	maxBrushSize = 7
)

// stepBrushSize applies one wheel event to the brush size: two pixels per
// wheel notch, scaled by the event's magnitude, clamped to the working
// range. Fractional offsets under a full notch leave the size unchanged.
func stepBrushSize(size int, wheelY float64) int {
	size += int(wheelY) * 2
	if size < minBrushSize {
		return minBrushSize
	}
	if size > maxBrushSize {
		return maxBrushSize
	}
	return size
}
