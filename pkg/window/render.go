package window

// Segment is a line between two graph points in display coordinates.
type Segment struct {
	X0, Y0, X1, Y1 int
}

// Segments connects consecutive samples j-1 -> j, newest first. The newest
// sample sits at x=width and older ones step left by Step pixels. Rows are
// measured up from the bottom edge, so y = height - sample.
// Fewer than two samples produce no segments.
func Segments(samples []int, width, height int) []Segment {
	n := len(samples)
	if n < 2 {
		return nil
	}

	segs := make([]Segment, 0, n-1)
	for j, x := n-1, width; j > 0; j, x = j-1, x-Step {
		segs = append(segs, Segment{
			X0: x - Step,
			Y0: height - samples[j-1],
			X1: x,
			Y1: height - samples[j],
		})
	}
	return segs
}
