package parallel

// Span is a half-open byte range [Start, End) of a pixel buffer.
type Span struct {
	Start int
	End   int
}

// Split divides [0, total) into at most parts contiguous spans whose
// boundaries are multiples of align. The last span absorbs the remainder.
// Returns nil when total <= 0.
func Split(total, parts, align int) []Span {
	if total <= 0 {
		return nil
	}
	if align <= 0 {
		align = 1
	}
	units := (total + align - 1) / align
	if parts <= 0 {
		parts = 1
	}
	parts = min(parts, units)

	per := units / parts
	extra := units % parts

	spans := make([]Span, 0, parts)
	start := 0
	for i := range parts {
		n := per
		if i < extra {
			n++
		}
		end := min(start+n*align, total)
		spans = append(spans, Span{Start: start, End: end})
		start = end
	}
	return spans
}
