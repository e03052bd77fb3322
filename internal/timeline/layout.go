package timeline

// ClipLayout describes where one segment sits on the global timeline.
// Left and Width are percentages of the total effective duration, suitable
// for proportional track rendering. Layout is derived state: it is
// recomputed from the segment sequence on every read and never persisted.
type ClipLayout struct {
	SegmentID     string
	TimelineStart float64
	Left          float64
	Width         float64
}

// ComputeLayout derives per-segment placement from an ordered segment
// sequence. It returns nil when the total effective duration is zero,
// meaning the timeline has nothing to show.
func ComputeLayout(segments []Segment) []ClipLayout {
	var total float64
	for i := range segments {
		total += segments[i].EffectiveDuration()
	}
	if total == 0 {
		return nil
	}

	layout := make([]ClipLayout, 0, len(segments))
	var cursor float64
	for i := range segments {
		effective := segments[i].EffectiveDuration()
		layout = append(layout, ClipLayout{
			SegmentID:     segments[i].ID,
			TimelineStart: cursor,
			Left:          cursor / total * 100,
			Width:         effective / total * 100,
		})
		cursor += effective
	}
	return layout
}

// TotalDuration returns the summed effective duration of all segments
func TotalDuration(segments []Segment) float64 {
	var total float64
	for i := range segments {
		total += segments[i].EffectiveDuration()
	}
	return total
}
