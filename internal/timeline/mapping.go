package timeline

// ToGlobal converts a segment-local time to global timeline time using a
// previously computed layout. The second return is false when the index is
// outside the layout.
func ToGlobal(layout []ClipLayout, index int, local float64) (float64, bool) {
	if index < 0 || index >= len(layout) {
		return 0, false
	}
	return layout[index].TimelineStart + local, true
}

// ToLocal converts a global timeline time to (segment index, local time).
// The owning segment is the last layout entry whose TimelineStart does not
// exceed the global time; times before the first segment map to it at local
// zero or less. Returns false when the layout is empty.
func ToLocal(layout []ClipLayout, global float64) (int, float64, bool) {
	if len(layout) == 0 {
		return 0, 0, false
	}
	index := 0
	for i := range layout {
		if layout[i].TimelineStart <= global {
			index = i
		}
	}
	return index, global - layout[index].TimelineStart, true
}
