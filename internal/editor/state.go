package editor

import (
	"github.com/gnanesh-16/Gnembren-captions/internal/caption"
	"github.com/gnanesh-16/Gnembren-captions/internal/timeline"
)

// State is the complete in-memory editing model: the ordered segment
// sequence, the caption collection, the playhead, and the caption style
// settings. Edits never mutate a State in place; Apply returns a new one,
// so derived layout and mapping always read from consistent input.
type State struct {
	ProjectID     string
	Segments      []timeline.Segment
	Captions      []caption.Caption
	ActiveSegment int
	Playhead      float64
	PlaybackRate  float64
	Style         CaptionStyle
}

// NewState creates an empty editor state with default style settings
func NewState(projectID string) State {
	return State{
		ProjectID:    projectID,
		PlaybackRate: 1.0,
		Style:        DefaultCaptionStyle(),
	}
}

// Layout derives the current timeline layout from the segment sequence
func (s State) Layout() []timeline.ClipLayout {
	return timeline.ComputeLayout(s.Segments)
}

// GlobalPlayhead maps the active segment playhead to global timeline time
func (s State) GlobalPlayhead() (float64, bool) {
	return timeline.ToGlobal(s.Layout(), s.ActiveSegment, s.Playhead)
}

// ActiveSegmentID returns the ID of the active segment, or "" when the
// segment sequence is empty
func (s State) ActiveSegmentID() string {
	if s.ActiveSegment < 0 || s.ActiveSegment >= len(s.Segments) {
		return ""
	}
	return s.Segments[s.ActiveSegment].ID
}

// CaptionsFor returns the captions attached to one segment, in collection order
func (s State) CaptionsFor(segmentID string) []caption.Caption {
	var out []caption.Caption
	for i := range s.Captions {
		if s.Captions[i].SegmentID == segmentID {
			out = append(out, s.Captions[i])
		}
	}
	return out
}

// CaptionByID returns the index of the caption with the given ID, or -1
func (s State) CaptionByID(id string) int {
	for i := range s.Captions {
		if s.Captions[i].ID == id {
			return i
		}
	}
	return -1
}

func (s State) segmentIndexByID(id string) int {
	for i := range s.Segments {
		if s.Segments[i].ID == id {
			return i
		}
	}
	return -1
}

// cloneSegments and cloneCaptions give edits private copies to rewrite,
// keeping the previous State value intact for callers that held onto it.
func cloneSegments(segments []timeline.Segment) []timeline.Segment {
	out := make([]timeline.Segment, len(segments))
	copy(out, segments)
	return out
}

func cloneCaptions(captions []caption.Caption) []caption.Caption {
	out := make([]caption.Caption, len(captions))
	copy(out, captions)
	return out
}
