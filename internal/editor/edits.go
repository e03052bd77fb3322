package editor

import (
	"math"

	"github.com/google/uuid"

	"github.com/gnanesh-16/Gnembren-captions/internal/caption"
	"github.com/gnanesh-16/Gnembren-captions/internal/timeline"
)

// DefaultSplitEpsilon is the minimum distance from a segment edge at which
// a split is allowed. Splits closer than this would produce slivers the
// timeline cannot usefully show.
const DefaultSplitEpsilon = 0.1

// An Edit is one atomic change to the editor state. Applying an edit whose
// preconditions do not hold is a no-op: the state comes back unchanged and
// the bool result is false. Edits never fail partially.
type Edit interface {
	apply(s State) (State, bool)
}

// Apply runs one edit against the state and returns the resulting state
// plus whether the edit actually applied
func Apply(s State, e Edit) (State, bool) {
	return e.apply(s)
}

// round2 matches the two-decimal rounding used for caption time defaults
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// SplitSegment cuts the segment at Index into two at segment-local time At.
// Captions starting at or after the cut move to the new second segment with
// their times rebased; earlier captions stay on the first half untouched.
type SplitSegment struct {
	Index   int
	At      float64
	Epsilon float64
}

func (e SplitSegment) apply(s State) (State, bool) {
	if e.Index < 0 || e.Index >= len(s.Segments) {
		return s, false
	}
	eps := e.Epsilon
	if eps <= 0 {
		eps = DefaultSplitEpsilon
	}
	orig := s.Segments[e.Index]
	if e.At <= eps || e.At >= orig.EffectiveDuration()-eps {
		return s, false
	}

	first := orig
	first.TrimEnd = orig.OriginalDuration - (orig.TrimStart + e.At)

	second := orig
	second.ID = uuid.New().String()
	second.TrimStart = orig.TrimStart + e.At

	segments := make([]timeline.Segment, 0, len(s.Segments)+1)
	segments = append(segments, s.Segments[:e.Index]...)
	segments = append(segments, first, second)
	segments = append(segments, s.Segments[e.Index+1:]...)

	captions := cloneCaptions(s.Captions)
	for i := range captions {
		if captions[i].SegmentID != orig.ID || captions[i].StartTime < e.At {
			continue
		}
		captions[i].SegmentID = second.ID
		captions[i].StartTime -= e.At
		captions[i].EndTime -= e.At
	}

	s.Segments = segments
	s.Captions = captions
	return s, true
}

// TrimSegmentStart cuts At seconds off the playable head of the segment at
// Index. Captions shift left by the same amount; captions that fall
// entirely before the new start are dropped. The playhead resets to the
// segment start.
type TrimSegmentStart struct {
	Index int
	At    float64
}

func (e TrimSegmentStart) apply(s State) (State, bool) {
	if e.Index < 0 || e.Index >= len(s.Segments) || e.At <= 0 {
		return s, false
	}
	seg := s.Segments[e.Index]
	newTrimStart := seg.TrimStart + e.At
	if newTrimStart >= seg.OriginalDuration-seg.TrimEnd {
		return s, false
	}

	segments := cloneSegments(s.Segments)
	segments[e.Index].TrimStart = newTrimStart

	captions := make([]caption.Caption, 0, len(s.Captions))
	for _, c := range s.Captions {
		if c.SegmentID != seg.ID {
			captions = append(captions, c)
			continue
		}
		c.StartTime -= e.At
		c.EndTime -= e.At
		if c.EndTime <= 0 {
			continue
		}
		captions = append(captions, c)
	}

	s.Segments = segments
	s.Captions = captions
	s.Playhead = 0
	return s, true
}

// TrimSegmentEnd cuts the segment at Index so that its effective duration
// becomes At. Captions ending after the cut point are dropped wholesale, not
// truncated; a straddling caption disappears with the footage it narrated.
// The playhead resets to the segment start.
type TrimSegmentEnd struct {
	Index int
	At    float64
}

func (e TrimSegmentEnd) apply(s State) (State, bool) {
	if e.Index < 0 || e.Index >= len(s.Segments) || e.At <= 0 {
		return s, false
	}
	seg := s.Segments[e.Index]
	newTrimEnd := seg.OriginalDuration - (seg.TrimStart + e.At)
	if newTrimEnd < 0 {
		return s, false
	}

	segments := cloneSegments(s.Segments)
	segments[e.Index].TrimEnd = newTrimEnd

	captions := make([]caption.Caption, 0, len(s.Captions))
	for _, c := range s.Captions {
		if c.SegmentID == seg.ID && c.EndTime > e.At {
			continue
		}
		captions = append(captions, c)
	}

	s.Segments = segments
	s.Captions = captions
	s.Playhead = 0
	return s, true
}

// DeleteSegment removes the segment at Index together with its captions.
// Deleting the only remaining segment is rejected; a project always keeps
// at least one segment.
type DeleteSegment struct {
	Index int
}

func (e DeleteSegment) apply(s State) (State, bool) {
	if e.Index < 0 || e.Index >= len(s.Segments) || len(s.Segments) == 1 {
		return s, false
	}
	removed := s.Segments[e.Index]

	segments := make([]timeline.Segment, 0, len(s.Segments)-1)
	segments = append(segments, s.Segments[:e.Index]...)
	segments = append(segments, s.Segments[e.Index+1:]...)

	captions := make([]caption.Caption, 0, len(s.Captions))
	for _, c := range s.Captions {
		if c.SegmentID == removed.ID {
			continue
		}
		captions = append(captions, c)
	}

	s.Segments = segments
	s.Captions = captions
	if s.ActiveSegment >= e.Index && s.ActiveSegment > 0 {
		s.ActiveSegment--
	}
	return s, true
}

// AddSegment appends a segment to the end of the timeline
type AddSegment struct {
	Segment timeline.Segment
}

func (e AddSegment) apply(s State) (State, bool) {
	if err := e.Segment.Validate(); err != nil {
		return s, false
	}
	segments := cloneSegments(s.Segments)
	s.Segments = append(segments, e.Segment)
	return s, true
}

// SetActiveSegment moves the playhead to the start of another segment
type SetActiveSegment struct {
	Index int
}

func (e SetActiveSegment) apply(s State) (State, bool) {
	if e.Index < 0 || e.Index >= len(s.Segments) {
		return s, false
	}
	s.ActiveSegment = e.Index
	s.Playhead = 0
	return s, true
}

// SplitCaption splits the caption under the playhead-mapped local time At
// into two captions at a word boundary. The word containing At starts the
// second half. A split that would leave either half without words is a
// no-op.
type SplitCaption struct {
	At float64
}

func (e SplitCaption) apply(s State) (State, bool) {
	segID := s.ActiveSegmentID()
	if segID == "" {
		return s, false
	}
	idx := -1
	for i := range s.Captions {
		c := &s.Captions[i]
		if c.SegmentID == segID && e.At > c.StartTime && e.At < c.EndTime {
			idx = i
			break
		}
	}
	if idx == -1 {
		return s, false
	}
	orig := s.Captions[idx]

	// Half-open containment so a split exactly on a word boundary sends the
	// following word into the second half instead of emptying the first.
	wordIdx := -1
	for i, w := range orig.Words {
		if e.At >= w.StartTime && e.At < w.EndTime {
			wordIdx = i
			break
		}
	}
	if wordIdx == -1 {
		wordIdx = len(orig.Words)
	}
	firstWords := append([]caption.Word(nil), orig.Words[:wordIdx]...)
	secondWords := append([]caption.Word(nil), orig.Words[wordIdx:]...)
	if len(firstWords) == 0 || len(secondWords) == 0 {
		return s, false
	}

	first := caption.New(orig.SegmentID, caption.JoinWords(firstWords), orig.StartTime, e.At, firstWords)
	second := caption.New(orig.SegmentID, caption.JoinWords(secondWords), e.At, orig.EndTime, secondWords)

	captions := make([]caption.Caption, 0, len(s.Captions)+1)
	captions = append(captions, s.Captions[:idx]...)
	captions = append(captions, first, second)
	captions = append(captions, s.Captions[idx+1:]...)

	s.Captions = captions
	return s, true
}

// AddCaption appends a placeholder caption on the active segment, starting
// just after the segment's last caption or, when there is none, at the
// current playhead
type AddCaption struct{}

func (e AddCaption) apply(s State) (State, bool) {
	segID := s.ActiveSegmentID()
	if segID == "" {
		return s, false
	}
	start := s.Playhead
	for i := range s.Captions {
		if s.Captions[i].SegmentID == segID {
			start = s.Captions[i].EndTime + 0.1
		}
	}
	start = round2(start)
	end := round2(start + 2.0)

	captions := cloneCaptions(s.Captions)
	s.Captions = append(captions, caption.New(segID, "New Caption", start, end, nil))
	return s, true
}

// UpdateCaptionText replaces the text of one caption. Word timings are left
// alone; re-aligning words after a manual text edit is the caller's problem.
type UpdateCaptionText struct {
	ID   string
	Text string
}

func (e UpdateCaptionText) apply(s State) (State, bool) {
	idx := s.CaptionByID(e.ID)
	if idx == -1 {
		return s, false
	}
	captions := cloneCaptions(s.Captions)
	captions[idx].Text = e.Text
	s.Captions = captions
	return s, true
}

// UpdateCaptionTimes adjusts a caption's start and/or end time. Nil fields
// are left alone; negative values are rejected.
type UpdateCaptionTimes struct {
	ID        string
	StartTime *float64
	EndTime   *float64
}

func (e UpdateCaptionTimes) apply(s State) (State, bool) {
	idx := s.CaptionByID(e.ID)
	if idx == -1 {
		return s, false
	}
	if e.StartTime == nil && e.EndTime == nil {
		return s, false
	}
	if e.StartTime != nil && *e.StartTime < 0 {
		return s, false
	}
	if e.EndTime != nil && *e.EndTime < 0 {
		return s, false
	}
	captions := cloneCaptions(s.Captions)
	if e.StartTime != nil {
		captions[idx].StartTime = *e.StartTime
	}
	if e.EndTime != nil {
		captions[idx].EndTime = *e.EndTime
	}
	s.Captions = captions
	return s, true
}

// ShiftCaption moves a caption by Delta seconds, keeping its length
type ShiftCaption struct {
	ID    string
	Delta float64
}

func (e ShiftCaption) apply(s State) (State, bool) {
	idx := s.CaptionByID(e.ID)
	if idx == -1 {
		return s, false
	}
	if s.Captions[idx].StartTime+e.Delta < 0 {
		return s, false
	}
	captions := cloneCaptions(s.Captions)
	captions[idx].StartTime += e.Delta
	captions[idx].EndTime += e.Delta
	s.Captions = captions
	return s, true
}

// DeleteCaption removes one caption by ID
type DeleteCaption struct {
	ID string
}

func (e DeleteCaption) apply(s State) (State, bool) {
	idx := s.CaptionByID(e.ID)
	if idx == -1 {
		return s, false
	}
	captions := make([]caption.Caption, 0, len(s.Captions)-1)
	captions = append(captions, s.Captions[:idx]...)
	captions = append(captions, s.Captions[idx+1:]...)
	s.Captions = captions
	return s, true
}

// SelectCaption jumps the playhead to the start of one caption, switching
// the active segment when the caption lives elsewhere
type SelectCaption struct {
	ID string
}

func (e SelectCaption) apply(s State) (State, bool) {
	idx := s.CaptionByID(e.ID)
	if idx == -1 {
		return s, false
	}
	segIdx := s.segmentIndexByID(s.Captions[idx].SegmentID)
	if segIdx == -1 {
		return s, false
	}
	s.ActiveSegment = segIdx
	s.Playhead = s.Captions[idx].StartTime
	return s, true
}

// Seek moves the playhead by Delta seconds, clamped to the active segment
type Seek struct {
	Delta float64
}

func (e Seek) apply(s State) (State, bool) {
	if s.ActiveSegment < 0 || s.ActiveSegment >= len(s.Segments) {
		return s, false
	}
	limit := s.Segments[s.ActiveSegment].EffectiveDuration()
	s.Playhead = math.Min(math.Max(s.Playhead+e.Delta, 0), limit)
	return s, true
}

// SetPlaybackRate changes the playback speed multiplier
type SetPlaybackRate struct {
	Rate float64
}

func (e SetPlaybackRate) apply(s State) (State, bool) {
	if e.Rate <= 0 {
		return s, false
	}
	s.PlaybackRate = e.Rate
	return s, true
}

// SetSegmentCaptions replaces every caption attached to one segment,
// last-write-wins. Used to merge transcription results for a segment
// without touching captions on other segments or edits made while the
// transcription was outstanding.
type SetSegmentCaptions struct {
	SegmentID string
	Captions  []caption.Caption
}

func (e SetSegmentCaptions) apply(s State) (State, bool) {
	if s.segmentIndexByID(e.SegmentID) == -1 {
		return s, false
	}
	captions := make([]caption.Caption, 0, len(s.Captions)+len(e.Captions))
	for _, c := range s.Captions {
		if c.SegmentID == e.SegmentID {
			continue
		}
		captions = append(captions, c)
	}
	for _, c := range e.Captions {
		c.SegmentID = e.SegmentID
		captions = append(captions, c)
	}
	s.Captions = captions
	return s, true
}

// ApplyPreset merges a named style preset over the current style
type ApplyPreset struct {
	Preset StylePreset
}

func (e ApplyPreset) apply(s State) (State, bool) {
	s.Style = MergeStyle(s.Style, e.Preset.Overrides)
	return s, true
}

// ResetStyles restores the default caption style
type ResetStyles struct{}

func (e ResetStyles) apply(s State) (State, bool) {
	s.Style = DefaultCaptionStyle()
	return s, true
}
