package editor

import "github.com/gnanesh-16/Gnembren-captions/internal/caption"

// PlaybackSync is the display state for one playback instant: the caption
// to show and, when karaoke highlighting is on, which of its words is being
// spoken. WordIndex is -1 when no word is active.
type PlaybackSync struct {
	Caption   *caption.Caption
	WordIndex int
}

// SyncPlayback resolves the active caption and word for a segment-local
// playback time on the active segment. First containing caption wins; the
// scan is linear over the segment's captions, which matches how often
// playback time updates arrive.
func (s State) SyncPlayback(local float64) PlaybackSync {
	sync := PlaybackSync{WordIndex: -1}
	segID := s.ActiveSegmentID()
	if segID == "" {
		return sync
	}
	for i := range s.Captions {
		c := &s.Captions[i]
		if c.SegmentID != segID || !c.Contains(local) {
			continue
		}
		active := *c
		sync.Caption = &active
		if s.Style.KaraokeEnabled {
			sync.WordIndex = c.WordAt(local)
		}
		return sync
	}
	return sync
}
