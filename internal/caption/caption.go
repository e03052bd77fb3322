package caption

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Word represents a single spoken word with segment-local timestamps in seconds
type Word struct {
	Text      string  `json:"text"`
	StartTime float64 `json:"startTime"`
	EndTime   float64 `json:"endTime"`
}

// Caption represents one caption line attached to a segment, with optional
// word-level timestamps for karaoke-style highlighting. All times are
// segment-local seconds.
type Caption struct {
	ID        string  `json:"id"`
	SegmentID string  `json:"segmentId"`
	Text      string  `json:"text"`
	StartTime float64 `json:"startTime"`
	EndTime   float64 `json:"endTime"`
	Words     []Word  `json:"words"`
}

// New creates a Caption with a generated ID
func New(segmentID, text string, startTime, endTime float64, words []Word) Caption {
	return Caption{
		ID:        uuid.New().String(),
		SegmentID: segmentID,
		Text:      text,
		StartTime: startTime,
		EndTime:   endTime,
		Words:     words,
	}
}

// Validate checks if the Word has valid values
func (w *Word) Validate() error {
	if w.Text == "" {
		return fmt.Errorf("word text cannot be empty")
	}
	if w.StartTime < 0 {
		return fmt.Errorf("word startTime cannot be negative")
	}
	if w.EndTime <= w.StartTime {
		return fmt.Errorf("word endTime must be greater than startTime")
	}
	return nil
}

// Validate checks if the Caption has valid values.
//
// Word timestamps are deliberately not checked for containment within the
// caption range or for intra-caption overlap; transcription services emit
// slightly fuzzy word boundaries and callers are expected to tolerate them.
func (c *Caption) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("caption ID cannot be empty")
	}
	if c.SegmentID == "" {
		return fmt.Errorf("caption segmentId cannot be empty")
	}
	if c.EndTime <= c.StartTime {
		return fmt.Errorf("caption endTime must be greater than startTime")
	}
	for i := range c.Words {
		if err := c.Words[i].Validate(); err != nil {
			return fmt.Errorf("word %d: %w", i, err)
		}
	}
	return nil
}

// Contains reports whether t falls within the caption's time range
func (c *Caption) Contains(t float64) bool {
	return t >= c.StartTime && t <= c.EndTime
}

// WordAt returns the index of the first word whose range contains t,
// or -1 when no word does
func (c *Caption) WordAt(t float64) int {
	for i := range c.Words {
		if t >= c.Words[i].StartTime && t <= c.Words[i].EndTime {
			return i
		}
	}
	return -1
}

// JoinWords builds caption text from a word slice
func JoinWords(words []Word) string {
	parts := make([]string, 0, len(words))
	for _, w := range words {
		parts = append(parts, w.Text)
	}
	return strings.Join(parts, " ")
}

// SortByStart orders captions by StartTime ascending, preserving the
// relative order of captions that start at the same time
func SortByStart(captions []Caption) {
	sort.SliceStable(captions, func(i, j int) bool {
		return captions[i].StartTime < captions[j].StartTime
	})
}
