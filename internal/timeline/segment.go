package timeline

import (
	"fmt"

	"github.com/google/uuid"
)

// Segment represents a trimmed view over a media source. TrimStart and
// TrimEnd are seconds cut from the head and tail of the original media;
// they never modify the source itself.
type Segment struct {
	ID               string  `json:"id"`
	MediaName        string  `json:"mediaName"`
	MediaType        string  `json:"mediaType"`
	OriginalDuration float64 `json:"originalDuration"`
	TrimStart        float64 `json:"trimStart"`
	TrimEnd          float64 `json:"trimEnd"`
}

// NewSegment creates an untrimmed Segment with a generated ID
func NewSegment(mediaName, mediaType string, duration float64) Segment {
	return Segment{
		ID:               uuid.New().String(),
		MediaName:        mediaName,
		MediaType:        mediaType,
		OriginalDuration: duration,
	}
}

// EffectiveDuration returns the playable duration after trimming
func (s *Segment) EffectiveDuration() float64 {
	return s.OriginalDuration - s.TrimStart - s.TrimEnd
}

// Validate checks if the Segment has valid values
func (s *Segment) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("segment ID cannot be empty")
	}
	if s.OriginalDuration <= 0 {
		return fmt.Errorf("segment originalDuration must be positive")
	}
	if s.TrimStart < 0 || s.TrimEnd < 0 {
		return fmt.Errorf("segment trims cannot be negative")
	}
	if s.TrimStart+s.TrimEnd > s.OriginalDuration {
		return fmt.Errorf("segment trims exceed original duration")
	}
	return nil
}
