package project

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gnanesh-16/Gnembren-captions/internal/caption"
	"github.com/gnanesh-16/Gnembren-captions/internal/editor"
	"github.com/gnanesh-16/Gnembren-captions/internal/timeline"
)

// Project is the persisted snapshot of one editing session: the ordered
// segment records, the caption collection, and the style settings. Segments
// carry no media payload; the binary media is re-supplied by the user on
// reload and matched by name as a best-effort integrity check.
type Project struct {
	ID           string              `json:"id"`
	Segments     []timeline.Segment  `json:"segments"`
	Captions     []caption.Caption   `json:"captions"`
	Settings     editor.CaptionStyle `json:"settings"`
	LastModified int64               `json:"lastModified"`
}

// NewID generates a fresh project identifier
func NewID() string {
	return uuid.New().String()
}

// Snapshot captures the current editor state as a persistable Project.
// Derived state (timeline layout, playhead) is deliberately absent: it is
// recomputed from the segment sequence on restore.
func Snapshot(state editor.State, now time.Time) Project {
	return Project{
		ID:           state.ProjectID,
		Segments:     append([]timeline.Segment(nil), state.Segments...),
		Captions:     append([]caption.Caption(nil), state.Captions...),
		Settings:     state.Style,
		LastModified: now.UnixMilli(),
	}
}

// Restore rebuilds an editor state from a persisted Project
func Restore(p Project) editor.State {
	state := editor.NewState(p.ID)
	state.Segments = append([]timeline.Segment(nil), p.Segments...)
	state.Captions = append([]caption.Caption(nil), p.Captions...)
	state.Style = p.Settings
	return state
}

// Validate checks if the Project has valid values
func (p *Project) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("project ID cannot be empty")
	}
	for i := range p.Segments {
		if err := p.Segments[i].Validate(); err != nil {
			return fmt.Errorf("segment %d: %w", i, err)
		}
	}
	for i := range p.Captions {
		if err := p.Captions[i].Validate(); err != nil {
			return fmt.Errorf("caption %d: %w", i, err)
		}
	}
	return nil
}
