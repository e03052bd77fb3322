package transcriber

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/gnanesh-16/Gnembren-captions/internal/caption"
)

// Generator is the caption-generation collaborator: given a media file it
// asynchronously produces caption lines with word-level timestamps for one
// segment. Implementations may be slow; callers must not block other edits
// on an outstanding Generate call.
type Generator interface {
	Generate(ctx context.Context, mediaPath, segmentID string) ([]caption.Caption, error)
}

// generatedCaption is the wire format generators produce: a JSON array of
// caption objects, each with word-level timestamps, all times in seconds.
type generatedCaption struct {
	Text      string          `json:"text"`
	StartTime float64         `json:"startTime"`
	EndTime   float64         `json:"endTime"`
	Words     []generatedWord `json:"words"`
}

type generatedWord struct {
	Text      string  `json:"text"`
	StartTime float64 `json:"startTime"`
	EndTime   float64 `json:"endTime"`
}

// ParseOutput decodes generator output, stamps every caption with the
// target segment ID and a fresh caption ID, and returns the captions sorted
// by start time.
func ParseOutput(r io.Reader, segmentID string) ([]caption.Caption, error) {
	var raw []generatedCaption
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode generated captions: %w", err)
	}

	captions := make([]caption.Caption, 0, len(raw))
	for _, rc := range raw {
		words := make([]caption.Word, 0, len(rc.Words))
		for _, rw := range rc.Words {
			words = append(words, caption.Word{
				Text:      rw.Text,
				StartTime: rw.StartTime,
				EndTime:   rw.EndTime,
			})
		}
		captions = append(captions, caption.Caption{
			ID:        uuid.New().String(),
			SegmentID: segmentID,
			Text:      rc.Text,
			StartTime: rc.StartTime,
			EndTime:   rc.EndTime,
			Words:     words,
		})
	}

	caption.SortByStart(captions)
	return captions, nil
}
