package editor

import (
	"encoding/json"
	"fmt"
	"io"
)

// Edit scripts are JSON arrays of operation records, one op name plus its
// arguments per record. They are the headless equivalent of a user editing
// session and replay through the same dispatcher:
//
//	[
//	  {"op": "split_segment", "index": 0, "at": 5.0},
//	  {"op": "add_caption"},
//	  {"op": "update_caption_text", "id": "...", "text": "hello"}
//	]

type scriptRecord struct {
	Op string `json:"op"`

	Index     int      `json:"index"`
	At        float64  `json:"at"`
	ID        string   `json:"id"`
	Text      string   `json:"text"`
	StartTime *float64 `json:"startTime"`
	EndTime   *float64 `json:"endTime"`
	Delta     float64  `json:"delta"`
	Rate      float64  `json:"rate"`
	Name      string   `json:"name"`
}

// DecodeScript parses an edit script into a sequence of Edits
func DecodeScript(r io.Reader) ([]Edit, error) {
	var records []scriptRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode edit script: %w", err)
	}

	edits := make([]Edit, 0, len(records))
	for i, rec := range records {
		edit, err := rec.toEdit()
		if err != nil {
			return nil, fmt.Errorf("edit script record %d: %w", i, err)
		}
		edits = append(edits, edit)
	}
	return edits, nil
}

func (rec scriptRecord) toEdit() (Edit, error) {
	switch rec.Op {
	case "split_segment":
		return SplitSegment{Index: rec.Index, At: rec.At}, nil
	case "trim_segment_start":
		return TrimSegmentStart{Index: rec.Index, At: rec.At}, nil
	case "trim_segment_end":
		return TrimSegmentEnd{Index: rec.Index, At: rec.At}, nil
	case "delete_segment":
		return DeleteSegment{Index: rec.Index}, nil
	case "set_active_segment":
		return SetActiveSegment{Index: rec.Index}, nil
	case "split_caption":
		return SplitCaption{At: rec.At}, nil
	case "add_caption":
		return AddCaption{}, nil
	case "update_caption_text":
		return UpdateCaptionText{ID: rec.ID, Text: rec.Text}, nil
	case "update_caption_times":
		return UpdateCaptionTimes{ID: rec.ID, StartTime: rec.StartTime, EndTime: rec.EndTime}, nil
	case "shift_caption":
		return ShiftCaption{ID: rec.ID, Delta: rec.Delta}, nil
	case "delete_caption":
		return DeleteCaption{ID: rec.ID}, nil
	case "select_caption":
		return SelectCaption{ID: rec.ID}, nil
	case "seek":
		return Seek{Delta: rec.Delta}, nil
	case "set_playback_rate":
		return SetPlaybackRate{Rate: rec.Rate}, nil
	case "apply_preset":
		preset, ok := PresetByName(rec.Name)
		if !ok {
			return nil, fmt.Errorf("unknown style preset %q", rec.Name)
		}
		return ApplyPreset{Preset: preset}, nil
	case "reset_styles":
		return ResetStyles{}, nil
	case "":
		return nil, fmt.Errorf("missing op field")
	default:
		return nil, fmt.Errorf("unknown op %q", rec.Op)
	}
}
