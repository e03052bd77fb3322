package editor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeScript(t *testing.T) {
	t.Run("should decode a mixed script in order", func(t *testing.T) {
		script := `[
			{"op": "split_segment", "index": 0, "at": 5.0},
			{"op": "trim_segment_start", "index": 1, "at": 0.5},
			{"op": "add_caption"},
			{"op": "update_caption_times", "id": "c1", "startTime": 1.0},
			{"op": "apply_preset", "name": "Minimal"},
			{"op": "reset_styles"}
		]`

		edits, err := DecodeScript(strings.NewReader(script))

		require.NoError(t, err)
		require.Len(t, edits, 6)

		split, ok := edits[0].(SplitSegment)
		require.True(t, ok)
		assert.Equal(t, 0, split.Index)
		assert.InDelta(t, 5.0, split.At, 1e-9)

		times, ok := edits[3].(UpdateCaptionTimes)
		require.True(t, ok)
		require.NotNil(t, times.StartTime)
		assert.InDelta(t, 1.0, *times.StartTime, 1e-9)
		assert.Nil(t, times.EndTime, "absent time fields stay nil")

		preset, ok := edits[4].(ApplyPreset)
		require.True(t, ok)
		assert.Equal(t, "Minimal", preset.Preset.Name)
	})

	t.Run("should reject an unknown op", func(t *testing.T) {
		_, err := DecodeScript(strings.NewReader(`[{"op": "explode"}]`))

		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown op "explode"`)
		assert.Contains(t, err.Error(), "record 0")
	})

	t.Run("should reject a record without an op", func(t *testing.T) {
		_, err := DecodeScript(strings.NewReader(`[{"index": 1}]`))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing op field")
	})

	t.Run("should reject an unknown preset name", func(t *testing.T) {
		_, err := DecodeScript(strings.NewReader(`[{"op": "apply_preset", "name": "Nope"}]`))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown style preset")
	})

	t.Run("should reject malformed JSON", func(t *testing.T) {
		_, err := DecodeScript(strings.NewReader(`{"op": "add_caption"}`))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode edit script")
	})
}
