package transcriber

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOutput(t *testing.T) {
	t.Run("should decode, stamp, and sort generated captions", func(t *testing.T) {
		// Arrange: generator output arrives unsorted
		payload := `[
			{"text": "second line", "startTime": 4.0, "endTime": 6.0, "words": [
				{"text": "second", "startTime": 4.0, "endTime": 5.0},
				{"text": "line", "startTime": 5.0, "endTime": 6.0}
			]},
			{"text": "first line", "startTime": 0.5, "endTime": 2.0, "words": [
				{"text": "first", "startTime": 0.5, "endTime": 1.2},
				{"text": "line", "startTime": 1.2, "endTime": 2.0}
			]}
		]`

		// Act
		captions, err := ParseOutput(strings.NewReader(payload), "seg-1")

		// Assert
		require.NoError(t, err)
		require.Len(t, captions, 2)

		assert.Equal(t, "first line", captions[0].Text, "captions are sorted by startTime")
		assert.Equal(t, "second line", captions[1].Text)

		for _, c := range captions {
			assert.Equal(t, "seg-1", c.SegmentID)
			assert.NotEmpty(t, c.ID)
			assert.NoError(t, c.Validate())
			require.Len(t, c.Words, 2)
		}
		assert.NotEqual(t, captions[0].ID, captions[1].ID)
	})

	t.Run("should accept captions without words", func(t *testing.T) {
		payload := `[{"text": "bare", "startTime": 0, "endTime": 1}]`

		captions, err := ParseOutput(strings.NewReader(payload), "seg-1")

		require.NoError(t, err)
		require.Len(t, captions, 1)
		assert.Empty(t, captions[0].Words)
	})

	t.Run("should return empty slice for an empty array", func(t *testing.T) {
		captions, err := ParseOutput(strings.NewReader("[]"), "seg-1")

		require.NoError(t, err)
		assert.Empty(t, captions)
	})

	t.Run("should reject malformed output", func(t *testing.T) {
		_, err := ParseOutput(strings.NewReader(`{"oops": true}`), "seg-1")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode generated captions")
	})
}
