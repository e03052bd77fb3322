package subtitle

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnanesh-16/Gnembren-captions/internal/caption"
	"github.com/gnanesh-16/Gnembren-captions/internal/timeline"
)

func exportFixture() ([]timeline.Segment, []caption.Caption) {
	segments := []timeline.Segment{
		{ID: "seg-1", MediaName: "a.mp4", OriginalDuration: 10},
		{ID: "seg-2", MediaName: "b.mp4", OriginalDuration: 20, TrimStart: 5},
	}
	captions := []caption.Caption{
		{ID: "c2", SegmentID: "seg-2", Text: "second clip line", StartTime: 1.0, EndTime: 2.5},
		{ID: "c1", SegmentID: "seg-1", Text: "first clip line", StartTime: 2.0, EndTime: 4.0},
	}
	return segments, captions
}

func TestGlobalEntries(t *testing.T) {
	t.Run("should remap caption times onto the global timeline", func(t *testing.T) {
		segments, captions := exportFixture()

		entries := GlobalEntries(segments, captions)

		require.Len(t, entries, 2)
		// seg-1 starts at 0, seg-2 at 10 (seg-1 effective duration)
		assert.Equal(t, 1, entries[0].Index)
		assert.Equal(t, "first clip line", entries[0].Text)
		assert.InDelta(t, 2.0, entries[0].Start, 1e-9)
		assert.InDelta(t, 4.0, entries[0].End, 1e-9)

		assert.Equal(t, 2, entries[1].Index)
		assert.InDelta(t, 11.0, entries[1].Start, 1e-9)
		assert.InDelta(t, 12.5, entries[1].End, 1e-9)
	})

	t.Run("should skip captions with no layout slot", func(t *testing.T) {
		segments, captions := exportFixture()
		captions = append(captions, caption.Caption{
			ID: "dangling", SegmentID: "seg-gone", Text: "x", StartTime: 0, EndTime: 1,
		})

		entries := GlobalEntries(segments, captions)

		require.Len(t, entries, 2)
	})

	t.Run("should return nothing for an empty timeline", func(t *testing.T) {
		assert.Empty(t, GlobalEntries(nil, nil))
	})
}

func TestWriteSRT(t *testing.T) {
	segments, captions := exportFixture()
	entries := GlobalEntries(segments, captions)

	var sb strings.Builder
	require.NoError(t, WriteSRT(&sb, entries))

	expected := "1\n" +
		"00:00:02,000 --> 00:00:04,000\n" +
		"first clip line\n" +
		"\n" +
		"2\n" +
		"00:00:11,000 --> 00:00:12,500\n" +
		"second clip line\n" +
		"\n"
	assert.Equal(t, expected, sb.String())
}

func TestWriteVTT(t *testing.T) {
	segments, captions := exportFixture()
	entries := GlobalEntries(segments, captions)

	var sb strings.Builder
	require.NoError(t, WriteVTT(&sb, entries))

	out := sb.String()
	assert.True(t, strings.HasPrefix(out, "WEBVTT\n\n"))
	assert.Contains(t, out, "00:00:02.000 --> 00:00:04.000\nfirst clip line\n")
	assert.Contains(t, out, "00:00:11.000 --> 00:00:12.500\nsecond clip line\n")
}

func TestFormatTimestamp(t *testing.T) {
	assert.Equal(t, "00:00:00,000", formatTimestamp(0, ','))
	assert.Equal(t, "00:01:01,250", formatTimestamp(61.25, ','))
	assert.Equal(t, "01:02:03.004", formatTimestamp(3723.004, '.'))
}
