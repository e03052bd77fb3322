package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "00:00", FormatDuration(0))
	assert.Equal(t, "00:59", FormatDuration(59.9))
	assert.Equal(t, "01:00", FormatDuration(60))
	assert.Equal(t, "02:05", FormatDuration(125.4))
	assert.Equal(t, "61:41", FormatDuration(3701))
}

func TestFormatFileSize(t *testing.T) {
	assert.Equal(t, "0 B", FormatFileSize(0))
	assert.Equal(t, "512 B", FormatFileSize(512))
	assert.Equal(t, "1 KB", FormatFileSize(1024))
	assert.Equal(t, "1.5 KB", FormatFileSize(1536))
	assert.Equal(t, "2.5 MB", FormatFileSize(2621440))
	assert.Equal(t, "1 GB", FormatFileSize(1073741824))
}

func TestMatchName(t *testing.T) {
	assert.True(t, MatchName("clip.mp4", "/some/dir/clip.mp4"))
	assert.False(t, MatchName("clip.mp4", "/some/dir/other.mp4"))
	assert.True(t, MatchName("clip.mp4", "clip.mp4"))
}

func TestTypeOf(t *testing.T) {
	assert.Equal(t, "video/mp4", TypeOf("a.mp4"))
	assert.Equal(t, "video/mp4", TypeOf("mystery.unknownext"), "unknown extensions fall back to video/mp4")
}
