package media

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Prober answers metadata questions about media files through ffprobe. It
// never decodes media; duration is the only fact the editor core needs.
// Results are cached per path so repeated project loads stay cheap.
type Prober struct {
	ffprobePath string
	logger      *zap.Logger

	mu    sync.RWMutex
	cache map[string]float64
}

// NewProber creates a Prober using the given ffprobe binary
func NewProber(ffprobePath string, logger *zap.Logger) *Prober {
	if ffprobePath == "" {
		ffprobePath = "ffprobe"
	}
	return &Prober{
		ffprobePath: ffprobePath,
		logger:      logger,
		cache:       make(map[string]float64),
	}
}

// Duration returns the media duration in seconds
func (p *Prober) Duration(ctx context.Context, mediaPath string) (float64, error) {
	p.mu.RLock()
	cached, ok := p.cache[mediaPath]
	p.mu.RUnlock()
	if ok {
		return cached, nil
	}

	args := []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		mediaPath,
	}
	cmd := exec.CommandContext(ctx, p.ffprobePath, args...)
	output, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe failed for %s: %w", mediaPath, err)
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(string(output)), 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse ffprobe duration %q: %w", strings.TrimSpace(string(output)), err)
	}

	p.mu.Lock()
	p.cache[mediaPath] = duration
	p.mu.Unlock()

	p.logger.Debug("probed media duration",
		zap.String("path", mediaPath),
		zap.Float64("duration", duration))
	return duration, nil
}

// Info describes a media file for display
type Info struct {
	Name     string
	Type     string
	Duration float64
	Size     int64
}

// Probe gathers display metadata for a media file
func (p *Prober) Probe(ctx context.Context, mediaPath string) (Info, error) {
	stat, err := os.Stat(mediaPath)
	if err != nil {
		return Info{}, fmt.Errorf("failed to stat media file: %w", err)
	}

	duration, err := p.Duration(ctx, mediaPath)
	if err != nil {
		return Info{}, err
	}

	return Info{
		Name:     filepath.Base(mediaPath),
		Type:     TypeOf(mediaPath),
		Duration: duration,
		Size:     stat.Size(),
	}, nil
}

// mediaTypes maps the container extensions the editor accepts to their
// MIME types
var mediaTypes = map[string]string{
	".mp4":  "video/mp4",
	".mov":  "video/quicktime",
	".webm": "video/webm",
	".mkv":  "video/x-matroska",
	".avi":  "video/x-msvideo",
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
	".m4a":  "audio/mp4",
}

// TypeOf guesses a MIME type from the file extension, defaulting to
// video/mp4 for unknown extensions
func TypeOf(mediaPath string) string {
	if t, ok := mediaTypes[strings.ToLower(filepath.Ext(mediaPath))]; ok {
		return t
	}
	return "video/mp4"
}

// MatchName reports whether a re-supplied media file matches the name a
// persisted segment was created from. Best-effort integrity check only,
// the content is not verified.
func MatchName(persistedName, mediaPath string) bool {
	return persistedName == filepath.Base(mediaPath)
}

// FormatDuration renders seconds as MM:SS for display
func FormatDuration(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// FormatFileSize renders a byte count with binary units for display
func FormatFileSize(bytes int64) string {
	if bytes == 0 {
		return "0 B"
	}
	sizes := []string{"B", "KB", "MB", "GB"}
	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	if i >= len(sizes) {
		i = len(sizes) - 1
	}
	value := float64(bytes) / math.Pow(1024, float64(i))
	return fmt.Sprintf("%s %s", strconv.FormatFloat(math.Round(value*10)/10, 'f', -1, 64), sizes[i])
}
