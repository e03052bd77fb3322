package subtitle

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/gnanesh-16/Gnembren-captions/internal/caption"
	"github.com/gnanesh-16/Gnembren-captions/internal/timeline"
)

// Entry is one exported subtitle line with global timeline timestamps in
// seconds. Caption times are segment-local; GlobalEntries remaps them
// through the timeline layout before export.
type Entry struct {
	Index int
	Start float64
	End   float64
	Text  string
}

// GlobalEntries converts a segment sequence plus its captions into export
// entries on the global timeline, sorted by start time. Captions whose
// segment has no layout slot (everything trimmed away, or a dangling
// segment reference) are skipped.
func GlobalEntries(segments []timeline.Segment, captions []caption.Caption) []Entry {
	layout := timeline.ComputeLayout(segments)
	starts := make(map[string]float64, len(layout))
	for _, l := range layout {
		starts[l.SegmentID] = l.TimelineStart
	}

	entries := make([]Entry, 0, len(captions))
	for _, c := range captions {
		base, ok := starts[c.SegmentID]
		if !ok {
			continue
		}
		entries = append(entries, Entry{
			Start: base + c.StartTime,
			End:   base + c.EndTime,
			Text:  c.Text,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Start < entries[j].Start
	})
	for i := range entries {
		entries[i].Index = i + 1
	}
	return entries
}

// WriteSRT writes entries in SubRip format
func WriteSRT(w io.Writer, entries []Entry) error {
	for _, e := range entries {
		_, err := fmt.Fprintf(w, "%d\n%s --> %s\n%s\n\n",
			e.Index,
			formatTimestamp(e.Start, ','),
			formatTimestamp(e.End, ','),
			e.Text)
		if err != nil {
			return fmt.Errorf("failed to write SRT entry %d: %w", e.Index, err)
		}
	}
	return nil
}

// WriteVTT writes entries in WebVTT format
func WriteVTT(w io.Writer, entries []Entry) error {
	if _, err := fmt.Fprint(w, "WEBVTT\n\n"); err != nil {
		return fmt.Errorf("failed to write VTT header: %w", err)
	}
	for _, e := range entries {
		_, err := fmt.Fprintf(w, "%s --> %s\n%s\n\n",
			formatTimestamp(e.Start, '.'),
			formatTimestamp(e.End, '.'),
			e.Text)
		if err != nil {
			return fmt.Errorf("failed to write VTT entry %d: %w", e.Index, err)
		}
	}
	return nil
}

// formatTimestamp renders seconds as HH:MM:SS<sep>mmm. SRT separates
// milliseconds with a comma, WebVTT with a dot. Rounding happens on whole
// milliseconds so float noise never shifts a timestamp.
func formatTimestamp(seconds float64, sep byte) string {
	total := int64(math.Round(seconds * 1000))
	hours := total / 3600000
	minutes := total / 60000 % 60
	secs := total / 1000 % 60
	millis := total % 1000
	return fmt.Sprintf("%02d:%02d:%02d%c%03d", hours, minutes, secs, sep, millis)
}
