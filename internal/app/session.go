package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/gnanesh-16/Gnembren-captions/internal/config"
	"github.com/gnanesh-16/Gnembren-captions/internal/editor"
	"github.com/gnanesh-16/Gnembren-captions/internal/logger"
	"github.com/gnanesh-16/Gnembren-captions/internal/media"
	"github.com/gnanesh-16/Gnembren-captions/internal/project"
	"github.com/gnanesh-16/Gnembren-captions/internal/subtitle"
	"github.com/gnanesh-16/Gnembren-captions/internal/timeline"
	"github.com/gnanesh-16/Gnembren-captions/internal/transcriber"
)

// Session orchestrates one editing session: it owns the editor state,
// notifies the autosaver after every applied edit, and talks to the
// project store and caption generator. The in-memory state is authoritative;
// persistence failures degrade the session to in-memory-only operation.
type Session struct {
	cfg       *config.Configuration
	logger    *zap.Logger
	store     project.Store
	generator transcriber.Generator
	autosaver *project.Autosaver

	mu        sync.Mutex
	state     editor.State
	lastError string
}

// NewSession creates a session wired from configuration. Configuration is
// loaded from the file named by CONFIG_PATH when set, otherwise from
// environment variables.
func NewSession() (*Session, error) {
	var cfg *config.Configuration
	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		fileCfg, err := config.NewConfigurationFromFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file %s: %w", configPath, err)
		}
		cfg = fileCfg
	} else {
		cfg = config.NewConfigurationFromEnv()
	}

	zapLogger := logger.NewLogger()
	store := project.NewFileStore(cfg.GetStorePath(), zapLogger)
	generator := transcriber.NewCommandGenerator(cfg.GetTranscriberCommand(), cfg.GetTranscriberModelPath(), zapLogger)

	return NewSessionWithDeps(cfg, zapLogger, store, generator), nil
}

// NewSessionWithDeps creates a session from explicit collaborators
func NewSessionWithDeps(cfg *config.Configuration, zapLogger *zap.Logger, store project.Store, generator transcriber.Generator) *Session {
	s := &Session{
		cfg:       cfg,
		logger:    zapLogger,
		store:     store,
		generator: generator,
	}
	s.autosaver = project.NewAutosaver(cfg.GetAutosaveDebounce(), s.snapshot, store, zapLogger)
	return s
}

// Config returns the session's configuration
func (s *Session) Config() *config.Configuration {
	return s.cfg
}

// Logger returns the session's logger
func (s *Session) Logger() *zap.Logger {
	return s.logger
}

// State returns a copy of the current editor state
func (s *Session) State() editor.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// LastError returns the user-visible error indicator, empty when clear
func (s *Session) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

// Dispatch applies one edit to the session state. An applied edit arms the
// autosave debounce; a rejected edit leaves the state and the pending save
// untouched.
func (s *Session) Dispatch(e editor.Edit) bool {
	if split, ok := e.(editor.SplitSegment); ok && split.Epsilon == 0 {
		split.Epsilon = s.cfg.GetSplitEpsilon()
		e = split
	}

	s.mu.Lock()
	next, applied := editor.Apply(s.state, e)
	if applied {
		s.state = next
	}
	s.mu.Unlock()

	if applied {
		s.autosaver.Notify()
	} else {
		s.logger.Debug("edit rejected as no-op", zap.Any("edit", e))
	}
	return applied
}

// NewProject starts a fresh project around one probed media file and
// persists the initial snapshot
func (s *Session) NewProject(info media.Info) editor.State {
	state := editor.NewState(project.NewID())
	segment := timeline.NewSegment(info.Name, info.Type, info.Duration)
	state.Segments = []timeline.Segment{segment}

	s.mu.Lock()
	s.state = state
	s.mu.Unlock()

	s.persist()

	s.logger.Info("created project",
		zap.String("project_id", state.ProjectID),
		zap.String("media", info.Name),
		zap.Float64("duration", info.Duration))
	return state
}

// LoadProject restores a stored project into the session
func (s *Session) LoadProject(id string) error {
	p, err := s.store.Get(id)
	if err != nil {
		return fmt.Errorf("failed to load project %s: %w", id, err)
	}
	if p == nil {
		return fmt.Errorf("project %s not found", id)
	}

	s.mu.Lock()
	s.state = project.Restore(*p)
	s.lastError = ""
	s.mu.Unlock()

	s.logger.Info("loaded project",
		zap.String("project_id", id),
		zap.Int("segments", len(p.Segments)),
		zap.Int("captions", len(p.Captions)))
	return nil
}

// CheckMediaMatch compares a re-supplied media file against the active
// segment's persisted name. A mismatch is a warning the user may override,
// never a hard failure.
func (s *Session) CheckMediaMatch(mediaPath string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.state.ActiveSegment
	if idx < 0 || idx >= len(s.state.Segments) {
		return "", true
	}
	persisted := s.state.Segments[idx].MediaName
	return persisted, media.MatchName(persisted, mediaPath)
}

// GenerateCaptions runs the caption generator for the active segment and
// merges the result into the caption collection. Edits made while the
// generation is outstanding survive; only the active segment's captions are
// replaced, last-write-wins. On failure the existing captions stay put and
// the session error indicator is set.
func (s *Session) GenerateCaptions(ctx context.Context, mediaPath string) error {
	s.mu.Lock()
	segmentID := s.state.ActiveSegmentID()
	s.mu.Unlock()
	if segmentID == "" {
		return fmt.Errorf("no active segment to caption")
	}

	captions, err := s.generator.Generate(ctx, mediaPath, segmentID)
	if err != nil {
		s.mu.Lock()
		s.lastError = "Failed to transcribe media. The generator may not have been able to process the audio."
		s.mu.Unlock()
		return fmt.Errorf("caption generation failed: %w", err)
	}

	s.mu.Lock()
	s.lastError = ""
	s.mu.Unlock()
	s.Dispatch(editor.SetSegmentCaptions{SegmentID: segmentID, Captions: captions})
	return nil
}

// Projects lists stored projects, most recently modified first
func (s *Session) Projects() ([]project.Project, error) {
	return s.store.List()
}

// Export writes the session's captions as subtitles on the global timeline
func (s *Session) Export(w io.Writer, format string) error {
	s.mu.Lock()
	entries := subtitle.GlobalEntries(s.state.Segments, s.state.Captions)
	s.mu.Unlock()

	switch format {
	case "srt":
		return subtitle.WriteSRT(w, entries)
	case "vtt":
		return subtitle.WriteVTT(w, entries)
	default:
		return fmt.Errorf("unsupported subtitle format %q", format)
	}
}

// Save persists the current state immediately, bypassing the debounce.
// Store failures are logged and swallowed; the session carries on.
func (s *Session) Save() {
	s.persist()
}

// Close flushes any pending autosave and releases the session
func (s *Session) Close() error {
	return s.autosaver.Close()
}

// snapshot captures the current state for the autosaver
func (s *Session) snapshot() project.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return project.Snapshot(s.state, time.Now())
}

func (s *Session) persist() {
	if err := s.store.Upsert(s.snapshot()); err != nil {
		s.logger.Warn("failed to persist project, continuing in memory",
			zap.Error(err))
	}
}
