package transcriber

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"time"

	"go.uber.org/zap"

	"github.com/gnanesh-16/Gnembren-captions/internal/caption"
)

// CommandGenerator runs an external transcription command and reads the
// generated captions from its stdout. The command receives the model path
// (when configured) and the media path as its final arguments:
//
//	<command> [-m <model>] <media>
//
// and must print the caption JSON array to stdout.
type CommandGenerator struct {
	command   string
	modelPath string
	logger    *zap.Logger
}

// NewCommandGenerator creates a CommandGenerator
func NewCommandGenerator(command, modelPath string, logger *zap.Logger) *CommandGenerator {
	return &CommandGenerator{
		command:   command,
		modelPath: modelPath,
		logger:    logger,
	}
}

// Generate invokes the external command for one media file and parses its
// output into captions for the given segment
func (cg *CommandGenerator) Generate(ctx context.Context, mediaPath, segmentID string) ([]caption.Caption, error) {
	if cg.command == "" {
		return nil, fmt.Errorf("no transcriber command configured")
	}

	args := make([]string, 0, 3)
	if cg.modelPath != "" {
		args = append(args, "-m", cg.modelPath)
	}
	args = append(args, mediaPath)

	cg.logger.Info("running caption generator",
		zap.String("command", cg.command),
		zap.String("media", mediaPath),
		zap.String("segment_id", segmentID))
	started := time.Now()

	cmd := exec.CommandContext(ctx, cg.command, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		cg.logger.Error("caption generator failed",
			zap.Error(err),
			zap.String("stderr", stderr.String()))
		return nil, fmt.Errorf("transcriber command failed: %w", err)
	}

	captions, err := ParseOutput(&stdout, segmentID)
	if err != nil {
		return nil, err
	}

	cg.logger.Info("caption generation completed",
		zap.Int("captions", len(captions)),
		zap.Duration("elapsed", time.Since(started)))
	return captions, nil
}
