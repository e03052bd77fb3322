package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gnanesh-16/Gnembren-captions/internal/app"
	"github.com/gnanesh-16/Gnembren-captions/internal/editor"
	"github.com/gnanesh-16/Gnembren-captions/internal/media"
	"github.com/gnanesh-16/Gnembren-captions/internal/timeline"
)

const (
	probeTimeout      = 30 * time.Second
	transcribeTimeout = 1 * time.Hour
)

func runNew(cmd *cobra.Command, mediaPath string) error {
	session, err := app.NewSession()
	if err != nil {
		return err
	}
	defer session.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), probeTimeout)
	defer cancel()

	prober := media.NewProber(session.Config().GetFFprobePath(), session.Logger())
	info, err := prober.Probe(ctx, mediaPath)
	if err != nil {
		return fmt.Errorf("failed to probe media: %w", err)
	}

	state := session.NewProject(info)
	fmt.Fprintf(cmd.OutOrStdout(), "Created project %s\n", state.ProjectID)
	fmt.Fprintf(cmd.OutOrStdout(), "  %s  %s  %s\n",
		info.Name, media.FormatDuration(info.Duration), media.FormatFileSize(info.Size))
	return nil
}

func runTranscribe(cmd *cobra.Command, projectID, mediaPath string) error {
	force, _ := cmd.Flags().GetBool("force")

	session, err := app.NewSession()
	if err != nil {
		return err
	}
	defer session.Close()

	if err := session.LoadProject(projectID); err != nil {
		return err
	}

	if persisted, ok := session.CheckMediaMatch(mediaPath); !ok {
		if !force {
			return fmt.Errorf("media %q does not match the project's %q (use --force to transcribe anyway)", mediaPath, persisted)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: media %q does not match the project's %q\n", mediaPath, persisted)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), transcribeTimeout)
	defer cancel()

	if err := session.GenerateCaptions(ctx, mediaPath); err != nil {
		if msg := session.LastError(); msg != "" {
			fmt.Fprintln(cmd.ErrOrStderr(), msg)
		}
		return err
	}
	session.Save()

	state := session.State()
	fmt.Fprintf(cmd.OutOrStdout(), "Generated %d captions\n", len(state.CaptionsFor(state.ActiveSegmentID())))
	return nil
}

func runEdit(cmd *cobra.Command, projectID string) error {
	scriptPath, _ := cmd.Flags().GetString("script")

	session, err := app.NewSession()
	if err != nil {
		return err
	}
	defer session.Close()

	if err := session.LoadProject(projectID); err != nil {
		return err
	}

	var in io.Reader = cmd.InOrStdin()
	if scriptPath != "" {
		f, err := os.Open(scriptPath)
		if err != nil {
			return fmt.Errorf("failed to open edit script: %w", err)
		}
		defer f.Close()
		in = f
	}

	edits, err := editor.DecodeScript(in)
	if err != nil {
		return fmt.Errorf("invalid edit script: %w", err)
	}

	applied := 0
	for _, e := range edits {
		if session.Dispatch(e) {
			applied++
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Applied %d of %d edits\n", applied, len(edits))
	return nil
}

func runExport(cmd *cobra.Command, projectID string) error {
	format, _ := cmd.Flags().GetString("format")
	outPath, _ := cmd.Flags().GetString("out")

	session, err := app.NewSession()
	if err != nil {
		return err
	}
	defer session.Close()

	if err := session.LoadProject(projectID); err != nil {
		return err
	}

	var out io.Writer = cmd.OutOrStdout()
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := session.Export(out, format); err != nil {
		return err
	}
	if outPath != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", format, outPath)
	}
	return nil
}

func runList(cmd *cobra.Command, _ []string) error {
	session, err := app.NewSession()
	if err != nil {
		return err
	}
	defer session.Close()

	projects, err := session.Projects()
	if err != nil {
		return fmt.Errorf("failed to list projects: %w", err)
	}
	if len(projects) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No projects")
		return nil
	}

	for _, p := range projects {
		name := ""
		if len(p.Segments) > 0 {
			name = p.Segments[0].MediaName
		}
		modified := time.UnixMilli(p.LastModified).Format("2006-01-02 15:04")
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %-30s  %s\n", p.ID, name, modified)
	}
	return nil
}

func runInfo(cmd *cobra.Command, projectID string) error {
	session, err := app.NewSession()
	if err != nil {
		return err
	}
	defer session.Close()

	projects, err := session.Projects()
	if err != nil {
		return fmt.Errorf("failed to list projects: %w", err)
	}
	for _, p := range projects {
		if p.ID != projectID {
			continue
		}
		name := ""
		if len(p.Segments) > 0 {
			name = p.Segments[0].MediaName
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Project:    %s\n", p.ID)
		fmt.Fprintf(cmd.OutOrStdout(), "Media:      %s\n", name)
		fmt.Fprintf(cmd.OutOrStdout(), "Duration:   %s\n", media.FormatDuration(timeline.TotalDuration(p.Segments)))
		if st, err := os.Stat(name); err == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "Size:       %s\n", media.FormatFileSize(st.Size()))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Segments:   %d\n", len(p.Segments))
		fmt.Fprintf(cmd.OutOrStdout(), "Captions:   %d\n", len(p.Captions))
		fmt.Fprintf(cmd.OutOrStdout(), "Modified:   %s\n", time.UnixMilli(p.LastModified).Format("2006-01-02 15:04:05"))
		return nil
	}
	return fmt.Errorf("project %s not found", projectID)
}
