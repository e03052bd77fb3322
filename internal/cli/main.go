package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Main builds the command tree and runs it
func Main() {
	_ = godotenv.Load() // best-effort: load .env if present

	root := &cobra.Command{
		Use:          "gnembren",
		Short:        "Edit and export word-synced captions over a segmented media timeline",
		SilenceUsage: true,
	}
	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	root.SilenceErrors = true

	newCmd := &cobra.Command{
		Use:   "new <media>",
		Short: "Create a project from a media file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(cmd, args[0])
		},
	}

	transcribeCmd := &cobra.Command{
		Use:   "transcribe <project-id> <media>",
		Short: "Generate captions for the active segment",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranscribe(cmd, args[0], args[1])
		},
	}
	transcribeCmd.Flags().Bool("force", false, "Transcribe even when the media name does not match the project")

	editCmd := &cobra.Command{
		Use:   "edit <project-id>",
		Short: "Apply an edit script to a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, args[0])
		},
	}
	editCmd.Flags().String("script", "", "Path to a JSON edit script (defaults to stdin)")

	exportCmd := &cobra.Command{
		Use:   "export <project-id>",
		Short: "Export captions as subtitles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args[0])
		},
	}
	exportCmd.Flags().String("format", "srt", "Subtitle format: srt or vtt")
	exportCmd.Flags().String("out", "", "Output file (defaults to stdout)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List stored projects, most recent first",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}

	infoCmd := &cobra.Command{
		Use:   "info <project-id>",
		Short: "Show project details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd, args[0])
		},
	}

	root.AddCommand(newCmd, transcribeCmd, editCmd, exportCmd, listCmd, infoCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
