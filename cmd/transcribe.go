package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/afaq-ahmed07/ai-dubbing-system/internal/worker"
)

var transcribeCmd = &cobra.Command{
	Use:   "transcribe <input-file>",
	Short: "Transcribe audio/video to a transcript and SRT subtitles",
	Long: `Transcribe an audio or video file: extract the audio track if needed,
run it through the configured speech-to-text backend, and write the plain
transcript (.txt) and SRT subtitle (.srt) files.`,
	Args: cobra.ExactArgs(1),
	RunE: runTranscribe,
}

var (
	language       string
	output         string
	noAsync        bool
	copyTranscript bool
)

func init() {
	transcribeCmd.Flags().StringVarP(&language, "language", "l", "auto", "spoken language hint (code or 'auto')")
	transcribeCmd.Flags().StringVarP(&output, "output", "o", "", "output SRT path (default: <input>.srt)")
	transcribeCmd.Flags().BoolVar(&noAsync, "no-async", false, "disable concurrent chunk processing")
	transcribeCmd.Flags().BoolVar(&copyTranscript, "copy", false, "copy the transcript to the clipboard")

	rootCmd.AddCommand(transcribeCmd)
}

// validateInput resolves and checks the input media path.
func validateInput(inputPath string) (string, error) {
	absPath, err := filepath.Abs(inputPath)
	if err != nil {
		return "", fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); os.IsNotExist(err) {
		return "", fmt.Errorf("file not found: %s", inputPath)
	}

	ext := strings.ToLower(filepath.Ext(absPath))
	validExts := map[string]bool{
		".mp3": true, ".m4a": true, ".wav": true, ".flac": true,
		".ogg": true, ".aac": true, ".mp4": true, ".mov": true,
		".mkv": true, ".avi": true, ".flv": true, ".webm": true,
	}
	if !validExts[ext] {
		return "", fmt.Errorf("unsupported file type: %s", ext)
	}

	return absPath, nil
}

func runTranscribe(cmd *cobra.Command, args []string) error {
	absPath, err := validateInput(args[0])
	if err != nil {
		return err
	}

	// Setup signal handling for graceful cancellation.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := worker.Options{
		InputPath:       absPath,
		OutputPath:      output,
		Language:        language,
		NoAsync:         noAsync,
		CopyToClipboard: copyTranscript,
		Config:          cfg,
	}

	if _, err := worker.Run(ctx, opts); err != nil {
		return err
	}

	if !quiet {
		slog.Info("done")
	}
	return nil
}
