package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/afaq-ahmed07/ai-dubbing-system/internal/config"
)

var (
	verbose    bool
	quiet      bool
	configPath string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "dub",
	Short: "AI dubbing pipeline: transcribe, translate, and voice over media files",
	Long: `Dub turns an audio or video file into a dubbed one: it transcribes the
speech to a transcript and SRT subtitles, translates the transcript into a
target language, synthesizes the translated speech, and splices the new
audio track back into the source video.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogging()

		var err error
		cfg, err = config.Load(configPath)
		return err
	},
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	if quiet {
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "dub.yaml", "path to YAML config file")
}
