package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/afaq-ahmed07/ai-dubbing-system/internal/dubbing"
	"github.com/afaq-ahmed07/ai-dubbing-system/internal/worker"
)

var voiceoverCmd = &cobra.Command{
	Use:   "voiceover <input-file>",
	Short: "Transcribe, translate, and dub a media file end to end",
	Long: `Run the full dubbing chain: transcribe the input, translate the transcript
into the target language, synthesize the translated speech, and for video
input remux the synthesized track back into the video.`,
	Args: cobra.ExactArgs(1),
	RunE: runVoiceover,
}

var (
	dubTarget string
	dubVoice  string
	dubOutput string
)

func init() {
	voiceoverCmd.Flags().StringVarP(&dubTarget, "target", "t", "", "target language code or name (default from config)")
	voiceoverCmd.Flags().StringVar(&dubVoice, "voice", "", "synthesis voice (default from config)")
	voiceoverCmd.Flags().StringVarP(&dubOutput, "output", "o", "", "dubbed output path (default: <input>_dubbed.<ext>)")
	voiceoverCmd.Flags().StringVarP(&language, "language", "l", "auto", "spoken language hint (code or 'auto')")
	voiceoverCmd.Flags().BoolVar(&noAsync, "no-async", false, "disable concurrent chunk processing")

	rootCmd.AddCommand(voiceoverCmd)
}

func runVoiceover(cmd *cobra.Command, args []string) error {
	absPath, err := validateInput(args[0])
	if err != nil {
		return err
	}

	target := dubTarget
	if target == "" {
		target = cfg.DefaultTargetLanguage
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := worker.DubOptions{
		Options: worker.Options{
			InputPath: absPath,
			Language:  language,
			NoAsync:   noAsync,
			Config:    cfg,
		},
		TargetLanguage: target,
		Voice:          dubVoice,
		DubOutputPath:  dubOutput,
	}

	sess, err := worker.RunDub(ctx, opts)
	if err != nil {
		// Name the failed step; results already in the session stay on disk.
		switch {
		case errors.Is(err, dubbing.ErrTranscriptionFailed):
			return fmt.Errorf("transcription failed: %w", err)
		case sess != nil && sess.Translated == "":
			return fmt.Errorf("translation step failed (transcript preserved): %w", err)
		case sess != nil && sess.Voiceover == nil:
			return fmt.Errorf("voiceover step failed (translation preserved): %w", err)
		default:
			return err
		}
	}

	if !quiet {
		slog.Info("done")
	}
	return nil
}
