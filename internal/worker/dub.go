package worker

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/afaq-ahmed07/ai-dubbing-system/internal/artifact"
	"github.com/afaq-ahmed07/ai-dubbing-system/internal/config"
	"github.com/afaq-ahmed07/ai-dubbing-system/internal/dubbing"
	"github.com/afaq-ahmed07/ai-dubbing-system/internal/ffmpeg"
	"github.com/afaq-ahmed07/ai-dubbing-system/internal/translate"
	"github.com/afaq-ahmed07/ai-dubbing-system/internal/tts"
)

// DubOptions configures the full voiceover operation.
type DubOptions struct {
	Options

	TargetLanguage string
	Voice          string
	// DubOutputPath is where the dubbed video (or standalone voiceover
	// audio) lands; empty derives it from the input name.
	DubOutputPath string
}

// RunDub runs the whole chain: transcribe, translate, synthesize speech, and
// for video input remux the synthesized track back in. The session is
// returned even when a later step fails, so earlier results survive.
func RunDub(ctx context.Context, opts DubOptions) (*dubbing.Session, error) {
	cfg := opts.Config

	target := config.NormalizeLanguage(opts.TargetLanguage)
	if target == "" {
		return nil, fmt.Errorf("%w: unsupported target language %q",
			dubbing.ErrInvalidArgument, opts.TargetLanguage)
	}

	// Step 1: transcription (writes .txt/.srt as a side product).
	sess, err := Run(ctx, opts.Options)
	if err != nil {
		return nil, err
	}

	// Step 2: translation.
	slog.Info("translating transcript", "target", config.LanguageName(target))
	translated, err := translate.New(cfg).Translate(ctx, sess.Transcript, target)
	if err != nil {
		return sess, fmt.Errorf("translate: %w", err)
	}
	sess.TargetLanguage = target
	sess.Translated = translated

	// Step 3: speech synthesis.
	slog.Info("generating voiceover", "voice", voiceName(cfg, opts.Voice))
	speech, err := tts.New(cfg).Synthesize(ctx, translated, opts.Voice)
	if err != nil {
		return sess, fmt.Errorf("synthesize voiceover: %w", err)
	}
	sess.Voiceover = speech

	// Step 4: hand the audio back — remuxed into the video when the input
	// was video, as a standalone audio file otherwise.
	outPath, err := deliverVoiceover(ctx, sess, opts)
	if err != nil {
		return sess, err
	}
	slog.Info("dub complete", "output", outPath)

	return sess, nil
}

func deliverVoiceover(ctx context.Context, sess *dubbing.Session, opts DubOptions) (string, error) {
	cfg := opts.Config
	inputPath := opts.InputPath
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(inputPath, ext)

	if ffmpeg.IsVideoExtension(ext) && ffmpeg.Available() {
		outPath := opts.DubOutputPath
		if outPath == "" {
			outPath = base + "_dubbed" + ext
		}

		// The synthesized track touches disk only inside this scope.
		scope := artifact.NewScope(cfg.TempDir)
		defer scope.Close()

		voicePath, err := scope.WriteFile("voiceover", ".mp3", sess.Voiceover)
		if err != nil {
			return "", err
		}
		if err := ffmpeg.ReplaceAudio(ctx, inputPath, voicePath, outPath); err != nil {
			return "", fmt.Errorf("remux dubbed video: %w", err)
		}
		return outPath, nil
	}

	outPath := opts.DubOutputPath
	if outPath == "" {
		outPath = base + "_voiceover.mp3"
	}
	if err := os.WriteFile(outPath, sess.Voiceover, 0644); err != nil {
		return "", fmt.Errorf("write voiceover file: %w", err)
	}
	return outPath, nil
}

func voiceName(cfg *config.Config, override string) string {
	if override != "" {
		return override
	}
	return cfg.Voice
}
