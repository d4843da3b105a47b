package worker

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/afaq-ahmed07/ai-dubbing-system/internal/artifact"
	"github.com/afaq-ahmed07/ai-dubbing-system/internal/config"
	"github.com/afaq-ahmed07/ai-dubbing-system/internal/dubbing"
	"github.com/afaq-ahmed07/ai-dubbing-system/internal/ffmpeg"
	"github.com/afaq-ahmed07/ai-dubbing-system/internal/subtitle"
	"github.com/afaq-ahmed07/ai-dubbing-system/internal/transcribe"
)

// Options configures one transcription run.
type Options struct {
	InputPath       string
	OutputPath      string
	Language        string
	NoAsync         bool
	CopyToClipboard bool
	Config          *config.Config
}

// applyTimeOffset shifts segment timestamps by a chunk offset, rounding to
// millisecond precision.
func applyTimeOffset(segments []subtitle.Segment, offsetSec float64) {
	for i := range segments {
		segments[i].Start = math.Round((segments[i].Start+offsetSec)*1000) / 1000
		segments[i].End = math.Round((segments[i].End+offsetSec)*1000) / 1000
	}
}

// Run is the top-level orchestrator for the transcription operation: extract
// audio when the input is video, transcribe (chunked for long media), and
// write the transcript (.txt) and subtitle (.srt) documents. The returned
// session carries the results forward for dependent steps.
func Run(ctx context.Context, opts Options) (*dubbing.Session, error) {
	cfg := opts.Config
	inputPath := opts.InputPath

	outputSRT := opts.OutputPath
	if outputSRT == "" {
		base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
		outputSRT = base + ".srt"
	}
	outputTxt := strings.TrimSuffix(outputSRT, filepath.Ext(outputSRT)) + ".txt"

	slog.Info("processing file", "input", filepath.Base(inputPath))

	// Probe media.
	info := ffmpeg.LogMediaInfo(ctx, inputPath)
	duration := 0.0
	if info != nil {
		duration = info.Duration
	}

	// Every byproduct of this run lives in the scope and dies with it.
	scope := artifact.NewScope(cfg.TempDir)
	defer scope.Close()

	workingPath := inputPath

	// Extract audio from video if needed.
	ext := filepath.Ext(inputPath)
	if ffmpeg.IsVideoExtension(ext) && ffmpeg.Available() {
		audioPath, err := scope.Create("audio", ".wav")
		if err != nil {
			return nil, err
		}
		if err := ffmpeg.ExtractAudio(ctx, inputPath, audioPath); err != nil {
			return nil, fmt.Errorf("extract audio: %w", err)
		}
		workingPath = audioPath
	}

	backend, err := transcribe.New(cfg)
	if err != nil {
		return nil, err
	}

	var combined *transcribe.Result
	splitDurationSec := cfg.SplitDurationMin * 60

	if duration > float64(splitDurationSec) && ffmpeg.Available() {
		slog.Info("file duration exceeds split threshold, splitting",
			"duration_min", int(duration/60), "threshold_min", cfg.SplitDurationMin)

		chunkDir, err := scope.Workdir()
		if err != nil {
			return nil, err
		}
		chunks, err := ffmpeg.SplitAudio(ctx, workingPath, chunkDir, splitDurationSec)
		if err != nil {
			return nil, fmt.Errorf("split audio: %w", err)
		}
		for _, chunk := range chunks {
			scope.Track(chunk)
		}

		slog.Info("split into chunks", "count", len(chunks))

		if !opts.NoAsync && len(chunks) > 1 {
			combined, err = processConcurrent(ctx, backend, chunks, splitDurationSec, opts)
		} else {
			combined, err = processSequential(ctx, backend, chunks, splitDurationSec, opts)
		}
		if err != nil {
			return nil, err
		}
	} else {
		slog.Info("processing as single file")
		combined, err = transcribeWithProgress(ctx, backend, workingPath, opts)
		if err != nil {
			return nil, fmt.Errorf("transcribe: %w", err)
		}
	}

	if err := transcribe.Check(combined); err != nil {
		return nil, err
	}

	slog.Info("detected language", "code", combined.Language)

	transcript, srt, err := subtitle.Assemble(combined.Text, combined.Segments)
	if err != nil {
		return nil, fmt.Errorf("assemble subtitles: %w", err)
	}

	if err := os.WriteFile(outputTxt, []byte(transcript), 0644); err != nil {
		return nil, fmt.Errorf("write transcript file: %w", err)
	}
	slog.Info("transcript saved", "path", outputTxt)

	if srt != "" {
		if err := os.WriteFile(outputSRT, []byte(srt), 0644); err != nil {
			return nil, fmt.Errorf("write SRT file: %w", err)
		}
		slog.Info("SRT file saved", "path", outputSRT)
	} else {
		slog.Warn("transcript has no timed segments, skipping SRT")
	}

	if opts.CopyToClipboard {
		if err := clipboard.WriteAll(transcript); err != nil {
			slog.Warn("copy transcript to clipboard", "err", err)
		} else {
			slog.Info("transcript copied to clipboard")
		}
	}

	return &dubbing.Session{
		InputPath:  inputPath,
		Language:   combined.Language,
		Transcript: transcript,
		SRT:        srt,
	}, nil
}

func transcribeWithProgress(ctx context.Context, backend transcribe.Transcriber, path string, opts Options) (*transcribe.Result, error) {
	progress := func(read, total int64) {
		pct := 0.0
		if total > 0 {
			pct = math.Min(float64(read)/float64(total)*100, 100)
		}
		slog.Debug("upload progress", "percent", fmt.Sprintf("%.1f%%", pct))
	}

	return backend.Transcribe(ctx, path, opts.Language, progress)
}
