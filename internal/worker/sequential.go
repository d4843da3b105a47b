package worker

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/afaq-ahmed07/ai-dubbing-system/internal/transcribe"
)

// processSequential processes chunks one at a time, applying time offsets.
func processSequential(ctx context.Context, backend transcribe.Transcriber, chunks []string, splitDurationSec int, opts Options) (*transcribe.Result, error) {
	var combined *transcribe.Result

	for i, chunk := range chunks {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		slog.Info("processing chunk",
			"chunk", fmt.Sprintf("%d/%d", i+1, len(chunks)),
			"file", filepath.Base(chunk))

		result, err := transcribeWithProgress(ctx, backend, chunk, opts)
		if err != nil {
			return nil, fmt.Errorf("chunk %d/%d failed: %w", i+1, len(chunks), err)
		}

		// Apply time offset to segments (skip first chunk — offset is 0).
		if i > 0 {
			applyTimeOffset(result.Segments, float64(i*splitDurationSec))
		}

		if combined == nil {
			combined = result
		} else {
			combined.Segments = append(combined.Segments, result.Segments...)
			if combined.Text != "" {
				combined.Text += " "
			}
			combined.Text += result.Text
		}

		slog.Info("chunk completed", "chunk", fmt.Sprintf("%d/%d", i+1, len(chunks)))
	}

	return combined, nil
}
