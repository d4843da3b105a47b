package worker

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/afaq-ahmed07/ai-dubbing-system/internal/transcribe"
)

type chunkResult struct {
	Index  int
	Result *transcribe.Result
}

// processConcurrent processes chunks concurrently with bounded parallelism
// and rate limiting.
func processConcurrent(ctx context.Context, backend transcribe.Transcriber, chunks []string, splitDurationSec int, opts Options) (*transcribe.Result, error) {
	cfg := opts.Config

	slog.Info("starting concurrent processing",
		"chunks", len(chunks),
		"max_concurrent", cfg.MaxConcurrentChunks,
		"rate_limit_rpm", cfg.APIRateLimitPerMin)

	// Rate limiter: tokens per second = RPM / 60.
	limiter := rate.NewLimiter(rate.Limit(float64(cfg.APIRateLimitPerMin)/60.0), 1)

	var (
		mu      sync.Mutex
		results []chunkResult
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.MaxConcurrentChunks)

	for i, chunk := range chunks {
		i, chunk := i, chunk
		g.Go(func() error {
			// Rate limit.
			if err := limiter.Wait(gctx); err != nil {
				return fmt.Errorf("rate limiter: %w", err)
			}

			slog.Info("starting chunk upload", "chunk", fmt.Sprintf("%d/%d", i+1, len(chunks)))

			var result *transcribe.Result
			var lastErr error

			// Retry loop with exponential backoff.
			for attempt := 0; attempt < cfg.MaxRetries; attempt++ {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}

				progress := func(read, total int64) {
					pct := 0.0
					if total > 0 {
						pct = math.Min(float64(read)/float64(total)*100, 100)
					}
					slog.Debug("chunk upload progress",
						"chunk", i+1,
						"percent", fmt.Sprintf("%.1f%%", pct))
				}

				r, err := backend.Transcribe(gctx, chunk, opts.Language, progress)
				if err == nil {
					result = r
					break
				}

				lastErr = err
				if attempt < cfg.MaxRetries-1 {
					backoff := 1 << uint(attempt) // 1s, 2s, 4s...
					slog.Warn("chunk failed, retrying",
						"chunk", i+1,
						"attempt", attempt+1,
						"backoff_sec", backoff,
						"err", err)

					timer := time.NewTimer(time.Duration(backoff) * time.Second)
					select {
					case <-gctx.Done():
						timer.Stop()
						return gctx.Err()
					case <-timer.C:
					}
				}
			}

			if result == nil {
				return fmt.Errorf("chunk %d/%d failed after %d retries: %w",
					i+1, len(chunks), cfg.MaxRetries, lastErr)
			}

			// Apply time offset.
			if i > 0 {
				applyTimeOffset(result.Segments, float64(i*splitDurationSec))
			}

			mu.Lock()
			results = append(results, chunkResult{Index: i, Result: result})
			mu.Unlock()

			slog.Info("chunk completed", "chunk", fmt.Sprintf("%d/%d", i+1, len(chunks)))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		// Check if some chunks succeeded — try fallback to sequential for remaining.
		mu.Lock()
		completedCount := len(results)
		mu.Unlock()

		if completedCount > 0 {
			slog.Warn("concurrent processing partially failed, falling back to sequential",
				"completed", completedCount, "total", len(chunks), "err", err)
			return fallbackToSequential(ctx, backend, chunks, splitDurationSec, opts, results)
		}
		return nil, err
	}

	return mergeResults(results), nil
}

func mergeResults(results []chunkResult) *transcribe.Result {
	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})

	combined := &transcribe.Result{
		Language: results[0].Result.Language,
	}

	for _, r := range results {
		combined.Segments = append(combined.Segments, r.Result.Segments...)
		if combined.Text != "" {
			combined.Text += " "
		}
		combined.Text += r.Result.Text
	}

	return combined
}

func fallbackToSequential(ctx context.Context, backend transcribe.Transcriber, chunks []string, splitDurationSec int, opts Options, completed []chunkResult) (*transcribe.Result, error) {
	slog.Info("falling back to sequential processing for remaining chunks")

	// Track which chunks are done.
	done := make(map[int]bool)
	for _, r := range completed {
		done[r.Index] = true
	}

	// Process remaining chunks sequentially.
	for i, chunk := range chunks {
		if done[i] {
			continue
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		slog.Info("sequential fallback processing chunk", "chunk", fmt.Sprintf("%d/%d", i+1, len(chunks)))

		result, err := transcribeWithProgress(ctx, backend, chunk, opts)
		if err != nil {
			return nil, fmt.Errorf("sequential fallback chunk %d/%d: %w", i+1, len(chunks), err)
		}

		if i > 0 {
			applyTimeOffset(result.Segments, float64(i*splitDurationSec))
		}

		completed = append(completed, chunkResult{Index: i, Result: result})
	}

	return mergeResults(completed), nil
}
