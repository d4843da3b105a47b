// Package transcribe wraps the speech-to-text backends. Each backend takes
// an audio file path and returns the detected language, the full transcript
// text, and the timed segment list.
package transcribe

import (
	"context"
	"fmt"

	"github.com/afaq-ahmed07/ai-dubbing-system/internal/config"
	"github.com/afaq-ahmed07/ai-dubbing-system/internal/dubbing"
	"github.com/afaq-ahmed07/ai-dubbing-system/internal/subtitle"
)

// Result is what a backend returns for one audio file.
type Result struct {
	Language string             `json:"language_code"`
	Text     string             `json:"text"`
	Segments []subtitle.Segment `json:"segments"`
}

// ProgressFunc is called with (bytesRead, totalBytes) during upload.
type ProgressFunc func(bytesRead, totalBytes int64)

// Transcriber is a pluggable speech-to-text backend. Implementations block
// until the transcript is available or ctx is done.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath, language string, progress ProgressFunc) (*Result, error)
}

// Check validates a backend result: no text or no detected language means
// the model produced nothing usable, which must never be presented as a
// successful transcription.
func Check(r *Result) error {
	if r == nil || r.Text == "" {
		return fmt.Errorf("%w: model returned no text", dubbing.ErrTranscriptionFailed)
	}
	if r.Language == "" {
		return fmt.Errorf("%w: no detected language", dubbing.ErrTranscriptionFailed)
	}
	return nil
}

// New selects a backend by the configured name.
func New(cfg *config.Config) (Transcriber, error) {
	switch cfg.Backend {
	case "", "whisper":
		return NewWhisper(cfg), nil
	case "elevenlabs":
		return NewElevenLabs(), nil
	default:
		return nil, fmt.Errorf("unknown transcription backend: %s", cfg.Backend)
	}
}
