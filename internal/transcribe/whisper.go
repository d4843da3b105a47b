package transcribe

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/afaq-ahmed07/ai-dubbing-system/internal/config"
	"github.com/afaq-ahmed07/ai-dubbing-system/internal/subtitle"
)

// Whisper transcribes via the OpenAI audio API in verbose-JSON mode, which
// returns the detected language and per-segment timings.
type Whisper struct {
	client *openai.Client
	model  string
}

// NewWhisper builds the backend from configuration.
func NewWhisper(cfg *config.Config) *Whisper {
	aiConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		aiConfig.BaseURL = cfg.BaseURL
	}
	return &Whisper{
		client: openai.NewClientWithConfig(aiConfig),
		model:  cfg.TranscribeModel,
	}
}

// Transcribe uploads the audio file and maps the verbose response to a
// Result. The progress callback is not supported by the client library and
// is ignored.
func (w *Whisper) Transcribe(ctx context.Context, audioPath, language string, _ ProgressFunc) (*Result, error) {
	req := openai.AudioRequest{
		Model:    w.model,
		FilePath: audioPath,
		Format:   openai.AudioResponseFormatVerboseJSON,
	}
	if language != "" && strings.ToLower(language) != "auto" {
		req.Language = language
	}

	resp, err := w.client.CreateTranscription(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("whisper transcription: %w", err)
	}

	segments := make([]subtitle.Segment, 0, len(resp.Segments))
	for _, s := range resp.Segments {
		segments = append(segments, subtitle.Segment{
			Start: s.Start,
			End:   s.End,
			Text:  s.Text,
		})
	}

	return &Result{
		Language: resp.Language,
		Text:     resp.Text,
		Segments: segments,
	}, nil
}
