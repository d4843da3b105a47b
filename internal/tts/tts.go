// Package tts synthesizes speech from text. The synthesized audio is handed
// back as an in-memory buffer; no file path leaves this package.
package tts

import (
	"bytes"
	"context"
	"fmt"
	"io"

	openai "github.com/sashabaranov/go-openai"

	"github.com/afaq-ahmed07/ai-dubbing-system/internal/config"
	"github.com/afaq-ahmed07/ai-dubbing-system/internal/dubbing"
)

// Synthesizer holds the speech client.
type Synthesizer struct {
	client *openai.Client
	model  openai.SpeechModel
	voice  openai.SpeechVoice
}

// New builds a synthesizer from configuration.
func New(cfg *config.Config) *Synthesizer {
	aiConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		aiConfig.BaseURL = cfg.BaseURL
	}
	return &Synthesizer{
		client: openai.NewClientWithConfig(aiConfig),
		model:  openai.SpeechModel(cfg.SpeechModel),
		voice:  openai.SpeechVoice(cfg.Voice),
	}
}

// Synthesize streams the spoken rendition of text into a byte buffer.
// voice overrides the configured default when non-empty.
func (s *Synthesizer) Synthesize(ctx context.Context, text, voice string) ([]byte, error) {
	v := s.voice
	if voice != "" {
		v = openai.SpeechVoice(voice)
	}

	resp, err := s.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          s.model,
		Input:          text,
		Voice:          v,
		ResponseFormat: openai.SpeechResponseFormatMp3,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: create speech: %v", dubbing.ErrExternalService, err)
	}
	defer resp.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp); err != nil {
		return nil, fmt.Errorf("%w: read speech stream: %v", dubbing.ErrExternalService, err)
	}
	if buf.Len() == 0 {
		return nil, fmt.Errorf("%w: speech synthesis returned no audio", dubbing.ErrExternalService)
	}

	return buf.Bytes(), nil
}
