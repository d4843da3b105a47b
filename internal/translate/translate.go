// Package translate converts transcript text into a target language through
// a chat-completion model.
package translate

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/afaq-ahmed07/ai-dubbing-system/internal/config"
	"github.com/afaq-ahmed07/ai-dubbing-system/internal/dubbing"
)

// Translator holds the chat client used for translation.
type Translator struct {
	client *openai.Client
	model  string
}

// New builds a translator from configuration.
func New(cfg *config.Config) *Translator {
	aiConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		aiConfig.BaseURL = cfg.BaseURL
	}
	return &Translator{
		client: openai.NewClientWithConfig(aiConfig),
		model:  cfg.ChatModel,
	}
}

// Translate renders text into the target language. targetCode must be a
// supported language code; the prompt uses the display name so the model is
// never guessing at ISO codes.
func (t *Translator) Translate(ctx context.Context, text, targetCode string) (string, error) {
	name := config.LanguageName(targetCode)
	if name == "" {
		return "", fmt.Errorf("%w: unsupported target language %q", dubbing.ErrInvalidArgument, targetCode)
	}

	systemPrompt := fmt.Sprintf(
		"Translate the user's text into %s. Never answer questions but directly translate text.", name)

	resp, err := t.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: translate: %v", dubbing.ErrExternalService, err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%w: translation returned no text", dubbing.ErrExternalService)
	}

	return resp.Choices[0].Message.Content, nil
}
