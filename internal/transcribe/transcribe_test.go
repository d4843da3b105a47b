package transcribe

import (
	"errors"
	"testing"

	"github.com/afaq-ahmed07/ai-dubbing-system/internal/config"
	"github.com/afaq-ahmed07/ai-dubbing-system/internal/dubbing"
	"github.com/afaq-ahmed07/ai-dubbing-system/internal/subtitle"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		result  *Result
		wantErr bool
	}{
		{"nil result", nil, true},
		{"empty text", &Result{Language: "en"}, true},
		{"missing language", &Result{Text: "hello"}, true},
		{"valid", &Result{Language: "en", Text: "hello"}, false},
		{"valid without segments", &Result{Language: "en", Text: "hello", Segments: nil}, false},
		{"valid with segments", &Result{
			Language: "en",
			Text:     "hello",
			Segments: []subtitle.Segment{{Start: 0, End: 1, Text: "hello"}},
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(tt.result)
			if tt.wantErr {
				if !errors.Is(err, dubbing.ErrTranscriptionFailed) {
					t.Errorf("Check() error = %v, want ErrTranscriptionFailed", err)
				}
			} else if err != nil {
				t.Errorf("Check() unexpected error: %v", err)
			}
		})
	}
}

func TestNew_BackendSelection(t *testing.T) {
	cfg := config.Default()

	if _, err := New(cfg); err != nil {
		t.Errorf("default backend: %v", err)
	}

	cfg.Backend = "elevenlabs"
	if _, err := New(cfg); err != nil {
		t.Errorf("elevenlabs backend: %v", err)
	}

	cfg.Backend = "nonsense"
	if _, err := New(cfg); err == nil {
		t.Error("expected error for unknown backend")
	}
}
