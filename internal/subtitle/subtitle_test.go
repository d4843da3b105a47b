package subtitle

import (
	"errors"
	"testing"

	"github.com/afaq-ahmed07/ai-dubbing-system/internal/dubbing"
)

func TestAssemble_Document(t *testing.T) {
	segments := []Segment{
		{Start: 0.0, End: 1.25, Text: " Hello "},
		{Start: 1.25, End: 3.0, Text: "world."},
	}

	transcript, srt, err := Assemble("  Hello world.  ", segments)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	if transcript != "Hello world." {
		t.Errorf("transcript = %q, want trimmed pass-through", transcript)
	}

	want := "1\n00:00:00,000 --> 00:00:01,250\nHello\n\n2\n00:00:01,250 --> 00:00:03,000\nworld.\n"
	if srt != want {
		t.Errorf("srt document mismatch:\ngot:\n%s\nwant:\n%s", srt, want)
	}
}

func TestAssemble_Empty(t *testing.T) {
	transcript, srt, err := Assemble("some transcript", nil)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if srt != "" {
		t.Errorf("expected empty subtitle document for zero segments, got %q", srt)
	}
	if transcript != "some transcript" {
		t.Errorf("transcript = %q, want untouched text", transcript)
	}
}

func TestAssemble_Pure(t *testing.T) {
	segments := []Segment{
		{Start: 0, End: 1, Text: "one"},
		{Start: 1, End: 2, Text: "two"},
	}

	_, first, err := Assemble("x", segments)
	if err != nil {
		t.Fatal(err)
	}
	_, second, err := Assemble("x", segments)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("identical input should yield byte-identical output")
	}
}

func TestCues_InputOrder(t *testing.T) {
	// Out-of-chronological-order segments are passed through, not re-sorted.
	segments := []Segment{
		{Start: 10, End: 11, Text: "later"},
		{Start: 0, End: 1, Text: "earlier"},
		{Start: 5, End: 6, Text: "middle"},
	}

	track, err := Cues(segments)
	if err != nil {
		t.Fatalf("Cues: %v", err)
	}
	if len(track) != 3 {
		t.Fatalf("expected 3 cues, got %d", len(track))
	}
	for i, cue := range track {
		if cue.Index != i+1 {
			t.Errorf("cue %d has index %d, want %d", i, cue.Index, i+1)
		}
	}
	if track[0].Text != "later" || track[1].Text != "earlier" || track[2].Text != "middle" {
		t.Error("cue order should match input order")
	}
}

func TestCues_NegativeSegment(t *testing.T) {
	_, err := Cues([]Segment{{Start: -0.5, End: 1, Text: "bad"}})
	if err == nil {
		t.Fatal("expected error for negative segment start")
	}
	if !errors.Is(err, dubbing.ErrInvalidArgument) {
		t.Errorf("error = %v, want ErrInvalidArgument", err)
	}
}

func TestTrack_String_Empty(t *testing.T) {
	if got := (Track)(nil).String(); got != "" {
		t.Errorf("empty track should serialize to empty string, got %q", got)
	}
}
