package transcribe

import (
	"testing"
)

func TestGroupWords_SentenceBreaks(t *testing.T) {
	words := []word{
		{Text: "Hello", Start: 0, End: 0.4, Type: "word"},
		{Text: " ", Start: 0.4, End: 0.4, Type: "spacing"},
		{Text: "there.", Start: 0.4, End: 1.0, Type: "word"},
		{Text: " ", Start: 1.0, End: 1.0, Type: "spacing"},
		{Text: "Goodbye.", Start: 2.0, End: 3.0, Type: "word"},
	}

	segments := groupWords(words)
	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %d: %+v", len(segments), segments)
	}
	if segments[0].Text != "Hello there." {
		t.Errorf("segment 0 text = %q", segments[0].Text)
	}
	if segments[0].Start != 0 || segments[0].End != 1.0 {
		t.Errorf("segment 0 span = [%v, %v], want [0, 1]", segments[0].Start, segments[0].End)
	}
	if segments[1].Text != "Goodbye." {
		t.Errorf("segment 1 text = %q", segments[1].Text)
	}
	if segments[1].Start != 2.0 {
		t.Errorf("segment 1 start = %v, want 2.0", segments[1].Start)
	}
}

func TestGroupWords_AudioEventStandsAlone(t *testing.T) {
	words := []word{
		{Text: "Hi", Start: 0, End: 0.5, Type: "word"},
		{Text: "(laughter)", Start: 0.6, End: 1.2, Type: "audio_event"},
		{Text: "Bye.", Start: 1.5, End: 2.0, Type: "word"},
	}

	segments := groupWords(words)
	if len(segments) != 3 {
		t.Fatalf("expected 3 segments, got %d: %+v", len(segments), segments)
	}
	if segments[1].Text != "(laughter)" {
		t.Errorf("segment 1 = %q, want audio event", segments[1].Text)
	}
	// Chronological order preserved.
	if segments[0].Text != "Hi" || segments[2].Text != "Bye." {
		t.Errorf("unexpected segment order: %+v", segments)
	}
}

func TestGroupWords_DurationCap(t *testing.T) {
	// No punctuation at all; the duration cap has to close the segment.
	words := []word{
		{Text: "aaa", Start: 0, End: 4, Type: "word"},
		{Text: " ", Start: 4, End: 4, Type: "spacing"},
		{Text: "bbb", Start: 4, End: 9, Type: "word"},
		{Text: " ", Start: 9, End: 9, Type: "spacing"},
		{Text: "ccc", Start: 9, End: 10, Type: "word"},
	}

	segments := groupWords(words)
	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %d: %+v", len(segments), segments)
	}
	if segments[0].End-segments[0].Start < maxSegmentSec {
		t.Errorf("first segment closed early: %+v", segments[0])
	}
}

func TestGroupWords_Empty(t *testing.T) {
	if got := groupWords(nil); len(got) != 0 {
		t.Errorf("expected no segments, got %+v", got)
	}
	// Spacing-only input produces nothing.
	if got := groupWords([]word{{Text: " ", Type: "spacing"}}); len(got) != 0 {
		t.Errorf("expected no segments for spacing-only input, got %+v", got)
	}
}
