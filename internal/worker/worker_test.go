package worker

import (
	"testing"

	"github.com/afaq-ahmed07/ai-dubbing-system/internal/subtitle"
	"github.com/afaq-ahmed07/ai-dubbing-system/internal/transcribe"
)

func TestApplyTimeOffset(t *testing.T) {
	segments := []subtitle.Segment{
		{Start: 0, End: 1.5, Text: "a"},
		{Start: 1.5, End: 3.0005, Text: "b"},
	}

	applyTimeOffset(segments, 90)

	if segments[0].Start != 90 || segments[0].End != 91.5 {
		t.Errorf("segment 0 = [%v, %v], want [90, 91.5]", segments[0].Start, segments[0].End)
	}
	// Offsets round to millisecond precision.
	if segments[1].End != 93.001 && segments[1].End != 93.0 {
		t.Errorf("segment 1 end = %v, want millisecond-rounded value", segments[1].End)
	}
}

func TestMergeResults_OrdersByIndex(t *testing.T) {
	results := []chunkResult{
		{Index: 1, Result: &transcribe.Result{
			Language: "de",
			Text:     "second",
			Segments: []subtitle.Segment{{Start: 90, End: 91, Text: "second"}},
		}},
		{Index: 0, Result: &transcribe.Result{
			Language: "en",
			Text:     "first",
			Segments: []subtitle.Segment{{Start: 0, End: 1, Text: "first"}},
		}},
	}

	combined := mergeResults(results)

	if combined.Text != "first second" {
		t.Errorf("Text = %q, want chunks joined in index order", combined.Text)
	}
	if combined.Language != "en" {
		t.Errorf("Language = %q, want the first chunk's ('en')", combined.Language)
	}
	if len(combined.Segments) != 2 || combined.Segments[0].Text != "first" {
		t.Errorf("segments out of order: %+v", combined.Segments)
	}
}
