// Package subtitle turns timed transcription segments into SRT documents.
package subtitle

import (
	"fmt"
	"strings"
)

// Segment is one recognized utterance span from a transcription backend.
// Text may carry leading/trailing whitespace; it is trimmed at assembly.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Cue is one subtitle block: 1-based index, formatted time range, trimmed text.
type Cue struct {
	Index int
	Start string
	End   string
	Text  string
}

// Track is an ordered cue list. Cue order is segment input order; the track
// never re-sorts, so indices are always exactly 1..N.
type Track []Cue

// Cues derives a track from segments, one cue per segment in input order.
func Cues(segments []Segment) (Track, error) {
	track := make(Track, 0, len(segments))
	for i, seg := range segments {
		start, err := FormatTimestamp(seg.Start)
		if err != nil {
			return nil, fmt.Errorf("segment %d start: %w", i+1, err)
		}
		end, err := FormatTimestamp(seg.End)
		if err != nil {
			return nil, fmt.Errorf("segment %d end: %w", i+1, err)
		}
		track = append(track, Cue{
			Index: i + 1,
			Start: start,
			End:   end,
			Text:  strings.TrimSpace(seg.Text),
		})
	}
	return track, nil
}

// String serializes the track in SRT form: index line, timing line, text,
// with a blank line separating cues. An empty track is the empty string.
func (t Track) String() string {
	if len(t) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, cue := range t {
		fmt.Fprintf(&sb, "%d\n%s --> %s\n%s\n", cue.Index, cue.Start, cue.End, cue.Text)
		if i < len(t)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Assemble produces the pair of caller-facing documents from a transcription:
// the trimmed transcript (passed through otherwise untouched) and the SRT
// document. Pure; identical input yields byte-identical output.
func Assemble(text string, segments []Segment) (transcript, srt string, err error) {
	track, err := Cues(segments)
	if err != nil {
		return "", "", err
	}
	return strings.TrimSpace(text), track.String(), nil
}
