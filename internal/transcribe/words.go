package transcribe

import (
	"strings"
	"unicode/utf8"

	"github.com/afaq-ahmed07/ai-dubbing-system/internal/subtitle"
)

// Sentence-final punctuation that closes a segment.
var segmentBreak = map[rune]struct{}{
	'.': {}, '!': {}, '?': {},
	'。': {}, '！': {}, '？': {}, // 。！？
	'…': {}, // …
}

// A segment is also closed once it spans this long, so run-on speech without
// punctuation still yields readable cues.
const maxSegmentSec = 8.0

// groupWords folds the ElevenLabs word stream into timed sentence segments.
// Spacing tokens extend the current segment's text; audio events become
// standalone segments in place, preserving chronological order.
func groupWords(words []word) []subtitle.Segment {
	var segments []subtitle.Segment
	var cur *subtitle.Segment

	flush := func() {
		if cur != nil && strings.TrimSpace(cur.Text) != "" {
			segments = append(segments, *cur)
		}
		cur = nil
	}

	for _, w := range words {
		if w.Type == "audio_event" {
			flush()
			segments = append(segments, subtitle.Segment{Start: w.Start, End: w.End, Text: w.Text})
			continue
		}

		if w.Type == "spacing" {
			if cur != nil {
				cur.Text += w.Text
			}
			continue
		}

		if cur == nil {
			cur = &subtitle.Segment{Start: w.Start}
		}
		cur.Text += w.Text
		cur.End = w.End

		if endsSentence(w.Text) || cur.End-cur.Start >= maxSegmentSec {
			flush()
		}
	}
	flush()

	return segments
}

func endsSentence(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	last, _ := utf8.DecodeLastRuneInString(text)
	_, ok := segmentBreak[last]
	return ok
}
