package subtitle

import (
	"fmt"
	"math"

	"github.com/afaq-ahmed07/ai-dubbing-system/internal/dubbing"
)

// FormatTimestamp converts a non-negative seconds offset to the SRT time form
// HH:MM:SS,mmm. Input is rounded to the nearest whole millisecond (half away
// from zero) before decomposition, so carries propagate exactly: 59.9996
// renders as 00:01:00,000, never 00:00:60,000. Hours grow past two digits
// without truncation.
func FormatTimestamp(seconds float64) (string, error) {
	if seconds < 0 {
		return "", fmt.Errorf("%w: negative timestamp %g", dubbing.ErrInvalidArgument, seconds)
	}

	// All arithmetic on the integer millisecond count; decomposing the
	// original float leaks rounding residue into the fields.
	ms := int64(math.Round(seconds * 1000))
	hours := ms / 3_600_000
	ms %= 3_600_000
	minutes := ms / 60_000
	ms %= 60_000
	secs := ms / 1000
	ms %= 1000

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, ms), nil
}
