// dataitems/cat062/time_of_track_information.go
package v120

import (
	"bytes"
	"fmt"
	"math"

	"github.com/surveillance-tools/panoramix/cat/common/wire"
)

// TimeOfTrackInformation implements I062/070
// Absolute time stamping of the information provided in the track message,
// in the form of elapsed time since last midnight, expressed as UTC.
type TimeOfTrackInformation struct {
	Time float64 // Time in seconds since midnight
}

func (t *TimeOfTrackInformation) Decode(buf *bytes.Buffer) (int, error) {
	data, err := wire.Take(buf, 3, "time of track information")
	if err != nil {
		return 0, err
	}

	counts := wire.Uint24BE(data)
	t.Time = float64(counts) / 128.0 // LSB = 1/128 seconds = 2^-7 seconds

	return 3, nil
}

func (t *TimeOfTrackInformation) Encode(buf *bytes.Buffer) (int, error) {
	// Handle time wraparound to ensure it fits in 3 bytes
	adjustedTime := t.Time

	// The maximum value representable in 3 bytes (24 bits) at 1/128 second resolution
	// would be (2^24 - 1) / 128 seconds = 131071.99219 seconds ≈ 36.4 hours
	maxTime := (1<<24 - 1) / 128.0

	if adjustedTime < 0 {
		return 0, fmt.Errorf("negative time not allowed: %f", adjustedTime)
	}

	// If time exceeds maximum representable value, wrap around
	if adjustedTime > maxTime {
		adjustedTime = math.Mod(adjustedTime, maxTime)
	}

	counts := uint32(math.Round(adjustedTime * 128.0))
	wire.PutUint24BE(buf, counts)

	return 3, nil
}

func (t *TimeOfTrackInformation) Validate() error {
	return nil
}

func (t *TimeOfTrackInformation) String() string {
	// Extract hours, minutes, seconds
	seconds := math.Mod(t.Time, 86400) // Limit to 24 hours for display
	hours := int(seconds) / 3600
	minutes := (int(seconds) % 3600) / 60
	secs := int(seconds) % 60
	fraction := seconds - math.Floor(seconds)

	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, secs, int(fraction*1000))
}
