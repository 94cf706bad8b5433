package dto

import (
	"math"
	"regexp"
	"strconv"
)

// The remote advertises polling cadence as ISO-8601-style durations
// restricted to a single hour/minute/second magnitude, e.g. "PT10S",
// "PT1.5S", "PT2M".
var isoDurationRE = regexp.MustCompile(`^PT(\d+(?:\.\d+)?)(H|M|S)$`)

// ParseDurationMillis converts an ISO-8601-style duration string to
// milliseconds. The second return is false when the value does not match,
// in which case the caller keeps its prior configured value.
func ParseDurationMillis(s string) (int64, bool) {
	m := isoDurationRE.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}

	magnitude, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}

	var unitMillis float64
	switch m[2] {
	case "H":
		unitMillis = 3600 * 1000
	case "M":
		unitMillis = 60 * 1000
	case "S":
		unitMillis = 1000
	}

	return int64(math.Round(magnitude * unitMillis)), true
}
