package murmur

import (
	"fmt"
	"strconv"
	"strings"
)

// RawArchive is an unvalidated (seconds_per_point, points) pair produced by
// ParseSpecs. The Validator (validate.go) turns a slice of these into a
// sorted, structurally-sound archive list.
type RawArchive struct {
	SecondsPerPoint uint32
	Points          uint32
}

// unit names, longest-prefix-free so that any nonempty prefix of the full
// word maps unambiguously to one unit: "s"/"sec"/"secs"/"seconds" all mean
// seconds, "m"/"min"/"minutes" mean minutes, and so on.
var unitWords = []struct {
	word    string
	seconds uint64
}{
	{"seconds", 1},
	{"minutes", 60},
	{"hours", 3600},
	{"days", 86400},
	{"weeks", 604800},
	{"years", 7 * 365 * 86400}, // preserved bug: 2555 days, not 365
}

func unitSeconds(unit string) (uint64, error) {
	if unit == "" {
		return 1, nil
	}
	for _, u := range unitWords {
		if strings.HasPrefix(u.word, unit) {
			return u.seconds, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown unit %q", ErrInvalidSpec, unit)
}

// splitNumberUnit splits "10s", "60", "1h" into a numeric prefix and a
// trailing alphabetic unit suffix.
func splitNumberUnit(s string) (number uint64, unit string, err error) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, "", fmt.Errorf("%w: %q has no leading integer", ErrInvalidSpec, s)
	}
	n, err := strconv.ParseUint(s[:i], 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("%w: %q: %v", ErrInvalidSpec, s, err)
	}
	return n, s[i:], nil
}

// parsePrecision parses the "<precision>" half of a spec: "<integer><unit?>".
func parsePrecision(s string) (uint32, error) {
	n, unit, err := splitNumberUnit(s)
	if err != nil {
		return 0, err
	}
	mult, err := unitSeconds(unit)
	if err != nil {
		return 0, err
	}
	return uint32(n * mult), nil
}

// parseRetention parses the "<retention>" half of a spec: either a bare
// point count, or "<integer><unit>" expressing a duration divided by
// secondsPerPoint (truncating).
func parseRetention(s string, secondsPerPoint uint32) (uint32, error) {
	n, unit, err := splitNumberUnit(s)
	if err != nil {
		return 0, err
	}
	if unit == "" {
		return uint32(n), nil
	}
	mult, err := unitSeconds(unit)
	if err != nil {
		return 0, err
	}
	durationSeconds := n * mult
	if secondsPerPoint == 0 {
		return 0, fmt.Errorf("%w: precision of 0 cannot divide a duration retention", ErrInvalidSpec)
	}
	return uint32(durationSeconds / uint64(secondsPerPoint)), nil
}

// ParseSpec parses a single "<precision>:<retention>" specification, e.g.
// "10s:1m", into a RawArchive.
func ParseSpec(spec string) (RawArchive, error) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return RawArchive{}, fmt.Errorf("%w: missing ':' in %q", ErrInvalidSpec, spec)
	}

	secondsPerPoint, err := parsePrecision(parts[0])
	if err != nil {
		return RawArchive{}, err
	}

	points, err := parseRetention(parts[1], secondsPerPoint)
	if err != nil {
		return RawArchive{}, err
	}

	return RawArchive{SecondsPerPoint: secondsPerPoint, Points: points}, nil
}

// ParseSpecs parses an ordered sequence of retention specifications into an
// unordered sequence of RawArchive descriptors. It performs no structural
// validation (I1-I4); that is Validate's job.
func ParseSpecs(specs []string) ([]RawArchive, error) {
	if len(specs) == 0 {
		return nil, ErrEmptySpec
	}

	archives := make([]RawArchive, 0, len(specs))
	for i, s := range specs {
		a, err := ParseSpec(s)
		if err != nil {
			return nil, fmt.Errorf("spec %d (%q): %w", i, s, err)
		}
		archives = append(archives, a)
	}
	return archives, nil
}
