package caption

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var timestampPattern = regexp.MustCompile(
	`^\s*(?:(\d+):)?(\d{1,2}):(\d{2})\.(\d{3})\s*$`,
)

// ParseTimestamp parses a caption timestamp in HH:MM:SS.mmm or MM:SS.mmm form.
func ParseTimestamp(value string) (time.Duration, error) {
	matches := timestampPattern.FindStringSubmatch(value)
	if matches == nil {
		return 0, fmt.Errorf("%w: invalid timestamp %q", ErrMalformed, value)
	}
	return clockTime(matches[1], matches[2], matches[3], matches[4])
}

// clockTime converts matched timestamp fields into a duration. An empty
// hours field counts as zero.
func clockTime(hours, minutes, seconds, millis string) (time.Duration, error) {
	if hours == "" {
		hours = "0"
	}
	h, err := strconv.Atoi(hours)
	if err != nil {
		return 0, err
	}
	m, err := strconv.Atoi(minutes)
	if err != nil {
		return 0, err
	}
	s, err := strconv.Atoi(seconds)
	if err != nil {
		return 0, err
	}
	ms, err := strconv.Atoi(millis)
	if err != nil {
		return 0, err
	}

	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(ms)*time.Millisecond, nil
}

// FormatTimestamp renders a duration as HH:MM:SS.mmm.
func FormatTimestamp(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	millis := int(d.Milliseconds()) % 1000

	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, seconds, millis)
}

// formatSRTTimestamp renders a duration as HH:MM:SS,mmm (comma decimal
// separator, as SubRip requires).
func formatSRTTimestamp(d time.Duration) string {
	return strings.Replace(FormatTimestamp(d), ".", ",", 1)
}
