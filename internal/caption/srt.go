package caption

import (
	"fmt"
	"regexp"
	"strings"
)

var srtTimingPattern = regexp.MustCompile(
	`^\s*(\d+):(\d{2}):(\d{2}),(\d{3})\s*-->\s*(\d+):(\d{2}):(\d{2}),(\d{3})`,
)

// SubRip format
type SRT struct{}

// Validate reports whether the lines open with an SRT cue: an index line,
// a timing line and a nonblank payload line.
func (SRT) Validate(lines []string) bool {
	return len(lines) >= 3 &&
		isDigits(lines[0]) &&
		strings.Contains(lines[1], "-->") &&
		strings.TrimSpace(lines[2]) != ""
}

// Parse reads SRT cue blocks into a track. Malformed blocks are skipped.
func (s SRT) Parse(lines []string) (*Track, error) {
	if !s.Validate(lines) {
		return nil, fmt.Errorf("%w: not a valid SRT file", ErrMalformed)
	}

	track := &Track{}
	for _, block := range blocksOf(lines) {
		if !isSRTCueBlock(block) {
			continue
		}
		c, err := srtCueFromLines(block)
		if err != nil {
			return nil, err
		}
		track.Captions = append(track.Captions, c)
	}

	return track, nil
}

func isSRTCueBlock(block []string) bool {
	return len(block) >= 3 &&
		isDigits(block[0]) &&
		srtTimingPattern.MatchString(block[1])
}

func srtCueFromLines(block []string) (*Caption, error) {
	matches := srtTimingPattern.FindStringSubmatch(block[1])
	start, err := clockTime(matches[1], matches[2], matches[3], matches[4])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid cue timing %q", ErrMalformed, block[1])
	}
	end, err := clockTime(matches[5], matches[6], matches[7], matches[8])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid cue timing %q", ErrMalformed, block[1])
	}

	return &Caption{Start: start, End: end, Lines: block[2:]}, nil
}

func isDigits(line string) bool {
	if line == "" {
		return false
	}
	for _, r := range line {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// SRTContent renders the track as SubRip text: 1-based index, comma
// decimal timings and raw lines per cue, blocks separated by a single
// blank line, no trailing blank line.
func SRTContent(track *Track) string {
	blocks := make([]string, 0, len(track.Captions))
	for i, c := range track.Captions {
		var b strings.Builder
		fmt.Fprintf(&b, "%d\n", i+1)
		b.WriteString(formatSRTTimestamp(c.Start))
		b.WriteString(" --> ")
		b.WriteString(formatSRTTimestamp(c.End))
		for _, line := range c.Lines {
			b.WriteString("\n")
			b.WriteString(line)
		}
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n\n")
}
