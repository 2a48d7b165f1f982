package caption

import (
	"fmt"
	"regexp"
)

var sbvTimingPattern = regexp.MustCompile(
	`^\s*(\d+):(\d{2}):(\d{2})\.(\d{3}),(\d+):(\d{2}):(\d{2})\.(\d{3})\s*$`,
)

// YouTube SBV format. Parse only; the toolkit never writes SBV.
type SBV struct{}

// Validate reports whether the first block is a valid SBV cue.
func (SBV) Validate(lines []string) bool {
	if len(lines) < 2 {
		return false
	}
	blocks := blocksOf(lines)
	return len(blocks) > 0 && isSBVCueBlock(blocks[0])
}

// Parse reads SBV cue blocks into a track. Malformed blocks are skipped.
func (s SBV) Parse(lines []string) (*Track, error) {
	if !s.Validate(lines) {
		return nil, fmt.Errorf("%w: not a valid SBV file", ErrMalformed)
	}

	track := &Track{}
	for _, block := range blocksOf(lines) {
		if !isSBVCueBlock(block) {
			continue
		}
		c, err := sbvCueFromLines(block)
		if err != nil {
			return nil, err
		}
		track.Captions = append(track.Captions, c)
	}

	return track, nil
}

func isSBVCueBlock(block []string) bool {
	return len(block) >= 2 && sbvTimingPattern.MatchString(block[0])
}

func sbvCueFromLines(block []string) (*Caption, error) {
	matches := sbvTimingPattern.FindStringSubmatch(block[0])
	start, err := clockTime(matches[1], matches[2], matches[3], matches[4])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid cue timing %q", ErrMalformed, block[0])
	}
	end, err := clockTime(matches[5], matches[6], matches[7], matches[8])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid cue timing %q", ErrMalformed, block[0])
	}

	return &Caption{Start: start, End: end, Lines: block[1:]}, nil
}
