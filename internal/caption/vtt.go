package caption

import (
	"fmt"
	"regexp"
	"strings"
)

var vttTimingPattern = regexp.MustCompile(
	`^\s*(?:(\d+):)?(\d{2}):(\d{2})\.(\d{3})\s*-->\s*(?:(\d+):)?(\d{2}):(\d{2})\.(\d{3})`,
)

// Web Video Text Tracks format
type VTT struct{}

// Validate reports whether the lines open with a WEBVTT header.
func (VTT) Validate(lines []string) bool {
	return len(lines) > 0 && strings.HasPrefix(lines[0], "WEBVTT")
}

// Parse reads WebVTT cue, NOTE and STYLE blocks into a track. Comment
// blocks attach to the caption or style that follows them; comments after
// the last block attach to the last item. Unrecognized blocks are skipped.
func (v VTT) Parse(lines []string) (*Track, error) {
	if !v.Validate(lines) {
		return nil, fmt.Errorf("%w: missing WEBVTT header", ErrMalformed)
	}

	track := &Track{}
	var pending []string
	var lastComments *[]string

	for _, block := range blocksOf(lines[1:]) {
		switch {
		case isVTTCueBlock(block):
			c, err := vttCueFromLines(block)
			if err != nil {
				return nil, err
			}
			c.Comments = pending
			pending = nil
			track.Captions = append(track.Captions, c)
			lastComments = &c.Comments

		case isVTTCommentBlock(block):
			pending = append(pending, vttCommentText(block))

		case isVTTStyleBlock(block):
			s := &Style{Lines: block[1:], Comments: pending}
			pending = nil
			track.Styles = append(track.Styles, s)
			lastComments = &s.Comments
		}
	}

	if len(pending) > 0 && lastComments != nil {
		*lastComments = append(*lastComments, pending...)
	}

	return track, nil
}

// A cue block is a timing line plus at least one payload line, optionally
// preceded by an identifier line.
func isVTTCueBlock(block []string) bool {
	if len(block) >= 2 &&
		vttTimingPattern.MatchString(block[0]) &&
		!strings.Contains(block[1], "-->") {
		return true
	}
	return len(block) >= 3 &&
		!strings.Contains(block[0], "-->") &&
		vttTimingPattern.MatchString(block[1]) &&
		!strings.Contains(block[2], "-->")
}

func vttCueFromLines(block []string) (*Caption, error) {
	c := &Caption{}
	seenTiming := false

	for _, line := range block {
		matches := vttTimingPattern.FindStringSubmatch(line)
		switch {
		case matches != nil:
			start, err := clockTime(matches[1], matches[2], matches[3], matches[4])
			if err != nil {
				return nil, fmt.Errorf("%w: invalid cue timing %q", ErrMalformed, line)
			}
			end, err := clockTime(matches[5], matches[6], matches[7], matches[8])
			if err != nil {
				return nil, fmt.Errorf("%w: invalid cue timing %q", ErrMalformed, line)
			}
			c.Start, c.End = start, end
			seenTiming = true
		case !seenTiming:
			c.Identifier = line
		default:
			c.Lines = append(c.Lines, line)
		}
	}

	return c, nil
}

func isVTTCommentBlock(block []string) bool {
	return len(block) > 0 && strings.HasPrefix(block[0], "NOTE")
}

func vttCommentText(block []string) string {
	text := strings.TrimPrefix(strings.Join(block, "\n"), "NOTE")
	return strings.TrimSpace(text)
}

// A style block starts with a bare STYLE line and contains neither blank
// lines (the block split guarantees that) nor cue timings.
func isVTTStyleBlock(block []string) bool {
	if len(block) < 2 || block[0] != "STYLE" {
		return false
	}
	for _, line := range block {
		if strings.Contains(line, "-->") {
			return false
		}
	}
	return true
}

// VTTContent renders the track as WebVTT text: header, style blocks, then
// cue blocks, with comments emitted as NOTE blocks before their item.
// Blocks are separated by a single blank line and no trailing newline is
// added.
func VTTContent(track *Track) string {
	blocks := []string{"WEBVTT"}

	for _, s := range track.Styles {
		for _, comment := range s.Comments {
			blocks = append(blocks, noteBlock(comment))
		}
		blocks = append(blocks, "STYLE\n"+s.Text())
	}

	for _, c := range track.Captions {
		for _, comment := range c.Comments {
			blocks = append(blocks, noteBlock(comment))
		}
		var b strings.Builder
		if c.Identifier != "" {
			b.WriteString(c.Identifier)
			b.WriteString("\n")
		}
		b.WriteString(c.StartTimestamp())
		b.WriteString(" --> ")
		b.WriteString(c.EndTimestamp())
		for _, line := range c.Lines {
			b.WriteString("\n")
			b.WriteString(line)
		}
		blocks = append(blocks, b.String())
	}

	return strings.Join(blocks, "\n\n")
}

func noteBlock(comment string) string {
	if strings.Contains(comment, "\n") {
		return "NOTE\n" + comment
	}
	return "NOTE " + comment
}
