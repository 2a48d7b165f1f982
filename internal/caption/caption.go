package caption

import (
	"regexp"
	"strings"
	"time"
)

var cueTagPattern = regexp.MustCompile(`<.*?>`)

// represents a single caption cue: a time interval plus its text lines
type Caption struct {
	Start      time.Duration
	End        time.Duration
	Identifier string
	Lines      []string
	Comments   []string
}

// builds a caption from formatted timestamps and text lines
func New(start, end string, lines ...string) (*Caption, error) {
	startTime, err := ParseTimestamp(start)
	if err != nil {
		return nil, err
	}
	endTime, err := ParseTimestamp(end)
	if err != nil {
		return nil, err
	}
	return &Caption{Start: startTime, End: endTime, Lines: lines}, nil
}

// Text returns the caption lines joined with newlines, cue tags included.
func (c *Caption) Text() string {
	return strings.Join(c.Lines, "\n")
}

// CueText returns the caption text with cue tags such as <b> or <v Name> removed.
func (c *Caption) CueText() string {
	return cueTagPattern.ReplaceAllString(c.Text(), "")
}

// StartSeconds returns the start time truncated to whole seconds.
func (c *Caption) StartSeconds() int {
	return int(c.Start / time.Second)
}

// EndSeconds returns the end time truncated to whole seconds.
func (c *Caption) EndSeconds() int {
	return int(c.End / time.Second)
}

func (c *Caption) StartTimestamp() string {
	return FormatTimestamp(c.Start)
}

func (c *Caption) EndTimestamp() string {
	return FormatTimestamp(c.End)
}

// Equal reports whether two captions carry the same timing, text and identifier.
func (c *Caption) Equal(other *Caption) bool {
	return c.Start == other.Start &&
		c.End == other.End &&
		c.Text() == other.Text() &&
		c.Identifier == other.Identifier
}

// represents a WebVTT STYLE block
type Style struct {
	Lines    []string
	Comments []string
}

func (s *Style) Text() string {
	return strings.Join(s.Lines, "\n")
}

// represents a complete caption track
type Track struct {
	Captions []*Caption
	Styles   []*Style
}

// TotalLength returns the span in whole seconds from the first caption's
// start to the last caption's end.
func (t *Track) TotalLength() int {
	if len(t.Captions) == 0 {
		return 0
	}
	return t.Captions[len(t.Captions)-1].EndSeconds() -
		t.Captions[0].StartSeconds()
}

// interface for parsing caption file lines into a track
type Parser interface {
	Validate(lines []string) bool
	Parse(lines []string) (*Track, error)
}
