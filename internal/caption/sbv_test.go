package caption

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParseSBV(t *testing.T) {
	lines := strings.Split(`0:00:00.500,0:00:07.000
Caption text #1

0:00:07.000,0:00:11.890
Caption text #2
Second line`, "\n")

	track, err := (SBV{}).Parse(lines)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(track.Captions) != 2 {
		t.Fatalf("expected 2 captions, got %d", len(track.Captions))
	}
	if track.Captions[0].Start != 500*time.Millisecond {
		t.Errorf("start = %v", track.Captions[0].Start)
	}
	if track.Captions[0].End != 7*time.Second {
		t.Errorf("end = %v", track.Captions[0].End)
	}
	if track.Captions[1].Text() != "Caption text #2\nSecond line" {
		t.Errorf("text = %q", track.Captions[1].Text())
	}
}

func TestParseSBVSkipsInvalidBlocks(t *testing.T) {
	lines := strings.Split(`0:00:00.500,0:00:07.000
Caption text #1

not a timing line
stray text`, "\n")

	track, err := (SBV{}).Parse(lines)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(track.Captions) != 1 {
		t.Fatalf("expected 1 caption, got %d", len(track.Captions))
	}
}

func TestParseSBVInvalid(t *testing.T) {
	for name, content := range map[string]string{
		"one line":    "0:00:00.500,0:00:07.000",
		"wrong first": "text before timing\n0:00:00.500,0:00:07.000",
		"srt timing":  "00:00:00,500 --> 00:00:07,000\ntext",
	} {
		t.Run(name, func(t *testing.T) {
			lines := strings.Split(content, "\n")
			if _, err := (SBV{}).Parse(lines); !errors.Is(err, ErrMalformed) {
				t.Errorf("expected ErrMalformed, got %v", err)
			}
		})
	}
}
