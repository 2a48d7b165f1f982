package caption

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParseVTT(t *testing.T) {
	lines := strings.Split(`WEBVTT

NOTE This is a comment

intro
00:00:00.500 --> 00:00:07.000
Caption text #1

00:11.890 --> 00:16.320
Caption text #2
Second line

STYLE
::cue {
  color: gold;
}`, "\n")

	track, err := (VTT{}).Parse(lines)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(track.Captions) != 2 {
		t.Fatalf("expected 2 captions, got %d", len(track.Captions))
	}

	first := track.Captions[0]
	if first.Identifier != "intro" {
		t.Errorf("identifier = %q, want %q", first.Identifier, "intro")
	}
	if first.Start != 500*time.Millisecond {
		t.Errorf("start = %v", first.Start)
	}
	if len(first.Comments) != 1 || first.Comments[0] != "This is a comment" {
		t.Errorf("comments = %v", first.Comments)
	}
	if first.Text() != "Caption text #1" {
		t.Errorf("text = %q", first.Text())
	}

	second := track.Captions[1]
	if second.Identifier != "" {
		t.Errorf("identifier = %q, want empty", second.Identifier)
	}
	// Short-form timestamps have no hours field.
	if second.Start != 11*time.Second+890*time.Millisecond {
		t.Errorf("start = %v", second.Start)
	}
	if second.Text() != "Caption text #2\nSecond line" {
		t.Errorf("text = %q", second.Text())
	}

	if len(track.Styles) != 1 {
		t.Fatalf("expected 1 style, got %d", len(track.Styles))
	}
	if !strings.Contains(track.Styles[0].Text(), "color: gold;") {
		t.Errorf("style text = %q", track.Styles[0].Text())
	}
}

func TestParseVTTMissingHeader(t *testing.T) {
	lines := []string{"00:00:00.500 --> 00:00:07.000", "no header"}
	if _, err := (VTT{}).Parse(lines); !errors.Is(err, ErrMalformed) {
		t.Errorf("expected ErrMalformed, got %v", err)
	}
}

func TestParseVTTSkipsInvalidBlocks(t *testing.T) {
	lines := strings.Split(`WEBVTT

this block is not a cue
and has no timing line

00:00:01.000 --> 00:00:02.000
valid cue`, "\n")

	track, err := (VTT{}).Parse(lines)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(track.Captions) != 1 {
		t.Fatalf("expected 1 caption, got %d", len(track.Captions))
	}
	if track.Captions[0].Text() != "valid cue" {
		t.Errorf("text = %q", track.Captions[0].Text())
	}
}

func TestParseVTTTrailingComment(t *testing.T) {
	lines := strings.Split(`WEBVTT

00:00:01.000 --> 00:00:02.000
last cue

NOTE trailing comment`, "\n")

	track, err := (VTT{}).Parse(lines)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(track.Captions) != 1 {
		t.Fatalf("expected 1 caption, got %d", len(track.Captions))
	}
	comments := track.Captions[0].Comments
	if len(comments) != 1 || comments[0] != "trailing comment" {
		t.Errorf("comments = %v", comments)
	}
}

func TestVTTContent(t *testing.T) {
	first, _ := New("00:00:00.500", "00:00:07.000", "Caption text #1")
	first.Identifier = "intro"
	second, _ := New("00:00:07.000", "00:00:11.890", "Caption text #2", "Second line")
	track := &Track{Captions: []*Caption{first, second}}

	expected := `WEBVTT

intro
00:00:00.500 --> 00:00:07.000
Caption text #1

00:00:07.000 --> 00:00:11.890
Caption text #2
Second line`

	if got := VTTContent(track); got != expected {
		t.Errorf("VTTContent() = %q, want %q", got, expected)
	}
}

func TestVTTRoundTrip(t *testing.T) {
	first, _ := New("00:00:00.500", "00:00:07.000", "Caption text #1")
	first.Identifier = "intro"
	first.Comments = []string{"leading comment"}
	second, _ := New("00:00:07.000", "00:00:11.890", "Caption text #2", "Second line")
	track := &Track{
		Captions: []*Caption{first, second},
		Styles:   []*Style{{Lines: []string{"::cue {", "  color: gold;", "}"}}},
	}

	parsed, err := (VTT{}).Parse(strings.Split(VTTContent(track), "\n"))
	if err != nil {
		t.Fatalf("reparse failed: %v", err)
	}

	if len(parsed.Captions) != len(track.Captions) {
		t.Fatalf("expected %d captions, got %d",
			len(track.Captions), len(parsed.Captions))
	}
	for i := range track.Captions {
		if !track.Captions[i].Equal(parsed.Captions[i]) {
			t.Errorf("caption %d mismatch: %v vs %v",
				i, track.Captions[i], parsed.Captions[i])
		}
	}

	if len(parsed.Styles) != 1 {
		t.Fatalf("expected 1 style, got %d", len(parsed.Styles))
	}
	if parsed.Styles[0].Text() != track.Styles[0].Text() {
		t.Errorf("style mismatch: %q vs %q",
			parsed.Styles[0].Text(), track.Styles[0].Text())
	}
	if len(parsed.Captions[0].Comments) != 1 ||
		parsed.Captions[0].Comments[0] != "leading comment" {
		t.Errorf("comments = %v", parsed.Captions[0].Comments)
	}
}
