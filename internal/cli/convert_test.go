package cli

import "testing"

func TestDefaultOutputPath(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"captions.vtt", "captions.srt"},
		{"captions.VTT", "captions.srt"},
		{"captions.webvtt", "captions.srt"},
		{"captions.srt", "captions.vtt"},
		{"captions.sbv", "captions.vtt"},
		{"dir/track.srt", "dir/track.vtt"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			got := defaultOutputPath(tt.source)
			if got != tt.want {
				t.Errorf(
					"defaultOutputPath(%q) = %q, want %q",
					tt.source,
					got,
					tt.want,
				)
			}
		})
	}
}
