package segment

import (
	"fmt"
	"strings"
)

// SegmentContent renders the WebVTT payload for one segment file: the
// WEBVTT header, the timestamp-map directive, then each caption of the
// bucket with its own unclipped timings. One blank line precedes every
// cue and there is no trailing blank line.
func (r *Result) SegmentContent(index int) string {
	var sb strings.Builder

	sb.WriteString("WEBVTT\n")
	fmt.Fprintf(&sb, "X-TIMESTAMP-MAP=MPEGTS:%d,LOCAL:00:00:00.000\n", r.mpegts)

	for _, c := range r.segments[index] {
		fmt.Fprintf(&sb, "\n%s --> %s\n", c.StartTimestamp(), c.EndTimestamp())
		for _, line := range c.Lines {
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}

	return sb.String()
}
