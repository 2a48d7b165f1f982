package segment

import (
	"fmt"
	"strings"
)

// ManifestFilename is the name of the playlist manifest file.
const ManifestFilename = "prog_index.m3u8"

// extinfDuration is the nominal duration advertised for every segment
// entry. It is a fixed string, not a measurement of the bucket's caption
// span; existing consumers of the playlist depend on the exact value.
const extinfDuration = "30.00000"

// SegmentFilename returns the canonical file name for a segment index.
func SegmentFilename(index int) string {
	return fmt.Sprintf("fileSequence%d.webvtt", index)
}

// Manifest renders the HLS VOD playlist enumerating every segment. The
// end marker is present even for an empty result.
func (r *Result) Manifest() string {
	var sb strings.Builder

	sb.WriteString("#EXTM3U\n")
	fmt.Fprintf(&sb, "#EXT-X-TARGETDURATION:%d\n", r.seconds)
	sb.WriteString("#EXT-X-VERSION:3\n")
	sb.WriteString("#EXT-X-PLAYLIST-TYPE:VOD\n")

	for i := range r.segments {
		sb.WriteString("#EXTINF:" + extinfDuration + "\n")
		sb.WriteString(SegmentFilename(i) + "\n")
	}

	sb.WriteString("#EXT-X-ENDLIST\n")

	return sb.String()
}
