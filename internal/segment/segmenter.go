package segment

import (
	"fmt"

	"github.com/captionkit/captionkit/internal/caption"
)

const (
	// DefaultSeconds is the default segment duration.
	DefaultSeconds = 10
	// DefaultMPEGTS is the broadcast-standard MPEGTS timestamp offset.
	DefaultMPEGTS = 900000
)

// Options control how a caption track is segmented.
type Options struct {
	Seconds int // segment duration in seconds
	MPEGTS  int // offset for the X-TIMESTAMP-MAP header
}

// DefaultOptions returns the documented segmentation defaults.
func DefaultOptions() Options {
	return Options{Seconds: DefaultSeconds, MPEGTS: DefaultMPEGTS}
}

// Result holds the computed segment buckets and the parameters used to
// render them. Buckets hold pointers into the caller's caption slice: a
// caption spanning a boundary appears in multiple buckets as the same
// object, not a copy. Captions must not be mutated once a Result exists.
type Result struct {
	seconds  int
	mpegts   int
	segments [][]*caption.Caption
}

// Seconds returns the segment duration the result was computed with.
func (r *Result) Seconds() int { return r.seconds }

// MPEGTS returns the timestamp-map offset the result renders with.
func (r *Result) MPEGTS() int { return r.mpegts }

// TotalSegments returns the number of segments.
func (r *Result) TotalSegments() int { return len(r.segments) }

// Segments returns the per-bucket caption lists in segment order.
func (r *Result) Segments() [][]*caption.Caption { return r.segments }

// Segment partitions an ordered caption track into contiguous buckets of
// opts.Seconds each. Bucket i covers [i*D, (i+1)*D) measured against the
// caption timestamps truncated to whole seconds. A caption whose interval
// crosses a bucket boundary is placed, unclipped, in every bucket it
// touches. An empty track yields zero segments.
func Segment(captions []*caption.Caption, opts Options) (*Result, error) {
	if opts.Seconds <= 0 {
		return nil, fmt.Errorf(
			"segment duration must be a positive number of seconds, got %d",
			opts.Seconds,
		)
	}

	total := 0
	if len(captions) > 0 {
		last := captions[len(captions)-1]
		total = (last.EndSeconds() + opts.Seconds - 1) / opts.Seconds
	}

	segments := make([][]*caption.Caption, total)
	for i, c := range captions {
		startBucket := c.StartSeconds() / opts.Seconds
		endBucket := c.EndSeconds() / opts.Seconds

		// Can only trip on captions that end after the final caption
		// of the track, i.e. out-of-order input. Reported rather than
		// silently clamped so the bad cue is identifiable.
		if startBucket >= total || endBucket >= total {
			return nil, fmt.Errorf(
				"caption %d (%s --> %s) falls outside the %d-segment range",
				i+1, c.StartTimestamp(), c.EndTimestamp(), total,
			)
		}

		segments[startBucket] = append(segments[startBucket], c)
		for bucket := startBucket + 1; bucket <= endBucket; bucket++ {
			segments[bucket] = append(segments[bucket], c)
		}
	}

	return &Result{
		seconds:  opts.Seconds,
		mpegts:   opts.MPEGTS,
		segments: segments,
	}, nil
}
