package segment

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteTo writes one file per segment plus the playlist manifest into dir,
// creating the directory (and any missing parents) first. Write failures
// propagate immediately; no cleanup of already-written files is attempted.
func (r *Result) WriteTo(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for i := range r.segments {
		path := filepath.Join(dir, SegmentFilename(i))
		if err := os.WriteFile(path, []byte(r.SegmentContent(i)), 0644); err != nil {
			return fmt.Errorf("failed to write segment file: %w", err)
		}
	}

	path := filepath.Join(dir, ManifestFilename)
	if err := os.WriteFile(path, []byte(r.Manifest()), 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	return nil
}
