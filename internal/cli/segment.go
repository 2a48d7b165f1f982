package cli

import (
	"fmt"
	"path/filepath"

	"github.com/captionkit/captionkit/internal/caption"
	"github.com/captionkit/captionkit/internal/config"
	"github.com/captionkit/captionkit/internal/segment"
	"github.com/spf13/cobra"
)

var segmentCmd = &cobra.Command{
	Use:   "segment [caption_file]",
	Short: "Segment a caption file for HTTP Live Streaming",
	Long: `Split a caption file into fixed-duration WebVTT segment files and write
them, together with a prog_index.m3u8 playlist, into the output directory.

Captions that span a segment boundary are repeated, unclipped, in every
segment they touch. The input may be WebVTT, SRT or SBV; segments are
always WebVTT.

Examples:
  captionkit segment captions.vtt
  captionkit segment captions.srt -o hls/subs -d 30
  captionkit segment captions.vtt -m 800000
  captionkit segment captions.vtt --config segmenting.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runSegment,
}

func init() {
	rootCmd.AddCommand(segmentCmd)

	segmentCmd.Flags().
		StringP("output", "o", "output", "Output directory for segments and playlist")
	segmentCmd.Flags().
		IntP("duration", "d", segment.DefaultSeconds, "Segment duration in seconds")
	segmentCmd.Flags().
		IntP("mpegts", "m", segment.DefaultMPEGTS, "MPEGTS offset for the X-TIMESTAMP-MAP header")
	segmentCmd.Flags().
		StringP("config", "c", "", "YAML config file with duration, mpegts and output settings")
}

func runSegment(cmd *cobra.Command, args []string) error {
	sourcePath := args[0]

	cfg := config.Default()
	if configPath, _ := cmd.Flags().GetString("config"); configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// Explicit flags win over the config file.
	if cmd.Flags().Changed("duration") {
		cfg.Duration, _ = cmd.Flags().GetInt("duration")
	}
	if cmd.Flags().Changed("mpegts") {
		cfg.MPEGTS, _ = cmd.Flags().GetInt("mpegts")
	}
	if cmd.Flags().Changed("output") {
		cfg.Output, _ = cmd.Flags().GetString("output")
	}

	logger.Infow("Segmenting captions",
		"source", sourcePath,
		"output", cfg.Output,
		"duration", cfg.Duration,
		"mpegts", cfg.MPEGTS,
	)

	track, err := caption.Open(sourcePath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", sourcePath, err)
	}
	logger.Debugw("Parsed caption track", "captions", len(track.Captions))

	result, err := segment.Segment(track.Captions, segment.Options{
		Seconds: cfg.Duration,
		MPEGTS:  cfg.MPEGTS,
	})
	if err != nil {
		return fmt.Errorf("segmentation failed: %w", err)
	}

	if err := result.WriteTo(cfg.Output); err != nil {
		return err
	}

	absOutput, _ := filepath.Abs(cfg.Output)
	fmt.Printf("Wrote %d segments and %s to %s\n",
		result.TotalSegments(), segment.ManifestFilename, absOutput)

	return nil
}
