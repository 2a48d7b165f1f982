package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/captionkit/captionkit/internal/caption"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert [caption_file]",
	Short: "Convert a caption file to another format",
	Long: `Convert a caption file between formats. The source format is detected
from the input extension and the target format from the output extension.
WebVTT and SRT can be written; SBV can only be read.

Examples:
  captionkit convert captions.srt
  captionkit convert captions.sbv -o captions.vtt
  captionkit convert captions.vtt -o captions.srt`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().
		StringP("output", "o", "", "Output file path (target format from its extension)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	sourcePath := args[0]

	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		outputPath = defaultOutputPath(sourcePath)
	}

	format, err := caption.FormatFromExtension(outputPath)
	if err != nil {
		return err
	}

	logger.Infow("Converting captions",
		"source", sourcePath,
		"output", outputPath,
		"format", format,
	)

	track, err := caption.Open(sourcePath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", sourcePath, err)
	}

	var content string
	switch format {
	case caption.FormatVTT:
		content = caption.VTTContent(track)
	case caption.FormatSRT:
		content = caption.SRTContent(track)
	default:
		return fmt.Errorf("cannot write %s: %w", format, caption.ErrUnsupportedFormat)
	}

	if err := os.WriteFile(outputPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Converted %s to %s\n", sourcePath, absOutput)

	return nil
}

// defaultOutputPath swaps the extension for the natural conversion target:
// WebVTT sources become SRT, everything else becomes WebVTT.
func defaultOutputPath(sourcePath string) string {
	ext := filepath.Ext(sourcePath)
	base := strings.TrimSuffix(sourcePath, ext)
	if strings.EqualFold(ext, ".vtt") || strings.EqualFold(ext, ".webvtt") {
		return base + ".srt"
	}
	return base + ".vtt"
}
