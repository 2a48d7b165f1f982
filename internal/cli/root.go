package cli

import (
	"github.com/captionkit/captionkit/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "captionkit",
	Short: "WebVTT, SubRip and SBV caption toolkit",
	Long: `Captionkit parses caption files in WebVTT, SubRip (SRT) and YouTube SBV
format, converts between formats, and segments a caption track into
fixed-duration WebVTT pieces with an HLS playlist for streaming delivery.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	defer func() {
		if logger != nil {
			logger.Sync()
		}
	}()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}
