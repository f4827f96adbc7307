package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var extractCmd = &cobra.Command{
	Use:   "extract <resume.pdf>",
	Short: "Print the normalized text of a PDF, using OCR for scanned pages",
	Args:  cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return bindFlags(cmd, map[string]string{
			"report.output": "output",
		})
	},
	Run: func(_ *cobra.Command, args []string) {
		extract(args[0])
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringP("output", "o", "", "write the text to this file instead of stdout")
}

func extract(path string) {
	logger, config := setup()

	res, err := extractFile(context.Background(), config, path, logger)
	if err != nil {
		logger.Fatal("extracting text", zap.Error(err))
	}

	logger.Info("text extracted",
		zap.String("method", string(res.Method)),
		zap.String("fallback", string(res.Fallback)),
		zap.Bool("ocr_used", res.OCRUsed),
		zap.Int("pages", res.Pages),
		zap.Int("chars", len(res.Text)),
		zap.Strings("warnings", res.Warnings),
		zap.Duration("duration", res.Duration),
	)

	output := config.Report.Output
	if output == "" {
		fmt.Println(res.Text)
		return
	}

	if err := os.WriteFile(output, []byte(res.Text+"\n"), 0o644); err != nil {
		logger.Fatal("writing text", zap.Error(err))
	}
	logger.Info("text written", zap.String("filename", output))
}
