package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/resume-analyzer/internal/template"
)

var templateCmd = &cobra.Command{
	Use:   "template <resume.pdf>",
	Short: "Rebuild a resume as a plain-text template in the chosen style",
	Args:  cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return bindFlags(cmd, map[string]string{
			"template.style": "style",
		})
	},
	Run: func(cmd *cobra.Command, args []string) {
		output, _ := cmd.Flags().GetString("output")
		buildTemplate(args[0], output)
	},
}

func init() {
	rootCmd.AddCommand(templateCmd)

	templateCmd.Flags().String("style", "", "template style: Modern, Minimal, ATS-friendly")
	templateCmd.Flags().StringP("output", "o", "", "write the template to this file instead of stdout")
}

func buildTemplate(path, output string) {
	logger, config := setup()

	style, err := template.ParseStyle(config.Template.Style)
	if err != nil {
		logger.Fatal("parsing template style", zap.Error(err))
	}

	r, err := analyzeFile(context.Background(), config, path, logger)
	if err != nil {
		logger.Fatal("analyzing resume", zap.Error(err))
	}

	if err := writeTemplate(os.Stdout, r, style, output, logger); err != nil {
		logger.Fatal("building template", zap.Error(err))
	}
}
