package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/resume-analyzer/internal/logger"
	"github.com/spigell/resume-analyzer/internal/report"
	"github.com/spigell/resume-analyzer/internal/scoring"
	"github.com/spigell/resume-analyzer/internal/template"
)

const (
	PromptReport    = "Show report"
	PromptSections  = "Show sections"
	PromptFeedback  = "Show feedback"
	PromptATS       = "Show ATS breakdown"
	PromptTemplate  = "Generate resume template"
	PromptExport    = "Export report"
	PromptExit      = "Exit"
	PromptBack      = "back"
	defaultBaseName = "resume-report"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptReport, PromptSections, PromptFeedback, PromptATS, PromptTemplate, PromptExport, PromptExit},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume.pdf>",
	Short: "Analyze a PDF resume: skills, score, ATS breakdown and feedback",
	Args:  cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return bindFlags(cmd, map[string]string{
			"job-description.text": "job-description",
			"job-description.file": "job-description-file",
			"report.format":        "format",
			"report.output":        "output",
			"template.style":       "style",
		})
	},
	Run: func(cmd *cobra.Command, args []string) {
		analyze(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().String("job-description", "", "job description text to match the resume against")
	analyzeCmd.Flags().String("job-description-file", "", "file with the job description. Takes precedence over --job-description")
	analyzeCmd.Flags().StringP("format", "f", "", "report format: text, markdown, json, html, xlsx")
	analyzeCmd.Flags().StringP("output", "o", "", "write the report to this file instead of stdout")
	analyzeCmd.Flags().String("style", "", "resume template style: Modern, Minimal, ATS-friendly")
	analyzeCmd.Flags().BoolP("yes", "y", false, "do not show the interactive menu, just print the report")
}

// bindFlags binds command flags to config keys. Binding happens at run time so
// commands sharing a key do not override each other.
func bindFlags(cmd *cobra.Command, keys map[string]string) error {
	for key, flag := range keys {
		if err := viper.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return fmt.Errorf("binding --%s: %w", flag, err)
		}
	}
	return nil
}

// setup builds the logger and loads the config, exiting on failure.
func setup() (*zap.Logger, *Config) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	if config == nil {
		logger.Fatal("config is required")
	}

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	return logger, config
}

func analyze(cmd *cobra.Command, path string) {
	ctx := context.Background()

	logger, config := setup()

	logger.Info("starting the resume-analyzer", zap.String("version", version), zap.String("file", path))

	format, err := report.ParseFormat(config.Report.Format)
	if err != nil {
		logger.Fatal("parsing report format", zap.Error(err))
	}

	style, err := template.ParseStyle(config.Template.Style)
	if err != nil {
		logger.Fatal("parsing template style", zap.Error(err))
	}

	r, err := analyzeFile(ctx, config, path, logger)
	if err != nil {
		logger.Fatal("analyzing resume", zap.Error(err))
	}

	logger.Info("resume analyzed",
		zap.Int("score", r.Analysis.Score),
		zap.String("badge", r.Badge),
		zap.Int("ats_score", r.ATS.Total),
		zap.Int("skills", r.Analysis.NumSkills()),
		zap.Bool("ocr_used", r.Extraction.OCRUsed),
	)

	if cmd.Flag("yes").Value.String() == "true" {
		if err := writeReport(os.Stdout, r, format, config.Report.Output, logger); err != nil {
			logger.Fatal("writing report", zap.Error(err))
		}
		return
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, os.Stdout, r, format, style, config, logger); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, w io.Writer, r *report.Report, format report.Format, style template.Style, config *Config, logger *zap.Logger) error {
	switch action {
	case PromptReport:
		_, err := io.WriteString(w, report.RenderText(r))
		return err
	case PromptSections:
		if len(r.Sections) == 0 {
			logger.Info("no sections detected", zap.String("hint", "use headings such as Summary, Skills, Projects, Education, Achievements"))
			return nil
		}
		for _, s := range r.Sections {
			fmt.Fprintf(w, "== %s ==\n%s\n\n", s.Name, s.Content)
		}
		return nil
	case PromptFeedback:
		fmt.Fprintf(w, "%s\n\nQuick suggestions:\n", r.Feedback)
		for _, s := range r.Suggestions {
			fmt.Fprintf(w, "- %s\n", s)
		}
		return nil
	case PromptATS:
		for _, c := range r.ATS.Components {
			fmt.Fprintf(w, "%-10s %2d/%d\n", c.Name, c.Score, c.Max)
		}
		fmt.Fprintf(w, "%-10s %2d/%d\n", "total", r.ATS.Total, scoring.MaxTotal)
		return nil
	case PromptTemplate:
		return chooseTemplate(w, r, style, logger)
	case PromptExport:
		output := config.Report.Output
		if output == "" {
			output = defaultBaseName + "-" + r.ID[:8] + format.Extension()
		}
		return writeReport(w, r, format, output, logger)
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func chooseTemplate(w io.Writer, r *report.Report, current template.Style, logger *zap.Logger) error {
	items := make([]string, 0, len(template.Styles)+1)
	cursor := 0
	for i, s := range template.Styles {
		if s == current {
			cursor = i
		}
		items = append(items, string(s))
	}

	stylePrompt := promptui.Select{
		Label:     "Choose a template style and press ENTER",
		Items:     append(items, PromptBack),
		CursorPos: cursor,
	}

	_, selected, err := stylePrompt.Run()
	if err != nil {
		return err
	}
	if selected == PromptBack {
		return nil
	}

	return writeTemplate(w, r, template.Style(selected), template.FileName(template.Style(selected)), logger)
}

// writeReport renders r to output, or to w when output is empty.
func writeReport(w io.Writer, r *report.Report, format report.Format, output string, logger *zap.Logger) error {
	if output == "" {
		if format.Binary() {
			return fmt.Errorf("%s reports must be written to a file, set --output", format)
		}
		return report.Render(w, r, format)
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}

	if err := report.Render(f, r, format); err != nil {
		f.Close()
		return fmt.Errorf("rendering %s report: %w", format, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	logger.Info("report written", zap.String("filename", output), zap.String("format", string(format)))
	return nil
}

// writeTemplate prints the template and, when filename is set, saves it as well.
func writeTemplate(w io.Writer, r *report.Report, style template.Style, filename string, logger *zap.Logger) error {
	text, err := template.Build(r.Sections, r.Analysis.Skills, style)
	if err != nil {
		return err
	}

	if filename == "" {
		_, err := fmt.Fprintln(w, text)
		return err
	}

	if err := os.WriteFile(filename, []byte(text+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing template: %w", err)
	}

	logger.Info("template written", zap.String("filename", filename), zap.String("style", string(style)))
	return nil
}
