package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/raysh454/compliscan/internal/app"
	"github.com/raysh454/compliscan/internal/model"
	"github.com/raysh454/compliscan/internal/report"
	"github.com/raysh454/compliscan/internal/webclient"
)

// Output formats of the scan command.
const (
	FormatText = "text"
	FormatHTML = "html"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

type scanOptions struct {
	format string
	output string
	color  bool
}

// scanDocument is what the json and yaml formats write.
type scanDocument struct {
	ID     string                `json:"id"`
	URL    string                `json:"url"`
	Result *model.AnalysisResult `json:"result"`
	View   *report.View          `json:"view"`
}

func newScanCmd(st *rootState) *cobra.Command {
	opts := &scanOptions{}

	cmd := &cobra.Command{
		Use:   "scan <url>",
		Short: "Scan a site and print its compliance report",
		Long: `Submits the site to the configured scanning service and prints the report.
A missing scheme defaults to https://.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, st, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", FormatText, "output format: text, html, json or yaml")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the report to this file instead of stdout")
	cmd.Flags().BoolVar(&opts.color, "color", false, "colorize text output")
	return cmd
}

func runScan(cmd *cobra.Command, st *rootState, opts *scanOptions, input string) error {
	format := strings.ToLower(opts.format)
	switch format {
	case FormatText, FormatHTML, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unsupported format %q", opts.format)
	}

	client, err := webclient.NewNetHTTPClient(st.cfg.Service.WebClientConfig(), st.logger, nil)
	if err != nil {
		return fmt.Errorf("creating web client: %w", err)
	}
	defer client.Close()

	// A normalization error is reported by Submit before EnterBusy runs.
	target, _ := app.NormalizeURL(input)
	surface := &termSurface{errOut: cmd.ErrOrStderr(), target: target}
	orch, err := app.NewOrchestrator(&st.cfg.Service, client, surface, st.logger)
	if err != nil {
		return err
	}

	sub, err := orch.Submit(cmd.Context(), input)
	if err != nil {
		return reportedError{err}
	}

	out := cmd.OutOrStdout()
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := writeScan(out, format, sub, opts.color && opts.output == ""); err != nil {
		return fmt.Errorf("writing %s report: %w", format, err)
	}
	if opts.output != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Report written to %s\n", opts.output)
	}
	return nil
}

func writeScan(w io.Writer, format string, sub *app.Submission, color bool) error {
	switch format {
	case FormatHTML:
		return report.WriteHTML(w, sub.View)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(document(sub))
	case FormatYAML:
		return writeYAML(w, document(sub))
	default:
		return report.WriteText(w, sub.View, report.TextOptions{Color: color})
	}
}

func document(sub *app.Submission) scanDocument {
	return scanDocument{ID: sub.ID, URL: sub.URL, Result: sub.Result, View: sub.View}
}

// writeYAML goes through JSON so the keys match the json format.
func writeYAML(w io.Writer, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(generic); err != nil {
		return err
	}
	return enc.Close()
}
