package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"pfasscreen/internal/blob"
	"pfasscreen/internal/core"
	"pfasscreen/internal/export"
	"pfasscreen/pkg/domain"
)

// Output formats accepted by screen.
const (
	formatSummary = "summary"
	formatEmail   = "email"
	formatJSON    = "json"
	formatYAML    = "yaml"
)

type screenOptions struct {
	input    string
	demo     bool
	goal     string
	sampleID string
	format   string
	export   bool
}

func newScreenCmd(a *app) *cobra.Command {
	opts := &screenOptions{}
	cmd := &cobra.Command{
		Use:   "screen",
		Short: "Screen one sample and print the result",
		Long: `Screen reads a sample (YAML or JSON, "-" for stdin) or the built-in demo
sample, runs the screening and prints the selected rendering.

The verdict does not affect the exit status; only input, configuration
and export failures do.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runScreen(cmd, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "Sample file (YAML or JSON), - for stdin")
	cmd.Flags().BoolVar(&opts.demo, "demo", false, "Screen the built-in demo sample")
	cmd.Flags().StringVar(&opts.goal, "goal", "", "Treatment goal (overrides the input)")
	cmd.Flags().StringVar(&opts.sampleID, "sample-id", "", "Sample identifier (overrides the input)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatSummary, "Output format: summary, email, json or yaml")
	cmd.Flags().BoolVar(&opts.export, "export", false, "Export the reports to the configured blob store")
	cmd.MarkFlagsMutuallyExclusive("input", "demo")
	cmd.MarkFlagsOneRequired("input", "demo")
	return cmd
}

func (a *app) runScreen(cmd *cobra.Command, opts *screenOptions) error {
	switch opts.format {
	case formatSummary, formatEmail, formatJSON, formatYAML:
	default:
		return fmt.Errorf("unknown format %q: want summary, email, json or yaml", opts.format)
	}

	var in domain.EngineInput
	if opts.demo {
		in = core.DemoInput()
	} else {
		var err error
		if in, err = readInput(cmd.InOrStdin(), opts.input); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("goal") {
		in.TreatmentGoal = opts.goal
	}
	if cmd.Flags().Changed("sample-id") {
		in.SampleID = opts.sampleID
	}

	metrics := core.NewPrometheusMetricsRecorder(a.cfg.Metrics.Namespace)
	svc := core.NewService(core.NewDefaultEngine(),
		core.WithLogger(core.NewZapLogger(a.logger)),
		core.WithMetrics(metrics),
	)
	ctx := cmd.Context()
	out, err := svc.Screen(ctx, in)
	if err != nil {
		return fmt.Errorf("screen: %w", err)
	}

	if err := render(cmd.OutOrStdout(), opts.format, out); err != nil {
		return err
	}

	if opts.export || a.cfg.Export.Enabled {
		store, err := blob.Open(ctx, a.cfg.Blob)
		if err != nil {
			return fmt.Errorf("open blob store: %w", err)
		}
		exporter := export.New(store,
			export.WithPrefix(a.cfg.Export.Prefix),
			export.WithReplace(a.cfg.Export.Replace),
			export.WithLogger(core.NewZapLogger(a.logger)),
		)
		infos, err := exporter.Export(ctx, out)
		if err != nil {
			return err
		}
		for _, info := range infos {
			fmt.Fprintf(cmd.ErrOrStderr(), "exported %s (%d bytes)\n", info.Key, info.Size)
		}
	}

	if path := a.cfg.Metrics.Textfile; path != "" {
		if err := metrics.WriteTextfile(path); err != nil {
			return fmt.Errorf("write metrics textfile: %w", err)
		}
	}
	return nil
}

// readInput decodes a sample from path, or from stdin when path is "-".
// JSON documents are accepted as YAML flow mappings.
func readInput(stdin io.Reader, path string) (domain.EngineInput, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return domain.EngineInput{}, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}
	var in domain.EngineInput
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&in); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.EngineInput{}, errors.New("decode input: input is empty")
		}
		return domain.EngineInput{}, fmt.Errorf("decode input: %w", err)
	}
	return in, nil
}

func render(w io.Writer, format string, out domain.EngineOutput) error {
	switch format {
	case formatSummary:
		return writeText(w, out.TechnicalSummary)
	case formatEmail:
		return writeText(w, out.BusinessEmailDraft)
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return err
		}
		return enc.Close()
	}
}

func writeText(w io.Writer, s string) error {
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	_, err := io.WriteString(w, s)
	return err
}
