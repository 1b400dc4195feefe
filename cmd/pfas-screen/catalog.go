package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"pfasscreen/internal/core"
)

func newDemoCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Print the demo sample as screen input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := core.DemoInput()
			w := cmd.OutOrStdout()
			switch format {
			case formatYAML:
				enc := yaml.NewEncoder(w)
				enc.SetIndent(2)
				if err := enc.Encode(in); err != nil {
					return err
				}
				return enc.Close()
			case formatJSON:
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(in)
			default:
				return fmt.Errorf("unknown format %q: want yaml or json", format)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatYAML, "Output format: yaml or json")
	return cmd
}

func newRulesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the reactivity rules in evaluation order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rules := core.NewDefaultEngine().Rules()
			a.logger.Debug("listing rules", zap.Int("count", len(rules)))
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tCLASSIFICATION\t")
			for _, r := range rules {
				name := r.Name
				if r.Fallback {
					name += " (fallback)"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t\n", r.ID, name, r.Classification)
			}
			return tw.Flush()
		},
	}
}
