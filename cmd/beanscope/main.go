package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kvisser/beanscope/inspect"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd creates the beanscope root command.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "beanscope",
		Short:        "Inspect managed components and their exposed members",
		SilenceUsage: true,
	}
	cmd.AddCommand(newReportCmd())
	return cmd
}

// newReportCmd creates the report subcommand.
func newReportCmd() *cobra.Command {
	var manifestPath string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render the inspection report for a manifest",
		Long: `Render the inspection report described by a manifest.

The manifest lists registered instances and candidate classes with their
managed members. Instances are joined against classes by exact class name;
each (registered name, member) pairing becomes one row, sorted by member
name then instance name.

Example:
  beanscope report -f manifest.yaml
  cat manifest.yaml | beanscope report -f -`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, manifestPath)
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "f", "-", "path to the manifest file (- for stdin)")
	return cmd
}

// runReport loads the manifest, builds the report, and prints the table.
func runReport(cmd *cobra.Command, manifestPath string) error {
	in := cmd.InOrStdin()
	if manifestPath != "-" {
		f, err := os.Open(manifestPath)
		if err != nil {
			return fmt.Errorf("open manifest: %w", err)
		}
		defer f.Close()
		in = f
	}

	m, err := decodeManifest(in)
	if err != nil {
		return err
	}

	report, err := inspect.Build(m, m)
	if err != nil {
		return err
	}
	return report.Print(cmd.OutOrStdout())
}
