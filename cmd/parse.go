package cmd

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/BVE-Reborn/bve-reborn-sub001/formats"
	"github.com/BVE-Reborn/bve-reborn-sub001/harness"
)

var (
	parseFormat     string // Format name; detected from the file name when empty
	parseStrict     bool   // Fail when any diagnostic is reported
	parseQuiet      bool   // Do not print the bound record
	parseReportJSON bool   // Print only the diagnostic tally as JSON (isolate-mode child protocol)
)

var parseCmd = &cobra.Command{
	Use:   "parse FILE",
	Short: "Parse one configuration file",
	Long: "Parse one configuration file, print its diagnostics to stderr and the bound record as YAML to stdout. " +
		"With --strict the command exits non-zero when any diagnostic is reported.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := resolveFormat(parseFormat, args[0])
		if err != nil {
			return err
		}
		if parseReportJSON {
			return harness.RunChild(cmd.OutOrStdout(), f, args[0])
		}
		return runParse(cmd.OutOrStdout(), cmd.ErrOrStderr(), f, args[0])
	},
}

// resolveFormat returns the named format, or detects it from path.
func resolveFormat(name, path string) (formats.Format, error) {
	if name != "" {
		f, ok := formats.Lookup(name)
		if !ok {
			return f, fmt.Errorf("unknown format %q (valid: %v)", name, formats.ValidFormatNames())
		}
		return f, nil
	}
	f, ok := formats.Detect(path)
	if !ok {
		return f, fmt.Errorf("cannot detect the format of %s; use --format (valid: %v)", path, formats.ValidFormatNames())
	}
	return f, nil
}

func runParse(stdout, stderr io.Writer, f formats.Format, path string) error {
	text, err := formats.ReadFile(path)
	if err != nil {
		return err
	}
	record, diags := f.Parse(text)
	logrus.WithFields(logrus.Fields{"file": path, "format": f.Name}).Debugf("%d diagnostics", len(diags))

	if len(diags) > 0 {
		fmt.Fprint(stderr, diags.Report())
	}
	if !parseQuiet {
		if err := writeRecord(stdout, record); err != nil {
			return err
		}
	}
	if parseStrict {
		return diags.Err()
	}
	return nil
}

// writeRecord marshals a bound record to YAML.
func writeRecord(w io.Writer, record any) error {
	data, err := yaml.Marshal(record)
	if err != nil {
		return fmt.Errorf("YAML marshal failed: %w", err)
	}
	_, err = w.Write(data)
	return err
}

func init() {
	parseCmd.Flags().StringVar(&parseFormat, "format", "", "Format name (detected from the file name when omitted)")
	parseCmd.Flags().BoolVar(&parseStrict, "strict", false, "Exit non-zero when any diagnostic is reported")
	parseCmd.Flags().BoolVar(&parseQuiet, "quiet", false, "Do not print the bound record")
	parseCmd.Flags().BoolVar(&parseReportJSON, "report-json", false, "Print only the diagnostic tally as JSON")
	_ = parseCmd.Flags().MarkHidden("report-json")

	rootCmd.AddCommand(parseCmd)
}
