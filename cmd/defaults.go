package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/BVE-Reborn/bve-reborn-sub001/formats"
)

var defaultsAsYAML bool // Print the default record as YAML instead of the format's own syntax

var defaultsCmd = &cobra.Command{
	Use:   "defaults FORMAT",
	Short: "Print a format's default record",
	Long:  "Print the record every field of FORMAT takes when a file omits it, in the format's own syntax (or YAML with --yaml).",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeDefaults(cmd.OutOrStdout(), args[0], defaultsAsYAML)
	},
}

func writeDefaults(w io.Writer, name string, asYAML bool) error {
	f, ok := formats.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown format %q (valid: %v)", name, formats.ValidFormatNames())
	}
	if asYAML {
		return writeRecord(w, f.Defaults())
	}
	_, err := io.WriteString(w, f.Marshal(f.Defaults()))
	return err
}

func init() {
	defaultsCmd.Flags().BoolVar(&defaultsAsYAML, "yaml", false, "Print as YAML")

	rootCmd.AddCommand(defaultsCmd)
}
