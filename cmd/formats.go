package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/BVE-Reborn/bve-reborn-sub001/formats"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the registered configuration formats",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listFormats(cmd.OutOrStdout())
	},
}

func listFormats(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tFILE\tDIALECT\tSECTIONS")
	for _, f := range formats.All() {
		sections := make([]string, 0, len(f.Sections))
		for _, s := range f.Sections {
			if s == "" {
				s = "(root)"
			}
			sections = append(sections, s)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", f.Name, f.File, f.Dialect, strings.Join(sections, ", "))
	}
	return tw.Flush()
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
