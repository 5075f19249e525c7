package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/BVE-Reborn/bve-reborn-sub001/formats"
)

var schemaCmd = &cobra.Command{
	Use:   "schema FORMAT",
	Short: "Print a JSON Schema describing a format's YAML record",
	Long:  "Print a JSON Schema for the YAML that `parse` and `defaults --yaml` emit for FORMAT. Enumerations are described as their names.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeSchema(cmd.OutOrStdout(), args[0])
	},
}

var yamlMarshaler = reflect.TypeOf((*yaml.Marshaler)(nil)).Elem()

// enumAsString describes types with a custom YAML form as strings, which is
// how every enumeration in the formats marshals.
func enumAsString(t reflect.Type) *jsonschema.Schema {
	if t.Implements(yamlMarshaler) || reflect.PointerTo(t).Implements(yamlMarshaler) {
		return &jsonschema.Schema{Type: "string"}
	}
	return nil
}

func writeSchema(w io.Writer, name string) error {
	f, ok := formats.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown format %q (valid: %v)", name, formats.ValidFormatNames())
	}
	r := &jsonschema.Reflector{
		FieldNameTag:              "yaml",
		ExpandedStruct:            true,
		DoNotReference:            true,
		AllowAdditionalProperties: false,
		Mapper:                    enumAsString,
	}
	s := r.Reflect(f.Defaults())
	s.Title = f.Name
	s.Description = "Bound " + f.File + " record"

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding schema for %s: %w", f.Name, err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
