package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/WindSoilder/uv/pkg/config"
	"github.com/WindSoilder/uv/pkg/errutils"
	"gopkg.in/yaml.v3"
)

// writeOutput renders value as JSON or YAML, or calls text for the text format.
func writeOutput(w io.Writer, format string, value any, text func(io.Writer) error) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", JSONIndent)
		return encoder.Encode(value)
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(config.YAMLIndent)
		if err := encoder.Encode(value); err != nil {
			return err
		}
		return encoder.Close()
	case FormatText, "":
		return text(w)
	default:
		return errutils.ErrInvalidOutputFormatWithDetails(format)
	}
}

// writeTable prints rows as aligned columns under a header.
func writeTable(w io.Writer, header []string, rows [][]string) error {
	tabWriter := tabwriter.NewWriter(w, 0, 0, TabWidth, ' ', 0)
	writeRow(tabWriter, header)
	for _, row := range rows {
		writeRow(tabWriter, row)
	}
	return tabWriter.Flush()
}

func writeRow(w io.Writer, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			_, _ = fmt.Fprint(w, "\t")
		}
		_, _ = fmt.Fprint(w, cell)
	}
	_, _ = fmt.Fprintln(w)
}
