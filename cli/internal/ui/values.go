package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/satishbabariya/rsdatabase/runtime/types"
)

// Format selects how collected column values are written.
type Format string

const (
	FormatList     Format = "list"
	FormatJSON     Format = "json"
	FormatTable    Format = "table"
	FormatMarkdown Format = "markdown"
)

// Formats lists the accepted --format values.
var Formats = []Format{FormatList, FormatJSON, FormatTable, FormatMarkdown}

// ParseFormat validates a --format value.
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats {
		if string(f) == strings.ToLower(name) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (want one of list, json, table, markdown)", name)
}

// RenderValues writes values to w in the given format.
func RenderValues(w io.Writer, format Format, values []types.Value) error {
	switch format {
	case FormatList, "":
		return renderList(w, values)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(values)
	case FormatTable:
		out, err := pterm.DefaultTable.
			WithHasHeader().
			WithData(valueRows(values)).
			Srender()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, out)
		return err
	case FormatMarkdown:
		out, err := RenderMarkdown(markdownTable(values))
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	}
	return fmt.Errorf("unknown format %q", format)
}

func renderList(w io.Writer, values []types.Value) error {
	null := GetColorPrinters()["null"]
	for _, v := range values {
		line := v.String()
		if v.IsNull() {
			line = null.Sprint(line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func valueRows(values []types.Value) pterm.TableData {
	data := pterm.TableData{{"#", "kind", "value"}}
	for i, v := range values {
		data = append(data, []string{strconv.Itoa(i + 1), v.Kind().String(), v.String()})
	}
	return data
}

func markdownTable(values []types.Value) string {
	var b strings.Builder
	b.WriteString("| # | kind | value |\n|---|---|---|\n")
	for i, v := range values {
		cell := strings.ReplaceAll(v.String(), "|", `\|`)
		fmt.Fprintf(&b, "| %d | %s | %s |\n", i+1, v.Kind(), cell)
	}
	return b.String()
}
