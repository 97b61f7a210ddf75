package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format for CLI commands
type OutputFormat string

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
)

// ParseOutputFormat validates a --output flag value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unsupported output format: %s (want table, json or yaml)", s)
}

// PrinterOptions contains options for rendering results
type PrinterOptions struct {
	Format  OutputFormat
	NoColor bool
}

// Printer renders command results as a table, JSON or YAML.
type Printer struct {
	out     io.Writer
	options PrinterOptions
}

// NewPrinter creates a printer writing to out
func NewPrinter(out io.Writer, options PrinterOptions) *Printer {
	if options.Format == "" {
		options.Format = OutputFormatTable
	}
	return &Printer{out: out, options: options}
}

// Print renders rows under columns in table mode. JSON and YAML modes
// serialize data instead.
func (p *Printer) Print(columns []string, rows [][]string, data interface{}) error {
	switch p.options.Format {
	case OutputFormatJSON:
		return p.outputJSON(data)
	case OutputFormatYAML:
		return p.outputYAML(data)
	case OutputFormatTable:
		return p.outputTable(columns, rows)
	default:
		return fmt.Errorf("unsupported output format: %s", p.options.Format)
	}
}

// PrintKeyValue renders ordered property/value pairs.
func (p *Printer) PrintKeyValue(pairs [][2]string, data interface{}) error {
	if p.options.Format != OutputFormatTable {
		return p.Print(nil, nil, data)
	}

	t := p.newTable()
	t.AppendHeader(table.Row{p.header("PROPERTY"), p.header("VALUE")})
	for _, kv := range pairs {
		t.AppendRow(table.Row{p.paint(text.FgYellow, kv[0]), kv[1]})
	}
	t.Render()
	return nil
}

func (p *Printer) outputJSON(data interface{}) error {
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to convert to JSON: %w", err)
	}
	_, err = fmt.Fprintln(p.out, string(out))
	return err
}

func (p *Printer) outputYAML(data interface{}) error {
	out, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to convert to YAML: %w", err)
	}
	_, err = fmt.Fprint(p.out, string(out))
	return err
}

func (p *Printer) outputTable(columns []string, rows [][]string) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(p.out, p.paint(text.FgYellow, "No items found"))
		return err
	}

	t := p.newTable()
	headers := make(table.Row, len(columns))
	for i, col := range columns {
		headers[i] = p.header(strings.ToUpper(col))
	}
	t.AppendHeader(headers)

	for _, r := range rows {
		row := make(table.Row, len(r))
		for i, cell := range r {
			row[i] = cell
		}
		t.AppendRow(row)
	}

	t.Render()
	return nil
}

func (p *Printer) newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(p.out)
	t.SetStyle(table.StyleRounded)
	return t
}

func (p *Printer) header(s string) string {
	return p.paint(text.FgHiCyan, s)
}

func (p *Printer) paint(c text.Color, s string) string {
	if p.options.NoColor {
		return s
	}
	return c.Sprint(s)
}
