package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/wort/pkg/errors"
	"github.com/arthur-debert/wort/pkg/logging"
)

// Renderer writes tables in one output format.
type Renderer interface {
	Render(tables ...Table) error
}

// NewRenderer creates a renderer for format writing to w. FormatAuto is
// resolved with DetectFormat when w is a file and falls back to text
// otherwise.
func NewRenderer(format Format, w io.Writer) (Renderer, error) {
	logger := logging.GetLogger("report")

	switch format {
	case FormatAuto:
		detected := FormatText
		if f, ok := w.(*os.File); ok {
			detected = DetectFormat(f)
		}
		logger.Debug().Str("format", detected.String()).Msg("Detected output format")
		return NewRenderer(detected, w)
	case FormatText:
		r := lipgloss.NewRenderer(w, termenv.WithProfile(termenv.Ascii))
		return &textRenderer{w: w, styles: newStyles(r), border: lipgloss.ASCIIBorder()}, nil
	case FormatTerminal:
		return &termRenderer{w: w}, nil
	case FormatMarkdown:
		f, ok := w.(*os.File)
		return &markdownRenderer{w: w, styled: ok && isTerminal(f)}, nil
	case FormatHTML:
		return &htmlRenderer{w: w}, nil
	case FormatJSON:
		return &jsonRenderer{w: w}, nil
	case FormatYAML:
		return &yamlRenderer{w: w}, nil
	}
	return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format).
		WithDetail("valid_keys", Formats())
}

// Render is a shortcut for NewRenderer followed by Render.
func Render(w io.Writer, format Format, tables ...Table) error {
	r, err := NewRenderer(format, w)
	if err != nil {
		return err
	}
	return r.Render(tables...)
}

func writeErr(err error) error {
	return errors.Wrap(err, errors.ErrRender, "failed to write report")
}

type textRenderer struct {
	w      io.Writer
	styles styles
	border lipgloss.Border
}

func (r *textRenderer) Render(tables ...Table) error {
	s := r.styles
	for i, t := range tables {
		if i > 0 {
			if _, err := fmt.Fprintln(r.w); err != nil {
				return writeErr(err)
			}
		}
		grid := table.New().
			Border(r.border).
			BorderStyle(s.Border).
			Headers(t.Headers...).
			Rows(t.Rows...).
			StyleFunc(func(row, _ int) lipgloss.Style {
				if row == table.HeaderRow {
					return s.Header
				}
				return s.Cell
			})

		var b strings.Builder
		b.WriteString(s.Caption.Render(t.Caption))
		b.WriteString("\n")
		b.WriteString(grid.Render())
		b.WriteString("\n")
		for _, line := range t.Footer {
			b.WriteString(s.Footer.Render(line))
			b.WriteString("\n")
		}
		if _, err := io.WriteString(r.w, b.String()); err != nil {
			return writeErr(err)
		}
	}
	return nil
}

type termRenderer struct {
	w io.Writer
}

func (r *termRenderer) Render(tables ...Table) error {
	for _, t := range tables {
		data := make([][]string, 0, len(t.Rows)+1)
		data = append(data, t.Headers)
		data = append(data, t.Rows...)

		if _, err := fmt.Fprintln(r.w, pterm.Bold.Sprint(t.Caption)); err != nil {
			return writeErr(err)
		}
		out, err := pterm.DefaultTable.
			WithHasHeader().
			WithBoxed().
			WithData(data).
			Srender()
		if err != nil {
			return errors.Wrap(err, errors.ErrRender, "failed to render table")
		}
		if _, err := fmt.Fprintln(r.w, out); err != nil {
			return writeErr(err)
		}
		for _, line := range t.Footer {
			if _, err := fmt.Fprintln(r.w, pterm.FgGray.Sprint(line)); err != nil {
				return writeErr(err)
			}
		}
		if _, err := fmt.Fprintln(r.w); err != nil {
			return writeErr(err)
		}
	}
	return nil
}

type markdownRenderer struct {
	w      io.Writer
	styled bool
}

// Markdown renders tables as GitHub flavored markdown.
func Markdown(tables ...Table) string {
	var b strings.Builder
	for i, t := range tables {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "### %s\n\n", t.Caption)
		b.WriteString(markdownRow(t.Headers))
		sep := make([]string, len(t.Headers))
		for j := range sep {
			sep[j] = "---"
		}
		b.WriteString(markdownRow(sep))
		for _, row := range t.Rows {
			b.WriteString(markdownRow(row))
		}
		if len(t.Footer) > 0 {
			b.WriteString("\n")
			for _, line := range t.Footer {
				fmt.Fprintf(&b, "- %s\n", line)
			}
		}
	}
	return b.String()
}

func markdownRow(cells []string) string {
	escaped := make([]string, len(cells))
	for i, c := range cells {
		escaped[i] = strings.ReplaceAll(c, "|", `\|`)
	}
	return "| " + strings.Join(escaped, " | ") + " |\n"
}

func (r *markdownRenderer) Render(tables ...Table) error {
	out := Markdown(tables...)
	if r.styled {
		tr, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
		if err == nil {
			if styled, err := tr.Render(out); err == nil {
				out = styled
			}
		}
	}
	if _, err := io.WriteString(r.w, out); err != nil {
		return writeErr(err)
	}
	return nil
}

type htmlRenderer struct {
	w io.Writer
}

// HTML builds one <table> element per table.
func HTML(tables ...Table) *etree.Document {
	doc := etree.NewDocument()
	root := doc.CreateElement("div")
	root.CreateAttr("class", "wort-report")

	for _, t := range tables {
		el := root.CreateElement("table")
		el.CreateAttr("class", t.Type)
		el.CreateElement("caption").SetText(t.Caption)

		tr := el.CreateElement("thead").CreateElement("tr")
		for _, h := range t.Headers {
			tr.CreateElement("th").SetText(h)
		}

		if len(t.Footer) > 0 {
			foot := el.CreateElement("tfoot")
			for _, line := range t.Footer {
				td := foot.CreateElement("tr").CreateElement("td")
				td.CreateAttr("colspan", strconv.Itoa(len(t.Headers)))
				td.SetText(line)
			}
		}

		body := el.CreateElement("tbody")
		for _, row := range t.Rows {
			tr := body.CreateElement("tr")
			for _, c := range row {
				tr.CreateElement("td").SetText(c)
			}
		}
	}
	doc.Indent(2)
	return doc
}

func (r *htmlRenderer) Render(tables ...Table) error {
	if _, err := HTML(tables...).WriteTo(r.w); err != nil {
		return writeErr(err)
	}
	return nil
}

type jsonRenderer struct {
	w io.Writer
}

func (r *jsonRenderer) Render(tables ...Table) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(tables); err != nil {
		return writeErr(err)
	}
	return nil
}

type yamlRenderer struct {
	w io.Writer
}

func (r *yamlRenderer) Render(tables ...Table) error {
	enc := yaml.NewEncoder(r.w)
	enc.SetIndent(2)
	if err := enc.Encode(tables); err != nil {
		return writeErr(err)
	}
	if err := enc.Close(); err != nil {
		return writeErr(err)
	}
	return nil
}
