package report_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/wort/pkg/errors"
	"github.com/arthur-debert/wort/pkg/report"
)

var sample = report.Table{
	Type:    "hops",
	Caption: "Hops",
	Headers: []string{"Name", "IBU"},
	Rows:    [][]string{{"Cascade", "22.7"}, {"Saaz | late", "3.1"}},
	Footer:  []string{"Total: 25.8 IBU"},
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want report.Format
	}{
		{"", report.FormatAuto},
		{"auto", report.FormatAuto},
		{"TEXT", report.FormatText},
		{"plain", report.FormatText},
		{"term", report.FormatTerminal},
		{"md", report.FormatMarkdown},
		{"html", report.FormatHTML},
		{"json", report.FormatJSON},
		{"yml", report.FormatYAML},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := report.ParseFormat(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := report.ParseFormat("xml")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Equal(t, report.Formats(), errors.GetErrorDetails(err)["valid_keys"])
}

func TestFormat_String(t *testing.T) {
	for _, name := range report.Formats() {
		f, err := report.ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, name, f.String())
	}
	assert.Equal(t, "unknown", report.Format(42).String())
}

func TestDetectFormat(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, report.FormatText, report.DetectFormat(f), "regular files are not terminals")

	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, report.FormatText, report.DetectFormat(f))
}

func TestRender_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, report.FormatText, sample))

	out := buf.String()
	assert.NotContains(t, out, "\x1b[", "plain text carries no escape codes")
	assert.True(t, strings.HasPrefix(out, "Hops\n"))
	assert.Contains(t, out, "+")
	assert.Contains(t, out, "Cascade")
	assert.Contains(t, out, "Total: 25.8 IBU")
}

func TestRender_AutoOnBufferIsText(t *testing.T) {
	var auto, text bytes.Buffer
	require.NoError(t, report.Render(&auto, report.FormatAuto, sample))
	require.NoError(t, report.Render(&text, report.FormatText, sample))
	assert.Equal(t, text.String(), auto.String())
}

func TestRender_Terminal(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, report.FormatTerminal, sample))
	assert.Contains(t, buf.String(), "Cascade")
	assert.Contains(t, buf.String(), "Total: 25.8 IBU")
}

func TestRender_Markdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, report.FormatMarkdown, sample))

	want := "### Hops\n\n" +
		"| Name | IBU |\n" +
		"| --- | --- |\n" +
		"| Cascade | 22.7 |\n" +
		"| Saaz \\| late | 3.1 |\n" +
		"\n" +
		"- Total: 25.8 IBU\n"
	assert.Equal(t, want, buf.String())
}

func TestRender_HTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, report.FormatHTML, sample, sample))

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(buf.Bytes()))

	tables := doc.FindElements("//table")
	require.Len(t, tables, 2)

	tbl := tables[0]
	assert.Equal(t, "hops", tbl.SelectAttrValue("class", ""))
	assert.Equal(t, "Hops", tbl.SelectElement("caption").Text())
	assert.Len(t, tbl.FindElements("./thead/tr/th"), 2)
	assert.Len(t, tbl.FindElements("./tbody/tr"), 2)

	foot := tbl.FindElement("./tfoot/tr/td")
	require.NotNil(t, foot)
	assert.Equal(t, "2", foot.SelectAttrValue("colspan", ""))
	assert.Equal(t, "Total: 25.8 IBU", foot.Text())
}

func TestRender_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, report.FormatJSON, sample))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "hops", got[0]["type"])
	assert.Equal(t, []any{"Name", "IBU"}, got[0]["headings"])
}

func TestRender_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, report.FormatYAML, sample))
	assert.Contains(t, buf.String(), "headings:")

	var got []report.Table
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []report.Table{sample}, got)
}

func TestNewRenderer_Unknown(t *testing.T) {
	_, err := report.NewRenderer(report.Format(42), &bytes.Buffer{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestRenderError(t *testing.T) {
	var buf bytes.Buffer
	err := errors.New(errors.ErrUnknownIngredient, "unknown fermentable \"Munch\"").
		WithDetail("suggestions", []string{"GermanMunich"})
	report.RenderError(&buf, err)

	out := buf.String()
	assert.Contains(t, out, "Error: unknown fermentable \"Munch\" [UNKNOWN_INGREDIENT]")
	assert.Contains(t, out, "suggestions: GermanMunich")
}
