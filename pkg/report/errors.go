package report

import (
	stderrors "errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arthur-debert/wort/pkg/errors"
)

// RenderError prints err for a human: the message, the error code, and the
// details that help fix it. Colors follow the capabilities of w.
func RenderError(w io.Writer, err error) {
	if err == nil {
		return
	}
	s := newStyles(lipgloss.NewRenderer(w))

	var b strings.Builder
	b.WriteString(s.Error.Render("Error:"))
	b.WriteString(" ")
	b.WriteString(message(err))
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		b.WriteString(" ")
		b.WriteString(s.Code.Render("[" + string(code) + "]"))
	}
	b.WriteString("\n")

	details := errors.GetErrorDetails(err)
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "  %s\n", s.Hint.Render(fmt.Sprintf("%s: %s", k, detail(details[k]))))
	}
	_, _ = io.WriteString(w, b.String())
}

// message drops the code prefix WortError.Error adds.
func message(err error) string {
	var we *errors.WortError
	if stderrors.As(err, &we) {
		if we.Wrapped != nil {
			return we.Message + ": " + we.Wrapped.Error()
		}
		return we.Message
	}
	return err.Error()
}

func detail(v any) string {
	if list, ok := v.([]string); ok {
		return strings.Join(list, ", ")
	}
	return fmt.Sprint(v)
}
