package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/fatih/color"
)

// Diagnostic is a single user-facing error: a code, a message, and an
// optional source position for caret-style reporting.
type Diagnostic struct {
	Code    Code
	Message string
	Pos     *lexer.Position
	Source  string // the offending line, for the caret pointer; empty if unavailable
}

func New(code Code, msg string) Diagnostic {
	return Diagnostic{Code: code, Message: msg}
}

func (d Diagnostic) WithPos(pos lexer.Position, source string) Diagnostic {
	d.Pos = &pos
	d.Source = sourceLine(source, pos.Line)
	return d
}

func sourceLine(source string, line int) string {
	lines := strings.Split(source, "\n")
	if line < 1 || line > len(lines) {
		return ""
	}
	return lines[line-1]
}

// Report writes a boxed, colored diagnostic to w: an "error[Dxxx]: message"
// header, followed by a caret line pointing at the offending column when a
// position is available. Grounded on the teacher's FormatError/
// reportParseError pair, merged into one reporter.
func Report(w io.Writer, d Diagnostic) {
	fail := color.New(color.FgRed, color.Bold)
	fail.Fprintf(w, "error[%s]: %s\n", d.Code, d.Message)
	if d.Pos == nil {
		return
	}
	fmt.Fprintf(w, "  --> line %d, column %d\n", d.Pos.Line, d.Pos.Column)
	if d.Source == "" {
		return
	}
	fmt.Fprintf(w, "  | %s\n", d.Source)
	col := d.Pos.Column
	if col < 1 {
		col = 1
	}
	caret := color.New(color.FgRed).SprintFunc()
	fmt.Fprintf(w, "  | %s%s\n", strings.Repeat(" ", col-1), caret("^"))
}

// Banner prints a colored success/options banner line to w, grounded on
// the teacher's CLI startup styling.
func Banner(w io.Writer, msg string) {
	banner := color.New(color.FgCyan, color.Bold)
	banner.Fprintln(w, msg)
}
