package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/agbru/deccalc/internal/decimal"
	"github.com/agbru/deccalc/internal/ui"
)

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds
// for durations less than a second, and the default string representation
// otherwise.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// opSymbol maps an operation name to its display symbol.
func opSymbol(op string) string {
	if op == "div" {
		return "/"
	}
	return "×"
}

// PresentResult prints one evaluated expression. Quiet mode prints only the
// result value, one per line, suitable for scripting.
func PresentResult(out io.Writer, op, a, b, result string, typ decimal.Type, d time.Duration, quiet bool) {
	if quiet {
		fmt.Fprintln(out, result)
		return
	}
	fmt.Fprintf(out, "%s %s %s = %s\n",
		a, opSymbol(op), b, ui.ResultStyle.Render(result))
	fmt.Fprintf(out, "%s\n", ui.LabelStyle.Render(
		fmt.Sprintf("type=%s  elapsed=%s", typ, FormatExecutionDuration(d))))
}

// PresentError prints an evaluation or configuration error in the active
// error color.
func PresentError(w io.Writer, err error) {
	fmt.Fprintf(w, "%sError: %v%s\n", ui.ColorError(), err, ui.ColorReset())
}
