package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/agbru/deccalc/internal/config"
	apperrors "github.com/agbru/deccalc/internal/errors"
	"github.com/agbru/deccalc/internal/exec"
	"github.com/agbru/deccalc/internal/ui"
)

// runREPL feeds the given lines to a fresh session and returns its output.
func runREPL(t *testing.T, input string) string {
	t.Helper()
	prev := ui.GetCurrentTheme()
	ui.SetCurrentTheme(ui.NoColorTheme)
	defer ui.SetCurrentTheme(prev)

	var out bytes.Buffer
	repl := NewREPL(exec.New(), config.OmitResultScale, strings.NewReader(input), &out)
	if code := repl.Run(context.Background()); code != apperrors.ExitSuccess {
		t.Fatalf("Run returned %d, want %d", code, apperrors.ExitSuccess)
	}
	return out.String()
}

func TestREPLEvaluates(t *testing.T) {
	out := runREPL(t, "mul 1.2 3.4\nquit\n")
	if !strings.Contains(out, "1.2 × 3.4 = 4.0") {
		t.Errorf("output missing product:\n%s", out)
	}
}

func TestREPLExplicitScale(t *testing.T) {
	out := runREPL(t, "div 100 4 2\nexit\n")
	if !strings.Contains(out, "100 / 4 = 25.00") {
		t.Errorf("output missing quotient:\n%s", out)
	}
}

func TestREPLSessionScale(t *testing.T) {
	out := runREPL(t, "scale 2\nmul 1.2 3.4\nscale off\nmul 1.2 3.4\nquit\n")
	if !strings.Contains(out, "result scale set to 2") {
		t.Errorf("scale command not acknowledged:\n%s", out)
	}
	if !strings.Contains(out, "= 4.08") {
		t.Errorf("session scale not applied:\n%s", out)
	}
	if !strings.Contains(out, "= 4.0\n") && !strings.Contains(out, "= 4.0 ") {
		t.Errorf("scale off not applied:\n%s", out)
	}
}

func TestREPLReportsErrors(t *testing.T) {
	out := runREPL(t, "div 1 0\nquit\n")
	if !strings.Contains(out, "division by zero") {
		t.Errorf("output missing division error:\n%s", out)
	}
}

func TestREPLUnknownCommand(t *testing.T) {
	out := runREPL(t, "frobnicate\nquit\n")
	if !strings.Contains(out, `unknown command "frobnicate"`) {
		t.Errorf("output missing warning:\n%s", out)
	}
}

func TestREPLRejectsBadScale(t *testing.T) {
	out := runREPL(t, "scale 99\nquit\n")
	if !strings.Contains(out, "scale must be an integer in [0, 76]") {
		t.Errorf("output missing scale rejection:\n%s", out)
	}
}

func TestREPLWidths(t *testing.T) {
	out := runREPL(t, "widths\nquit\n")
	for _, want := range []string{"Decimal32", "Decimal64", "Decimal128", "Decimal256", "76"} {
		if !strings.Contains(out, want) {
			t.Errorf("widths output missing %q:\n%s", want, out)
		}
	}
}

func TestREPLEndsOnEOF(t *testing.T) {
	out := runREPL(t, "help\n")
	if !strings.Contains(out, "mul <a> <b> [scale]") {
		t.Errorf("help text missing:\n%s", out)
	}
}
