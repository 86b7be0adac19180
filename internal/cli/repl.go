package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/agbru/deccalc/internal/config"
	"github.com/agbru/deccalc/internal/decimal"
	apperrors "github.com/agbru/deccalc/internal/errors"
	"github.com/agbru/deccalc/internal/ui"
)

// REPL is an interactive decimal arithmetic session.
type REPL struct {
	engine       Engine
	defaultScale int
	in           io.Reader
	out          io.Writer
}

// NewREPL creates a REPL reading commands from in and writing to out.
// defaultScale may be config.OmitResultScale to let the engine derive the
// result scale per expression.
func NewREPL(engine Engine, defaultScale int, in io.Reader, out io.Writer) *REPL {
	return &REPL{engine: engine, defaultScale: defaultScale, in: in, out: out}
}

// Run processes commands until EOF, "quit", or context cancellation.
func (r *REPL) Run(ctx context.Context) int {
	fmt.Fprintf(r.out, "deccalc interactive session. Type 'help' for commands.\n")
	scanner := bufio.NewScanner(r.in)

	for {
		fmt.Fprintf(r.out, "%sdeccalc>%s ", ui.ColorPrimary(), ui.ColorReset())
		if !scanner.Scan() {
			fmt.Fprintln(r.out)
			return apperrors.ExitSuccess
		}
		if err := ctx.Err(); err != nil {
			return apperrors.ExitCodeFor(err)
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if quit := r.dispatch(ctx, line); quit {
			return apperrors.ExitSuccess
		}
	}
}

// dispatch handles one command line, returning true to end the session.
func (r *REPL) dispatch(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	switch fields[0] {
	case "quit", "exit":
		return true
	case "help":
		r.printHelp()
	case "scale":
		r.setScale(fields[1:])
	case "widths":
		r.printWidths()
	case "mul", "div":
		r.evaluate(ctx, fields[0], fields[1:])
	default:
		fmt.Fprintf(r.out, "%sunknown command %q; try 'help'%s\n", ui.ColorWarning(), fields[0], ui.ColorReset())
	}
	return false
}

func (r *REPL) printHelp() {
	fmt.Fprint(r.out, `Commands:
  mul <a> <b> [scale]   multiply two decimal literals
  div <a> <b> [scale]   divide two decimal literals
  scale <n>|off         set or clear the session result scale (0..76)
  widths                list the native decimal widths and their capacities
  help                  show this help
  quit                  end the session
`)
}

func (r *REPL) printWidths() {
	for _, w := range decimal.Widths {
		fmt.Fprintf(r.out, "%-10s up to %d digits\n", w, w.MaxDigits())
	}
	fmt.Fprintf(r.out, "results are always %s with %d-digit precision\n",
		decimal.Width256, decimal.MaxPrecision)
}

func (r *REPL) setScale(args []string) {
	if len(args) != 1 {
		fmt.Fprintf(r.out, "%susage: scale <n>|off%s\n", ui.ColorWarning(), ui.ColorReset())
		return
	}
	if args[0] == "off" {
		r.defaultScale = config.OmitResultScale
		fmt.Fprintf(r.out, "result scale follows max(scaleA, scaleB)\n")
		return
	}
	n, err := strconv.ParseUint(args[0], 10, 16)
	if err != nil || n > decimal.MaxPrecision {
		fmt.Fprintf(r.out, "%sscale must be an integer in [0, %d]%s\n", ui.ColorError(), decimal.MaxPrecision, ui.ColorReset())
		return
	}
	r.defaultScale = int(n)
	fmt.Fprintf(r.out, "result scale set to %d\n", n)
}

func (r *REPL) evaluate(ctx context.Context, op string, args []string) {
	if len(args) != 2 && len(args) != 3 {
		fmt.Fprintf(r.out, "%susage: %s <a> <b> [scale]%s\n", ui.ColorWarning(), op, ui.ColorReset())
		return
	}

	scale := r.defaultScale
	if len(args) == 3 {
		n, err := strconv.ParseUint(args[2], 10, 64)
		if err != nil {
			fmt.Fprintf(r.out, "%sscale must be an unsigned integer%s\n", ui.ColorError(), ui.ColorReset())
			return
		}
		scale = int(n)
	}

	start := time.Now()
	result, typ, err := EvaluateScalar(ctx, r.engine, op, args[0], args[1], scale)
	if err != nil {
		PresentError(r.out, err)
		return
	}
	PresentResult(r.out, op, args[0], args[1], result, typ, time.Since(start), false)
}
