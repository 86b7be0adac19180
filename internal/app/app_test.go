package app

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	apperrors "github.com/agbru/deccalc/internal/errors"
)

func TestHasVersionFlag(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{"single dash", []string{"-version"}, true},
		{"double dash", []string{"--version"}, true},
		{"among others", []string{"-q", "--version", "-a", "1"}, true},
		{"absent", []string{"-a", "1", "-b", "2"}, false},
		{"empty", nil, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := HasVersionFlag(tc.args); got != tc.want {
				t.Errorf("HasVersionFlag(%v) = %v, want %v", tc.args, got, tc.want)
			}
		})
	}
}

func TestPrintVersion(t *testing.T) {
	var buf bytes.Buffer
	PrintVersion(&buf)
	if !strings.HasPrefix(buf.String(), "deccalc ") {
		t.Errorf("version banner = %q", buf.String())
	}
}

func TestNew(t *testing.T) {
	t.Run("valid arguments", func(t *testing.T) {
		a, err := New([]string{"deccalc", "-a", "1.2", "-b", "3.4"}, io.Discard)
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		if a.Config.A != "1.2" || a.Config.B != "3.4" {
			t.Errorf("config = %+v", a.Config)
		}
	})

	t.Run("missing operands", func(t *testing.T) {
		var errOut bytes.Buffer
		_, err := New([]string{"deccalc"}, &errOut)
		var cfgErr apperrors.ConfigError
		if !errors.As(err, &cfgErr) {
			t.Fatalf("error = %v, want ConfigError", err)
		}
		if !strings.Contains(errOut.String(), "operands required") {
			t.Errorf("stderr = %q", errOut.String())
		}
	})

	t.Run("help is not reported as an error", func(t *testing.T) {
		var errOut bytes.Buffer
		_, err := New([]string{"deccalc", "-h"}, &errOut)
		if !IsHelpError(err) {
			t.Fatalf("error = %v, want flag.ErrHelp", err)
		}
		if strings.Contains(errOut.String(), "Error:") {
			t.Errorf("help printed an error banner: %q", errOut.String())
		}
	})
}
