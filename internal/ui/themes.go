// Package ui provides terminal color themes for CLI output.
package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines a color scheme for UI output.
// Each field contains an ANSI escape code for the corresponding color category.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Primary is the main accent color for important elements.
	Primary string
	// Secondary is used for less prominent elements.
	Secondary string
	// Success indicates positive outcomes or completed operations.
	Success string
	// Warning is used for caution messages or non-critical issues.
	Warning string
	// Error indicates failures or critical issues.
	Error string
	// Bold is the escape code for bold text.
	Bold string
	// Reset clears all formatting.
	Reset string
}

var (
	// DarkTheme is optimized for dark terminal backgrounds.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   "\033[38;5;39m",  // Bright blue
		Secondary: "\033[38;5;245m", // Grey
		Success:   "\033[38;5;82m",  // Bright green
		Warning:   "\033[38;5;220m", // Yellow
		Error:     "\033[38;5;196m", // Red
		Bold:      "\033[1m",
		Reset:     "\033[0m",
	}

	// LightTheme is optimized for light terminal backgrounds.
	LightTheme = Theme{
		Name:      "light",
		Primary:   "\033[38;5;27m",  // Dark blue
		Secondary: "\033[38;5;240m", // Dark grey
		Success:   "\033[38;5;28m",  // Dark green
		Warning:   "\033[38;5;130m", // Orange
		Error:     "\033[38;5;124m", // Dark red
		Bold:      "\033[1m",
		Reset:     "\033[0m",
	}

	// NoColorTheme disables all color output.
	// Used when NO_COLOR is set (https://no-color.org/).
	NoColorTheme = Theme{Name: "none"}

	// currentTheme is the active theme used throughout the application.
	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// ResultStyle renders the computed decimal value in CLI output.
var ResultStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "27", Dark: "82"})

// LabelStyle renders field labels ("operand", "scale", ...) in CLI output.
var LabelStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"})

// GetCurrentTheme returns the currently active theme in a thread-safe manner.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme sets the currently active theme in a thread-safe manner.
// This is primarily used for testing purposes to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// InitTheme initializes the active theme. The NO_COLOR environment variable
// always wins; otherwise light selects the light palette.
func InitTheme(light bool) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	switch {
	case os.Getenv("NO_COLOR") != "":
		currentTheme = NoColorTheme
	case light:
		currentTheme = LightTheme
	default:
		currentTheme = DarkTheme
	}
}

// ColorPrimary returns the active primary color code.
func ColorPrimary() string { return GetCurrentTheme().Primary }

// ColorSecondary returns the active secondary color code.
func ColorSecondary() string { return GetCurrentTheme().Secondary }

// ColorSuccess returns the active success color code.
func ColorSuccess() string { return GetCurrentTheme().Success }

// ColorWarning returns the active warning color code.
func ColorWarning() string { return GetCurrentTheme().Warning }

// ColorError returns the active error color code.
func ColorError() string { return GetCurrentTheme().Error }

// ColorBold returns the active bold code.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorReset returns the active reset code.
func ColorReset() string { return GetCurrentTheme().Reset }
