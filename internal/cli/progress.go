//go:generate mockgen -source=progress.go -destination=mocks/mock_progress.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// ProgressRefreshRate defines the refresh frequency of the batch spinner.
const ProgressRefreshRate = 200 * time.Millisecond

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// This allows the batch runner to be decoupled from a specific spinner
// implementation, facilitating easier testing. It defines the essential
// controls for a spinner: starting, stopping, and updating its status
// message.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(message string)
}

// termSpinner adapts briandowns/spinner to the Spinner interface.
type termSpinner struct {
	s *spinner.Spinner
}

// Verify interface compliance.
var _ Spinner = (*termSpinner)(nil)

// NewSpinner creates a terminal spinner writing to out.
func NewSpinner(out io.Writer) Spinner {
	return &termSpinner{
		s: spinner.New(spinner.CharSets[14], ProgressRefreshRate, spinner.WithWriter(out)),
	}
}

func (t *termSpinner) Start() { t.s.Start() }

func (t *termSpinner) Stop() { t.s.Stop() }

func (t *termSpinner) UpdateSuffix(message string) {
	t.s.Suffix = " " + message
}

// NopSpinner returns a spinner that renders nothing, for quiet mode.
func NopSpinner() Spinner { return nopSpinner{} }

// nopSpinner is used in quiet mode.
type nopSpinner struct{}

// Verify interface compliance.
var _ Spinner = nopSpinner{}

func (nopSpinner) Start() {}

func (nopSpinner) Stop() {}

func (nopSpinner) UpdateSuffix(string) {}

// withSpinner runs fn while the spinner animates with the given message.
// The spinner is always stopped before returning, on every exit path.
func withSpinner(sp Spinner, rows int, fn func() error) error {
	sp.UpdateSuffix(fmt.Sprintf("evaluating %d rows", rows))
	sp.Start()
	defer sp.Stop()
	return fn()
}
