package progress

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"

	"github.com/predeploy-org/predeploy-cli/internal/usecase"
)

// SpinnerSink reports progress with a terminal spinner.
type SpinnerSink struct {
	spinner *spinner.Spinner
}

// NewSpinnerSink creates a spinner-based progress sink.
func NewSpinnerSink() *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.HideCursor = false
	return &SpinnerSink{spinner: s}
}

// Start begins a spinning stage with the given message.
func (r *SpinnerSink) Start(message string) {
	r.spinner.Suffix = " " + message
	if !r.spinner.Active() {
		r.spinner.Start()
	}
}

// Stop ends the current stage.
func (r *SpinnerSink) Stop() {
	if r.spinner.Active() {
		r.spinner.Stop()
	}
}

// Info prints an informational line, pausing the spinner if needed.
func (r *SpinnerSink) Info(message string) {
	r.withPausedSpinner(func() {
		fmt.Println(message)
	})
}

// Warn prints a warning line.
func (r *SpinnerSink) Warn(message string) {
	r.withPausedSpinner(func() {
		color.New(color.FgYellow).Printf("⚠️  %s\n", message)
	})
}

func (r *SpinnerSink) withPausedSpinner(fn func()) {
	active := r.spinner.Active()
	if active {
		r.spinner.Stop()
	}
	fn()
	if active {
		r.spinner.Start()
	}
}

var _ usecase.ProgressSink = (*SpinnerSink)(nil)
