package progress

import "github.com/predeploy-org/predeploy-cli/internal/usecase"

// NopSink discards all progress events. Used in non-interactive runs where
// spinner escape codes would pollute captured output.
type NopSink struct{}

// NewNopSink creates a no-op progress sink.
func NewNopSink() *NopSink {
	return &NopSink{}
}

func (*NopSink) Start(string) {}
func (*NopSink) Stop()        {}
func (*NopSink) Info(string)  {}
func (*NopSink) Warn(string)  {}

var _ usecase.ProgressSink = (*NopSink)(nil)
