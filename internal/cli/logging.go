package cli

import (
	"go.uber.org/zap"
)

// newLogger builds the command logger. Non-verbose runs stay silent so
// structured logs never pollute the formatted output streams.
func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}
