package output

import (
	"io"

	"github.com/lgbarn/chess-puzzles-go/internal/config"
)

// NewReportWriter returns the writer for cfg's output format, writing to w.
// When w is nil the configured output writer is used.
func NewReportWriter(cfg *config.Config, w io.Writer) ReportWriter {
	if w == nil {
		w = cfg.Output.Writer
	}
	if cfg.Output.Format == config.JSON {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w)
}
