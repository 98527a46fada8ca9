package output

import (
	"fmt"

	"github.com/Aosanori/minutes-flow/internal/logger"
)

type implWriter struct {
	format string
	logger logger.Logger
}

// New creates a Writer for the given format (markdown, text or docx).
// Unknown formats are rejected here, before the pipeline runs.
func New(format string, log logger.Logger) (Writer, error) {
	switch format {
	case "markdown", "text", "docx":
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}

	return &implWriter{format: format, logger: log}, nil
}
