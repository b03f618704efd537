package stylesheet

import (
	"context"

	"github.com/alexisbeaulieu97/classy/internal/config"
	"github.com/alexisbeaulieu97/classy/internal/logger"
)

// Loader reads stylesheet files from disk and builds Sheets.
type Loader struct {
	logger *logger.Logger
}

// NewLoader returns a Loader that reports progress to log. A nil log is allowed.
func NewLoader(log *logger.Logger) *Loader {
	return &Loader{logger: log}
}

// Load parses, validates and builds the stylesheet at path.
func (l *Loader) Load(ctx context.Context, path string) (*Sheet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log := l.logger.WithFields(map[string]any{"path": path})
	log.Debug("loading stylesheet")

	doc, err := config.ParseStylesheet(path)
	if err != nil {
		log.Error(err, "failed to parse stylesheet")
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sheet, err := Build(doc)
	if err != nil {
		log.Error(err, "failed to build stylesheet")
		return nil, err
	}

	log.WithFields(map[string]any{"sheet": sheet.Name(), "styles": len(sheet.order)}).Debug("stylesheet loaded")
	return sheet, nil
}
