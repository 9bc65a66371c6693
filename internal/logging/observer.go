package logging

import (
	"go.uber.org/zap"

	"github.com/five82/roster/internal/grid"
	"github.com/five82/roster/internal/users"
)

// SelectionObserver reports table selection events to a logger.
type SelectionObserver struct {
	logger *zap.Logger
}

var _ grid.Observer = SelectionObserver{}

// NewSelectionObserver returns an observer logging to l (nil discards).
func NewSelectionObserver(l *zap.Logger) SelectionObserver {
	return SelectionObserver{logger: OrNop(l).Named("selection")}
}

// SelectionChanged logs the selected keys and rows.
func (o SelectionObserver) SelectionChanged(keys []string, rows []users.Item) {
	o.logger.Info("selection changed",
		zap.Int("count", len(keys)),
		zap.Strings("keys", keys),
		zap.Any("rows", rows),
	)
}

// CheckboxQueried logs the checkbox properties computed for a row.
func (o SelectionObserver) CheckboxQueried(item users.Item, props grid.CheckboxProps) {
	o.logger.Debug("checkbox props",
		zap.String("key", item.Key()),
		zap.Bool("disabled", props.Disabled),
		zap.String("name", props.Name),
	)
}
