package seed

import (
	"lifebuf/internal/core"
	"lifebuf/internal/life"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

// Fallback seeds from Primary and switches to Secondary when Primary fails.
type Fallback struct {
	Primary   Strategy
	Secondary Strategy
	Logger    *log.Logger
}

// Name identifies the strategy.
func (f *Fallback) Name() string {
	return f.Primary.Name() + "|" + f.Secondary.Name()
}

// Seed returns the primary board, or the secondary one if the primary fails.
func (f *Fallback) Seed(size core.Size) (*life.Board, error) {
	b, err := f.Primary.Seed(size)
	if err == nil {
		return b, nil
	}
	logger := f.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger.Warn("seed failed, using fallback",
		"strategy", f.Primary.Name(),
		"fallback", f.Secondary.Name(),
		"err", err)

	b, ferr := f.Secondary.Seed(size)
	if ferr != nil {
		return nil, errors.Wrapf(ferr, "fallback after %v", err)
	}
	return b, nil
}
