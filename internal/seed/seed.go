// Package seed provides the strategies that build a run's initial board.
//
// Strategies register themselves by name in init functions so the CLI can
// construct one from configuration without knowing the concrete types.
package seed

import (
	"sort"

	"lifebuf/internal/config"
	"lifebuf/internal/core"
	"lifebuf/internal/life"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
)

// ErrUnknownStrategy is returned when no factory is registered for a name.
var ErrUnknownStrategy = errors.New("unknown seed strategy")

// Strategy produces an initial board of the requested size.
type Strategy interface {
	Name() string
	Seed(size core.Size) (*life.Board, error)
}

var _ life.Seeder = Strategy(nil)

// Factory constructs a Strategy from the seed section of the configuration.
type Factory func(cfg config.Seed) (Strategy, error)

var factories = map[string]Factory{}

// Register adds a strategy factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	factories[name] = f
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, bool) {
	f, ok := factories[name]
	return f, ok
}

// Names lists the registered strategies in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build constructs the named strategy.
func Build(name string, cfg config.Seed) (Strategy, error) {
	f, ok := Lookup(name)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownStrategy, "%q", name)
	}
	return f(cfg)
}

// New constructs the configured strategy, wrapped in a Fallback when the
// configuration names a secondary strategy.
func New(cfg config.Seed, logger *log.Logger) (Strategy, error) {
	primary, err := Build(cfg.Strategy, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Fallback == "" {
		return primary, nil
	}
	secondary, err := Build(cfg.Fallback, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "fallback")
	}
	return &Fallback{Primary: primary, Secondary: secondary, Logger: logger}, nil
}
