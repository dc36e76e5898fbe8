package daemon

import (
	"context"
	"log/slog"

	"github.com/fgindraud/slam/backend"
	"github.com/fgindraud/slam/controller"
	"github.com/fgindraud/slam/store"
)

// Run loads the store at cfg.DatabasePath, wires it to b through a
// controller, and blocks running the controller's state machine until ctx
// is cancelled or a fatal backend/store error occurs.
func Run(ctx context.Context, cfg Config, b backend.Backend, logger *slog.Logger) error {
	s, err := store.LoadOrEmpty(cfg.DatabasePath, logger)
	if err != nil {
		return err
	}

	c := controller.New(b, s, logger)
	return c.Run(ctx, cfg.ReactionDelay)
}
