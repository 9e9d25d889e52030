package srv

import (
	"context"
	"fmt"

	"github.com/sandevgo/reachout/pkg/log"
	"golang.org/x/sync/errgroup"
)

type Service interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// Run starts every service and blocks until ctx is done or one of them returns.
// All services are shut down before it returns, in reverse order.
func Run(ctx context.Context, services []Service) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(runCtx)
	for _, service := range services {
		g.Go(func() error {
			defer cancel()
			if err := service.Start(gctx); err != nil {
				return fmt.Errorf("%T: %w", service, err)
			}
			return nil
		})
	}

	<-gctx.Done()
	ShutdownServices(context.WithoutCancel(ctx), services)

	if err := g.Wait(); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

func ShutdownServices(ctx context.Context, services []Service) {
	logger := log.FromCtx(ctx)
	for i := len(services) - 1; i >= 0; i-- {
		if err := services[i].Shutdown(ctx); err != nil {
			logger.Error().Err(err).Msgf("%T failed to shutdown", services[i])
		}
	}
}
