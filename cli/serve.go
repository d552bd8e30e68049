package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"outrunner/cache"
	"outrunner/server"
	"outrunner/store"
)

func ServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve designs over websocket",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			deps := server.Deps{
				SweepWorkers: cfg.Sweep.Workers,
				MaxSweepKVs:  cfg.Sweep.MaxKVs,
			}

			if cfg.Store.Enabled {
				db, err := store.Open(cfg.Store.Path)
				if err != nil {
					return err
				}
				defer db.Close()
				deps.History = db
			}

			if cfg.Cache.Enabled {
				c, err := cache.Dial(ctx, cfg.Cache.Addr, cfg.Cache.DB, cfg.Cache.TTL)
				if err != nil {
					// 缓存不可用时继续提供服务
					log.WithError(err).Warn("design cache disabled")
				} else {
					defer c.Close()
					deps.Cache = c
				}
			}

			return server.NewServer(cfg.Server, deps).Serve(ctx)
		},
	}
}
