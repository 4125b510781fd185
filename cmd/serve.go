package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordwonder/internal/config"
	"github.com/robalobadob/wordwonder/internal/daily"
	"github.com/robalobadob/wordwonder/internal/httpserver"
	"github.com/robalobadob/wordwonder/internal/prefs"
	"github.com/robalobadob/wordwonder/internal/store"
)

const shutdownGrace = 5 * time.Second

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Serve runs the JSON API on PORT until SIGINT or SIGTERM.

Game sessions live in memory and expire after SESSION_TTL of inactivity.
Daily results and player preferences are stored in the SQLite file DB_PATH.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	if a.cfg.TokenSecret == config.DevTokenSecret && a.cfg.Production() {
		log.Warn().Msg("PLAYER_TOKEN_SECRET is the development default")
	}
	conn, err := a.openDB()
	if err != nil {
		return err
	}
	defer conn.Close()

	sessions := store.NewMemoryStore()
	srv := httpserver.New(httpserver.Deps{
		Config:   a.cfg,
		Catalog:  a.catalog,
		Sessions: sessions,
		Daily:    daily.NewStore(conn),
		Prefs:    prefs.New(prefs.NewSQLiteKV(conn)),
		Now:      now,
	})

	log.Info().
		Str("port", a.cfg.Port).
		Str("db", a.cfg.DBPath).
		Int("puzzles", a.catalog.Len()).
		Msg("starting wordwonder")

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Serve(ctx, a.cfg.Addr(), shutdownGrace)
	})
	g.Go(func() error {
		sweepSessions(ctx, sessions, a.cfg.SessionTTL)
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}
	log.Info().Msg("stopped")
	return nil
}

// sweepSessions drops idle sessions until ctx is done.
func sweepSessions(ctx context.Context, m *store.Memory, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	t := time.NewTicker(max(ttl/6, time.Minute))
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := m.Sweep(ttl); n > 0 {
				log.Debug().Int("expired", n).Int("active", m.Len()).Msg("swept sessions")
			}
		}
	}
}
