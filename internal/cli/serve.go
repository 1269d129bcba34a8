package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/raysh454/compliscan/internal/demoserver"
	"github.com/raysh454/compliscan/internal/logging"
	"github.com/raysh454/compliscan/internal/webui"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(st *rootState) *cobra.Command {
	var (
		listen   string
		withDemo bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the web UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := st.cfg.Server
			if listen != "" {
				cfg.ListenAddr = listen
			}
			cfg.Service = &st.cfg.Service
			cfg.Logger = st.logger

			srv, err := webui.NewServer(cfg)
			if err != nil {
				return err
			}
			defer srv.Close()

			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				return serveHTTP(ctx, srv.HTTPServer(), st.logger)
			})
			if withDemo {
				demo := demoserver.NewDemoServer(st.cfg.DemoServer, st.logger)
				g.Go(func() error {
					return demo.Start(ctx)
				})
			}
			return g.Wait()
		},
	}

	cmd.Flags().StringVarP(&listen, "listen", "l", "", "listen address (overrides server.listen_addr)")
	cmd.Flags().BoolVar(&withDemo, "demo", false, "also run the stub scanning service on demoserver.port")
	return cmd
}

// serveHTTP runs hs until ctx is done, then shuts it down gracefully.
func serveHTTP(ctx context.Context, hs *http.Server, logger logging.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("web ui listening", logging.F("addr", hs.Addr))
		errCh <- hs.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("web ui: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("web ui shutting down")
		if err := hs.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down web ui: %w", err)
		}
		return nil
	}
}
