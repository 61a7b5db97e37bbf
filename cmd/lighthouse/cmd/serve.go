package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/melih/lighthouse-desktop/internal/adapters/builder"
	"github.com/melih/lighthouse-desktop/internal/adapters/http"
	"github.com/melih/lighthouse-desktop/internal/logger"
)

var listenFlag string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP API for the desktop UI",
	RunE: func(cmd *cobra.Command, args []string) error {
		listen := cfg.Server.Listen
		if listenFlag != "" {
			listen = listenFlag
		}

		// The CLI adapter implements every service port; the builder
		// shares its runner.
		app := http.NewApp(http.Handlers{
			Containers: http.NewContainerHandler(adapter, cfg.Logs.DefaultTail),
			Images:     http.NewImageHandler(adapter, builder.NewBuilderAdapter(runner)),
			Volumes:    http.NewVolumeHandler(adapter),
			Proxy:      http.NewProxyHandler(adapter, cfg.Server.ProxyDomain),
		})

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		go func() {
			<-ctx.Done()
			logger.Get().Infof("shutting down")
			_ = app.Shutdown()
		}()

		logger.Get().Infof("serving API on %s using %s", listen, cfg.Runtime.Binary)
		if err := app.Listen(listen); err != nil && ctx.Err() == nil {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&listenFlag, "listen", "", "Address to listen on (overrides server.listen)")
}

