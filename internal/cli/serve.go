package cli

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/victornm/quizduel/internal/server"
)

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP and gRPC servers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(*configPath)
		},
	}
}

func runServer(configPath string) error {
	c, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	s, err := server.Init(c)
	if err != nil {
		return fmt.Errorf("init server: %w", err)
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGTERM, os.Interrupt)

	errc := make(chan error, 1)
	go func() { errc <- s.Start() }()

	select {
	case sig := <-shutdown:
		slog.Info("cli: received signal, shutting down", "signal", sig.String())
	case err = <-errc:
		slog.Error("cli: server stopped", "error", err)
	}

	s.Shutdown()
	return err
}
