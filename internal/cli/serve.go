package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harun/careerintel/internal/config"
	"github.com/harun/careerintel/internal/logger"
	"github.com/harun/careerintel/pkg/auth"
	"github.com/harun/careerintel/pkg/careertools"
	"github.com/harun/careerintel/pkg/mcpserver"
	"github.com/harun/careerintel/pkg/tool"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the MCP server in the foreground. The server reads AUTH_TOKEN and
MY_NUMBER from the environment, registers the tool set once, and serves
authenticated tool calls until interrupted.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "listen host (overrides config)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "listen port (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.NewLoader(cfgFile).Load()
	if err != nil {
		return err
	}

	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if serveHost != "" {
		cfg.Server.Host = serveHost
	}
	if servePort > 0 {
		cfg.Server.Port = servePort
	}

	// Configuration problems are fatal at startup, never reported per-call.
	if err := config.NewValidator().Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logg, err := logger.New(logger.Config{
		Level:     cfg.Logging.Level,
		File:      cfg.Logging.File,
		Console:   cfg.Logging.Console,
		Pretty:    cfg.Logging.Pretty,
		Redaction: cfg.Logging.Redaction,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logg.Close()
	zl := logg.GetZerolog()

	validator := auth.NewValidator(cfg.Auth.Token, "careerintel-client")

	registry := tool.NewRegistry(zl)
	if err := careertools.RegisterAll(registry, careertools.Options{
		OperatorID: cfg.Auth.OperatorID,
	}); err != nil {
		return fmt.Errorf("tool registration failed: %w", err)
	}

	dispatcher, err := tool.NewDispatcher(validator, registry, zl)
	if err != nil {
		return err
	}

	srv, err := mcpserver.NewServer(mcpserver.Config{
		Host:        cfg.Server.Host,
		Port:        cfg.Server.Port,
		Registry:    registry,
		Dispatcher:  dispatcher,
		Validator:   validator,
		Logger:      zl,
		MaxInFlight: cfg.Server.MaxInFlight,
	})
	if err != nil {
		return err
	}

	if err := srv.Start(); err != nil {
		return err
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	sig := <-sigCh

	zl.Info().Str("signal", sig.String()).Msg("Received shutdown signal")

	return srv.Stop()
}
