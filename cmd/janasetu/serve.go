package main

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/janasetu/janasetu/internal/config"
	"github.com/janasetu/janasetu/internal/engine"
	"github.com/janasetu/janasetu/internal/llm"
	"github.com/janasetu/janasetu/internal/server"
	"github.com/janasetu/janasetu/internal/storage"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE:  runServe,
	}

	cmd.Flags().String("addr", ":8080", "listen address")
	_ = viper.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger := slog.Default()

	store, err := openStorage()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.Migrate(cmd.Context()); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	var upstream engine.UpstreamClassifier
	apiKey := viper.GetString("llm.api_key")
	if apiKey == "" {
		logger.Warn("no LLM API key configured, classification will use heuristics only")
	} else {
		adapter, err := llm.NewAdapter(llm.Config{
			Provider:    viper.GetString("llm.provider"),
			APIKey:      apiKey,
			Model:       viper.GetString("llm.model"),
			TimeoutSecs: viper.GetInt("llm.timeout_seconds"),
		}, logger)
		if err != nil {
			return fmt.Errorf("failed to create LLM adapter: %w", err)
		}
		upstream = adapter
	}

	eng := engine.New(upstream, store, logger)
	defer eng.Close()

	srv := server.New(eng, store, logger)

	addr := viper.GetString("server.addr")
	if addr == "" {
		addr = ":8080"
	}

	if err := srv.Start(cmd.Context(), addr); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

func openStorage() (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath()
	}

	store, err := storage.NewSQLiteStorage(config.ExpandPath(dbPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return store, nil
}
