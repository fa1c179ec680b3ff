package main

import (
	"context"
	"fmt"
	"os"

	"agency-server/internal/config"
	"agency-server/internal/creatorimport/processor"
	"agency-server/internal/observability"
	"agency-server/internal/store"

	"github.com/spf13/cobra"
)

// importService is the part of processor.ImportProcessor the CLI drives
type importService interface {
	ImportFile(ctx context.Context, kind store.ImportKind, params processor.FileParams) (processor.Summary, error)
}

// openFunc connects the import pipeline and returns a closer for it
type openFunc func(ctx context.Context) (importService, func(), error)

func newRootCmd(open openFunc, tokens tokenIssuer) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "importer",
		Short:        "Agency spreadsheet import and operator tools",
		SilenceUsage: true,
	}
	cmd.AddCommand(newImportCmd(open))
	cmd.AddCommand(newTokenCmd(tokens))
	return cmd
}

func openImporter(ctx context.Context) (importService, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	logger := observability.NewLogger()

	db, err := store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	nullPolicy, err := processor.ParseNullPolicy(cfg.Import.NullPolicy)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	p := processor.New(&db, logger, processor.Config{
		NullPolicy:       nullPolicy,
		ErrorSampleLimit: cfg.Import.ErrorSampleLimit,
		NetworkManager:   cfg.Import.NetworkManager,
	})
	closer := func() {
		_ = db.Close()
		logger.Sync()
	}
	return &p, closer, nil
}

func execute() {
	if err := newRootCmd(openImporter, envTokenIssuer{}).Execute(); err != nil {
		os.Exit(1)
	}
}
