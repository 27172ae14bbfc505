// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tracedump/tracedump/cmd/config"
	zerologcfg "github.com/tracedump/tracedump/internal/log/zerolog"
	"github.com/tracedump/tracedump/internal/mysql"
	"github.com/tracedump/tracedump/pkg/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Run the configured export against the source database",
	RunE:  withSignalWatcher(runExport),
}

func runExport(ctx context.Context) error {
	zlogger := zerologcfg.NewLogger(&zerologcfg.Config{
		LogLevel: config.LogLevel(),
	})
	zerologcfg.SetGlobalLogger(zlogger)
	logger := zerologcfg.NewStdLogger(zlogger)

	cfg, err := config.ParseExportConfig(config.ConfigFile())
	if err != nil {
		return err
	}

	outputKind, err := config.OutputKind()
	if err != nil {
		return err
	}
	output, err := export.NewOutput(outputKind, config.TargetDirectory(), config.Compress(), logger)
	if err != nil {
		return err
	}

	db, err := mysql.Connect(ctx, config.DatabaseURL())
	if err != nil {
		return err
	}
	defer db.Close()

	// one session for the whole run, trace filter materializations live in it
	conn, err := mysql.Session(ctx, db)
	if err != nil {
		return err
	}
	defer conn.Close()

	exporter := export.New(conn, cfg, output,
		export.WithLogger(logger),
		export.WithProgress(output.Progress()),
	)
	if err := exporter.Run(ctx); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	return nil
}
