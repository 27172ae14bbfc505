// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Version is the tracedump version
var Version = "development"

func Prepare() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "tracedump",
		Short:        "Export MySQL tables to CSV with row filtering and deterministic pseudonymization",
		SilenceUsage: true,
		Version:      Version,
	}

	viper.SetEnvPrefix("TRACEDUMP")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Flag definition

	// root cmd
	rootCmd.PersistentFlags().String("log-level", "info", "log level for the application. One of trace, debug, info, warn, error, fatal, panic")

	// export cmd
	exportCmd.Flags().StringP("database-url", "d", "root:password@tcp(127.0.0.1:3306)/mysql", "MySQL DSN of the source server")
	exportCmd.Flags().StringP("configfile", "c", "config.yaml", "Path to the export configuration file")
	exportCmd.Flags().StringP("output", "o", "dir", "Output mode. One of dir, stdout")
	exportCmd.Flags().StringP("target-directory", "t", "trunk", "Directory the CSV files are written to in dir mode")
	exportCmd.Flags().Bool("compress", false, "Gzip the output files")

	// validate cmd
	validateCmd.Flags().StringP("configfile", "c", "config.yaml", "Path to the export configuration file")

	// Flag binding
	bindFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	bindFlag("database-url", exportCmd.Flags().Lookup("database-url"))
	bindFlag("configfile", exportCmd.Flags().Lookup("configfile"))
	bindFlag("output", exportCmd.Flags().Lookup("output"))
	bindFlag("target-directory", exportCmd.Flags().Lookup("target-directory"))
	bindFlag("compress", exportCmd.Flags().Lookup("compress"))

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(validateCmd)
	return rootCmd
}

// bindFlag ties a viper key to its CLI flag. Binding a flag defined in
// Prepare cannot fail, so the error only signals a programming mistake.
func bindFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}

// Execute executes the root command.
func Execute() error {
	cmd := Prepare()
	return cmd.Execute()
}

func withSignalWatcher(fn func(ctx context.Context) error) func(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT)
	go func() {
		<-sigc
		cancel()
	}()

	return func(cmd *cobra.Command, args []string) error {
		defer cancel()
		return fn(ctx)
	}
}
