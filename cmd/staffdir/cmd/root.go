// Package cmd implements the staffdir command tree.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/okubo/staffdir-go/internal/config"
	"github.com/okubo/staffdir-go/internal/logging"
	"github.com/okubo/staffdir-go/pkg/staffdir/directory"
	"github.com/okubo/staffdir-go/pkg/staffdir/store"
)

var (
	configFile string
	logger     zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "staffdir",
	Short: "Spreadsheet-backed employee directory",
	Long: `staffdir maintains an employee/department directory persisted in a
single Excel workbook: add, edit, delete, search, filter, bulk-import and
export records without any server or database.

The workbook path comes from --workbook, the STAFFDIR_WORKBOOK environment
variable, a .env file, or a .staffdir.yaml config file; it defaults to
employees.xlsx in the working directory and is created on first use.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		logger = logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.staffdir.yaml)")
	rootCmd.PersistentFlags().String(config.KeyWorkbook, "", "workbook path (default "+config.DefaultWorkbook+")")
	rootCmd.PersistentFlags().String(config.KeyLogLevel, "", "log level: trace, debug, info, warn, error, quiet")
	rootCmd.PersistentFlags().String(config.KeyLogFormat, "", "log format: console or json")

	for _, key := range []string{config.KeyWorkbook, config.KeyLogLevel, config.KeyLogFormat} {
		if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(key)); err != nil {
			panic(fmt.Sprintf("binding %s flag: %v", key, err))
		}
	}
}

// initConfig reads the config file and environment variables.
func initConfig() {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".staffdir")
	}

	config.LoadEnvFiles()

	viper.SetEnvPrefix("STAFFDIR")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// A missing config file is fine; everything has defaults.
	_ = viper.ReadInConfig()
}

// openDirectory loads the workbook into memory, creating it when absent.
func openDirectory() (*directory.Directory, string, error) {
	path := config.Load().Workbook
	dir, err := store.Load(path)
	if err != nil {
		return nil, "", err
	}
	logger.Debug().Str("workbook", path).
		Int("employees", len(dir.Employees)).
		Int("departments", len(dir.Departments)).
		Msg("workbook loaded")
	return dir, path, nil
}

// saveDirectory persists the full two-table state back to the workbook.
func saveDirectory(path string, dir *directory.Directory) error {
	if err := store.Save(path, dir); err != nil {
		return err
	}
	logger.Debug().Str("workbook", path).Msg("workbook saved")
	return nil
}
