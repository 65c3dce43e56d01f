// Package cli provides the command-line interface for basiccalc.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/fulgidus/basiccalc/internal/config"
	"github.com/fulgidus/basiccalc/internal/logging"
)

// app carries the state shared by every command of one root instance.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	logger  *zap.Logger
}

// NewRootCmd builds the basiccalc command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "basiccalc",
		Short: "basiccalc - divisibility classification and factorials",
		Long: `basiccalc evaluates two small integer functions over uint32 inputs:

  classify   12 if even, 13 if divisible by 3, 17 otherwise
  factorial  n! with uint32 wraparound past 12!

Inputs can be given as arguments or as a YAML/JSON job file.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.preRun,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./basiccalc.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (json, console)")
	rootCmd.PersistentFlags().StringP("output", "o", "text", "output format (text, json, yaml)")

	_ = a.v.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = a.v.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = a.v.BindPFlag("output.format", rootCmd.PersistentFlags().Lookup("output"))

	rootCmd.AddCommand(
		newClassifyCmd(a),
		newFactorialCmd(a),
		newBatchCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the root command. This is called by main.main().
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// preRun loads configuration and initializes the logger.
func (a *app) preRun(cmd *cobra.Command, args []string) error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		a.v.AddConfigPath(".")
		a.v.AddConfigPath("./configs")
		a.v.SetConfigName("basiccalc")
		a.v.SetConfigType("yaml")
	}

	a.v.SetEnvPrefix("BASICCALC")
	a.v.SetEnvKeyReplacer(config.EnvKeyReplacer)
	a.v.AutomaticEnv()

	cfg, err := config.Load(a.v)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	a.cfg = cfg

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger

	if used := a.v.ConfigFileUsed(); used != "" {
		a.logger.Debug("using config file", zap.String("path", used))
	}
	return nil
}
