// Package cli implements the hipkey CLI commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hieple7985/hip-key/internal/config"
	"github.com/hieple7985/hip-key/internal/dict"
	"github.com/hieple7985/hip-key/internal/logging"
	"github.com/hieple7985/hip-key/pkg/vietnamese"
)

var (
	configFlag   string
	methodFlag   string
	logLevelFlag string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "hipkey",
	Short: "Vietnamese input method engine",
	Long: "Convert Telex and VNI keystrokes into Vietnamese text. " +
		"Batch conversion, an interactive composer, and dictionary management in one binary.",
	PersistentPreRun: setupLogging,
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Config file path (default: platform config dir)")
	RootCmd.PersistentFlags().StringVarP(&methodFlag, "method", "m", "", "Input method: telex or vni (overrides config)")
	RootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
}

func setupLogging(cmd *cobra.Command, args []string) {
	logLevelFlag, _ = cmd.Flags().GetString("log-level")
	if logLevelFlag == "" {
		return
	}
	level, err := logging.ParseLevel(logLevelFlag)
	if err != nil {
		exitErr("log level", err)
	}
	logger, err := logging.New(&logging.Config{
		Level:     level,
		Format:    logging.FormatText,
		Output:    "stderr",
		Component: "hipkey",
	})
	if err != nil {
		exitErr("logging", err)
	}
	logging.SetDefault(logger)
}

func loadConfig() *config.Config {
	cfg, err := config.Load(configFlag)
	if err != nil {
		exitErr("load config", err)
	}
	if methodFlag != "" {
		cfg.Input.Method = methodFlag
	}
	if logLevelFlag != "" {
		cfg.Logging.Level = logLevelFlag
	}
	return cfg
}

func inputMethod(cfg *config.Config) vietnamese.InputMethod {
	method, err := vietnamese.ParseInputMethod(cfg.Method())
	if err != nil {
		exitErr("input method", err)
	}
	return method
}

func openDict(cfg *config.Config) *dict.Store {
	store, err := dict.Open(cfg.DictionaryPath())
	if err != nil {
		exitErr("open dictionary", err)
	}
	return store
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
