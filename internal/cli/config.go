package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/hieple7985/hip-key/internal/config"
)

func init() {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the hipkey configuration file",
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file if none exists",
		Run:   runConfigInit,
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		Run:   runConfigShow,
	}

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Run:   runConfigPath,
	}

	configCmd.AddCommand(initCmd, showCmd, pathCmd)
	RootCmd.AddCommand(configCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) {
	path := configFlag
	if path == "" {
		path = config.ConfigPath()
	}

	_, created, err := config.LoadOrCreate(path)
	if err != nil {
		exitErr("config init", err)
	}
	if created {
		fmt.Printf("created %s\n", path)
	} else {
		fmt.Printf("config already exists at %s\n", path)
	}
}

func runConfigShow(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	if err := toml.NewEncoder(os.Stdout).Encode(cfg); err != nil {
		exitErr("config show", err)
	}
}

func runConfigPath(cmd *cobra.Command, args []string) {
	if configFlag != "" {
		fmt.Println(configFlag)
		return
	}
	if found := config.FindConfigFile(); found != "" {
		fmt.Println(found)
		return
	}
	// Nothing on disk yet; print where init would put it.
	fmt.Println(config.ConfigPath())
}
