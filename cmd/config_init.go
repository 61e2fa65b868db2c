package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ywlabs/json2xlsx/config"
	"github.com/ywlabs/json2xlsx/convert"
)

var configInitForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage converter defaults",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the built-in defaults",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	path, err := config.Path()
	if err != nil {
		return err
	}
	if !configInitForce {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
		}
	}

	defaults := convert.DefaultOptions()
	cfg := config.Config{
		SheetName:            defaults.SheetName,
		CommentAuthor:        defaults.CommentAuthor,
		MaxCellLength:        defaults.MaxCellLength,
		CommentPreviewLength: defaults.CommentPreviewLength,
	}
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Printf("Config written: %s\n", path)
	return nil
}
