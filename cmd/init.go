package cmd

import (
	"fmt"
	"os"

	"github.com/kamusis/vecpair/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write default settings to ~/.vecpair",
	Long: `Create ~/.vecpair/vecpair.yaml with the default settings and an
~/.vecpair/.env template listing the VECPAIR_* overrides.

Existing files are left untouched.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	cfgPath, err := config.ConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		if err := config.Save(config.DefaultConfig()); err != nil {
			return err
		}
		printOK(out, fmt.Sprintf("Config written: %s", cfgPath))
	} else if err != nil {
		return fmt.Errorf("cannot stat config %s: %w", cfgPath, err)
	} else {
		printSkip(out, fmt.Sprintf("Config already exists: %s", cfgPath))
	}

	envPath, err := config.DotEnvPath()
	if err != nil {
		return err
	}
	if err := config.EnsureDotEnvTemplate(); err != nil {
		return err
	}
	printOK(out, fmt.Sprintf("Env template ready: %s", envPath))
	return nil
}
