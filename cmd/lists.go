package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vocabdrill/vocabdrill/internal/config"
	"github.com/vocabdrill/vocabdrill/internal/wordlist"
)

var listsCmd = &cobra.Command{
	Use:   "lists",
	Short: "Show available word lists",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		registry, err := buildRegistry(cfg)
		if err != nil {
			return fmt.Errorf("load word lists: %w", err)
		}
		for _, name := range registry.Names() {
			ds, err := registry.Resolve(name)
			if err != nil {
				return err
			}
			marker := " "
			if name == registry.DefaultName() {
				marker = "*"
			}
			fmt.Printf("%s %-24s %3d words\n", marker, name, len(ds.Questions))
		}
		return nil
	},
}

// buildRegistry assembles the built-in lists plus any user lists from
// the configured directory, then applies the configured default.
func buildRegistry(cfg *config.Config) (*wordlist.Registry, error) {
	registry, err := wordlist.BuiltinRegistry()
	if err != nil {
		return nil, err
	}
	if cfg.Lists.Dir != "" {
		if err := wordlist.LoadDir(registry, cfg.Lists.Dir); err != nil {
			return nil, err
		}
	}
	if cfg.Lists.Default != "" {
		registry.SetDefault(cfg.Lists.Default)
	}
	return registry, nil
}
