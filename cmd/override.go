package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Elun4705/Interactive/internal/overrides"
	"github.com/Elun4705/Interactive/internal/store"
)

var overrideCmd = &cobra.Command{
	Use:   "override [feature] [default|allow|never]",
	Short: "Show or set feature overrides",
	Long: `Without arguments, lists every feature override and its state.
With a feature, shows that override; with a feature and a state, stores it.
"default" removes the override so the agent decides.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runOverride,
}

func init() {
	rootCmd.AddCommand(overrideCmd)
}

func runOverride(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	svc, closeServices, err := openServices(cfg)
	if err != nil {
		return err
	}
	defer closeServices()

	return override(cmd.OutOrStdout(), svc.Store, cfg.StoreScope, args)
}

// override lists or updates the persisted overrides named by args
func override(out io.Writer, st store.Store, scope string, args []string) error {
	features := overrides.Known
	if len(args) > 0 {
		f, ok := overrides.Lookup(args[0])
		if !ok {
			return fmt.Errorf("unknown feature %q (known: %s)", args[0], knownFeatureNames())
		}
		features = []overrides.Feature{f}
	}

	if len(args) == 2 {
		state, err := overrides.ParseState(args[1])
		if err != nil {
			return err
		}
		if err := overrides.Save(st, scope, features[0].Name, state); err != nil {
			return fmt.Errorf("error saving override: %w", err)
		}
	}

	for _, f := range features {
		state, err := overrides.Load(st, scope, f.Name)
		if err != nil {
			return fmt.Errorf("error reading override %s: %w", f.Name, err)
		}
		fmt.Fprintf(out, "%-20s %-8s %s\n", f.Name, state, f.Label)
	}
	return nil
}

func knownFeatureNames() string {
	names := make([]string, len(overrides.Known))
	for i, f := range overrides.Known {
		names[i] = f.Name
	}
	return strings.Join(names, ", ")
}
