package cmd

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/Elun4705/Interactive/internal/app"
	"github.com/Elun4705/Interactive/internal/logger"
)

var (
	configPath            string
	debugMode             bool
	quietMode             bool
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Terminal client for conversational agents",
	Long: `Interactive is a terminal chat client for conversational agents.
Conversations are kept in a local store; messages can carry file uploads,
pasted images and recorded voice clips.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (JSON, or YAML for .yaml/.yml)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
}

func initConfig() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	// Set version dynamically
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("interactive %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("interactive %s\n", version)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	// Ensure logger is closed on exit
	defer logger.Close()

	svc, closeServices, err := openServices(cfg)
	if err != nil {
		return err
	}
	defer closeServices()

	// Create and run the app
	m := app.New(cfg, version, svc)
	defer m.Close()
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
