package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Elun4705/Interactive/internal/app"
	"github.com/Elun4705/Interactive/internal/backend"
	"github.com/Elun4705/Interactive/internal/config"
	"github.com/Elun4705/Interactive/internal/logger"
	"github.com/Elun4705/Interactive/internal/store"
	"github.com/Elun4705/Interactive/internal/voice"
)

// loadConfig layers the config file, .env files and INTERACTIVE_* variables
// over the defaults.
func loadConfig() (*config.Config, error) {
	return loadConfigFrom(configPath, os.LookupEnv)
}

func loadConfigFrom(path string, lookup func(string) (string, bool)) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := config.LoadEnvFiles(".env", filepath.Join(cfg.DataDir, ".env")); err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(lookup); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger.WithComponent("cmd").Debug("config loaded", "path", cfg.FilePath(), "dataDir", cfg.DataDir)
	return cfg, nil
}

// openServices opens the on-disk state and conversation stores. The
// returned func closes them.
func openServices(cfg *config.Config) (app.Services, func(), error) {
	state, err := store.OpenPebble(cfg.StateDir())
	if err != nil {
		return app.Services{}, nil, fmt.Errorf("error opening state store: %w", err)
	}
	local, err := backend.OpenLocal(cfg.ConversationsDir())
	if err != nil {
		state.Close()
		return app.Services{}, nil, fmt.Errorf("error opening conversation store: %w", err)
	}

	svc := app.Services{
		Store:  state,
		Client: backend.NewClient(local),
	}
	// A nil *voice.Command must not become a non-nil Recorder
	if rec := voice.NewCommand(cfg.VoiceCommand); rec != nil {
		svc.Recorder = rec
	}

	closeAll := func() {
		if err := local.Close(); err != nil {
			logger.Warn("cmd: failed to close conversation store: %v", err)
		}
		if err := state.Close(); err != nil {
			logger.Warn("cmd: failed to close state store: %v", err)
		}
	}
	return svc, closeAll, nil
}
