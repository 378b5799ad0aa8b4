package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	ierrors "github.com/Elun4705/Interactive/internal/errors"
)

// ChildRoleID is the role that switches the chat bar to the voice-only layout.
const ChildRoleID = 4

// EnvPrefix prefixes every environment variable read by ApplyEnv.
const EnvPrefix = "INTERACTIVE_"

// Config holds the application configuration. It is built once at startup
// and handed to the components that need it.
type Config struct {
	AppName        string `json:"app_name" yaml:"app_name"`
	AppDescription string `json:"app_description,omitempty" yaml:"app_description,omitempty"`
	AppURI         string `json:"app_uri,omitempty" yaml:"app_uri,omitempty"`

	Theme      string `json:"theme,omitempty" yaml:"theme,omitempty"`           // Default theme when none is persisted
	Appearance string `json:"appearance,omitempty" yaml:"appearance,omitempty"` // Extra appearance flavor (e.g. "compact")

	AgentName  string `json:"agent_name" yaml:"agent_name"`                       // Agent used when none is persisted
	StoreScope string `json:"store_scope,omitempty" yaml:"store_scope,omitempty"` // Scope applied to persisted client state
	DataDir    string `json:"data_dir,omitempty" yaml:"data_dir,omitempty"`       // Where client state and local conversations live

	ShowOverrideSwitches  string `json:"show_override_switches,omitempty" yaml:"show_override_switches,omitempty"` // Comma list, e.g. "tts,websearch"
	EnableFileUpload      bool   `json:"enable_file_upload" yaml:"enable_file_upload"`
	EnableVoiceInput      bool   `json:"enable_voice_input" yaml:"enable_voice_input"`
	ShowResetConversation bool   `json:"show_reset_conversation" yaml:"show_reset_conversation"`
	ClearOnSend           bool   `json:"clear_on_send" yaml:"clear_on_send"`
	BlurOnSend            bool   `json:"blur_on_send" yaml:"blur_on_send"`
	MaxInputLines         int    `json:"max_input_lines" yaml:"max_input_lines"`           // Input grows up to this many lines, then scrolls
	MaxConcurrentReads    int    `json:"max_concurrent_reads" yaml:"max_concurrent_reads"` // Bound on parallel file reads

	NotificationsEnabled bool     `json:"notifications_enabled,omitempty" yaml:"notifications_enabled,omitempty"`
	VoiceCommand         []string `json:"voice_command,omitempty" yaml:"voice_command,omitempty"` // Command whose stdout is the recorded audio
	RoleID               int      `json:"role_id,omitempty" yaml:"role_id,omitempty"`

	mu       sync.RWMutex
	filePath string
}

// Default returns a config populated with the built-in defaults.
func Default() *Config {
	return &Config{
		AppName:            "Interactive",
		AppDescription:     "A terminal client for conversational agents.",
		AgentName:          "Assistant",
		EnableFileUpload:   true,
		ClearOnSend:        true,
		BlurOnSend:         true,
		MaxInputLines:      12,
		MaxConcurrentReads: 4,
		DataDir:            defaultDataDir(),
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".interactive"
	}
	return filepath.Join(home, ".interactive")
}

// DefaultPath returns the path of the config file when none is given.
func DefaultPath() string {
	return filepath.Join(defaultDataDir(), "config.json")
}

// Load reads the config at path on top of the defaults. A missing file is
// not an error. Files ending in .yaml or .yml are parsed as YAML, anything
// else as JSON.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := Default()
	cfg.filePath = path

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, ierrors.ConfigLoadFailed(path, err)
	}

	if isYAML(path) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, ierrors.ConfigLoadFailed(path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// LoadEnvFiles loads dotenv files into the process environment. Missing
// files are skipped; existing variables are not overwritten.
func LoadEnvFiles(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return ierrors.ConfigLoadFailed(f, err)
		}
	}
	return nil
}

// ApplyEnv overlays INTERACTIVE_* variables from lookup onto the config.
// Pass os.LookupEnv in production.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	strs := map[string]*string{
		"APP_NAME":               &c.AppName,
		"APP_DESCRIPTION":        &c.AppDescription,
		"APP_URI":                &c.AppURI,
		"THEME":                  &c.Theme,
		"APPEARANCE":             &c.Appearance,
		"AGENT":                  &c.AgentName,
		"STORE_SCOPE":            &c.StoreScope,
		"DATA_DIR":               &c.DataDir,
		"SHOW_OVERRIDE_SWITCHES": &c.ShowOverrideSwitches,
	}
	for name, dst := range strs {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = v
		}
	}

	bools := map[string]*bool{
		"ENABLE_FILE_UPLOAD":      &c.EnableFileUpload,
		"ENABLE_VOICE_INPUT":      &c.EnableVoiceInput,
		"SHOW_RESET_CONVERSATION": &c.ShowResetConversation,
		"CLEAR_ON_SEND":           &c.ClearOnSend,
		"BLUR_ON_SEND":            &c.BlurOnSend,
		"NOTIFICATIONS":           &c.NotificationsEnabled,
	}
	for name, dst := range bools {
		v, ok := lookup(EnvPrefix + name)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return ierrors.ConfigInvalid(fmt.Sprintf("%s%s: %q is not a boolean", EnvPrefix, name, v))
		}
		*dst = b
	}

	ints := map[string]*int{
		"MAX_INPUT_LINES":      &c.MaxInputLines,
		"MAX_CONCURRENT_READS": &c.MaxConcurrentReads,
		"ROLE_ID":              &c.RoleID,
	}
	for name, dst := range ints {
		v, ok := lookup(EnvPrefix + name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return ierrors.ConfigInvalid(fmt.Sprintf("%s%s: %q is not an integer", EnvPrefix, name, v))
		}
		*dst = n
	}

	if v, ok := lookup(EnvPrefix + "VOICE_COMMAND"); ok {
		c.VoiceCommand = strings.Fields(v)
	}
	return nil
}

// Validate checks that the config is internally consistent.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if strings.TrimSpace(c.AgentName) == "" {
		return ierrors.ConfigInvalid("agent name must not be empty")
	}
	if c.DataDir == "" {
		return ierrors.ConfigInvalid("data dir must not be empty")
	}
	if c.MaxInputLines < 1 {
		return ierrors.ConfigInvalid(fmt.Sprintf("max input lines must be at least 1, got %d", c.MaxInputLines))
	}
	if c.MaxConcurrentReads < 1 {
		return ierrors.ConfigInvalid(fmt.Sprintf("max concurrent reads must be at least 1, got %d", c.MaxConcurrentReads))
	}
	if c.RoleID < 0 {
		return ierrors.ConfigInvalid(fmt.Sprintf("role id must not be negative, got %d", c.RoleID))
	}
	return nil
}

// Save writes the config back to its file.
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.filePath == "" {
		return ierrors.ConfigSaveFailed("", fmt.Errorf("no file path set"))
	}
	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return ierrors.ConfigSaveFailed(c.filePath, err)
	}

	var data []byte
	var err error
	if isYAML(c.filePath) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return ierrors.ConfigSaveFailed(c.filePath, err)
	}

	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		return ierrors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// FilePath returns the file the config was loaded from.
func (c *Config) FilePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// SetFilePath changes where Save writes.
func (c *Config) SetFilePath(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filePath = path
}

// GetTheme returns the configured default theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the default theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// GetAgentName returns the default agent name
func (c *Config) GetAgentName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.AgentName
}

// IsChildMode reports whether the voice-only layout should be used.
func (c *Config) IsChildMode() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.RoleID == ChildRoleID
}

// GetNotificationsEnabled returns whether desktop notifications are enabled
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

// SetNotificationsEnabled sets whether desktop notifications are enabled
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotificationsEnabled = enabled
}

// StateDir is where persisted client state (override flags, identifiers) lives.
func (c *Config) StateDir() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return filepath.Join(c.DataDir, "state")
}

// ConversationsDir is where the local conversation store lives.
func (c *Config) ConversationsDir() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return filepath.Join(c.DataDir, "conversations")
}
