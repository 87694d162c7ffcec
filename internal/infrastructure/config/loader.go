package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
// It implements port.ConfigReader.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	configDir string
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a configuration manager reading from the XDG config directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerAt(configDir)
}

// NewManagerAt creates a configuration manager reading config.toml from configDir.
func NewManagerAt(configDir string) (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	// GRIDTERM_LAYOUT_HANDLE_GAP overrides layout.handle_gap, and so on.
	v.SetEnvPrefix("GRIDTERM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Shared with logging.NewFromEnv, used before the config is loaded.
	if err := v.BindEnv("logging.level", "GRIDTERM_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind GRIDTERM_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "GRIDTERM_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind GRIDTERM_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		configDir: configDir,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A default config file is written on first run.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := os.MkdirAll(m.configDir, dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory %s: %w", m.configDir, err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.decode()
	if err != nil {
		return err
	}
	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var configFileNotFoundError viper.ConfigFileNotFoundError
	if !errors.As(err, &configFileNotFoundError) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile = filepath.Join(m.configDir, configName)
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.configDir,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf(
			"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
			rereadErr,
		)
	}
	return nil
}

// decode unmarshals, completes, normalizes and validates the viper state.
func (m *Manager) decode() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	if err := ensureDatabasePath(config); err != nil {
		return nil, err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

func ensureDatabasePath(config *Config) error {
	if config.Database.Path != "" {
		config.Database.Path = os.ExpandEnv(config.Database.Path)
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.Database.Path = dbPath
	return nil
}

func normalizeConfig(config *Config) {
	config.General.Font = strings.TrimSpace(config.General.Font)
	config.Advanced.StartupCommand = strings.TrimSpace(config.Advanced.StartupCommand)
	config.Advanced.StartupDirectory = strings.TrimSpace(config.Advanced.StartupDirectory)
	config.Advanced.CursorShape = CursorShape(strings.ToLower(string(config.Advanced.CursorShape)))
	config.Advanced.CursorBlinkMode = CursorBlinkMode(strings.ToLower(string(config.Advanced.CursorBlinkMode)))
	if config.Advanced.CursorShape == "" {
		config.Advanced.CursorShape = CursorBlock
	}
	if config.Advanced.CursorBlinkMode == "" {
		config.Advanced.CursorBlinkMode = CursorBlinkSystem
	}

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.LogDir == "" {
		if dir, err := GetLogDir(); err == nil {
			config.Logging.LogDir = dir
		}
	}
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// GetString returns the value of section.key as a string.
func (m *Manager) GetString(section, key string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.viper.GetString(section + "." + key)
}

// GetBool returns the value of section.key as a bool.
func (m *Manager) GetBool(section, key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.viper.GetBool(section + "." + key)
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return filepath.Join(m.configDir, configName)
}

// createDefaultConfig writes the default configuration and its JSON schema.
func (m *Manager) createDefaultConfig() error {
	configFile := filepath.Join(m.configDir, configName)
	if err := os.MkdirAll(m.configDir, dirPerm); err != nil {
		return err
	}
	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return err
	}
	if err := GenerateSchemaFile(m.configDir); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Created default configuration file: %s\n", configFile)
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	// Note: Database.Path is set dynamically in Load(), no defaults needed

	m.setGeneralDefaults(defaults)
	m.setKeybindDefaults(defaults)
	m.setAdvancedDefaults(defaults)
	m.setLayoutDefaults(defaults)
	m.setLoggingDefaults(defaults)
}

func (m *Manager) setGeneralDefaults(defaults *Config) {
	m.viper.SetDefault("general.font", defaults.General.Font)
	m.viper.SetDefault("general.font_size", defaults.General.FontSize)
	m.viper.SetDefault("general.color_scheme", defaults.General.ColorScheme)
	m.viper.SetDefault("general.font_color", defaults.General.FontColor)
	m.viper.SetDefault("general.background_color", defaults.General.BackgroundColor)
	m.viper.SetDefault("general.background_transparent", defaults.General.BackgroundTransparent)
}

func (m *Manager) setKeybindDefaults(defaults *Config) {
	for _, b := range defaults.Keybind.Bindings() {
		m.viper.SetDefault("keybind."+b.Action, b.Hotkey)
	}
}

func (m *Manager) setAdvancedDefaults(defaults *Config) {
	m.viper.SetDefault("advanced.startup_command", defaults.Advanced.StartupCommand)
	m.viper.SetDefault("advanced.startup_directory", defaults.Advanced.StartupDirectory)
	m.viper.SetDefault("advanced.cursor_shape", string(defaults.Advanced.CursorShape))
	m.viper.SetDefault("advanced.cursor_blink_mode", string(defaults.Advanced.CursorBlinkMode))
	m.viper.SetDefault("advanced.ask_on_quit", defaults.Advanced.AskOnQuit)
	m.viper.SetDefault("advanced.scroll_on_key", defaults.Advanced.ScrollOnKey)
	m.viper.SetDefault("advanced.scroll_on_output", defaults.Advanced.ScrollOnOutput)
	m.viper.SetDefault("advanced.copy_on_selection", defaults.Advanced.CopyOnSelection)
}

func (m *Manager) setLayoutDefaults(defaults *Config) {
	m.viper.SetDefault("layout.handle_gap", defaults.Layout.HandleGap)
	m.viper.SetDefault("layout.resize_step_percent", defaults.Layout.ResizeStepPercent)
	m.viper.SetDefault("layout.min_pane_percent", defaults.Layout.MinPanePercent)
	m.viper.SetDefault("layout.thumbnail_height", defaults.Layout.ThumbnailHeight)
	m.viper.SetDefault("layout.restore_on_startup", defaults.Layout.RestoreOnStartup)
	m.viper.SetDefault("layout.autosave_interval_ms", defaults.Layout.AutosaveIntervalMs)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_files", defaults.Logging.MaxFiles)
}
