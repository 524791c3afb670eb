package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	DefaultProfileName  = "local"
	DefaultPollInterval = 10 * time.Second
)

// DefaultExamples are the preset prompts offered when a profile has none.
var DefaultExamples = []string{
	"the quick brown",
	"the smart student",
	"once upon a",
	"i would like to",
}

type Profile struct {
	BaseURL             string   `json:"base_url,omitempty"`
	PollIntervalSeconds int      `json:"poll_interval_seconds,omitempty"`
	TimeoutSeconds      int      `json:"timeout_seconds,omitempty"`
	Examples            []string `json:"examples,omitempty"`
}

type Config struct {
	Profiles       map[string]Profile `json:"profiles"`
	ActiveProfile  string             `json:"active_profile"`
	currentProfile *Profile
}

func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	if err := ensureConfigDir(configPath); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	config, err := loadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := config.setCurrentProfile(); err != nil {
		return nil, fmt.Errorf("failed to set current profile: %w", err)
	}

	return config, nil
}

// UseProfile makes name the current profile for this process without saving.
func (c *Config) UseProfile(name string) error {
	profile, exists := c.Profiles[name]
	if !exists {
		return fmt.Errorf("profile '%s' does not exist", name)
	}
	c.ActiveProfile = name
	c.currentProfile = &profile
	return nil
}

// BaseURL returns the resolved backend origin of the current profile.
func (c *Config) BaseURL() (string, error) {
	raw := ""
	if c.currentProfile != nil {
		raw = c.currentProfile.BaseURL
	}
	return ResolveBaseURL(raw)
}

func (c *Config) PollInterval() time.Duration {
	if c.currentProfile == nil || c.currentProfile.PollIntervalSeconds <= 0 {
		return DefaultPollInterval
	}
	return time.Duration(c.currentProfile.PollIntervalSeconds) * time.Second
}

// Timeout is the per-request HTTP timeout; zero means none.
func (c *Config) Timeout() time.Duration {
	if c.currentProfile == nil || c.currentProfile.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.currentProfile.TimeoutSeconds) * time.Second
}

func (c *Config) Examples() []string {
	if c.currentProfile == nil || len(c.currentProfile.Examples) == 0 {
		return DefaultExamples
	}
	return c.currentProfile.Examples
}

// Dir is the directory holding config.json and the log file.
func Dir() (string, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return "", err
	}
	return filepath.Dir(configPath), nil
}

var getConfigPath = func() (string, error) {
	var configDir string

	// Use NEXTWORD_HOME if set, otherwise use user's home directory
	if home := os.Getenv("NEXTWORD_HOME"); home != "" {
		configDir = home
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = homeDir
	}

	return filepath.Join(configDir, ".nextword", "config.json"), nil
}

func ensureConfigDir(configPath string) error {
	return os.MkdirAll(filepath.Dir(configPath), 0755)
}

func loadConfigFile(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func defaultConfig() *Config {
	return &Config{
		Profiles: map[string]Profile{
			DefaultProfileName: {},
		},
		ActiveProfile: DefaultProfileName,
	}
}

func createDefaultConfig(configPath string) (*Config, error) {
	config := defaultConfig()
	if err := saveConfig(config, configPath); err != nil {
		return nil, err
	}
	return config, nil
}

func saveConfig(config *Config, configPath string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}

func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	return saveConfig(c, configPath)
}

func (c *Config) setCurrentProfile() error {
	if len(c.Profiles) == 0 {
		return fmt.Errorf("no profiles defined")
	}

	profile, exists := c.Profiles[c.ActiveProfile]
	if !exists {
		// Fall back to any profile so a stale active_profile does not lock the user out
		for name, p := range c.Profiles {
			c.ActiveProfile = name
			profile = p
			break
		}
	}

	c.currentProfile = &profile
	return nil
}
