/*
Package config manages the TOML config for WordCheck.

Values come from, in increasing priority: built-in defaults, the TOML file,
an optional .env file and finally the process environment.
*/
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/bastiangx/wordcheck/internal/utils"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Environment variables that override file values.
const (
	EnvDict   = "WORDCHECK_DICT"
	EnvConfig = "WORDCHECK_CONFIG"
	EnvLimit  = "WORDCHECK_LIMIT"
)

// Config holds the entire config structure
type Config struct {
	Dict    DictConfig    `toml:"dict"`
	Suggest SuggestConfig `toml:"suggest"`
	Server  ServerConfig  `toml:"server"`
	Allow   AllowConfig   `toml:"allow"`
}

// DictConfig points at the word list.
type DictConfig struct {
	Path string `toml:"path"`
}

// SuggestConfig controls suggestion output.
type SuggestConfig struct {
	Limit int `toml:"limit"`
}

// ServerConfig bounds what the IPC and MCP front-ends accept.
// AllowRefreshPath lets IPC clients refresh from a path of their choosing,
// otherwise only the configured source can be reloaded.
type ServerConfig struct {
	MaxTextBytes     int  `toml:"max_text_bytes"`
	MaxWordLen       int  `toml:"max_word_len"`
	MaxLimit         int  `toml:"max_limit"`
	AllowRefreshPath bool `toml:"allow_refresh_path"`
}

// AllowConfig seeds the session allowlist.
type AllowConfig struct {
	Words    []string `toml:"words"`
	Prefixes []string `toml:"prefixes"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Dict: DictConfig{
			Path: "words.txt",
		},
		Suggest: SuggestConfig{
			Limit: 5,
		},
		Server: ServerConfig{
			MaxTextBytes: 1 << 20,
			MaxWordLen:   64,
			MaxLimit:     100,
		},
		Allow: AllowConfig{
			Words:    []string{},
			Prefixes: []string{},
		},
	}
}

// GetConfigDir returns ~/.config/wordcheck when writable, else the executable dir.
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err == nil {
		primaryPath := filepath.Join(homeDir, ".config", "wordcheck")
		if result := utils.CheckDirStatus(primaryPath); result.Writable {
			return primaryPath, nil
		}
	} else {
		log.Errorf("Failed to get home directory: %v", err)
	}
	return utils.GetExecutableDir()
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from the -config flag
// 2. Default path: [UserConfigDir]/wordcheck/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			cfg, err := LoadConfig(customConfigPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return cfg, customConfigPath, nil
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}

	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}
	cfg, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at %s: %v. Using built-in defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return cfg, defaultPath, nil
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)
	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		cfg := DefaultConfig()
		if err := SaveConfig(cfg, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return cfg, nil
	}

	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file. A file that does not parse as a whole
// is salvaged section by section.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()
	if err := utils.LoadTOMLFile(configPath, cfg); err != nil {
		return tryPartialParse(configPath)
	}
	cfg.normalize()
	return cfg, nil
}

// tryPartialParse keeps every recognisable value and defaults the rest.
func tryPartialParse(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return cfg, nil
	}

	if section, ok := utils.ExtractSection(tempConfig, "dict"); ok {
		if val, ok := utils.ExtractString(section, "path"); ok {
			cfg.Dict.Path = val
		}
	}
	if section, ok := utils.ExtractSection(tempConfig, "suggest"); ok {
		if val, ok := utils.ExtractInt64(section, "limit"); ok {
			cfg.Suggest.Limit = val
		}
	}
	if section, ok := utils.ExtractSection(tempConfig, "server"); ok {
		if val, ok := utils.ExtractInt64(section, "max_text_bytes"); ok {
			cfg.Server.MaxTextBytes = val
		}
		if val, ok := utils.ExtractInt64(section, "max_word_len"); ok {
			cfg.Server.MaxWordLen = val
		}
		if val, ok := utils.ExtractInt64(section, "max_limit"); ok {
			cfg.Server.MaxLimit = val
		}
		if val, ok := utils.ExtractBool(section, "allow_refresh_path"); ok {
			cfg.Server.AllowRefreshPath = val
		}
	}
	if section, ok := utils.ExtractSection(tempConfig, "allow"); ok {
		if val, ok := utils.ExtractStringSlice(section, "words"); ok {
			cfg.Allow.Words = val
		}
		if val, ok := utils.ExtractStringSlice(section, "prefixes"); ok {
			cfg.Allow.Prefixes = val
		}
	}
	cfg.normalize()
	return cfg, nil
}

// normalize replaces nonsensical values with defaults.
func (c *Config) normalize() {
	def := DefaultConfig()
	if c.Suggest.Limit <= 0 {
		log.Warnf("Invalid suggest.limit %d, using %d", c.Suggest.Limit, def.Suggest.Limit)
		c.Suggest.Limit = def.Suggest.Limit
	}
	if c.Server.MaxTextBytes <= 0 {
		c.Server.MaxTextBytes = def.Server.MaxTextBytes
	}
	if c.Server.MaxWordLen <= 0 {
		c.Server.MaxWordLen = def.Server.MaxWordLen
	}
	if c.Server.MaxLimit <= 0 {
		c.Server.MaxLimit = def.Server.MaxLimit
	}
}

// ApplyEnv overlays values from envFile (if it exists) and then from the
// process environment, which wins.
func (c *Config) ApplyEnv(envFile string) {
	vars := map[string]string{}
	if envFile != "" && utils.FileExists(envFile) {
		fileVars, err := godotenv.Read(envFile)
		if err != nil {
			log.Warnf("Failed to read env file %s: %v", envFile, err)
		} else {
			vars = fileVars
		}
	}
	for _, key := range []string{EnvDict, EnvLimit} {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			vars[key] = val
		}
	}

	if val := vars[EnvDict]; val != "" {
		c.Dict.Path = val
	}
	if val := vars[EnvLimit]; val != "" {
		limit, err := strconv.Atoi(val)
		if err != nil || limit <= 0 {
			log.Warnf("Ignoring invalid %s=%q", EnvLimit, val)
		} else {
			c.Suggest.Limit = limit
		}
	}
}

// SaveConfig saves into a TOML file
func SaveConfig(cfg *Config, configPath string) error {
	return utils.SaveTOMLFile(cfg, configPath)
}
