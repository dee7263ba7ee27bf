package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Data     DataConfig     `mapstructure:"data"`
	Export   ExportConfig   `mapstructure:"export"`
	Editor   EditorConfig   `mapstructure:"editor"`
	Log      LogConfig      `mapstructure:"log"`
	UI       UIConfig       `mapstructure:"ui"`
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// DataConfig points at the bot_data.json used to seed an empty database.
type DataConfig struct {
	BotDataPath string `mapstructure:"bot_data_path"`
}

type ExportConfig struct {
	Dir string `mapstructure:"dir"`
}

// EditorConfig controls how the graph editor module is bootstrapped.
type EditorConfig struct {
	CanvasID    string        `mapstructure:"canvas_id"`
	LoadTimeout time.Duration `mapstructure:"load_timeout"`
}

type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Title string `mapstructure:"title"`
}

// Path returns the config file location, honouring BOTEDITOR_CONFIG.
func Path() string {
	if p := os.Getenv("BOTEDITOR_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "boteditor", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix BOTEDITOR_.
func Load() (Config, error) {
	v := viper.New()

	share := filepath.Join(os.Getenv("HOME"), ".local", "share", "boteditor")
	v.SetDefault("database.path", filepath.Join(share, "boteditor.db"))
	v.SetDefault("data.bot_data_path", "bot_data.json")
	v.SetDefault("export.dir", ".")
	v.SetDefault("editor.canvas_id", "editor_canvas")
	v.SetDefault("editor.load_timeout", "30s")
	v.SetDefault("log.path", filepath.Join(share, "boteditor.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("ui.title", "Bot Admin")

	v.SetConfigType("toml")
	v.SetConfigFile(Path())

	v.SetEnvPrefix("BOTEDITOR")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Editor.LoadTimeout <= 0 {
		return Config{}, fmt.Errorf("editor.load_timeout must be positive, got %s", c.Editor.LoadTimeout)
	}
	return c, nil
}

func isNotFound(err error) bool {
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		return true
	}
	return os.IsNotExist(err)
}
