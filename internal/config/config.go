package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Paintersrp/easynote/internal/constants"
	"github.com/Paintersrp/easynote/internal/storage"
)

const (
	KeyStorageDriver    = "storage.driver"
	KeyStorageDataDir   = "storage.data_dir"
	KeyStorageKey       = "storage.key"
	KeyLayoutBreakpoint = "layout.breakpoint"
	KeyLayoutSplit      = "layout.split"
	KeyEditorTagMode    = "editor.tag_mode"
	KeyEditorPalette    = "editor.palette"
	KeyListDateFormat   = "list.date_format"
	KeyUploadBucket     = "upload.bucket"
	KeyUploadRegion     = "upload.region"
	KeyUploadPrefix     = "upload.prefix"
)

const (
	TagModeSingle = "single"
	TagModeMulti  = "multi"
)

type StorageConfig struct {
	Driver  string `yaml:"driver"   json:"driver"`
	DataDir string `yaml:"data_dir" json:"data_dir"`
	Key     string `yaml:"key"      json:"key"`
}

type LayoutConfig struct {
	Breakpoint int `yaml:"breakpoint" json:"breakpoint"`
	Split      int `yaml:"split"      json:"split"`
}

type EditorConfig struct {
	TagMode string   `yaml:"tag_mode" json:"tag_mode"`
	Palette []string `yaml:"palette"  json:"palette"`
}

type ListConfig struct {
	DateFormat string `yaml:"date_format" json:"date_format"`
}

type UploadConfig struct {
	Bucket string `yaml:"bucket" json:"bucket"`
	Region string `yaml:"region" json:"region"`
	Prefix string `yaml:"prefix" json:"prefix"`
}

type Config struct {
	Storage StorageConfig `yaml:"storage" json:"storage"`
	Layout  LayoutConfig  `yaml:"layout"  json:"layout"`
	Editor  EditorConfig  `yaml:"editor"  json:"editor"`
	List    ListConfig    `yaml:"list"    json:"list"`
	Upload  UploadConfig  `yaml:"upload"  json:"upload"`

	home string `yaml:"-"`
}

// Default returns a config with every default applied for home.
func Default(home string) *Config {
	cfg := &Config{home: home}
	cfg.ensureDefaults()
	return cfg
}

func Load(home string) (*Config, error) {
	data, err := os.ReadFile(GetConfigPath(home))
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if len(strings.TrimSpace(string(data))) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}
	cfg.home = home
	cfg.ensureDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) ensureDefaults() {
	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(cfg.Storage.Driver))
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = storage.DriverFile
	}
	if strings.TrimSpace(cfg.Storage.DataDir) == "" {
		cfg.Storage.DataDir = filepath.Join(cfg.home, constants.ConfigDir, constants.DataDir)
	}
	if cfg.Storage.Key == "" {
		cfg.Storage.Key = constants.StorageKey
	}
	if cfg.Layout.Breakpoint == 0 {
		cfg.Layout.Breakpoint = constants.DefaultBreakpoint
	}
	if cfg.Layout.Split == 0 {
		cfg.Layout.Split = constants.DefaultSplit
	}
	cfg.Editor.TagMode = strings.ToLower(strings.TrimSpace(cfg.Editor.TagMode))
	if cfg.Editor.TagMode == "" {
		cfg.Editor.TagMode = TagModeMulti
	}
	if cfg.List.DateFormat == "" {
		cfg.List.DateFormat = constants.DefaultDateFormat
	}
}

func (cfg *Config) Validate() error {
	var errs []error
	if err := ValidateDriver(cfg.Storage.Driver); err != nil {
		errs = append(errs, err)
	}
	if cfg.Layout.Breakpoint < 1 {
		errs = append(errs, fmt.Errorf("invalid layout.breakpoint %d: must be positive", cfg.Layout.Breakpoint))
	}
	if cfg.Layout.Split < constants.MinSplit || cfg.Layout.Split > constants.MaxSplit {
		errs = append(errs, fmt.Errorf(
			"invalid layout.split %d: must be between %d and %d",
			cfg.Layout.Split,
			constants.MinSplit,
			constants.MaxSplit,
		))
	}
	if cfg.Editor.TagMode != TagModeSingle && cfg.Editor.TagMode != TagModeMulti {
		errs = append(errs, fmt.Errorf(
			"invalid editor.tag_mode %q: choose '%s' or '%s'",
			cfg.Editor.TagMode,
			TagModeSingle,
			TagModeMulti,
		))
	}
	return errors.Join(errs...)
}

func ValidateDriver(driver string) error {
	if storage.ValidDrivers[driver] {
		return nil
	}
	return fmt.Errorf(
		"invalid storage driver: %q. Please choose from '%s' or '%s'.",
		driver,
		storage.DriverFile,
		storage.DriverSQLite,
	)
}

// Bind registers the file values as viper defaults, then reads every key back
// so flags and EASYNOTE_ environment variables take precedence.
func (cfg *Config) Bind(v *viper.Viper) error {
	syncWithViper(cfg, v)

	cfg.Storage.Driver = strings.ToLower(v.GetString(KeyStorageDriver))
	cfg.Storage.DataDir = v.GetString(KeyStorageDataDir)
	cfg.Storage.Key = v.GetString(KeyStorageKey)
	cfg.Layout.Breakpoint = v.GetInt(KeyLayoutBreakpoint)
	cfg.Layout.Split = v.GetInt(KeyLayoutSplit)
	cfg.Editor.TagMode = strings.ToLower(v.GetString(KeyEditorTagMode))
	cfg.Editor.Palette = v.GetStringSlice(KeyEditorPalette)
	cfg.List.DateFormat = v.GetString(KeyListDateFormat)
	cfg.Upload.Bucket = v.GetString(KeyUploadBucket)
	cfg.Upload.Region = v.GetString(KeyUploadRegion)
	cfg.Upload.Prefix = v.GetString(KeyUploadPrefix)

	cfg.ensureDefaults()
	return cfg.Validate()
}

func syncWithViper(cfg *Config, v *viper.Viper) {
	v.SetDefault(KeyStorageDriver, cfg.Storage.Driver)
	v.SetDefault(KeyStorageDataDir, cfg.Storage.DataDir)
	v.SetDefault(KeyStorageKey, cfg.Storage.Key)
	v.SetDefault(KeyLayoutBreakpoint, cfg.Layout.Breakpoint)
	v.SetDefault(KeyLayoutSplit, cfg.Layout.Split)
	v.SetDefault(KeyEditorTagMode, cfg.Editor.TagMode)
	if cfg.Editor.Palette == nil {
		v.SetDefault(KeyEditorPalette, []string{})
	} else {
		v.SetDefault(KeyEditorPalette, append([]string(nil), cfg.Editor.Palette...))
	}
	v.SetDefault(KeyListDateFormat, cfg.List.DateFormat)
	v.SetDefault(KeyUploadBucket, cfg.Upload.Bucket)
	v.SetDefault(KeyUploadRegion, cfg.Upload.Region)
	v.SetDefault(KeyUploadPrefix, cfg.Upload.Prefix)
}

// RequireUpload reports the upload settings that must be present before an
// upload can run.
func (cfg *Config) RequireUpload() error {
	required := []struct{ name, value string }{
		{KeyUploadBucket, cfg.Upload.Bucket},
		{KeyUploadRegion, cfg.Upload.Region},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &ConfigInitError{
				msg: fmt.Sprintf("required config variable %q is not set", r.name),
			}
		}
	}
	return nil
}

func (cfg *Config) Home() string { return cfg.home }

func (cfg *Config) GetConfigPath() string {
	return GetConfigPath(cfg.home)
}

func (cfg *Config) Save() error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	configPath := cfg.GetConfigPath()
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}
