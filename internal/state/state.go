package state

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/Paintersrp/easynote/internal/config"
	"github.com/Paintersrp/easynote/internal/constants"
	"github.com/Paintersrp/easynote/internal/storage"
	"github.com/Paintersrp/easynote/internal/store"
)

type State struct {
	Config  *config.Config
	Storage storage.Storage
	Store   *store.Store
	Logger  *slog.Logger
	Home    string
}

// NewState loads the config for home. Storage is opened later by Open, once
// command line flags have been bound.
func NewState(homeOverride string) (*State, error) {
	home := homeOverride
	if home == "" {
		h, err := GetHomeDir()
		if err != nil {
			return nil, err
		}
		home = h
	}

	cfg, err := LoadConfig(home)
	if err != nil {
		return nil, err
	}

	return &State{Config: cfg, Home: home, Logger: discardLogger()}, nil
}

// FromConfig opens the storage cfg names and builds the store on top of it,
// without consulting viper.
func FromConfig(cfg *config.Config, logger *slog.Logger) (*State, error) {
	if logger == nil {
		logger = discardLogger()
	}

	st, err := storage.Open(cfg.Storage.Driver, cfg.Storage.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s storage: %w", cfg.Storage.Driver, err)
	}

	return &State{
		Config:  cfg,
		Storage: st,
		Store: store.New(
			st,
			store.WithKey(cfg.Storage.Key),
			store.WithLogger(logger),
		),
		Logger: logger,
		Home:   cfg.Home(),
	}, nil
}

// Open applies flag and environment overrides, then opens the configured
// storage through FromConfig.
func (s *State) Open(v *viper.Viper, logger *slog.Logger) error {
	if err := s.Config.Bind(v); err != nil {
		return err
	}

	opened, err := FromConfig(s.Config, logger)
	if err != nil {
		return err
	}
	s.Storage, s.Store, s.Logger = opened.Storage, opened.Store, opened.Logger
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func GetHomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory. err: %s", err)
	}

	return home, nil
}

func LoadConfig(home string) (*config.Config, error) {
	viper.AddConfigPath(home + constants.ConfigDir)
	viper.SetConfigName(constants.ConfigFile)
	viper.SetConfigType(constants.ConfigFileType)
	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := config.EnsureConfigExists(home); err != nil {
		return nil, err
	}
	_ = viper.ReadInConfig()

	return config.Load(home)
}

func (s *State) SetLogger(logger *slog.Logger) {
	if logger == nil {
		return
	}
	s.Logger = logger
	if s.Store != nil {
		s.Store.SetLogger(logger)
	}
}

// Hydrate loads the persisted notes into the store. Malformed data is logged
// and the session continues with an empty collection.
func (s *State) Hydrate() error {
	err := s.Store.Hydrate()
	if errors.Is(err, store.ErrMalformed) {
		s.Logger.Warn("ignoring malformed notes", "err", err)
		return nil
	}
	return err
}

func (s *State) Close() error {
	if s == nil {
		return nil
	}

	var errs []error
	if s.Storage != nil {
		if err := s.Storage.Close(); err != nil && !errors.Is(err, storage.ErrClosed) {
			errs = append(errs, err)
		}
		s.Storage = nil
	}

	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs...)
}
