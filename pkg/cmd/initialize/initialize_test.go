package initialize

import (
	"bytes"
	"testing"

	"github.com/Paintersrp/easynote/internal/config"
	"github.com/Paintersrp/easynote/internal/state"
	"github.com/Paintersrp/easynote/internal/storage"
)

func TestRunSavesConfig(t *testing.T) {
	home := t.TempDir()
	cfg := config.Default(home)
	cfg.Storage.Driver = storage.DriverSQLite

	s, err := state.FromConfig(cfg, nil)
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	if err := run(&bytes.Buffer{}, s, 120); err != nil {
		t.Fatalf("run returned error: %v", err)
	}

	loaded, err := config.Load(home)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Storage.Driver != storage.DriverSQLite || loaded.Layout.Breakpoint != 120 {
		t.Fatalf("unexpected saved config %+v", loaded)
	}
}

func TestRunRejectsInvalidBreakpoint(t *testing.T) {
	s, err := state.FromConfig(config.Default(t.TempDir()), nil)
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	if err := run(&bytes.Buffer{}, s, -5); err == nil {
		t.Fatalf("expected a validation error")
	}
}
