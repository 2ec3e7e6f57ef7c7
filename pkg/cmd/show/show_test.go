package show

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/Paintersrp/easynote/internal/config"
	"github.com/Paintersrp/easynote/internal/state"
)

func TestRunRendersNote(t *testing.T) {
	s, err := state.FromConfig(config.Default(t.TempDir()), nil)
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	n, err := s.Store.Create()
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	n.Content = "<p>hello <b>world</b></p>"
	if err := s.Store.Update(n); err != nil {
		t.Fatalf("Update: %v", err)
	}

	var out bytes.Buffer
	if err := run(&out, s, strconv.FormatInt(n.ID, 10), false, 80); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if !strings.Contains(out.String(), "world") {
		t.Fatalf("expected the body in the output, got %q", out.String())
	}

	out.Reset()
	if err := run(&out, s, strconv.FormatInt(n.ID, 10), true, 80); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if strings.TrimSpace(out.String()) != n.Content {
		t.Fatalf("expected raw html, got %q", out.String())
	}
}

func TestRunErrors(t *testing.T) {
	s, err := state.FromConfig(config.Default(t.TempDir()), nil)
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	if err := run(&bytes.Buffer{}, s, "abc", false, 80); err == nil {
		t.Fatalf("expected an error for a non-numeric id")
	}
	if err := run(&bytes.Buffer{}, s, "42", false, 80); err == nil {
		t.Fatalf("expected an error for a missing note")
	}
}
