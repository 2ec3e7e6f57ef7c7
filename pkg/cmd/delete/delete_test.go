package delete

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/Paintersrp/easynote/internal/config"
	"github.com/Paintersrp/easynote/internal/state"
)

func stateWithNote(t *testing.T) (*state.State, string) {
	t.Helper()
	s, err := state.FromConfig(config.Default(t.TempDir()), nil)
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	n, err := s.Store.Create()
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return s, strconv.FormatInt(n.ID, 10)
}

func stubConfirm(t *testing.T, answer bool) *int {
	t.Helper()
	calls := 0
	orig := confirm
	confirm = func(string) (bool, error) {
		calls++
		return answer, nil
	}
	t.Cleanup(func() { confirm = orig })
	return &calls
}

func TestRunDeletesAfterConfirmation(t *testing.T) {
	s, id := stateWithNote(t)
	calls := stubConfirm(t, true)

	var out bytes.Buffer
	if err := run(&out, s, id, false); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if *calls != 1 {
		t.Fatalf("expected one prompt, got %d", *calls)
	}
	if s.Store.Len() != 0 {
		t.Fatalf("expected the note to be deleted")
	}
	if !strings.HasPrefix(out.String(), "Deleted note") {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestRunCancelled(t *testing.T) {
	s, id := stateWithNote(t)
	stubConfirm(t, false)

	var out bytes.Buffer
	if err := run(&out, s, id, false); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if s.Store.Len() != 1 {
		t.Fatalf("expected the note to be kept")
	}
}

func TestRunYesSkipsPrompt(t *testing.T) {
	s, id := stateWithNote(t)
	calls := stubConfirm(t, false)

	if err := run(&bytes.Buffer{}, s, id, true); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if *calls != 0 || s.Store.Len() != 0 {
		t.Fatalf("expected a silent delete, prompts=%d len=%d", *calls, s.Store.Len())
	}
}

func TestRunUnknownID(t *testing.T) {
	s, _ := stateWithNote(t)
	stubConfirm(t, true)
	if err := run(&bytes.Buffer{}, s, "1", false); err == nil {
		t.Fatalf("expected an error for an unknown id")
	}
}
