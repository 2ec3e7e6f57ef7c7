package notes

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/MakeNowJust/heredoc/v2"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Paintersrp/easynote/internal/constants"
	"github.com/Paintersrp/easynote/internal/state"
	"github.com/Paintersrp/easynote/internal/tui/app"
)

func NewCmdNotes(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notes",
		Aliases: []string{"n", "tui"},
		Short:   "Browse and edit notes in the terminal UI.",
		Long: heredoc.Doc(`
			Opens the note list and editor. Press ctrl+n to create a note,
			enter to open the highlighted note, d to delete it, and ctrl+c to quit.
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(s, 0)
		},
	}

	return cmd
}

// Run starts the TUI, selecting the note with id initial when it is non-zero.
func Run(s *state.State, initial int64) error {
	logger, closer, err := tuiLogger(s)
	if err != nil {
		return err
	}
	defer closer.Close()
	s.SetLogger(logger)

	opts := app.OptionsFromConfig(s.Config)
	opts.Initial = initial
	return app.Run(s.Store, logger, opts)
}

// tuiLogger keeps log output off the screen: it goes to a file with --debug
// and is discarded otherwise.
func tuiLogger(s *state.State) (*slog.Logger, io.Closer, error) {
	if !viper.GetBool("debug") {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), io.NopCloser(nil), nil
	}

	path := filepath.Join(s.Home, constants.ConfigDir, "debug.log")
	f, err := tea.LogToFile(path, constants.AppName)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open debug log: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, f, nil
}
