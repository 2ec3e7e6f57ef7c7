package root

import (
	"log/slog"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Paintersrp/easynote/internal/config"
	"github.com/Paintersrp/easynote/internal/constants"
	"github.com/Paintersrp/easynote/internal/state"
	"github.com/Paintersrp/easynote/pkg/cmd/delete"
	"github.com/Paintersrp/easynote/pkg/cmd/initialize"
	"github.com/Paintersrp/easynote/pkg/cmd/list"
	"github.com/Paintersrp/easynote/pkg/cmd/new"
	"github.com/Paintersrp/easynote/pkg/cmd/notes"
	"github.com/Paintersrp/easynote/pkg/cmd/open"
	"github.com/Paintersrp/easynote/pkg/cmd/show"
	"github.com/Paintersrp/easynote/pkg/cmd/upload"
)

var verbose bool

func NewCmdRoot(s *state.State) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:     constants.AppName,
		Aliases: []string{"en"},
		Short:   "Write and organize notes from the terminal.",
		Long: heredoc.Doc(`
			Easy Note keeps a collection of rich-text notes with titles and tags.

			Run without a command to open the note browser and editor. Wide
			terminals show the list and editor side by side; narrow ones show
			one at a time.
		`),
		Example: heredoc.Doc(`
			easynote
			easynote new "Grocery List" home errands
			easynote list work --sort edited --desc
		`),
		Version:      constants.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}

			opts := &slog.HandlerOptions{
				Level: level,
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
			slog.SetDefault(logger)

			return s.Open(viper.GetViper(), logger)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return s.Close()
		},
		RunE: notes.NewCmdNotes(s).RunE,
	}

	flags := cmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	flags.Bool("debug", false, "Write TUI logs to debug.log in the config directory")
	flags.String("driver", "", "Storage driver to use (file or sqlite)")
	flags.String("data-dir", "", "Directory the notes are stored in")

	bindings := map[string]string{
		"debug":                  "debug",
		config.KeyStorageDriver:  "driver",
		config.KeyStorageDataDir: "data-dir",
	}
	for key, flag := range bindings {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return nil, err
		}
	}

	cmd.AddCommand(
		initialize.NewCmdInit(s),
		new.NewCmdNew(s),
		list.NewCmdList(s),
		show.NewCmdShow(s),
		delete.NewCmdDelete(s),
		open.NewCmdOpen(s),
		notes.NewCmdNotes(s),
		upload.NewCmdUpload(s),
	)

	return cmd, nil
}
