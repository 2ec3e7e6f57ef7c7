package open

import (
	"errors"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/easynote/internal/fzf"
	"github.com/Paintersrp/easynote/internal/state"
	"github.com/Paintersrp/easynote/pkg/cmd/notes"
)

func NewCmdOpen(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "open [query]",
		Aliases: []string{"o"},
		Short:   "Pick a note with a fuzzy finder and open it.",
		Long: heredoc.Doc(`
			Lists every note in a fuzzy finder with a rendered preview. The
			chosen note opens in the editor. An optional query pre-fills the
			finder.
		`),
		Example: "easynote open groc",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) > 0 {
				query = args[0]
			}

			if err := s.Hydrate(); err != nil {
				return err
			}

			finder := fzf.NewFuzzyFinder(s.Store.Notes(), "Select a note to open.")
			n, err := finder.Run(query)
			if errors.Is(err, fzf.ErrNoSelection) {
				fmt.Fprintln(cmd.OutOrStdout(), "No note selected")
				return nil
			}
			if err != nil {
				return err
			}

			return notes.Run(s, n.ID)
		},
	}

	return cmd
}
