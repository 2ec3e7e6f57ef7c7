package delete

import (
	"fmt"
	"io"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/erikgeiser/promptkit/confirmation"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/easynote/internal/constants"
	"github.com/Paintersrp/easynote/internal/state"
	"github.com/Paintersrp/easynote/pkg/cmd/show"
)

// confirm asks before deleting; tests replace it.
var confirm = func(message string) (bool, error) {
	return confirmation.New(message, confirmation.No).RunPrompt()
}

func NewCmdDelete(s *state.State) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Permanently delete a note.",
		Long: heredoc.Doc(`
			Deletes the note with the given id after asking for confirmation.
			Pass --yes to skip the prompt.
		`),
		Example: "easynote delete 1712345678901 --yes",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), s, args[0], yes)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Delete without asking")
	return cmd
}

func run(out io.Writer, s *state.State, arg string, yes bool) error {
	id, err := show.ParseID(arg)
	if err != nil {
		return err
	}

	if err := s.Hydrate(); err != nil {
		return err
	}

	n, ok := s.Store.Find(id)
	if !ok {
		return fmt.Errorf("note %d not found", id)
	}

	if !yes {
		ok, err := confirm(constants.DeleteConfirmation)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, "Cancelled")
			return nil
		}
	}

	if err := s.Store.Delete(id); err != nil {
		return err
	}

	fmt.Fprintf(out, "Deleted note %d: %s\n", n.ID, n.Title)
	return nil
}
