package new

import (
	"fmt"
	"io"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/easynote/internal/note"
	"github.com/Paintersrp/easynote/internal/state"
	"github.com/Paintersrp/easynote/utils"
)

// readClipboard is swapped out in tests.
var readClipboard = clipboard.ReadAll

func NewCmdNew(s *state.State) *cobra.Command {
	var paste bool

	cmd := &cobra.Command{
		Use:     "new [title] [tags...]",
		Aliases: []string{"add"},
		Short:   "Create a new note.",
		Long: heredoc.Doc(`
			Creates a note with an optional title and up to three tags.
			With --paste the clipboard is read as markdown and becomes the body.
		`),
		Example: heredoc.Doc(`
			easynote new
			easynote new "Grocery List" home errands
			easynote new standup work --paste
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), s, args, paste)
		},
	}

	cmd.Flags().BoolVarP(&paste, "paste", "p", false, "Use the clipboard contents as the note body")
	return cmd
}

func run(out io.Writer, s *state.State, args []string, paste bool) error {
	var tags []string
	if len(args) > 1 {
		valid, err := utils.ValidateTags(args[1:])
		if err != nil {
			return err
		}
		tags = note.CapTags(valid)
	}

	var content string
	if paste {
		text, err := readClipboard()
		if err != nil {
			return fmt.Errorf("failed to read clipboard: %w", err)
		}
		if content, err = utils.MarkdownToHTML(text); err != nil {
			return err
		}
	}

	if err := s.Hydrate(); err != nil {
		return err
	}

	n, err := s.Store.CreateWith(func(n *note.Note) {
		if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
			n.Title = strings.TrimSpace(args[0])
		}
		if tags != nil {
			n.Tags = tags
		}
		n.Content = content
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Created note %d: %s\n", n.ID, n.Title)
	return nil
}
