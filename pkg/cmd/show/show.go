package show

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Paintersrp/easynote/internal/fzf"
	"github.com/Paintersrp/easynote/internal/state"
	"github.com/Paintersrp/easynote/utils"
)

func NewCmdShow(s *state.State) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Render a note in the terminal.",
		Long: heredoc.Doc(`
			Renders the note's title, tags and body as markdown. Use --raw to
			print the stored HTML instead.
		`),
		Example: "easynote show 1712345678901",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), s, args[0], raw, termWidth())
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print the stored HTML")
	return cmd
}

func termWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 80
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

// ParseID reads a note id argument.
func ParseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid note id %q", arg)
	}
	return id, nil
}

func run(out io.Writer, s *state.State, arg string, raw bool, width int) error {
	id, err := ParseID(arg)
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

	if raw {
		_, err := fmt.Fprintln(out, n.Content)
		return err
	}

	rendered, err := utils.RenderMarkdown(fzf.NoteMarkdown(n), width)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(out, rendered)
	return err
}
