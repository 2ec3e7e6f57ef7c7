package list

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/araddon/dateparse"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/easynote/internal/note"
	"github.com/Paintersrp/easynote/internal/state"
)

type options struct {
	term  string
	sort  string
	desc  bool
	since string
}

func NewCmdList(s *state.State) *cobra.Command {
	var o options

	cmd := &cobra.Command{
		Use:     "list [term]",
		Aliases: []string{"ls"},
		Short:   "Print notes with their previews.",
		Long: heredoc.Doc(`
			Prints every note, or the notes whose title or tags contain the
			search term. Matching ignores case.
		`),
		Example: heredoc.Doc(`
			easynote list
			easynote list work --sort edited --desc
			easynote list --since "last week"
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				o.term = args[0]
			}
			return run(cmd.OutOrStdout(), s, o)
		},
	}

	cmd.Flags().StringVar(&o.sort, "sort", "created", "Sort by created, title or edited")
	cmd.Flags().BoolVar(&o.desc, "desc", false, "Sort in descending order")
	cmd.Flags().StringVar(&o.since, "since", "", "Only notes edited at or after this date")
	return cmd
}

func run(out io.Writer, s *state.State, o options) error {
	field, err := note.ParseSortField(o.sort)
	if err != nil {
		return err
	}
	order := note.Ascending
	if o.desc {
		order = note.Descending
	}

	var since time.Time
	if o.since != "" {
		if since, err = dateparse.ParseLocal(o.since); err != nil {
			return fmt.Errorf("invalid --since date %q: %w", o.since, err)
		}
	}

	if err := s.Hydrate(); err != nil {
		return err
	}

	notes := note.Sort(note.Filter(s.Store.Notes(), o.term), field, order)
	dateFormat := s.Config.List.DateFormat

	shown := 0
	for _, n := range notes {
		if !since.IsZero() && n.Edited().Before(since) {
			continue
		}
		shown++
		fmt.Fprintf(out, "%d  %s  (%s)\n", n.ID, n.Title, n.Edited().Format(dateFormat))
		if len(n.Tags) > 0 {
			fmt.Fprintf(out, "    #%s\n", strings.Join(n.Tags, " #"))
		}
		if p := note.Preview(n.Content); p != "" {
			fmt.Fprintf(out, "    %s\n", p)
		}
	}

	if shown == 0 {
		fmt.Fprintln(out, "No notes found")
	}
	return nil
}
