/*
Copyright © 2024 Ryan Painter paintersrp@gmail.com

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package initialize

import (
	"fmt"
	"io"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/easynote/internal/state"
)

func NewCmdInit(s *state.State) *cobra.Command {
	var breakpoint int

	cmd := &cobra.Command{
		Use:     "init",
		Aliases: []string{"i", "initialize"},
		Short:   "Write the easynote configuration file.",
		Long: heredoc.Doc(`
			Saves the effective configuration to ~/.easynote/cfg.yaml. The
			global --driver and --data-dir flags choose where notes are kept;
			--breakpoint sets the width at which the two-pane layout is used.
		`),
		Example: "easynote init --driver sqlite --breakpoint 120",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("breakpoint") {
				breakpoint = 0
			}
			return run(cmd.OutOrStdout(), s, breakpoint)
		},
	}

	cmd.Flags().IntVar(&breakpoint, "breakpoint", 0, "Terminal width at which the two-pane layout is used")
	return cmd
}

func run(out io.Writer, s *state.State, breakpoint int) error {
	if breakpoint != 0 {
		s.Config.Layout.Breakpoint = breakpoint
	}

	if err := s.Config.Save(); err != nil {
		return err
	}

	fmt.Fprintf(out, "Wrote %s\n", s.Config.GetConfigPath())
	fmt.Fprintf(out, "  storage: %s at %s\n", s.Config.Storage.Driver, s.Config.Storage.DataDir)
	fmt.Fprintf(out, "  layout: two panes from %d columns\n", s.Config.Layout.Breakpoint)
	return nil
}
