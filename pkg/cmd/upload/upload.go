package upload

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/easynote/internal/state"
	"github.com/Paintersrp/easynote/internal/upload"
)

// newUploader is swapped out in tests.
var newUploader = func(ctx context.Context, s *state.State) (upload.Uploader, error) {
	return upload.NewS3Uploader(ctx, s.Config.Upload)
}

func NewCmdUpload(s *state.State) *cobra.Command {
	var owner string

	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a file and print its URL.",
		Long: heredoc.Doc(`
			Uploads a file to the bucket configured under upload.bucket and
			upload.region. The file is stored under upload.prefix/<owner>/.
		`),
		Example: "easynote upload ./diagram.png --owner ryan",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), s, owner, args[0])
		},
	}

	cmd.Flags().StringVar(&owner, "owner", os.Getenv("USER"), "Owner folder for the uploaded file")
	return cmd
}

func run(ctx context.Context, out io.Writer, s *state.State, owner, path string) error {
	if err := s.Config.RequireUpload(); err != nil {
		return err
	}

	u, err := newUploader(ctx, s)
	if err != nil {
		return err
	}

	url, err := u.Upload(ctx, owner, path)
	if err != nil {
		return err
	}

	s.Logger.Info("uploaded file", "path", path, "url", url)
	fmt.Fprintln(out, url)
	return nil
}
