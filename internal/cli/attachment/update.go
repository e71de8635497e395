package attachment

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/docuglue/glue-go/glue"
	"github.com/docuglue/glue-go/internal/cliutil"
)

type updateOpts struct {
	resourceType string
	resourceID   int64
	attachmentID int64
	name         string
}

func newUpdateCmd() *cobra.Command {
	opts := &updateOpts{}

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Rename an attachment",
		RunE:  runUpdateCmd(opts),
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.resourceType, "resource-type", "", "Type of the parent resource")
	flags.Int64Var(&opts.resourceID, "resource-id", 0, "ID of the parent resource")
	flags.Int64Var(&opts.attachmentID, "id", 0, "ID of the attachment")
	flags.StringVar(&opts.name, "name", "", "New display name")

	return cmd
}

func runUpdateCmd(opts *updateOpts) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		c, err := cliutil.NewClient(ctx)
		if err != nil {
			return err
		}

		resp, err := c.Attachments.Update(ctx, glue.ResourceType(opts.resourceType), opts.resourceID, opts.attachmentID, opts.name)
		if err != nil {
			return err
		}

		return cliutil.PrintResponse(os.Stdout, resp)
	}
}
