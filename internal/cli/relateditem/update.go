package relateditem

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/docuglue/glue-go/glue"
	"github.com/docuglue/glue-go/internal/cliutil"
)

type updateOpts struct {
	resourceType  string
	resourceID    int64
	relatedItemID int64
	notes         string
}

func newUpdateCmd() *cobra.Command {
	opts := &updateOpts{}

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Replace the notes on a related item",
		RunE:  runUpdateCmd(opts),
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.resourceType, "resource-type", "", "Type of the parent resource")
	flags.Int64Var(&opts.resourceID, "resource-id", 0, "ID of the parent resource")
	flags.Int64Var(&opts.relatedItemID, "id", 0, "ID of the related item")
	flags.StringVar(&opts.notes, "notes", "", "New note")

	return cmd
}

func runUpdateCmd(opts *updateOpts) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		c, err := cliutil.NewClient(ctx)
		if err != nil {
			return err
		}

		resp, err := c.RelatedItems.Update(ctx, glue.ResourceType(opts.resourceType), opts.resourceID, opts.relatedItemID, opts.notes)
		if err != nil {
			return err
		}

		return cliutil.PrintResponse(os.Stdout, resp)
	}
}
