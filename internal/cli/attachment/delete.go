package attachment

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/docuglue/glue-go/glue"
	"github.com/docuglue/glue-go/internal/cliutil"
)

type deleteOpts struct {
	resourceType string
	resourceID   int64
	ids          []int64
}

func newDeleteCmd() *cobra.Command {
	opts := &deleteOpts{}

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Remove one or more attachments from a resource",
		RunE:  runDeleteCmd(opts),
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.resourceType, "resource-type", "", "Type of the parent resource")
	flags.Int64Var(&opts.resourceID, "resource-id", 0, "ID of the parent resource")
	flags.Int64SliceVar(&opts.ids, "id", nil, "ID of an attachment to remove (repeatable)")

	return cmd
}

func runDeleteCmd(opts *deleteOpts) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		c, err := cliutil.NewClient(ctx)
		if err != nil {
			return err
		}

		resp, err := c.Attachments.Delete(ctx, glue.ResourceType(opts.resourceType), opts.resourceID, opts.ids...)
		if err != nil {
			return err
		}

		return cliutil.PrintResponse(os.Stdout, resp)
	}
}
