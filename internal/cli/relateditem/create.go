package relateditem

import (
	"context"
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/docuglue/glue-go/glue"
	"github.com/docuglue/glue-go/internal/cliutil"
)

type createOpts struct {
	resourceType    string
	resourceID      int64
	destinationID   int64
	destinationType string
	notes           string
	file            string
}

func newCreateCmd() *cobra.Command {
	opts := &createOpts{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Link one or more destinations to a resource",
		RunE:  runCreateCmd(opts),
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.resourceType, "resource-type", "", "Type of the parent resource (e.g. documents)")
	flags.Int64Var(&opts.resourceID, "resource-id", 0, "ID of the parent resource")
	flags.Int64Var(&opts.destinationID, "destination-id", 0, "ID of the destination resource")
	flags.StringVar(&opts.destinationType, "destination-type", "", "Type of the destination resource (e.g. Configuration)")
	flags.StringVar(&opts.notes, "notes", "", "Note to attach to the link")
	flags.StringVar(&opts.file, "file", "", "Path to a JSON array of related item specs (batch mode)")

	return cmd
}

func runCreateCmd(opts *createOpts) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		c, err := cliutil.NewClient(ctx)
		if err != nil {
			return err
		}

		in, err := createInput(cmd, opts)
		if err != nil {
			return err
		}

		resp, err := c.RelatedItems.Create(ctx, glue.ResourceType(opts.resourceType), opts.resourceID, in)
		if err != nil {
			return err
		}

		return cliutil.PrintResponse(os.Stdout, resp)
	}
}

func createInput(cmd *cobra.Command, opts *createOpts) (glue.Input[glue.RelatedItemSpec], error) {
	if opts.file != "" {
		bs, err := os.ReadFile(opts.file)
		if err != nil {
			return glue.Input[glue.RelatedItemSpec]{}, err
		}

		var specs []glue.RelatedItemSpec
		if err := json.Unmarshal(bs, &specs); err != nil {
			return glue.Input[glue.RelatedItemSpec]{}, err
		}

		return glue.Many(specs), nil
	}

	spec := glue.RelatedItemSpec{
		DestinationID:   opts.destinationID,
		DestinationType: glue.DestinationType(opts.destinationType),
	}
	if cmd.Flags().Changed("notes") {
		spec.Notes = &opts.notes
	}

	return glue.One(spec), nil
}
