package attachment

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/docuglue/glue-go/glue"
	"github.com/docuglue/glue-go/internal/cliutil"
)

type createOpts struct {
	resourceType string
	resourceID   int64
	paths        []string
	name         string
}

func newCreateCmd() *cobra.Command {
	opts := &createOpts{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Upload one or more files to a resource",
		RunE:  runCreateCmd(opts),
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.resourceType, "resource-type", "", "Type of the parent resource (e.g. documents)")
	flags.Int64Var(&opts.resourceID, "resource-id", 0, "ID of the parent resource")
	flags.StringSliceVar(&opts.paths, "path", nil, "Path to a file to upload (repeatable)")
	flags.StringVar(&opts.name, "name", "", "Display name (single upload only, defaults to the file name)")

	return cmd
}

func runCreateCmd(opts *createOpts) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		c, err := cliutil.NewClient(ctx)
		if err != nil {
			return err
		}

		resp, err := c.Attachments.Create(ctx, glue.ResourceType(opts.resourceType), opts.resourceID, createInput(opts))
		if err != nil {
			return err
		}

		return cliutil.PrintResponse(os.Stdout, resp)
	}
}

func createInput(opts *createOpts) glue.Input[glue.AttachmentSpec] {
	if len(opts.paths) == 1 {
		name := opts.name
		if name == "" {
			name = filepath.Base(opts.paths[0])
		}
		return glue.One(glue.AttachmentSpec{Path: opts.paths[0], FileName: name})
	}

	specs := make([]glue.AttachmentSpec, 0, len(opts.paths))
	for _, p := range opts.paths {
		specs = append(specs, glue.AttachmentSpec{Path: p, FileName: filepath.Base(p)})
	}

	return glue.Many(specs)
}
