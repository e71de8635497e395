package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/docuglue/glue-go/internal/cli/attachment"
	"github.com/docuglue/glue-go/internal/cli/relateditem"
	"github.com/docuglue/glue-go/internal/version"
)

var (
	rootCmd = &cobra.Command{
		Use:     "glue-cli",
		Short:   "CLI for the documentation-management API",
		Version: version.Version,
	}
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringP("url", "u", "", "Endpoint of the API (defaults to GLUE_ENDPOINT)")
	flags.String("api-key", "", "API key (defaults to GLUE_API_KEY)")
	viper.BindPFlag("url", flags.Lookup("url"))
	viper.BindPFlag("api-key", flags.Lookup("api-key"))

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(relateditem.NewCmd())
	rootCmd.AddCommand(attachment.NewCmd())
}

func Execute() error {
	return rootCmd.Execute()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("version: %s\n", version.Version)
			fmt.Printf("commit: %s\n", version.Commit)
			return nil
		},
	}
}
