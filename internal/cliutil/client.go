// Package cliutil wires configuration, logging and the API client
// together for the CLI commands.
package cliutil

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"

	"github.com/spf13/viper"

	"github.com/docuglue/glue-go/glue"
	"github.com/docuglue/glue-go/glue/jsonapi"
	"github.com/docuglue/glue-go/internal/config"
	"github.com/docuglue/glue-go/internal/logging"
	"github.com/docuglue/glue-go/internal/version"
)

// NewClient builds a client from the environment, letting the --url and
// --api-key flags override it.
func NewClient(ctx context.Context) (*glue.Client, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}

	logger, err := logging.NewLogger(os.Stderr, logging.Level(cfg.Log.Level), logging.Format(cfg.Log.Format))
	if err != nil {
		return nil, err
	}

	endpoint := cfg.Endpoint
	if v := viper.GetString("url"); v != "" {
		endpoint = v
	}

	apiKey := cfg.APIKey
	if v := viper.GetString("api-key"); v != "" {
		apiKey = v
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, err
	}

	return glue.New(u,
		glue.WithAPIKey(apiKey),
		glue.WithLogger(logger.Named("client")),
		glue.WithUserAgent(fmt.Sprintf("glue-cli/%s", version.Version)),
	), nil
}

// PrintResponse writes the returned resources as indented JSON.
func PrintResponse(w io.Writer, r *jsonapi.Response) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r.Data)
}
