// Command apicall sends an authenticated request to one of the supported
// APIs and prints the JSON response.
//
//	APICALL_API=slack APICALL_TOKEN=xoxb-... apicall /team.info
//	apicall --all --items members /users.list?limit=200
//	apicall -X POST -d '{"factorType":"sms"}' /api/v1/users/00u1/factors
//
// Settings are read from APICALL_ environment variables and, when present,
// from the file given by --env-file.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	client "github.com/peteraglen/saas-api-go-client"
	"github.com/peteraglen/saas-api-go-client/gusto"
	"github.com/peteraglen/saas-api-go-client/internal/config"
	"github.com/peteraglen/saas-api-go-client/okta"
	"github.com/peteraglen/saas-api-go-client/slack"
)

const flushTimeout = 5 * time.Second

var errUsage = errors.New("usage: apicall [flags] <path or URL>")

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	err := run(ctx, os.Args[1:], os.Stdout)
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	flags := pflag.NewFlagSet("apicall", pflag.ContinueOnError)
	envFile := flags.String("env-file", ".env", "file to load APICALL_ variables from")
	method := flags.StringP("method", "X", http.MethodGet, "HTTP method")
	data := flags.StringP("data", "d", "", "JSON request body")
	all := flags.Bool("all", false, "follow pagination and print the items of every page")
	items := flags.String("items", "", "JSON path of the item array with --all; empty for a top-level array")

	if err := flags.Parse(args); err != nil {
		return err
	}

	if flags.NArg() != 1 {
		return errUsage
	}
	target := flags.Arg(0)

	cfg, err := config.Load(*envFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := cfg.Logger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	telemetryOpts, shutdown, err := telemetryOptions(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), flushTimeout)
		defer cancel()
		if err := shutdown(flushCtx); err != nil {
			logger.Warn("Failed to flush telemetry", zap.Error(err))
		}
	}()

	api, err := newAPIClient(cfg, logger.Sugar(), telemetryOpts...)
	if err != nil {
		return err
	}

	var body []byte
	if *data != "" {
		if !json.Valid([]byte(*data)) {
			return &client.EncodeError{Err: errors.New("--data is not valid JSON")}
		}
		body = []byte(*data)
	}

	var out []byte
	if *all {
		result, err := client.FetchAll[json.RawMessage](ctx, api, client.PageRequest{
			Method: strings.ToUpper(*method),
			Target: target,
			Body:   body,
			Items:  *items,
		})
		if err != nil {
			return err
		}

		if out, err = client.Marshal(result); err != nil {
			return err
		}
	} else {
		resp, err := api.Do(ctx, strings.ToUpper(*method), target, body, nil)
		if err != nil {
			return err
		}
		out = resp.Body
	}

	return writeJSON(stdout, out)
}

func newAPIClient(cfg *config.Config, logger *zap.SugaredLogger, extra ...client.Option) (*client.Client, error) {
	opts := append([]client.Option{
		client.WithRequestLogger(logger),
		client.WithRequestIDHeader(cfg.RequestIDHeader),
		client.WithUserAgent(cfg.UserAgent),
	}, extra...)

	switch cfg.API {
	case config.APIGusto:
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = gusto.DefaultBaseURL
		}
		c, err := gusto.NewWithBaseURL(baseURL, cfg.Token, opts...)
		if err != nil {
			return nil, err
		}
		return c.HTTP(), nil

	case config.APIOkta:
		c, err := okta.New(cfg.BaseURL, cfg.Token, opts...)
		if err != nil {
			return nil, err
		}
		return c.HTTP(), nil

	case config.APISlack:
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = slack.DefaultBaseURL
		}
		c, err := slack.NewWithBaseURL(baseURL, cfg.Token, opts...)
		if err != nil {
			return nil, err
		}
		return c.HTTP(), nil
	}

	return nil, fmt.Errorf("unsupported API %q", cfg.API)
}

// writeJSON indents JSON output and writes anything else unchanged.
func writeJSON(w io.Writer, data []byte) error {
	var buf bytes.Buffer
	if len(data) > 0 && json.Indent(&buf, data, "", "  ") == nil {
		data = buf.Bytes()
	}

	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
