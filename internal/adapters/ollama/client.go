package ollama

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SscSPs/freight_desk/internal/core/ports/gateways"
	"github.com/SscSPs/freight_desk/internal/middleware"
	"github.com/ollama/ollama/api"
	"golang.org/x/sync/singleflight"
)

// Client is the language-model gateway backed by an Ollama server.
type Client struct {
	api     *api.Client
	host    string
	timeout time.Duration
	group   singleflight.Group
}

var _ gateways.LanguageModel = (*Client)(nil)

// NewClient creates a gateway for the Ollama server at host. timeout bounds
// every HTTP exchange, including a full non-streamed completion.
func NewClient(host string, timeout time.Duration) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(host, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid ollama host %q: %w", host, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid ollama host %q: scheme and host are required", host)
	}

	httpClient := &http.Client{Timeout: timeout}
	return &Client{
		api:     api.NewClient(base, httpClient),
		host:    base.String(),
		timeout: timeout,
	}, nil
}

// ListModels returns the installed model names. Concurrent callers share one
// request to the server. The shared request is not tied to any caller's
// context: a caller that gives up returns early while the others keep waiting.
func (c *Client) ListModels(ctx context.Context) ([]string, error) {
	ch := c.group.DoChan("tags", func() (interface{}, error) {
		fetchCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
		if c.timeout > 0 {
			fetchCtx, cancel = context.WithTimeout(fetchCtx, c.timeout)
		}
		defer cancel()

		resp, err := c.api.List(fetchCtx)
		if err != nil {
			return nil, fmt.Errorf("failed to list models on %s: %w", c.host, err)
		}
		names := make([]string, 0, len(resp.Models))
		for _, m := range resp.Models {
			names = append(names, m.Name)
		}
		return names, nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("failed to list models on %s: %w", c.host, ctx.Err())
	case res = <-ch:
	}
	if res.Err != nil {
		return nil, res.Err
	}

	if res.Shared {
		middleware.GetLoggerFromCtx(ctx).Debug("Model list request shared", slog.String("host", c.host))
	}
	names := res.Val.([]string)
	out := make([]string, len(names))
	copy(out, names)
	return out, nil
}

// Generate sends prompt as a single user message and waits for the whole reply.
func (c *Client) Generate(ctx context.Context, model, prompt string, opts gateways.GenerateOptions) (string, error) {
	stream := false
	req := &api.ChatRequest{
		Model:    model,
		Messages: []api.Message{{Role: "user", Content: prompt}},
		Stream:   &stream,
		Options: map[string]interface{}{
			"temperature": opts.Temperature,
			"num_predict": opts.MaxTokens,
		},
	}

	var reply strings.Builder
	err := c.api.Chat(ctx, req, func(resp api.ChatResponse) error {
		reply.WriteString(resp.Message.Content)
		return nil
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", fmt.Errorf("chat with %s: %w", model, ctxErr)
		}
		return "", fmt.Errorf("chat with %s: %w", model, err)
	}
	return reply.String(), nil
}
