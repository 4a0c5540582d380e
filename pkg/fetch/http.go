package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrymomot/l20n/pkg/l10n"
)

// maxResourceSize caps the body read from a remote resource.
const maxResourceSize = 10 << 20

// HTTP fetches resources relative to a base URL.
type HTTP struct {
	baseURL string
	client  *http.Client
	timeout time.Duration
}

// HTTPOption configures an HTTP fetcher.
type HTTPOption func(*HTTP)

// WithHTTPClient sets the client used for requests.
func WithHTTPClient(client *http.Client) HTTPOption {
	return func(h *HTTP) {
		if client != nil {
			h.client = client
		}
	}
}

// WithRequestTimeout bounds every request. Zero disables the bound.
func WithRequestTimeout(d time.Duration) HTTPOption {
	return func(h *HTTP) {
		h.timeout = d
	}
}

// NewHTTP creates a fetcher for resources under baseURL.
func NewHTTP(baseURL string, opts ...HTTPOption) (*HTTP, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("%w: empty base URL", ErrInvalidConfig)
	}
	h := &HTTP{
		baseURL: strings.TrimSuffix(baseURL, "/") + "/",
		client:  http.DefaultClient,
		timeout: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// Fetch issues a GET request. Any status other than 200 is a not-found
// outcome.
func (h *HTTP) Fetch(ctx context.Context, resID string, lang l10n.Language) (string, error) {
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	url := h.baseURL + strings.TrimPrefix(ExpandLocale(resID, lang.Code), "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", errors.Join(ErrInvalidConfig, err)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", l10n.ErrNotFound, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %s: %w %d", l10n.ErrNotFound, url, ErrUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResourceSize))
	if err != nil {
		return "", errors.Join(l10n.ErrNotFound, ErrFailedToRead, err)
	}
	return string(body), nil
}
