// Package catalog consumes the menu catalog service so unit prices can be
// resolved from an authoritative source at order-creation time instead of
// being trusted from the caller.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when the catalog does not know the menu item.
var ErrNotFound = errors.New("menu item not found")

// MenuItem is the subset of the catalog's menu item representation the order
// service needs.
type MenuItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Status      string          `json:"status"`
}

// Client resolves menu items from the catalog.
type Client interface {
	MenuItem(ctx context.Context, menuItemID string) (*MenuItem, error)
}

// HTTPClient is a Client backed by the menu service's HTTP API.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	logger  zerolog.Logger
}

// NewHTTPClient creates a catalog client for the menu service at baseURL.
func NewHTTPClient(baseURL string, timeout time.Duration, logger zerolog.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger.With().Str("client", "catalog").Logger(),
	}
}

// MenuItem fetches a single menu item by identifier.
func (c *HTTPClient) MenuItem(ctx context.Context, menuItemID string) (*MenuItem, error) {
	url := fmt.Sprintf("%s/items/%s", c.baseURL, menuItemID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}

	res, err := c.http.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("menu_item_id", menuItemID).Msg("catalog request failed")
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound, http.StatusBadRequest:
		// The menu service rejects malformed ids with 400.
		return nil, ErrNotFound
	default:
		c.logger.Error().
			Int("status", res.StatusCode).
			Str("menu_item_id", menuItemID).
			Msg("unexpected catalog response")
		return nil, fmt.Errorf("unexpected catalog response: %s", res.Status)
	}

	var item MenuItem
	if err := json.NewDecoder(res.Body).Decode(&item); err != nil {
		return nil, fmt.Errorf("failed to decode menu item: %w", err)
	}

	return &item, nil
}
