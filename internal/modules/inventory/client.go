// Package inventory provides the client for the external inventory provider.
package inventory

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/georgemunganga/catalogue-service/internal/middleware"
)

// Snapshot is the live price and stock for one product, as reported by the
// inventory provider. It is never persisted.
type Snapshot struct {
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

// Client fetches the live inventory snapshot for a product.
//
// Fetch is a total function: any failure (transport error, non-success
// status, malformed body, timeout) yields (Snapshot{}, false) and never an
// error or panic. Callers handle exactly two cases.
type Client interface {
	Fetch(productID int64, correlationID string) (Snapshot, bool)
}

type httpClient struct {
	log     *slog.Logger
	baseURL string
	hc      *http.Client
}

// NewHTTPClient creates an inventory client against baseURL. Calls are
// bounded by timeout; an aborted inbound request does not cancel an
// in-flight inventory call.
func NewHTTPClient(log *slog.Logger, baseURL string, timeout time.Duration) Client {
	return &httpClient{
		log:     log,
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
	}
}

func (c *httpClient) Fetch(productID int64, correlationID string) (Snapshot, bool) {
	url := fmt.Sprintf("%s/api/inventory/%d", c.baseURL, productID)
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		c.log.Error("inventory request build failed",
			"error", err, "product_id", productID, "correlation_id", correlationID)
		return Snapshot{}, false
	}
	req.Header.Set(middleware.CorrelationHeader, correlationID)

	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Error("inventory call failed",
			"error", err, "product_id", productID, "correlation_id", correlationID)
		return Snapshot{}, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Error("inventory returned failure status",
			"status", resp.StatusCode, "product_id", productID, "correlation_id", correlationID)
		return Snapshot{}, false
	}

	var snap Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		c.log.Error("inventory response decode failed",
			"error", err, "product_id", productID, "correlation_id", correlationID)
		return Snapshot{}, false
	}

	c.log.Info("inventory fetched",
		"product_id", productID, "price", snap.Price, "stock", snap.Stock,
		"correlation_id", correlationID)
	return snap, true
}
