package utils

import (
	"github.com/go-resty/resty/v2"
)

// ClientUserAgent identifies the TUI when it talks to a running daemon.
const ClientUserAgent = "aura-client"

// HTTPClient embeds *resty.Client so the adapter can use its request
// builders directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client that sends JSON and identifies
// itself with [ClientUserAgent]. Base URL and timeout are left to the caller.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("User-Agent", ClientUserAgent).
		SetHeader("Accept", "application/json")

	return &HTTPClient{Client: client}
}
