package utils

import (
	"errors"
	"net"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	clientRetryCount   = 2
	clientRetryWait    = 100 * time.Millisecond
	clientRetryMaxWait = time.Second
)

// HTTPClient wraps resty.Client with the settings every coordinator client
// shares.
//
//	client := utils.NewHTTPClient("http://localhost:8088", 30*time.Second)
//	resp, err := client.R().Get("/api/wallet/status")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client bound to baseURL. Requests that fail to
// reach the coordinator at all (connection refused while it restarts) are
// retried a few times; HTTP error responses are not.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(clientRetryCount).
		SetRetryWaitTime(clientRetryWait).
		SetRetryMaxWaitTime(clientRetryMaxWait).
		AddRetryCondition(func(_ *resty.Response, err error) bool {
			var opErr *net.OpError
			return errors.As(err, &opErr) && opErr.Op == "dial"
		})

	return &HTTPClient{Client: c}
}
