package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-chain-keeper/internal/config"
	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/internal/utils"
	"github.com/MKhiriev/go-chain-keeper/models"
	"github.com/go-resty/resty/v2"
)

const (
	originHeader        = "X-Origin"
	defaultPollInterval = 500 * time.Millisecond
)

type httpRelayAdapter struct {
	client *utils.HTTPClient
	origin string

	pollInterval time.Duration

	logger *logger.Logger
}

// NewHTTPRelayAdapter returns a [RelayAdapter] that acts for origin. Every
// request carries it in the X-Origin header.
func NewHTTPRelayAdapter(cfg config.Adapter, origin string, logger *logger.Logger) (RelayAdapter, error) {
	origin = strings.TrimSpace(origin)
	if origin == "" {
		return nil, ErrEmptyOrigin
	}

	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	client.SetHeader(originHeader, origin)

	poll := cfg.PollInterval
	if poll <= 0 {
		poll = defaultPollInterval
	}

	return &httpRelayAdapter{
		client:       client,
		origin:       origin,
		pollInterval: poll,
		logger:       logger,
	}, nil
}

func (h *httpRelayAdapter) Origin() string {
	return h.origin
}

func (h *httpRelayAdapter) GetKey(ctx context.Context, chainID string) (models.Key, error) {
	var key models.Key
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("chainId", chainID).
		SetResult(&key).
		Get("/api/relay/key")
	if err != nil {
		return models.Key{}, fmt.Errorf("get key request: %w", err)
	}
	return key, mapHTTPError(resp)
}

func (h *httpRelayAdapter) VerifyArbitrary(ctx context.Context, req models.VerifyArbitraryRequest) (bool, error) {
	var verified models.VerifyResponse
	resp, err := h.jsonRequest(ctx, req).
		SetResult(&verified).
		Post("/api/relay/verify")
	if err != nil {
		return false, fmt.Errorf("verify request: %w", err)
	}
	return verified.Valid, mapHTTPError(resp)
}

func (h *httpRelayAdapter) Disable(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Post("/api/relay/disable")
	if err != nil {
		return fmt.Errorf("disable request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpRelayAdapter) Submit(ctx context.Context, req models.RelayRequest) (models.RelayResult, error) {
	req.Origin = h.origin

	var res models.RelayResult
	resp, err := h.jsonRequest(ctx, req).
		SetResult(&res).
		Post("/api/relay/requests")
	if err != nil {
		return models.RelayResult{}, fmt.Errorf("submit request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RelayResult{}, err
	}
	return res, nil
}

func (h *httpRelayAdapter) Result(ctx context.Context, id string) (models.RelayResult, error) {
	var res models.RelayResult
	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&res).
		Get("/api/relay/requests/" + url.PathEscape(id))
	if err != nil {
		return models.RelayResult{}, fmt.Errorf("result request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RelayResult{}, err
	}
	return res, nil
}

func (h *httpRelayAdapter) Relay(ctx context.Context, req models.RelayRequest) (models.RelayResult, error) {
	res, err := h.Submit(ctx, req)
	if err != nil {
		return models.RelayResult{}, err
	}

	ticker := time.NewTicker(h.pollInterval)
	defer ticker.Stop()

	for res.Status == models.RelayPending {
		select {
		case <-ctx.Done():
			h.logger.Debug().Str("approval_id", res.ID).Msg("stopped waiting, request stays queued")
			return res, ctx.Err()
		case <-ticker.C:
		}

		id := res.ID
		if res, err = h.Result(ctx, id); err != nil {
			return models.RelayResult{ID: id, Status: models.RelayPending}, err
		}
	}

	if res.Status == models.RelayRejected {
		return res, fmt.Errorf("%w: %s", ErrRejected, res.ID)
	}
	return res, nil
}

func (h *httpRelayAdapter) jsonRequest(ctx context.Context, body any) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
}
