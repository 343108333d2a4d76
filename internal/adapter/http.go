package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-chain-keeper/internal/config"
	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/internal/utils"
	"github.com/MKhiriev/go-chain-keeper/models"
)

type httpCoordinatorAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPCoordinatorAdapter returns a [CoordinatorAdapter] talking to the
// coordinator at cfg.Address. A bare host:port is treated as http.
func NewHTTPCoordinatorAdapter(cfg config.Adapter, logger *logger.Logger) (CoordinatorAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter address: %w", err)
	}

	return &httpCoordinatorAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpCoordinatorAdapter) Status(ctx context.Context) (models.WalletStatus, error) {
	var status models.WalletStatus
	err := h.get(ctx, "/api/wallet/status", &status)
	return status, err
}

func (h *httpCoordinatorAdapter) CreateWallet(ctx context.Context, password string, words int) (string, error) {
	var created models.CreateWalletResponse
	err := h.post(ctx, "/api/wallet/create", models.CreateWalletRequest{Password: password, Words: words}, &created)
	return created.Mnemonic, err
}

func (h *httpCoordinatorAdapter) ImportWallet(ctx context.Context, mnemonic, password string) error {
	return h.post(ctx, "/api/wallet/import", models.ImportWalletRequest{Mnemonic: mnemonic, Password: password}, nil)
}

func (h *httpCoordinatorAdapter) Unlock(ctx context.Context, password string) error {
	return h.post(ctx, "/api/wallet/unlock", models.PasswordRequest{Password: password}, nil)
}

func (h *httpCoordinatorAdapter) Lock(ctx context.Context) error {
	return h.post(ctx, "/api/wallet/lock", nil, nil)
}

func (h *httpCoordinatorAdapter) Accounts(ctx context.Context) ([]models.Account, error) {
	var accounts []models.Account
	err := h.get(ctx, "/api/accounts", &accounts)
	return accounts, err
}

func (h *httpCoordinatorAdapter) AddAccount(ctx context.Context, name string) (models.Account, error) {
	var account models.Account
	err := h.post(ctx, "/api/accounts", models.AddAccountRequest{Name: name}, &account)
	return account, err
}

func (h *httpCoordinatorAdapter) ImportAccount(ctx context.Context, req models.ImportAccountRequest) (models.Account, error) {
	var account models.Account
	err := h.post(ctx, "/api/accounts/import", req, &account)
	return account, err
}

func (h *httpCoordinatorAdapter) SelectAccount(ctx context.Context, id string) error {
	return h.post(ctx, "/api/accounts/"+url.PathEscape(id)+"/select", nil, nil)
}

func (h *httpCoordinatorAdapter) SetAutoLock(ctx context.Context, minutes int) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.AutoLockRequest{Minutes: minutes}).
		Put("/api/wallet/preferences/auto-lock")
	if err != nil {
		return fmt.Errorf("set auto-lock request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpCoordinatorAdapter) Approvals(ctx context.Context) ([]models.PendingApproval, error) {
	var pending []models.PendingApproval
	err := h.get(ctx, "/api/approvals", &pending)
	return pending, err
}

func (h *httpCoordinatorAdapter) ResolveApproval(ctx context.Context, id string, approved bool) error {
	return h.post(ctx, "/api/approvals/"+url.PathEscape(id)+"/resolve", models.ResolveApprovalRequest{Approved: approved}, nil)
}

func (h *httpCoordinatorAdapter) Permissions(ctx context.Context) ([]models.OriginPermission, error) {
	var perms []models.OriginPermission
	err := h.get(ctx, "/api/permissions", &perms)
	return perms, err
}

func (h *httpCoordinatorAdapter) RevokePermission(ctx context.Context, origin string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("origin", origin).
		Delete("/api/permissions")
	if err != nil {
		return fmt.Errorf("revoke permission request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpCoordinatorAdapter) Version(ctx context.Context) (models.AppBuildInfo, error) {
	var info models.AppBuildInfo
	err := h.get(ctx, "/api/version", &info)
	return info, err
}

func (h *httpCoordinatorAdapter) get(ctx context.Context, path string, result any) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(result).
		Get(path)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	return mapHTTPError(resp)
}

// post sends body as JSON. result may be nil for endpoints answering 204.
func (h *httpCoordinatorAdapter) post(ctx context.Context, path string, body, result any) error {
	req := h.client.R().SetContext(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Post(path)
	if err != nil {
		return fmt.Errorf("POST %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Str("path", path).Msg("coordinator request failed")
		return err
	}
	return nil
}
