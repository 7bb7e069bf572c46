package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/akarpov/go-dash-sync/internal/config"
	"github.com/akarpov/go-dash-sync/internal/logger"
	"github.com/akarpov/go-dash-sync/internal/utils"
	"github.com/akarpov/go-dash-sync/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying resty client with the
// request timeout and the retry policy:
//
//   - adapterCfg.RetryCount retries after the initial attempt (2 by default,
//     so 3 attempts total);
//   - a retry is scheduled only for transport errors, 5xx responses, and
//     request timeouts (408) — any other 4xx is surfaced immediately;
//   - the wait before retry n doubles the configured base each time
//     (500ms, 1s, ... by default), with no jitter.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.Adapter, log *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	retryWait := adapterCfg.RetryWaitTime
	if retryWait <= 0 {
		retryWait = config.DefaultRetryWaitTime
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetRetryCount(adapterCfg.RetryCount).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			return isRetryable(resp, err)
		}).
		SetRetryAfter(func(c *resty.Client, resp *resty.Response) (time.Duration, error) {
			// resp.Request.Attempt is 1 after the initial attempt,
			// giving waits of retryWait, 2*retryWait, ...
			attempt := resp.Request.Attempt
			if attempt < 1 {
				attempt = 1
			}
			return retryWait << (attempt - 1), nil
		})

	return &httpServerAdapter{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
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

// isRetryable classifies a completed attempt. Transport errors (no response
// received), 5xx responses, and 408 are transient; everything else is final.
func isRetryable(resp *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	if resp == nil {
		return false
	}
	return resp.StatusCode() >= http.StatusInternalServerError ||
		resp.StatusCode() == http.StatusRequestTimeout
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the user credentials to
// POST /api/auth/register. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/register")
	if err != nil {
		return models.Token{}, fmt.Errorf("register request: %w: %w", ErrRemoteUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	return h.storeTokenFromResponse(resp)
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/login")
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w: %w", ErrRemoteUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	return h.storeTokenFromResponse(resp)
}

// FetchViewState implements [ServerAdapter]. It GETs
// GET /api/dashboard/state and decodes the response. Requires a valid bearer
// token.
func (h *httpServerAdapter) FetchViewState(ctx context.Context) (models.ViewState, error) {
	resp, err := h.authedRequest(ctx).Get("/api/dashboard/state")
	if err != nil {
		return models.ViewState{}, fmt.Errorf("fetch view state request: %w: %w", ErrRemoteUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ViewState{}, err
	}

	var state models.ViewState
	if err = json.Unmarshal(resp.Body(), &state); err != nil {
		return models.ViewState{}, fmt.Errorf("decode view state response: %w", err)
	}

	return state, nil
}

// SaveViewState implements [ServerAdapter]. It PUTs the partial update to
// PUT /api/dashboard/state and decodes the merged state the server echoes
// back. Requires a valid bearer token.
func (h *httpServerAdapter) SaveViewState(ctx context.Context, update models.ViewStateUpdate) (models.ViewState, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		Put("/api/dashboard/state")
	if err != nil {
		return models.ViewState{}, fmt.Errorf("save view state request: %w: %w", ErrRemoteUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ViewState{}, err
	}

	var state models.ViewState
	if err = json.Unmarshal(resp.Body(), &state); err != nil {
		return models.ViewState{}, fmt.Errorf("decode saved view state response: %w", err)
	}

	return state, nil
}

// ResetViewState implements [ServerAdapter]. It sends
// DELETE /api/dashboard/state. Requires a valid bearer token.
func (h *httpServerAdapter) ResetViewState(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Delete("/api/dashboard/state")
	if err != nil {
		return fmt.Errorf("reset view state request: %w: %w", ErrRemoteUnavailable, err)
	}

	return mapHTTPError(resp)
}

// FetchActivities implements [ServerAdapter]. It GETs GET /api/activities
// and decodes the activity list. Requires a valid bearer token.
func (h *httpServerAdapter) FetchActivities(ctx context.Context) ([]models.Activity, error) {
	resp, err := h.authedRequest(ctx).Get("/api/activities")
	if err != nil {
		return nil, fmt.Errorf("fetch activities request: %w: %w", ErrRemoteUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var ar models.ActivitiesResponse
	if err = json.Unmarshal(resp.Body(), &ar); err != nil {
		return nil, fmt.Errorf("decode activities response: %w", err)
	}

	return ar.Activities, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func (h *httpServerAdapter) storeTokenFromResponse(resp *resty.Response) (models.Token, error) {
	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("parse bearer token: %w", err)
	}
	userID, err := utils.ParseUserIDFromJWT(token)
	if err != nil {
		return models.Token{}, fmt.Errorf("parse user id from token: %w", err)
	}

	h.SetToken(token)
	return models.Token{SignedString: token, UserID: userID}, nil
}
