// Package services talks to the upstream platform API. Every resource
// service funnels through one Gateway, which owns the bearer header, the
// response envelope, and the 401 navigation contract.
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dronexpress/console-api/config"
	"github.com/dronexpress/console-api/models"
)

// Redirect targets for authorization failures.
const (
	LoginPath     = "/login/"
	ForbiddenPath = "/401/"
)

// tokenExpiredMsg is the exact text the platform's auth layer puts in the
// envelope msg field when the bearer token is stale.
const tokenExpiredMsg = "Token has expired"

// AuthRedirectError is returned when the platform answered 401. It is a full
// navigation, not a recoverable failure: callers must send the browser to
// Location instead of rendering an error.
type AuthRedirectError struct {
	Location string
}

func (e *AuthRedirectError) Error() string {
	return "unauthorized, redirect to " + e.Location
}

type tokenContextKey struct{}

// WithAccessToken scopes a bearer token to a request context. The guard
// middleware installs the session token here so the gateway never reads
// ambient state.
func WithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey{}, token)
}

// AccessTokenFrom returns the bearer token scoped to ctx, empty when absent.
func AccessTokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(tokenContextKey{}).(string)
	return token
}

// Gateway is the single low-level client for the platform API.
type Gateway struct {
	baseURL    string
	httpClient *http.Client
}

// NewGateway creates a gateway against the configured platform API.
func NewGateway(cfg *config.Config) *Gateway {
	return &Gateway{
		baseURL: strings.TrimSuffix(cfg.PlatformAPIURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Do performs one platform request and returns the decoded envelope.
// Non-JSON responses yield an empty envelope. A 401 yields an
// *AuthRedirectError whose target depends on whether the token expired.
// Application failures are not errors here; they live in the envelope.
func (g *Gateway) Do(ctx context.Context, method, path string, query url.Values, body any) (models.Envelope, error) {
	var env models.Envelope

	target := g.baseURL + "/" + strings.TrimPrefix(path, "/")
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return env, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return env, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+AccessTokenFrom(ctx))
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return env, fmt.Errorf("platform request failed: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Printf("Failed to close response body: %v", closeErr)
		}
	}()

	if isJSON(resp.Header.Get("Content-Type")) {
		if decodeErr := json.NewDecoder(resp.Body).Decode(&env); decodeErr != nil {
			return models.Envelope{}, fmt.Errorf("failed to decode platform response: %w", decodeErr)
		}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		location := ForbiddenPath
		if env.Msg == tokenExpiredMsg {
			location = LoginPath
		}
		return env, &AuthRedirectError{Location: location}
	}

	return env, nil
}

// isJSON reports whether a Content-Type header denotes a JSON body.
func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

// Decode maps a gateway response onto a typed result. Transport failures are
// logged and flattened into Err values so call sites surface one generic
// notification; only the 401 navigation contract survives as a Go error.
func Decode[T any](env models.Envelope, err error) (models.Result[T], error) {
	var redirect *AuthRedirectError
	if errors.As(err, &redirect) {
		return models.Err[T](env.FailureMessage()), redirect
	}
	if err != nil {
		log.Printf("Platform call failed: %v", err)
		return models.Err[T]("platform request failed"), nil
	}
	if !env.Success() {
		return models.Err[T](env.FailureMessage()), nil
	}
	var value T
	if len(env.Data) > 0 {
		if decodeErr := json.Unmarshal(env.Data, &value); decodeErr != nil {
			log.Printf("Failed to decode platform payload: %v", decodeErr)
			return models.Err[T]("malformed platform response"), nil
		}
	}
	return models.Ok(value, env.Message), nil
}

// listQuery builds the uniform pagination/search query every listing
// endpoint accepts.
func listQuery(page, limit int, search string) url.Values {
	query := url.Values{}
	query.Set("page", fmt.Sprintf("%d", page))
	query.Set("limit", fmt.Sprintf("%d", limit))
	if search != "" {
		query.Set("search", search)
	}
	return query
}
