package api

// SIX-CITIES API CLIENT

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultTimeout bounds every request issued by the client.
const DefaultTimeout = 5 * time.Second

// TokenSource yields the current session token, or "" when absent.
// It is consulted on every outgoing request.
type TokenSource interface {
	Token(ctx context.Context) string
}

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status: %d", e.Code)
}

// IsNotFound reports whether err is an HTTP 404 from the server.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusNotFound
}

type Client struct {
	baseURL    string
	tokens     TokenSource
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens.Token(ctx); token != "" {
		req.Header.Set("X-Token", token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Debug("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode))
		return &StatusError{Code: resp.StatusCode}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Offers fetches the full offer-summary catalog.
func (c *Client) Offers(ctx context.Context) ([]Offer, error) {
	var offers []Offer
	if err := c.do(ctx, http.MethodGet, "/offers", nil, &offers); err != nil {
		return nil, err
	}
	return offers, nil
}

// Offer fetches a single offer's detail record.
func (c *Client) Offer(ctx context.Context, id string) (OfferDetails, error) {
	var details OfferDetails
	if err := c.do(ctx, http.MethodGet, "/offers/"+id, nil, &details); err != nil {
		return OfferDetails{}, err
	}
	return details, nil
}

// NearbyOffers fetches the same-city siblings of an offer.
func (c *Client) NearbyOffers(ctx context.Context, id string) ([]Offer, error) {
	var offers []Offer
	if err := c.do(ctx, http.MethodGet, "/offers/"+id+"/nearby", nil, &offers); err != nil {
		return nil, err
	}
	return offers, nil
}

// Comments fetches the reviews left for an offer.
func (c *Client) Comments(ctx context.Context, id string) ([]Review, error) {
	var reviews []Review
	if err := c.do(ctx, http.MethodGet, "/comments/"+id, nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// PostComment submits a review. The server answers with either the single
// created review or the full updated list; isList distinguishes the two.
func (c *Client) PostComment(ctx context.Context, id, comment string, rating int) (reviews []Review, isList bool, err error) {
	var raw json.RawMessage
	req := CommentRequest{Comment: comment, Rating: rating}
	if err := c.do(ctx, http.MethodPost, "/comments/"+id, req, &raw); err != nil {
		return nil, false, err
	}

	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var list []Review
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, false, fmt.Errorf("decode review list: %w", err)
		}
		return list, true, nil
	}

	var single Review
	if err := json.Unmarshal(raw, &single); err != nil {
		return nil, false, fmt.Errorf("decode review: %w", err)
	}
	return []Review{single}, false, nil
}

// Favorites fetches the offers the current user has favorited.
func (c *Client) Favorites(ctx context.Context) ([]Offer, error) {
	var offers []Offer
	if err := c.do(ctx, http.MethodGet, "/favorite", nil, &offers); err != nil {
		return nil, err
	}
	return offers, nil
}

// SetFavorite flips the favorite status of an offer and returns the
// updated record. Status is encoded as 0 or 1 in the path.
func (c *Client) SetFavorite(ctx context.Context, id string, status bool) (Offer, error) {
	flag := 0
	if status {
		flag = 1
	}
	var offer Offer
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/favorite/%s/%d", id, flag), nil, &offer); err != nil {
		return Offer{}, err
	}
	return offer, nil
}

// CheckAuth validates the stored token and returns the session profile.
func (c *Client) CheckAuth(ctx context.Context) (User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/login", nil, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

// Login submits credentials and returns the profile with a fresh token.
func (c *Client) Login(ctx context.Context, email, password string) (User, error) {
	var user User
	req := LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/login", req, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

// Logout invalidates the session server-side.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/logout", nil, nil)
}
