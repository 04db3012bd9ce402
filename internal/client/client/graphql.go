package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/accountcli/internal/client/models"
	"github.com/dmitrijs2005/accountcli/internal/common"
	"github.com/dmitrijs2005/accountcli/internal/logging"
)

const (
	headerContentType = "Content-Type"
	contentTypeJSON   = "application/json"
)

// GraphQLClient implements Client over HTTP POST to a single GraphQL endpoint.
type GraphQLClient struct {
	endpoint   string
	httpClient *http.Client
	requestID  func() string
	logger     logging.Logger
}

// Option configures a GraphQLClient.
type Option func(*GraphQLClient)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *GraphQLClient) {
		c.httpClient = hc
	}
}

// WithTimeout sets the HTTP client timeout. Zero means no timeout. A client
// passed with WithHTTPClient is copied, never modified.
func WithTimeout(d time.Duration) Option {
	return func(c *GraphQLClient) {
		hc := http.Client{}
		if c.httpClient != nil {
			hc = *c.httpClient
		}
		hc.Timeout = d
		c.httpClient = &hc
	}
}

func WithLogger(l logging.Logger) Option {
	return func(c *GraphQLClient) {
		c.logger = l
	}
}

// WithRequestID replaces the X-Request-ID generator.
func WithRequestID(fn func() string) Option {
	return func(c *GraphQLClient) {
		c.requestID = fn
	}
}

// NewGraphQLClient returns a client for endpoint. Without options it uses a
// plain http.Client, random uuid request ids and a no-op logger.
func NewGraphQLClient(endpoint string, opts ...Option) *GraphQLClient {
	c := &GraphQLClient{
		endpoint:   endpoint,
		httpClient: &http.Client{},
		requestID:  func() string { return uuid.NewString() },
		logger:     logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BearerToken prefixes token with "Bearer " unless it already has it.
func BearerToken(token string) string {
	if strings.HasPrefix(token, common.BearerPrefix) {
		return token
	}
	return common.BearerPrefix + token
}

type request struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type gqlError struct {
	Message string `json:"message"`
}

type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []gqlError      `json:"errors"`
}

func (c *GraphQLClient) Profile(ctx context.Context, token string) (*models.UserProfile, error) {
	var data struct {
		ObtenerPerfil *models.UserProfile `json:"obtenerPerfil"`
	}
	if err := c.do(ctx, "GetProfile", token, profileQuery, nil, &data); err != nil {
		return nil, err
	}
	if data.ObtenerPerfil == nil {
		return nil, ErrEmptyPayload
	}
	return data.ObtenerPerfil, nil
}

func (c *GraphQLClient) Login(ctx context.Context, email, password string) (*models.LoginResult, error) {
	var data struct {
		Login *models.LoginResult `json:"login"`
	}
	vars := map[string]any{"email": email, "password": password}
	if err := c.do(ctx, "Login", "", loginMutation, vars, &data); err != nil {
		return nil, err
	}
	if data.Login == nil || data.Login.Token == "" {
		return nil, ErrEmptyPayload
	}
	return data.Login, nil
}

func (c *GraphQLClient) Register(ctx context.Context, in models.Registration) (string, error) {
	var data struct {
		RegistrarUsuario *string `json:"registrarUsuario"`
	}
	vars := map[string]any{
		"nombre":   in.Nombre,
		"email":    in.Email,
		"password": in.Password,
		"username": in.Username,
	}
	if err := c.do(ctx, "Register", "", registerMutation, vars, &data); err != nil {
		return "", err
	}
	if data.RegistrarUsuario == nil {
		return "", ErrEmptyPayload
	}
	return *data.RegistrarUsuario, nil
}

// do posts one GraphQL operation and decodes its data into out.
//
// Error mapping: transport failure -> ErrUnavailable, non-2xx -> *StatusError,
// an errors list (even empty) -> *APIError, null data -> ErrEmptyPayload,
// undecodable body -> ErrMalformedResponse.
func (c *GraphQLClient) do(ctx context.Context, op, token, query string, vars map[string]any, out any) error {
	body, err := json.Marshal(request{Query: query, Variables: vars})
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	reqID := c.requestID()
	req.Header.Set(headerContentType, contentTypeJSON)
	req.Header.Set(common.RequestIDHeaderName, reqID)
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, BearerToken(token))
	}

	log := c.logger.With("op", op, "request_id", reqID)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err)
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	log.Debug(ctx, "response received", "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{StatusCode: resp.StatusCode}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	if env.Errors != nil {
		msgs := make([]string, len(env.Errors))
		for i, e := range env.Errors {
			msgs[i] = e.Message
		}
		return &APIError{Messages: msgs}
	}

	if len(env.Data) == 0 || bytes.Equal(env.Data, []byte("null")) {
		return ErrEmptyPayload
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return nil
}
