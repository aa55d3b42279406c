package spacetraders

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"spacedock/config"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

const DefaultBaseURL = "https://api.spacetraders.io/v2"

// Client talks to the SpaceTraders API on behalf of a single agent. Build one
// with NewClientFromConfig, NewClientFromToken or NewClientWithRegistration.
type Client struct {
	// httpClient sends unauthenticated requests and is the base transport
	// for authClient
	httpClient *http.Client
	authClient *http.Client
	baseURL    string
	token      string
	configPath string
	logger     *zap.Logger
}

// Option configures a Client.
type Option func(*Client) error

// WithBaseURL points the client at a different API root.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) error {
		if _, err := url.Parse(baseURL); err != nil {
			return fmt.Errorf("unable to parse base url: %w", err)
		}
		c.baseURL = strings.TrimRight(baseURL, "/")
		return nil
	}
}

// WithHTTPClient replaces the default http client. Its transport is reused
// for authenticated requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		c.httpClient = hc
		return nil
	}
}

// WithConfigPath sets where the auth token is read from and saved to.
func WithConfigPath(path string) Option {
	return func(c *Client) error {
		c.configPath = path
		return nil
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) error {
		c.logger = logger
		return nil
	}
}

func newClient(opts ...Option) (*Client, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()

	envProxy := os.Getenv("HTTP_PROXY")
	if envProxy != "" {
		proxy, err := url.Parse(envProxy)
		if err != nil {
			return nil, fmt.Errorf("unable to parse HTTP_PROXY as a url: %w", err)
		}
		transport.Proxy = http.ProxyURL(proxy)
	}

	c := &Client{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   time.Second * 10,
		},
		baseURL:    DefaultBaseURL,
		configPath: config.DefaultPath,
		logger:     zap.NewNop(),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// NewClientFromConfig builds a client using the token saved in the config
// file. It returns MissingTokenError when there is no usable token.
func NewClientFromConfig(opts ...Option) (*Client, error) {
	c, err := newClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to create client from config: %w", err)
	}

	data, ok := config.ReadConfigFile(c.configPath)
	if !ok || data.Token == "" {
		c.logger.Debug("no token found in config", zap.String("path", c.configPath))
		return nil, MissingTokenError
	}

	c.setToken(data.Token)
	return c, nil
}

// NewClientFromToken builds a client around a token obtained out of band,
// e.g. from the environment or a secret file.
func NewClientFromToken(token string, opts ...Option) (*Client, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, MissingTokenError
	}

	c, err := newClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to create client from token: %w", err)
	}

	c.setToken(token)
	return c, nil
}

// NewClientWithRegistration registers a new agent and returns a client using
// its token. Registration errors are returned unchanged. If only saving the
// token failed the client is returned together with the *TokenPersistError.
func NewClientWithRegistration(ctx context.Context, symbol string, faction Faction, opts ...Option) (*Client, error) {
	c, err := newClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to create client for registration: %w", err)
	}

	if _, err := c.RegisterNewAgent(ctx, symbol, faction); err != nil {
		var persistErr *TokenPersistError
		if errors.As(err, &persistErr) {
			return c, err
		}
		return nil, err
	}

	return c, nil
}

// Token returns the bearer token the client currently authenticates with.
func (c *Client) Token() string {
	return c.token
}

func (c *Client) setToken(token string) {
	c.token = token
	if token == "" {
		c.authClient = nil
		return
	}

	base := c.httpClient.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	c.authClient = &http.Client{
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}),
			Base:   base,
		},
		Timeout: c.httpClient.Timeout,
	}
}

func executeRequest[T any](ctx context.Context, c *Client, method string, path string, authorized bool, body []byte) (T, error) {
	var empty T

	httpClient := c.httpClient
	if authorized {
		if c.authClient == nil {
			return empty, MissingTokenError
		}
		httpClient = c.authClient
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return empty, fmt.Errorf("unable to create a new request with context: %w", err)
	}

	request.Header.Set("Content-Type", "application/json")

	c.logger.Debug("executing request", zap.String("method", method), zap.String("url", request.URL.String()))

	response, err := httpClient.Do(request)
	if err != nil {
		return empty, &NetworkError{Err: err}
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return empty, &NetworkError{Err: err}
	}

	envelope := Envelope[T]{}
	if err := json.Unmarshal(responseBody, &envelope); err != nil {
		c.logger.Warn("unable to decode response",
			zap.Int("status", response.StatusCode),
			zap.ByteString("body", responseBody),
			zap.Error(err),
		)
		if !errors.Is(err, UnableToDecodeResponseError) {
			err = fmt.Errorf("%w: %v", UnableToDecodeResponseError, err)
		}
		return empty, err
	}

	if envelope.Error != nil {
		return empty, &BadRequestError{StatusCode: response.StatusCode, Info: *envelope.Error}
	}

	return *envelope.Data, nil
}

// RegisterNewAgent registers a new agent and saves its token to the config
// file. The client switches to the new token. When the registration worked
// but the token could not be saved, the data is returned together with a
// *TokenPersistError.
func (c *Client) RegisterNewAgent(ctx context.Context, symbol string, faction Faction) (RegistrationData, error) {
	if strings.TrimSpace(symbol) == "" {
		return RegistrationData{}, fmt.Errorf("%w: symbol must not be empty", InvalidAgentSymbolError)
	}
	if !faction.valid() {
		return RegistrationData{}, fmt.Errorf("%w: %s", InvalidFactionError, faction)
	}

	request := RegisterAgentRequest{
		Symbol:  symbol,
		Faction: faction,
	}
	requestJson, err := json.Marshal(request)
	if err != nil {
		return RegistrationData{}, fmt.Errorf("unable to marshal register agent request: %w", err)
	}

	registration, err := executeRequest[RegistrationData](ctx, c, http.MethodPost, "/register", false, requestJson)
	if err != nil {
		return RegistrationData{}, fmt.Errorf("unable to register agent \"%s\": %w", symbol, err)
	}

	c.setToken(registration.Token)

	if err := config.WriteConfigFile(c.configPath, config.Data{Token: registration.Token}); err != nil {
		c.logger.Error("unable to save token after registration",
			zap.String("agent", registration.Agent.Symbol),
			zap.String("path", c.configPath),
			zap.Error(err),
		)
		return registration, &TokenPersistError{Token: registration.Token, Err: err}
	}

	c.logger.Info("registered new agent",
		zap.String("agent", registration.Agent.Symbol),
		zap.Stringer("faction", faction),
	)

	return registration, nil
}

// GetAgentData returns the agent the client's token belongs to.
func (c *Client) GetAgentData(ctx context.Context) (AgentData, error) {
	agent, err := executeRequest[AgentData](ctx, c, http.MethodGet, "/my/agent", true, nil)
	if err != nil {
		return AgentData{}, fmt.Errorf("unable to get agent data: %w", err)
	}

	return agent, nil
}

// GetWaypointLocation returns the location data for a waypoint symbol such
// as "X1-DF55-20250Z".
func (c *Client) GetWaypointLocation(ctx context.Context, waypoint string) (LocationData, error) {
	system, err := SystemFromWaypoint(waypoint)
	if err != nil {
		return LocationData{}, err
	}

	path := fmt.Sprintf("/systems/%s/waypoints/%s", url.PathEscape(system), url.PathEscape(waypoint))
	location, err := executeRequest[LocationData](ctx, c, http.MethodGet, path, true, nil)
	if err != nil {
		return LocationData{}, fmt.Errorf("unable to get waypoint \"%s\": %w", waypoint, err)
	}

	return location, nil
}
