package roster

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cetteup/puppybowl/internal/domain/player"
)

const (
	BaseURL = "https://fsa-puppy-bowl.herokuapp.com/api/"

	DefaultTimeout   = 10 * time.Second
	DefaultUserAgent = "puppybowl"

	playersPath = "players"
)

type Config struct {
	BaseURL string
	Cohort  string
	Timeout time.Duration
}

// Client Stateless client for the players collection endpoint, holding nothing but its root URL
type Client struct {
	baseURL string

	modifiers []RequestModifier

	client *http.Client
}

func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = BaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}
	if cfg.Cohort != "" {
		if u, err := url.JoinPath(baseURL, cfg.Cohort); err == nil {
			c.baseURL = u
		}
	}

	return c
}

func (c *Client) WithModifier(modifiers ...RequestModifier) *Client {
	c.modifiers = append(c.modifiers, modifiers...)
	return c
}

func (c *Client) List(ctx context.Context) ([]player.Player, error) {
	req, err := c.newRequest(ctx, http.MethodGet, nil, playersPath)
	if err != nil {
		return nil, err
	}

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	data, err := decodeEnvelope[PlayersData](body)
	if err != nil {
		return nil, err
	}

	players := make([]player.Player, 0, len(data.Players))
	for _, dto := range data.Players {
		players = append(players, dto.decode())
	}

	return players, nil
}

func (c *Client) Get(ctx context.Context, id int) (player.Player, error) {
	req, err := c.newRequest(ctx, http.MethodGet, nil, playersPath, strconv.Itoa(id))
	if err != nil {
		return player.Player{}, err
	}

	body, err := c.do(req)
	if err != nil {
		var reqErr *RequestError
		if errors.As(err, &reqErr) && reqErr.StatusCode() == http.StatusNotFound {
			return player.Player{}, fmt.Errorf("%w: %w", player.ErrPlayerNotFound, err)
		}
		return player.Player{}, err
	}

	data, err := decodeEnvelope[PlayerData](body)
	if err != nil {
		return player.Player{}, err
	}

	if data.Player == nil {
		return player.Player{}, player.ErrPlayerNotFound
	}

	return data.Player.decode(), nil
}

func (c *Client) Create(ctx context.Context, draft player.Draft) (player.Player, error) {
	payload, err := json.Marshal(encodeDraft(draft))
	if err != nil {
		return player.Player{}, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, bytes.NewReader(payload), playersPath)
	if err != nil {
		return player.Player{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := c.do(req)
	if err != nil {
		return player.Player{}, err
	}

	data, err := decodeEnvelope[PlayerData](body)
	if err != nil {
		return player.Player{}, err
	}

	// Depending on the API version, the created player is returned as newPlayer, player or as is
	switch {
	case data.NewPlayer != nil:
		return data.NewPlayer.decode(), nil
	case data.Player != nil:
		return data.Player.decode(), nil
	}

	var dto PlayerDTO
	if err = json.Unmarshal(body, &dto); err != nil {
		return player.Player{}, fmt.Errorf("failed to decode created player: %w", err)
	}
	if dto.ID == 0 {
		return player.Player{}, errors.New("response did not contain created player")
	}

	return dto.decode(), nil
}

func (c *Client) Delete(ctx context.Context, id int) error {
	req, err := c.newRequest(ctx, http.MethodDelete, nil, playersPath, strconv.Itoa(id))
	if err != nil {
		return err
	}

	body, err := c.do(req)
	if err != nil {
		var reqErr *RequestError
		if errors.As(err, &reqErr) && reqErr.StatusCode() == http.StatusNotFound {
			return fmt.Errorf("%w: %w", player.ErrPlayerNotFound, err)
		}
		return err
	}

	// No body required, but an error envelope still means the player was not removed
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	var resp envelope[json.RawMessage]
	if err = json.Unmarshal(body, &resp); err != nil {
		return nil
	}

	return resp.err()
}

func (c *Client) newRequest(ctx context.Context, method string, body io.Reader, elem ...string) (*http.Request, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, err
	}

	u = u.JoinPath(elem...)

	return http.NewRequestWithContext(ctx, method, u.String(), body)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	req.Header.Set("User-Agent", DefaultUserAgent)
	req.Header.Set("Accept", "application/json")

	for _, modifier := range c.modifiers {
		if err := modifier.Modify(req); err != nil {
			return nil, err
		}
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	if !isSuccessStatusCode(res.StatusCode) {
		return nil, newRequestError(req.URL, res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	return body, nil
}

func decodeEnvelope[T any](body []byte) (T, error) {
	var resp envelope[T]
	if err := json.Unmarshal(body, &resp); err != nil {
		var zero T
		return zero, fmt.Errorf("failed to decode response: %w", err)
	}

	if err := resp.err(); err != nil {
		var zero T
		return zero, err
	}

	if resp.Data == nil {
		var zero T
		return zero, nil
	}

	return *resp.Data, nil
}

func (e envelope[T]) err() error {
	if e.Success != nil && !*e.Success {
		apiErr := &APIError{Message: "request was not successful"}
		if e.Error != nil {
			apiErr.Name = e.Error.Name
			apiErr.Message = e.Error.Message
		}
		return apiErr
	}

	return nil
}

func isSuccessStatusCode(statusCode int) bool {
	return statusCode >= http.StatusOK && statusCode <= http.StatusIMUsed
}
