package hoyolab

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"

	"github.com/aurceive/genshin-dashboard/internal/session"
)

// Endpoint discriminators understood by the proxy. Account discovery sends none.
const (
	EndpointAccounts        = ""
	EndpointDetails         = "details"
	EndpointAchievements    = "achievements"
	EndpointCharacterDetail = "character_detail"
	EndpointSpiralAbyss     = "spiral_abyss"
	EndpointHardChallenge   = "hard_challenge"
	EndpointRoleCombat      = "role_combat"
)

type ScheduleType int

const (
	ScheduleCurrent  ScheduleType = 1
	SchedulePrevious ScheduleType = 2
)

const (
	defaultTimeout   = 25 * time.Second
	defaultUserAgent = "genshin-dashboard"
	maxBodyBytes     = 16 << 20
)

// Client talks to the multiplexed HoYoLab proxy endpoint. It holds the session
// credentials it was built with; a client without credentials refuses every call.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	timeout    time.Duration
	creds      session.Credentials
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if strings.TrimSpace(ua) != "" {
			c.userAgent = ua
		}
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

func NewClient(baseURL string, creds session.Credentials, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    strings.TrimSpace(baseURL),
		userAgent:  defaultUserAgent,
		creds:      creds,
	}
	for _, opt := range opts {
		opt(c)
	}
	// Copy so a caller-supplied client is never mutated.
	if c.timeout > 0 {
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}
	return c
}

func (c *Client) Accounts(ctx context.Context) (AccountList, error) {
	var out AccountList
	err := c.call(ctx, http.MethodGet, EndpointAccounts, nil, nil, &out)
	return out, err
}

func (c *Client) Details(ctx context.Context, server, roleID string) (DetailsData, error) {
	var out DetailsData
	err := c.call(ctx, http.MethodGet, EndpointDetails, roleParams(server, roleID), nil, &out)
	return out, err
}

func (c *Client) Achievements(ctx context.Context, server, roleID string) (AchievementList, error) {
	var out AchievementList
	body := map[string]any{"server": server, "role_id": roleID}
	err := c.call(ctx, http.MethodPost, EndpointAchievements, roleParams(server, roleID), body, &out)
	return out, err
}

// CharacterDetails fetches every requested character in one batched call.
func (c *Client) CharacterDetails(ctx context.Context, server, roleID string, characterIDs []string) (CharacterDetailBatch, error) {
	ids := make([]int, 0, len(characterIDs))
	for _, raw := range characterIDs {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			continue
		}
		ids = append(ids, n)
	}
	body := map[string]any{"server": server, "role_id": roleID, "character_ids": ids}

	var out CharacterDetailBatch
	err := c.call(ctx, http.MethodPost, EndpointCharacterDetail, roleParams(server, roleID), body, &out)
	return out, err
}

func (c *Client) SpiralAbyss(ctx context.Context, server, roleID string, schedule ScheduleType) (SpiralAbyss, error) {
	if schedule != SchedulePrevious {
		schedule = ScheduleCurrent
	}
	params := roleParams(server, roleID)
	params.Set("schedule_type", strconv.Itoa(int(schedule)))

	var out SpiralAbyss
	err := c.call(ctx, http.MethodGet, EndpointSpiralAbyss, params, nil, &out)
	return out, err
}

func (c *Client) HardChallenge(ctx context.Context, server, roleID string) (HardChallenge, error) {
	var out HardChallenge
	err := c.call(ctx, http.MethodGet, EndpointHardChallenge, roleParams(server, roleID), nil, &out)
	return out, err
}

func (c *Client) RoleCombat(ctx context.Context, server, roleID string) (RoleCombat, error) {
	var out RoleCombat
	err := c.call(ctx, http.MethodGet, EndpointRoleCombat, roleParams(server, roleID), nil, &out)
	return out, err
}

func roleParams(server, roleID string) url.Values {
	v := url.Values{}
	v.Set("server", server)
	v.Set("role_id", roleID)
	return v
}

func (c *Client) call(ctx context.Context, method, endpoint string, params url.Values, body any, out any) error {
	if !c.creds.Valid() {
		return ErrNoCredentials
	}

	u, err := url.Parse(c.baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return &TransportError{Endpoint: endpoint, Err: fmt.Errorf("invalid proxy url %q", c.baseURL)}
	}
	q := u.Query()
	if endpoint != EndpointAccounts {
		q.Set("endpoint", endpoint)
	}
	for k, vs := range params {
		q[k] = vs
	}
	q.Set("ltoken", c.creds.LToken)
	q.Set("ltuid", c.creds.LTUID)
	u.RawQuery = q.Encode()

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return &TransportError{Endpoint: endpoint, Err: err}
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cookie", fmt.Sprintf("ltoken_v2=%s; ltuid_v2=%s", c.creds.LToken, c.creds.LTUID))
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return &TransportError{Endpoint: endpoint, Err: err}
	}

	log.Debug().
		Str("endpoint", endpointLabel(endpoint)).
		Int("status", resp.StatusCode).
		Int("bytes", len(raw)).
		Dur("elapsed", time.Since(started)).
		Msg("hoyolab request")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// The proxy sometimes relays the aggregator envelope with an error status.
		if rc := gjson.GetBytes(raw, "retcode"); gjson.ValidBytes(raw) && rc.Exists() && rc.Int() != 0 {
			return remoteError(endpoint, raw)
		}
		snippet := raw
		if len(snippet) > 4<<10 {
			snippet = snippet[:4<<10]
		}
		return &TransportError{Endpoint: endpoint, Err: fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))}
	}

	return decodeEnvelope(endpoint, raw, out)
}

// decodeEnvelope validates {retcode, message, data} and decodes data into out.
func decodeEnvelope(endpoint string, raw []byte, out any) error {
	if !gjson.ValidBytes(raw) {
		return &TransportError{Endpoint: endpoint, Err: fmt.Errorf("%w: invalid json", ErrMalformed)}
	}
	env := gjson.ParseBytes(raw)
	rc := env.Get("retcode")
	if !rc.Exists() {
		return &TransportError{Endpoint: endpoint, Err: fmt.Errorf("%w: missing retcode", ErrMalformed)}
	}
	if rc.Int() != 0 {
		return remoteError(endpoint, raw)
	}

	data := env.Get("data")
	if !data.Exists() || data.Type == gjson.Null {
		return &TransportError{Endpoint: endpoint, Err: fmt.Errorf("%w: missing data", ErrMalformed)}
	}
	if err := json.Unmarshal([]byte(data.Raw), out); err != nil {
		return &TransportError{Endpoint: endpoint, Err: fmt.Errorf("%w: %v", ErrMalformed, err)}
	}
	return nil
}

func remoteError(endpoint string, raw []byte) *RemoteError {
	env := gjson.ParseBytes(raw)
	return &RemoteError{
		Endpoint: endpoint,
		Retcode:  int(env.Get("retcode").Int()),
		Message:  strings.TrimSpace(env.Get("message").String()),
	}
}

func endpointLabel(endpoint string) string {
	if endpoint == EndpointAccounts {
		return "accounts"
	}
	return endpoint
}
