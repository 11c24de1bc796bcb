package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Client клиент геокодера OpenStreetMap Nominatim
type Client struct {
	cfg        Config
	httpClient *http.Client
	limiter    *rate.Limiter
	log        Logger
}

// NewClient создает новый экземпляр клиента Nominatim
func NewClient(cfg Config, log Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 1
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.Limit <= 0 {
		cfg.Limit = 10
	}

	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1),
		log:     log,
	}
}

// Search ищет адреса в зоне обслуживания
// postcode (5 цифр) добавляется к строке поиска
func (c *Client) Search(ctx context.Context, query, postcode string) ([]Address, error) {
	query = strings.TrimSpace(query)
	if len(query) < MinQueryLength {
		return nil, fmt.Errorf("%w: query must contain at least %d characters", ErrInvalidQuery, MinQueryLength)
	}

	searchQuery := query
	if postcode = strings.TrimSpace(postcode); isPostcode(postcode) {
		searchQuery += ", " + postcode
	}

	params := url.Values{}
	params.Set("format", "json")
	params.Set("q", searchQuery)
	params.Set("addressdetails", "1")
	params.Set("limit", strconv.Itoa(c.cfg.Limit))
	if c.cfg.CountryCodes != "" {
		params.Set("countrycodes", c.cfg.CountryCodes)
	}
	if len(c.cfg.ViewBox) == 4 {
		params.Set("viewbox", formatViewBox(c.cfg.ViewBox))
		params.Set("bounded", "1")
	}

	var places []place
	if err := c.get(ctx, "/search", params, &places); err != nil {
		return nil, err
	}

	result := make([]Address, 0, MaxSuggestions)
	for _, p := range places {
		if !isUsable(p, query) {
			continue
		}
		result = append(result, toAddress(p, c.cfg.State))
		if len(result) == MaxSuggestions {
			break
		}
	}

	c.log.Info("Search: query=%q, received=%d, returned=%d", searchQuery, len(places), len(result))
	return result, nil
}

// Reverse определяет адрес по координатам
func (c *Client) Reverse(ctx context.Context, lat, lon float64) (*Address, error) {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return nil, fmt.Errorf("%w: coordinates out of range", ErrInvalidQuery)
	}

	params := url.Values{}
	params.Set("format", "json")
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("addressdetails", "1")

	var p place
	if err := c.get(ctx, "/reverse", params, &p); err != nil {
		return nil, err
	}
	if p.Error != "" || p.Address == nil {
		c.log.Info("Reverse: no address for lat=%f, lon=%f", lat, lon)
		return nil, ErrNotFound
	}

	addr := toAddress(p, c.cfg.State)
	return &addr, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	// Ожидаем разрешения лимитера
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: rate limiter: %v", ErrInternal, err)
	}

	reqURL := c.cfg.BaseURL + path + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("Nominatim request %s failed: %v", path, err)
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.log.Warn("Nominatim request %s returned status %d", path, resp.StatusCode)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}

func formatViewBox(box []float64) string {
	parts := make([]string, len(box))
	for i, v := range box {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}
