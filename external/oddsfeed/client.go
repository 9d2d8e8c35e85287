package oddsfeed

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/domain/game"
	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/platform/logging"
	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/platform/resilience"
	"github.com/brendanpatter-netizen/weekendlocks-sub000/internal/usecase"
)

const (
	defaultBaseURL = "https://api.the-odds-api.com/v4"
	defaultRegions = "us"
	defaultMarkets = "spreads,totals,h2h"

	maxResponseBytes = 6 << 20
)

var sportKeys = map[game.Sport]string{
	game.SportNFL: "americanfootball_nfl",
	game.SportCFB: "americanfootball_ncaaf",
}

var apiKeyParamRegex = regexp.MustCompile(`apiKey=[^&\s"']+`)
var errOddsFeedTransient = crerr.New("odds feed transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	APIKey         string
	Regions        string
	Markets        string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client fetches upcoming matchups and prices from The Odds API.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	regions        string
	markets        string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	regions := strings.TrimSpace(cfg.Regions)
	if regions == "" {
		regions = defaultRegions
	}
	markets := strings.TrimSpace(cfg.Markets)
	if markets == "" {
		markets = defaultMarkets
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		apiKey:         strings.TrimSpace(cfg.APIKey),
		regions:        regions,
		markets:        markets,
		maxRetries:     maxInt(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// Events returns the current odds board for one sport, mapped into feed
// events. Events whose commence time cannot be parsed are skipped with a
// warning rather than failing the whole board.
func (c *Client) Events(ctx context.Context, sport game.Sport) ([]usecase.FeedEvent, error) {
	sportKey, ok := sportKeys[sport]
	if !ok {
		return nil, fmt.Errorf("%w: no feed sport key for %q", usecase.ErrInvalidInput, sport)
	}

	var payload []oddsEventPayload
	if err := c.doJSON(ctx, "/sports/"+sportKey+"/odds", map[string]string{
		"regions":    c.regions,
		"markets":    c.markets,
		"oddsFormat": "american",
		"dateFormat": "iso",
	}, &payload); err != nil {
		return nil, err
	}

	out := make([]usecase.FeedEvent, 0, len(payload))
	for _, item := range payload {
		commence, err := time.Parse(time.RFC3339, item.CommenceTime)
		if err != nil {
			c.logger.WarnContext(ctx, "skip odds event with bad commence time",
				"event_id", item.ID,
				"commence_time", item.CommenceTime,
			)
			continue
		}
		out = append(out, usecase.FeedEvent{
			ExternalID:   item.ID,
			Sport:        sport,
			HomeTeam:     item.HomeTeam,
			AwayTeam:     item.AwayTeam,
			CommenceTime: commence.UTC(),
			Bookmakers:   mapBookmakers(ctx, c.logger, item),
		})
	}
	return out, nil
}

func mapBookmakers(ctx context.Context, logger *logging.Logger, item oddsEventPayload) []usecase.FeedBookmaker {
	out := make([]usecase.FeedBookmaker, 0, len(item.Bookmakers))
	for _, bm := range item.Bookmakers {
		mapped := usecase.FeedBookmaker{
			Key:     bm.Key,
			Title:   bm.Title,
			Markets: make([]usecase.FeedMarket, 0, len(bm.Markets)),
		}
		if bm.LastUpdate != "" {
			if ts, err := time.Parse(time.RFC3339, bm.LastUpdate); err == nil {
				mapped.LastUpdate = ts.UTC()
			} else {
				logger.DebugContext(ctx, "unparseable bookmaker last update",
					"event_id", item.ID,
					"bookmaker", bm.Key,
				)
			}
		}
		for _, market := range bm.Markets {
			outcomes := make([]usecase.FeedOutcome, 0, len(market.Outcomes))
			for _, outcome := range market.Outcomes {
				mappedOutcome := usecase.FeedOutcome{
					Name:  outcome.Name,
					Price: int(outcome.Price),
				}
				if outcome.Point != nil {
					point := *outcome.Point
					mappedOutcome.Point = &point
				}
				outcomes = append(outcomes, mappedOutcome)
			}
			mapped.Markets = append(mapped.Markets, usecase.FeedMarket{
				Key:      market.Key,
				Outcomes: outcomes,
			})
		}
		out = append(out, mapped)
	}
	return out
}

func (c *Client) doJSON(ctx context.Context, path string, query map[string]string, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "odds feed circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: odds provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}
	values.Set("apiKey", c.apiKey)

	fullURL := c.baseURL + path + "?" + values.Encode()

	key := path + "?" + values.Encode()
	out, err, _ := c.flight.Do(key, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && isOddsFeedCircuitFailure(reqErr) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode odds payload: %w", err)
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %s", errOddsFeedTransient, sanitizeSensitiveText(err.Error(), c.apiKey))
		} else {
			raw, readErr := readBody(resp.Body)
			_ = resp.Body.Close()
			if readErr != nil {
				lastErr = fmt.Errorf("%w: read response body: %v", errOddsFeedTransient, readErr)
			} else if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return raw, nil
			} else if isRetryableStatus(resp.StatusCode) {
				lastErr = fmt.Errorf("%w: provider status=%d body=%s", errOddsFeedTransient, resp.StatusCode, abbreviateBody(raw))
			} else {
				return nil, fmt.Errorf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("provider request failed")
	}
	c.logger.WarnContext(ctx, "odds feed request failed", "url", redactAPIURL(fullURL), "error", lastErr)
	return nil, lastErr
}

func readBody(body io.Reader) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if _, err := io.Copy(buf, io.LimitReader(body, maxResponseBytes)); err != nil {
		return nil, err
	}
	return append([]byte(nil), buf.B...), nil
}

func isOddsFeedCircuitFailure(err error) bool {
	return stderrors.Is(err, errOddsFeedTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func sanitizeSensitiveText(value, apiKey string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	if apiKey != "" {
		value = strings.ReplaceAll(value, apiKey, "REDACTED")
	}
	return apiKeyParamRegex.ReplaceAllString(value, "apiKey=REDACTED")
}

func redactAPIURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	query := parsed.Query()
	if query.Has("apiKey") {
		query.Set("apiKey", "REDACTED")
		parsed.RawQuery = query.Encode()
	}
	return parsed.String()
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

func maxInt(left, right int) int {
	if left > right {
		return left
	}
	return right
}
