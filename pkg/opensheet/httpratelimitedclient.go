package opensheet

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

type RateLimitedClient struct {
	httpClient  *http.Client
	lock        sync.Mutex
	endpoints   map[string]*EndpointStats
	defaultWait time.Duration
}

type EndpointStats struct {
	requests   int
	lastStatus int
	lastSeen   time.Time
}

func NewRateLimitedClient(client *http.Client) *RateLimitedClient {
	if client == nil {
		client = &http.Client{}
	}
	return &RateLimitedClient{
		httpClient:  client,
		endpoints:   make(map[string]*EndpointStats),
		defaultWait: 5 * time.Second,
	}
}

// SendWithRetry issues the request, retrying throttled responses and
// transient network errors up to maxRetries times. maxRetries of 0 means
// a single attempt.
func (c *RateLimitedClient) SendWithRetry(req *http.Request, maxRetries int) (*http.Response, error) {
	retryCount := 0
	for {
		resp, err := c.httpClient.Do(req)
		if err == nil {
			c.record(req.URL.Path, resp.StatusCode)
			if resp.StatusCode == http.StatusTooManyRequests {
				if retryCount >= maxRetries {
					resp.Body.Close()
					return nil, fmt.Errorf("throttled and max retries reached")
				}
				delay := c.getRetryDelay(resp, retryCount)
				resp.Body.Close()
				time.Sleep(delay)
				retryCount++
				continue
			}
			return resp, nil
		}

		if isTransient(err) {
			if retryCount >= maxRetries {
				return nil, err
			}
			time.Sleep(c.getRetryDelay(nil, retryCount))
			retryCount++
			continue
		}
		return nil, err
	}
}

// RequestCount reports how many requests were sent to the given path.
func (c *RateLimitedClient) RequestCount(path string) int {
	c.lock.Lock()
	defer c.lock.Unlock()

	info, exists := c.endpoints[path]
	if !exists {
		return 0
	}
	return info.requests
}

func (c *RateLimitedClient) record(path string, status int) {
	c.lock.Lock()
	defer c.lock.Unlock()

	info, exists := c.endpoints[path]
	if !exists {
		info = &EndpointStats{}
		c.endpoints[path] = info
	}
	info.requests++
	info.lastStatus = status
	info.lastSeen = time.Now()
}

func (c *RateLimitedClient) getRetryDelay(resp *http.Response, retry int) time.Duration {
	if resp != nil {
		if val := resp.Header.Get("Retry-After"); val != "" {
			if seconds, err := strconv.Atoi(val); err == nil {
				return time.Duration(seconds) * time.Second
			}
		}
	}
	base := math.Pow(2, float64(retry))
	jitter := rand.Float64()*0.5 + 0.75
	return time.Duration(base*jitter) * time.Second
}

func isTransient(err error) bool {
	return errors.Is(err, http.ErrHandlerTimeout) ||
		strings.Contains(err.Error(), "timeout") ||
		strings.Contains(err.Error(), "connection reset")
}
