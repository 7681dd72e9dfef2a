package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/goccy/go-json"
	"github.com/medicall/medicall-go/internal/config"
	"github.com/medicall/medicall-go/internal/logging"
	"github.com/medicall/medicall-go/internal/prometheus"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

var ErrServerError = errors.New("remote store server error")

// APIError is returned for any response outside the 2xx range.
type APIError struct {
	Status  int
	Message string
}

func (apiError *APIError) Error() string {
	return apiError.Message
}

func NewAPIError(status int) *APIError {
	return &APIError{
		Status:  status,
		Message: fmt.Sprintf("API error: %d %s", status, http.StatusText(status)),
	}
}

// Params holds query parameters. Keys with empty values are omitted from
// the query string entirely rather than sent as empty parameters.
type Params map[string]string

type Client struct {
	BaseUrl        string
	HTTPClient     *http.Client
	CircuitBreaker *gobreaker.CircuitBreaker[[]byte]
}

func NewClient(baseUrl string) *Client {
	cbSettings := gobreaker.Settings{
		Name:     "RemoteStore",
		Interval: time.Duration(config.Conf.APIIntervalCB) * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= config.Conf.APIConsecutiveFailuresCB
		},
		OnStateChange: func(name string, fromState, toState gobreaker.State) {
			logging.Logger.Info("Circuit state changed",
				zap.String("service", name),
				zap.String("from", fromState.String()),
				zap.String("to", toState.String()),
			)
		},
	}

	return &Client{
		BaseUrl: baseUrl,
		HTTPClient: &http.Client{
			Timeout: time.Duration(config.Conf.APITimeout) * time.Second,
		},
		CircuitBreaker: gobreaker.NewCircuitBreaker[[]byte](cbSettings),
	}
}

// Get issues a GET request and returns the raw response body.
func (client *Client) Get(ctx context.Context, path string, params Params) ([]byte, error) {
	return client.request(ctx, http.MethodGet, path+buildQuery(params), nil)
}

// Patch issues a PATCH request with an optional JSON body.
func (client *Client) Patch(ctx context.Context, path string, body any) ([]byte, error) {
	var reqBody []byte

	if body != nil {
		var err error

		reqBody, err = json.Marshal(body)
		if err != nil {
			return nil, err
		}
	}

	return client.request(ctx, http.MethodPatch, path, reqBody)
}

// Delete issues a DELETE request, discarding any response body.
func (client *Client) Delete(ctx context.Context, path string) error {
	_, err := client.request(ctx, http.MethodDelete, path, nil)

	return err
}

// GetBinary fetches a non-JSON payload such as the PDF report stream.
func (client *Client) GetBinary(ctx context.Context, path string) ([]byte, error) {
	return client.request(ctx, http.MethodGet, path, nil)
}

func buildQuery(params Params) string {
	if len(params) == 0 {
		return ""
	}

	keys := make([]string, 0, len(params))

	for key, value := range params {
		if value == "" {
			continue
		}

		keys = append(keys, key)
	}

	if len(keys) == 0 {
		return ""
	}

	sort.Strings(keys)

	var builder strings.Builder

	for idx, key := range keys {
		if idx == 0 {
			builder.WriteByte('?')
		} else {
			builder.WriteByte('&')
		}

		builder.WriteString(url.QueryEscape(key))
		builder.WriteByte('=')
		builder.WriteString(url.QueryEscape(params[key]))
	}

	return builder.String()
}

func (client *Client) request(ctx context.Context, method, path string, reqBody []byte) ([]byte, error) {
	timer := prometheus.NewRequestTimer(method)
	defer timer.ObserveDuration()

	var (
		body       []byte
		statusCode int
	)

	result, err := client.CircuitBreaker.Execute(func() ([]byte, error) {
		err := retry.Do(
			func() error {
				var err error

				body, statusCode, err = client.do(ctx, method, path, reqBody)
				if err != nil {
					return err
				}

				if statusCode >= http.StatusInternalServerError {
					return ErrServerError
				}

				return nil
			},
			retry.Attempts(config.Conf.APIRetryMaxAttempts),
			retry.DelayType(retry.BackOffDelay),
			retry.Delay(time.Duration(config.Conf.APIRetryMinBackoff)*time.Second),
			retry.MaxDelay(time.Duration(config.Conf.APIRetryMaxBackoff)*time.Second),
		)
		if err != nil {
			return nil, err
		}

		return body, nil
	})
	if err != nil {
		if statusCode >= http.StatusInternalServerError {
			return nil, NewAPIError(statusCode)
		}

		return nil, err
	}

	if statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices {
		return nil, NewAPIError(statusCode)
	}

	return result, nil
}

func (client *Client) do(ctx context.Context, method, path string, reqBody []byte) ([]byte, int, error) {
	apiUrl, err := joinUrl(client.BaseUrl, path)
	if err != nil {
		return nil, 0, err
	}

	var bodyReader io.Reader
	if reqBody != nil {
		bodyReader = bytes.NewReader(reqBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, apiUrl, bodyReader)
	if err != nil {
		return nil, 0, err
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := client.HTTPClient.Do(req)
	if err != nil {
		return nil, 0, err
	}

	defer func() {
		cerr := resp.Body.Close()
		if cerr != nil {
			logging.Logger.Error("Failed to close response body", zap.String("error", cerr.Error()))
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}

	return body, resp.StatusCode, nil
}

// joinUrl joins base and path without escaping the query string that may
// already be attached to path.
func joinUrl(base, path string) (string, error) {
	query := ""

	if idx := strings.IndexByte(path, '?'); idx >= 0 {
		query = path[idx:]
		path = path[:idx]
	}

	joined, err := url.JoinPath(base, path)
	if err != nil {
		return "", err
	}

	return joined + query, nil
}
