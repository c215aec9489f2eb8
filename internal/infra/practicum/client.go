package practicum

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"homework_status_bot/internal/domain/homework"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const maxResponseBodySize = 1 << 20 // 1MB

// Client implements homework.Client against the Practicum homework statuses API.
type Client struct {
	httpClient *http.Client
	endpoint   string
	token      string
	timeout    time.Duration
	logger     *logrus.Entry
}

func NewClient(endpoint, token string, timeout time.Duration, logger *logrus.Entry) *Client {
	return &Client{
		// no client timeout, it is applied per request via context
		httpClient: &http.Client{},
		endpoint:   endpoint,
		token:      token,
		timeout:    timeout,
		logger:     logger,
	}
}

// GetStatuses requests every homework whose status changed since fromDate
// and returns the decoded JSON body. Numbers are decoded as json.Number.
func (c *Client) GetStatuses(ctx context.Context, fromDate int64) (any, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, errors.Wrap(err, "parse endpoint")
	}
	q := u.Query()
	q.Set("from_date", strconv.FormatInt(fromDate, 10))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	req.Header.Set("Authorization", "OAuth "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &homework.EndpointError{Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &homework.EndpointError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize+1))
	if err != nil {
		return nil, &homework.EndpointError{Cause: errors.Wrap(err, "read response body")}
	}
	if len(body) > maxResponseBodySize {
		return nil, errors.Wrapf(homework.ErrMalformedPayload, "response body exceeds %d bytes limit", maxResponseBodySize)
	}
	c.logger.Info(string(body))

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var payload any
	if err := dec.Decode(&payload); err != nil {
		return nil, errors.Wrapf(homework.ErrMalformedPayload, "decode JSON: %v", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.Wrap(homework.ErrMalformedPayload, "unexpected data after JSON value")
	}
	return payload, nil
}
