package hotelapi

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/Domenick1991/sunshinehotel/internal/domain"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// ErrUnavailable wraps transport failures: the hotel API could not be reached at all.
var ErrUnavailable = errors.New("hotel service is unavailable, please try again later")

// APIError is a non-success answer from the hotel API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Client talks to the hotel REST API. It never retries: a failed call is reported once.
type Client struct {
	http *resty.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return NewClientWithHTTP(baseURL, timeout, nil)
}

// NewClientWithHTTP lets callers supply the underlying *http.Client (tests, custom transports).
func NewClientWithHTTP(baseURL string, timeout time.Duration, hc *http.Client) *Client {
	var rc *resty.Client
	if hc != nil {
		rc = resty.NewWithClient(hc)
	} else {
		rc = resty.New()
	}
	rc.SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")
	return &Client{http: rc}
}

func (c *Client) request(ctx context.Context) *resty.Request {
	return c.http.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", uuid.NewString()).
		SetError(&errorBody{})
}

func (c *Client) authRequest(ctx context.Context, sess *domain.Session) (*resty.Request, error) {
	if !sess.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}
	return c.request(ctx).SetAuthToken(sess.Token), nil
}

// check turns a resty outcome into the package error taxonomy. Only a failure to get any
// HTTP response is ErrUnavailable; an answer whose body cannot be decoded is an APIError.
func check(resp *resty.Response, err error, fallback string) error {
	if err != nil {
		if resp == nil || resp.RawResponse == nil {
			return fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		log.Printf("hotel api %s %s: undecodable response (status %d): %v",
			resp.Request.Method, resp.Request.URL, resp.StatusCode(), err)
		status := resp.StatusCode()
		if !resp.IsError() {
			status = http.StatusBadGateway
		}
		return &APIError{StatusCode: status, Message: fallback}
	}
	if !resp.IsError() {
		return nil
	}
	msg := fallback
	if body, ok := resp.Error().(*errorBody); ok && body != nil {
		if body.Message != "" {
			msg = body.Message
		} else if body.Error != "" {
			msg = body.Error
		}
	}
	return &APIError{StatusCode: resp.StatusCode(), Message: msg}
}

type messageResponse struct {
	Message string `json:"message"`
}

func orDefault(msg, fallback string) string {
	if msg == "" {
		return fallback
	}
	return msg
}
