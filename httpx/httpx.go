package httpx

import (
	"context"
	"net/http"
	"strconv"

	"github.com/hashnote/tolerance"
)

// Classifier reports whether an HTTP status code counts as a failure.
//
// Pattern: Strategy — caller injects classification logic without modifying
// the adapter.
type Classifier func(statusCode int) bool

// DefaultClassifier treats any status outside the 2xx range as a failure.
func DefaultClassifier(statusCode int) bool {
	return statusCode < http.StatusOK || statusCode > 299
}

// StatusError is returned when the Classifier marks a status code as a
// failure. The original response remains accessible for header/body
// inspection; its body has not been read or closed.
type StatusError struct {
	// Response is the original HTTP response that triggered the error.
	Response   *http.Response
	StatusCode int
}

// Error returns a human-readable description of the status error.
func (e *StatusError) Error() string {
	return "http status " + strconv.Itoa(e.StatusCode)
}

// Client wraps an http.Client with a tolerance suppression policy and HTTP
// status code classification.
//
// Pattern: Adapter — bridges net/http and the tolerance library by
// translating rejected HTTP status codes into suppressible errors.
type Client struct {
	hc  *http.Client
	tol *tolerance.Tolerator[*http.Response]
	cl  Classifier
}

// NewClient creates a Client that executes HTTP requests through a tolerator
// built from the given options. A nil http.Client falls back to
// http.DefaultClient and a nil Classifier to [DefaultClassifier].
//
// Configure the tolerator with a substitute (for example a canned
// *http.Response via tolerance.WithSubstitute) so suppressed failures have
// something to return; without one, a suppressed request yields a nil
// response and a nil error.
func NewClient(
	name string,
	hc *http.Client,
	cl Classifier,
	opts ...any,
) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}

	if cl == nil {
		cl = DefaultClassifier
	}

	return &Client{
		hc:  hc,
		tol: tolerance.New[*http.Response](name, opts...),
		cl:  cl,
	}
}

// Do executes req through the tolerator. Transport errors and responses the
// classifier rejects (surfaced as [*StatusError]) follow the tolerator's
// suppression decision; per-call control works through kwargs on [DoWith].
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	return c.DoWith(req, nil)
}

// DoWith executes req like [Do], passing kwargs to the tolerator's switch —
// for example tolerance.Kwargs{"fail_silently": false} to force propagation
// for one request.
func (c *Client) DoWith(req *http.Request, kwargs tolerance.Kwargs) (*http.Response, error) {
	return c.tol.Call(
		req.Context(),
		func(ctx context.Context, _ tolerance.Args, _ tolerance.Kwargs) (*http.Response, error) {
			resp, err := c.hc.Do(req.WithContext(ctx))
			if err != nil {
				//nolint:wrapcheck // transport error returned as-is
				return nil, err
			}

			if c.cl(resp.StatusCode) {
				return nil, &StatusError{
					Response:   resp,
					StatusCode: resp.StatusCode,
				}
			}

			return resp, nil
		},
		nil,
		kwargs,
	)
}
