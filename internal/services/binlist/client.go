// Package binlist resolves card numbers to their issuing country through
// the binlist.net lookup API.
package binlist

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	pkgerrors "github.com/pkg/errors"
	logger "github.com/sirupsen/logrus"
)

const DefaultBaseURL = "https://lookup.binlist.net/"

// maxErrorBody caps how much of a 4xx body is copied into an error message.
const maxErrorBody = 512

// Resolver is the lookup contract the cost service depends on.
type Resolver interface {
	ResolveCountry(ctx context.Context, cardNumber string) (string, error)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a Client for baseURL. A nil httpClient means http.DefaultClient,
// so no timeout is applied beyond what the caller's context imposes.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

type lookupResponse struct {
	Country *struct {
		Alpha2 *string `json:"alpha2"`
	} `json:"country"`
}

// ResolveCountry returns the ISO alpha-2 code of the country that issued
// cardNumber, exactly as reported by the remote service. Any failure is a
// *LookupError. The call is made once; there are no retries.
func (c *Client) ResolveCountry(ctx context.Context, cardNumber string) (string, error) {
	code, err := c.resolve(ctx, cardNumber)
	if err != nil {
		var lerr *LookupError
		if !pkgerrors.As(err, &lerr) {
			lerr = &LookupError{Kind: KindInternal, Message: err.Error()}
		}
		logger.WithFields(logger.Fields{
			"kind":    lerr.Kind.String(),
			"message": lerr.Message,
		}).Error("BIN lookup failed")
		return "", lerr
	}
	return code, nil
}

func (c *Client) resolve(ctx context.Context, cardNumber string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+cardNumber, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Version", "3")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// url.Error embeds the request URL, which contains the card number.
		var uerr *url.Error
		if pkgerrors.As(err, &uerr) {
			return "", uerr.Err
		}
		return "", err
	}
	defer resp.Body.Close()

	if err := classifyStatus(resp); err != nil {
		return "", err
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", pkgerrors.Wrap(err, "failed to decode lookup response")
	}
	if body.Country == nil {
		return "", &LookupError{Kind: KindNotFound, Message: "Country not found"}
	}
	if body.Country.Alpha2 == nil {
		return "", pkgerrors.New("lookup response country has no alpha2 code")
	}
	return *body.Country.Alpha2, nil
}

func classifyStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return &LookupError{Kind: KindNotFound, Message: resp.Status}
	case resp.StatusCode == http.StatusTooManyRequests:
		return &LookupError{Kind: KindRateLimited, Message: resp.Status}
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		message := resp.Status
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		if detail := strings.TrimSpace(string(body)); detail != "" {
			message += ": " + detail
		}
		return &LookupError{Kind: KindBadRequest, Message: message}
	default:
		return &LookupError{Kind: KindInternal, Message: resp.Status}
	}
}
