package transport

import (
	"fmt"
	"io"
	"net/http"
	neturl "net/url"
	"strings"
	"time"

	"github.com/jeerrry/gitc/internal/logging"
	"github.com/jeerrry/gitc/pkg/object"
	"go.uber.org/zap"
)

const (
	responseLimitRefs = 8 << 20  // 8MB
	responseLimitPack = 64 << 20 // 64MB
	userAgent         = "gitc/1.0"
)

// ClientOptions configures a Client.
type ClientOptions struct {
	Timeout     time.Duration
	MaxAttempts int
}

// Client is the HTTPS collaborator for the smart-HTTP wire protocol:
// GET with redirects for ref discovery, POST with a custom content
// type and body for the pack fetch.
type Client struct {
	httpClient  *http.Client
	maxAttempts int
	log         *logging.Logger
}

// NewClient builds a Client with the given options. log may be nil, in
// which case a no-op logger is used.
func NewClient(opts ClientOptions, log *logging.Logger) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	maxAttempts := opts.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	if log == nil {
		log = logging.NewNop()
	}
	return &Client{
		httpClient:  &http.Client{Timeout: timeout},
		maxAttempts: maxAttempts,
		log:         log,
	}
}

// GetRefs performs ref discovery: GET <url>.git/info/refs?service=git-upload-pack,
// following redirects, and returns the raw response body.
func (c *Client) GetRefs(url string) ([]byte, error) {
	refsURL, err := endpointURL(url, ".git/info/refs", "service=git-upload-pack")
	if err != nil {
		return nil, wrapTransportErr(object.KindIO, "client.get_refs", err)
	}
	req, err := http.NewRequest(http.MethodGet, refsURL, nil)
	if err != nil {
		return nil, wrapTransportErr(object.KindIO, "client.get_refs", err)
	}
	req.Header.Set("User-Agent", userAgent)

	c.log.Debug("fetching refs", zap.String("url", refsURL))
	return c.doWithLimit(req, responseLimitRefs)
}

// FetchPack POSTs the want body and returns the raw response body,
// still side-band framed.
func (c *Client) FetchPack(url string, want []byte) ([]byte, error) {
	packURL, err := endpointURL(url, ".git/git-upload-pack", "")
	if err != nil {
		return nil, wrapTransportErr(object.KindIO, "client.fetch_pack", err)
	}
	req, err := http.NewRequest(http.MethodPost, packURL, strings.NewReader(string(want)))
	if err != nil {
		return nil, wrapTransportErr(object.KindIO, "client.fetch_pack", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "application/x-git-upload-pack-request")

	c.log.Debug("fetching pack", zap.String("url", packURL))
	return c.doWithLimit(req, responseLimitPack)
}

func (c *Client) doWithLimit(req *http.Request, limit int64) ([]byte, error) {
	resp, err := retryDo(c.httpClient, req, c.maxAttempts, c.log)
	if err != nil {
		return nil, wrapTransportErr(object.KindIO, "client.request", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, wrapTransportErr(object.KindIO, "client.request", fmt.Errorf("unexpected status %d from %s", resp.StatusCode, req.URL))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, limit))
	if err != nil {
		return nil, wrapTransportErr(object.KindIO, "client.request", err)
	}
	return body, nil
}

// endpointURL appends suffix to base's path (trailing slashes trimmed)
// and sets the query: "https://host/repo" becomes
// "https://host/repo.git/info/refs", and a bare "http://host:port"
// becomes "http://host:port/.git/info/refs".
func endpointURL(base, suffix, query string) (string, error) {
	u, err := neturl.Parse(base)
	if err != nil {
		return "", err
	}
	u.Path = strings.TrimRight(u.Path, "/") + suffix
	u.RawPath = ""
	u.RawQuery = query
	return u.String(), nil
}

func wrapTransportErr(kind object.Kind, op string, err error) *object.Error {
	return &object.Error{Kind: kind, Op: op, Err: err}
}
