package transport

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/jeerrry/gitc/internal/logging"
)

// isRetryableStatus reports whether a response status warrants another
// attempt: 429 or any 5xx. A successful response or a non-429 4xx is
// final on the first try.
func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= 500
}

// retryDo executes an HTTP request with exponential backoff, retrying
// on network errors and on isRetryableStatus responses. A request body
// is buffered up front so it can be replayed on every attempt. log may
// be nil.
func retryDo(client *http.Client, req *http.Request, maxAttempts int, log *logging.Logger) (*http.Response, error) {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	if log == nil {
		log = logging.NewNop()
	}

	var bodyBytes []byte
	if req.Body != nil {
		var err error
		bodyBytes, err = io.ReadAll(req.Body)
		if err != nil {
			return nil, err
		}
		req.Body.Close()
	}

	var lastResp *http.Response
	var lastErr error
	backoff := time.Second

	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			log.Debug("retrying request", zap.String("url", req.URL.String()), zap.Int("attempt", attempt+1))
			time.Sleep(backoff)
			backoff *= 2
		}

		if bodyBytes != nil {
			req.Body = io.NopCloser(bytes.NewReader(bodyBytes))
			req.ContentLength = int64(len(bodyBytes))
		}

		resp, err := client.Do(req)
		if err != nil {
			lastErr, lastResp = err, nil
			continue
		}
		if !isRetryableStatus(resp.StatusCode) {
			return resp, nil
		}

		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		lastResp, lastErr = resp, nil
	}

	if lastErr != nil {
		return nil, lastErr
	}
	return lastResp, nil
}
