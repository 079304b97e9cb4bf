package network

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tubedl/tubedl/log"
	"github.com/tubedl/tubedl/util"
)

var (
	backoffBase = 500 * time.Millisecond
	backoffMax  = 5 * time.Second
)

func backoffFor(attempt int) time.Duration {
	d := backoffBase
	for i := 0; i < attempt; i++ {
		d *= 2
		if d > backoffMax {
			return backoffMax
		}
	}
	return d
}

func waitBackoff(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Get issues a GET and returns the response only if its status is 2xx.
// Transport errors, 429 and 5xx are retried up to retries times with exponential backoff;
// every other status fails immediately with a *StatusError.
// A negative retries counts as zero. The caller owns the returned body.
func Get(ctx context.Context, client *http.Client, rawURL string, header http.Header, retries int) (*http.Response, error) {
	var lastErr error
	retries = util.Max(retries, 0)

	for attempt := 0; attempt <= retries; attempt++ {
		if attempt > 0 {
			d := backoffFor(attempt - 1)
			log.WithFields(logrus.Fields{"url": rawURL, "attempt": attempt, "wait": d}).Warn(lastErr)
			if err := waitBackoff(ctx, d); err != nil {
				return nil, err
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return nil, err
		}
		for k, v := range header {
			req.Header[k] = v
		}

		resp, err := client.Do(req)
		if err != nil {
			// a handshake timing out is retried, the caller giving up is not
			if ctx.Err() != nil {
				return nil, err
			}
			lastErr = err
			continue
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return resp, nil
		}

		util.Ignore(resp.Body.Close)
		statusErr := &StatusError{URL: rawURL, Code: resp.StatusCode}
		if !statusErr.Retryable() {
			return nil, statusErr
		}
		lastErr = statusErr
	}

	return nil, lastErr
}
