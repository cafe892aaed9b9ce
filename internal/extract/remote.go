package extract

import (
	"bytes"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	"github.com/IMSLEPT/quizlo/internal/constants"
	"github.com/IMSLEPT/quizlo/internal/models"
)

var client = &http.Client{
	Timeout:   constants.HttpTimeout,
	Transport: models.OptimizedTransport(),
}

func remotePages(url string) ([]string, error) {
	body, err := fetchURL(url)
	if err != nil {
		return nil, err
	}
	return htmlPagesFromReader(bytes.NewReader(body))
}

func fetchURL(url string) ([]byte, error) {
	backoff := constants.InitialBackoff
	var lastErr error

	for attempt := 0; attempt <= constants.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := backoff + time.Duration(rand.Intn(500))*time.Millisecond
			debugf("retry attempt %d for URL %s after waiting %v", attempt, url, delay)
			time.Sleep(delay)
			backoff = time.Duration(float64(backoff) * constants.BackoffFactor)
		}

		resp, err := client.Get(url)
		if err != nil {
			lastErr = err
			debugf("failed to fetch URL (attempt %d): %v", attempt, err)
			continue
		}

		if resp.StatusCode == http.StatusOK {
			body, err := io.ReadAll(resp.Body)
			resp.Body.Close()
			if err != nil {
				return nil, fmt.Errorf("read response body: %w", err)
			}
			return body, nil
		}
		resp.Body.Close()

		if resp.StatusCode != http.StatusServiceUnavailable {
			return nil, fmt.Errorf("request for %q failed with status %d", url, resp.StatusCode)
		}
		lastErr = fmt.Errorf("status %d", resp.StatusCode)
	}

	return nil, fmt.Errorf("exhausted retries for %q: %v", url, lastErr)
}
