package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DatasetService proxies the external yoga pose dataset. The payload is
// relayed verbatim; clients cross-reference suggestions against it by English
// and Sanskrit name.
type DatasetService struct {
	url    string
	client *http.Client
}

func NewDatasetService(url string) *DatasetService {
	return &DatasetService{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *DatasetService) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create dataset request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call pose dataset: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pose dataset API error %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}
