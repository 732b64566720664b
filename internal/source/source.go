// Package source talks to the upstream endpoint that serves funding records.
package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/maxviazov/fundtable/internal/model"
)

// DefaultURL is the public JSON document the records are read from.
const DefaultURL = "https://raw.githubusercontent.com/saaslabsco/frontend-assignment/refs/heads/master/frontend-assignment.json"

// ErrFetchFailed marks a non-2xx upstream response. Its text is what users see.
var ErrFetchFailed = errors.New("Failed to fetch data")

// Source fetches the full record set. Implementations must honor ctx cancellation.
type Source interface {
	Fetch(ctx context.Context) ([]model.Record, error)
}

// Config holds the upstream settings.
type Config struct {
	URL     string        `mapstructure:"url" validate:"required,url"`
	Timeout time.Duration `mapstructure:"timeout" validate:"gte=0"`
}

// HTTPSource implements Source with a single unconditional GET.
type HTTPSource struct {
	url    string
	client *http.Client
	log    zerolog.Logger
}

// NewHTTPSource builds a source; a zero timeout means the request is bounded only by ctx.
func NewHTTPSource(cfg Config, logger zerolog.Logger) *HTTPSource {
	url := cfg.URL
	if url == "" {
		url = DefaultURL
	}
	return &HTTPSource{
		url:    url,
		client: &http.Client{Timeout: cfg.Timeout},
		log:    logger.With().Str("module", "source").Str("url", url).Logger(),
	}
}

// URL returns the endpoint this source reads from.
func (s *HTTPSource) URL() string { return s.url }

// Fetch issues the GET and decodes the JSON array body.
func (s *HTTPSource) Fetch(ctx context.Context) ([]model.Record, error) {
	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Error().Err(err).Msg("fetch records failed")
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		s.log.Warn().Int("status", resp.StatusCode).Msg("upstream returned non-ok status")
		return nil, fmt.Errorf("%w: status %d", ErrFetchFailed, resp.StatusCode)
	}

	var records []model.Record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		s.log.Error().Err(err).Msg("decode records failed")
		return nil, err
	}
	if records == nil {
		records = []model.Record{}
	}

	s.log.Debug().Int("count", len(records)).Dur("took", time.Since(start)).Msg("records fetched")
	return records, nil
}

// Ping checks that the upstream answers a HEAD request with a non-5xx status.
func (s *HTTPSource) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, s.url, nil)
	if err != nil {
		return err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("upstream unavailable: status %d", resp.StatusCode)
	}
	return nil
}
