package inputs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/danmuck/aocctl/internal/observability"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	DefaultRoot    = "local/inputs"
	DefaultBaseURL = "https://adventofcode.com"
	DefaultYear    = 2023
	userAgent      = "github.com/danmuck/aocctl"
)

var (
	ErrNoSession   = errors.New("input not cached and no session token configured")
	ErrInvalidDay  = errors.New("invalid puzzle day")
	ErrFetchFailed = errors.New("input fetch failed")
)

// Config describes where inputs live and how to fetch missing ones.
type Config struct {
	Root     string
	Year     int
	Session  string
	BaseURL  string
	Timeout  time.Duration
	Attempts int
	Backoff  BackoffConfig
	Client   *http.Client
	Logger   *zerolog.Logger
}

// Store is a disk cache in front of the puzzle input endpoint.
type Store struct {
	root     string
	year     int
	session  string
	baseURL  string
	attempts int
	backoff  BackoffConfig
	client   *http.Client
	rng      *rand.Rand
	logger   zerolog.Logger
}

func NewStore(cfg Config) *Store {
	if strings.TrimSpace(cfg.Root) == "" {
		cfg.Root = DefaultRoot
	}
	if cfg.Year <= 0 {
		cfg.Year = DefaultYear
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Attempts <= 0 {
		cfg.Attempts = 3
	}
	if cfg.Backoff == (BackoffConfig{}) {
		cfg.Backoff = DefaultBackoff()
	}
	client := cfg.Client
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}
	logger := log.Logger
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}
	return &Store{
		root:     cfg.Root,
		year:     cfg.Year,
		session:  strings.TrimSpace(cfg.Session),
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		attempts: cfg.Attempts,
		backoff:  cfg.Backoff,
		client:   client,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:   logger.With().Str("component", "inputs").Logger(),
	}
}

// Path returns the cache file for a day.
func (s *Store) Path(day int) string {
	return filepath.Join(s.root, fmt.Sprintf("day%02d.txt", day))
}

// Cached reports whether an input is already on disk.
func (s *Store) Cached(day int) bool {
	_, err := os.Stat(s.Path(day))
	return err == nil
}

// Load returns the cached input, fetching and caching it on a miss.
func (s *Store) Load(ctx context.Context, day int) (string, error) {
	if day < 1 || day > 25 {
		return "", fmt.Errorf("%w: %d", ErrInvalidDay, day)
	}
	data, err := os.ReadFile(s.Path(day))
	if err == nil {
		observability.RecordInputFetch("cache", true)
		return string(data), nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		observability.RecordInputFetch("cache", false)
		return "", fmt.Errorf("read cached input: %w", err)
	}
	return s.Fetch(ctx, day)
}

// Fetch downloads the input for a day and writes it to the cache,
// replacing anything already there.
func (s *Store) Fetch(ctx context.Context, day int) (string, error) {
	if day < 1 || day > 25 {
		return "", fmt.Errorf("%w: %d", ErrInvalidDay, day)
	}
	if s.session == "" {
		return "", fmt.Errorf("%w: day %d", ErrNoSession, day)
	}

	body, err := s.fetchWithRetry(ctx, day)
	observability.RecordInputFetch("remote", err == nil)
	if err != nil {
		return "", err
	}
	if err := s.write(day, body); err != nil {
		return "", err
	}
	s.logger.Info().Int("day", day).Str("path", s.Path(day)).Msg("input cached")
	return body, nil
}

func (s *Store) fetchWithRetry(ctx context.Context, day int) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= s.attempts; attempt++ {
		body, retry, err := s.fetchOnce(ctx, day)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if !retry || attempt == s.attempts {
			break
		}
		delay := NextBackoffDelay(s.backoff, attempt, s.rng)
		s.logger.Warn().Err(err).Int("day", day).Int("attempt", attempt).Dur("retry_in", delay).Msg("input fetch failed")
		if err := sleepContext(ctx, delay); err != nil {
			return "", err
		}
	}
	return "", lastErr
}

// fetchOnce reports whether a failure is worth retrying.
func (s *Store) fetchOnce(ctx context.Context, day int) (string, bool, error) {
	url := fmt.Sprintf("%s/%d/day/%d/input", s.baseURL, s.year, day)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: s.session})
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", false, ctx.Err()
		}
		return "", true, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", true, fmt.Errorf("%w: read body: %v", ErrFetchFailed, err)
	}
	if resp.StatusCode != http.StatusOK {
		retry := resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests
		msg := strings.TrimSpace(string(data))
		if len(msg) > 120 {
			msg = msg[:120]
		}
		return "", retry, fmt.Errorf("%w: %s: %s", ErrFetchFailed, resp.Status, msg)
	}
	return string(data), false, nil
}

func (s *Store) write(day int, body string) error {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("create input dir: %w", err)
	}
	path := s.Path(day)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(body), 0o600); err != nil {
		return fmt.Errorf("write input: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("write input: %w", err)
	}
	return nil
}
