package locations

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Airport/location record as served by the locations backend
type Location struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}

type cached struct {
	loc     Location
	expires time.Time
}

// Service caches location lookups. Concurrent requests for the same code
// collapse into a single backend call.
type Service struct {
	base   string
	client *http.Client
	ttl    time.Duration

	group singleflight.Group
	mu    sync.RWMutex
	cache map[string]cached
}

func NewService() (*Service, error) {
	// config
	host := os.Getenv("LOCATIONS_HOST")
	if host == "" {
		return nil, fmt.Errorf("env LOCATIONS_HOST is not set")
	}
	port := os.Getenv("LOCATIONS_PORT")
	if port == "" {
		return nil, fmt.Errorf("env LOCATIONS_PORT is not set")
	}

	return &Service{
		base:   host + ":" + port,
		client: &http.Client{Timeout: 5 * time.Second},
		ttl:    time.Hour,
		cache:  make(map[string]cached),
	}, nil
}

func (s *Service) GetLocation(ctx context.Context, code string) (Location, error) {
	s.mu.RLock()
	c, ok := s.cache[code]
	s.mu.RUnlock()
	if ok && time.Now().Before(c.expires) {
		return c.loc, nil
	}

	v, err, _ := s.group.Do(code, func() (any, error) {
		loc, err := s.fetch(ctx, code)
		if err != nil {
			return Location{}, err
		}
		s.mu.Lock()
		s.cache[code] = cached{loc, time.Now().Add(s.ttl)}
		s.mu.Unlock()
		return loc, nil
	})
	if err != nil {
		return Location{}, err
	}
	return v.(Location), nil
}

func (s *Service) fetch(ctx context.Context, code string) (Location, error) {
	var loc Location

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.base+"/locations/"+code, nil)
	if err != nil {
		return loc, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return loc, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return loc, fmt.Errorf("locations service HTTP error: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return loc, err
	}
	if err = json.Unmarshal(body, &loc); err != nil {
		return loc, err
	}
	return loc, nil
}
