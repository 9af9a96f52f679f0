package menu

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Source is the upstream menu API the storefront reads from. It is the only
// writer of menu data; everything here treats it as read-only.
type Source interface {
	Restaurant(ctx context.Context) (*Restaurant, error)
	Sections(ctx context.Context, menuID string) ([]Section, error)
	SectionItems(ctx context.Context, sectionID string) ([]*Item, error)
}

// HTTPSource talks to the upstream menu API with a bearer token and the
// tenant id header.
type HTTPSource struct {
	baseURL string
	token   string
	appID   string
	client  *http.Client
}

func NewHTTPSource(baseURL, token, appID string) *HTTPSource {
	return &HTTPSource{
		baseURL: baseURL,
		token:   token,
		appID:   appID,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *HTTPSource) Restaurant(ctx context.Context) (*Restaurant, error) {
	body, err := s.get(ctx, "/menu")
	if err != nil {
		return nil, err
	}

	var restaurant Restaurant
	if err := json.Unmarshal(body, &restaurant); err != nil {
		return nil, fmt.Errorf("parse restaurant data: %w", err)
	}
	return &restaurant, nil
}

func (s *HTTPSource) Sections(ctx context.Context, menuID string) ([]Section, error) {
	if menuID == "" {
		return nil, errors.New("missing menu id")
	}

	body, err := s.get(ctx, "/menu/section/"+menuID)
	if err != nil {
		return nil, err
	}

	var sections []Section
	if err := json.Unmarshal(body, &sections); err != nil {
		return nil, fmt.Errorf("parse sections: %w", err)
	}
	return sections, nil
}

func (s *HTTPSource) SectionItems(ctx context.Context, sectionID string) ([]*Item, error) {
	if sectionID == "" {
		return nil, errors.New("missing section id")
	}

	body, err := s.get(ctx, "/menu/items/"+sectionID)
	if err != nil {
		return nil, err
	}
	return NormalizeItems(body)
}

func (s *HTTPSource) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("X-App-Id", s.appID)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("menu source request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("menu source returned status %d for %s", resp.StatusCode, path)
	}

	return io.ReadAll(resp.Body)
}
