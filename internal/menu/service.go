package menu

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
)

type Storage interface {
	Upload(ctx context.Context, key string, file multipart.File) (string, error)
}

// Service caches the upstream menu for the session and answers item lookups
// for the cart and bundle engines.
type Service struct {
	source  Source
	storage Storage

	mu         sync.RWMutex
	restaurant *Restaurant
	sections   map[string][]Section
	items      map[string]*Item
}

func NewService(source Source, storage Storage) *Service {
	return &Service{
		source:   source,
		storage:  storage,
		sections: make(map[string][]Section),
		items:    make(map[string]*Item),
	}
}

// --------------------------------------------------
// Restaurant + Sections (CACHED PER SESSION)
// --------------------------------------------------

func (s *Service) Restaurant(ctx context.Context) (*Restaurant, error) {
	s.mu.RLock()
	cached := s.restaurant
	s.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	restaurant, err := s.source.Restaurant(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.restaurant = restaurant
	s.mu.Unlock()
	return restaurant, nil
}

func (s *Service) Sections(ctx context.Context, menuID string) ([]Section, error) {
	s.mu.RLock()
	cached, ok := s.sections[menuID]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	sections, err := s.source.Sections(ctx, menuID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.sections[menuID] = sections
	s.mu.Unlock()
	return sections, nil
}

func (s *Service) SectionItems(ctx context.Context, sectionID string) ([]*Item, error) {
	items, err := s.source.SectionItems(ctx, sectionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	for _, it := range items {
		s.items[it.ID] = it
	}
	s.mu.Unlock()

	return items, nil
}

// Item looks an item up in the session cache.
func (s *Service) Item(id string) (*Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	it, ok := s.items[id]
	return it, ok
}

// Invalidate drops the cached menu so the next read refetches.
func (s *Service) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.restaurant = nil
	s.sections = make(map[string][]Section)
	s.items = make(map[string]*Item)
}

// --------------------------------------------------
// Item Image Upload (MERCHANT)
// --------------------------------------------------

func (s *Service) UploadItemImage(
	ctx context.Context,
	itemID string,
	file multipart.File,
	filename string,
) (string, error) {

	if s.storage == nil {
		return "", errors.New("image storage not configured")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return "", errors.New("invalid file")
	}

	key := fmt.Sprintf(
		"items/%s/%s%s",
		itemID,
		uuid.New().String(),
		ext,
	)

	return s.storage.Upload(ctx, key, file)
}
