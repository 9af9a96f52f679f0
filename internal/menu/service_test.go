package menu

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

type mockSource struct {
	restaurantCalls int
	sectionCalls    int
	itemCalls       int
}

func (m *mockSource) Restaurant(_ context.Context) (*Restaurant, error) {
	m.restaurantCalls++
	return &Restaurant{Name: "Smash Bros", MenuID: "menu-1", AcceptingOrders: true}, nil
}

func (m *mockSource) Sections(_ context.Context, menuID string) ([]Section, error) {
	m.sectionCalls++
	return []Section{{ID: "sec-" + menuID, Name: "Smash Burgers"}}, nil
}

func (m *mockSource) SectionItems(_ context.Context, sectionID string) ([]*Item, error) {
	m.itemCalls++
	return []*Item{{ID: "101", Name: "Classic Smash", Kind: KindSimple, Price: 749}}, nil
}

func TestServiceCachesRestaurant(t *testing.T) {
	src := &mockSource{}
	svc := NewService(src, nil)

	for i := 0; i < 3; i++ {
		if _, err := svc.Restaurant(context.Background()); err != nil {
			t.Fatalf("Restaurant: %v", err)
		}
	}
	if src.restaurantCalls != 1 {
		t.Fatalf("upstream calls = %d, want 1", src.restaurantCalls)
	}
}

func TestServiceCachesSectionsPerMenu(t *testing.T) {
	src := &mockSource{}
	svc := NewService(src, nil)

	first, err := svc.Sections(context.Background(), "menu-1")
	if err != nil {
		t.Fatalf("Sections: %v", err)
	}
	second, err := svc.Sections(context.Background(), "menu-2")
	if err != nil {
		t.Fatalf("Sections: %v", err)
	}

	if first[0].ID == second[0].ID {
		t.Fatal("different menu ids must not share cached sections")
	}
	if src.sectionCalls != 2 {
		t.Fatalf("upstream calls = %d, want 2", src.sectionCalls)
	}

	svc.Sections(context.Background(), "menu-1")
	if src.sectionCalls != 2 {
		t.Fatalf("upstream calls = %d, want repeat lookup served from cache", src.sectionCalls)
	}
}

func TestServiceIndexesItemsForLookup(t *testing.T) {
	src := &mockSource{}
	svc := NewService(src, nil)

	if _, err := svc.SectionItems(context.Background(), "sec-1"); err != nil {
		t.Fatalf("SectionItems: %v", err)
	}

	it, ok := svc.Item("101")
	if !ok {
		t.Fatal("item should be in the session cache")
	}
	if it.Name != "Classic Smash" {
		t.Fatalf("item = %+v", it)
	}

	if _, ok := svc.Item("999"); ok {
		t.Fatal("unknown item should miss")
	}
}

func TestServiceInvalidateDropsCache(t *testing.T) {
	src := &mockSource{}
	svc := NewService(src, nil)

	svc.Restaurant(context.Background())
	svc.SectionItems(context.Background(), "sec-1")
	svc.Invalidate()

	if _, ok := svc.Item("101"); ok {
		t.Fatal("cache should be empty after invalidation")
	}

	svc.Restaurant(context.Background())
	if src.restaurantCalls != 2 {
		t.Fatalf("upstream calls = %d, want 2 after invalidation", src.restaurantCalls)
	}
}

func TestUploadItemImageWithoutStorage(t *testing.T) {
	svc := NewService(&mockSource{}, nil)

	if _, err := svc.UploadItemImage(context.Background(), "101", nil, "burger.png"); err == nil {
		t.Fatal("expected error without configured storage")
	}
}

func TestHTTPSourceSendsAuthHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer token-1" {
			t.Errorf("authorization = %q", got)
		}
		if got := r.Header.Get("X-App-Id"); got != "app-1" {
			t.Errorf("app id = %q", got)
		}
		w.Write([]byte(`{"name": "Smash Bros", "menu_id": "menu-1", "accepting_orders": true}`))
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL, "token-1", "app-1")
	restaurant, err := src.Restaurant(context.Background())
	if err != nil {
		t.Fatalf("Restaurant: %v", err)
	}
	if restaurant.Name != "Smash Bros" || restaurant.MenuID != "menu-1" {
		t.Fatalf("restaurant = %+v", restaurant)
	}
}

func TestHTTPSourceNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL, "token-1", "app-1")
	if _, err := src.Restaurant(context.Background()); err == nil {
		t.Fatal("expected error for non-2xx response")
	}
}

func TestHTTPSourceRequiresIDs(t *testing.T) {
	src := NewHTTPSource("http://example.invalid", "token-1", "app-1")

	if _, err := src.Sections(context.Background(), ""); err == nil {
		t.Fatal("expected error for missing menu id")
	}
	if _, err := src.SectionItems(context.Background(), ""); err == nil {
		t.Fatal("expected error for missing section id")
	}
}
