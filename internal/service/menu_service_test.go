package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/Lixing-Zhang/kart-challenge/menucart/internal/models"
	"github.com/Lixing-Zhang/kart-challenge/menucart/internal/repository"
	"github.com/Lixing-Zhang/kart-challenge/menucart/internal/session"
)

func strPtr(s string) *string {
	return &s
}

func TestMenuService_Catalog(t *testing.T) {
	repo := repository.NewInMemoryMenuRepository()
	menuService := NewMenuService(repo, newTestRegistry(t, repo))
	ctx := context.Background()

	items, err := menuService.ListMenu(ctx)
	if err != nil {
		t.Fatalf("ListMenu() error = %v", err)
	}
	if len(items) != 7 {
		t.Errorf("ListMenu() returned %d items, want 7", len(items))
	}

	categories, err := menuService.Categories(ctx)
	if err != nil {
		t.Fatalf("Categories() error = %v", err)
	}
	want := []string{"All", "Chinese", "Western", "Beverage", "Dessert"}
	if !reflect.DeepEqual(categories, want) {
		t.Errorf("Categories() = %v, want %v", categories, want)
	}

	if _, err := menuService.GetItem(ctx, 42); !errors.Is(err, repository.ErrMenuItemNotFound) {
		t.Errorf("GetItem() error = %v, want %v", err, repository.ErrMenuItemNotFound)
	}
}

func TestMenuService_Filter(t *testing.T) {
	repo := repository.NewInMemoryMenuRepository()
	sessions := newTestRegistry(t, repo)
	menuService := NewMenuService(repo, sessions)
	ctx := context.Background()
	id := sessions.Create().ID

	filter, err := menuService.GetFilter(ctx, id)
	if err != nil {
		t.Fatalf("GetFilter() error = %v", err)
	}
	if *filter != (models.Filter{Search: "", Category: "All"}) {
		t.Errorf("default filter = %+v", *filter)
	}

	filter, err = menuService.SetFilter(ctx, id, models.FilterRequest{Category: strPtr("Beverage")})
	if err != nil {
		t.Fatalf("SetFilter() error = %v", err)
	}
	if filter.Category != "Beverage" || filter.Search != "" {
		t.Errorf("filter after category = %+v", *filter)
	}

	filter, err = menuService.SetFilter(ctx, id, models.FilterRequest{Search: strPtr("MATCHA")})
	if err != nil {
		t.Fatalf("SetFilter() error = %v", err)
	}
	if filter.Category != "Beverage" || filter.Search != "MATCHA" {
		t.Errorf("search must not reset category: %+v", *filter)
	}

	items, err := menuService.FilteredMenu(ctx, id)
	if err != nil {
		t.Fatalf("FilteredMenu() error = %v", err)
	}
	if len(items) != 1 || items[0].ID != 6 {
		t.Errorf("FilteredMenu() = %+v, want only item 6", items)
	}

	snap, err := menuService.Snapshot(ctx, id)
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	if snap.SearchQuery != "MATCHA" || len(snap.FilteredMenu) != 1 {
		t.Errorf("Snapshot() = %+v", snap)
	}

	if _, err := menuService.FilteredMenu(ctx, "missing"); !errors.Is(err, session.ErrSessionNotFound) {
		t.Errorf("FilteredMenu() error = %v, want %v", err, session.ErrSessionNotFound)
	}
}
