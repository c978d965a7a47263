package service

import (
	"context"
	"fmt"

	"github.com/Lixing-Zhang/kart-challenge/menucart/internal/models"
	"github.com/Lixing-Zhang/kart-challenge/menucart/internal/repository"
	"github.com/Lixing-Zhang/kart-challenge/menucart/internal/session"
	"github.com/Lixing-Zhang/kart-challenge/menucart/internal/store"
)

// SessionProvider looks up live sessions
type SessionProvider interface {
	Get(id string) (*session.Session, error)
}

// MenuService handles catalog browsing and per-session filtering
type MenuService struct {
	repo     repository.MenuRepository
	sessions SessionProvider
}

// NewMenuService creates a new menu service
func NewMenuService(repo repository.MenuRepository, sessions SessionProvider) *MenuService {
	return &MenuService{
		repo:     repo,
		sessions: sessions,
	}
}

// ListMenu returns the whole catalog, including unavailable items
func (s *MenuService) ListMenu(ctx context.Context) ([]models.MenuItem, error) {
	return s.repo.GetAll(ctx)
}

// GetItem returns a catalog item by ID
func (s *MenuService) GetItem(ctx context.Context, id int64) (*models.MenuItem, error) {
	return s.repo.GetByID(ctx, id)
}

// Categories returns "All" followed by the distinct catalog categories
func (s *MenuService) Categories(ctx context.Context) ([]string, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return store.New(items).Categories(), nil
}

// FilteredMenu returns the session's filtered view of the menu
func (s *MenuService) FilteredMenu(ctx context.Context, sessionID string) ([]models.MenuItem, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	var items []models.MenuItem
	sess.Do(func(st *store.Store) {
		items = st.FilteredMenu()
	})
	return items, nil
}

// GetFilter returns the session's current search query and category
func (s *MenuService) GetFilter(ctx context.Context, sessionID string) (*models.Filter, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	var filter models.Filter
	sess.Do(func(st *store.Store) {
		filter = currentFilter(st)
	})
	return &filter, nil
}

// SetFilter assigns whichever of search and category the request carries
func (s *MenuService) SetFilter(ctx context.Context, sessionID string, req models.FilterRequest) (*models.Filter, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	var filter models.Filter
	sess.Do(func(st *store.Store) {
		if req.Search != nil {
			st.SetSearchQuery(*req.Search)
		}
		if req.Category != nil {
			st.SetSelectedCategory(*req.Category)
		}
		filter = currentFilter(st)
	})
	return &filter, nil
}

// Snapshot returns the session's full state and derived views
func (s *MenuService) Snapshot(ctx context.Context, sessionID string) (*store.Snapshot, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	var snap store.Snapshot
	sess.Do(func(st *store.Store) {
		snap = st.Snapshot()
	})
	return &snap, nil
}

func currentFilter(st *store.Store) models.Filter {
	return models.Filter{
		Search:   st.SearchQuery(),
		Category: st.SelectedCategory(),
	}
}
