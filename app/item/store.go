package item

import (
	"catalog/domain"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
)

var (
	ErrNotFound   = errors.New("item not found")
	ErrValidation = errors.New("item validation failed")
)

// Store is the in-memory item collection. Ids are assigned from a counter that
// only moves forward, so a deleted id is never handed out again.
type Store struct {
	mu     sync.RWMutex
	items  map[int64]domain.Item
	order  []int64
	nextID int64
}

func NewStore() *Store {
	return &Store{
		items:  map[int64]domain.Item{},
		order:  []int64{},
		nextID: 1,
	}
}

func (s *Store) Create(_ context.Context, params CreateParams) (domain.Item, error) {
	if strings.TrimSpace(params.Name) == "" {
		return domain.Item{}, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if params.Price == nil {
		return domain.Item{}, fmt.Errorf("%w: price is required", ErrValidation)
	}
	if *params.Price < 0 {
		return domain.Item{}, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}

	isAvailable := true
	if params.IsAvailable != nil {
		isAvailable = *params.IsAvailable
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := domain.Item{
		ID:          s.nextID,
		Name:        params.Name,
		Description: params.Description,
		Price:       *params.Price,
		IsAvailable: isAvailable,
	}.Clone()

	s.nextID++
	s.items[item.ID] = item
	s.order = append(s.order, item.ID)

	return item.Clone(), nil
}

func (s *Store) GetAll(_ context.Context) ([]domain.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]domain.Item, 0, len(s.order))
	for _, id := range s.order {
		items = append(items, s.items[id].Clone())
	}
	return items, nil
}

func (s *Store) GetByID(_ context.Context, id int64) (domain.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		return domain.Item{}, fmt.Errorf("get item %d: %w", id, ErrNotFound)
	}
	return item.Clone(), nil
}

func (s *Store) Update(_ context.Context, id int64, params UpdateParams) (domain.Item, error) {
	if params.Name != nil && strings.TrimSpace(*params.Name) == "" {
		return domain.Item{}, fmt.Errorf("%w: name must not be empty", ErrValidation)
	}
	if params.Price != nil && *params.Price < 0 {
		return domain.Item{}, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok {
		return domain.Item{}, fmt.Errorf("update item %d: %w", id, ErrNotFound)
	}

	if params.Name != nil {
		item.Name = *params.Name
	}
	if params.Description.Set {
		item.Description = params.Description.Value
	}
	if params.Price != nil {
		item.Price = *params.Price
	}
	if params.IsAvailable != nil {
		item.IsAvailable = *params.IsAvailable
	}

	item = item.Clone()
	s.items[id] = item

	return item.Clone(), nil
}

func (s *Store) Delete(_ context.Context, id int64) (domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok {
		return domain.Item{}, fmt.Errorf("delete item %d: %w", id, ErrNotFound)
	}

	delete(s.items, id)
	for i, storedID := range s.order {
		if storedID == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	return item, nil
}

// SearchByName returns the items whose name contains query, ignoring case.
// An empty query matches every item.
func (s *Store) SearchByName(_ context.Context, query string) ([]domain.Item, error) {
	needle := strings.ToLower(query)

	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]domain.Item, 0)
	for _, id := range s.order {
		item := s.items[id]
		if strings.Contains(strings.ToLower(item.Name), needle) {
			items = append(items, item.Clone())
		}
	}
	return items, nil
}

func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
