package category

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"taskboard/internal/domain"
	"taskboard/internal/repository"
)

// DefaultKey is the storage key the category list lives under.
const DefaultKey = "categories"

var ErrEmptyName = domain.ErrEmptyCategoryName

// Source tells where the categories of a read came from.
type Source int

const (
	// nothing persisted yet; in-memory state returned
	SourceMemory Source = iota
	// persisted list parsed and adopted
	SourceStorage
	// persisted value was malformed; previous in-memory state returned
	SourceFallback
)

func (s Source) String() string {
	switch s {
	case SourceMemory:
		return "memory"
	case SourceStorage:
		return "storage"
	case SourceFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// ReadResult is the outcome of hydrating the category list.
type ReadResult struct {
	Categories []domain.Category
	Source     Source
	// set only when Source is SourceFallback
	ParseErr error
}

// Degraded reports whether the read fell back because storage held garbage.
func (r ReadResult) Degraded() bool {
	return r.Source == SourceFallback
}

// Service owns the category list and keeps it in step with a KVStore.
// Callers only ever see copies; every mutation goes through Save.
type Service struct {
	store  repository.KVStore
	key    string
	logger *slog.Logger

	mu         sync.Mutex
	categories []domain.Category
}

type Option func(*Service)

func WithKey(key string) Option {
	return func(s *Service) {
		if key != "" {
			s.key = key
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithInitial replaces the built-in defaults as the pre-hydration state.
func WithInitial(cats []domain.Category) Option {
	return func(s *Service) {
		s.categories = domain.CloneCategories(cats)
	}
}

func NewService(store repository.KVStore, opts ...Option) *Service {
	s := &Service{
		store:      store,
		key:        DefaultKey,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		categories: domain.DefaultCategories(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Key() string {
	return s.key
}

// Categories hydrates from storage and returns a snapshot of the list.
// A malformed stored value is not an error: the previous state is kept
// and the result is marked SourceFallback.
func (s *Service) Categories(ctx context.Context) (ReadResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.hydrate(ctx)
	if err != nil {
		return ReadResult{}, err
	}
	res.Categories = domain.CloneCategories(s.categories)
	return res, nil
}

// caller holds s.mu
func (s *Service) hydrate(ctx context.Context) (ReadResult, error) {
	raw, ok, err := s.store.Get(ctx, s.key)
	if err != nil {
		return ReadResult{}, fmt.Errorf("failed to load categories: %w", err)
	}
	if !ok || raw == "" {
		return ReadResult{Source: SourceMemory}, nil
	}

	var parsed []domain.Category
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		s.logger.Warn("stored categories are malformed, using in-memory list",
			"key", s.key,
			"error", err,
		)
		return ReadResult{Source: SourceFallback, ParseErr: err}, nil
	}

	if parsed == nil {
		// "null" decodes without error
		parsed = []domain.Category{}
	}
	s.categories = parsed
	return ReadResult{Source: SourceStorage}, nil
}

// Save replaces the list wholesale and persists it. No validation is applied.
func (s *Service) Save(ctx context.Context, cats []domain.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save(ctx, cats)
}

// caller holds s.mu
func (s *Service) save(ctx context.Context, cats []domain.Category) error {
	next := domain.CloneCategories(cats)

	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("failed to encode categories: %w", err)
	}

	s.categories = next

	if err := s.store.Set(ctx, s.key, string(data)); err != nil {
		return fmt.Errorf("failed to save categories: %w", err)
	}

	s.logger.Debug("categories saved", "key", s.key, "count", len(next))
	return nil
}

// ByName returns the first category whose name matches exactly.
func (s *Service) ByName(ctx context.Context, name string) (domain.Category, bool, error) {
	res, err := s.Categories(ctx)
	if err != nil {
		return domain.Category{}, false, err
	}

	c, ok := domain.FindCategoryByName(res.Categories, name)
	return c, ok, nil
}

// UpdateColor sets a category's custom color and derives its background
// class from the palette. The list is persisted even when the value is not
// a palette entry. An unknown id is a no-op that reports false.
func (s *Service) UpdateColor(ctx context.Context, id int64, colorValue string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.hydrate(ctx); err != nil {
		return false, err
	}

	cats := domain.CloneCategories(s.categories)
	idx := domain.IndexOfCategory(cats, id)
	if idx < 0 {
		return false, nil
	}

	if !cats[idx].ApplyColor(colorValue) {
		s.logger.Debug("color is not in the palette, keeping background class",
			"id", id,
			"color", colorValue,
			"class", cats[idx].Color,
		)
	}

	if err := s.save(ctx, cats); err != nil {
		return false, err
	}
	return true, nil
}

// Add appends a new category with the next free id.
func (s *Service) Add(ctx context.Context, name, colorValue string) (domain.Category, error) {
	c := domain.NewCategory(0, strings.TrimSpace(name), colorValue)
	if err := c.Validate(); err != nil {
		return domain.Category{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.hydrate(ctx); err != nil {
		return domain.Category{}, err
	}

	cats := domain.CloneCategories(s.categories)
	c.ID = domain.NextCategoryID(cats)
	cats = append(cats, c)

	if err := s.save(ctx, cats); err != nil {
		return domain.Category{}, err
	}
	return c, nil
}

// Remove deletes the category with the given id. An unknown id reports false.
func (s *Service) Remove(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.hydrate(ctx); err != nil {
		return false, err
	}

	idx := domain.IndexOfCategory(s.categories, id)
	if idx < 0 {
		return false, nil
	}

	cats := make([]domain.Category, 0, len(s.categories)-1)
	cats = append(cats, s.categories[:idx]...)
	cats = append(cats, s.categories[idx+1:]...)

	if err := s.save(ctx, cats); err != nil {
		return false, err
	}
	return true, nil
}

// Reset restores and persists the built-in defaults.
func (s *Service) Reset(ctx context.Context) error {
	return s.Save(ctx, domain.DefaultCategories())
}
