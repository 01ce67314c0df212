// Package presetting keeps named filter specs in memory so the sidebar can
// restore saved views. Presets last for the process lifetime only.
package presetting

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/mmisra/sales-dashboard-api/internal/domain"
	"github.com/mmisra/sales-dashboard-api/pkg/utils"
)

var (
	ErrPresetNotFound = errors.New("filter preset not found")
	ErrMissingName    = errors.New("preset name is required")
)

type PresetService interface {
	Create(name string, filters *domain.FilterSpec) (*domain.FilterPreset, error)
	Get(id string) (*domain.FilterPreset, error)
	List() []*domain.FilterPreset
	Delete(id string) error
}

type Service struct {
	mu      sync.RWMutex
	presets map[string]*domain.FilterPreset
}

func NewService() PresetService {
	return &Service{
		presets: make(map[string]*domain.FilterPreset),
	}
}

func (s *Service) Create(name string, filters *domain.FilterSpec) (*domain.FilterPreset, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrMissingName
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	preset := &domain.FilterPreset{
		ID:        id,
		Name:      name,
		Filters:   filters,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.presets[id] = preset
	s.mu.Unlock()

	return preset, nil
}

func (s *Service) Get(id string) (*domain.FilterPreset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	preset, ok := s.presets[id]
	if !ok {
		return nil, ErrPresetNotFound
	}
	return preset, nil
}

func (s *Service) List() []*domain.FilterPreset {
	s.mu.RLock()
	defer s.mu.RUnlock()

	presets := make([]*domain.FilterPreset, 0, len(s.presets))
	for _, preset := range s.presets {
		presets = append(presets, preset)
	}

	sort.Slice(presets, func(i, j int) bool {
		if presets[i].CreatedAt.Equal(presets[j].CreatedAt) {
			return presets[i].ID < presets[j].ID
		}
		return presets[i].CreatedAt.Before(presets[j].CreatedAt)
	})

	return presets
}

func (s *Service) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.presets[id]; !ok {
		return ErrPresetNotFound
	}

	delete(s.presets, id)
	return nil
}
