package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/Armory_Go/internal/domain"
	"github.com/osse101/Armory_Go/internal/repository"
)

// MockHeroRepository is a mock implementation of repository.Hero
type MockHeroRepository struct {
	mock.Mock
}

var _ repository.Hero = (*MockHeroRepository)(nil)

// NewMockHeroRepository creates a mock that asserts its expectations when the test ends
func NewMockHeroRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockHeroRepository {
	m := &MockHeroRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockHeroRepository) GetHeroBySlug(ctx context.Context, slug string) (*domain.Hero, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hero), args.Error(1)
}

func (m *MockHeroRepository) ListHeroes(ctx context.Context, filter domain.HeroFilter) ([]domain.Hero, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Hero), args.Error(1)
}

func (m *MockHeroRepository) BulkUpsertHeroes(ctx context.Context, heroes []domain.Hero) (int, error) {
	args := m.Called(ctx, heroes)
	return args.Int(0), args.Error(1)
}

func (m *MockHeroRepository) DeleteHero(ctx context.Context, slug string) error {
	args := m.Called(ctx, slug)
	return args.Error(0)
}
