package saved_filter

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SavedFilterService interface {
	CreateFilter(ctx context.Context, filter *SavedFilter) error
	GetFilter(ctx context.Context, id string) (*SavedFilter, error)
	UpdateFilter(ctx context.Context, filter *SavedFilter) error
	DeleteFilter(ctx context.Context, id string, userID primitive.ObjectID) error
	GetUserFilters(ctx context.Context, userID primitive.ObjectID) ([]SavedFilter, error)
	GetPublicFilters(ctx context.Context) ([]SavedFilter, error)
}

type SavedFilterServiceImpl struct {
	FilterRepo SavedFilterRepository
}

func NewSavedFilterService(filterRepo SavedFilterRepository) SavedFilterService {
	return &SavedFilterServiceImpl{
		FilterRepo: filterRepo,
	}
}

func (s *SavedFilterServiceImpl) CreateFilter(ctx context.Context, filter *SavedFilter) error {
	if filter.Name == "" {
		return fmt.Errorf("filter name required")
	}
	return s.FilterRepo.Create(ctx, filter)
}

func (s *SavedFilterServiceImpl) GetFilter(ctx context.Context, id string) (*SavedFilter, error) {
	return s.FilterRepo.Get(ctx, id)
}

func (s *SavedFilterServiceImpl) UpdateFilter(ctx context.Context, filter *SavedFilter) error {
	return s.FilterRepo.Update(ctx, filter)
}

func (s *SavedFilterServiceImpl) DeleteFilter(ctx context.Context, id string, userID primitive.ObjectID) error {
	filter, err := s.FilterRepo.Get(ctx, id)
	if err != nil {
		return err
	}

	if filter.UserID != userID {
		return fmt.Errorf("unauthorized")
	}

	return s.FilterRepo.Delete(ctx, id)
}

func (s *SavedFilterServiceImpl) GetUserFilters(ctx context.Context, userID primitive.ObjectID) ([]SavedFilter, error) {
	return s.FilterRepo.FindByUser(ctx, userID.Hex())
}

func (s *SavedFilterServiceImpl) GetPublicFilters(ctx context.Context) ([]SavedFilter, error) {
	return s.FilterRepo.FindPublic(ctx)
}
