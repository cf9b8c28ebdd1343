package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"jordan.com/BeerStore/pkg/model"
	"jordan.com/BeerStore/pkg/repository"
)

var (
	ErrBeerAlreadyExists = errors.New("beer already exists")
	ErrInvalidBeer       = errors.New("invalid beer")
)

// BeerService registers beers, keeping (name, type) unique. The lookup before the save
// rejects duplicates early; the unique index behind repository.SaveBeer settles races
// between concurrent registrations.
type BeerService struct {
	repository repository.BeerRepository
	logger     *zap.Logger
}

func NewBeerService(repository repository.BeerRepository, logger *zap.Logger) *BeerService {
	return &BeerService{repository: repository, logger: logger}
}

// Register trims surrounding whitespace from the name and type before the lookup and the save,
// so "IPA " and "IPA" are the same beer.
func (s *BeerService) Register(ctx context.Context, beer model.Beer) (*model.Beer, error) {
	beer.Name = strings.TrimSpace(beer.Name)
	beer.Type = strings.TrimSpace(beer.Type)

	if beer.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidBeer)
	}

	if beer.Type == "" {
		return nil, fmt.Errorf("%w: type is required", ErrInvalidBeer)
	}

	_, found, err := s.repository.FindBeerByNameAndType(ctx, beer.Name, beer.Type)
	if err != nil {
		return nil, err
	}

	if found {
		s.logger.Warn("beer already registered", zap.String("name", beer.Name), zap.String("type", beer.Type))

		return nil, fmt.Errorf("%w: %q of type %q", ErrBeerAlreadyExists, beer.Name, beer.Type)
	}

	saved, err := s.repository.SaveBeer(ctx, beer)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateBeer) {
			s.logger.Warn("beer registered concurrently", zap.String("name", beer.Name), zap.String("type", beer.Type))

			return nil, fmt.Errorf("%w: %q of type %q", ErrBeerAlreadyExists, beer.Name, beer.Type)
		}

		return nil, err
	}

	s.logger.Info("registered beer", zap.Uint("id", saved.ID), zap.String("name", saved.Name), zap.String("type", saved.Type))

	return saved, nil
}

func (s *BeerService) Get(ctx context.Context, beerID uint) (*model.Beer, error) {
	return s.repository.GetBeerByID(ctx, beerID)
}

func (s *BeerService) List(ctx context.Context) ([]*model.Beer, error) {
	return s.repository.GetBeers(ctx)
}
