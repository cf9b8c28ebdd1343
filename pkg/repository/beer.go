package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"jordan.com/BeerStore/pkg/model"
)

var (
	ErrBeerNotFound  = errors.New("beer not found")
	ErrDuplicateBeer = errors.New("beer with the same name and type already stored")
)

type BeerRepository interface {
	// FindBeerByNameAndType reports absence through the boolean, never through the error.
	FindBeerByNameAndType(ctx context.Context, name string, beerType string) (model.Beer, bool, error)
	SaveBeer(ctx context.Context, beer model.Beer) (*model.Beer, error)
	GetBeerByID(ctx context.Context, beerID uint) (*model.Beer, error)
	GetBeers(ctx context.Context) ([]*model.Beer, error)
}

func (r *Repository) FindBeerByNameAndType(ctx context.Context, name string, beerType string) (model.Beer, bool, error) {
	var beer model.Beer

	result := r.DB.WithContext(ctx).
		Where(`name = ? AND type = ?`, name, beerType).
		First(&beer)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.Beer{}, false, nil
		}

		r.Logger.Error("error looking up beer", zap.String("name", name), zap.String("type", beerType), zap.Error(result.Error))

		return model.Beer{}, false, result.Error
	}

	return beer, true, nil
}

func (r *Repository) SaveBeer(ctx context.Context, beer model.Beer) (*model.Beer, error) {
	if result := r.DB.WithContext(ctx).Create(&beer); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateBeer
		}

		return nil, result.Error
	}

	return &beer, nil
}

func (r *Repository) GetBeerByID(ctx context.Context, beerID uint) (*model.Beer, error) {
	var beer model.Beer

	result := r.DB.WithContext(ctx).First(&beer, beerID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrBeerNotFound
		}

		return nil, result.Error
	}

	return &beer, nil
}

func (r *Repository) GetBeers(ctx context.Context) ([]*model.Beer, error) {
	var beers []*model.Beer

	if result := r.DB.WithContext(ctx).Order("name, type").Find(&beers); result.Error != nil {
		return nil, result.Error
	}

	return beers, nil
}
