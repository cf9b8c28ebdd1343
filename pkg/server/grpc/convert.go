package grpc

import (
	"go.openly.dev/pointy"

	"jordan.com/BeerStore/pkg/model"
	api "jordan.com/BeerStore/pkg/server/grpc/api/v1"
)

func BeersFromModel(beers []model.Beer) []*api.Beer {
	pbBeers := make([]*api.Beer, 0, len(beers))

	for _, beer := range beers {
		pbBeers = append(pbBeers, BeerFromModel(beer))
	}

	return pbBeers
}

func BeerPointersFromModel(beers []*model.Beer) []*api.Beer {
	pbBeers := make([]*api.Beer, 0, len(beers))

	for _, beer := range beers {
		if beer != nil {
			pbBeers = append(pbBeers, BeerFromModel(*beer))
		}
	}

	return pbBeers
}

func BeerFromModel(beer model.Beer) *api.Beer {
	pbBeer := api.Beer{
		Id:          uint64(beer.ID),
		Name:        beer.Name,
		Type:        beer.Type,
		Brewery:     beer.Brewery,
		Description: beer.Description,
	}

	if beer.ABV != nil {
		pbBeer.Abv = pointy.Float64(*beer.ABV)
	}

	if beer.Volume != nil {
		pbBeer.Volume = pointy.Float64(*beer.Volume)
	}

	if beer.ExternalID != nil {
		pbBeer.ExternalId = pointy.Uint64(*beer.ExternalID)
	}

	if beer.ExternalSource != nil {
		pbBeer.ExternalSource = pointy.String(*beer.ExternalSource)
	}

	return &pbBeer
}

// BeerToModel ignores the ID: IDs are assigned by the repository.
func BeerToModel(pbBeer *api.Beer) model.Beer {
	beer := model.Beer{
		Name: pbBeer.GetName(),
		Type: pbBeer.GetType(),
	}

	if pbBeer == nil {
		return beer
	}

	beer.Brewery = pbBeer.Brewery
	beer.Description = pbBeer.Description

	if pbBeer.Abv != nil {
		beer.ABV = pointy.Float64(*pbBeer.Abv)
	}

	if pbBeer.Volume != nil {
		beer.Volume = pointy.Float64(*pbBeer.Volume)
	}

	if pbBeer.ExternalId != nil {
		beer.ExternalID = pointy.Uint64(*pbBeer.ExternalId)
	}

	if pbBeer.ExternalSource != nil {
		beer.ExternalSource = pointy.String(*pbBeer.ExternalSource)
	}

	return beer
}
