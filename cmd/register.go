package cmd

import (
	"context"
	"fmt"
	"time"

	"go.openly.dev/pointy"
	"go.uber.org/zap"

	"jordan.com/BeerStore/configs"
	"jordan.com/BeerStore/pkg/model"
	"jordan.com/BeerStore/pkg/repository"
	"jordan.com/BeerStore/pkg/service"
)

const registerTimeout = 30 * time.Second

type RegisterCmd struct {
	ConfigFile  string  `default:".BeerStore.toml" help:"Path to config file" short:"c"`
	Name        string  `help:"Beer name"                    required:""`
	Type        string  `help:"Beer type"                    required:""`
	Brewery     string  `help:"Brewery name"`
	Description string  `help:"Description"`
	ABV         float64 `help:"Alcohol by volume, percent"   name:"abv"`
	Volume      float64 `help:"Volume in litres"`
}

func (r *RegisterCmd) Run(ctx *Context) error {
	logger := newLogger(ctx.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(r.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	timeoutCtx, cancel := context.WithTimeout(context.Background(), registerTimeout)
	defer cancel()

	beer, err := service.NewBeerService(repo, logger).Register(timeoutCtx, r.beer())
	if err != nil {
		return err
	}

	fmt.Printf("registered beer %d: %s (%s)\n", beer.ID, beer.Name, beer.Type) //nolint:forbidigo // command output

	return nil
}

func (r *RegisterCmd) beer() model.Beer {
	beer := model.Beer{
		Name:        r.Name,
		Type:        r.Type,
		Brewery:     r.Brewery,
		Description: r.Description,
	}

	if r.ABV > 0 {
		beer.ABV = pointy.Float64(r.ABV)
	}

	if r.Volume > 0 {
		beer.Volume = pointy.Float64(r.Volume)
	}

	return beer
}
