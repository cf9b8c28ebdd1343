package server

import (
	"context"
	"errors"

	"github.com/bufbuild/connect-go"
	"go.uber.org/zap"

	"jordan.com/BeerStore/configs"
	"jordan.com/BeerStore/pkg/auth"
	"jordan.com/BeerStore/pkg/integrations"
	"jordan.com/BeerStore/pkg/model"
	"jordan.com/BeerStore/pkg/repository"
	"jordan.com/BeerStore/pkg/server/grpc"
	api "jordan.com/BeerStore/pkg/server/grpc/api/v1"
	"jordan.com/BeerStore/pkg/server/grpc/api/v1/apiv1connect"
	"jordan.com/BeerStore/pkg/service"
)

type beerService interface {
	Register(ctx context.Context, beer model.Beer) (*model.Beer, error)
	Get(ctx context.Context, beerID uint) (*model.Beer, error)
	List(ctx context.Context) ([]*model.Beer, error)
}

type BeerServer struct {
	apiv1connect.UnimplementedBeerServiceHandler
	beers  beerService
	logger *zap.Logger
	config *configs.Config
}

func NewBeerServer(beers beerService, logger *zap.Logger, config *configs.Config) *BeerServer {
	return &BeerServer{beers: beers, logger: logger, config: config}
}

func (b *BeerServer) RegisterBeer(ctx context.Context, request *connect.Request[api.RegisterBeerRequest]) (*connect.Response[api.RegisterBeerResponse], error) {
	beer, err := b.beers.Register(ctx, grpc.BeerToModel(request.Msg.GetBeer()))
	if err != nil {
		return nil, b.connectError(ctx, err)
	}

	principal, _ := auth.Principal(ctx)
	b.logger.Info("beer registration accepted",
		zap.Uint("id", beer.ID),
		zap.String("principal", principal),
		zap.String("request_id", GetRequestID(ctx)))

	response := api.RegisterBeerResponse{Beer: grpc.BeerFromModel(*beer)}

	return connect.NewResponse(&response), nil
}

func (b *BeerServer) GetBeer(ctx context.Context, request *connect.Request[api.GetBeerRequest]) (*connect.Response[api.GetBeerResponse], error) {
	beer, err := b.beers.Get(ctx, uint(request.Msg.GetId()))
	if err != nil {
		return nil, b.connectError(ctx, err)
	}

	response := api.GetBeerResponse{Beer: grpc.BeerFromModel(*beer)}

	return connect.NewResponse(&response), nil
}

func (b *BeerServer) ListBeers(ctx context.Context, _ *connect.Request[api.ListBeersRequest]) (*connect.Response[api.ListBeersResponse], error) {
	beers, err := b.beers.List(ctx)
	if err != nil {
		return nil, b.connectError(ctx, err)
	}

	response := api.ListBeersResponse{Beers: grpc.BeerPointersFromModel(beers)}

	return connect.NewResponse(&response), nil
}

// FindBeer searches the configured catalog integrations. A failing integration is logged and
// skipped so the others still contribute results.
func (b *BeerServer) FindBeer(ctx context.Context, request *connect.Request[api.FindBeerRequest]) (*connect.Response[api.FindBeerResponse], error) {
	if request.Msg.GetQuery() == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("query is required"))
	}

	beers := make([]*api.Beer, 0)

	for _, integration := range b.config.Integrations.Beer {
		beerIntegration := integrations.GetIntegration(integration, b.config, b.logger)
		if beerIntegration == nil {
			b.logger.Warn("unknown beer integration",
				zap.String("integration", integration),
				zap.String("request_id", GetRequestID(ctx)))

			continue
		}

		foundBeers, err := beerIntegration.FindBeer(request.Msg.GetQuery())
		if err != nil {
			b.logger.Error("failed beer search",
				zap.String("integration", integration),
				zap.String("request_id", GetRequestID(ctx)),
				zap.Error(err))

			continue
		}

		beers = append(beers, grpc.BeersFromModel(foundBeers)...)
	}

	response := api.FindBeerResponse{Beers: beers}

	return connect.NewResponse(&response), nil
}

// connectError maps service and repository errors to Connect codes. Anything unmapped is logged
// and returned as is, which Connect reports as unknown.
func (b *BeerServer) connectError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidBeer):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, service.ErrBeerAlreadyExists):
		return connect.NewError(connect.CodeAlreadyExists, err)
	case errors.Is(err, repository.ErrBeerNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	default:
		b.logger.Error("beer request failed", zap.String("request_id", GetRequestID(ctx)), zap.Error(err))

		return err
	}
}
