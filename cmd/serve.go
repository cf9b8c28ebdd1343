package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/bufbuild/connect-go"
	grpchealth "github.com/bufbuild/connect-grpchealth-go"
	grpcreflect "github.com/bufbuild/connect-grpcreflect-go"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"jordan.com/BeerStore/configs"
	"jordan.com/BeerStore/pkg/auth"
	"jordan.com/BeerStore/pkg/repository"
	"jordan.com/BeerStore/pkg/server"
	"jordan.com/BeerStore/pkg/server/grpc/api/v1/apiv1connect"
	"jordan.com/BeerStore/pkg/service"
)

const timeout = 5 * time.Second

type ServeCmd struct {
	ConfigFile string `default:".BeerStore.toml" help:"Path to config file" short:"c"`
}

func (s *ServeCmd) Run(ctx *Context) error {
	logger := newLogger(ctx.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(s.ConfigFile, logger)
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

	var options []connect.HandlerOption

	authManager := auth.NewAuthManager(conf, logger)
	if authManager.Enabled() {
		options = append(options, connect.WithInterceptors(authManager.GrpcAuthInterceptor()))
	} else {
		logger.Warn("no auth secret key configured, serving without authentication")
	}

	beerService := service.NewBeerService(repo, logger)
	mux := newServeMux(server.NewBeerServer(beerService, logger, conf), options...)

	address := fmt.Sprintf(":%d", conf.Server.Port)

	// Configure CORS first
	corsHandler := configureCORS(server.RequestID(logger, mux))
	serverHandler := h2c.NewHandler(corsHandler, &http2.Server{})

	svr := &http.Server{
		Addr:              address,
		ReadHeaderTimeout: timeout,
		Handler:           serverHandler,
	}

	logger.Info("starting server", zap.String("address", address))

	err = svr.ListenAndServe()
	if err != nil {
		logger.Error("failed to start server", zap.Error(err))

		return err
	}

	return nil
}

func newServeMux(beerServer apiv1connect.BeerServiceHandler, options ...connect.HandlerOption) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle(apiv1connect.NewBeerServiceHandler(beerServer, options...))

	reflector := grpcreflect.NewStaticReflector(grpchealth.HealthV1ServiceName, apiv1connect.BeerServiceName)
	checker := grpchealth.NewStaticChecker(apiv1connect.BeerServiceName)

	mux.Handle(grpcreflect.NewHandlerV1(reflector))
	mux.Handle(grpcreflect.NewHandlerV1Alpha(reflector))
	mux.Handle(grpchealth.NewHandler(checker))

	return mux
}

func configureCORS(handler http.Handler) http.Handler {
	corsOpts := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD", "PATCH"},
		AllowedHeaders: []string{
			"accept",
			"accept-encoding",
			"accept-language",
			"authorization",
			"cache-control",
			"connect-accept-encoding",
			"connect-content-encoding",
			"connect-protocol-version",
			"connect-timeout-ms",
			"content-encoding",
			"content-length",
			"content-type",
			"date",
			"grpc-accept-encoding",
			"grpc-encoding",
			"grpc-message",
			"grpc-status",
			"grpc-status-details-bin",
			"grpc-timeout",
			"keep-alive",
			"origin",
			"referer",
			"user-agent",
			"x-accept-content-transfer-encoding",
			"x-accept-response-streaming",
			"x-grpc-web",
			"x-request-id",
			"x-user-agent",
		},
		ExposedHeaders: []string{
			"connect-protocol-version",
			"grpc-message",
			"grpc-status",
			"grpc-status-details-bin",
			"x-request-id",
		},
		MaxAge:             86400, // 24 hours
		OptionsPassthrough: false, // Handle OPTIONS requests in CORS middleware
	})

	// Apply CORS to the main mux, then wrap with h2c
	corsHandler := corsOpts.Handler(handler)

	return corsHandler
}
