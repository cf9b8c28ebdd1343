package cmd

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"jordan.com/BeerStore/pkg/server/grpc/api/v1/apiv1connect"
)

func TestConfigureCORS_AnswersPreflight(t *testing.T) {
	called := false
	handler := configureCORS(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))

	request := httptest.NewRequest(http.MethodOptions, "/beerstore.v1.BeerService/RegisterBeer", nil)
	request.Header.Set("Origin", "https://app.example.com")
	request.Header.Set("Access-Control-Request-Method", http.MethodPost)
	request.Header.Set("Access-Control-Request-Headers", "content-type,connect-protocol-version")
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, request)

	assert.False(t, called)
	assert.NotEmpty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, recorder.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestConfigureCORS_PassesRequestsThrough(t *testing.T) {
	called := false
	handler := configureCORS(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusNoContent)
	}))

	request := httptest.NewRequest(http.MethodPost, "/beerstore.v1.BeerService/ListBeers", nil)
	request.Header.Set("Origin", "https://app.example.com")
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, request)

	assert.True(t, called)
	assert.Equal(t, http.StatusNoContent, recorder.Code)
}

func TestNewServeMux_RoutesServices(t *testing.T) {
	mux := newServeMux(apiv1connect.UnimplementedBeerServiceHandler{})

	routes := map[string]string{
		apiv1connect.BeerServiceRegisterBeerProcedure:                    "/beerstore.v1.BeerService/",
		"/grpc.health.v1.Health/Check":                                   "/grpc.health.v1.Health/",
		"/grpc.reflection.v1.ServerReflection/ServerReflectionInfo":      "/grpc.reflection.v1.ServerReflection/",
		"/grpc.reflection.v1alpha.ServerReflection/ServerReflectionInfo": "/grpc.reflection.v1alpha.ServerReflection/",
	}

	for path, expected := range routes {
		_, pattern := mux.Handler(httptest.NewRequest(http.MethodPost, path, nil))
		assert.Equal(t, expected, pattern, path)
	}
}
