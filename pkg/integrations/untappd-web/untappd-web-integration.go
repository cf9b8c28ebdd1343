package untappdweb

import (
	"strings"

	"go.uber.org/zap"
)

const (
	IntegrationName = "untappd_web"
	userAgent       = "Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:15.0) Gecko/20100101 Firefox/15.0.1"
)

type UntappedWebIntegration struct {
	baseURL string
	logger  *zap.Logger
}

func NewUntappedWebIntegration(baseURL string, logger *zap.Logger) *UntappedWebIntegration {
	return &UntappedWebIntegration{baseURL: strings.TrimSuffix(baseURL, "/"), logger: logger}
}
