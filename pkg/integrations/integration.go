package integrations

import (
	"go.uber.org/zap"

	"jordan.com/BeerStore/configs"
	"jordan.com/BeerStore/pkg/integrations/untappd-web"
	"jordan.com/BeerStore/pkg/model"
)

// Integration is a read-only beer catalog. Results are candidates for registration and
// are never stored by the integration itself.
type Integration interface {
	FindBeer(name string) ([]model.Beer, error)
}

func GetIntegration(name string, conf *configs.Config, logger *zap.Logger) Integration {
	if name == untappdweb.IntegrationName {
		return untappdweb.NewUntappedWebIntegration(conf.Integrations.UntappdURL, logger)
	}

	return nil
}
