package untappdweb

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/gocolly/colly/v2"
	"go.openly.dev/pointy"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"jordan.com/BeerStore/pkg/model"
)

type BeerScraped struct {
	IDLink      string `attr:"href"          selector:"a.label"`
	Name        string `selector:".name > a"`
	Brewery     string `selector:".brewery > a"`
	Style       string `selector:".style"`
	Description string `selector:".desc"`
	ABV         string `selector:".abv"`
}

func (u *UntappedWebIntegration) FindBeer(name string) ([]model.Beer, error) {
	searchURL, err := url.Parse(u.baseURL + "/search")
	if err != nil {
		return nil, err
	}

	searchURL.RawQuery = url.Values{"q": []string{name}}.Encode()

	collector := colly.NewCollector(
		colly.AllowedDomains(searchURL.Hostname()),
		colly.UserAgent(userAgent),
	)

	var (
		errs    error
		results []model.Beer
	)

	collector.OnHTML(".beer-item", func(element *colly.HTMLElement) {
		scraped := BeerScraped{}

		err := element.Unmarshal(&scraped)
		if multierr.AppendInto(&errs, err) {
			u.logger.Error("failed to unmarshal scraped beer", zap.Error(err))

			return
		}

		beer := beerFromScraped(scraped)

		u.logger.Info("successfully scraped item from results", zap.String("name", beer.Name), zap.String("type", beer.Type))

		results = append(results, beer)
	})

	collector.OnError(func(response *colly.Response, err error) {
		u.logger.Error("error while scraping beer search results", zap.String("url", response.Request.URL.String()), zap.Error(err))
	})

	u.logger.Info("scraping query results", zap.String("query", name))
	multierr.AppendInto(&errs, collector.Visit(searchURL.String()))

	u.logger.Info("finished scraping query results", zap.Int("results", len(results)), zap.Error(errs))

	return results, errs
}

func beerFromScraped(scraped BeerScraped) model.Beer {
	beer := model.Beer{
		Name:           strings.TrimSpace(scraped.Name),
		Type:           strings.TrimSpace(scraped.Style),
		Brewery:        strings.TrimSpace(scraped.Brewery),
		Description:    strings.TrimSpace(scraped.Description),
		ExternalSource: pointy.String(IntegrationName),
		ABV:            extractABV(scraped),
	}

	idString := scraped.IDLink[strings.LastIndex(scraped.IDLink, "/")+1:]
	if externalID, err := strconv.ParseUint(idString, 10, 64); err == nil {
		beer.ExternalID = pointy.Uint64(externalID)
	}

	return beer
}

func extractABV(details BeerScraped) *float64 {
	if index := strings.Index(details.ABV, "%"); index >= 0 {
		abv, err := strconv.ParseFloat(strings.TrimSpace(details.ABV[:index]), 64)
		if err == nil {
			return &abv
		}
	}

	return nil
}
