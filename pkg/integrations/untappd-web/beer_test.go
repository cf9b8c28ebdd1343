package untappdweb_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	. "jordan.com/BeerStore/pkg/integrations/untappd-web"
)

const searchPage = `<html><body>
<div class="results-container">
  <div class="beer-item">
    <a class="label" href="/b/twin-sails-brewing-lights-out-2021/4591477"><img src="/img/lights-out.png"></a>
    <div class="beer-details">
      <p class="name"><a href="/b/twin-sails-brewing-lights-out-2021/4591477">Lights Out (2021)</a></p>
      <p class="brewery"><a href="/TwinSailsBrewing">Twin Sails Brewing</a></p>
      <p class="style">Stout - Imperial / Double</p>
      <p class="desc">Imperial stout with toasted coconut.</p>
    </div>
    <div class="details beer">
      <p class="abv">14.3% ABV</p>
      <p class="ibu">N/A IBU</p>
    </div>
  </div>
  <div class="beer-item">
    <a class="label" href="/b/paronomastic-precious-bet/4557393"><img src="/img/precious-bet.png"></a>
    <div class="beer-details">
      <p class="name"><a href="/b/paronomastic-precious-bet/4557393">Precious Bet</a></p>
      <p class="brewery"><a href="/Paronomastic">Paronomastic Brewing</a></p>
      <p class="style">Farmhouse Ale - Saison</p>
    </div>
    <div class="details beer">
      <p class="abv">N/A ABV</p>
    </div>
  </div>
</div>
</body></html>`

func newSearchServer(t *testing.T, query *string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			http.NotFound(w, r)

			return
		}

		*query = r.URL.Query().Get("q")

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(searchPage))
	}))
	t.Cleanup(server.Close)

	return server
}

func TestFindBeer(t *testing.T) {
	var query string

	server := newSearchServer(t, &query)
	untappd := NewUntappedWebIntegration(server.URL+"/", zaptest.NewLogger(t))

	results, err := untappd.FindBeer("Twin Sails Lights Out")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Twin Sails Lights Out", query)

	assert.Equal(t, "Lights Out (2021)", results[0].Name)
	assert.Equal(t, "Stout - Imperial / Double", results[0].Type)
	assert.Equal(t, "Twin Sails Brewing", results[0].Brewery)
	assert.Contains(t, results[0].Description, "toasted coconut")
	require.NotNil(t, results[0].ABV)
	assert.InDelta(t, 14.3, *results[0].ABV, 0.01)
	assert.Equal(t, IntegrationName, *results[0].ExternalSource)
	assert.Equal(t, uint64(4591477), *results[0].ExternalID)

	assert.Equal(t, "Precious Bet", results[1].Name)
	assert.Equal(t, "Farmhouse Ale - Saison", results[1].Type)
	assert.Nil(t, results[1].ABV)
	assert.Equal(t, uint64(4557393), *results[1].ExternalID)
}

func TestFindBeer_ReturnsErrorWhenSearchFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)

	untappd := NewUntappedWebIntegration(server.URL, zaptest.NewLogger(t))

	results, err := untappd.FindBeer("anything")
	require.Error(t, err)
	assert.Empty(t, results)
}
