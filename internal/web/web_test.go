package web_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HerbHall/motorscope/internal/explorer"
	"github.com/HerbHall/motorscope/internal/testutil"
	"github.com/HerbHall/motorscope/internal/web"
	"github.com/HerbHall/motorscope/pkg/catalog"
)

func setup(t *testing.T, cat *catalog.Catalog) *http.ServeMux {
	t.Helper()
	h, err := web.NewHandler(explorer.NewEngine(cat), nil, web.Site{
		Name:         "Moteurs Essence d'Exception",
		CanonicalURL: "https://example.test",
	}, testutil.Logger(t))
	require.NoError(t, err)

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	return mux
}

func get(mux *http.ServeMux, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestIndex_RendersAllEngines(t *testing.T) {
	mux := setup(t, catalog.NewCatalog())

	w := get(mux, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

	body := w.Body.String()
	assert.Equal(t, catalog.NewCatalog().Len(), strings.Count(body, `<article class="engine"`))
	assert.Contains(t, body, `<link rel="canonical" href="https://example.test">`)
	assert.Contains(t, body, "Efficient le plus primé")
	assert.Contains(t, body, "Puissance record")
}

func TestIndex_OrderFollowsRanking(t *testing.T) {
	mux := setup(t, catalog.NewCatalog())

	body := get(mux, "/?priority=performance").Body.String()
	ferrari := strings.Index(body, `id="ferrari-f163"`)
	toyota := strings.Index(body, `id="toyota-m15a-fxs"`)
	require.Positive(t, ferrari)
	require.Positive(t, toyota)
	assert.Less(t, ferrari, toyota, "most powerful engine should render first")
}

func TestIndex_FilterAndSearch(t *testing.T) {
	mux := setup(t, catalog.NewCatalog())

	body := get(mux, "/?fuel=essence&q=porsche").Body.String()
	assert.Equal(t, 1, strings.Count(body, `<article class="engine"`))
	assert.Contains(t, body, `id="porsche-9a2-evo-gt3"`)
	assert.Contains(t, body, "9,5")
}

func TestIndex_NoResults(t *testing.T) {
	mux := setup(t, catalog.NewCatalog())

	body := get(mux, "/?q=zzzz").Body.String()
	assert.Contains(t, body, "Aucun moteur ne correspond")
}

func TestIndex_InvalidSelectionFallsBack(t *testing.T) {
	mux := setup(t, catalog.NewCatalog())

	w := get(mux, "/?fuel=diesel&priority=speed")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, catalog.NewCatalog().Len(), strings.Count(w.Body.String(), `<article class="engine"`))
}

func TestIndex_ActiveSelection(t *testing.T) {
	mux := setup(t, catalog.NewCatalog())

	body := get(mux, "/?fuel=mild-hybrid&priority=efficiency&q=golf").Body.String()
	assert.Contains(t, body, `name="fuel" value="mild-hybrid"`)
	assert.Contains(t, body, `name="priority" value="efficiency"`)
	assert.Contains(t, body, `name="q" value="golf"`)
	assert.Equal(t, 1, strings.Count(body, "filter active"))
	assert.Equal(t, 1, strings.Count(body, "mode active"))
}

func TestIndex_EditorialSections(t *testing.T) {
	mux := setup(t, catalog.NewCatalog())

	body := get(mux, "/").Body.String()
	for _, heading := range []string{
		"Pourquoi se concentrer sur les moteurs récents ?",
		"Comment nous avons sélectionné ces moteurs",
		"Conseils avant d",
		"Nous passons en revue les motorisations essence",
	} {
		assert.Contains(t, body, heading)
	}
}

func TestIndex_BrokenCatalog(t *testing.T) {
	mux := setup(t, catalog.NewCatalogFromBytes([]byte("engines: []")))

	w := get(mux, "/")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestIndex_UnknownPathNotServed(t *testing.T) {
	mux := setup(t, catalog.NewCatalog())

	w := get(mux, "/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
