//go:build unit

package transport_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/globaltravelbg/package-feed-service/internal/app/config"
	"github.com/globaltravelbg/package-feed-service/internal/app/dto"
	"github.com/globaltravelbg/package-feed-service/internal/app/endpoints"
	"github.com/globaltravelbg/package-feed-service/internal/app/service"
	"github.com/globaltravelbg/package-feed-service/internal/app/transport"
	"github.com/globaltravelbg/package-feed-service/internal/pkg/feed"
	"github.com/globaltravelbg/package-feed-service/internal/pkg/observability"
)

// newTestRouter wires the real pipeline against a stub upstream feed that
// serves windows-1251 bytes like the live one.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	require.NoError(t, dto.InitValidator())

	encode := func(s string) []byte {
		raw, err := charmap.Windows1251.NewEncoder().Bytes([]byte(s))
		require.NoError(t, err)

		return raw
	}

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/xml; charset=windows-1251")

		switch r.URL.Path {
		case "/Packages":
			w.Write(encode(`<?xml version="1.0" encoding="windows-1251"?>` +
				`<Packages><Package><Id>42</Id><Title>Дубай&amp;amp;Абу Даби</Title>` +
				`<Duration>5</Duration><Overnights>4</Overnights></Package></Packages>`))
		case "/Package/42":
			w.Write(encode(`<?xml version="1.0" encoding="windows-1251"?>` +
				`<Package><Id>42</Id><Title>Дубай&amp;amp;Абу Даби</Title></Package>`))
		case "/Destinations":
			w.Write(encode(`<?xml version="1.0" encoding="windows-1251"?>` +
				`<Destinations><Country><Id>1</Id><Name>ОАЕ</Name>` +
				`<Cities><City><Id>10</Id><Name>Дубай</Name></City></Cities>` +
				`</Country></Destinations>`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(upstream.Close)

	client := feed.NewClient(upstream.URL, 2*time.Second, 100)
	catalog := service.NewCatalogService(client, 20)

	cfg := config.Config{}
	endpts := endpoints.Endpoints{Catalog: endpoints.MakeCatalogEndpoint(catalog)}

	return transport.MakeHTTPRouter(&cfg, endpts, observability.InitRegistry())
}

func TestRouter(t *testing.T) {
	router := newTestRouter(t)

	do := func(t *testing.T, path string) *httptest.ResponseRecorder {
		t.Helper()

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		return rec
	}

	t.Run("health", func(t *testing.T) {
		rec := do(t, "/health")
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("packages_list", func(t *testing.T) {
		rec := do(t, "/api/packages")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "public, max-age=3600", rec.Header().Get("Cache-Control"))
		assert.Contains(t, rec.Header().Get("Content-Type"), "charset=utf-8")

		var got []dto.PackageSummary
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "Дубай&Абу Даби", got[0].Title)

		// imageless package serializes an explicit null thumbnail
		assert.Contains(t, rec.Body.String(), `"thumbnail":null`)
	})

	t.Run("package_detail", func(t *testing.T) {
		rec := do(t, "/api/packages/42")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "public, max-age=3600", rec.Header().Get("Cache-Control"))

		var got dto.PackageDetail
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "42", got.ID)
		assert.Equal(t, "Дубай&Абу Даби", got.Title)
	})

	t.Run("package_detail_not_found", func(t *testing.T) {
		rec := do(t, "/api/packages/9999")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.True(t, strings.Contains(rec.Body.String(), "package not found"))
	})

	t.Run("package_detail_invalid_id", func(t *testing.T) {
		rec := do(t, "/api/packages/not-a-number")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("destinations", func(t *testing.T) {
		rec := do(t, "/api/destinations")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "no-store, max-age=0", rec.Header().Get("Cache-Control"))

		var got []dto.Destination
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "country-1", got[0].ID)
		assert.Equal(t, "city-10", got[1].ID)
		assert.Equal(t, "ОАЕ", got[1].CountryName)
	})
}
