//go:build unit

package feed_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/globaltravelbg/package-feed-service/internal/pkg/feed"
)

// encodeWindows1251 turns a UTF-8 fixture into the bytes the live feed
// actually serves.
func encodeWindows1251(t *testing.T, s string) []byte {
	t.Helper()

	raw, err := charmap.Windows1251.NewEncoder().Bytes([]byte(s))
	require.NoError(t, err)

	return raw
}

func TestClient_Fetch_DecodesWindows1251(t *testing.T) {
	const document = `<?xml version="1.0" encoding="windows-1251"?>
<Destinations>
	<Country><Id>1</Id><Name>Италия</Name>
		<Cities><City><Id>10</Id><Name>Рим</Name></City></Cities>
	</Country>
</Destinations>`

	var gotAccept, gotCacheControl string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotCacheControl = r.Header.Get("Cache-Control")

		w.Header().Set("Content-Type", "text/xml; charset=windows-1251")
		w.Write(encodeWindows1251(t, document)) //nolint:errcheck
	}))
	defer ts.Close()

	client := feed.NewClient(ts.URL, 2*time.Second, 100)

	var doc feed.DestinationsDocument
	require.NoError(t, client.Fetch(context.Background(), "Destinations", &doc))

	require.Len(t, doc.Countries, 1)
	assert.Equal(t, "Италия", doc.Countries[0].Name)
	require.Len(t, doc.Countries[0].Cities.Items, 1)
	assert.Equal(t, "Рим", doc.Countries[0].Cities.Items[0].Name)

	assert.Contains(t, gotAccept, "application/xml")
	assert.Equal(t, "no-cache", gotCacheControl)
}

func TestClient_Fetch_NonOKStatus(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	client := feed.NewClient(ts.URL, 2*time.Second, 100)

	var doc feed.PackageDocument
	err := client.Fetch(context.Background(), "Package/9999", &doc)
	require.Error(t, err)

	var upstream *feed.UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, http.StatusNotFound, upstream.StatusCode)
	assert.Contains(t, upstream.URL, "/Package/9999")
}

func TestClient_Fetch_Timeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	client := feed.NewClient(ts.URL, 50*time.Millisecond, 100)

	var doc feed.PackagesDocument
	err := client.Fetch(context.Background(), "Packages", &doc)
	assert.Error(t, err)
}

func TestClient_Fetch_MalformedXML(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("<Packages><Package>")) //nolint:errcheck
	}))
	defer ts.Close()

	client := feed.NewClient(ts.URL, 2*time.Second, 100)

	var doc feed.PackagesDocument
	assert.Error(t, client.Fetch(context.Background(), "Packages", &doc))
}
