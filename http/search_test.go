package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	fehhttp "github.com/fwojciec/fehwiki/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchService_Search(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "opensearch", q.Get("action"))
		assert.Equal(t, "resolve", q.Get("redirects"))
		assert.Equal(t, "attack plus", q.Get("search"))
		_, _ = w.Write([]byte(`["attack plus",["Attack Plus W","Attack Plus"],["",""],["u1","u2"]]`))
	}))
	defer server.Close()

	svc := fehhttp.NewSearchService(newTestClient(server))

	titles, err := svc.Search(context.Background(), "attack plus")

	require.NoError(t, err)
	assert.Equal(t, []string{"Attack Plus W", "Attack Plus"}, titles)
}
