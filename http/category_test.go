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

func TestCategoryService_ListCategoryMembers(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "categorymembers", q.Get("list"))
		assert.Equal(t, "Category:Swords", q.Get("cmtitle"))
		assert.Equal(t, "500", q.Get("cmlimit"))
		assert.Equal(t, "page", q.Get("cmtype"))
		if q.Get("cmcontinue") == "" {
			_, _ = w.Write([]byte(`{"continue":{"cmcontinue":"page|RAGNELL|1"},"query":{"categorymembers":[{"title":"Armads"},{"title":"Falchion"}]}}`))
			return
		}
		assert.Equal(t, "page|RAGNELL|1", q.Get("cmcontinue"))
		_, _ = w.Write([]byte(`{"query":{"categorymembers":[{"title":"Ragnell"}]}}`))
	}))
	defer server.Close()

	svc := fehhttp.NewCategoryService(newTestClient(server))

	members, next, err := svc.ListCategoryMembers(context.Background(), "Category:Swords", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Armads", "Falchion"}, members)
	assert.Equal(t, "page|RAGNELL|1", next)

	members, next, err = svc.ListCategoryMembers(context.Background(), "Category:Swords", next)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ragnell"}, members)
	assert.Empty(t, next)
}
