package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientAttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)

	var out map[string]bool
	err := c.Get(context.Background(), "/ping", nil, &out)
	require.NoError(t, err)
	assert.Empty(t, gotAuth, "no token in context, no header")

	ctx := WithToken(context.Background(), "tok-123")
	err = c.Get(ctx, "/ping", nil, &out)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.True(t, out["ok"])
}

func TestClientQueryParams(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	var out []any
	err := c.Get(context.Background(), "/catalog/products", Params{"search": "burger", "category_id": "3"}, &out)
	require.NoError(t, err)
	assert.Contains(t, gotQuery, "search=burger")
	assert.Contains(t, gotQuery, "category_id=3")
}

func TestClientToleratesEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	var out map[string]any
	require.NoError(t, c.Delete(context.Background(), "/cart/items/1", &out))
	assert.Nil(t, out)
}

func TestClientErrorMessageFromDetailString(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Invalid credentials"}`))
	}))
	defer srv.Close()

	err := NewClient(srv.URL).Post(context.Background(), "/user/login", map[string]string{}, nil)
	require.Error(t, err)
	ue, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, ue.Status)
	assert.Equal(t, "Invalid credentials", ue.Message)
}

func TestClientErrorMessageFromValidationArray(t *testing.T) {
	body := `{"detail":[{"loc":["body","email"],"msg":"field required"},{"loc":["body","password"],"msg":"too short"}]}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(body))
	}))
	defer srv.Close()

	err := NewClient(srv.URL).Post(context.Background(), "/user/register-user", map[string]string{}, nil)
	ue, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, 422, ue.Status)
	assert.Equal(t, "email: field required\npassword: too short", ue.Message)
	assert.NotNil(t, ue.Data["detail"])
}

func TestClientErrorFallbackMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	err := NewClient(srv.URL).Get(context.Background(), "/cart", nil, nil)
	ue, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, "An error occurred", ue.Message)
}
