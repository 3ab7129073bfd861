package cryptorank

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GetFunds(t *testing.T) {
	t.Run("decodes fund map", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/funds/map", r.URL.Path)
			assert.Equal(t, "secret", r.Header.Get("X-Api-Key"))
			w.Write([]byte(`{"data":[
				{"id":1,"key":"a16z","name":"Andreessen Horowitz","tier":1,"type":"VC"},
				{"id":2,"key":"anon","name":"Anon Fund","tier":null,"type":null}
			]}`))
		}))
		defer server.Close()

		client := NewClient("secret")
		client.BaseURL = server.URL

		funds, err := client.GetFunds(context.Background())
		require.NoError(t, err)

		tier := 1
		fundType := "VC"
		require.Equal(
			t,
			"",
			cmp.Diff(
				[]Fund{
					{ID: 1, Key: "a16z", Name: "Andreessen Horowitz", Tier: &tier, Type: &fundType},
					{ID: 2, Key: "anon", Name: "Anon Fund"},
				},
				funds,
			),
		)
	})

	t.Run("upstream error keeps body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"status":{"errorMessage":"plan limit"}}`))
		}))
		defer server.Close()

		client := NewClient("secret")
		client.BaseURL = server.URL

		_, err := client.GetFunds(context.Background())
		apiErr := APIError{}
		require.True(t, errors.As(err, &apiErr))
		require.Contains(t, apiErr.Body, "plan limit")
	})
}
