package victorops_test

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	victorops "github.com/tphakala/go-victorops"
)

func TestRoutingKeyService_Create(t *testing.T) {
	client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api-public/v1/org/routing-keys", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.JSONEq(t, `{"routingKey": "database", "targets": ["team-db"]}`, string(body))

		_, err = w.Write([]byte(`{"routingKey": "database", "targets": ["team-db"]}`))
		assert.NoError(t, err)
	})

	key, _, err := client.RoutingKeys.Create(context.Background(), &victorops.RoutingKey{
		RoutingKey: victorops.String("database"),
		Targets:    []string{"team-db"},
	})
	require.NoError(t, err)
	assert.Equal(t, "database", *key.RoutingKey)
}

func TestRoutingKeyService_List(t *testing.T) {
	client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api-public/v1/org/routing-keys", r.URL.Path)

		_, err := w.Write([]byte(`{"routingKeys": [
			{"routingKey": "database", "targets": [{"policySlug": "pol-db"}]},
			{"routingKey": "frontend", "targets": [{"policySlug": "pol-fe"}]}
		]}`))
		assert.NoError(t, err)
	})

	list, _, err := client.RoutingKeys.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list.RoutingKeys, 2)
	assert.Equal(t, "frontend", *list.RoutingKeys[1].RoutingKey)
	assert.Equal(t, "pol-fe", *list.RoutingKeys[1].Targets[0].PolicySlug)
}

func TestRoutingKeyService_Get(t *testing.T) {
	t.Run("returns the exact match", func(t *testing.T) {
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, err := w.Write([]byte(`{"routingKeys": [
				{"routingKey": "database"},
				{"routingKey": "frontend"}
			]}`))
			assert.NoError(t, err)
		})

		key, _, err := client.RoutingKeys.Get(context.Background(), "frontend")
		require.NoError(t, err)
		require.NotNil(t, key)
		assert.Equal(t, "frontend", *key.RoutingKey)
	})

	t.Run("miss yields nil key, not an error", func(t *testing.T) {
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, err := w.Write([]byte(`{"routingKeys": [{"routingKey": "database"}]}`))
			assert.NoError(t, err)
		})

		key, details, err := client.RoutingKeys.Get(context.Background(), "nonexistent")
		require.NoError(t, err)
		assert.Nil(t, key)
		assert.Equal(t, 200, details.StatusCode)
	})

	t.Run("empty list yields nil key", func(t *testing.T) {
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, err := w.Write([]byte(`{"routingKeys": []}`))
			assert.NoError(t, err)
		})

		key, _, err := client.RoutingKeys.Get(context.Background(), "database")
		require.NoError(t, err)
		assert.Nil(t, key)
	})

	t.Run("entries without a key name are skipped", func(t *testing.T) {
		client := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, err := w.Write([]byte(`{"routingKeys": [
				{"targets": [{"policySlug": "orphan"}]},
				{"routingKey": "database"}
			]}`))
			assert.NoError(t, err)
		})

		key, _, err := client.RoutingKeys.Get(context.Background(), "database")
		require.NoError(t, err)
		require.NotNil(t, key)
		assert.Equal(t, "database", *key.RoutingKey)
	})
}
