package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateHouse(t *testing.T) {
	app, _, db := setupTestServer(t)
	user := seedUser(t, db, "resident@x.com")

	housesPath := func(userID uint) string {
		return fmt.Sprintf("/api/users/%d/houses", userID)
	}

	t.Run("creates house with creator as occupant", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodPost, housesPath(user.ID),
			map[string]string{"address": "123 Main St"})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, "123 Main St", body["address"])
		assert.Equal(t, "House created successfully", body["message"])

		resp, body = doJSON(t, app, http.MethodGet, housesPath(user.ID), nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		houses := body["houses"].([]any)
		require.Len(t, houses, 1)
		assert.Equal(t, "123 Main St", houses[0].(map[string]any)["address"])
	})

	t.Run("duplicate address", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodPost, housesPath(user.ID),
			map[string]string{"address": "123 Main St"})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "House with this address already exists", body["error"])
	})

	t.Run("missing address", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodPost, housesPath(user.ID),
			map[string]string{})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Address is required", body["error"])
	})

	t.Run("unknown user", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodPost, housesPath(9999),
			map[string]string{"address": "456 Oak Ave"})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "User not found", body["error"])
	})
}

func TestGetUserHouses(t *testing.T) {
	app, _, db := setupTestServer(t)
	user := seedUser(t, db, "resident@x.com")
	other := seedUser(t, db, "other@x.com")

	doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/users/%d/houses", user.ID),
		map[string]string{"address": "123 Main St"})
	doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/users/%d/houses", user.ID),
		map[string]string{"address": "456 Oak Ave"})

	t.Run("lists only the user's houses", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodGet,
			fmt.Sprintf("/api/users/%d/houses", user.ID), nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Len(t, body["houses"].([]any), 2)

		resp, body = doJSON(t, app, http.MethodGet,
			fmt.Sprintf("/api/users/%d/houses", other.ID), nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Empty(t, body["houses"])
	})

	t.Run("unknown user", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodGet, "/api/users/9999/houses", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
