package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plantkeeper/plantkeeper/internal/client/models"
	"github.com/plantkeeper/plantkeeper/internal/common"
	"github.com/plantkeeper/plantkeeper/internal/logging"
)

const testBaseURL = "http://backend.test"

func newTestClient(t *testing.T) *HTTPClient {
	t.Helper()
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	c := NewHTTPClient(testBaseURL, 0, log)
	httpmock.ActivateNonDefault(c.http)
	t.Cleanup(httpmock.DeactivateAndReset)
	return c
}

func TestHTTPClient_ListPlants(t *testing.T) {
	c := newTestClient(t)

	httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/api/plants",
		httpmock.NewStringResponder(http.StatusOK,
			`[{"id":1,"name":"Tomato","species":"Cherry","plantingDate":"2024-01-15"}]`))

	plants, err := c.ListPlants(context.Background())
	require.NoError(t, err)
	require.Len(t, plants, 1)
	assert.Equal(t, 1, plants[0].ID)
	assert.Equal(t, "Tomato", plants[0].Name)
	assert.Equal(t, "Cherry", plants[0].Species)
	assert.Equal(t, "2024-01-15", plants[0].PlantingDate.String())
}

func TestHTTPClient_CreatePlant_SendsWireFormat(t *testing.T) {
	c := newTestClient(t)

	var gotBody map[string]any
	var gotRequestID string
	httpmock.RegisterResponder(http.MethodPost, testBaseURL+"/api/plants",
		func(req *http.Request) (*http.Response, error) {
			gotRequestID = req.Header.Get(common.RequestIDHeaderName)
			if err := json.NewDecoder(req.Body).Decode(&gotBody); err != nil {
				return nil, err
			}
			return httpmock.NewStringResponse(http.StatusCreated,
				`{"id":5,"name":"Tomato","species":"Cherry","plantingDate":"2024-01-15"}`), nil
		})

	created, err := c.CreatePlant(context.Background(), models.NewPlant{
		Name:         "Tomato",
		Species:      "Cherry",
		PlantingDate: mustDate(t, "2024-01-15"),
	})
	require.NoError(t, err)
	assert.Equal(t, 5, created.ID)

	assert.Equal(t, "Tomato", gotBody["name"])
	assert.Equal(t, "Cherry", gotBody["species"])
	assert.Equal(t, "2024-01-15", gotBody["plantingDate"])
	assert.NotEmpty(t, gotRequestID, "every request carries a correlation id")
}

func TestHTTPClient_GetPlant_NotFound(t *testing.T) {
	c := newTestClient(t)

	httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/api/plants/42",
		httpmock.NewStringResponder(http.StatusNotFound, `plant not found`))

	_, err := c.GetPlant(context.Background(), 42)
	require.Error(t, err)

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestHTTPClient_NetworkFailure_MapsToUnavailable(t *testing.T) {
	c := newTestClient(t)

	httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/api/plants",
		httpmock.NewErrorResponder(assert.AnError))

	_, err := c.ListPlants(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnavailable)
}

func TestHTTPClient_ServerError(t *testing.T) {
	c := newTestClient(t)

	tests := []struct {
		name       string
		statusCode int
	}{
		{"bad_request", http.StatusBadRequest},
		{"internal_server_error", http.StatusInternalServerError},
		{"service_unavailable", http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpmock.Reset()
			httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/api/facts",
				httpmock.NewStringResponder(tt.statusCode, `boom`))

			_, err := c.ListFacts(context.Background())
			require.Error(t, err)

			var httpErr *HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, tt.statusCode, httpErr.Status)
			assert.NotErrorIs(t, err, common.ErrNotFound)
		})
	}
}

func TestHTTPClient_SetTaskStatus(t *testing.T) {
	c := newTestClient(t)

	var gotBody map[string]bool
	httpmock.RegisterResponder(http.MethodPut, testBaseURL+"/api/plants/3/tasks/9/status",
		func(req *http.Request) (*http.Response, error) {
			if err := json.NewDecoder(req.Body).Decode(&gotBody); err != nil {
				return nil, err
			}
			return httpmock.NewStringResponse(http.StatusOK,
				`{"id":9,"taskType":"watering","description":"x","dueDate":"2024-06-01","priority":2,"completed":true}`), nil
		})

	updated, err := c.SetTaskStatus(context.Background(), 3, 9, true)
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.Equal(t, map[string]bool{"completed": true}, gotBody)
}

func TestHTTPClient_DeleteTask(t *testing.T) {
	c := newTestClient(t)

	httpmock.RegisterResponder(http.MethodDelete, testBaseURL+"/api/plants/3/tasks/9",
		httpmock.NewStringResponder(http.StatusNoContent, ""))

	require.NoError(t, c.DeleteTask(context.Background(), 3, 9))
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
}

func TestHTTPClient_RandomFact(t *testing.T) {
	c := newTestClient(t)

	httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/api/facts/random",
		httpmock.NewStringResponder(http.StatusOK,
			`{"id":2,"plantType":"Basil","category":"watering","fact":"Basil likes moist soil."}`))

	fact, err := c.RandomFact(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Basil", fact.PlantType)
}

func TestHTTPClient_InvalidJSONResponse(t *testing.T) {
	c := newTestClient(t)

	httpmock.RegisterResponder(http.MethodGet, testBaseURL+"/api/suppliers",
		httpmock.NewStringResponder(http.StatusOK, `{invalid json`))

	_, err := c.ListSuppliers(context.Background())
	require.Error(t, err)
}
