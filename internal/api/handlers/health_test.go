package handlers

import (
	"net/http"
	"testing"
	"time"

	"orghub-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.GET("/health", Health)

	recorder := httpSuite.MakeRequest("GET", "/health", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var response HealthResponse
	testutils.ParseJSONResponse(t, recorder, &response)
	assert.True(t, response.Success)
	assert.Equal(t, "Server is running", response.Message)

	ts, err := time.Parse(time.RFC3339, response.Timestamp)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), ts, time.Minute)
}
