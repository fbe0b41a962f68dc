package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ifa360/ifa360-server/pkg/validation"
)

func newProjectionEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	validation.Init()
	h := NewProjectionHandler(testLogger())
	r := gin.New()
	r.POST("/api/projection", h.Simulate)
	return r
}

func TestProjectionEndpoint(t *testing.T) {
	r := newProjectionEngine()

	w := postJSON(r, "/api/projection", `{"initial":0,"monthly":2500,"years":10,"growth":6,"escalation":0}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Series []struct {
				Year    int     `json:"year"`
				Balance float64 `json:"balance"`
			} `json:"series"`
			FinalValue         float64 `json:"final_value"`
			TotalContributions float64 `json:"total_contributions"`
			Gain               float64 `json:"gain"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Len(t, resp.Data.Series, 10)
	assert.Equal(t, 1, resp.Data.Series[0].Year)
	assert.Equal(t, 10, resp.Data.Series[9].Year)
	assert.InDelta(t, 300000, resp.Data.TotalContributions, 1e-6)
	assert.Greater(t, resp.Data.FinalValue, resp.Data.TotalContributions)
	assert.InDelta(t, resp.Data.FinalValue-resp.Data.TotalContributions, resp.Data.Gain, 1e-6)
}

func TestProjectionEndpointRejectsBadInput(t *testing.T) {
	r := newProjectionEngine()

	cases := []struct {
		name string
		body string
	}{
		{"missing years", `{"monthly":100}`},
		{"zero years", `{"monthly":100,"years":0}`},
		{"negative monthly", `{"monthly":-100,"years":5}`},
		{"negative growth", `{"monthly":100,"years":5,"growth":-1}`},
		{"not json", `monthly=100`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := postJSON(r, "/api/projection", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
