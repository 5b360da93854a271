package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wellness/config"
	"wellness/history"
	"wellness/middleware"
	"wellness/risk"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(t *testing.T) (http.Handler, *history.Store) {
	t.Helper()
	store := history.NewStore(history.DefaultCapacity)
	return newTestRouter(t, store, 2), store
}

func newTestRouter(t *testing.T, store *history.Store, analyzeMax int) http.Handler {
	t.Helper()
	cfg := &config.Config{
		Server:    config.ServerConfig{Mode: "test"},
		JWT:       config.JWTConfig{Secret: "router-secret", ExpireTime: time.Hour},
		RateLimit: config.RateLimitConfig{LoginMax: 5, AnalyzeMax: analyzeMax, Window: time.Minute},
	}
	config.GlobalConfig = cfg
	t.Cleanup(func() { config.GlobalConfig = nil })
	middleware.InitJWT(cfg)

	engine, err := risk.NewEngine(risk.ProfileAgent)
	require.NoError(t, err)
	return SetupRouter(cfg, engine, store)
}

func agentInput() risk.Input {
	return risk.Input{
		Age: 28, IrregularPeriods: risk.No, WeightGain: risk.No, Acne: risk.No, HairGrowth: risk.No,
		Hemoglobin: 12, Fatigue: 3, DietQuality: risk.DietGood, HeavyFlow: risk.No,
		BloodPressure: 118, BloodSugar: 88, PregnancyWeightGain: risk.No, WeightChange: risk.No,
		HairLoss: risk.No, BMI: 22, WorkoutMinutes: 20, ExerciseType: risk.ExerciseCardio,
		FamilyHistory: risk.No, WeightKg: 58,
	}
}

func TestHealth(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))
	require.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), `"profile":"agent"`)
}

func TestCORSPreflight(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("OPTIONS", "/api/v1/wellness/analyze", nil))
	assert.Equal(t, 204, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestSwaggerDoc(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/swagger/doc.json", nil))
	require.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "/api/v1/wellness/analyze")
}

func TestAnalyzeFlow_AnonymousSession(t *testing.T) {
	r, store := setupTestRouter(t)

	raw, _ := json.Marshal(agentInput())
	req := httptest.NewRequest("POST", "/api/v1/wellness/analyze", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, 200, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			Profile string `json:"profile"`
			Risks   []struct {
				Category string `json:"category"`
			} `json:"risks"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "agent", resp.Data.Profile)
	assert.Len(t, resp.Data.Risks, 4)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)

	req = httptest.NewRequest("GET", "/api/v1/wellness/history", nil)
	req.AddCookie(cookies[0])
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, 200, w.Code)
	assert.Len(t, store.Entries("anon:"+cookies[0].Value), 1)
	assert.Equal(t, 1, store.Sessions())
}

func TestAnalyzeRateLimited(t *testing.T) {
	r, _ := setupTestRouter(t)

	raw, _ := json.Marshal(agentInput())
	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("POST", "/api/v1/wellness/analyze", bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
		req.RemoteAddr = "10.1.2.3:4567"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{200, 200, 429}, codes)
}

func TestEmailSummaryRequiresLogin(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/api/v1/wellness/history/email", nil))
	assert.Equal(t, 401, w.Code)
}

func TestHistoryIsolatedByUser(t *testing.T) {
	r, store := setupTestRouter(t)

	token, err := middleware.GenerateToken(42, "dana", time.Hour)
	require.NoError(t, err)

	raw, _ := json.Marshal(agentInput())
	req := httptest.NewRequest("POST", "/api/v1/wellness/analyze", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, 200, w.Code)

	assert.Len(t, store.Entries(middleware.UserSessionKey(42)), 1)
	assert.Empty(t, store.Entries(middleware.UserSessionKey(43)))
}

func TestCookielessClientsKeepSessionCountBounded(t *testing.T) {
	store := history.NewStore(history.DefaultCapacity, history.WithMaxSessions(50))
	r := newTestRouter(t, store, 1000)

	raw, _ := json.Marshal(agentInput())
	for i := 0; i < 500; i++ {
		req := httptest.NewRequest("POST", "/api/v1/wellness/analyze", bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
		req.RemoteAddr = fmt.Sprintf("10.9.%d.%d:1234", i/250, i%250)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, 200, w.Code, w.Body.String())
	}

	assert.Equal(t, 50, store.Sessions())
}
