package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tickerlens/tickerlens/internal/app"
	"github.com/tickerlens/tickerlens/internal/clients/insight"
	"github.com/tickerlens/tickerlens/internal/common"
	"github.com/tickerlens/tickerlens/internal/render"
)

// newTestApp wires an App against a stub upstream engine.
func newTestApp(t *testing.T, upstream http.HandlerFunc) *app.App {
	t.Helper()
	engine := httptest.NewServer(upstream)
	t.Cleanup(engine.Close)

	logger := common.NewSilentLogger()
	return &app.App{
		Config: common.NewDefaultConfig(),
		Logger: logger,
		Insight: insight.NewClient(
			insight.WithBaseURL(engine.URL),
			insight.WithLogger(logger),
		),
	}
}

func postAnalyze(t *testing.T, handler http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) analyzeEnvelope {
	t.Helper()
	var env analyzeEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestHandleAnalyze_FullSuccess(t *testing.T) {
	a := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"success": true,
			"current_analysis": {
				"analysis": {
					"action": "buy",
					"quantity": 100,
					"confidence": 0.734,
					"price_targets": {"current_price": 98.2, "fair_value": 105, "buy_target": 99.75, "sell_target": 115.5},
					"agent_signals": [{"agent": "sentiment_analysis_agent", "signal": "bullish", "confidence": 0.8}]
				}
			}
		}`))
	})
	handler := NewServer(a).Handler()

	rec := postAnalyze(t, handler, `{"ticker":"aapl"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Empty(t, env.Error)
	require.Len(t, env.Sections, 5)
	assert.Contains(t, env.Sections[render.ContainerDecision], "$105.00")
	assert.Contains(t, env.Sections[render.ContainerAgentReasoning], "Sentiment Analysis")
	assert.Contains(t, env.Sections[render.ContainerMomentum], "No momentum analysis available")
}

func TestHandleAnalyze_InputValidation(t *testing.T) {
	a := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("upstream must not be called for invalid input")
	})
	handler := NewServer(a).Handler()

	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing ticker", `{}`, "Ticker symbol is required"},
		{"news count out of range", `{"ticker":"AAPL","num_of_news":200}`, "Number of news articles must be between 1 and 100"},
		{"bad end date", `{"ticker":"AAPL","end_date":"not-a-date"}`, "End date must be a valid date (YYYY-MM-DD)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postAnalyze(t, handler, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			env := decodeEnvelope(t, rec)
			assert.False(t, env.Success)
			assert.Equal(t, tt.want, env.Error)
			assert.Equal(t, 5000, env.DisplayMS)
		})
	}
}

func TestHandleAnalyze_DeclaredFailureUsesEngineError(t *testing.T) {
	a := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success":false,"error":"Analysis engine overloaded"}`))
	})
	handler := NewServer(a).Handler()

	rec := postAnalyze(t, handler, `{"ticker":"AAPL"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "Analysis engine overloaded", env.Error)
	assert.Nil(t, env.Sections)
}

func TestHandleAnalyze_DeclaredFailureWithoutMessage(t *testing.T) {
	a := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":false}`))
	})
	handler := NewServer(a).Handler()

	env := decodeEnvelope(t, postAnalyze(t, handler, `{"ticker":"AAPL"}`))
	assert.Equal(t, MsgAnalysisFailed, env.Error)
}

func TestHandleAnalyze_TransportFailure(t *testing.T) {
	a := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("definitely not json"))
	})
	handler := NewServer(a).Handler()

	rec := postAnalyze(t, handler, `{"ticker":"AAPL"}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, MsgFetchFailed, env.Error)
	assert.Equal(t, 5000, env.DisplayMS)
}

func TestHandleAnalyze_IncompletePayload(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing current_analysis", `{"success":true}`, render.MsgMissingAnalysis},
		{"missing analysis detail", `{"success":true,"current_analysis":{}}`, render.MsgMissingAnalysisDetail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(tt.body))
			})
			handler := NewServer(a).Handler()

			rec := postAnalyze(t, handler, `{"ticker":"AAPL"}`)

			assert.Equal(t, http.StatusOK, rec.Code)
			env := decodeEnvelope(t, rec)
			assert.False(t, env.Success)
			assert.Equal(t, tt.want, env.Error)
			assert.Nil(t, env.Sections)
		})
	}
}

func TestHandleAnalyze_MalformedBody(t *testing.T) {
	a := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {})
	handler := NewServer(a).Handler()

	rec := postAnalyze(t, handler, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAnalyze_MethodNotAllowed(t *testing.T) {
	a := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {})
	handler := NewServer(a).Handler()

	req := httptest.NewRequest(http.MethodGet, "/api/analyze", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "POST", rec.Header().Get("Allow"))
}

func TestHandleIndex(t *testing.T) {
	a := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {})
	handler := NewServer(a).Handler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	body := rec.Body.String()
	assert.Contains(t, body, `id="decision-pricing"`)
	assert.Contains(t, body, `id="options-strategy"`)
	assert.Contains(t, body, `id="agent-reasoning"`)
	assert.Contains(t, body, `id="momentum-analysis"`)
	assert.Contains(t, body, `id="short-term-reasoning"`)
}

func TestHandleIndex_IdenticalOnReload(t *testing.T) {
	a := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {})
	handler := NewServer(a).Handler()

	get := func() string {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		return rec.Body.String()
	}

	// Reloads must serve the same shell; nothing in it is claimed away by
	// earlier requests.
	assert.Equal(t, get(), get())
}

func TestHandleAnalyze_AssetsInEveryResponse(t *testing.T) {
	a := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"current_analysis":{"analysis":{"action":"buy","quantity":100,"confidence":0.7}}}`))
	})
	handler := NewServer(a).Handler()

	// Every analyze response carries exactly one copy of the shared style,
	// regardless of how many requests came before it.
	for i := 0; i < 2; i++ {
		env := decodeEnvelope(t, postAnalyze(t, handler, `{"ticker":"AAPL"}`))
		require.True(t, env.Success)
		var all strings.Builder
		for _, markup := range env.Sections {
			all.WriteString(markup)
		}
		assert.Equal(t, 1, strings.Count(all.String(), `<style id="dashboard-style">`))
	}
}

func TestHandleIndex_UnknownPath(t *testing.T) {
	a := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {})
	handler := NewServer(a).Handler()

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	a := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {})
	handler := NewServer(a).Handler()

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandleVersion(t *testing.T) {
	a := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {})
	handler := NewServer(a).Handler()

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, "version")
}

func TestHandleConfig(t *testing.T) {
	a := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {})
	handler := NewServer(a).Handler()

	req := httptest.NewRequest(http.MethodGet, "/api/config", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "development", body["environment"])
	assert.Equal(t, float64(5), body["default_news_count"])
}

func TestCorrelationIDMiddleware(t *testing.T) {
	a := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {})
	handler := NewServer(a).Handler()

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
}
