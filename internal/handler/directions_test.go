package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/kogoapp/kogo-server/internal/cache"
	"github.com/kogoapp/kogo-server/internal/handler"
	"github.com/kogoapp/kogo-server/internal/models"
	"github.com/kogoapp/kogo-server/internal/naver"
)

func directionsContext(e *echo.Echo, query string) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/directions?"+query, nil)
	return e.NewContext(req, rec), rec
}

func TestDirectionsMissingParams(t *testing.T) {
	e := echo.New()
	h := handler.NewDirectionsHandler(naver.NewClient(naver.Config{}), cache.NewNoOpCache())

	queries := []string{
		"",
		"startLat=37.5&startLng=127.0&endLat=37.6",
		"startLat=37.5&endLat=37.6&endLng=127.1",
	}
	for _, q := range queries {
		c, rec := directionsContext(e, q)
		if err := h.Directions(c); err != nil {
			t.Fatalf("directions(%q): %v", q, err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Errorf("query %q: status = %d, want 400", q, rec.Code)
		}

		var resp models.ErrorResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.Message != "Missing startLat, startLng, endLat, endLng" {
			t.Errorf("query %q: message = %q", q, resp.Message)
		}
	}
}

func TestDirectionsInvalidCoordinates(t *testing.T) {
	e := echo.New()
	h := handler.NewDirectionsHandler(naver.NewClient(naver.Config{}), cache.NewNoOpCache())

	queries := []string{
		"startLat=abc&startLng=127.0&endLat=37.6&endLng=127.1",
		"startLat=NaN&startLng=127.0&endLat=37.6&endLng=127.1",
		"startLat=37.5&startLng=127.0&endLat=Inf&endLng=127.1",
	}
	for _, q := range queries {
		c, rec := directionsContext(e, q)
		if err := h.Directions(c); err != nil {
			t.Fatalf("directions(%q): %v", q, err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Errorf("query %q: status = %d, want 400", q, rec.Code)
		}
	}
}

func TestDirectionsMissingCredentials(t *testing.T) {
	e := echo.New()
	h := handler.NewDirectionsHandler(naver.NewClient(naver.Config{}), cache.NewNoOpCache())

	c, rec := directionsContext(e, "startLat=37.5&startLng=127.0&endLat=37.6&endLng=127.1")
	if err := h.Directions(c); err != nil {
		t.Fatalf("directions: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}

	var resp models.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Error != "config_error" {
		t.Errorf("error = %q, want config_error", resp.Error)
	}
}

func TestDirectionsSuccess(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Naver-Client-Id"); got != "id" {
			t.Errorf("client id header = %q", got)
		}
		if got := r.URL.Query().Get("start"); got != "127,37.5" {
			t.Errorf("start param = %q, want lng,lat order", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"route":{"traoptimal":[{
			"summary":{"duration":930000,"distance":3200},
			"guide":[{"instructions":"출구 8","type":1}]
		}]}}`))
	}))
	defer upstream.Close()

	e := echo.New()
	client := naver.NewClient(naver.Config{
		ClientID:      "id",
		ClientSecret:  "secret",
		DirectionsURL: upstream.URL,
	})
	h := handler.NewDirectionsHandler(client, cache.NewNoOpCache())

	c, rec := directionsContext(e, "startLat=37.5&startLng=127.0&endLat=37.6&endLng=127.1")
	if err := h.Directions(c); err != nil {
		t.Fatalf("directions: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var result models.DirectionsResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Duration != 930 || result.DurationText != "About 16 min" {
		t.Errorf("duration = %d / %q", result.Duration, result.DurationText)
	}
	if len(result.Guide) != 1 || result.Guide[0].InstructionEn != "Exit 8" {
		t.Errorf("guide = %+v", result.Guide)
	}
}

func TestDirectionsUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer upstream.Close()

	e := echo.New()
	client := naver.NewClient(naver.Config{
		ClientID:      "id",
		ClientSecret:  "secret",
		DirectionsURL: upstream.URL,
	})
	h := handler.NewDirectionsHandler(client, cache.NewNoOpCache())

	c, rec := directionsContext(e, "startLat=37.5&startLng=127.0&endLat=37.6&endLng=127.1")
	if err := h.Directions(c); err != nil {
		t.Fatalf("directions: %v", err)
	}
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}

	var resp models.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Error != "upstream_error" {
		t.Errorf("error = %q, want upstream_error", resp.Error)
	}
}
