// SPDX-License-Identifier: MIT
package health

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ManuGH/stash/internal/collection"
)

func unhealthyChecker(name string) Checker {
	return NewFuncChecker(name, func(context.Context) CheckResult {
		return CheckResult{Status: StatusUnhealthy, Error: "down"}
	})
}

func degradedChecker(name string) Checker {
	return NewFuncChecker(name, func(context.Context) CheckResult {
		return CheckResult{Status: StatusDegraded, Message: "slow"}
	})
}

func TestHealthWithoutCheckers(t *testing.T) {
	m := NewManager("v1")
	resp := m.Health(context.Background(), false)
	if resp.Status != StatusHealthy {
		t.Errorf("Status = %v, want healthy", resp.Status)
	}
	if resp.Version != "v1" {
		t.Errorf("Version = %v, want v1", resp.Version)
	}
}

func TestHealthVerboseAggregatesStatus(t *testing.T) {
	tests := []struct {
		name     string
		checkers []Checker
		want     Status
	}{
		{
			name:     "all healthy",
			checkers: []Checker{NewRegistryChecker(collection.NewRegistry())},
			want:     StatusHealthy,
		},
		{
			name:     "degraded wins over healthy",
			checkers: []Checker{NewRegistryChecker(collection.NewRegistry()), degradedChecker("slowpoke")},
			want:     StatusDegraded,
		},
		{
			name:     "unhealthy wins over degraded",
			checkers: []Checker{degradedChecker("slowpoke"), unhealthyChecker("broken")},
			want:     StatusUnhealthy,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewManager("v1")
			for _, c := range tc.checkers {
				m.RegisterChecker(c)
			}
			resp := m.Health(context.Background(), true)
			if resp.Status != tc.want {
				t.Errorf("Status = %v, want %v", resp.Status, tc.want)
			}
			if len(resp.Checks) != len(tc.checkers) {
				t.Errorf("len(Checks) = %d, want %d", len(resp.Checks), len(tc.checkers))
			}
		})
	}
}

func TestReadyReflectsUnhealthyChecker(t *testing.T) {
	m := NewManager("v1")
	m.RegisterChecker(unhealthyChecker("broken"))

	resp := m.Ready(context.Background())
	if resp.Ready {
		t.Error("Ready = true with unhealthy checker, want false")
	}
	if resp.Status != StatusUnhealthy {
		t.Errorf("Status = %v, want unhealthy", resp.Status)
	}
}

func TestServeHealthAlways200(t *testing.T) {
	m := NewManager("v1")
	m.RegisterChecker(unhealthyChecker("broken"))

	req := httptest.NewRequest(http.MethodGet, "/healthz?verbose=true", nil)
	rec := httptest.NewRecorder()
	m.ServeHealth(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (liveness never fails)", rec.Code)
	}
	var resp HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if resp.Status != StatusUnhealthy {
		t.Errorf("body status = %v, want unhealthy", resp.Status)
	}
}

func TestServeReady503WhenUnhealthy(t *testing.T) {
	m := NewManager("v1")
	m.RegisterChecker(unhealthyChecker("broken"))

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rec := httptest.NewRecorder()
	m.ServeReady(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}

func TestRegistryCheckerDetails(t *testing.T) {
	reg := collection.NewRegistry()
	c, err := reg.Create("notes")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	c.Add("one")
	c.Add("two")

	result := NewRegistryChecker(reg).Check(context.Background())
	if result.Status != StatusHealthy {
		t.Fatalf("Status = %v, want healthy", result.Status)
	}
	if result.Details["collections"] != 1 {
		t.Errorf("collections = %v, want 1", result.Details["collections"])
	}
	if result.Details["items"] != 2 {
		t.Errorf("items = %v, want 2", result.Details["items"])
	}
}

func TestRegistryCheckerNilRegistry(t *testing.T) {
	result := NewRegistryChecker(nil).Check(context.Background())
	if result.Status != StatusUnhealthy {
		t.Errorf("Status = %v, want unhealthy for nil registry", result.Status)
	}
}
