package health

import (
	"context"
	"errors"
	"testing"
)

type mockCatalog struct {
	n int
}

func (m *mockCatalog) Len() int { return m.n }

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(_ context.Context) error { return m.err }

func TestCheck_AllHealthy(t *testing.T) {
	svc := New(&mockCatalog{n: 6}, &mockPinger{})

	report := svc.Check(context.Background())
	if report.Status != Healthy {
		t.Fatalf("status = %s, want %s", report.Status, Healthy)
	}
	if report.Checks["catalog"] != CheckOK || report.Checks["analytics"] != CheckOK {
		t.Fatalf("checks = %v", report.Checks)
	}
}

func TestCheck_EmptyCatalogDegrades(t *testing.T) {
	svc := New(&mockCatalog{n: 0}, nil)

	report := svc.Check(context.Background())
	if report.Status != Degraded {
		t.Fatalf("status = %s, want %s", report.Status, Degraded)
	}
	if report.Checks["catalog"] != CheckError {
		t.Fatalf("checks = %v", report.Checks)
	}
}

func TestCheck_AnalyticsFailureDegrades(t *testing.T) {
	svc := New(&mockCatalog{n: 6}, &mockPinger{err: errors.New("down")})

	report := svc.Check(context.Background())
	if report.Status != Degraded {
		t.Fatalf("status = %s, want %s", report.Status, Degraded)
	}
	if report.Checks["analytics"] != CheckError {
		t.Fatalf("checks = %v", report.Checks)
	}
}

func TestCheck_NoAnalyticsConfigured(t *testing.T) {
	svc := New(&mockCatalog{n: 6}, nil)

	report := svc.Check(context.Background())
	if report.Status != Healthy {
		t.Fatalf("status = %s, want %s", report.Status, Healthy)
	}
	if _, ok := report.Checks["analytics"]; ok {
		t.Fatal("analytics check must be absent when no store is configured")
	}
}
