package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/coderhive/forecast-api/internal/core/domain"
)

type stubManufacturerRepo struct {
	profiles map[string]*domain.Manufacturer
	listErr  error
}

func newStubManufacturerRepo() *stubManufacturerRepo {
	return &stubManufacturerRepo{profiles: make(map[string]*domain.Manufacturer)}
}

func (r *stubManufacturerRepo) FindByEmail(_ context.Context, email string) (*domain.Manufacturer, error) {
	if m, ok := r.profiles[email]; ok {
		clone := *m
		return &clone, nil
	}
	return nil, domain.ErrProfileNotFound
}

func (r *stubManufacturerRepo) List(_ context.Context, limit int) ([]domain.ManufacturerSummary, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]domain.ManufacturerSummary, 0, len(r.profiles))
	for _, m := range r.profiles {
		out = append(out, domain.ManufacturerSummary{ID: m.ID, Name: m.Name, Email: m.Email})
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func TestDashboardService_ResellerOverview(t *testing.T) {
	users := newStubUserRepo()
	users.users["r@example.com"] = &domain.User{ID: "u1", Name: "Rita", Email: "r@example.com", Role: domain.RoleReseller}

	manufacturers := newStubManufacturerRepo()
	manufacturers.profiles["m@example.com"] = &domain.Manufacturer{ID: "m1", Name: "Mumbai Steel", Email: "m@example.com"}

	svc := NewDashboardService(users, manufacturers, zerolog.Nop())
	overview, err := svc.ResellerOverview(context.Background(), domain.Claims{
		ID: "u1", Email: "r@example.com", Role: domain.RoleReseller,
	})
	if err != nil {
		t.Fatalf("overview failed: %v", err)
	}
	if overview.Name != "Rita" {
		t.Fatalf("expected profile name, got %q", overview.Name)
	}
	if len(overview.Manufacturers) != 1 || overview.Manufacturers[0].Name != "Mumbai Steel" {
		t.Fatalf("unexpected directory: %+v", overview.Manufacturers)
	}
}

func TestDashboardService_ResellerOverview_DirectoryDegrades(t *testing.T) {
	users := newStubUserRepo()
	manufacturers := newStubManufacturerRepo()
	manufacturers.listErr = errors.New("mongo down")

	svc := NewDashboardService(users, manufacturers, zerolog.Nop())
	overview, err := svc.ResellerOverview(context.Background(), domain.Claims{
		ID: "u1", Email: "r@example.com", Role: domain.RoleReseller,
	})
	if err != nil {
		t.Fatalf("overview must degrade, not fail: %v", err)
	}
	if overview.Manufacturers == nil || len(overview.Manufacturers) != 0 {
		t.Fatalf("expected empty directory, got %+v", overview.Manufacturers)
	}
	// No profile on record either: display name falls back to the email.
	if overview.Name != "r@example.com" {
		t.Fatalf("expected email fallback, got %q", overview.Name)
	}
}

func TestDashboardService_ManufacturerDashboard_NotFound(t *testing.T) {
	svc := NewDashboardService(newStubUserRepo(), newStubManufacturerRepo(), zerolog.Nop())

	_, err := svc.ManufacturerDashboard(context.Background(), "nobody@example.com")
	if !errors.Is(err, domain.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}
