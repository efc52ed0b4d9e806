package repos

import (
	"context"
	"testing"

	"github.com/oakline/rental-backend/internal/repos/testutil"
)

func TestTenantRepoUpdatePersistsWholeRow(t *testing.T) {
	gormDB := testutil.DB(t)
	repo := NewTenantRepo(gormDB, testutil.Logger(t))
	ctx := context.Background()

	tenant := testutil.SeedTenantChain(t, gormDB)

	tenant.FirstName = "Jane"
	tenant.IsPrimary = false
	if _, err := repo.Update(ctx, nil, tenant); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := repo.GetByID(ctx, nil, tenant.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.FirstName != "Jane" {
		t.Fatalf("expected firstName Jane, got %q", got.FirstName)
	}
	if got.IsPrimary {
		t.Fatalf("expected isPrimary false after update")
	}
	if got.LastName != tenant.LastName || got.Dob != tenant.Dob || got.SSN != tenant.SSN {
		t.Fatalf("unexpected field drift: %+v", got)
	}
}
