package repos

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/oakline/rental-backend/internal/domain"
	"github.com/oakline/rental-backend/internal/repos/testutil"
)

func TestPropertyManagerRepo(t *testing.T) {
	gormDB := testutil.DB(t)
	repo := NewPropertyManagerRepo(gormDB, testutil.Logger(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, nil, &domain.PropertyManager{Name: "John Doe"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("Create: expected assigned id")
	}

	got, err := repo.GetByID(ctx, nil, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "John Doe" {
		t.Fatalf("GetByID: unexpected name %q", got.Name)
	}

	got.Name = "Jane Doe"
	updated, err := repo.Update(ctx, nil, got)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "Jane Doe" || updated.ID != created.ID {
		t.Fatalf("Update: unexpected result %+v", updated)
	}

	all, err := repo.List(ctx, nil)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("List: expected 1 manager, got %d", len(all))
	}

	exists, err := repo.Exists(ctx, nil, created.ID)
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if !exists {
		t.Fatalf("Exists: expected true")
	}

	exists, err = repo.Exists(ctx, nil, 999)
	if err != nil {
		t.Fatalf("Exists (missing): %v", err)
	}
	if exists {
		t.Fatalf("Exists (missing): expected false")
	}

	if _, err := repo.GetByID(ctx, nil, 999); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("GetByID (missing): expected ErrRecordNotFound, got %v", err)
	}
}

func TestPropertyManagerRepoListOrder(t *testing.T) {
	gormDB := testutil.DB(t)
	repo := NewPropertyManagerRepo(gormDB, testutil.Logger(t))
	ctx := context.Background()

	for _, name := range []string{"First", "Second", "Third"} {
		if _, err := repo.Create(ctx, nil, &domain.PropertyManager{Name: name}); err != nil {
			t.Fatalf("Create %q: %v", name, err)
		}
	}

	all, err := repo.List(ctx, nil)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("List: expected 3 managers, got %d", len(all))
	}
	for i, want := range []string{"First", "Second", "Third"} {
		if all[i].Name != want {
			t.Fatalf("List: position %d = %q, want %q", i, all[i].Name, want)
		}
	}
}
