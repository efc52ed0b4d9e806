package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakline/rental-backend/internal/domain"
	"github.com/oakline/rental-backend/internal/pkg/apierr"
	"github.com/oakline/rental-backend/internal/repos"
	"github.com/oakline/rental-backend/internal/repos/testutil"
)

func newPropertyService(t *testing.T) (PropertyService, repos.PropertyManagerRepo) {
	gormDB := testutil.DB(t)
	log := testutil.Logger(t)
	managerRepo := repos.NewPropertyManagerRepo(gormDB, log)
	propertyRepo := repos.NewPropertyRepo(gormDB, log)
	return NewPropertyService(gormDB, log, propertyRepo, managerRepo), managerRepo
}

func TestPropertyCreateRequiresExistingManager(t *testing.T) {
	svc, _ := newPropertyService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreatePropertyInput{
		Address:           "123 Main St",
		Name:              "Main Street Lofts",
		PropertyManagerID: 42,
	})
	require.Error(t, err)

	var apiErr *apierr.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, apierr.CodeNotFound, apiErr.Code)
}

func TestPropertyCreateAndGetRoundTrip(t *testing.T) {
	svc, managerRepo := newPropertyService(t)
	ctx := context.Background()

	manager, err := managerRepo.Create(ctx, nil, &domain.PropertyManager{Name: "John Doe"})
	require.NoError(t, err)

	created, err := svc.Create(ctx, CreatePropertyInput{
		Address:           "123 Main St",
		Name:              "Main Street Lofts",
		PropertyManagerID: manager.ID,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Address, got.Address)
	assert.Equal(t, created.Name, got.Name)
	assert.Equal(t, created.PropertyManagerID, got.PropertyManagerID)
}

func TestPropertyUpdateMergesPartialFields(t *testing.T) {
	svc, managerRepo := newPropertyService(t)
	ctx := context.Background()

	manager, err := managerRepo.Create(ctx, nil, &domain.PropertyManager{Name: "John Doe"})
	require.NoError(t, err)

	created, err := svc.Create(ctx, CreatePropertyInput{
		Address:           "123 Main St",
		Name:              "Main Street Lofts",
		PropertyManagerID: manager.ID,
	})
	require.NoError(t, err)

	newAddress := "456 Oak Ave"
	updated, err := svc.Update(ctx, created.ID, UpdatePropertyInput{Address: &newAddress})
	require.NoError(t, err)
	assert.Equal(t, "456 Oak Ave", updated.Address)
	assert.Equal(t, "Main Street Lofts", updated.Name)
	assert.Equal(t, manager.ID, updated.PropertyManagerID)
}

func TestPropertyUpdateRejectsMissingTargets(t *testing.T) {
	svc, managerRepo := newPropertyService(t)
	ctx := context.Background()

	name := "X"
	_, err := svc.Update(ctx, 999, UpdatePropertyInput{Name: &name})
	var apiErr *apierr.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)

	manager, err := managerRepo.Create(ctx, nil, &domain.PropertyManager{Name: "John Doe"})
	require.NoError(t, err)
	created, err := svc.Create(ctx, CreatePropertyInput{
		Address:           "123 Main St",
		Name:              "Main Street Lofts",
		PropertyManagerID: manager.ID,
	})
	require.NoError(t, err)

	missingManager := int64(999)
	_, err = svc.Update(ctx, created.ID, UpdatePropertyInput{PropertyManagerID: &missingManager})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
}
