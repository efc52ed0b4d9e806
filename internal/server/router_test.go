package server_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakline/rental-backend/internal/handlers"
	"github.com/oakline/rental-backend/internal/middleware"
	"github.com/oakline/rental-backend/internal/repos"
	"github.com/oakline/rental-backend/internal/repos/testutil"
	"github.com/oakline/rental-backend/internal/server"
	"github.com/oakline/rental-backend/internal/services"
)

func buildRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gormDB := testutil.DB(t)
	log := testutil.Logger(t)

	managerRepo := repos.NewPropertyManagerRepo(gormDB, log)
	propertyRepo := repos.NewPropertyRepo(gormDB, log)
	apartmentRepo := repos.NewApartmentRepo(gormDB, log)
	tenantRepo := repos.NewTenantRepo(gormDB, log)
	paymentRepo := repos.NewPaymentRepo(gormDB, log)

	managerService := services.NewPropertyManagerService(gormDB, log, managerRepo)
	propertyService := services.NewPropertyService(gormDB, log, propertyRepo, managerRepo)
	apartmentService := services.NewApartmentService(gormDB, log, apartmentRepo, propertyRepo)
	tenantService := services.NewTenantService(gormDB, log, tenantRepo, apartmentRepo)
	paymentService := services.NewPaymentService(gormDB, log, paymentRepo, tenantRepo)

	return server.NewRouter(server.RouterConfig{
		AllowOrigin:            "http://127.0.0.1",
		RequestLogMiddleware:   middleware.NewRequestLogMiddleware(log),
		PropertyManagerHandler: handlers.NewPropertyManagerHandler(managerService),
		PropertyHandler:        handlers.NewPropertyHandler(propertyService),
		ApartmentHandler:       handlers.NewApartmentHandler(apartmentService),
		TenantHandler:          handlers.NewTenantHandler(tenantService),
		PaymentHandler:         handlers.NewPaymentHandler(paymentService),
	})
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestPropertyManagerLifecycle(t *testing.T) {
	router := buildRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/propertyManagers", gin.H{"name": "John Doe"})
	require.Equal(t, http.StatusOK, rec.Code)
	created := decode(t, rec)
	assert.Equal(t, float64(1), created["id"])
	assert.Equal(t, "John Doe", created["name"])

	rec = doJSON(t, router, http.MethodPut, "/propertyManagers/1", gin.H{"name": "Jane Doe"})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode(t, rec)
	assert.Equal(t, float64(1), updated["id"])
	assert.Equal(t, "Jane Doe", updated["name"])

	rec = doJSON(t, router, http.MethodPut, "/propertyManagers/999", gin.H{"name": "X"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/propertyManagers", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Jane Doe", list[0]["name"])
}

func TestPropertyManagerCreateMissingName(t *testing.T) {
	router := buildRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/propertyManagers", gin.H{})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestPropertyEndpoints(t *testing.T) {
	router := buildRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/propertyManagers", gin.H{"name": "John Doe"})
	require.Equal(t, http.StatusOK, rec.Code)
	managerID := decode(t, rec)["id"]

	rec = doJSON(t, router, http.MethodPost, "/properties", gin.H{
		"address":           "123 Main St",
		"name":              "Main Street Lofts",
		"propertyManagerId": managerID,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	property := decode(t, rec)

	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/properties/%v", property["id"]), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode(t, rec)
	assert.Equal(t, property["id"], got["id"])
	assert.Equal(t, "123 Main St", got["address"])

	// Missing required field
	rec = doJSON(t, router, http.MethodPost, "/properties", gin.H{"address": "123 Main St"})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	// Orphaned parent reference
	rec = doJSON(t, router, http.MethodPost, "/properties", gin.H{
		"address":           "123 Main St",
		"name":              "Orphan",
		"propertyManagerId": 999,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/properties/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func seedTenantOverHTTP(t *testing.T, router *gin.Engine) float64 {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/propertyManagers", gin.H{"name": "John Doe"})
	require.Equal(t, http.StatusOK, rec.Code)
	managerID := decode(t, rec)["id"]

	rec = doJSON(t, router, http.MethodPost, "/properties", gin.H{
		"address":           "123 Main St",
		"name":              "Main Street Lofts",
		"propertyManagerId": managerID,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	propertyID := decode(t, rec)["id"]

	rec = doJSON(t, router, http.MethodPost, "/apartments", gin.H{
		"propertyId": propertyID,
		"unitNumber": "4B",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	apartmentID := decode(t, rec)["id"]

	rec = doJSON(t, router, http.MethodPost, "/tenants", gin.H{
		"firstName":   "John",
		"lastName":    "Doe",
		"dob":         "1990-04-12",
		"ssn":         "123-45-6789",
		"isPrimary":   true,
		"apartmentId": apartmentID,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	return decode(t, rec)["id"].(float64)
}

func TestTenantPartialUpdate(t *testing.T) {
	router := buildRouter(t)
	tenantID := seedTenantOverHTTP(t, router)

	rec := doJSON(t, router, http.MethodPut, fmt.Sprintf("/tenants/%v", tenantID), gin.H{"firstName": "Jane"})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode(t, rec)
	assert.Equal(t, "Jane", updated["firstName"])
	assert.Equal(t, "Doe", updated["lastName"])
	assert.Equal(t, "1990-04-12", updated["dob"])
	assert.Equal(t, "123-45-6789", updated["ssn"])
	assert.Equal(t, true, updated["isPrimary"])
}

func TestPaymentValidationEnvelope(t *testing.T) {
	router := buildRouter(t)
	tenantID := seedTenantOverHTTP(t, router)

	rec := doJSON(t, router, http.MethodPost, fmt.Sprintf("/tenants/%v/payments", tenantID), gin.H{
		"amount": "abc",
		"date":   "2099-01-01",
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body struct {
		Errors []struct {
			Param string `json:"param"`
			Msg   string `json:"msg"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Errors, 2)
	params := []string{body.Errors[0].Param, body.Errors[1].Param}
	assert.ElementsMatch(t, []string{"amount", "date"}, params)
}

func TestPaymentRecordAndHistory(t *testing.T) {
	router := buildRouter(t)
	tenantID := seedTenantOverHTTP(t, router)

	rec := doJSON(t, router, http.MethodPost, fmt.Sprintf("/tenants/%v/payments", tenantID), gin.H{
		"amount": 50,
		"date":   "2024-03-05",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode(t, rec)
	assert.Equal(t, "Payment created successfully", created["message"])
	assert.Equal(t, float64(50), created["amount"])

	rec = doJSON(t, router, http.MethodPost, fmt.Sprintf("/tenants/%v/payments", tenantID), gin.H{
		"amount": 60,
		"date":   "2024-03-20",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/tenants/%v/payments/history", tenantID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var history []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &history))
	require.Len(t, history, 1)
	assert.Equal(t, "2024-03", history[0]["month"])
	assert.Equal(t, float64(110), history[0]["amount"])
}

func TestHealthcheck(t *testing.T) {
	router := buildRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/healthcheck", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
