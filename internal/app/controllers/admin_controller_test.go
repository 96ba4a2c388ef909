package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/collegehub/collegehub/internal/app/models"
	"github.com/collegehub/collegehub/internal/app/models/dto"
	"github.com/collegehub/collegehub/internal/app/services"
	"github.com/collegehub/collegehub/internal/middleware"
)

// creatingAdminStore accepts new admin accounts, unlike adminStoreStub.
type creatingAdminStore struct {
	*adminStoreStub
	created []*models.Admin
}

func (s *creatingAdminStore) Create(_ context.Context, admin *models.Admin) error {
	admin.SetObjectID(primitive.NewObjectID())
	s.created = append(s.created, admin)
	return nil
}

func newAdminTestRouter(t *testing.T) (*gin.Engine, *creatingAdminStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := &creatingAdminStore{adminStoreStub: newAdminStoreStub(t, "admin", "Secret1!")}
	adminSvc := services.NewAdminService(store, zerolog.Nop())
	adminController := NewAdminController(adminSvc)

	router := gin.New()
	router.POST("/api/v1/admins", middleware.ValidateRequest[dto.CreateAdminRequest](), adminController.CreateAdmin)
	return router, store
}

func createAdminRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admins", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCreateAdminStoresDerivedCredential(t *testing.T) {
	router, store := newAdminTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, createAdminRequest(`{"username":"registrar","password":"Sup3rSecret","email":"registrar@collegehub.local","fullName":"Registrar"}`))

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, store.created, 1)
	assert.Equal(t, "registrar", store.created[0].Username)
	assert.NotEqual(t, "Sup3rSecret", store.created[0].Password)
	assert.NotContains(t, rec.Body.String(), "Sup3rSecret")
}

func TestCreateAdminRejectsInvalidPayload(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing username", `{"password":"Sup3rSecret","email":"a@b.edu"}`},
		{"short password", `{"username":"registrar","password":"short","email":"a@b.edu"}`},
		{"bad email", `{"username":"registrar","password":"Sup3rSecret","email":"not-an-email"}`},
		{"not json", `username=registrar`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router, store := newAdminTestRouter(t)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, createAdminRequest(tc.body))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, store.created, "invalid payload must not reach the store")
		})
	}
}
