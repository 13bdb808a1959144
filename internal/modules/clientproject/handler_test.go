package clientproject

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/dsofts/core/internal/middleware"
	"github.com/dsofts/core/internal/models"
	"github.com/dsofts/core/internal/pkg/jwt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func openTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.UserModel{},
		&models.PortfolioProjectModel{},
		&models.ClientProjectModel{},
	))
	return db
}

func newTestRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	authMW := middleware.Auth()
	userMW := []gin.HandlerFunc{authMW, middleware.RequireRoles(models.RoleUser, models.RoleAdmin)}
	adminMW := []gin.HandlerFunc{authMW, middleware.RequireRoles(models.RoleAdmin)}
	NewHandler(db).RegisterRoutes(r.Group("/api"), userMW, adminMW)
	return r
}

func seedAccount(t *testing.T, db *gorm.DB, name string, role models.Role) *models.UserModel {
	user := &models.UserModel{
		Name:         name,
		Email:        strings.ToLower(name) + "@example.com",
		PasswordHash: "x",
		Role:         role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedClientProject(t *testing.T, db *gorm.DB, ownerID, title string) {
	require.NoError(t, db.Create(&models.ClientProjectModel{
		UserID:             ownerID,
		ProjectTitle:       title,
		ProjectDescription: "desc",
		Status:             models.StatusNew,
	}).Error)
}

func listProjectsAs(t *testing.T, r *gin.Engine, userID string, role models.Role) *httptest.ResponseRecorder {
	token, err := jwt.Sign(userID, role)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/client-projects", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListScopesUserToOwnProjects(t *testing.T) {
	db := openTestDB(t)
	owner := seedAccount(t, db, "owner", models.RoleUser)
	other := seedAccount(t, db, "other", models.RoleUser)
	seedClientProject(t, db, owner.ID, "Owner project")
	seedClientProject(t, db, other.ID, "Other project")
	r := newTestRouter(db)

	w := listProjectsAs(t, r, owner.ID, models.RoleUser)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"count":1`)
	assert.Contains(t, body, "Owner project")
	assert.NotContains(t, body, "Other project")
}

func TestListReturnsAllForAdmin(t *testing.T) {
	db := openTestDB(t)
	user := seedAccount(t, db, "user", models.RoleUser)
	admin := seedAccount(t, db, "admin", models.RoleAdmin)
	seedClientProject(t, db, user.ID, "User project")
	seedClientProject(t, db, admin.ID, "Admin project")
	r := newTestRouter(db)

	w := listProjectsAs(t, r, admin.ID, models.RoleAdmin)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"count":2`)
	assert.Contains(t, body, "User project")
	assert.Contains(t, body, "Admin project")
}

func TestCreateRejectsNegativeBudget(t *testing.T) {
	db := openTestDB(t)
	user := seedAccount(t, db, "jane", models.RoleUser)
	r := newTestRouter(db)

	token, err := jwt.Sign(user.ID, models.RoleUser)
	require.NoError(t, err)

	body := `{"projectTitle":"Site","projectDescription":"desc","estimatedBudget":-500}`
	req := httptest.NewRequest(http.MethodPost, "/api/client-projects", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "cannot be negative")
}
