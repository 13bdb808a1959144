package clientproject

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dsofts/core/internal/middleware"
	"github.com/dsofts/core/internal/models"
	"github.com/dsofts/core/internal/pkg/response"
)

// Handler exposes the client project HTTP endpoints.
type Handler struct {
	service *Service
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{service: NewService(db)}
}

// RegisterRoutes mounts the authenticated user routes and the admin routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, userMW, adminMW []gin.HandlerFunc) {
	user := rg.Group("/client-projects", userMW...)
	user.POST("", h.create)
	user.GET("", h.listMine)
	user.GET("/:id", h.getMine)

	admin := rg.Group("/admin/client-projects", adminMW...)
	admin.GET("", h.adminList)
	admin.GET("/:id", h.adminGet)
	admin.PUT("/:id", h.adminUpdate)
}

func (h *Handler) create(c *gin.Context) {
	uid, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized - User not authenticated")
		return
	}

	var dto CreateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Please provide projectTitle and projectDescription")
		return
	}
	if strings.TrimSpace(dto.ProjectTitle) == "" || strings.TrimSpace(dto.ProjectDescription) == "" {
		response.BadRequest(c, "Please provide projectTitle and projectDescription")
		return
	}
	if dto.EstimatedBudget < 0 {
		response.BadRequest(c, "Estimated budget cannot be negative")
		return
	}

	project, err := h.service.Create(uid, dto)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.Created(c, gin.H{"project": newView(project, false)})
}

func (h *Handler) listMine(c *gin.Context) {
	uid, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized - User not authenticated")
		return
	}

	// Admins see every project here, users only their own.
	var (
		projects []models.ClientProjectModel
		err      error
	)
	if role, _ := middleware.CurrentRole(c); role == models.RoleAdmin {
		projects, err = h.service.ListAll("")
	} else {
		projects, err = h.service.ListForUser(uid)
	}
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"count": len(projects), "projects": newViews(projects, false)})
}

func (h *Handler) getMine(c *gin.Context) {
	uid, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized - User not authenticated")
		return
	}
	role, _ := middleware.CurrentRole(c)

	project, err := h.service.GetForUser(c.Param("id"), uid, role)
	if err != nil {
		switch {
		case errors.Is(err, errNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, errNotOwner):
			response.Forbidden(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, gin.H{"project": newView(project, false)})
}

func (h *Handler) adminList(c *gin.Context) {
	projects, err := h.service.ListAll(c.Query("status"))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"count": len(projects), "projects": newViews(projects, true)})
}

func (h *Handler) adminGet(c *gin.Context) {
	project, err := h.service.getByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, errNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"project": newView(project, true)})
}

func (h *Handler) adminUpdate(c *gin.Context) {
	var dto AdminUpdateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.service.AdminUpdate(c.Param("id"), dto)
	if err != nil {
		switch {
		case errors.Is(err, errNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, errBadStatus):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, gin.H{"project": newView(project, true)})
}
