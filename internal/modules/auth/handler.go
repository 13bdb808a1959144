package auth

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dsofts/core/internal/middleware"
	"github.com/dsofts/core/internal/models"
	"github.com/dsofts/core/internal/pkg/jwt"
	"github.com/dsofts/core/internal/pkg/response"
)

// Handler exposes the auth HTTP endpoints.
type Handler struct {
	service *Service
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{service: NewService(db)}
}

// RegisterRoutes mounts the auth routes under rg.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	grp := rg.Group("/auth")
	grp.POST("/signup", h.signup)
	grp.POST("/login", h.login)
	grp.GET("/me", authMW, h.me)
}

func (h *Handler) signup(c *gin.Context) {
	var dto SignupDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Please provide name, email, and password")
		return
	}
	if strings.TrimSpace(dto.Name) == "" || strings.TrimSpace(dto.Email) == "" || dto.Password == "" {
		response.BadRequest(c, "Please provide name, email, and password")
		return
	}
	if len(dto.Password) < 6 {
		response.BadRequest(c, "Password must be at least 6 characters long")
		return
	}

	user, err := h.service.Signup(dto)
	if err != nil {
		if errors.Is(err, errEmailTaken) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	token, err := jwt.Sign(user.ID, user.Role)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.Created(c, gin.H{"user": publicUser(user), "token": token})
}

func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Please provide email and password")
		return
	}
	if strings.TrimSpace(dto.Email) == "" || dto.Password == "" {
		response.BadRequest(c, "Please provide email and password")
		return
	}

	user, err := h.service.Login(dto)
	if err != nil {
		if errors.Is(err, errInvalidCredentials) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	token, err := jwt.Sign(user.ID, user.Role)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"user": publicUser(user), "token": token})
}

func (h *Handler) me(c *gin.Context) {
	uid, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized - User not authenticated")
		return
	}

	user, err := h.service.GetByID(uid)
	if err != nil {
		if errors.Is(err, errUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"user": Profile{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	}})
}

func publicUser(user *models.UserModel) PublicUser {
	return PublicUser{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  string(user.Role),
	}
}
