package services

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dsofts/core/internal/models"
	"github.com/dsofts/core/internal/pkg/response"
)

var errNotFound = errors.New("Service not found")

// CreateDTO is the admin create request body.
type CreateDTO struct {
	Title         string             `json:"title"`
	Description   string             `json:"description"`
	StartingPrice float64            `json:"startingPrice"`
	Features      models.StringArray `json:"features"`
	IsPopular     bool               `json:"isPopular"`
}

// UpdateDTO carries partial updates; nil fields are left untouched.
type UpdateDTO struct {
	Title         *string             `json:"title"`
	Description   *string             `json:"description"`
	StartingPrice *float64            `json:"startingPrice"`
	Features      *models.StringArray `json:"features"`
	IsPopular     *bool               `json:"isPopular"`
}

// Service implements offered-service persistence.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) List() ([]models.ServiceModel, error) {
	var items []models.ServiceModel
	if err := s.db.Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Service) Create(dto CreateDTO) (*models.ServiceModel, error) {
	features := dto.Features
	if features == nil {
		features = models.StringArray{}
	}
	item := &models.ServiceModel{
		Title:         strings.TrimSpace(dto.Title),
		Description:   dto.Description,
		StartingPrice: dto.StartingPrice,
		Features:      features,
		IsPopular:     dto.IsPopular,
	}
	if err := s.db.Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) Update(id string, dto UpdateDTO) (*models.ServiceModel, error) {
	var item models.ServiceModel
	if err := s.db.Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound
		}
		return nil, err
	}

	if dto.Title != nil {
		item.Title = strings.TrimSpace(*dto.Title)
	}
	if dto.Description != nil {
		item.Description = *dto.Description
	}
	if dto.StartingPrice != nil {
		item.StartingPrice = *dto.StartingPrice
	}
	if dto.Features != nil {
		item.Features = *dto.Features
	}
	if dto.IsPopular != nil {
		item.IsPopular = *dto.IsPopular
	}

	if err := s.db.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Service) Delete(id string) error {
	result := s.db.Where("id = ?", id).Delete(&models.ServiceModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errNotFound
	}
	return nil
}

// Handler exposes the service-catalog HTTP endpoints.
type Handler struct {
	service *Service
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{service: NewService(db)}
}

// RegisterRoutes mounts the public read route and the admin write routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, adminMW ...gin.HandlerFunc) {
	rg.GET("/services", h.list)

	admin := rg.Group("/admin/services", adminMW...)
	admin.POST("", h.create)
	admin.PUT("/:id", h.update)
	admin.DELETE("/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.service.List()
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"count": len(items), "services": items})
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Please provide title and description")
		return
	}
	if strings.TrimSpace(dto.Title) == "" || strings.TrimSpace(dto.Description) == "" {
		response.BadRequest(c, "Please provide title and description")
		return
	}
	if dto.StartingPrice < 0 {
		response.BadRequest(c, "Starting price cannot be negative")
		return
	}

	item, err := h.service.Create(dto)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.Created(c, gin.H{"service": item})
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if dto.StartingPrice != nil && *dto.StartingPrice < 0 {
		response.BadRequest(c, "Starting price cannot be negative")
		return
	}

	item, err := h.service.Update(c.Param("id"), dto)
	if err != nil {
		if errors.Is(err, errNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"service": item})
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.service.Delete(c.Param("id")); err != nil {
		if errors.Is(err, errNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.Message(c, "Service deleted successfully")
}
