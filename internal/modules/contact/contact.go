package contact

import (
	"errors"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dsofts/core/internal/models"
	"github.com/dsofts/core/internal/pkg/response"
)

var (
	errNotFound = errors.New("Contact message not found")

	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
)

// CreateDTO is the public contact form body.
type CreateDTO struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Message  string `json:"message"`
	Budget   string `json:"budget"`
	Timeline string `json:"timeline"`
}

// ValidEmail reports whether addr looks like an email address. The check is
// intentionally loose; the address is only stored, never verified.
func ValidEmail(addr string) bool {
	return emailPattern.MatchString(strings.TrimSpace(addr))
}

// Service implements contact message persistence.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Create(dto CreateDTO) (*models.ContactMessageModel, error) {
	msg := &models.ContactMessageModel{
		Name:     strings.TrimSpace(dto.Name),
		Email:    strings.TrimSpace(dto.Email),
		Message:  dto.Message,
		Budget:   dto.Budget,
		Timeline: dto.Timeline,
	}
	if err := s.db.Create(msg).Error; err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *Service) List() ([]models.ContactMessageModel, error) {
	var msgs []models.ContactMessageModel
	if err := s.db.Order("created_at DESC").Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}

func (s *Service) GetByID(id string) (*models.ContactMessageModel, error) {
	var msg models.ContactMessageModel
	if err := s.db.Where("id = ?", id).First(&msg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound
		}
		return nil, err
	}
	return &msg, nil
}

func (s *Service) Delete(id string) error {
	result := s.db.Where("id = ?", id).Delete(&models.ContactMessageModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errNotFound
	}
	return nil
}

// Handler exposes the contact HTTP endpoints.
type Handler struct {
	service *Service
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{service: NewService(db)}
}

// RegisterRoutes mounts the public submit route and the admin inbox routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, adminMW ...gin.HandlerFunc) {
	rg.POST("/contact", h.create)

	admin := rg.Group("/admin/contact", adminMW...)
	admin.GET("", h.list)
	admin.GET("/:id", h.get)
	admin.DELETE("/:id", h.delete)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Please provide name, email, and message")
		return
	}
	if strings.TrimSpace(dto.Name) == "" || strings.TrimSpace(dto.Email) == "" || strings.TrimSpace(dto.Message) == "" {
		response.BadRequest(c, "Please provide name, email, and message")
		return
	}
	if !ValidEmail(dto.Email) {
		response.BadRequest(c, "Please provide a valid email address")
		return
	}

	msg, err := h.service.Create(dto)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.Created(c, gin.H{"message": "Contact message sent successfully", "data": msg})
}

func (h *Handler) list(c *gin.Context) {
	msgs, err := h.service.List()
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"count": len(msgs), "messages": msgs})
}

func (h *Handler) get(c *gin.Context) {
	msg, err := h.service.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, errNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"message": msg})
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
	response.Message(c, "Contact message deleted successfully")
}
