package portfolio

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dsofts/core/internal/database"
	"github.com/dsofts/core/internal/models"
	"github.com/dsofts/core/internal/pkg/response"
)

var (
	errNotFound  = errors.New("Project not found")
	errSlugTaken = errors.New("Project with this slug already exists")
)

// CreateDTO is the admin create request body.
type CreateDTO struct {
	Title             string             `json:"title"`
	Slug              string             `json:"slug"`
	ThumbnailImageURL string             `json:"thumbnailImageUrl"`
	BannerImageURL    string             `json:"bannerImageUrl"`
	ShortDescription  string             `json:"shortDescription"`
	FullDescription   string             `json:"fullDescription"`
	TechStack         models.StringArray `json:"techStack"`
	ClientName        string             `json:"clientName"`
	ClientRating      float64            `json:"clientRating"`
	WebsiteURL        string             `json:"websiteUrl"`
	CompletedAt       *models.Date       `json:"completedAt"`
	IsFeatured        bool               `json:"isFeatured"`
}

// UpdateDTO carries partial updates; nil fields are left untouched.
type UpdateDTO struct {
	Title             *string             `json:"title"`
	Slug              *string             `json:"slug"`
	ThumbnailImageURL *string             `json:"thumbnailImageUrl"`
	BannerImageURL    *string             `json:"bannerImageUrl"`
	ShortDescription  *string             `json:"shortDescription"`
	FullDescription   *string             `json:"fullDescription"`
	TechStack         *models.StringArray `json:"techStack"`
	ClientName        *string             `json:"clientName"`
	ClientRating      *float64            `json:"clientRating"`
	WebsiteURL        *string             `json:"websiteUrl"`
	CompletedAt       *models.Date        `json:"completedAt"`
	IsFeatured        *bool               `json:"isFeatured"`
}

// ListFilter narrows the public project listing.
type ListFilter struct {
	Featured *bool
	Limit    int
}

// Service implements portfolio project persistence.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) List(filter ListFilter) ([]models.PortfolioProjectModel, error) {
	query := s.db.Model(&models.PortfolioProjectModel{}).Order("created_at DESC")
	if filter.Featured != nil {
		query = query.Where("is_featured = ?", *filter.Featured)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var projects []models.PortfolioProjectModel
	if err := query.Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *Service) GetBySlug(slug string) (*models.PortfolioProjectModel, error) {
	var project models.PortfolioProjectModel
	if err := s.db.Where("slug = ?", slug).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound
		}
		return nil, err
	}
	return &project, nil
}

func (s *Service) Create(dto CreateDTO) (*models.PortfolioProjectModel, error) {
	slug := normalizeSlug(dto.Slug)

	var count int64
	if err := s.db.Model(&models.PortfolioProjectModel{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errSlugTaken
	}

	project := &models.PortfolioProjectModel{
		Title:             strings.TrimSpace(dto.Title),
		Slug:              slug,
		ThumbnailImageURL: dto.ThumbnailImageURL,
		BannerImageURL:    dto.BannerImageURL,
		ShortDescription:  dto.ShortDescription,
		FullDescription:   dto.FullDescription,
		TechStack:         dto.TechStack,
		ClientName:        dto.ClientName,
		ClientRating:      dto.ClientRating,
		WebsiteURL:        dto.WebsiteURL,
		CompletedAt:       dto.CompletedAt.TimePtr(),
		IsFeatured:        dto.IsFeatured,
	}
	if err := s.db.Create(project).Error; err != nil {
		if database.IsDuplicateKeyError(err) {
			return nil, errSlugTaken
		}
		return nil, err
	}
	return project, nil
}

func (s *Service) Update(id string, dto UpdateDTO) (*models.PortfolioProjectModel, error) {
	var project models.PortfolioProjectModel
	if err := s.db.Where("id = ?", id).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound
		}
		return nil, err
	}

	if dto.Title != nil {
		project.Title = strings.TrimSpace(*dto.Title)
	}
	if dto.Slug != nil {
		project.Slug = normalizeSlug(*dto.Slug)
	}
	if dto.ThumbnailImageURL != nil {
		project.ThumbnailImageURL = *dto.ThumbnailImageURL
	}
	if dto.BannerImageURL != nil {
		project.BannerImageURL = *dto.BannerImageURL
	}
	if dto.ShortDescription != nil {
		project.ShortDescription = *dto.ShortDescription
	}
	if dto.FullDescription != nil {
		project.FullDescription = *dto.FullDescription
	}
	if dto.TechStack != nil {
		project.TechStack = *dto.TechStack
	}
	if dto.ClientName != nil {
		project.ClientName = *dto.ClientName
	}
	if dto.ClientRating != nil {
		project.ClientRating = *dto.ClientRating
	}
	if dto.WebsiteURL != nil {
		project.WebsiteURL = *dto.WebsiteURL
	}
	if dto.CompletedAt != nil {
		project.CompletedAt = dto.CompletedAt.TimePtr()
	}
	if dto.IsFeatured != nil {
		project.IsFeatured = *dto.IsFeatured
	}

	if err := s.db.Save(&project).Error; err != nil {
		if database.IsDuplicateKeyError(err) {
			return nil, errSlugTaken
		}
		return nil, err
	}
	return &project, nil
}

func (s *Service) Delete(id string) error {
	result := s.db.Where("id = ?", id).Delete(&models.PortfolioProjectModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errNotFound
	}
	return nil
}

func normalizeSlug(slug string) string {
	return strings.ToLower(strings.TrimSpace(slug))
}

// Handler exposes the portfolio HTTP endpoints.
type Handler struct {
	service *Service
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{service: NewService(db)}
}

// RegisterRoutes mounts the public read routes and the admin write routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, adminMW ...gin.HandlerFunc) {
	public := rg.Group("/projects")
	public.GET("", h.list)
	public.GET("/:slug", h.getBySlug)

	admin := rg.Group("/admin/projects", adminMW...)
	admin.POST("", h.create)
	admin.PUT("/:id", h.update)
	admin.DELETE("/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	var filter ListFilter
	if raw, ok := c.GetQuery("featured"); ok {
		if v, err := strconv.ParseBool(raw); err == nil {
			filter.Featured = &v
		}
	}
	if raw, ok := c.GetQuery("limit"); ok {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			filter.Limit = v
		}
	}

	projects, err := h.service.List(filter)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"count": len(projects), "projects": projects})
}

func (h *Handler) getBySlug(c *gin.Context) {
	project, err := h.service.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, errNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, gin.H{"project": project})
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Please provide title, slug, shortDescription, fullDescription, and techStack")
		return
	}
	if strings.TrimSpace(dto.Title) == "" || strings.TrimSpace(dto.Slug) == "" ||
		strings.TrimSpace(dto.ShortDescription) == "" || strings.TrimSpace(dto.FullDescription) == "" ||
		len(dto.TechStack) == 0 {
		response.BadRequest(c, "Please provide title, slug, shortDescription, fullDescription, and techStack")
		return
	}
	if dto.ClientRating < 0 || dto.ClientRating > 5 {
		response.BadRequest(c, "Client rating must be between 0 and 5")
		return
	}

	project, err := h.service.Create(dto)
	if err != nil {
		if errors.Is(err, errSlugTaken) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}
	response.Created(c, gin.H{"project": project})
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if dto.ClientRating != nil && (*dto.ClientRating < 0 || *dto.ClientRating > 5) {
		response.BadRequest(c, "Client rating must be between 0 and 5")
		return
	}

	project, err := h.service.Update(c.Param("id"), dto)
	if err != nil {
		switch {
		case errors.Is(err, errNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, errSlugTaken):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, gin.H{"project": project})
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
	response.Message(c, "Project deleted successfully")
}
