package clientproject

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/dsofts/core/internal/models"
)

// Service implements client project intake and tracking.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) preloaded() *gorm.DB {
	return s.db.Preload("User").Preload("ReferencePortfolioProject")
}

// Create files a new project request for userID. The status always starts
// at new; a dangling portfolio reference is dropped rather than rejected.
func (s *Service) Create(userID string, dto CreateDTO) (*models.ClientProjectModel, error) {
	project := &models.ClientProjectModel{
		UserID:             userID,
		ProjectTitle:       strings.TrimSpace(dto.ProjectTitle),
		ProjectDescription: dto.ProjectDescription,
		EstimatedBudget:    dto.EstimatedBudget,
		Status:             models.StatusNew,
	}

	if dto.ReferencePortfolioProjectID != nil && *dto.ReferencePortfolioProjectID != "" {
		var count int64
		if err := s.db.Model(&models.PortfolioProjectModel{}).
			Where("id = ?", *dto.ReferencePortfolioProjectID).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			project.ReferencePortfolioProjectID = dto.ReferencePortfolioProjectID
		}
	}

	if err := s.db.Create(project).Error; err != nil {
		return nil, err
	}
	return s.getByID(project.ID)
}

// ListForUser returns the caller's own projects, newest first.
func (s *Service) ListForUser(userID string) ([]models.ClientProjectModel, error) {
	var projects []models.ClientProjectModel
	err := s.preloaded().Where("user_id = ?", userID).
		Order("created_at DESC").Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// GetForUser returns one project, enforcing ownership for non-admin callers.
func (s *Service) GetForUser(id, userID string, role models.Role) (*models.ClientProjectModel, error) {
	project, err := s.getByID(id)
	if err != nil {
		return nil, err
	}
	if role != models.RoleAdmin && project.UserID != userID {
		return nil, errNotOwner
	}
	return project, nil
}

// ListAll returns every project, optionally filtered by status. An invalid
// status value is ignored rather than rejected.
func (s *Service) ListAll(status string) ([]models.ClientProjectModel, error) {
	query := s.preloaded().Order("created_at DESC")
	if st := models.ProjectStatus(status); st.Valid() {
		query = query.Where("status = ?", st)
	}

	var projects []models.ClientProjectModel
	if err := query.Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// AdminUpdate applies the admin-editable fields.
func (s *Service) AdminUpdate(id string, dto AdminUpdateDTO) (*models.ClientProjectModel, error) {
	project, err := s.getByID(id)
	if err != nil {
		return nil, err
	}

	if dto.Status != nil {
		st := models.ProjectStatus(*dto.Status)
		if !st.Valid() {
			return nil, errBadStatus
		}
		project.Status = st
	}
	if dto.DeploymentURL != nil {
		project.DeploymentURL = *dto.DeploymentURL
	}
	if dto.NotesFromAdmin != nil {
		project.NotesFromAdmin = *dto.NotesFromAdmin
	}

	if err := s.db.Save(project).Error; err != nil {
		return nil, err
	}
	return project, nil
}

func (s *Service) getByID(id string) (*models.ClientProjectModel, error) {
	var project models.ClientProjectModel
	if err := s.preloaded().Where("id = ?", id).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound
		}
		return nil, err
	}
	return &project, nil
}
