package clientproject

import (
	"errors"
	"time"

	"github.com/dsofts/core/internal/models"
)

var (
	errNotFound  = errors.New("Project not found")
	errNotOwner  = errors.New("Forbidden - You can only view your own projects")
	errBadStatus = errors.New("Invalid status. Must be one of: " + models.ProjectStatusNames())
)

// CreateDTO is the project intake request body.
type CreateDTO struct {
	ProjectTitle                string  `json:"projectTitle"`
	ProjectDescription          string  `json:"projectDescription"`
	EstimatedBudget             float64 `json:"estimatedBudget"`
	ReferencePortfolioProjectID *string `json:"referencePortfolioProjectId"`
}

// AdminUpdateDTO carries the fields an admin may change. Anything else in
// the request body is ignored.
type AdminUpdateDTO struct {
	Status         *string `json:"status"`
	DeploymentURL  *string `json:"deploymentUrl"`
	NotesFromAdmin *string `json:"notesFromAdmin"`
}

// OwnerRef is the embedded owner summary in project responses.
type OwnerRef struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

// PortfolioRef is the embedded reference-project summary.
type PortfolioRef struct {
	ID    string `json:"_id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

// View is the wire shape of a client project, with its relations expanded.
type View struct {
	ID                        string               `json:"_id"`
	User                      *OwnerRef            `json:"userId"`
	ReferencePortfolioProject *PortfolioRef        `json:"referencePortfolioProjectId"`
	ProjectTitle              string               `json:"projectTitle"`
	ProjectDescription        string               `json:"projectDescription"`
	EstimatedBudget           float64              `json:"estimatedBudget"`
	Status                    models.ProjectStatus `json:"status"`
	DeploymentURL             string               `json:"deploymentUrl"`
	NotesFromAdmin            string               `json:"notesFromAdmin"`
	CreatedAt                 time.Time            `json:"createdAt"`
	UpdatedAt                 time.Time            `json:"updatedAt"`
}

func newView(p *models.ClientProjectModel, withRole bool) View {
	v := View{
		ID:                 p.ID,
		ProjectTitle:       p.ProjectTitle,
		ProjectDescription: p.ProjectDescription,
		EstimatedBudget:    p.EstimatedBudget,
		Status:             p.Status,
		DeploymentURL:      p.DeploymentURL,
		NotesFromAdmin:     p.NotesFromAdmin,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
	if p.User != nil {
		v.User = &OwnerRef{ID: p.User.ID, Name: p.User.Name, Email: p.User.Email}
		if withRole {
			v.User.Role = string(p.User.Role)
		}
	}
	if p.ReferencePortfolioProject != nil {
		v.ReferencePortfolioProject = &PortfolioRef{
			ID:    p.ReferencePortfolioProject.ID,
			Title: p.ReferencePortfolioProject.Title,
			Slug:  p.ReferencePortfolioProject.Slug,
		}
	}
	return v
}

func newViews(projects []models.ClientProjectModel, withRole bool) []View {
	views := make([]View, 0, len(projects))
	for i := range projects {
		views = append(views, newView(&projects[i], withRole))
	}
	return views
}
