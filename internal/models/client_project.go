package models

import "strings"

// ProjectStatus is the closed set of client project states. Transitions are
// unconstrained: any status may move to any other.
type ProjectStatus string

const (
	StatusNew          ProjectStatus = "new"
	StatusInDiscussion ProjectStatus = "in_discussion"
	StatusInProgress   ProjectStatus = "in_progress"
	StatusDeployed     ProjectStatus = "deployed"
	StatusCancelled    ProjectStatus = "cancelled"
)

// AllProjectStatuses lists every valid status, in display order.
var AllProjectStatuses = []ProjectStatus{
	StatusNew,
	StatusInDiscussion,
	StatusInProgress,
	StatusDeployed,
	StatusCancelled,
}

// Valid reports whether s is a member of the closed status set.
func (s ProjectStatus) Valid() bool {
	for _, known := range AllProjectStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// ProjectStatusNames renders the allowed set for error messages.
func ProjectStatusNames() string {
	names := make([]string, len(AllProjectStatuses))
	for i, s := range AllProjectStatuses {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// ClientProjectModel stores a client's project intake request, owned by the
// submitting user and optionally referencing a portfolio project.
type ClientProjectModel struct {
	Base
	UserID                      string                 `json:"-" gorm:"type:char(36);index;not null"`
	User                        *UserModel             `json:"-" gorm:"foreignKey:UserID"`
	ReferencePortfolioProjectID *string                `json:"-" gorm:"type:char(36)"`
	ReferencePortfolioProject   *PortfolioProjectModel `json:"-" gorm:"foreignKey:ReferencePortfolioProjectID"`
	ProjectTitle                string                 `json:"projectTitle"       gorm:"not null"`
	ProjectDescription          string                 `json:"projectDescription" gorm:"type:text;not null"`
	EstimatedBudget             float64                `json:"estimatedBudget"`
	Status                      ProjectStatus          `json:"status"             gorm:"type:varchar(32);not null;default:new"`
	DeploymentURL               string                 `json:"deploymentUrl"`
	NotesFromAdmin              string                 `json:"notesFromAdmin"     gorm:"type:text"`
}

func (ClientProjectModel) TableName() string { return "client_projects" }
