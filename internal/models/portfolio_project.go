package models

import "time"

// PortfolioProjectModel stores showcased company work, addressable by slug.
type PortfolioProjectModel struct {
	Base
	Title             string      `json:"title"             gorm:"not null"`
	Slug              string      `json:"slug"              gorm:"uniqueIndex;not null"`
	ThumbnailImageURL string      `json:"thumbnailImageUrl"`
	BannerImageURL    string      `json:"bannerImageUrl"`
	ShortDescription  string      `json:"shortDescription"  gorm:"not null"`
	FullDescription   string      `json:"fullDescription"   gorm:"type:text;not null"`
	TechStack         StringArray `json:"techStack"         gorm:"type:longtext;not null"`
	ClientName        string      `json:"clientName"`
	ClientRating      float64     `json:"clientRating"`
	WebsiteURL        string      `json:"websiteUrl"`
	CompletedAt       *time.Time  `json:"completedAt"`
	IsFeatured        bool        `json:"isFeatured"        gorm:"default:false"`
}

func (PortfolioProjectModel) TableName() string { return "portfolio_projects" }
