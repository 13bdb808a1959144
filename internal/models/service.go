package models

// ServiceModel stores a service catalog entry.
type ServiceModel struct {
	Base
	Title         string      `json:"title"         gorm:"not null"`
	Description   string      `json:"description"   gorm:"type:text;not null"`
	StartingPrice float64     `json:"startingPrice"`
	Features      StringArray `json:"features"      gorm:"type:longtext"`
	IsPopular     bool        `json:"isPopular"     gorm:"default:false"`
}

func (ServiceModel) TableName() string { return "services" }
