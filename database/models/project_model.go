package models

import (
	"time"
)

type Project struct {
	Model
	Name        string     `json:"name" gorm:"type:text;not null"`
	Description *string    `json:"description" gorm:"type:text"`
	StartDate   *time.Time `json:"startDate" gorm:"column:start_date"`
	EndDate     *time.Time `json:"endDate" gorm:"column:end_date"`
	GithubLink  string     `json:"githublink" gorm:"column:githublink;type:text;not null"`
	Leader      string     `json:"leader" gorm:"type:text;not null"`

	// opaque identifier issued by the identity provider. Immutable after
	// creation - the sole party allowed to see or mutate this project.
	UserID string `json:"userId" gorm:"type:varchar(255);not null;index"`

	APIKeys []APIKey `json:"apiKeys" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE;"`
}

func (m Project) TableName() string {
	return "projects"
}
