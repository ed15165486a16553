package challenge

import (
	"time"
)

type Entity struct{}

func (Entity) EntityName() string { return "challenge" }

type CreateInput struct {
	Title             string     `json:"title" validate:"required,max=256"`
	Description       string     `json:"description" validate:"max=65536"`
	Type              string     `json:"type" validate:"max=64"`
	ChallengeImageURL string     `json:"challengeImageUrl" validate:"omitempty,url"`
	StartDate         *time.Time `json:"startDate,omitempty"`
	EndDate           *time.Time `json:"endDate,omitempty"`
	IsPublished       bool       `json:"isPublished"`
}

type UpdateInput struct {
	Title             *string    `json:"title,omitempty" validate:"omitempty,min=1,max=256"`
	Description       *string    `json:"description,omitempty" validate:"omitempty,max=65536"`
	Type              *string    `json:"type,omitempty" validate:"omitempty,max=64"`
	ChallengeImageURL *string    `json:"challengeImageUrl,omitempty" validate:"omitempty,url"`
	StartDate         *time.Time `json:"startDate,omitempty"`
	EndDate           *time.Time `json:"endDate,omitempty"`
	IsPublished       *bool      `json:"isPublished,omitempty"`
	IsFinished        *bool      `json:"isFinished,omitempty"`
}

type ListFilter struct {
	AccountID string
}
