package challengeevent

import (
	"time"
)

type Entity struct{}

func (Entity) EntityName() string { return "challenge-event" }

type CreateInput struct {
	Title         string     `json:"title" validate:"required,max=256"`
	Description   string     `json:"description" validate:"max=65536"`
	StartDatetime *time.Time `json:"startDatetime,omitempty"`
	EndDatetime   *time.Time `json:"endDatetime,omitempty"`
}

type UpdateInput struct {
	Title         *string    `json:"title,omitempty" validate:"omitempty,min=1,max=256"`
	Description   *string    `json:"description,omitempty" validate:"omitempty,max=65536"`
	StartDatetime *time.Time `json:"startDatetime,omitempty"`
	EndDatetime   *time.Time `json:"endDatetime,omitempty"`
	IsFinished    *bool      `json:"isFinished,omitempty"`
}
