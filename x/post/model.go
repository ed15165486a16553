package post

type Entity struct{}

func (Entity) EntityName() string { return "post" }

// CreateInput is the payload of a new post
type CreateInput struct {
	Title       string  `json:"title" validate:"required,max=256"`
	Content     string  `json:"content" validate:"max=65536"`
	Type        string  `json:"type" validate:"omitempty,oneof=post challenge notice"`
	ChallengeID *string `json:"challengeId,omitempty" validate:"omitempty,len=20"`
}

// UpdateInput is a partial post update
type UpdateInput struct {
	Title   *string `json:"title,omitempty" validate:"omitempty,min=1,max=256"`
	Content *string `json:"content,omitempty" validate:"omitempty,max=65536"`
}

// ListFilter narrows post listings
type ListFilter struct {
	AccountID   string
	ChallengeID string
}
