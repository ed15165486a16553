package comment

type Entity struct{}

func (Entity) EntityName() string { return "comment" }

type CreateInput struct {
	Content         string  `json:"content" validate:"required,max=8192"`
	ParentCommentID *string `json:"parentCommentId,omitempty" validate:"omitempty,len=20"`
}

type UpdateInput struct {
	Content string `json:"content" validate:"required,max=8192"`
}
