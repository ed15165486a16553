package tag

type Entity struct{}

func (Entity) EntityName() string { return "tag" }

type CreateInput struct {
	Name        string `json:"name" validate:"required,max=64"`
	Description string `json:"description" validate:"max=1024"`
	HexColor    string `json:"hexColor" validate:"omitempty,hexcolor"`
}

type UpdateInput struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=64"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1024"`
	HexColor    *string `json:"hexColor,omitempty" validate:"omitempty,hexcolor"`
}

// ConnectInput names the tag to attach. Unknown names are created.
type ConnectInput struct {
	Name string `json:"name" validate:"required,max=64"`
}
