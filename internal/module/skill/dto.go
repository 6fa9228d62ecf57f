package skill

// CreateSkillRequest represents the input for creating a skill tag.
type CreateSkillRequest struct {
	Name string `json:"name" form:"name" binding:"required,min=1,max=100"`
}
