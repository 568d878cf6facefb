package request

type GenerateDescription struct {
	PromptText string `json:"promptText" validate:"required"`
}
