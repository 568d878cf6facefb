package response

// Description mirrors the chat-completion message returned by the model.
type Description struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
