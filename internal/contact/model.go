package contact

// Request is the contact form body. Every field is required and bounded
// in length.
type Request struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,max=320"`
	Company string `json:"company" validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=5000"`
}
