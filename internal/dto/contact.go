package dto

// ContactRequest defines the public contact form payload.
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// ContactResponse acknowledges a received contact message.
type ContactResponse struct {
	Message string `json:"message"`
}
