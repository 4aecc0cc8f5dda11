package request_models

type NewsletterRequest struct {
	Email string `json:"email" form:"email" binding:"required,email"`
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

type ContactReplyRequest struct {
	Subject string `json:"subject" binding:"required,max=200"`
	Message string `json:"message" binding:"required"`
}
