package dto

type RegisterInput struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
}

type UpdateProfileInput struct {
	UserID    string `json:"-"`
	AvatarURL string `json:"avatar_url"`
	Bio       string `json:"bio"`
}
