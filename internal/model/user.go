package model

type User struct {
	BaseModel
	FirstName    string `db:"first_name" json:"first_name"`
	LastName     string `db:"last_name" json:"last_name"`
	Email        string `db:"email" json:"email"`
	PasswordHash string `db:"password_hash" json:"-"`
	IsActive     bool   `db:"is_active" json:"is_active"`

	Profile *UserProfile `db:"-" json:"profile,omitempty"`
}

type UserProfile struct {
	ID        string `db:"id" json:"id"`
	UserID    string `db:"user_id" json:"user_id"`
	AvatarURL string `db:"avatar_url" json:"avatar_url"`
	Bio       string `db:"bio" json:"bio"`
}
