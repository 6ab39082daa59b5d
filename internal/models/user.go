package models

// User represents a staff user in the system
type User struct {
	BaseModel
	Name         string `gorm:"size:255;not null" json:"name"`
	Email        string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"` // Never send the hash in JSON
}

// UserSanitized represents the user data that is safe to send in API responses.
type UserSanitized struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Sanitize creates a UserSanitized struct from a User model, excluding sensitive data.
func (u *User) Sanitize() UserSanitized {
	return UserSanitized{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}
