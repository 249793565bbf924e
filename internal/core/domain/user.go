package domain

// User represents an account that owns journeys and recipes.
type User struct {
	UserID       int64  `json:"userID" db:"user_id"`
	Username     string `json:"username" db:"username"`
	PasswordHash string `json:"-" db:"password_hash"`
	Name         string `json:"name" db:"name"`
	AuditFields
}

func (u *User) GetUserID() int64 {
	return u.UserID
}

func (u *User) GetUsername() string {
	return u.Username
}

func (u *User) GetName() string {
	return u.Name
}
