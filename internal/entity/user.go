package entity

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"password"`
	Role         Role      `json:"role"`
	CreatedAt    Timestamp `json:"created_at"`
}

// Principal is the authenticated identity attached to a request.
// It carries only what guards and handlers need, never the password hash.
type Principal struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Role   Role   `json:"role"`
}

func (p *Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
