package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	RoleBuyer  = "buyer"
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

// User represents an account holder. Password is the bcrypt hash and is
// never serialized to JSON.
type User struct {
	ID        bson.ObjectID `json:"id" bson:"_id,omitempty"`
	FirstName string        `json:"first_name" bson:"first_name"`
	LastName  string        `json:"last_name" bson:"last_name"`
	Username  string        `json:"username" bson:"username" validate:"required,min=2,max=50"`
	Email     string        `json:"email" bson:"email" validate:"required,email"`
	Password  string        `json:"-" bson:"password"`
	Phone     string        `json:"phone" bson:"phone"`
	Address   string        `json:"address" bson:"address"`
	Role      string        `json:"role" bson:"role" validate:"required,oneof=buyer seller admin"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" bson:"updated_at"`
}

type SignupRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Password  string `json:"password"`
}

// RoleForEmail resolves the role granted at signup: addresses on the
// configured admin list get admin, everyone else starts as a buyer.
func RoleForEmail(email string, adminEmails []string) string {
	if IsAdminEmail(email, adminEmails) {
		return RoleAdmin
	}
	return RoleBuyer
}

// IsAdminEmail reports whether the address is on the configured admin
// list. Comparison is case-insensitive; the list is the single source of
// role elevation, consulted at signup and re-asserted at login.
func IsAdminEmail(email string, adminEmails []string) bool {
	lowered := strings.ToLower(strings.TrimSpace(email))
	for _, admin := range adminEmails {
		if lowered == admin {
			return true
		}
	}
	return false
}

func (u *User) GetFullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

func (u *User) SetTimestamps() {
	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now
}

// PublicProfile is the shape returned by auth endpoints alongside a token.
type PublicProfile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	Role     string `json:"role"`
}

func (u *User) ToPublicProfile() PublicProfile {
	return PublicProfile{
		ID:       u.ID.Hex(),
		Username: u.Username,
		Email:    u.Email,
		FullName: u.GetFullName(),
		Phone:    u.Phone,
		Address:  u.Address,
		Role:     u.Role,
	}
}
