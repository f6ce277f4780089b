package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// User is an account identified by its unique handle (Username).
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"size:150;not null;uniqueIndex"`
	Email     string    `json:"email" gorm:"size:254"`
	Password  string    `json:"-" gorm:"not null"` // bcrypt hash
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserCompact is the public projection embedded in tweets and follow lists.
type UserCompact struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

func (u *User) ToCompact() UserCompact {
	return UserCompact{ID: u.ID, Username: u.Username}
}

type SignupRequest struct {
	Username  string `json:"username" form:"username" validate:"required,max=150,username"`
	Email     string `json:"email" form:"email" validate:"required,email,max=254"`
	Password1 string `json:"password1" form:"password1" validate:"required,min=8"`
	Password2 string `json:"password2" form:"password2" validate:"required,eqfield=Password1"`
}

type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
