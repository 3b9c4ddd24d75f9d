package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles assigned at account creation. There is no role-change operation.
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// Credentials structure for login request
type Credentials struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest carries the registration form fields
type RegisterRequest struct {
	FullName   string `json:"fullName" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	University string `json:"university" binding:"required"`
	Major      string `json:"major" binding:"required"`
	Batch      string `json:"batch" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// User represents an account in the users collection.
// Password holds the bcrypt hash and is never serialized to JSON.
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName   string             `bson:"fullName" json:"fullName"`
	Phone      string             `bson:"phone" json:"phone"`
	University string             `bson:"university" json:"university"`
	Major      string             `bson:"major" json:"major"`
	Batch      string             `bson:"batch" json:"batch"`
	Password   string             `bson:"password" json:"-"`
	Role       string             `bson:"role" json:"role"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updated_at"`
}

// Profile is the public view of a user returned by the API.
type Profile struct {
	ID         string `json:"id"`
	FullName   string `json:"fullName"`
	Phone      string `json:"phone"`
	University string `json:"university"`
	Major      string `json:"major"`
	Batch      string `json:"batch"`
	Role       string `json:"role"`
}

// Profile strips the password hash and internal timestamps
func (u *User) Profile() Profile {
	return Profile{
		ID:         u.ID.Hex(),
		FullName:   u.FullName,
		Phone:      u.Phone,
		University: u.University,
		Major:      u.Major,
		Batch:      u.Batch,
		Role:       u.Role,
	}
}
