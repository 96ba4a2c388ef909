package models

import "time"

// Admin represents an administrator account. The password field holds the
// encoded credential produced by the password package, never a plaintext
// value.
type Admin struct {
	identifiable `bson:",inline"`

	Username  string     `bson:"username" json:"username"`
	Password  string     `bson:"password" json:"-"`
	Email     string     `bson:"email" json:"email"`
	FullName  string     `bson:"fullName" json:"fullName"`
	Role      string     `bson:"role" json:"role"`
	LastLogin *time.Time `bson:"lastLogin,omitempty" json:"lastLogin,omitempty"`
	IsActive  bool       `bson:"isActive" json:"isActive"`
}
