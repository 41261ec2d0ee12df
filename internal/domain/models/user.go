package models

import "time"

// User is a registered account. PasswordHash never leaves the server.
type User struct {
	ID           string    `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Name         string    `json:"name" db:"name"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Blogs        []string  `json:"blogs" db:"blog_ids"` // owned blog IDs in creation order
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// LoginResult is returned to a client after a successful login
type LoginResult struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name"`
}
