package models

import "time"

// Blog is a post owned by exactly one user. Only Likes changes after creation.
type Blog struct {
	ID        string    `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Author    string    `json:"author" db:"author"`
	URL       string    `json:"url" db:"url"`
	Likes     int       `json:"likes" db:"likes"`
	UserID    string    `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// BlogStats summarizes likes across all blogs
type BlogStats struct {
	TotalLikes int   `json:"total_likes"`
	Favorite   *Blog `json:"favorite"` // nil when there are no blogs
}
