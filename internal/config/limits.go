package config

import "math"

const (
	// MinUsernameLength and MinPasswordLength are enforced at registration.
	MinUsernameLength = 3
	MinPasswordLength = 3

	// MaxUsernameLength fits the VARCHAR(64) column.
	MaxUsernameLength = 64

	// MaxBlogTitleLength fits the VARCHAR(255) column.
	MaxBlogTitleLength = 255

	// MaxBlogURLLength is the practical upper bound browsers accept.
	MaxBlogURLLength = 2048

	// MaxBlogLikes fits the INTEGER likes column.
	MaxBlogLikes = math.MaxInt32
)
