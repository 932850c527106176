package domain

import "time"

// User is an account that can log in and apply to jobs.
type User struct {
	Username     string
	PasswordHash string
	FirstName    string
	LastName     string
	Email        string
	IsAdmin      bool

	// Jobs holds the ids of jobs the user applied to; filled by Get only.
	Jobs []int64
}

// Application links a user to a job they applied for. Unique per pair.
type Application struct {
	Username  string
	JobID     int64
	AppliedAt time.Time
}
