package dto

import "time"

// CreateWorkerRequest defines the data needed to register a worker.
type CreateWorkerRequest struct {
	FullName       string    `json:"fullName"`
	PostID         string    `json:"postID"`
	BirthDate      time.Time `json:"birthDate"`
	EmploymentDate time.Time `json:"employmentDate"`
}

// UpdateWorkerRequest carries the full replacement attributes for a worker.
type UpdateWorkerRequest struct {
	FullName       string    `json:"fullName"`
	PostID         string    `json:"postID"`
	BirthDate      time.Time `json:"birthDate"`
	EmploymentDate time.Time `json:"employmentDate"`
}
