package domain

import "time"

// Worker is a shop employee. PostID references the business key of the
// worker's job post. Soft-deleted workers are excluded from default listings
// and from payroll.
type Worker struct {
	ID             string    `json:"id" validate:"required,uuid"`
	FullName       string    `json:"fullName" validate:"required"`
	PostID         string    `json:"postID" validate:"required,uuid"`
	BirthDate      time.Time `json:"birthDate" validate:"required"`
	EmploymentDate time.Time `json:"employmentDate" validate:"required"`
	IsDeleted      bool      `json:"isDeleted"`
}

func (w Worker) Validate() error {
	return runValidation(w)
}

// WorkerFilter narrows worker listings. Each range applies only when both
// bounds are set, matching the storage contract.
type WorkerFilter struct {
	PostID             *string
	FromBirthDate      *time.Time
	ToBirthDate        *time.Time
	FromEmploymentDate *time.Time
	ToEmploymentDate   *time.Time
}
