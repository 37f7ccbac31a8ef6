package models

import "time"

// Worker is a row of the workers table.
type Worker struct {
	ID             string    `db:"id"`
	FullName       string    `db:"full_name"`
	PostID         string    `db:"post_id"`
	BirthDate      time.Time `db:"birth_date"`
	EmploymentDate time.Time `db:"employment_date"`
	IsDeleted      bool      `db:"is_deleted"`
}
