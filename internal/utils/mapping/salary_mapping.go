package mapping

import (
	"github.com/topaz-jewels/backoffice_app/internal/core/domain"
	"github.com/topaz-jewels/backoffice_app/internal/models"
)

// ToModelSalary converts a domain Salary to its table row.
func ToModelSalary(d domain.Salary) models.Salary {
	return models.Salary{
		ID:           d.ID,
		WorkerID:     d.WorkerID,
		SalaryDate:   d.SalaryDate,
		WorkerSalary: d.WorkerSalary,
	}
}

// ToDomainSalary converts a salary row to the domain representation.
func ToDomainSalary(m models.Salary) domain.Salary {
	return domain.Salary{
		ID:           m.ID,
		WorkerID:     m.WorkerID,
		SalaryDate:   m.SalaryDate,
		WorkerSalary: m.WorkerSalary,
	}
}

// ToDomainSalarySlice converts a slice of salary rows.
func ToDomainSalarySlice(ms []models.Salary) []domain.Salary {
	ds := make([]domain.Salary, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSalary(m)
	}
	return ds
}
