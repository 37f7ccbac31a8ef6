package mapping

import (
	"github.com/topaz-jewels/backoffice_app/internal/core/domain"
	"github.com/topaz-jewels/backoffice_app/internal/models"
)

// ToModelWorker converts a domain Worker to its table row.
func ToModelWorker(d domain.Worker) models.Worker {
	return models.Worker{
		ID:             d.ID,
		FullName:       d.FullName,
		PostID:         d.PostID,
		BirthDate:      d.BirthDate,
		EmploymentDate: d.EmploymentDate,
		IsDeleted:      d.IsDeleted,
	}
}

// ToDomainWorker converts a worker row to the domain representation.
func ToDomainWorker(m models.Worker) domain.Worker {
	return domain.Worker{
		ID:             m.ID,
		FullName:       m.FullName,
		PostID:         m.PostID,
		BirthDate:      m.BirthDate,
		EmploymentDate: m.EmploymentDate,
		IsDeleted:      m.IsDeleted,
	}
}

// ToDomainWorkerSlice converts a slice of worker rows.
func ToDomainWorkerSlice(ms []models.Worker) []domain.Worker {
	ds := make([]domain.Worker, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainWorker(m)
	}
	return ds
}
