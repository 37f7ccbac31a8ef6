package mapping

import (
	"github.com/topaz-jewels/backoffice_app/internal/core/domain"
	"github.com/topaz-jewels/backoffice_app/internal/models"
)

// ToDomainPost converts a current post row to the domain view, dropping the
// row-level versioning fields.
func ToDomainPost(m models.Post) domain.Post {
	return domain.Post{
		PostID:   m.PostID,
		PostName: m.PostName,
		PostType: domain.PostType(m.PostType),
		Salary:   m.Salary,
	}
}

// ToDomainPostVersion converts a post row to the history view.
func ToDomainPostVersion(m models.Post) domain.PostVersion {
	return domain.PostVersion{
		Post:       ToDomainPost(m),
		IsActual:   m.IsActual,
		ChangeDate: m.ChangeDate,
	}
}

// ToDomainPostSlice converts a slice of post rows to domain posts.
func ToDomainPostSlice(ms []models.Post) []domain.Post {
	ds := make([]domain.Post, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPost(m)
	}
	return ds
}

// ToDomainPostVersionSlice converts a slice of post rows to history entries.
func ToDomainPostVersionSlice(ms []models.Post) []domain.PostVersion {
	ds := make([]domain.PostVersion, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPostVersion(m)
	}
	return ds
}
