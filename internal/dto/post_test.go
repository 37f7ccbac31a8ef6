package dto_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/topaz-jewels/backoffice_app/internal/core/domain"
	"github.com/topaz-jewels/backoffice_app/internal/dto"
)

func TestToPostVersionResponses(t *testing.T) {
	postID := uuid.NewString()
	versions := []domain.PostVersion{
		{
			Post:       domain.Post{PostID: postID, PostName: "Seller", PostType: domain.PostTypeSeller, Salary: decimal.NewFromInt(24000)},
			IsActual:   true,
			ChangeDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			Post:       domain.Post{PostID: postID, PostName: "Junior seller", PostType: domain.PostTypeSeller, Salary: decimal.NewFromInt(18000)},
			IsActual:   false,
			ChangeDate: time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	res := dto.ToPostVersionResponses(versions)

	require.Len(t, res, 2)
	assert.Equal(t, postID, res[0].PostID)
	assert.True(t, res[0].IsActual)
	assert.Equal(t, "Junior seller", res[1].PostName)
	assert.False(t, res[1].IsActual)
	assert.True(t, res[1].Salary.Equal(decimal.NewFromInt(18000)))
}
