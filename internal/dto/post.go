package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/topaz-jewels/backoffice_app/internal/core/domain"
)

// CreatePostRequest defines the data needed to register a new post.
type CreatePostRequest struct {
	PostName string          `json:"postName"`
	PostType domain.PostType `json:"postType"`
	Salary   decimal.Decimal `json:"salary"`
}

// UpdatePostRequest carries the full replacement attributes for a post; the
// temporal swap always writes a complete new version.
type UpdatePostRequest struct {
	PostName string          `json:"postName"`
	PostType domain.PostType `json:"postType"`
	Salary   decimal.Decimal `json:"salary"`
}

// PostResponse mirrors domain.Post for callers.
type PostResponse struct {
	PostID   string          `json:"postID"`
	PostName string          `json:"postName"`
	PostType domain.PostType `json:"postType"`
	Salary   decimal.Decimal `json:"salary"`
}

// PostVersionResponse mirrors one history entry of a post.
type PostVersionResponse struct {
	PostResponse
	IsActual   bool      `json:"isActual"`
	ChangeDate time.Time `json:"changeDate"`
}

// ToPostResponse converts a domain.Post to its response DTO.
func ToPostResponse(p *domain.Post) PostResponse {
	return PostResponse{
		PostID:   p.PostID,
		PostName: p.PostName,
		PostType: p.PostType,
		Salary:   p.Salary,
	}
}

// ToPostVersionResponses converts post history entries to response DTOs.
func ToPostVersionResponses(versions []domain.PostVersion) []PostVersionResponse {
	res := make([]PostVersionResponse, len(versions))
	for i, v := range versions {
		res[i] = PostVersionResponse{
			PostResponse: ToPostResponse(&v.Post),
			IsActual:     v.IsActual,
			ChangeDate:   v.ChangeDate,
		}
	}
	return res
}
