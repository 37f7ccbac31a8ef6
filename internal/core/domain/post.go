package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PostType enumerates the job titles a worker can hold. The zero value is
// invalid and fails validation.
type PostType string

const (
	PostTypeNone      PostType = ""
	PostTypeManager   PostType = "MANAGER"
	PostTypeSeller    PostType = "SELLER"
	PostTypeAssistant PostType = "ASSISTANT"
	PostTypeCashier   PostType = "CASHIER"
)

// Post is the current version of a job post. PostID is the stable business
// key: every edit produces a new storage row sharing this key, and only one
// row per key is flagged current. The row-level bookkeeping (IsActual,
// ChangeDate) lives in the storage model, not here.
type Post struct {
	PostID   string          `json:"postID" validate:"required,uuid"`
	PostName string          `json:"postName" validate:"required"`
	PostType PostType        `json:"postType" validate:"required,oneof=MANAGER SELLER ASSISTANT CASHIER"`
	Salary   decimal.Decimal `json:"salary" validate:"gt=0"`
}

// Validate checks structural invariants only; uniqueness of PostName and
// PostID among current rows is enforced by storage constraints.
func (p Post) Validate() error {
	return runValidation(p)
}

// PostVersion is one historical row of a business-keyed post, as returned by
// the history query.
type PostVersion struct {
	Post
	IsActual   bool      `json:"isActual"`
	ChangeDate time.Time `json:"changeDate"`
}
