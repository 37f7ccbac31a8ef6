package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Post is one physical row of the versioned posts table. RowID is the storage
// primary key; PostID is the stable business key shared by all versions of
// the same post. At most one row per PostID has IsActual set, enforced by a
// partial unique index.
type Post struct {
	RowID      string          `db:"row_id"`
	PostID     string          `db:"post_id"`
	PostName   string          `db:"post_name"`
	PostType   string          `db:"post_type"`
	Salary     decimal.Decimal `db:"salary"`
	IsActual   bool            `db:"is_actual"`
	ChangeDate time.Time       `db:"change_date"`
}
