package entity

import (
	"time"

	"github.com/google/uuid"
)

// BaseSimple is embedded by every journal row; rows are append-only.
type BaseSimple struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}
