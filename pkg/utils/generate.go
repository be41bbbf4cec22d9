package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ==================== ORDER REFERENCE ====================

// OrderReference derives the human-facing booking code of an order.
// Format: BOOK-YYYYMMDD-HHMMSS-XXXXXXXX, the suffix being the first 8 hex
// digits of the order ID.
func OrderReference(id uuid.UUID, createdAt time.Time) string {
	datePart := createdAt.Format("20060102")
	timePart := createdAt.Format("150405")
	idPart := strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:8])

	return fmt.Sprintf("BOOK-%s-%s-%s", datePart, timePart, idPart)
}
