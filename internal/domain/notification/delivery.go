package notification

import (
	"database/sql"
	"time"
)

// Delivery is one attempt to send a message to the operator chat.
// Corresponds to the 'notification_deliveries' table.
type Delivery struct {
	ID        int64
	ChatID    int64
	Kind      Kind
	Text      string
	Result    Result
	Error     sql.NullString // delivery error, if any
	CreatedAt time.Time
}
