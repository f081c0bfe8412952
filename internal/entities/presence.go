package entities

import "time"

// PresenceRecord это одна запись в истории онлайн/оффлайн переходов курьера.
// История append-only, текущий флаг на курьере всегда равен последней записи.
type PresenceRecord struct {
	ID        int64
	CourierID int64
	Online    bool
	At        time.Time
}
