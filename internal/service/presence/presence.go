package presence

import (
	"context"
	"fmt"
	"time"

	"dispatch/internal/entities"
)

const defaultHistoryLimit = 50

type Presence struct {
	repository Repository
	entries    EntryCounter
	txManager  TxManager
}

func New(repository Repository, entries EntryCounter, txManager TxManager) *Presence {
	return &Presence{
		repository: repository,
		entries:    entries,
		txManager:  txManager,
	}
}

// SetPresence переключает флаг online и дописывает запись в журнал
// присутствия одной транзакцией. Уход в офлайн с живой заявкой на руках
// запрещен: курьер обязан довезти или отменить.
func (s *Presence) SetPresence(ctx context.Context, courierID int64, online bool) error {
	courier, err := s.repository.GetCourier(ctx, courierID)
	if err != nil {
		return fmt.Errorf("get courier: %w", err)
	}
	if courier.Online == online {
		return nil
	}

	now := time.Now().UTC()
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		// проверка занятости едет в той же сериализуемой транзакции,
		// что и запись флага: принятие заявки параллельным запросом
		// не успеет вклиниться между проверкой и уходом в офлайн
		if !online {
			active, err := s.entries.CountActiveByCourier(ctx, courierID)
			if err != nil {
				return fmt.Errorf("count active entries: %w", err)
			}
			if active > 0 {
				return ErrCourierBusy
			}
		}

		if err := s.repository.SetOnline(ctx, courierID, online, now); err != nil {
			return fmt.Errorf("set online flag: %w", err)
		}
		record := &entities.PresenceRecord{
			CourierID: courierID,
			Online:    online,
			At:        now,
		}
		if err := s.repository.AppendPresenceRecord(ctx, record); err != nil {
			return fmt.Errorf("append presence record: %w", err)
		}
		return nil
	})
}

func (s *Presence) IsOnline(ctx context.Context, courierID int64) (bool, error) {
	courier, err := s.repository.GetCourier(ctx, courierID)
	if err != nil {
		return false, fmt.Errorf("get courier: %w", err)
	}
	return courier.Online, nil
}

// PresenceHistory возвращает последние переключения, свежие первыми.
func (s *Presence) PresenceHistory(ctx context.Context, courierID int64, limit int) ([]entities.PresenceRecord, error) {
	if limit < 0 {
		return nil, ErrInvalidLimit
	}
	if limit == 0 {
		limit = defaultHistoryLimit
	}

	if _, err := s.repository.GetCourier(ctx, courierID); err != nil {
		return nil, fmt.Errorf("get courier: %w", err)
	}

	history, err := s.repository.PresenceHistory(ctx, courierID, limit)
	if err != nil {
		return nil, fmt.Errorf("presence history: %w", err)
	}
	return history, nil
}
