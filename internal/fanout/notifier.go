package fanout

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

const (
	kindOffered       = "offered"
	kindTaken         = "taken"
	kindBasketUpdated = "basket_updated"
)

// Notifier рассылает офферы и обновления корзины через Redis pub/sub.
// Доставка best-effort: ошибки логируются и не влияют на переходы заявки,
// клиент дочитает актуальное состояние при следующем запросе.
type Notifier struct {
	rdb      *redis.Client
	log      logger.Logger
	offerTTL time.Duration
}

func New(rdb *redis.Client, log logger.Logger, offerTTL time.Duration) *Notifier {
	return &Notifier{
		rdb:      rdb,
		log:      log,
		offerTTL: offerTTL,
	}
}

type jobMessage struct {
	Kind          string `json:"kind"`
	EntryID       string `json:"entry_id"`
	OriginAddress string `json:"origin_address,omitempty"`
	Stops         int    `json:"stops,omitempty"`
	VehicleClass  string `json:"vehicle_class,omitempty"`
	TotalCost     string `json:"total_cost,omitempty"`
	WinnerID      int64  `json:"winner_id,omitempty"`
}

type basketMessage struct {
	Kind    string `json:"kind"`
	EntryID string `json:"entry_id"`
	Status  string `json:"status"`
}

func courierChannel(courierID int64) string {
	return "courier." + strconv.FormatInt(courierID, 10) + ".jobs"
}

func shipperChannel(shipperID int64) string {
	return "shipper." + strconv.FormatInt(shipperID, 10) + ".basket"
}

func offersKey(entryID string) string {
	return "entry." + entryID + ".offers"
}

// NotifyOffered шлет оффер каждому подходящему курьеру и запоминает
// адресатов в наборе, чтобы потом отозвать оффер у проигравших.
func (n *Notifier) NotifyOffered(ctx context.Context, entry *entities.Entry, courierIDs []int64) {
	payload, err := json.Marshal(jobMessage{
		Kind:          kindOffered,
		EntryID:       entry.ID.String(),
		OriginAddress: entry.OriginAddress,
		Stops:         len(entry.Orders),
		VehicleClass:  entry.VehicleClass.String(),
		TotalCost:     entry.TotalCost.StringFixed(2),
	})
	if err != nil {
		n.log.Error("fanout: marshal offer", logger.NewField("error", err))
		return
	}

	members := make([]interface{}, 0, len(courierIDs))
	for _, id := range courierIDs {
		members = append(members, id)
	}

	key := offersKey(entry.ID.String())
	pipe := n.rdb.Pipeline()
	pipe.SAdd(ctx, key, members...)
	pipe.Expire(ctx, key, n.offerTTL)
	for _, id := range courierIDs {
		pipe.Publish(ctx, courierChannel(id), payload)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		n.log.Error("fanout: publish offers",
			logger.NewField("entry_id", entry.ID.String()),
			logger.NewField("error", err),
		)
	}
}

// NotifyTaken отзывает оффер у всех, кроме победителя, и чистит набор.
func (n *Notifier) NotifyTaken(ctx context.Context, entry *entities.Entry, winnerID int64) {
	key := offersKey(entry.ID.String())

	offered, err := n.rdb.SMembers(ctx, key).Result()
	if err != nil {
		n.log.Error("fanout: read offer set",
			logger.NewField("entry_id", entry.ID.String()),
			logger.NewField("error", err),
		)
		return
	}

	payload, err := json.Marshal(jobMessage{
		Kind:     kindTaken,
		EntryID:  entry.ID.String(),
		WinnerID: winnerID,
	})
	if err != nil {
		n.log.Error("fanout: marshal taken", logger.NewField("error", err))
		return
	}

	pipe := n.rdb.Pipeline()
	for _, member := range offered {
		courierID, parseErr := strconv.ParseInt(member, 10, 64)
		if parseErr != nil || courierID == winnerID {
			continue
		}
		pipe.Publish(ctx, courierChannel(courierID), payload)
	}
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		n.log.Error("fanout: publish taken",
			logger.NewField("entry_id", entry.ID.String()),
			logger.NewField("error", err),
		)
	}
}

// NotifyBasketUpdated сообщает отправителю о смене состояния заявки.
func (n *Notifier) NotifyBasketUpdated(ctx context.Context, entry *entities.Entry) {
	payload, err := json.Marshal(basketMessage{
		Kind:    kindBasketUpdated,
		EntryID: entry.ID.String(),
		Status:  entry.Status.String(),
	})
	if err != nil {
		n.log.Error("fanout: marshal basket update", logger.NewField("error", err))
		return
	}

	if err := n.rdb.Publish(ctx, shipperChannel(entry.ShipperID), payload).Err(); err != nil {
		n.log.Error(fmt.Sprintf("fanout: publish basket update to %s", shipperChannel(entry.ShipperID)),
			logger.NewField("entry_id", entry.ID.String()),
			logger.NewField("error", err),
		)
	}
}
