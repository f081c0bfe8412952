package entry

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"dispatch/internal/entities"
)

type Entry struct {
	repository   Repository
	transactions TransactionRepository
	accounts     AccountReader
	pricer       Pricer
	gateway      PaymentGateway
	dispatch     Dispatch
	events       EventPublisher
	txManager    TxManager
}

func New(
	repository Repository,
	transactions TransactionRepository,
	accounts AccountReader,
	pricer Pricer,
	gateway PaymentGateway,
	dispatch Dispatch,
	events EventPublisher,
	txManager TxManager,
) *Entry {
	return &Entry{
		repository:   repository,
		transactions: transactions,
		accounts:     accounts,
		pricer:       pricer,
		gateway:      gateway,
		dispatch:     dispatch,
		events:       events,
		txManager:    txManager,
	}
}

// SubmitEntry превращает сырую заявку в оцененную и атомарно сохраняет
// Entry вместе с Orders. Прайсинг и вызов оракула происходят до открытия
// транзакции, сама транзакция покрывает только финальную запись.
func (s *Entry) SubmitEntry(ctx context.Context, submission entities.EntrySubmission) (*entities.Entry, error) {
	if err := validateSubmission(submission); err != nil {
		return nil, err
	}

	quote, err := s.pricer.QuoteEntry(ctx, submission)
	if err != nil {
		return nil, fmt.Errorf("quote entry: %w", err)
	}

	now := time.Now().UTC()
	entry := &entities.Entry{
		ID:            uuid.New(),
		ShipperID:     submission.ShipperID,
		OriginLat:     submission.OriginLat,
		OriginLng:     submission.OriginLng,
		OriginAddress: quote.OriginAddress,
		Country:       submission.Country,
		State:         submission.State,
		VehicleClass:  submission.VehicleClass,
		TotalDistance: quote.TotalDistance,
		TotalDuration: quote.TotalDuration,
		TotalCost:     quote.TotalCost,
		Status:        entities.EntryRequest,
		CreatedAt:     now,
	}

	entry.Orders = make([]entities.Order, 0, len(quote.Legs))
	for seq, leg := range quote.Legs {
		stop := submission.Stops[leg.StopIndex]
		entry.Orders = append(entry.Orders, entities.Order{
			ID:          uuid.New(),
			EntryID:     entry.ID,
			Seq:         seq,
			DestLat:     stop.Lat,
			DestLng:     stop.Lng,
			DestAddress: leg.Address,
			ItemType:    stop.ItemType,
			WeightKg:    stop.WeightKg,
			Distance:    leg.Distance,
			Duration:    leg.Duration,
			Cost:        leg.Cost,
			ClientRef:   stop.ClientRef,
			CreatedAt:   now,
		})
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.repository.CreateWithOrders(ctx, entry)
	})
	if err != nil {
		return nil, fmt.Errorf("persist entry: %w", err)
	}

	s.dispatch.NotifyBasketUpdated(ctx, entry)
	s.events.EntryStatusChanged(ctx, entry, "", entities.EntryRequest)

	return entry, nil
}

func (s *Entry) GetEntry(ctx context.Context, id uuid.UUID) (*entities.Entry, error) {
	entry, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}
	return entry, nil
}

// ConfirmPayment создает транзакцию на сумму уже загруженного агрегата.
// Повторное чтение цены запрещено, чтобы сумма не могла разъехаться с заявкой.
// Картой: сначала синхронный Charge, потом атомарно транзакция + pending.
// Наличными: транзакция остается pending до подтверждения курьером.
func (s *Entry) ConfirmPayment(ctx context.Context, entryID uuid.UUID, method entities.PaymentMethod, cardToken string) (*entities.Transaction, error) {
	if !method.Valid() {
		return nil, ErrInvalidPaymentMethod
	}

	entry, err := s.repository.GetByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}
	if entry.Status != entities.EntryRequest {
		return nil, fmt.Errorf("entry %s is %s: %w", entryID, entry.Status, ErrIllegalTransition)
	}

	now := time.Now().UTC()
	transaction := &entities.Transaction{
		ID:        uuid.New(),
		EntryID:   entry.ID,
		Amount:    entry.TotalCost,
		Method:    method,
		Status:    entities.TransactionPending,
		Reference: uuid.NewString(),
		CreatedAt: now,
	}

	if method == entities.PaymentCard {
		settlementRef, chargeErr := s.gateway.Charge(ctx, transaction.Reference, cardToken, transaction.Amount)
		if chargeErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrPaymentFailed, chargeErr)
		}
		transaction.Status = entities.TransactionApproved
		transaction.Reference = settlementRef
		transaction.SettledAt = &now
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.transactions.Create(ctx, transaction); err != nil {
			return fmt.Errorf("create transaction: %w", err)
		}
		return s.repository.UpdateStatus(ctx, entry.ID,
			[]entities.EntryStatus{entities.EntryRequest}, entities.EntryPending, now)
	})
	if err != nil {
		return nil, err
	}

	s.events.EntryStatusChanged(ctx, entry, entities.EntryRequest, entities.EntryPending)

	return transaction, nil
}

// CashActor идентифицирует того, кто подтверждает наличный расчет:
// назначенный курьер или владеющая заявкой компания.
type CashActor struct {
	CourierID *int64
	CompanyID *int64
}

func (a CashActor) allowedFor(entry *entities.Entry) bool {
	if a.CourierID != nil && entry.CourierID != nil && *a.CourierID == *entry.CourierID {
		return true
	}
	if a.CompanyID != nil && entry.CompanyID != nil && *a.CompanyID == *entry.CompanyID {
		return true
	}
	return false
}

// ConfirmCashPayment закрывает наличную транзакцию. Отказ каскадно
// отменяет заявку в той же транзакции БД.
func (s *Entry) ConfirmCashPayment(ctx context.Context, entryID uuid.UUID, actor CashActor, approve bool) error {
	entry, err := s.repository.GetByID(ctx, entryID)
	if err != nil {
		return fmt.Errorf("get entry: %w", err)
	}
	if !actor.allowedFor(entry) {
		return ErrNotAllowed
	}

	transaction, err := s.transactions.GetActiveByEntry(ctx, entry.ID)
	if err != nil {
		return fmt.Errorf("get active transaction: %w", err)
	}
	if transaction.Method != entities.PaymentCash {
		return ErrNotCashPayment
	}
	if transaction.Status != entities.TransactionPending {
		return fmt.Errorf("transaction %s is %s: %w", transaction.ID, transaction.Status, ErrPaymentConflict)
	}

	now := time.Now().UTC()
	if approve {
		err = s.txManager.Do(ctx, func(ctx context.Context) error {
			return s.transactions.Settle(ctx, transaction.ID, entities.TransactionApproved, now)
		})
		return err
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.transactions.Settle(ctx, transaction.ID, entities.TransactionDeclined, now); err != nil {
			return err
		}
		return s.cancelWithin(ctx, entry, now)
	})
	if err != nil {
		return err
	}

	s.events.EntryStatusChanged(ctx, entry, entry.Status, entities.EntryCancelled)
	return nil
}

// AcceptForCompany закрепляет заявку за компанией и раздает офферы ее
// подходящим курьерам. Гонка между компаниями решается условным обновлением.
func (s *Entry) AcceptForCompany(ctx context.Context, entryID uuid.UUID, companyID int64) error {
	company, err := s.accounts.GetCompany(ctx, companyID)
	if err != nil {
		return fmt.Errorf("get company: %w", err)
	}
	if !company.Verified || !company.Active {
		return ErrCompanyInactive
	}

	entry, err := s.repository.GetByID(ctx, entryID)
	if err != nil {
		return fmt.Errorf("get entry: %w", err)
	}
	if !company.Supports(entry.VehicleClass) {
		return ErrVehicleUnsupported
	}
	if !company.OperatesIn(entry.Country, entry.State) {
		return ErrOutsideRegion
	}

	now := time.Now().UTC()
	if err := s.repository.ClaimForCompany(ctx, entry.ID, companyID, now); err != nil {
		return err
	}

	previous := entry.Status
	entry.CompanyID = &companyID
	entry.Status = entities.EntryCompanyAccepted
	entry.CompanyAt = &now

	courierIDs, err := s.accounts.EligibleCourierIDs(ctx, companyID, entry.VehicleClass)
	if err != nil {
		// заявка уже закреплена; офферы доедут при следующем обновлении клиента
		courierIDs = nil
	}
	if len(courierIDs) > 0 {
		s.dispatch.NotifyOffered(ctx, entry, courierIDs)
	}
	s.events.EntryStatusChanged(ctx, entry, previous, entities.EntryCompanyAccepted)

	return nil
}

// AcceptForCourier разыгрывает гонку принятия: условное обновление
// пропускает ровно одного победителя, остальные получают ErrAlreadyTaken.
func (s *Entry) AcceptForCourier(ctx context.Context, entryID uuid.UUID, courierID int64) error {
	courier, err := s.accounts.GetCourier(ctx, courierID)
	if err != nil {
		return fmt.Errorf("get courier: %w", err)
	}

	entry, err := s.repository.GetByID(ctx, entryID)
	if err != nil {
		return fmt.Errorf("get entry: %w", err)
	}
	if !courier.EligibleFor(entry) {
		return ErrNotEligible
	}

	now := time.Now().UTC()
	if err := s.repository.AssignCourier(ctx, entry.ID, courierID, now); err != nil {
		return err
	}

	entry.CourierID = &courierID
	entry.Status = entities.EntryAccepted
	entry.AcceptedAt = &now

	s.dispatch.NotifyTaken(ctx, entry, courierID)
	s.events.EntryStatusChanged(ctx, entry, entities.EntryCompanyAccepted, entities.EntryAccepted)

	return nil
}

func (s *Entry) StartTransit(ctx context.Context, entryID uuid.UUID, courierID int64) error {
	return s.courierTransition(ctx, entryID, courierID, entities.EntryAccepted, entities.EntryOngoing)
}

func (s *Entry) CompleteEntry(ctx context.Context, entryID uuid.UUID, courierID int64) error {
	return s.courierTransition(ctx, entryID, courierID, entities.EntryOngoing, entities.EntryCompleted)
}

func (s *Entry) courierTransition(ctx context.Context, entryID uuid.UUID, courierID int64, from, to entities.EntryStatus) error {
	entry, err := s.repository.GetByID(ctx, entryID)
	if err != nil {
		return fmt.Errorf("get entry: %w", err)
	}
	if entry.CourierID == nil || *entry.CourierID != courierID {
		return ErrNotAllowed
	}
	if entry.Status != from {
		return fmt.Errorf("entry %s is %s: %w", entryID, entry.Status, ErrIllegalTransition)
	}

	now := time.Now().UTC()
	if err := s.repository.UpdateStatus(ctx, entry.ID, []entities.EntryStatus{from}, to, now); err != nil {
		return err
	}

	s.events.EntryStatusChanged(ctx, entry, from, to)
	return nil
}

// CancelEntry переводит любую нетерминальную заявку в cancelled, попутно
// отклоняя активную pending транзакцию в той же транзакции БД.
func (s *Entry) CancelEntry(ctx context.Context, entryID uuid.UUID) error {
	entry, err := s.repository.GetByID(ctx, entryID)
	if err != nil {
		return fmt.Errorf("get entry: %w", err)
	}
	if entry.Status.Terminal() {
		return fmt.Errorf("entry %s already %s: %w", entryID, entry.Status, ErrIllegalTransition)
	}

	now := time.Now().UTC()
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		transaction, txErr := s.transactions.GetActiveByEntry(ctx, entry.ID)
		if txErr == nil && transaction.Status == entities.TransactionPending {
			if err := s.transactions.Settle(ctx, transaction.ID, entities.TransactionDeclined, now); err != nil {
				return err
			}
		}
		return s.cancelWithin(ctx, entry, now)
	})
	if err != nil {
		return err
	}

	previous := entry.Status
	entry.Status = entities.EntryCancelled
	entry.CancelledAt = &now

	s.dispatch.NotifyBasketUpdated(ctx, entry)
	s.events.EntryStatusChanged(ctx, entry, previous, entities.EntryCancelled)
	return nil
}

// ApplySettlement обрабатывает колбэк платежного шлюза. Повторная доставка
// уже рассчитанной транзакции просто пропускается.
func (s *Entry) ApplySettlement(ctx context.Context, reference string, approved bool) error {
	transaction, err := s.transactions.GetByReference(ctx, reference)
	if err != nil {
		return fmt.Errorf("get transaction by reference: %w", err)
	}
	if transaction.Status != entities.TransactionPending {
		return nil
	}

	now := time.Now().UTC()
	if approved {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			return s.transactions.Settle(ctx, transaction.ID, entities.TransactionApproved, now)
		})
	}

	entry, err := s.repository.GetByID(ctx, transaction.EntryID)
	if err != nil {
		return fmt.Errorf("get entry: %w", err)
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.transactions.Settle(ctx, transaction.ID, entities.TransactionDeclined, now); err != nil {
			return err
		}
		return s.cancelWithin(ctx, entry, now)
	})
	if err != nil {
		return err
	}

	s.events.EntryStatusChanged(ctx, entry, entry.Status, entities.EntryCancelled)
	return nil
}

// CleanupStaleRequests отменяет неоплаченные заявки старше maxAge.
func (s *Entry) CleanupStaleRequests(ctx context.Context, maxAge time.Duration) (int64, error) {
	cancelled, err := s.repository.CancelStaleRequests(ctx, time.Now().UTC().Add(-maxAge))
	if err != nil {
		return 0, fmt.Errorf("cancel stale requests: %w", err)
	}
	return cancelled, nil
}

func (s *Entry) cancelWithin(ctx context.Context, entry *entities.Entry, now time.Time) error {
	nonTerminal := []entities.EntryStatus{
		entities.EntryRequest,
		entities.EntryPending,
		entities.EntryCompanyAccepted,
		entities.EntryAccepted,
		entities.EntryOngoing,
	}
	return s.repository.UpdateStatus(ctx, entry.ID, nonTerminal, entities.EntryCancelled, now)
}
