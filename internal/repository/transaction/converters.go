package transaction

import "dispatch/internal/entities"

func ToDomain(t *TransactionDB) *entities.Transaction {
	if t == nil {
		return nil
	}
	return &entities.Transaction{
		ID:        t.ID,
		EntryID:   t.EntryID,
		Amount:    t.Amount,
		Method:    entities.PaymentMethod(t.Method),
		Status:    entities.TransactionStatus(t.Status),
		Reference: t.Reference,
		CreatedAt: t.CreatedAt,
		SettledAt: t.SettledAt,
	}
}
