package link

import (
	"context"
	"fmt"
	"time"

	"dispatch/internal/entities"
)

type Link struct {
	repository Repository
	accounts   AccountReader
	txManager  TxManager
}

func New(repository Repository, accounts AccountReader, txManager TxManager) *Link {
	return &Link{
		repository: repository,
		accounts:   accounts,
		txManager:  txManager,
	}
}

// RequestLink заводит pending заявку курьера на привязку к компании.
// Дубль не-отклоненной заявки к той же компании упирается в частичный
// уникальный индекс и превращается в ErrLinkConflict.
func (s *Link) RequestLink(ctx context.Context, courierID, companyID int64) (*entities.CourierCompanyLink, error) {
	courier, err := s.accounts.GetCourier(ctx, courierID)
	if err != nil {
		return nil, fmt.Errorf("get courier: %w", err)
	}
	if courier.CompanyID != nil {
		return nil, ErrAlreadyLinked
	}

	company, err := s.accounts.GetCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("get company: %w", err)
	}
	if !company.Verified || !company.Active {
		return nil, ErrCompanyInactive
	}

	link := &entities.CourierCompanyLink{
		CourierID: courierID,
		CompanyID: companyID,
		Status:    entities.LinkPending,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repository.Create(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}

// DecideLink закрывает pending заявку. Одобрение дополнительно закрепляет
// курьера за компанией, обе записи идут одной транзакцией.
func (s *Link) DecideLink(ctx context.Context, linkID, companyID int64, approve bool) error {
	link, err := s.repository.GetByID(ctx, linkID)
	if err != nil {
		return fmt.Errorf("get link: %w", err)
	}
	if link.CompanyID != companyID {
		return ErrDecisionMismatch
	}
	if link.Status != entities.LinkPending {
		return ErrLinkNotPending
	}

	status := entities.LinkDeclined
	if approve {
		status = entities.LinkApproved
	}

	now := time.Now().UTC()
	return s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repository.DecidePending(ctx, linkID, status, now); err != nil {
			return err
		}
		if approve {
			if err := s.repository.AssignCompany(ctx, link.CourierID, link.CompanyID); err != nil {
				return fmt.Errorf("assign company: %w", err)
			}
		}
		return nil
	})
}

// LinksForCourier отдает все заявки курьера, включая отклоненные.
func (s *Link) LinksForCourier(ctx context.Context, courierID int64) ([]entities.CourierCompanyLink, error) {
	if _, err := s.accounts.GetCourier(ctx, courierID); err != nil {
		return nil, fmt.Errorf("get courier: %w", err)
	}

	links, err := s.repository.ListByCourier(ctx, courierID)
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	return links, nil
}
