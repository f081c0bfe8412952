package link

import (
	"errors"

	"dispatch/internal/service/entry"
)

var (
	// Профили читает общий репозиторий аккаунтов, sentinel один на всех.
	ErrCourierNotFound = entry.ErrCourierNotFound
	ErrCompanyNotFound = entry.ErrCompanyNotFound

	ErrLinkNotFound     = errors.New("link request not found")
	ErrLinkConflict     = errors.New("courier already has an open link request to this company")
	ErrLinkNotPending   = errors.New("link request already decided")
	ErrAlreadyLinked    = errors.New("courier already linked to a company")
	ErrCompanyInactive  = errors.New("company not verified or inactive")
	ErrInvalidDecision  = errors.New("decision must be approved or declined")
	ErrDecisionMismatch = errors.New("deciding company does not own this link request")
)
