package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	// 23505 ловит гонки на частичных уникальных индексах
	// (активная транзакция заявки, активная связка курьер-компания).
	PgErrUniqueViolation = "23505"
)

// IsPgErrorWithCode сообщает, что err это ошибка постгреса с данным кодом.
func IsPgErrorWithCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}
