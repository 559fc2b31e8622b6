package postgres

import (
	"errors"
	"fmt"
	"log/slog"

	"customer-service/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

func translateDBError(err error, logger *slog.Logger) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		logger.Warn("Unique constraint violated",
			slog.String("constraint", pgErr.ConstraintName),
			slog.String("detail", pgErr.Detail))
		return fmt.Errorf("%w: %s", apperrors.ErrAlreadyExists, pgErr.ConstraintName)
	}
	return err
}
