package service

import (
	"errors"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/tdlam/formdesk/internal/apperr"
	"gorm.io/gorm"
)

// parseID converts a wire-level text identifier to a store key. Non-numeric
// ids fail as NOT_FOUND: callers cannot distinguish a malformed id from a
// missing row, and the taxonomy stays consistent across operations.
func parseID(raw, entity string) (uint, *apperr.Error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, apperr.NotFound(entity)
	}
	return uint(id), nil
}

// storeErr maps a repository failure to the caller-visible taxonomy. Missing
// rows surface as NOT_FOUND; anything else is logged and suppressed behind
// SERVER_ERROR.
func storeErr(entity string, err error) *apperr.Error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(entity)
	}
	log.Error().Err(err).Str("entity", entity).Msg("Store operation failed")
	return apperr.Internal(err)
}
