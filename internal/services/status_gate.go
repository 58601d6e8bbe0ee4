package services

import (
	"time"

	"castlink_backend/internal/models"
	"castlink_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// gateAccount enforces the account-status gate shared by login and the
// per-request authorization check. A blocked account always fails, before the
// suspension check. A suspension whose window has passed is cleared in the
// store via clear and in the in-memory status, and the account proceeds as
// active. A suspension still in effect fails with its end date.
func gateAccount(db *gorm.DB, st *models.AccountStatus, clear func(*gorm.DB) error) *apperrors.AppError {
	if st.Blocked {
		return apperrors.ErrAccountBlocked
	}

	if !st.Suspended {
		return nil
	}

	if st.SuspensionExpired(time.Now()) {
		if err := clear(db); err != nil {
			return apperrors.InternalError(err)
		}
		st.Suspended = false
		st.SuspendedFrom = nil
		st.SuspendedTo = nil
		return nil
	}

	return apperrors.ErrAccountSuspended(st.SuspendedTo)
}
