package driven

import (
	"context"

	"github.com/cwinters/braveport/internal/domain/model"
)

// LoginStore is the driven port for the browser's credential store. The
// adapter layer owns decryption/encryption and the working-copy/backup
// discipline; this interface operates on plaintext at the domain boundary.
type LoginStore interface {
	// ReadAll returns all decrypted logins in creation order, together with
	// the number of stored rows examined. A row whose secret cannot be
	// decrypted is skipped and logged, never fatal to the batch.
	ReadAll(ctx context.Context) ([]model.Login, int, error)

	// WriteAll upserts logins keyed on (origin URL, username) and returns
	// the number actually written. Logins with an empty origin or empty
	// password are skipped. The destination store is backed up before it is
	// replaced; a failed run leaves the original untouched.
	WriteAll(ctx context.Context, logins []model.Login) (int, error)
}
