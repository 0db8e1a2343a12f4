package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cwinters/braveport/internal/domain/model"
	"github.com/cwinters/braveport/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.LoginStore = (*LoginRepo)(nil)

// LoginRepo is the SQLite implementation of the LoginStore port for a
// Chromium "Login Data" database. Secrets cross this boundary as plaintext;
// the injected cipher handles both encryption generations.
type LoginRepo struct {
	path   string
	cipher driven.SecretCipher
	log    *slog.Logger
}

// NewLoginRepo creates a LoginRepo for the store file at path.
func NewLoginRepo(path string, cipher driven.SecretCipher, log *slog.Logger) *LoginRepo {
	if log == nil {
		log = slog.Default()
	}
	return &LoginRepo{path: path, cipher: cipher, log: log}
}

// ReadAll decrypts every stored login in creation order. A record that fails
// to decrypt is logged and skipped so one corrupt row cannot sink the batch;
// records whose secret decrypts to nothing are dropped silently. The second
// return value is the number of rows examined.
func (r *LoginRepo) ReadAll(ctx context.Context) ([]model.Login, int, error) {
	wc, err := OpenWorkingCopy(r.path)
	if err != nil {
		return nil, 0, err
	}
	defer wc.Close()

	const query = `SELECT origin_url, username_value, password_value, date_created FROM logins ORDER BY date_created`
	rows, err := wc.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("query logins: %w", err)
	}
	defer rows.Close()

	var (
		logins    []model.Login
		attempted int
	)
	for rows.Next() {
		var (
			login   model.Login
			secret  []byte
			created int64
		)
		if err := rows.Scan(&login.OriginURL, &login.UsernameValue, &secret, &created); err != nil {
			return nil, attempted, fmt.Errorf("scan login: %w", err)
		}
		attempted++

		plaintext, err := r.cipher.Decrypt(secret)
		if err != nil {
			r.log.Warn("skipping undecryptable login",
				"origin", login.OriginURL,
				"username", login.UsernameValue,
				"error", err,
			)
			continue
		}
		if plaintext == "" {
			continue
		}

		login.PasswordValue = plaintext
		login.DateCreated = model.FromChromeTime(created)
		logins = append(logins, login)
	}
	if err := rows.Err(); err != nil {
		return nil, attempted, fmt.Errorf("iterate logins: %w", err)
	}

	return logins, attempted, nil
}

// WriteAll upserts logins into the store, creating it when absent. Every
// secret is re-encrypted into the modern format regardless of how it was
// stored before. The original file is backed up and atomically replaced only
// after the whole working copy is built; a failed run leaves it untouched.
func (r *LoginRepo) WriteAll(ctx context.Context, logins []model.Login) (int, error) {
	wc, err := CreateWorkingCopy(r.path)
	if err != nil {
		return 0, err
	}
	defer wc.Close()

	now := model.ToChromeTime(time.Now())
	count := 0
	for _, login := range logins {
		if login.OriginURL == "" || login.PasswordValue == "" {
			continue
		}

		secret, err := r.cipher.Encrypt(login.PasswordValue)
		if err != nil {
			// No key means no record can succeed; anything else is
			// per-record and skippable.
			if errors.Is(err, driven.ErrNoKey) || errors.Is(err, driven.ErrUnsupportedPlatform) {
				return 0, fmt.Errorf("encrypt login for %s: %w", login.OriginURL, err)
			}
			r.log.Warn("skipping login that failed to encrypt", "origin", login.OriginURL, "error", err)
			continue
		}

		if err := r.upsert(ctx, wc.DB(), login, secret, now); err != nil {
			return 0, err
		}
		count++
	}

	backupPath, err := wc.Commit()
	if err != nil {
		return 0, err
	}
	if backupPath != "" {
		r.log.Info("backed up login store", "backup", backupPath)
	}

	return count, nil
}

// upsert updates the record matching (origin_url, username_value) or inserts
// a new one with the browser's schema defaults.
func (r *LoginRepo) upsert(ctx context.Context, db *sql.DB, login model.Login, secret []byte, now int64) error {
	var id int64
	err := db.QueryRowContext(ctx,
		`SELECT id FROM logins WHERE origin_url = ? AND username_value = ?`,
		login.OriginURL, login.UsernameValue,
	).Scan(&id)

	switch {
	case err == nil:
		_, err = db.ExecContext(ctx,
			`UPDATE logins SET password_value = ?, date_password_modified = ? WHERE id = ?`,
			secret, now, id,
		)
		if err != nil {
			return fmt.Errorf("update login %s: %w", login.OriginURL, err)
		}
		return nil

	case errors.Is(err, sql.ErrNoRows):
		realm := login.SignonRealm
		if realm == "" {
			realm = login.OriginURL
		}
		created := now
		if !login.DateCreated.IsZero() {
			created = model.ToChromeTime(login.DateCreated)
		}
		_, err = db.ExecContext(ctx,
			`INSERT INTO logins (
				origin_url, action_url, username_element, username_value,
				password_element, password_value, submit_element, signon_realm,
				date_created, blacklisted_by_user, scheme, date_password_modified
			) VALUES (?, ?, '', ?, '', ?, '', ?, ?, 0, 0, ?)`,
			login.OriginURL, login.OriginURL, login.UsernameValue, secret, realm, created, now,
		)
		if err != nil {
			return fmt.Errorf("insert login %s: %w", login.OriginURL, err)
		}
		return nil

	default:
		return fmt.Errorf("look up login %s: %w", login.OriginURL, err)
	}
}
