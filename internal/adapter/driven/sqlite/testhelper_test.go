package sqlite

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwinters/braveport/internal/adapter/driven/oscrypt"
	"github.com/cwinters/braveport/internal/domain/model"
	"github.com/cwinters/braveport/internal/domain/port/driven"
)

// testCipher returns a cipher keyed with the deterministic derived key, so
// fixtures written by one test helper decrypt in another.
func testCipher(t *testing.T) driven.SecretCipher {
	t.Helper()
	key, err := oscrypt.NewDerivedKeyProvider().MasterKey()
	require.NoError(t, err)
	c, err := oscrypt.NewCipher(key, model.PlatformLinux, oscrypt.Capabilities{})
	require.NoError(t, err)
	return c
}

// createLoginStore lays down an empty login store at path.
func createLoginStore(t *testing.T, path string) {
	t.Helper()
	db, err := Open(path)
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, RunMigrations(db))
}

// insertRawLogin plants a row with an already-encrypted secret, bypassing the
// repo's write path.
func insertRawLogin(t *testing.T, path, origin, username string, secret []byte, created int64) {
	t.Helper()
	db, err := Open(path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(
		`INSERT INTO logins (
			origin_url, action_url, username_element, username_value,
			password_element, password_value, submit_element, signon_realm,
			date_created, blacklisted_by_user, scheme
		) VALUES (?, ?, '', ?, '', ?, '', ?, ?, 0, 0)`,
		origin, origin, username, secret, origin, created,
	)
	require.NoError(t, err)
}

// encryptCBC writes a secret in the legacy Linux format so read paths can be
// exercised against stores predating the modern scheme.
func encryptCBC(t *testing.T, key, plaintext []byte) []byte {
	t.Helper()
	padLen := aes.BlockSize - len(plaintext)%aes.BlockSize
	padded := append(append([]byte{}, plaintext...), bytes.Repeat([]byte{byte(padLen)}, padLen)...)

	block, err := aes.NewCipher(key)
	require.NoError(t, err)

	iv := bytes.Repeat([]byte{' '}, aes.BlockSize)
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, padded)
	return out
}
