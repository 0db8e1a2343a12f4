package sqlite

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwinters/braveport/internal/adapter/driven/oscrypt"
	"github.com/cwinters/braveport/internal/domain/model"
)

func TestLoginRepo_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Login Data")
	repo := NewLoginRepo(path, testCipher(t), slog.Default())

	logins := []model.Login{
		{OriginURL: "https://example.com/login", UsernameValue: "alice", PasswordValue: "hunter2"},
		{OriginURL: "https://other.test/", UsernameValue: "bob", PasswordValue: "s3cret"},
	}
	written, err := repo.WriteAll(context.Background(), logins)
	require.NoError(t, err)
	assert.Equal(t, 2, written)

	got, attempted, err := repo.ReadAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, attempted)
	require.Len(t, got, 2)

	byOrigin := map[string]model.Login{}
	for _, l := range got {
		byOrigin[l.OriginURL] = l
	}
	assert.Equal(t, "hunter2", byOrigin["https://example.com/login"].PasswordValue)
	assert.Equal(t, "s3cret", byOrigin["https://other.test/"].PasswordValue)
}

func TestLoginRepo_WriteSkipsIncompleteRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Login Data")
	repo := NewLoginRepo(path, testCipher(t), slog.Default())

	logins := []model.Login{
		{OriginURL: "", UsernameValue: "alice", PasswordValue: "hunter2"},
		{OriginURL: "https://example.com/", UsernameValue: "bob", PasswordValue: ""},
		{OriginURL: "https://kept.test/", UsernameValue: "carol", PasswordValue: "kept"},
	}
	written, err := repo.WriteAll(context.Background(), logins)
	require.NoError(t, err)
	assert.Equal(t, 1, written)

	got, _, err := repo.ReadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "https://kept.test/", got[0].OriginURL)
}

func TestLoginRepo_WriteUpdatesExistingRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Login Data")
	repo := NewLoginRepo(path, testCipher(t), slog.Default())

	_, err := repo.WriteAll(context.Background(), []model.Login{
		{OriginURL: "https://example.com/", UsernameValue: "alice", PasswordValue: "old"},
	})
	require.NoError(t, err)

	_, err = repo.WriteAll(context.Background(), []model.Login{
		{OriginURL: "https://example.com/", UsernameValue: "alice", PasswordValue: "new"},
		{OriginURL: "https://example.com/", UsernameValue: "bob", PasswordValue: "fresh"},
	})
	require.NoError(t, err)

	got, attempted, err := repo.ReadAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, attempted)
	require.Len(t, got, 2)

	passwords := map[string]string{}
	for _, l := range got {
		passwords[l.UsernameValue] = l.PasswordValue
	}
	assert.Equal(t, "new", passwords["alice"])
	assert.Equal(t, "fresh", passwords["bob"])
}

func TestLoginRepo_WriteBacksUpExistingStore(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Login Data")
	createLoginStore(t, path)

	cipher := testCipher(t)
	secret, err := cipher.Encrypt("pre-existing")
	require.NoError(t, err)
	insertRawLogin(t, path, "https://old.test/", "dave", secret, model.ToChromeTime(time.Now()))

	repo := NewLoginRepo(path, cipher, slog.Default())
	_, err = repo.WriteAll(context.Background(), []model.Login{
		{OriginURL: "https://new.test/", UsernameValue: "erin", PasswordValue: "newpw"},
	})
	require.NoError(t, err)

	backups, err := filepath.Glob(path + ".bak.*")
	require.NoError(t, err)
	require.Len(t, backups, 1)

	// The backup is the store as it was before the run.
	backupRepo := NewLoginRepo(backups[0], cipher, slog.Default())
	got, _, err := backupRepo.ReadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "https://old.test/", got[0].OriginURL)

	got, _, err = repo.ReadAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestLoginRepo_ReadSkipsUndecryptableRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Login Data")
	createLoginStore(t, path)

	key, err := oscrypt.NewDerivedKeyProvider().MasterKey()
	require.NoError(t, err)

	insertRawLogin(t, path, "https://a.test/", "a", encryptCBC(t, key, []byte("first")), 1)
	insertRawLogin(t, path, "https://bad.test/", "b", []byte("v10garbage-not-a-real-secret"), 2)
	insertRawLogin(t, path, "https://c.test/", "c", encryptCBC(t, key, []byte("third")), 3)

	repo := NewLoginRepo(path, testCipher(t), slog.Default())
	got, attempted, err := repo.ReadAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, attempted)
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].PasswordValue)
	assert.Equal(t, "third", got[1].PasswordValue)
}

func TestLoginRepo_ReadDropsEmptySecrets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Login Data")
	createLoginStore(t, path)
	insertRawLogin(t, path, "https://empty.test/", "nobody", nil, 1)

	repo := NewLoginRepo(path, testCipher(t), slog.Default())
	got, attempted, err := repo.ReadAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, attempted)
	assert.Empty(t, got)
}

func TestLoginRepo_ReadByCreationOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Login Data")
	createLoginStore(t, path)

	cipher := testCipher(t)
	for i, origin := range []string{"https://third.test/", "https://first.test/", "https://second.test/"} {
		created := []int64{300, 100, 200}[i]
		secret, err := cipher.Encrypt("pw")
		require.NoError(t, err)
		insertRawLogin(t, path, origin, "u", secret, created)
	}

	repo := NewLoginRepo(path, cipher, slog.Default())
	got, _, err := repo.ReadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "https://first.test/", got[0].OriginURL)
	assert.Equal(t, "https://second.test/", got[1].OriginURL)
	assert.Equal(t, "https://third.test/", got[2].OriginURL)
}

func TestLoginRepo_MigratesLegacyStore(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "Login Data")
	createLoginStore(t, src)

	key, err := oscrypt.NewDerivedKeyProvider().MasterKey()
	require.NoError(t, err)
	insertRawLogin(t, src, "https://a.example", "user1", encryptCBC(t, key, []byte("first secret")), 100)
	insertRawLogin(t, src, "https://b.example", "user2", encryptCBC(t, key, []byte("second secret")), 200)

	cipher := testCipher(t)
	logins, attempted, err := NewLoginRepo(src, cipher, slog.Default()).ReadAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, attempted)
	require.Len(t, logins, 2)
	assert.Equal(t, "first secret", logins[0].PasswordValue)
	assert.Equal(t, "second secret", logins[1].PasswordValue)

	dst := filepath.Join(dir, "imported", "Login Data")
	dstRepo := NewLoginRepo(dst, cipher, slog.Default())
	written, err := dstRepo.WriteAll(context.Background(), logins)
	require.NoError(t, err)
	assert.Equal(t, 2, written)

	// The rewritten store holds the same plaintexts, now in the modern
	// format.
	db, err := Open(dst)
	require.NoError(t, err)
	defer db.Close()
	rows, err := db.Query(`SELECT password_value FROM logins`)
	require.NoError(t, err)
	defer rows.Close()
	for rows.Next() {
		var secret []byte
		require.NoError(t, rows.Scan(&secret))
		assert.Equal(t, oscrypt.GenerationModern, oscrypt.Classify(secret))
	}
	require.NoError(t, rows.Err())

	got, _, err := dstRepo.ReadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "first secret", got[0].PasswordValue)
	assert.Equal(t, "second secret", got[1].PasswordValue)
}

func TestLoginRepo_ReadMissingStore(t *testing.T) {
	repo := NewLoginRepo(filepath.Join(t.TempDir(), "Login Data"), testCipher(t), slog.Default())
	_, _, err := repo.ReadAll(context.Background())
	assert.Error(t, err)
}
