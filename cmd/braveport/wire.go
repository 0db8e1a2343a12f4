package main

import (
	"log/slog"

	"github.com/cwinters/braveport/internal/adapter/driven/oscrypt"
	"github.com/cwinters/braveport/internal/adapter/driven/sqlite"
	"github.com/cwinters/braveport/internal/config"
	"github.com/cwinters/braveport/internal/domain/port/driven"
)

// newLoginStore wires the full credential dependency chain for one run:
// platform probe, capability negotiation, master-key resolution, cipher, and
// the store adapter. Key resolution happens here, once, so commands that do
// not touch passwords never require a key.
func newLoginStore(cfg *config.Config) (driven.LoginStore, error) {
	platform, err := oscrypt.CurrentPlatform()
	if err != nil {
		return nil, err
	}
	caps := oscrypt.DetectCapabilities()

	provider, err := oscrypt.NewKeyProvider(platform, cfg.LocalStatePath, caps)
	if err != nil {
		return nil, err
	}
	key, err := provider.MasterKey()
	if err != nil {
		return nil, err
	}

	cipher, err := oscrypt.NewCipher(key, platform, caps)
	if err != nil {
		return nil, err
	}

	return sqlite.NewLoginRepo(cfg.LoginDataPath(), cipher, slog.Default()), nil
}
