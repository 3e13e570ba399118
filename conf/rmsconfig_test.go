package conf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wildhaven/reserve-console-go/conf"
)

func TestPrintRedacted(t *testing.T) {
	t.Parallel()
	cfg := conf.RMSConfig{
		Core: conf.ConfigCore{
			Admins:    []string{"warden@example.com"},
			JWTSecret: "super secret key",
		},
		Store: conf.DBStore{
			Type: conf.DBStoreTypeMaria,
			MariaDB: conf.DBStoreMaria{
				Username: "db username",
				Password: "db password",
			},
		},
	}

	redacted := cfg.PrintRedacted()
	assert.Contains(t, redacted, "warden@example.com")
	assert.Contains(t, redacted, "db username")
	assert.NotContains(t, redacted, "db password")
	assert.NotContains(t, redacted, "super secret key")
}

func TestValidate(t *testing.T) {
	t.Parallel()
	cfg := conf.DefaultRMS()
	cfg.Store.MariaDB.Username = "wildlife"
	require.NoError(t, cfg.Validate())

	cfg.Store.Type = "not-a-store"
	require.Error(t, cfg.Validate())
	cfg.Store.Type = conf.DBStoreTypeNoOp
	require.NoError(t, cfg.Validate())
	// the noop store ignores MariaDB settings
	assert.Empty(t, cfg.Store.MariaDB.HostName)

	cfg.Core.JWTSecret = ""
	require.Error(t, cfg.Validate())
}
