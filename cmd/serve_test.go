//
// See the file COPYRIGHT for copyright information.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package cmd

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wildhaven/reserve-console-go/conf"
)

// TestMustInitConfig should be the only test in the whole repo that
// so freely plays around with environment variables, since parallel
// testing means other tests will notice the result of "Setenvs" that
// occur at the same time.
//
// All other tests should use a conf.RMSConfig struct instead, as that
// is unaffected by environment variables changing later.
func TestMustInitConfig(t *testing.T) {
	t.Setenv("RMS_HOSTNAME", "host")
	t.Setenv("RMS_PORT", "1234")
	t.Setenv("RMS_DEPLOYMENT", "Staging")
	t.Setenv("RMS_SESSION_TOKEN_LIFETIME", "1000")
	t.Setenv("RMS_DASHBOARD_CACHE_TTL", "3m")
	t.Setenv("RMS_CACHE_CONTROL_LONG", "7m")
	t.Setenv("RMS_LOG_LEVEL", "WARN")
	t.Setenv("RMS_ACTION_LOG_ENABLED", "false")
	t.Setenv("RMS_ADMINS", "alice@example.com,bob@example.com")
	t.Setenv("RMS_JWT_SECRET", "shhh")
	t.Setenv("RMS_MAX_REQUEST_BYTES", "20000")
	t.Setenv("RMS_DB_STORE_TYPE", "MariaDB")
	t.Setenv("RMS_DB_HOST_NAME", "db")
	t.Setenv("RMS_DB_HOST_PORT", "555")
	t.Setenv("RMS_DB_DATABASE", "wildlife")
	t.Setenv("RMS_DB_USER_NAME", "me")
	t.Setenv("RMS_DB_PASSWORD", "boo")

	cfg := mustInitConfig(".env")

	assert.Equal(t, "host", cfg.Core.Host)
	assert.Equal(t, int32(1234), cfg.Core.Port)
	assert.Equal(t, "staging", cfg.Core.Deployment)
	assert.Equal(t, 1000*time.Second, cfg.Core.SessionTokenLifetime)
	assert.Equal(t, 3*time.Minute, cfg.Core.DashboardCacheTTL)
	assert.Equal(t, 7*time.Minute, cfg.Core.CacheControlLong)
	assert.Equal(t, "WARN", cfg.Core.LogLevel)
	assert.False(t, cfg.Core.ActionLogEnabled)
	assert.Equal(t, []string{"alice@example.com", "bob@example.com"}, cfg.Core.Admins)
	assert.Equal(t, "shhh", cfg.Core.JWTSecret)
	assert.Equal(t, int64(20000), cfg.Core.MaxRequestBytes)
	assert.Equal(t, conf.DBStoreTypeMaria, cfg.Store.Type)
	assert.Equal(t, "db", cfg.Store.MariaDB.HostName)
	assert.Equal(t, int32(555), cfg.Store.MariaDB.HostPort)
	assert.Equal(t, "wildlife", cfg.Store.MariaDB.Database)
	assert.Equal(t, "me", cfg.Store.MariaDB.Username)
	assert.Equal(t, "boo", cfg.Store.MariaDB.Password)
}

func TestRunServer(t *testing.T) {
	t.Parallel()
	rmsCfg := conf.DefaultRMS()

	// this will have the server pick a random port
	rmsCfg.Core.Port = 0
	rmsCfg.Store.Type = conf.DBStoreTypeNoOp

	// Start the server, then cancel it.
	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	exitCode := runServerInternal(ctx, rmsCfg, true, make(chan string, 1))
	assert.Equal(t, 69, exitCode)
}
