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
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/wildhaven/reserve-console-go/conf"
	"github.com/wildhaven/reserve-console-go/lib/conv"
)

// mustInitConfig reads in the .env file and ENV variables if set.
func mustInitConfig(envFileName string) *conf.RMSConfig {
	newCfg := conf.DefaultRMS()
	err := godotenv.Load(envFileName)

	if err != nil && !os.IsNotExist(err) {
		must(err)
	}
	if os.IsNotExist(err) {
		// if it's not the default
		if envFileName != ".env" {
			must(fmt.Errorf("envfile '%v' was set by the caller, but the file was not found", envFileName))
		}
		slog.Info("No .env file found. Carrying on with RMSConfig defaults and environment variable overrides")
	}

	if v, ok := lookupEnv("RMS_HOSTNAME"); ok {
		newCfg.Core.Host = v
	}
	if v, ok := lookupEnv("RMS_PORT"); ok {
		newCfg.Core.Port, err = conv.ParseInt32(v)
		must(err)
	}
	if v, ok := lookupEnv("RMS_DEPLOYMENT"); ok {
		newCfg.Core.Deployment = strings.ToLower(v)
	}
	if v, ok := lookupEnv("RMS_SESSION_TOKEN_LIFETIME"); ok {
		seconds, err := conv.ParseInt64(v)
		must(err)
		newCfg.Core.SessionTokenLifetime = time.Duration(seconds) * time.Second
	}
	if v, ok := lookupEnv("RMS_DASHBOARD_CACHE_TTL"); ok {
		// These values must be given with a time unit in the env variable,
		// e.g. "20s" or "5m10s". ParseDuration will fail here if the value
		// is just a nonzero number.
		dur, err := time.ParseDuration(v)
		must(err)
		newCfg.Core.DashboardCacheTTL = dur
	}
	if v, ok := lookupEnv("RMS_CACHE_CONTROL_LONG"); ok {
		dur, err := time.ParseDuration(v)
		must(err)
		newCfg.Core.CacheControlLong = dur
	}
	if v, ok := lookupEnv("RMS_LOG_LEVEL"); ok {
		newCfg.Core.LogLevel = v
	}
	if v, ok := lookupEnv("RMS_ACTION_LOG_ENABLED"); ok {
		newCfg.Core.ActionLogEnabled = strings.EqualFold(v, "true")
	}
	if v, ok := lookupEnv("RMS_ADMINS"); ok {
		newCfg.Core.Admins = strings.Split(v, ",")
	}
	if v, ok := lookupEnv("RMS_JWT_SECRET"); ok {
		newCfg.Core.JWTSecret = v
	}
	if v, ok := lookupEnv("RMS_MAX_REQUEST_BYTES"); ok {
		newCfg.Core.MaxRequestBytes, err = conv.ParseInt64(v)
		must(err)
	}
	if v, ok := lookupEnv("RMS_DB_STORE_TYPE"); ok {
		newCfg.Store.Type = conf.DBStoreType(strings.ToLower(v))
	}
	if v, ok := lookupEnv("RMS_DB_HOST_NAME"); ok {
		newCfg.Store.MariaDB.HostName = v
	}
	if v, ok := lookupEnv("RMS_DB_HOST_PORT"); ok {
		newCfg.Store.MariaDB.HostPort, err = conv.ParseInt32(v)
		must(err)
	}
	if v, ok := lookupEnv("RMS_DB_DATABASE"); ok {
		newCfg.Store.MariaDB.Database = v
	}
	if v, ok := lookupEnv("RMS_DB_USER_NAME"); ok {
		newCfg.Store.MariaDB.Username = v
	}
	if v, ok := lookupEnv("RMS_DB_PASSWORD"); ok {
		newCfg.Store.MariaDB.Password = v
	}

	return newCfg
}

func lookupEnv(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	// When doing `docker run --env-file .env`, Docker passes in vars without removing
	// the double-quotes, e.g. RMS_HOSTNAME="localhost" would actually get passed into
	// the program with the double-quotes in place.
	// https://github.com/docker/cli/issues/3630
	if strings.HasPrefix(v, "\"") && strings.HasSuffix(v, "\"") {
		v = v[1 : len(v)-1]
	}
	return v, true
}
