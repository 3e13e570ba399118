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

package conf

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/wildhaven/reserve-console-go/lib/redact"
)

// DefaultRMS is the base configuration used for the reserve management
// server. It gets overridden by values in a .env file, then the result of
// that gets overridden by RMS_* environment variables.
func DefaultRMS() *RMSConfig {
	return &RMSConfig{
		Core: ConfigCore{
			Host:                 "localhost",
			Port:                 3000,
			JWTSecret:            rand.Text(),
			Deployment:           "dev",
			LogLevel:             "INFO",
			SessionTokenLifetime: 24 * time.Hour,
			ActionLogEnabled:     true,
			DashboardCacheTTL:    1 * time.Minute,
			CacheControlLong:     2 * time.Hour,
			MaxRequestBytes:      1 << 20,
		},
		Store: DBStore{
			Type: DBStoreTypeMaria,
			MariaDB: DBStoreMaria{
				HostName: "localhost",
				HostPort: 3306,
				Database: "wildlife",
			},
			Fake: DBStoreMaria{
				HostName: "localhost",
				// HostPort can be left as 0 for automatic port selection on startup
				HostPort: 0,
				Database: "wildlife-db",
				Username: "wildlife-db-user",
				Password: rand.Text(),
			},
		},
	}
}

// Validate should be called after an RMSConfig has been fully configured.
func (c *RMSConfig) Validate() error {
	var errs []error
	errs = append(errs, c.Store.Type.Validate())
	if c.Store.Type == DBStoreTypeNoOp {
		c.Store.MariaDB = DBStoreMaria{}
	}
	if c.Store.Type == DBStoreTypeMaria {
		m := c.Store.MariaDB
		if m.HostName == "" || m.Database == "" || m.Username == "" {
			errs = append(errs, errors.New("mariadb store requires a hostname, database, and username"))
		}
	}
	errs = append(errs, DeploymentType(c.Core.Deployment).Validate())
	if c.Core.JWTSecret == "" {
		errs = append(errs, errors.New("a JWT secret is required"))
	}
	if c.Core.SessionTokenLifetime <= 0 {
		errs = append(errs, errors.New("session token lifetime must be positive"))
	}
	return errors.Join(errs...)
}

func (c *RMSConfig) PrintRedacted() string {
	return c.String()
}

func (c *RMSConfig) String() string {
	b, err := redact.ToBytes(c)
	if err != nil {
		return fmt.Sprintf("failed to print config: %v", err)
	}
	return string(b)
}

type RMSConfig struct {
	Core  ConfigCore
	Store DBStore
}

type DeploymentType string

type DBStoreType string

const (
	DeploymentTypeDev        DeploymentType = "dev"
	DeploymentTypeStaging    DeploymentType = "staging"
	DeploymentTypeProduction DeploymentType = "production"
	DBStoreTypeMaria         DBStoreType    = "mariadb"
	DBStoreTypeNoOp          DBStoreType    = "noop"
	DBStoreTypeFake          DBStoreType    = "fake"
)

func (d DBStoreType) Validate() error {
	switch d {
	case DBStoreTypeMaria, DBStoreTypeNoOp, DBStoreTypeFake:
		return nil
	default:
		return fmt.Errorf("unknown DB store type %v", d)
	}
}

func (d DeploymentType) Validate() error {
	switch d {
	case DeploymentTypeDev, DeploymentTypeStaging, DeploymentTypeProduction:
		return nil
	default:
		return fmt.Errorf("unknown deployment type %v", d)
	}
}

type ConfigCore struct {
	Host string
	Port int32

	// SessionTokenLifetime is how long a login session stays valid. After
	// this long, the visitor has to log in again.
	SessionTokenLifetime time.Duration

	// Admins lists emails of accounts that get the admin role on login.
	Admins []string

	JWTSecret  string `redact:"true"`
	Deployment string

	// DashboardCacheTTL is how long the server-side cache of dashboard
	// aggregates stays valid. Set this to 0 to recompute on every request.
	DashboardCacheTTL time.Duration

	// CacheControlLong is the duration we set in static file responses'
	// Cache-Control headers. These resources won't change unless the server
	// is recompiled.
	CacheControlLong time.Duration

	// LogLevel should be one of DEBUG, INFO, WARN, or ERROR
	LogLevel string

	// ActionLogEnabled turns on writing a row to the ACTION_LOG table for
	// each mutating request the server handles.
	ActionLogEnabled bool

	// MaxRequestBytes is a hard limit on request sizes that will be permitted by the API server.
	// This serve as a backstop against accidentally or maliciously large requests.
	MaxRequestBytes int64
}

type DBStore struct {
	Type    DBStoreType
	MariaDB DBStoreMaria
	Fake    DBStoreMaria
}

type DBStoreMaria struct {
	HostName string
	HostPort int32
	Database string
	Username string
	Password string `redact:"true"`
}
