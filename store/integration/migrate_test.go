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

package integration_test

import (
	"context"
	"crypto/rand"
	"database/sql"
	_ "embed"
	"fmt"
	"io"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/wildhaven/reserve-console-go/conf"
	wildrand "github.com/wildhaven/reserve-console-go/lib/rand"
	"github.com/wildhaven/reserve-console-go/lib/testctr"
	"github.com/wildhaven/reserve-console-go/store"
	"golang.org/x/sync/errgroup"
)

//go:embed 01.sql
var schema01 string

// TestMigrateSameAsCurrentSchema checks the migration path for an old
// version of a reserve database.
//
// It brings up two MariaDB databases, one from schema version 1 (in this
// dir, as 01.sql), and one empty. Both get migrated to the current schema
// version, the first stepping through the num-from-num.sql files and the
// second straight from current.sql. At the end, we expect both databases
// to have identical sets of tables, and for each table, the same
// "CREATE TABLE" SQL. If they differ, presumably a new migration should be
// created that gets them back in sync.
func TestMigrateSameAsCurrentSchema(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	// NonCryptoText makes nicer names for throwaway databases. The
	// password still comes from a CSPRNG.
	database := wildrand.NonCryptoText()
	username := wildrand.NonCryptoText()
	password := rand.Text()

	// Bring up two DB containers in parallel
	var db1, db2 *sql.DB
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		_, db1 = newUnmigratedDB(t, groupCtx, database, username, password)
		return nil
	})
	group.Go(func() error {
		_, db2 = newUnmigratedDB(t, groupCtx, database, username, password)
		return nil
	})
	require.NoError(t, group.Wait())
	defer shut(db1)
	defer shut(db2)

	// DB1: start with schema version 1, then migrate to the latest
	err := runScript(ctx, db1, schema01)
	require.NoError(t, err)
	err = store.MigrateDB(ctx, db1)
	require.NoError(t, err)

	// DB2: migrate straight up to the current schema version
	err = store.MigrateDB(ctx, db2)
	require.NoError(t, err)
	// Run MigrateDB again, which is a no-op
	err = store.MigrateDB(ctx, db2)
	require.NoError(t, err)

	// The two databases should have the same set of tables
	var dbTables [2][]string

	for i, db := range []*sql.DB{db1, db2} {
		rows, err := db.QueryContext(ctx, `show tables`)
		require.NoError(t, err)
		for rows.Next() {
			var tableName string
			require.NoError(t, rows.Scan(&tableName))
			dbTables[i] = append(dbTables[i], tableName)
		}
		require.NoError(t, rows.Err())
		slices.Sort(dbTables[i])
		shut(rows)
	}
	require.Equal(t, dbTables[0], dbTables[1])

	// for each table, check that the two databases have the same
	// "CREATE TABLE" statement.
	for _, tableName := range dbTables[0] {
		row1 := db1.QueryRowContext(ctx, `show create table `+tableName)
		var tableName string
		var createTable1 string
		require.NoError(t, row1.Scan(&tableName, &createTable1))

		row2 := db2.QueryRowContext(ctx, `show create table `+tableName)
		var createTable2 string
		require.NoError(t, row2.Scan(&tableName, &createTable2))

		assert.Equal(t, createTable1, createTable2)
	}
}

func newUnmigratedDB(t *testing.T, ctx context.Context, database, username, password string) (testcontainers.Container, *sql.DB) {
	t.Helper()

	ctr, cleanup, dbHostPort, err := testctr.MariaDBContainer(ctx, database, username, password)
	t.Cleanup(cleanup)
	require.NoError(t, err)

	db, err := store.SqlDB(ctx,
		conf.DBStore{
			Type: conf.DBStoreTypeMaria,
			MariaDB: conf.DBStoreMaria{
				HostName: "",
				HostPort: dbHostPort,
				Database: database,
				Username: username,
				Password: password,
			},
		},
		false,
	)
	require.NoError(t, err)
	return ctr, db
}

func runScript(ctx context.Context, db *sql.DB, script string) error {
	_, err := db.ExecContext(ctx, script)
	if err != nil {
		return fmt.Errorf("[ExecContext]: %w", err)
	}
	return nil
}

func shut(c io.Closer) {
	_ = c.Close()
}
