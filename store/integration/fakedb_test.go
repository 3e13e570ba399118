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
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wildhaven/reserve-console-go/conf"
	"github.com/wildhaven/reserve-console-go/store"
)

func TestMigrateFakeDB(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	db, err := store.SqlDB(ctx,
		conf.DBStore{
			Type: conf.DBStoreTypeFake,
			Fake: conf.DefaultRMS().Store.Fake,
		},
		true,
	)
	require.NoError(t, err)
	defer shut(db)

	// Check that the schema migration ran
	r := db.QueryRowContext(ctx, "select VERSION from SCHEMA_INFO")
	var version int64
	require.NoError(t, r.Scan(&version))
	require.GreaterOrEqual(t, version, int64(2))

	// Check that the data seeding worked (from seed.sql)
	r = db.QueryRowContext(ctx, "select NAME from ZONE where ID = 'Z-N'")
	var name string
	require.NoError(t, r.Scan(&name))
	require.Equal(t, "Northern Grasslands", name)

	// The seeded feedback FK target exists too
	r = db.QueryRowContext(ctx, "select VISITOR_NAME from TICKET where BOOKING_ID = 'WH-SEED0001'")
	require.NoError(t, r.Scan(&name))
	require.Equal(t, "Kiran Rao", name)
}
