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

package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wildhaven/reserve-console-go/store/filter"
)

func f64(v float64) *float64 {
	return &v
}

func i32(v int32) *int32 {
	return &v
}

func TestAnimalsNoFilters(t *testing.T) {
	t.Parallel()
	sql, args := filter.Animals(filter.AnimalsParams{})
	assert.NotContains(t, sql, "where")
	assert.Contains(t, sql, "from ANIMAL")
	assert.Contains(t, sql, "order by NAME asc")
	assert.Empty(t, args)
}

func TestAnimalsAllFilters(t *testing.T) {
	t.Parallel()
	sql, args := filter.Animals(filter.AnimalsParams{
		Zone:      "Z-N",
		Status:    "endangered",
		SpeciesID: "PT-01",
		MinCount:  f64(5),
		MaxCount:  f64(100),
		Search:    "tiger",
		SortBy:    "count",
		SortDir:   "desc",
	})
	assert.Contains(t, sql, "HABITAT_ZONE = ?")
	assert.Contains(t, sql, "STATUS = ?")
	assert.Contains(t, sql, "SPECIES_ID = ?")
	assert.Contains(t, sql, "COUNT >= ?")
	assert.Contains(t, sql, "COUNT <= ?")
	assert.Contains(t, sql, "lower(NAME) like ?")
	assert.Contains(t, sql, "order by COUNT desc")
	// three search columns, so the term binds three times
	require.Len(t, args, 8)
	assert.Equal(t, "%tiger%", args[5])
	assert.Equal(t, "%tiger%", args[6])
	assert.Equal(t, "%tiger%", args[7])
}

func TestSortInjectionFallsBack(t *testing.T) {
	t.Parallel()
	sql, _ := filter.Animals(filter.AnimalsParams{
		SortBy:  "DROP TABLE ANIMAL",
		SortDir: "; delete from ZONE",
	})
	assert.Contains(t, sql, "order by NAME asc")
	assert.NotContains(t, sql, "DROP")
	assert.NotContains(t, sql, "delete")
}

func TestSearchTermIsParameterized(t *testing.T) {
	t.Parallel()
	sql, args := filter.Zones(filter.ZonesParams{Search: "'; drop table ZONE; --"})
	assert.NotContains(t, sql, "drop table")
	require.Len(t, args, 2)
	assert.Equal(t, "%'; drop table zone; --%", args[0])
}

func TestStaffRanges(t *testing.T) {
	t.Parallel()
	sql, args := filter.Staff(filter.StaffParams{
		MinExperience: f64(5),
		SortBy:        "experience",
		SortDir:       "DESC",
	})
	assert.Contains(t, sql, "EXPERIENCE_YEARS >= ?")
	assert.NotContains(t, sql, "EXPERIENCE_YEARS <= ?")
	assert.Contains(t, sql, "order by EXPERIENCE_YEARS desc")
	require.Len(t, args, 1)
	assert.InDelta(t, 5.0, args[0], 0.0001)
}

func TestMedicalRecordQueries(t *testing.T) {
	t.Parallel()
	sql, args := filter.Checkups(filter.CheckupsParams{AnimalID: i32(7)})
	assert.Contains(t, sql, "ANIMAL = ?")
	assert.Contains(t, sql, "order by CHECKUP_DATE asc")
	require.Len(t, args, 1)
	assert.Equal(t, int32(7), args[0])

	sql, _ = filter.Treatments(filter.TreatmentsParams{SortBy: "end", SortDir: "desc"})
	assert.Contains(t, sql, "order by END_DATE desc")

	sql, args = filter.FeedingLogs(filter.FeedingLogsParams{StaffID: i32(2), FoodType: "Fish"})
	assert.Contains(t, sql, "STAFF = ?")
	assert.Contains(t, sql, "FOOD_TYPE = ?")
	require.Len(t, args, 2)
}
