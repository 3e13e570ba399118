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

package filter

// AnimalsParams are the optional filters for the animal listing.
type AnimalsParams struct {
	Zone      string
	Status    string
	SpeciesID string
	MinCount  *float64
	MaxCount  *float64
	Search    string
	SortBy    string
	SortDir   string
}

var animalSortColumns = map[string]string{
	"name":        "NAME",
	"status":      "STATUS",
	"count":       "COUNT",
	"zone":        "HABITAT_ZONE",
	"last_survey": "LAST_SURVEY_DATE",
}

func Animals(p AnimalsParams) (string, []any) {
	q := newQuery("ANIMAL",
		"ID", "NAME", "SPECIES_ID", "STATUS", "COUNT", "HABITAT_ZONE", "LAST_SURVEY_DATE", "IMAGE_URL")
	q.Equal("HABITAT_ZONE", p.Zone)
	q.Equal("STATUS", p.Status)
	q.Equal("SPECIES_ID", p.SpeciesID)
	q.Min("COUNT", p.MinCount)
	q.Max("COUNT", p.MaxCount)
	q.Search(p.Search, "NAME", "SPECIES_ID", "STATUS")
	q.Sort(p.SortBy, p.SortDir, animalSortColumns, "NAME")
	return q.SQL()
}

// StaffParams are the optional filters for the staff listing.
type StaffParams struct {
	Zone          string
	Shift         string
	Category      string
	Gender        string
	MinExperience *float64
	MaxExperience *float64
	Search        string
	SortBy        string
	SortDir       string
}

var staffSortColumns = map[string]string{
	"name":       "NAME",
	"age":        "AGE",
	"zone":       "ASSIGNED_ZONE",
	"experience": "EXPERIENCE_YEARS",
	"role":       "ROLE",
}

func Staff(p StaffParams) (string, []any) {
	q := newQuery("STAFF",
		"ID", "EMPLOYEE_ID", "NAME", "AGE", "GENDER", "ASSIGNED_ZONE", "EXPERIENCE_YEARS", "SHIFT", "ROLE", "CATEGORY")
	q.Equal("ASSIGNED_ZONE", p.Zone)
	q.Equal("SHIFT", p.Shift)
	q.Equal("CATEGORY", p.Category)
	q.Equal("GENDER", p.Gender)
	q.Min("EXPERIENCE_YEARS", p.MinExperience)
	q.Max("EXPERIENCE_YEARS", p.MaxExperience)
	q.Search(p.Search, "NAME", "EMPLOYEE_ID", "ROLE")
	q.Sort(p.SortBy, p.SortDir, staffSortColumns, "NAME")
	return q.SQL()
}

// ZonesParams are the optional filters for the zone listing.
type ZonesParams struct {
	Climate     string
	AccessLevel string
	MinArea     *float64
	MaxArea     *float64
	Search      string
	SortBy      string
	SortDir     string
}

var zoneSortColumns = map[string]string{
	"id":           "ID",
	"name":         "NAME",
	"area":         "AREA_SQKM",
	"camera_traps": "CAMERA_TRAPS",
}

func Zones(p ZonesParams) (string, []any) {
	q := newQuery("ZONE",
		"ID", "NAME", "AREA_SQKM", "CLIMATE", "CAMERA_TRAPS", "ACCESS_LEVEL", "PRIMARY_SPECIES")
	q.Equal("CLIMATE", p.Climate)
	q.Equal("ACCESS_LEVEL", p.AccessLevel)
	q.Min("AREA_SQKM", p.MinArea)
	q.Max("AREA_SQKM", p.MaxArea)
	q.Search(p.Search, "NAME", "PRIMARY_SPECIES")
	q.Sort(p.SortBy, p.SortDir, zoneSortColumns, "ID")
	return q.SQL()
}

// CheckupsParams are the optional filters for medical checkup records.
type CheckupsParams struct {
	AnimalID *int32
	VetName  string
	Search   string
	SortBy   string
	SortDir  string
}

var checkupSortColumns = map[string]string{
	"date":   "CHECKUP_DATE",
	"animal": "ANIMAL",
	"vet":    "VET_NAME",
	"weight": "WEIGHT_KG",
}

func Checkups(p CheckupsParams) (string, []any) {
	q := newQuery("MEDICAL_CHECKUP",
		"ID", "ANIMAL", "CHECKUP_DATE", "VET_NAME", "WEIGHT_KG", "TEMPERATURE_C", "NOTES")
	q.EqualInt("ANIMAL", p.AnimalID)
	q.Equal("VET_NAME", p.VetName)
	q.Search(p.Search, "VET_NAME", "NOTES")
	q.Sort(p.SortBy, p.SortDir, checkupSortColumns, "CHECKUP_DATE")
	return q.SQL()
}

// TreatmentsParams are the optional filters for medical treatment records.
type TreatmentsParams struct {
	AnimalID *int32
	VetName  string
	Search   string
	SortBy   string
	SortDir  string
}

var treatmentSortColumns = map[string]string{
	"start":  "START_DATE",
	"end":    "END_DATE",
	"animal": "ANIMAL",
	"vet":    "VET_NAME",
}

func Treatments(p TreatmentsParams) (string, []any) {
	q := newQuery("MEDICAL_TREATMENT",
		"ID", "ANIMAL", "DIAGNOSIS", "TREATMENT", "START_DATE", "END_DATE", "VET_NAME")
	q.EqualInt("ANIMAL", p.AnimalID)
	q.Equal("VET_NAME", p.VetName)
	q.Search(p.Search, "DIAGNOSIS", "TREATMENT", "VET_NAME")
	q.Sort(p.SortBy, p.SortDir, treatmentSortColumns, "START_DATE")
	return q.SQL()
}

// FeedingLogsParams are the optional filters for feeding log records.
type FeedingLogsParams struct {
	AnimalID *int32
	StaffID  *int32
	FoodType string
	Search   string
	SortBy   string
	SortDir  string
}

var feedingSortColumns = map[string]string{
	"fed_at":   "FED_AT",
	"animal":   "ANIMAL",
	"staff":    "STAFF",
	"quantity": "QUANTITY_KG",
}

func FeedingLogs(p FeedingLogsParams) (string, []any) {
	q := newQuery("FEEDING_LOG",
		"ID", "ANIMAL", "STAFF", "FED_AT", "FOOD_TYPE", "QUANTITY_KG", "NOTES")
	q.EqualInt("ANIMAL", p.AnimalID)
	q.EqualInt("STAFF", p.StaffID)
	q.Equal("FOOD_TYPE", p.FoodType)
	q.Search(p.Search, "FOOD_TYPE", "NOTES")
	q.Sort(p.SortBy, p.SortDir, feedingSortColumns, "FED_AT")
	return q.SQL()
}
