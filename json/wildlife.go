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

package json

import "time"

type Animals []Animal

type Animal struct {
	ID             int32      `json:"id"`
	Name           string     `json:"name"`
	SpeciesID      string     `json:"species_id"`
	Status         string     `json:"status"`
	Count          int32      `json:"count"`
	HabitatZone    string     `json:"habitat_zone"`
	LastSurveyDate *time.Time `json:"last_survey_date,omitempty"`
	ImageURL       *string    `json:"image_url,omitzero"`
}

type StaffMembers []StaffMember

type StaffMember struct {
	ID              int32  `json:"id"`
	EmployeeID      string `json:"employee_id"`
	Name            string `json:"name"`
	Age             int32  `json:"age"`
	Gender          string `json:"gender"`
	AssignedZone    string `json:"assigned_zone"`
	ExperienceYears int32  `json:"experience_years"`
	Shift           string `json:"shift"`
	Role            string `json:"role"`
	Category        string `json:"category"`
}

type Zones []Zone

type Zone struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	AreaSqkm       float64 `json:"area_sqkm"`
	Climate        string  `json:"climate"`
	CameraTraps    int32   `json:"camera_traps"`
	AccessLevel    string  `json:"access_level"`
	PrimarySpecies string  `json:"primary_species"`
}

// ZoneDetail is a zone plus everything living and working in it.
type ZoneDetail struct {
	Zone    Zone         `json:"zone"`
	Animals Animals      `json:"animals"`
	Staff   StaffMembers `json:"staff"`
}

type Lookups []Lookup

// Lookup is an id/name pair for populating form selects.
type Lookup struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
}
