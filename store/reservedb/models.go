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

package reservedb

import (
	"database/sql"
	"time"
)

type Visitor struct {
	ID        int32
	Name      string
	AadharID  string
	Email     string
	Age       int32
	Gender    string
	Phone     string
	Address   string
	City      string
	Pin       string
	Interests sql.NullString
	Password  string
	Created   time.Time
	Updated   time.Time
}

type Admin struct {
	ID       int32
	Name     string
	Email    string
	Password string
	Role     string
}

type Zone struct {
	ID             string
	Name           string
	AreaSqkm       float64
	Climate        string
	CameraTraps    int32
	AccessLevel    string
	PrimarySpecies string
}

type Animal struct {
	ID             int32
	Name           string
	SpeciesID      string
	Status         string
	Count          int32
	HabitatZone    string
	LastSurveyDate sql.NullTime
	ImageUrl       sql.NullString
}

type StaffMember struct {
	ID              int32
	EmployeeID      string
	Name            string
	Age             int32
	Gender          string
	AssignedZone    string
	ExperienceYears int32
	Shift           string
	Role            string
	Category        string
}

type Ticket struct {
	ID             int32
	BookingID      string
	VisitorName    string
	Email          string
	Contact        string
	SafariDate     time.Time
	TimeSlot       string
	Zone           string
	PersonCount    int32
	Guide          bool
	Camera         bool
	Lunch          bool
	Transport      bool
	BaseAmount     float64
	ServicesAmount float64
	GstAmount      float64
	TotalAmount    float64
	Status         string
	Created        time.Time
}

type Feedback struct {
	ID             int32
	Name           string
	Email          string
	VisitDate      time.Time
	BookingID      string
	RatingOverall  int32
	RatingGuide    sql.NullInt32
	RatingFacility sql.NullInt32
	Sightings      sql.NullString
	LikedMost      sql.NullString
	Comments       sql.NullString
	Recommend      bool
	Submitted      time.Time
}

type MedicalCheckup struct {
	ID           int32
	Animal       int32
	CheckupDate  time.Time
	VetName      string
	WeightKg     sql.NullFloat64
	TemperatureC sql.NullFloat64
	Notes        sql.NullString
}

type MedicalTreatment struct {
	ID        int32
	Animal    int32
	Diagnosis string
	Treatment string
	StartDate time.Time
	EndDate   sql.NullTime
	VetName   string
}

type FeedingLog struct {
	ID         int32
	Animal     int32
	Staff      int32
	FedAt      time.Time
	FoodType   string
	QuantityKg float64
	Notes      sql.NullString
}
