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
	"context"
	"database/sql"
	"time"
)

const schemaVersion = `-- name: SchemaVersion :one
select VERSION from SCHEMA_INFO
`

func (q *Queries) SchemaVersion(ctx context.Context, db DBTX) (int16, error) {
	row := db.QueryRowContext(ctx, schemaVersion)
	var version int16
	err := row.Scan(&version)
	return version, err
}

const addVisitor = `-- name: AddVisitor :execlastid
insert into VISITOR (
    NAME, AADHAR_ID, EMAIL, AGE, GENDER, PHONE, ADDRESS, CITY, PIN, INTERESTS, PASSWORD
)
values (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

type AddVisitorParams struct {
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
}

func (q *Queries) AddVisitor(ctx context.Context, db DBTX, arg AddVisitorParams) (int64, error) {
	result, err := db.ExecContext(ctx, addVisitor,
		arg.Name,
		arg.AadharID,
		arg.Email,
		arg.Age,
		arg.Gender,
		arg.Phone,
		arg.Address,
		arg.City,
		arg.Pin,
		arg.Interests,
		arg.Password,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

const visitorByEmail = `-- name: VisitorByEmail :one
select ID, NAME, AADHAR_ID, EMAIL, AGE, GENDER, PHONE, ADDRESS, CITY, PIN, INTERESTS, PASSWORD, CREATED, UPDATED
from VISITOR
where EMAIL = ?
`

func (q *Queries) VisitorByEmail(ctx context.Context, db DBTX, email string) (Visitor, error) {
	row := db.QueryRowContext(ctx, visitorByEmail, email)
	var i Visitor
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.AadharID,
		&i.Email,
		&i.Age,
		&i.Gender,
		&i.Phone,
		&i.Address,
		&i.City,
		&i.Pin,
		&i.Interests,
		&i.Password,
		&i.Created,
		&i.Updated,
	)
	return i, err
}

const visitorByID = `-- name: VisitorByID :one
select ID, NAME, AADHAR_ID, EMAIL, AGE, GENDER, PHONE, ADDRESS, CITY, PIN, INTERESTS, PASSWORD, CREATED, UPDATED
from VISITOR
where ID = ?
`

func (q *Queries) VisitorByID(ctx context.Context, db DBTX, id int32) (Visitor, error) {
	row := db.QueryRowContext(ctx, visitorByID, id)
	var i Visitor
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.AadharID,
		&i.Email,
		&i.Age,
		&i.Gender,
		&i.Phone,
		&i.Address,
		&i.City,
		&i.Pin,
		&i.Interests,
		&i.Password,
		&i.Created,
		&i.Updated,
	)
	return i, err
}

const visitors = `-- name: Visitors :many
select ID, NAME, AADHAR_ID, EMAIL, AGE, GENDER, PHONE, ADDRESS, CITY, PIN, INTERESTS, PASSWORD, CREATED, UPDATED
from VISITOR
order by CREATED desc
`

func (q *Queries) Visitors(ctx context.Context, db DBTX) ([]Visitor, error) {
	rows, err := db.QueryContext(ctx, visitors)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Visitor
	for rows.Next() {
		var i Visitor
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.AadharID,
			&i.Email,
			&i.Age,
			&i.Gender,
			&i.Phone,
			&i.Address,
			&i.City,
			&i.Pin,
			&i.Interests,
			&i.Password,
			&i.Created,
			&i.Updated,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countVisitors = `-- name: CountVisitors :one
select count(*) from VISITOR
`

func (q *Queries) CountVisitors(ctx context.Context, db DBTX) (int64, error) {
	row := db.QueryRowContext(ctx, countVisitors)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const adminByEmail = `-- name: AdminByEmail :one
select ID, NAME, EMAIL, PASSWORD, ROLE
from ADMIN
where EMAIL = ?
`

func (q *Queries) AdminByEmail(ctx context.Context, db DBTX, email string) (Admin, error) {
	row := db.QueryRowContext(ctx, adminByEmail, email)
	var i Admin
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Email,
		&i.Password,
		&i.Role,
	)
	return i, err
}

const addAdmin = `-- name: AddAdmin :execlastid
insert into ADMIN (NAME, EMAIL, PASSWORD, ROLE)
values (?, ?, ?, ?)
`

type AddAdminParams struct {
	Name     string
	Email    string
	Password string
	Role     string
}

func (q *Queries) AddAdmin(ctx context.Context, db DBTX, arg AddAdminParams) (int64, error) {
	result, err := db.ExecContext(ctx, addAdmin,
		arg.Name,
		arg.Email,
		arg.Password,
		arg.Role,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

const addZone = `-- name: AddZone :exec
insert into ZONE (ID, NAME, AREA_SQKM, CLIMATE, CAMERA_TRAPS, ACCESS_LEVEL, PRIMARY_SPECIES)
values (?, ?, ?, ?, ?, ?, ?)
`

type AddZoneParams struct {
	ID             string
	Name           string
	AreaSqkm       float64
	Climate        string
	CameraTraps    int32
	AccessLevel    string
	PrimarySpecies string
}

func (q *Queries) AddZone(ctx context.Context, db DBTX, arg AddZoneParams) error {
	_, err := db.ExecContext(ctx, addZone,
		arg.ID,
		arg.Name,
		arg.AreaSqkm,
		arg.Climate,
		arg.CameraTraps,
		arg.AccessLevel,
		arg.PrimarySpecies,
	)
	return err
}

const zones = `-- name: Zones :many
select ID, NAME, AREA_SQKM, CLIMATE, CAMERA_TRAPS, ACCESS_LEVEL, PRIMARY_SPECIES
from ZONE
order by ID
`

func (q *Queries) Zones(ctx context.Context, db DBTX) ([]Zone, error) {
	rows, err := db.QueryContext(ctx, zones)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Zone
	for rows.Next() {
		var i Zone
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.AreaSqkm,
			&i.Climate,
			&i.CameraTraps,
			&i.AccessLevel,
			&i.PrimarySpecies,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const zone = `-- name: Zone :one
select ID, NAME, AREA_SQKM, CLIMATE, CAMERA_TRAPS, ACCESS_LEVEL, PRIMARY_SPECIES
from ZONE
where ID = ?
`

func (q *Queries) Zone(ctx context.Context, db DBTX, id string) (Zone, error) {
	row := db.QueryRowContext(ctx, zone, id)
	var i Zone
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.AreaSqkm,
		&i.Climate,
		&i.CameraTraps,
		&i.AccessLevel,
		&i.PrimarySpecies,
	)
	return i, err
}

const addAnimal = `-- name: AddAnimal :execlastid
insert into ANIMAL (NAME, SPECIES_ID, STATUS, COUNT, HABITAT_ZONE, LAST_SURVEY_DATE, IMAGE_URL)
values (?, ?, ?, ?, ?, ?, ?)
`

type AddAnimalParams struct {
	Name           string
	SpeciesID      string
	Status         string
	Count          int32
	HabitatZone    string
	LastSurveyDate sql.NullTime
	ImageUrl       sql.NullString
}

func (q *Queries) AddAnimal(ctx context.Context, db DBTX, arg AddAnimalParams) (int64, error) {
	result, err := db.ExecContext(ctx, addAnimal,
		arg.Name,
		arg.SpeciesID,
		arg.Status,
		arg.Count,
		arg.HabitatZone,
		arg.LastSurveyDate,
		arg.ImageUrl,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

const animalByID = `-- name: AnimalByID :one
select ID, NAME, SPECIES_ID, STATUS, COUNT, HABITAT_ZONE, LAST_SURVEY_DATE, IMAGE_URL
from ANIMAL
where ID = ?
`

func (q *Queries) AnimalByID(ctx context.Context, db DBTX, id int32) (Animal, error) {
	row := db.QueryRowContext(ctx, animalByID, id)
	var i Animal
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.SpeciesID,
		&i.Status,
		&i.Count,
		&i.HabitatZone,
		&i.LastSurveyDate,
		&i.ImageUrl,
	)
	return i, err
}

const animalByName = `-- name: AnimalByName :one
select ID, NAME, SPECIES_ID, STATUS, COUNT, HABITAT_ZONE, LAST_SURVEY_DATE, IMAGE_URL
from ANIMAL
where NAME = ?
`

func (q *Queries) AnimalByName(ctx context.Context, db DBTX, name string) (Animal, error) {
	row := db.QueryRowContext(ctx, animalByName, name)
	var i Animal
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.SpeciesID,
		&i.Status,
		&i.Count,
		&i.HabitatZone,
		&i.LastSurveyDate,
		&i.ImageUrl,
	)
	return i, err
}

const animalsByZone = `-- name: AnimalsByZone :many
select ID, NAME, SPECIES_ID, STATUS, COUNT, HABITAT_ZONE, LAST_SURVEY_DATE, IMAGE_URL
from ANIMAL
where HABITAT_ZONE = ?
order by NAME
`

func (q *Queries) AnimalsByZone(ctx context.Context, db DBTX, zone string) ([]Animal, error) {
	rows, err := db.QueryContext(ctx, animalsByZone, zone)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Animal
	for rows.Next() {
		var i Animal
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.SpeciesID,
			&i.Status,
			&i.Count,
			&i.HabitatZone,
			&i.LastSurveyDate,
			&i.ImageUrl,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const animalLookup = `-- name: AnimalLookup :many
select ID, NAME
from ANIMAL
order by NAME
`

type AnimalLookupRow struct {
	ID   int32
	Name string
}

func (q *Queries) AnimalLookup(ctx context.Context, db DBTX) ([]AnimalLookupRow, error) {
	rows, err := db.QueryContext(ctx, animalLookup)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []AnimalLookupRow
	for rows.Next() {
		var i AnimalLookupRow
		if err := rows.Scan(&i.ID, &i.Name); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const touchAnimalSurvey = `-- name: TouchAnimalSurvey :exec
update ANIMAL
set STATUS = ?, COUNT = ?, LAST_SURVEY_DATE = ?
where ID = ?
`

type TouchAnimalSurveyParams struct {
	Status         string
	Count          int32
	LastSurveyDate sql.NullTime
	ID             int32
}

func (q *Queries) TouchAnimalSurvey(ctx context.Context, db DBTX, arg TouchAnimalSurveyParams) error {
	_, err := db.ExecContext(ctx, touchAnimalSurvey,
		arg.Status,
		arg.Count,
		arg.LastSurveyDate,
		arg.ID,
	)
	return err
}

const addStaff = `-- name: AddStaff :execlastid
insert into STAFF (EMPLOYEE_ID, NAME, AGE, GENDER, ASSIGNED_ZONE, EXPERIENCE_YEARS, SHIFT, ROLE, CATEGORY)
values (?, ?, ?, ?, ?, ?, ?, ?, ?)
`

type AddStaffParams struct {
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

func (q *Queries) AddStaff(ctx context.Context, db DBTX, arg AddStaffParams) (int64, error) {
	result, err := db.ExecContext(ctx, addStaff,
		arg.EmployeeID,
		arg.Name,
		arg.Age,
		arg.Gender,
		arg.AssignedZone,
		arg.ExperienceYears,
		arg.Shift,
		arg.Role,
		arg.Category,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

const staffByZone = `-- name: StaffByZone :many
select ID, EMPLOYEE_ID, NAME, AGE, GENDER, ASSIGNED_ZONE, EXPERIENCE_YEARS, SHIFT, ROLE, CATEGORY
from STAFF
where ASSIGNED_ZONE = ?
order by NAME
`

func (q *Queries) StaffByZone(ctx context.Context, db DBTX, zone string) ([]StaffMember, error) {
	rows, err := db.QueryContext(ctx, staffByZone, zone)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []StaffMember
	for rows.Next() {
		var i StaffMember
		if err := rows.Scan(
			&i.ID,
			&i.EmployeeID,
			&i.Name,
			&i.Age,
			&i.Gender,
			&i.AssignedZone,
			&i.ExperienceYears,
			&i.Shift,
			&i.Role,
			&i.Category,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const staffLookup = `-- name: StaffLookup :many
select ID, NAME
from STAFF
order by NAME
`

type StaffLookupRow struct {
	ID   int32
	Name string
}

func (q *Queries) StaffLookup(ctx context.Context, db DBTX) ([]StaffLookupRow, error) {
	rows, err := db.QueryContext(ctx, staffLookup)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []StaffLookupRow
	for rows.Next() {
		var i StaffLookupRow
		if err := rows.Scan(&i.ID, &i.Name); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const addTicket = `-- name: AddTicket :execlastid
insert into TICKET (
    BOOKING_ID, VISITOR_NAME, EMAIL, CONTACT, SAFARI_DATE, TIME_SLOT, ZONE, PERSON_COUNT,
    GUIDE, CAMERA, LUNCH, TRANSPORT, BASE_AMOUNT, SERVICES_AMOUNT, GST_AMOUNT, TOTAL_AMOUNT, STATUS
)
values (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

type AddTicketParams struct {
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
}

func (q *Queries) AddTicket(ctx context.Context, db DBTX, arg AddTicketParams) (int64, error) {
	result, err := db.ExecContext(ctx, addTicket,
		arg.BookingID,
		arg.VisitorName,
		arg.Email,
		arg.Contact,
		arg.SafariDate,
		arg.TimeSlot,
		arg.Zone,
		arg.PersonCount,
		arg.Guide,
		arg.Camera,
		arg.Lunch,
		arg.Transport,
		arg.BaseAmount,
		arg.ServicesAmount,
		arg.GstAmount,
		arg.TotalAmount,
		arg.Status,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

const ticketsByEmail = `-- name: TicketsByEmail :many
select ID, BOOKING_ID, VISITOR_NAME, EMAIL, CONTACT, SAFARI_DATE, TIME_SLOT, ZONE, PERSON_COUNT,
       GUIDE, CAMERA, LUNCH, TRANSPORT, BASE_AMOUNT, SERVICES_AMOUNT, GST_AMOUNT, TOTAL_AMOUNT, STATUS, CREATED
from TICKET
where EMAIL = ?
order by CREATED desc
`

func (q *Queries) TicketsByEmail(ctx context.Context, db DBTX, email string) ([]Ticket, error) {
	rows, err := db.QueryContext(ctx, ticketsByEmail, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Ticket
	for rows.Next() {
		var i Ticket
		if err := rows.Scan(
			&i.ID,
			&i.BookingID,
			&i.VisitorName,
			&i.Email,
			&i.Contact,
			&i.SafariDate,
			&i.TimeSlot,
			&i.Zone,
			&i.PersonCount,
			&i.Guide,
			&i.Camera,
			&i.Lunch,
			&i.Transport,
			&i.BaseAmount,
			&i.ServicesAmount,
			&i.GstAmount,
			&i.TotalAmount,
			&i.Status,
			&i.Created,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const ticketByBookingID = `-- name: TicketByBookingID :one
select ID, BOOKING_ID, VISITOR_NAME, EMAIL, CONTACT, SAFARI_DATE, TIME_SLOT, ZONE, PERSON_COUNT,
       GUIDE, CAMERA, LUNCH, TRANSPORT, BASE_AMOUNT, SERVICES_AMOUNT, GST_AMOUNT, TOTAL_AMOUNT, STATUS, CREATED
from TICKET
where BOOKING_ID = ?
`

func (q *Queries) TicketByBookingID(ctx context.Context, db DBTX, bookingID string) (Ticket, error) {
	row := db.QueryRowContext(ctx, ticketByBookingID, bookingID)
	var i Ticket
	err := row.Scan(
		&i.ID,
		&i.BookingID,
		&i.VisitorName,
		&i.Email,
		&i.Contact,
		&i.SafariDate,
		&i.TimeSlot,
		&i.Zone,
		&i.PersonCount,
		&i.Guide,
		&i.Camera,
		&i.Lunch,
		&i.Transport,
		&i.BaseAmount,
		&i.ServicesAmount,
		&i.GstAmount,
		&i.TotalAmount,
		&i.Status,
		&i.Created,
	)
	return i, err
}

const bookingStatsSince = `-- name: BookingStatsSince :one
select count(*)                       as BOOKINGS,
       coalesce(sum(PERSON_COUNT), 0) as VISITORS,
       coalesce(sum(TOTAL_AMOUNT), 0) as REVENUE
from TICKET
where CREATED >= ?
`

type BookingStatsRow struct {
	Bookings int64
	Visitors int64
	Revenue  float64
}

func (q *Queries) BookingStatsSince(ctx context.Context, db DBTX, since time.Time) (BookingStatsRow, error) {
	row := db.QueryRowContext(ctx, bookingStatsSince, since)
	var i BookingStatsRow
	err := row.Scan(&i.Bookings, &i.Visitors, &i.Revenue)
	return i, err
}

const addFeedback = `-- name: AddFeedback :execlastid
insert into FEEDBACK (
    NAME, EMAIL, VISIT_DATE, BOOKING_ID, RATING_OVERALL, RATING_GUIDE, RATING_FACILITY,
    SIGHTINGS, LIKED_MOST, COMMENTS, RECOMMEND
)
values (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

type AddFeedbackParams struct {
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
}

func (q *Queries) AddFeedback(ctx context.Context, db DBTX, arg AddFeedbackParams) (int64, error) {
	result, err := db.ExecContext(ctx, addFeedback,
		arg.Name,
		arg.Email,
		arg.VisitDate,
		arg.BookingID,
		arg.RatingOverall,
		arg.RatingGuide,
		arg.RatingFacility,
		arg.Sightings,
		arg.LikedMost,
		arg.Comments,
		arg.Recommend,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

const allFeedback = `-- name: AllFeedback :many
select ID, NAME, EMAIL, VISIT_DATE, BOOKING_ID, RATING_OVERALL, RATING_GUIDE, RATING_FACILITY,
       SIGHTINGS, LIKED_MOST, COMMENTS, RECOMMEND, SUBMITTED
from FEEDBACK
order by SUBMITTED desc
`

func (q *Queries) AllFeedback(ctx context.Context, db DBTX) ([]Feedback, error) {
	rows, err := db.QueryContext(ctx, allFeedback)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Feedback
	for rows.Next() {
		var i Feedback
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Email,
			&i.VisitDate,
			&i.BookingID,
			&i.RatingOverall,
			&i.RatingGuide,
			&i.RatingFacility,
			&i.Sightings,
			&i.LikedMost,
			&i.Comments,
			&i.Recommend,
			&i.Submitted,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const addMedicalCheckup = `-- name: AddMedicalCheckup :execlastid
insert into MEDICAL_CHECKUP (ANIMAL, CHECKUP_DATE, VET_NAME, WEIGHT_KG, TEMPERATURE_C, NOTES)
values (?, ?, ?, ?, ?, ?)
`

type AddMedicalCheckupParams struct {
	Animal       int32
	CheckupDate  time.Time
	VetName      string
	WeightKg     sql.NullFloat64
	TemperatureC sql.NullFloat64
	Notes        sql.NullString
}

func (q *Queries) AddMedicalCheckup(ctx context.Context, db DBTX, arg AddMedicalCheckupParams) (int64, error) {
	result, err := db.ExecContext(ctx, addMedicalCheckup,
		arg.Animal,
		arg.CheckupDate,
		arg.VetName,
		arg.WeightKg,
		arg.TemperatureC,
		arg.Notes,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

const addMedicalTreatment = `-- name: AddMedicalTreatment :execlastid
insert into MEDICAL_TREATMENT (ANIMAL, DIAGNOSIS, TREATMENT, START_DATE, END_DATE, VET_NAME)
values (?, ?, ?, ?, ?, ?)
`

type AddMedicalTreatmentParams struct {
	Animal    int32
	Diagnosis string
	Treatment string
	StartDate time.Time
	EndDate   sql.NullTime
	VetName   string
}

func (q *Queries) AddMedicalTreatment(ctx context.Context, db DBTX, arg AddMedicalTreatmentParams) (int64, error) {
	result, err := db.ExecContext(ctx, addMedicalTreatment,
		arg.Animal,
		arg.Diagnosis,
		arg.Treatment,
		arg.StartDate,
		arg.EndDate,
		arg.VetName,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

const addFeedingLog = `-- name: AddFeedingLog :execlastid
insert into FEEDING_LOG (ANIMAL, STAFF, FED_AT, FOOD_TYPE, QUANTITY_KG, NOTES)
values (?, ?, ?, ?, ?, ?)
`

type AddFeedingLogParams struct {
	Animal     int32
	Staff      int32
	FedAt      time.Time
	FoodType   string
	QuantityKg float64
	Notes      sql.NullString
}

func (q *Queries) AddFeedingLog(ctx context.Context, db DBTX, arg AddFeedingLogParams) (int64, error) {
	result, err := db.ExecContext(ctx, addFeedingLog,
		arg.Animal,
		arg.Staff,
		arg.FedAt,
		arg.FoodType,
		arg.QuantityKg,
		arg.Notes,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

const addActionLog = `-- name: AddActionLog :execlastid
insert into ACTION_LOG (
    CREATED_AT, ACTION_TYPE, METHOD, PATH, REFERRER, USER_ID, USER_NAME, URL, HTTP_STATUS, DURATION_MICROS
)
values (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

type AddActionLogParams struct {
	CreatedAt      float64
	ActionType     string
	Method         sql.NullString
	Path           sql.NullString
	Referrer       sql.NullString
	UserID         sql.NullInt32
	UserName       sql.NullString
	Url            sql.NullString
	HttpStatus     sql.NullInt16
	DurationMicros sql.NullInt64
}

func (q *Queries) AddActionLog(ctx context.Context, db DBTX, arg AddActionLogParams) (int64, error) {
	result, err := db.ExecContext(ctx, addActionLog,
		arg.CreatedAt,
		arg.ActionType,
		arg.Method,
		arg.Path,
		arg.Referrer,
		arg.UserID,
		arg.UserName,
		arg.Url,
		arg.HttpStatus,
		arg.DurationMicros,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}
