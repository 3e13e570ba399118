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

package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/wildhaven/reserve-console-go/store/reservedb"
)

// DBQ combines the SQL database and the Querier for the reserve datastore.
type DBQ struct {
	*sql.DB
	q reservedb.Querier
}

func NewDBQ(sqlDB *sql.DB, querier reservedb.Querier) *DBQ {
	return &DBQ{
		DB: sqlDB,
		q:  querier,
	}
}

func logQuery(queryName string, start time.Time, err error) {
	durationMS := float64(time.Since(start).Microseconds()) / 1000.0
	slog.Debug("Ran reserve SQL: "+queryName,
		"duration", fmt.Sprintf("%.3fms", durationMS),
		"err", err,
	)
}

// Force DBQ to implement the reservedb.Querier interface.
var _ reservedb.Querier = (*DBQ)(nil)

func (l DBQ) SchemaVersion(ctx context.Context, db reservedb.DBTX) (int16, error) {
	start := time.Now()
	version, err := l.q.SchemaVersion(ctx, db)
	logQuery("SchemaVersion", start, err)
	return version, err
}

func (l DBQ) AddVisitor(ctx context.Context, db reservedb.DBTX, arg reservedb.AddVisitorParams) (int64, error) {
	start := time.Now()
	id, err := l.q.AddVisitor(ctx, db, arg)
	logQuery("AddVisitor", start, err)
	return id, err
}

func (l DBQ) VisitorByEmail(ctx context.Context, db reservedb.DBTX, email string) (reservedb.Visitor, error) {
	start := time.Now()
	visitor, err := l.q.VisitorByEmail(ctx, db, email)
	logQuery("VisitorByEmail", start, err)
	return visitor, err
}

func (l DBQ) VisitorByID(ctx context.Context, db reservedb.DBTX, id int32) (reservedb.Visitor, error) {
	start := time.Now()
	visitor, err := l.q.VisitorByID(ctx, db, id)
	logQuery("VisitorByID", start, err)
	return visitor, err
}

func (l DBQ) Visitors(ctx context.Context, db reservedb.DBTX) ([]reservedb.Visitor, error) {
	start := time.Now()
	visitors, err := l.q.Visitors(ctx, db)
	logQuery("Visitors", start, err)
	return visitors, err
}

func (l DBQ) CountVisitors(ctx context.Context, db reservedb.DBTX) (int64, error) {
	start := time.Now()
	count, err := l.q.CountVisitors(ctx, db)
	logQuery("CountVisitors", start, err)
	return count, err
}

func (l DBQ) AdminByEmail(ctx context.Context, db reservedb.DBTX, email string) (reservedb.Admin, error) {
	start := time.Now()
	admin, err := l.q.AdminByEmail(ctx, db, email)
	logQuery("AdminByEmail", start, err)
	return admin, err
}

func (l DBQ) AddAdmin(ctx context.Context, db reservedb.DBTX, arg reservedb.AddAdminParams) (int64, error) {
	start := time.Now()
	id, err := l.q.AddAdmin(ctx, db, arg)
	logQuery("AddAdmin", start, err)
	return id, err
}

func (l DBQ) AddZone(ctx context.Context, db reservedb.DBTX, arg reservedb.AddZoneParams) error {
	start := time.Now()
	err := l.q.AddZone(ctx, db, arg)
	logQuery("AddZone", start, err)
	return err
}

func (l DBQ) Zones(ctx context.Context, db reservedb.DBTX) ([]reservedb.Zone, error) {
	start := time.Now()
	zones, err := l.q.Zones(ctx, db)
	logQuery("Zones", start, err)
	return zones, err
}

func (l DBQ) Zone(ctx context.Context, db reservedb.DBTX, id string) (reservedb.Zone, error) {
	start := time.Now()
	zone, err := l.q.Zone(ctx, db, id)
	logQuery("Zone", start, err)
	return zone, err
}

func (l DBQ) AddAnimal(ctx context.Context, db reservedb.DBTX, arg reservedb.AddAnimalParams) (int64, error) {
	start := time.Now()
	id, err := l.q.AddAnimal(ctx, db, arg)
	logQuery("AddAnimal", start, err)
	return id, err
}

func (l DBQ) AnimalByID(ctx context.Context, db reservedb.DBTX, id int32) (reservedb.Animal, error) {
	start := time.Now()
	animal, err := l.q.AnimalByID(ctx, db, id)
	logQuery("AnimalByID", start, err)
	return animal, err
}

func (l DBQ) AnimalByName(ctx context.Context, db reservedb.DBTX, name string) (reservedb.Animal, error) {
	start := time.Now()
	animal, err := l.q.AnimalByName(ctx, db, name)
	logQuery("AnimalByName", start, err)
	return animal, err
}

func (l DBQ) AnimalsByZone(ctx context.Context, db reservedb.DBTX, zone string) ([]reservedb.Animal, error) {
	start := time.Now()
	animals, err := l.q.AnimalsByZone(ctx, db, zone)
	logQuery("AnimalsByZone", start, err)
	return animals, err
}

func (l DBQ) AnimalLookup(ctx context.Context, db reservedb.DBTX) ([]reservedb.AnimalLookupRow, error) {
	start := time.Now()
	animals, err := l.q.AnimalLookup(ctx, db)
	logQuery("AnimalLookup", start, err)
	return animals, err
}

func (l DBQ) TouchAnimalSurvey(ctx context.Context, db reservedb.DBTX, arg reservedb.TouchAnimalSurveyParams) error {
	start := time.Now()
	err := l.q.TouchAnimalSurvey(ctx, db, arg)
	logQuery("TouchAnimalSurvey", start, err)
	return err
}

func (l DBQ) AddStaff(ctx context.Context, db reservedb.DBTX, arg reservedb.AddStaffParams) (int64, error) {
	start := time.Now()
	id, err := l.q.AddStaff(ctx, db, arg)
	logQuery("AddStaff", start, err)
	return id, err
}

func (l DBQ) StaffByZone(ctx context.Context, db reservedb.DBTX, zone string) ([]reservedb.StaffMember, error) {
	start := time.Now()
	staff, err := l.q.StaffByZone(ctx, db, zone)
	logQuery("StaffByZone", start, err)
	return staff, err
}

func (l DBQ) StaffLookup(ctx context.Context, db reservedb.DBTX) ([]reservedb.StaffLookupRow, error) {
	start := time.Now()
	staff, err := l.q.StaffLookup(ctx, db)
	logQuery("StaffLookup", start, err)
	return staff, err
}

func (l DBQ) AddTicket(ctx context.Context, db reservedb.DBTX, arg reservedb.AddTicketParams) (int64, error) {
	start := time.Now()
	id, err := l.q.AddTicket(ctx, db, arg)
	logQuery("AddTicket", start, err)
	return id, err
}

func (l DBQ) TicketsByEmail(ctx context.Context, db reservedb.DBTX, email string) ([]reservedb.Ticket, error) {
	start := time.Now()
	tickets, err := l.q.TicketsByEmail(ctx, db, email)
	logQuery("TicketsByEmail", start, err)
	return tickets, err
}

func (l DBQ) TicketByBookingID(ctx context.Context, db reservedb.DBTX, bookingID string) (reservedb.Ticket, error) {
	start := time.Now()
	ticket, err := l.q.TicketByBookingID(ctx, db, bookingID)
	logQuery("TicketByBookingID", start, err)
	return ticket, err
}

func (l DBQ) BookingStatsSince(ctx context.Context, db reservedb.DBTX, since time.Time) (reservedb.BookingStatsRow, error) {
	start := time.Now()
	stats, err := l.q.BookingStatsSince(ctx, db, since)
	logQuery("BookingStatsSince", start, err)
	return stats, err
}

func (l DBQ) AddFeedback(ctx context.Context, db reservedb.DBTX, arg reservedb.AddFeedbackParams) (int64, error) {
	start := time.Now()
	id, err := l.q.AddFeedback(ctx, db, arg)
	logQuery("AddFeedback", start, err)
	return id, err
}

func (l DBQ) AllFeedback(ctx context.Context, db reservedb.DBTX) ([]reservedb.Feedback, error) {
	start := time.Now()
	feedback, err := l.q.AllFeedback(ctx, db)
	logQuery("AllFeedback", start, err)
	return feedback, err
}

func (l DBQ) AddMedicalCheckup(ctx context.Context, db reservedb.DBTX, arg reservedb.AddMedicalCheckupParams) (int64, error) {
	start := time.Now()
	id, err := l.q.AddMedicalCheckup(ctx, db, arg)
	logQuery("AddMedicalCheckup", start, err)
	return id, err
}

func (l DBQ) AddMedicalTreatment(ctx context.Context, db reservedb.DBTX, arg reservedb.AddMedicalTreatmentParams) (int64, error) {
	start := time.Now()
	id, err := l.q.AddMedicalTreatment(ctx, db, arg)
	logQuery("AddMedicalTreatment", start, err)
	return id, err
}

func (l DBQ) AddFeedingLog(ctx context.Context, db reservedb.DBTX, arg reservedb.AddFeedingLogParams) (int64, error) {
	start := time.Now()
	id, err := l.q.AddFeedingLog(ctx, db, arg)
	logQuery("AddFeedingLog", start, err)
	return id, err
}

func (l DBQ) AddActionLog(ctx context.Context, db reservedb.DBTX, arg reservedb.AddActionLogParams) (int64, error) {
	start := time.Now()
	id, err := l.q.AddActionLog(ctx, db, arg)
	logQuery("AddActionLog", start, err)
	return id, err
}
