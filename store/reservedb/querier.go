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
	"time"
)

type Querier interface {
	SchemaVersion(ctx context.Context, db DBTX) (int16, error)

	AddVisitor(ctx context.Context, db DBTX, arg AddVisitorParams) (int64, error)
	VisitorByEmail(ctx context.Context, db DBTX, email string) (Visitor, error)
	VisitorByID(ctx context.Context, db DBTX, id int32) (Visitor, error)
	Visitors(ctx context.Context, db DBTX) ([]Visitor, error)
	CountVisitors(ctx context.Context, db DBTX) (int64, error)
	AdminByEmail(ctx context.Context, db DBTX, email string) (Admin, error)
	AddAdmin(ctx context.Context, db DBTX, arg AddAdminParams) (int64, error)

	AddZone(ctx context.Context, db DBTX, arg AddZoneParams) error
	Zones(ctx context.Context, db DBTX) ([]Zone, error)
	Zone(ctx context.Context, db DBTX, id string) (Zone, error)

	AddAnimal(ctx context.Context, db DBTX, arg AddAnimalParams) (int64, error)
	AnimalByID(ctx context.Context, db DBTX, id int32) (Animal, error)
	AnimalByName(ctx context.Context, db DBTX, name string) (Animal, error)
	AnimalsByZone(ctx context.Context, db DBTX, zone string) ([]Animal, error)
	AnimalLookup(ctx context.Context, db DBTX) ([]AnimalLookupRow, error)
	TouchAnimalSurvey(ctx context.Context, db DBTX, arg TouchAnimalSurveyParams) error

	AddStaff(ctx context.Context, db DBTX, arg AddStaffParams) (int64, error)
	StaffByZone(ctx context.Context, db DBTX, zone string) ([]StaffMember, error)
	StaffLookup(ctx context.Context, db DBTX) ([]StaffLookupRow, error)

	AddTicket(ctx context.Context, db DBTX, arg AddTicketParams) (int64, error)
	TicketsByEmail(ctx context.Context, db DBTX, email string) ([]Ticket, error)
	TicketByBookingID(ctx context.Context, db DBTX, bookingID string) (Ticket, error)
	BookingStatsSince(ctx context.Context, db DBTX, since time.Time) (BookingStatsRow, error)

	AddFeedback(ctx context.Context, db DBTX, arg AddFeedbackParams) (int64, error)
	AllFeedback(ctx context.Context, db DBTX) ([]Feedback, error)

	AddMedicalCheckup(ctx context.Context, db DBTX, arg AddMedicalCheckupParams) (int64, error)
	AddMedicalTreatment(ctx context.Context, db DBTX, arg AddMedicalTreatmentParams) (int64, error)
	AddFeedingLog(ctx context.Context, db DBTX, arg AddFeedingLogParams) (int64, error)

	AddActionLog(ctx context.Context, db DBTX, arg AddActionLogParams) (int64, error)
}

var _ Querier = (*Queries)(nil)
