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
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/wildhaven/reserve-console-go/store/reservedb"
)

// Domain errors surfaced by the transactional operations. Callers translate
// these into user-facing responses; anything else is an internal failure.
var (
	ErrDuplicate      = errors.New("record already exists")
	ErrUnknownBooking = errors.New("Booking Id does not exist")
	ErrUnknownZone    = errors.New("safari zone does not exist")
	ErrUnknownAnimal  = errors.New("animal does not exist")
	ErrUnknownStaff   = errors.New("staff member does not exist")
)

// MySQL/MariaDB error numbers for constraint violations.
const (
	mysqlErrDupEntry      = 1062
	mysqlErrNoReferenced  = 1452
	mysqlErrNoReferenced2 = 1216
)

func isDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDupEntry
}

func isForeignKeyViolation(err error) bool {
	var mysqlErr *mysql.MySQLError
	if !errors.As(err, &mysqlErr) {
		return false
	}
	return mysqlErr.Number == mysqlErrNoReferenced || mysqlErr.Number == mysqlErrNoReferenced2
}

// Safari pricing, in rupees. The base rate applies per person; the add-ons
// are flat per booking. GST applies to the sum.
const (
	PerPersonRate = 1500.0
	GuideCost     = 500.0
	CameraCost    = 250.0
	LunchCost     = 300.0
	TransportCost = 450.0
	GSTRate       = 0.18
)

// NewBookingID makes an id like "WH-1A2B3C4D". These appear on printed
// tickets, so they're short and uppercase.
func NewBookingID() string {
	return "WH-" + strings.ToUpper(uuid.NewString()[:8])
}

type BookSafariTicketParams struct {
	VisitorName string
	Email       string
	Contact     string
	SafariDate  time.Time
	TimeSlot    string
	Zone        string
	PersonCount int32
	Guide       bool
	Camera      bool
	Lunch       bool
	Transport   bool
}

// Booking is the result of a successful safari ticket booking.
type Booking struct {
	TicketID       int64
	BookingID      string
	BaseAmount     float64
	ServicesAmount float64
	GstAmount      float64
	TotalAmount    float64
	Status         string
}

// BookSafariTicket validates the zone, prices the trip, and inserts the
// ticket, all in one transaction.
func (l *DBQ) BookSafariTicket(ctx context.Context, p BookSafariTicketParams) (Booking, error) {
	txn, err := l.BeginTx(ctx, nil)
	if err != nil {
		return Booking{}, fmt.Errorf("[BeginTx]: %w", err)
	}
	defer rollback(txn)

	_, err = l.Zone(ctx, txn, p.Zone)
	if errors.Is(err, sql.ErrNoRows) {
		return Booking{}, ErrUnknownZone
	}
	if err != nil {
		return Booking{}, fmt.Errorf("[Zone]: %w", err)
	}

	base := PerPersonRate * float64(p.PersonCount)
	var services float64
	if p.Guide {
		services += GuideCost
	}
	if p.Camera {
		services += CameraCost
	}
	if p.Lunch {
		services += LunchCost
	}
	if p.Transport {
		services += TransportCost
	}
	gst := (base + services) * GSTRate
	total := base + services + gst

	bookingID := NewBookingID()
	ticketID, err := l.AddTicket(ctx, txn, reservedb.AddTicketParams{
		BookingID:      bookingID,
		VisitorName:    p.VisitorName,
		Email:          p.Email,
		Contact:        p.Contact,
		SafariDate:     p.SafariDate,
		TimeSlot:       p.TimeSlot,
		Zone:           p.Zone,
		PersonCount:    p.PersonCount,
		Guide:          p.Guide,
		Camera:         p.Camera,
		Lunch:          p.Lunch,
		Transport:      p.Transport,
		BaseAmount:     base,
		ServicesAmount: services,
		GstAmount:      gst,
		TotalAmount:    total,
		Status:         "confirmed",
	})
	if err != nil {
		return Booking{}, fmt.Errorf("[AddTicket]: %w", err)
	}
	if err = txn.Commit(); err != nil {
		return Booking{}, fmt.Errorf("[Commit]: %w", err)
	}
	return Booking{
		TicketID:       ticketID,
		BookingID:      bookingID,
		BaseAmount:     base,
		ServicesAmount: services,
		GstAmount:      gst,
		TotalAmount:    total,
		Status:         fmt.Sprintf("Booking confirmed. Your booking id is %v", bookingID),
	}, nil
}

// HireRanger inserts a staff member. A reused employee id comes back as
// ErrDuplicate, an unknown zone as ErrUnknownZone.
func (l *DBQ) HireRanger(ctx context.Context, p reservedb.AddStaffParams) (int64, error) {
	txn, err := l.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("[BeginTx]: %w", err)
	}
	defer rollback(txn)

	id, err := l.AddStaff(ctx, txn, p)
	if isDuplicateKey(err) {
		return 0, fmt.Errorf("employee id %v: %w", p.EmployeeID, ErrDuplicate)
	}
	if isForeignKeyViolation(err) {
		return 0, ErrUnknownZone
	}
	if err != nil {
		return 0, fmt.Errorf("[AddStaff]: %w", err)
	}
	if err = txn.Commit(); err != nil {
		return 0, fmt.Errorf("[Commit]: %w", err)
	}
	return id, nil
}

// CreateZone inserts a zone, translating id or name collisions.
func (l *DBQ) CreateZone(ctx context.Context, p reservedb.AddZoneParams) error {
	txn, err := l.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("[BeginTx]: %w", err)
	}
	defer rollback(txn)

	err = l.AddZone(ctx, txn, p)
	if isDuplicateKey(err) {
		return fmt.Errorf("zone %v: %w", p.ID, ErrDuplicate)
	}
	if err != nil {
		return fmt.Errorf("[AddZone]: %w", err)
	}
	if err = txn.Commit(); err != nil {
		return fmt.Errorf("[Commit]: %w", err)
	}
	return nil
}

type AnimalSurvey struct {
	AnimalID int64
	Created  bool
}

// LogAnimalSurvey records a population survey. A new animal gets inserted;
// a known one (matched by name) has its status, count, and survey date
// updated instead.
func (l *DBQ) LogAnimalSurvey(ctx context.Context, p reservedb.AddAnimalParams) (AnimalSurvey, error) {
	txn, err := l.BeginTx(ctx, nil)
	if err != nil {
		return AnimalSurvey{}, fmt.Errorf("[BeginTx]: %w", err)
	}
	defer rollback(txn)

	existing, err := l.AnimalByName(ctx, txn, p.Name)
	switch {
	case err == nil:
		err = l.TouchAnimalSurvey(ctx, txn, reservedb.TouchAnimalSurveyParams{
			Status:         p.Status,
			Count:          p.Count,
			LastSurveyDate: p.LastSurveyDate,
			ID:             existing.ID,
		})
		if err != nil {
			return AnimalSurvey{}, fmt.Errorf("[TouchAnimalSurvey]: %w", err)
		}
		if err = txn.Commit(); err != nil {
			return AnimalSurvey{}, fmt.Errorf("[Commit]: %w", err)
		}
		return AnimalSurvey{AnimalID: int64(existing.ID), Created: false}, nil
	case errors.Is(err, sql.ErrNoRows):
		id, err := l.AddAnimal(ctx, txn, p)
		if isForeignKeyViolation(err) {
			return AnimalSurvey{}, ErrUnknownZone
		}
		if err != nil {
			return AnimalSurvey{}, fmt.Errorf("[AddAnimal]: %w", err)
		}
		if err = txn.Commit(); err != nil {
			return AnimalSurvey{}, fmt.Errorf("[Commit]: %w", err)
		}
		return AnimalSurvey{AnimalID: id, Created: true}, nil
	default:
		return AnimalSurvey{}, fmt.Errorf("[AnimalByName]: %w", err)
	}
}

// SubmitFeedback inserts visitor feedback. The booking id has to reference
// a real ticket; nothing is inserted otherwise.
func (l *DBQ) SubmitFeedback(ctx context.Context, p reservedb.AddFeedbackParams) (int64, error) {
	txn, err := l.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("[BeginTx]: %w", err)
	}
	defer rollback(txn)

	id, err := l.AddFeedback(ctx, txn, p)
	if isForeignKeyViolation(err) {
		return 0, ErrUnknownBooking
	}
	if err != nil {
		return 0, fmt.Errorf("[AddFeedback]: %w", err)
	}
	if err = txn.Commit(); err != nil {
		return 0, fmt.Errorf("[Commit]: %w", err)
	}
	return id, nil
}

// RecordCheckup, RecordTreatment, and RecordFeeding insert medical records,
// translating broken animal/staff references.

func (l *DBQ) RecordCheckup(ctx context.Context, p reservedb.AddMedicalCheckupParams) (int64, error) {
	id, err := l.AddMedicalCheckup(ctx, l.DB, p)
	if isForeignKeyViolation(err) {
		return 0, ErrUnknownAnimal
	}
	if err != nil {
		return 0, fmt.Errorf("[AddMedicalCheckup]: %w", err)
	}
	return id, nil
}

func (l *DBQ) RecordTreatment(ctx context.Context, p reservedb.AddMedicalTreatmentParams) (int64, error) {
	id, err := l.AddMedicalTreatment(ctx, l.DB, p)
	if isForeignKeyViolation(err) {
		return 0, ErrUnknownAnimal
	}
	if err != nil {
		return 0, fmt.Errorf("[AddMedicalTreatment]: %w", err)
	}
	return id, nil
}

func (l *DBQ) RecordFeeding(ctx context.Context, p reservedb.AddFeedingLogParams) (int64, error) {
	id, err := l.AddFeedingLog(ctx, l.DB, p)
	if isForeignKeyViolation(err) {
		// Either FK may be broken. Check the animal so the message is
		// specific.
		if _, animalErr := l.AnimalByID(ctx, l.DB, p.Animal); errors.Is(animalErr, sql.ErrNoRows) {
			return 0, ErrUnknownAnimal
		}
		return 0, ErrUnknownStaff
	}
	if err != nil {
		return 0, fmt.Errorf("[AddFeedingLog]: %w", err)
	}
	return id, nil
}

// RegisterVisitor hashes nothing itself; it stores the caller-provided hash
// and translates email/aadhar collisions.
func (l *DBQ) RegisterVisitor(ctx context.Context, p reservedb.AddVisitorParams) (int64, error) {
	id, err := l.AddVisitor(ctx, l.DB, p)
	if isDuplicateKey(err) {
		return 0, fmt.Errorf("email or aadhar id: %w", ErrDuplicate)
	}
	if err != nil {
		return 0, fmt.Errorf("[AddVisitor]: %w", err)
	}
	return id, nil
}

func rollback(txn *sql.Tx) {
	err := txn.Rollback()
	if err != nil && !errors.Is(err, sql.ErrTxDone) {
		slog.Error("Failed to rollback transaction", "error", err)
	}
}
