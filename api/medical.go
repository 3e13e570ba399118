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

package api

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	reservejson "github.com/wildhaven/reserve-console-go/json"
	"github.com/wildhaven/reserve-console-go/lib/conv"
	"github.com/wildhaven/reserve-console-go/lib/herr"
	"github.com/wildhaven/reserve-console-go/store"
	"github.com/wildhaven/reserve-console-go/store/filter"
	"github.com/wildhaven/reserve-console-go/store/reservedb"
)

// Record kinds accepted by the medical endpoints.
const (
	MedicalKindCheckup   = "checkup"
	MedicalKindTreatment = "treatment"
	MedicalKindFeeding   = "feeding"
)

type GetMedical struct {
	reserveDBQ *store.DBQ
}

func (action GetMedical) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	resp, errHTTP := action.getMedical(req)
	if errHTTP != nil {
		errHTTP.From("[getMedical]").WriteResponse(w)
		return
	}
	mustWriteJSON(w, req, resp)
}
func (action GetMedical) getMedical(req *http.Request) (any, *herr.HTTPError) {
	sessionCtx, errHTTP := getSessionCtx(req)
	if errHTTP != nil {
		return nil, errHTTP.From("[getSessionCtx]")
	}
	if errHTTP = requireAdmin(sessionCtx); errHTTP != nil {
		return nil, errHTTP.From("[requireAdmin]")
	}
	if err := req.ParseForm(); err != nil {
		return nil, herr.BadRequest("Failed to parse form", err)
	}

	kind := req.FormValue("kind")
	switch kind {
	case MedicalKindCheckup, "":
		return action.checkups(req)
	case MedicalKindTreatment:
		return action.treatments(req)
	case MedicalKindFeeding:
		return action.feedingLogs(req)
	default:
		return nil, herr.BadRequest(
			fmt.Sprintf("Unknown medical record kind %q", kind), nil)
	}
}

func (action GetMedical) checkups(req *http.Request) (reservejson.Checkups, *herr.HTTPError) {
	params := filter.CheckupsParams{
		AnimalID: int32Param(req.Form, "animal_id"),
		VetName:  req.FormValue("vet"),
		Search:   req.FormValue("q"),
		SortBy:   req.FormValue("sort_by"),
		SortDir:  req.FormValue("sort_dir"),
	}
	rows, err := action.reserveDBQ.FilteredCheckups(req.Context(), action.reserveDBQ, params)
	if err != nil {
		slog.Error("Failed to fetch checkups", "error", err)
		return reservejson.Checkups{}, nil
	}
	resp := make(reservejson.Checkups, 0, len(rows))
	for _, row := range rows {
		checkup := reservejson.Checkup{
			ID:          row.ID,
			AnimalID:    row.Animal,
			CheckupDate: row.CheckupDate,
			VetName:     row.VetName,
			Notes:       conv.SqlToString(row.Notes),
		}
		if row.WeightKg.Valid {
			checkup.WeightKg = &row.WeightKg.Float64
		}
		if row.TemperatureC.Valid {
			checkup.TemperatureC = &row.TemperatureC.Float64
		}
		resp = append(resp, checkup)
	}
	return resp, nil
}

func (action GetMedical) treatments(req *http.Request) (reservejson.Treatments, *herr.HTTPError) {
	params := filter.TreatmentsParams{
		AnimalID: int32Param(req.Form, "animal_id"),
		VetName:  req.FormValue("vet"),
		Search:   req.FormValue("q"),
		SortBy:   req.FormValue("sort_by"),
		SortDir:  req.FormValue("sort_dir"),
	}
	rows, err := action.reserveDBQ.FilteredTreatments(req.Context(), action.reserveDBQ, params)
	if err != nil {
		slog.Error("Failed to fetch treatments", "error", err)
		return reservejson.Treatments{}, nil
	}
	resp := make(reservejson.Treatments, 0, len(rows))
	for _, row := range rows {
		treatment := reservejson.Treatment{
			ID:        row.ID,
			AnimalID:  row.Animal,
			Diagnosis: row.Diagnosis,
			Treatment: row.Treatment,
			StartDate: row.StartDate,
			VetName:   row.VetName,
		}
		if row.EndDate.Valid {
			treatment.EndDate = &row.EndDate.Time
		}
		resp = append(resp, treatment)
	}
	return resp, nil
}

func (action GetMedical) feedingLogs(req *http.Request) (reservejson.FeedingLogs, *herr.HTTPError) {
	params := filter.FeedingLogsParams{
		AnimalID: int32Param(req.Form, "animal_id"),
		StaffID:  int32Param(req.Form, "staff_id"),
		FoodType: req.FormValue("food_type"),
		Search:   req.FormValue("q"),
		SortBy:   req.FormValue("sort_by"),
		SortDir:  req.FormValue("sort_dir"),
	}
	rows, err := action.reserveDBQ.FilteredFeedingLogs(req.Context(), action.reserveDBQ, params)
	if err != nil {
		slog.Error("Failed to fetch feeding logs", "error", err)
		return reservejson.FeedingLogs{}, nil
	}
	resp := make(reservejson.FeedingLogs, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, reservejson.FeedingLog{
			ID:         row.ID,
			AnimalID:   row.Animal,
			StaffID:    row.Staff,
			FedAt:      row.FedAt,
			FoodType:   row.FoodType,
			QuantityKg: row.QuantityKg,
			Notes:      conv.SqlToString(row.Notes),
		})
	}
	return resp, nil
}

type PostAddCheckup struct {
	reserveDBQ *store.DBQ
}

func (action PostAddCheckup) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if errHTTP := requireAdminForm(req); errHTTP != nil {
		errHTTP.WriteResponse(w)
		return
	}
	animalID, err := conv.ParseInt32(req.FormValue("animal_id"))
	if err != nil {
		flashErrorRedirect(w, req, "/medical", "An animal must be selected")
		return
	}
	checkupDate, err := parseDate(req.FormValue("checkup_date"))
	if err != nil {
		flashErrorRedirect(w, req, "/medical", "Checkup date is invalid")
		return
	}
	vetName := req.FormValue("vet_name")
	if vetName == "" {
		flashErrorRedirect(w, req, "/medical", "Vet name is required")
		return
	}

	params := reservedb.AddMedicalCheckupParams{
		Animal:      animalID,
		CheckupDate: checkupDate,
		VetName:     vetName,
		Notes:       conv.StringToSql(conv.EmptyToNil(req.FormValue("notes")), 2048),
	}
	if weight := floatParam(req.Form, "weight_kg"); weight != nil {
		params.WeightKg = sql.NullFloat64{Float64: *weight, Valid: true}
	}
	if temp := floatParam(req.Form, "temperature_c"); temp != nil {
		params.TemperatureC = sql.NullFloat64{Float64: *temp, Valid: true}
	}

	checkupID, err := action.reserveDBQ.RecordCheckup(req.Context(), params)
	if err != nil {
		if errors.Is(err, store.ErrUnknownAnimal) {
			flashErrorRedirect(w, req, "/medical", "The selected animal does not exist")
			return
		}
		slog.Error("Failed to record checkup", "animalID", animalID, "error", err)
		flashErrorRedirect(w, req, "/medical", "Failed to save the checkup")
		return
	}
	slog.Info("Recorded medical checkup", "animalID", animalID, "checkupID", checkupID)
	flashSuccessRedirect(w, req, "/medical", "Checkup recorded")
}

type PostAddTreatment struct {
	reserveDBQ *store.DBQ
}

func (action PostAddTreatment) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if errHTTP := requireAdminForm(req); errHTTP != nil {
		errHTTP.WriteResponse(w)
		return
	}
	animalID, err := conv.ParseInt32(req.FormValue("animal_id"))
	if err != nil {
		flashErrorRedirect(w, req, "/medical", "An animal must be selected")
		return
	}
	diagnosis := req.FormValue("diagnosis")
	treatment := req.FormValue("treatment")
	vetName := req.FormValue("vet_name")
	if diagnosis == "" || treatment == "" || vetName == "" {
		flashErrorRedirect(w, req, "/medical", "Diagnosis, treatment and vet name are required")
		return
	}
	startDate, err := parseDate(req.FormValue("start_date"))
	if err != nil {
		flashErrorRedirect(w, req, "/medical", "Start date is invalid")
		return
	}

	params := reservedb.AddMedicalTreatmentParams{
		Animal:    animalID,
		Diagnosis: diagnosis,
		Treatment: treatment,
		StartDate: startDate,
		VetName:   vetName,
	}
	if endStr := req.FormValue("end_date"); endStr != "" {
		endDate, err := parseDate(endStr)
		if err != nil {
			flashErrorRedirect(w, req, "/medical", "End date is invalid")
			return
		}
		params.EndDate = sql.NullTime{Time: endDate, Valid: true}
	}

	treatmentID, err := action.reserveDBQ.RecordTreatment(req.Context(), params)
	if err != nil {
		if errors.Is(err, store.ErrUnknownAnimal) {
			flashErrorRedirect(w, req, "/medical", "The selected animal does not exist")
			return
		}
		slog.Error("Failed to record treatment", "animalID", animalID, "error", err)
		flashErrorRedirect(w, req, "/medical", "Failed to save the treatment")
		return
	}
	slog.Info("Recorded medical treatment", "animalID", animalID, "treatmentID", treatmentID)
	flashSuccessRedirect(w, req, "/medical", "Treatment recorded")
}

type PostAddFeedingLog struct {
	reserveDBQ *store.DBQ
}

func (action PostAddFeedingLog) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if errHTTP := requireAdminForm(req); errHTTP != nil {
		errHTTP.WriteResponse(w)
		return
	}
	animalID, err := conv.ParseInt32(req.FormValue("animal_id"))
	if err != nil {
		flashErrorRedirect(w, req, "/medical", "An animal must be selected")
		return
	}
	staffID, err := conv.ParseInt32(req.FormValue("staff_id"))
	if err != nil {
		flashErrorRedirect(w, req, "/medical", "A staff member must be selected")
		return
	}
	fedAt, err := parseDate(req.FormValue("fed_at"))
	if err != nil {
		flashErrorRedirect(w, req, "/medical", "Feeding time is invalid")
		return
	}
	foodType := req.FormValue("food_type")
	if foodType == "" {
		flashErrorRedirect(w, req, "/medical", "Food type is required")
		return
	}
	quantity, err := conv.ParseFloat64(req.FormValue("quantity_kg"))
	if err != nil || quantity <= 0 {
		flashErrorRedirect(w, req, "/medical", "Quantity must be a positive number")
		return
	}

	params := reservedb.AddFeedingLogParams{
		Animal:     animalID,
		Staff:      staffID,
		FedAt:      fedAt,
		FoodType:   foodType,
		QuantityKg: quantity,
		Notes:      conv.StringToSql(conv.EmptyToNil(req.FormValue("notes")), 2048),
	}
	logID, err := action.reserveDBQ.RecordFeeding(req.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUnknownAnimal):
			flashErrorRedirect(w, req, "/medical", "The selected animal does not exist")
		case errors.Is(err, store.ErrUnknownStaff):
			flashErrorRedirect(w, req, "/medical", "The selected staff member does not exist")
		default:
			slog.Error("Failed to record feeding", "animalID", animalID, "error", err)
			flashErrorRedirect(w, req, "/medical", "Failed to save the feeding log")
		}
		return
	}
	slog.Info("Recorded feeding", "animalID", animalID, "staffID", staffID, "logID", logID)
	flashSuccessRedirect(w, req, "/medical", "Feeding logged")
}

// requireAdminForm bundles the session, admin and form checks shared by the
// medical form handlers.
func requireAdminForm(req *http.Request) *herr.HTTPError {
	sessionCtx, errHTTP := getSessionCtx(req)
	if errHTTP != nil {
		return errHTTP.From("[getSessionCtx]")
	}
	if errHTTP = requireAdmin(sessionCtx); errHTTP != nil {
		return errHTTP.From("[requireAdmin]")
	}
	if err := req.ParseForm(); err != nil {
		return herr.BadRequest("Failed to parse form", err)
	}
	return nil
}

type PostMedical struct {
	reserveDBQ *store.DBQ
}

func (action PostMedical) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	resp, errHTTP := action.postMedical(req)
	if errHTTP != nil {
		errHTTP.From("[postMedical]").WriteResponse(w)
		return
	}
	w.WriteHeader(http.StatusCreated)
	mustWriteJSON(w, req, resp)
}
func (action PostMedical) postMedical(req *http.Request) (reservejson.MedicalRecordCreated, *herr.HTTPError) {
	var empty reservejson.MedicalRecordCreated
	sessionCtx, errHTTP := getSessionCtx(req)
	if errHTTP != nil {
		return empty, errHTTP.From("[getSessionCtx]")
	}
	if errHTTP = requireAdmin(sessionCtx); errHTTP != nil {
		return empty, errHTTP.From("[requireAdmin]")
	}
	record, errHTTP := readBodyAs[reservejson.MedicalRecord](req)
	if errHTTP != nil {
		return empty, errHTTP.From("[readBodyAs]")
	}
	if record.AnimalID == 0 {
		return empty, herr.BadRequest("animal_id is required", nil)
	}

	var id int64
	var err error
	switch record.Kind {
	case MedicalKindCheckup:
		if record.VetName == "" {
			return empty, herr.BadRequest("vet_name is required for a checkup", nil)
		}
		params := reservedb.AddMedicalCheckupParams{
			Animal:      record.AnimalID,
			CheckupDate: timeOrNow(record.CheckupDate),
			VetName:     record.VetName,
			Notes:       conv.StringToSql(conv.EmptyToNil(record.Notes), 2048),
		}
		if record.WeightKg != nil {
			params.WeightKg = sql.NullFloat64{Float64: *record.WeightKg, Valid: true}
		}
		if record.TemperatureC != nil {
			params.TemperatureC = sql.NullFloat64{Float64: *record.TemperatureC, Valid: true}
		}
		id, err = action.reserveDBQ.RecordCheckup(req.Context(), params)
	case MedicalKindTreatment:
		if record.Diagnosis == "" || record.Treatment == "" || record.VetName == "" {
			return empty, herr.BadRequest("diagnosis, treatment and vet_name are required for a treatment", nil)
		}
		params := reservedb.AddMedicalTreatmentParams{
			Animal:    record.AnimalID,
			Diagnosis: record.Diagnosis,
			Treatment: record.Treatment,
			StartDate: timeOrNow(record.StartDate),
			VetName:   record.VetName,
		}
		if record.EndDate != nil {
			params.EndDate = sql.NullTime{Time: *record.EndDate, Valid: true}
		}
		id, err = action.reserveDBQ.RecordTreatment(req.Context(), params)
	case MedicalKindFeeding:
		if record.StaffID == 0 || record.FoodType == "" || record.QuantityKg <= 0 {
			return empty, herr.BadRequest("staff_id, food_type and a positive quantity_kg are required for a feeding", nil)
		}
		id, err = action.reserveDBQ.RecordFeeding(req.Context(), reservedb.AddFeedingLogParams{
			Animal:     record.AnimalID,
			Staff:      record.StaffID,
			FedAt:      timeOrNow(record.FedAt),
			FoodType:   record.FoodType,
			QuantityKg: record.QuantityKg,
			Notes:      conv.StringToSql(conv.EmptyToNil(record.Notes), 2048),
		})
	default:
		return empty, herr.BadRequest(
			fmt.Sprintf("Unknown medical record kind %q", record.Kind), nil)
	}

	if err != nil {
		switch {
		case errors.Is(err, store.ErrUnknownAnimal):
			return empty, herr.NotFound(store.ErrUnknownAnimal.Error(), err).SetExpectedError()
		case errors.Is(err, store.ErrUnknownStaff):
			return empty, herr.NotFound(store.ErrUnknownStaff.Error(), err).SetExpectedError()
		}
		return empty, herr.InternalServerError("Failed to save medical record", err).From("[postMedical]")
	}
	return reservejson.MedicalRecordCreated{Kind: record.Kind, ID: id}, nil
}

func timeOrNow(t *time.Time) time.Time {
	if t != nil {
		return *t
	}
	return time.Now()
}
