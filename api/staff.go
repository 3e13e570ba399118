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
	"errors"
	"log/slog"
	"net/http"

	reservejson "github.com/wildhaven/reserve-console-go/json"
	"github.com/wildhaven/reserve-console-go/lib/conv"
	"github.com/wildhaven/reserve-console-go/lib/herr"
	"github.com/wildhaven/reserve-console-go/store"
	"github.com/wildhaven/reserve-console-go/store/filter"
	"github.com/wildhaven/reserve-console-go/store/reservedb"
)

type GetStaff struct {
	reserveDBQ *store.DBQ
}

func (action GetStaff) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	resp, errHTTP := action.getStaff(req)
	if errHTTP != nil {
		errHTTP.From("[getStaff]").WriteResponse(w)
		return
	}
	mustWriteJSON(w, req, resp)
}
func (action GetStaff) getStaff(req *http.Request) (reservejson.StaffMembers, *herr.HTTPError) {
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
	params := filter.StaffParams{
		Zone:          req.FormValue("zone"),
		Shift:         req.FormValue("shift"),
		Category:      req.FormValue("category"),
		Gender:        req.FormValue("gender"),
		MinExperience: floatParam(req.Form, "min_experience"),
		MaxExperience: floatParam(req.Form, "max_experience"),
		Search:        req.FormValue("q"),
		SortBy:        req.FormValue("sort_by"),
		SortDir:       req.FormValue("sort_dir"),
	}
	rows, err := action.reserveDBQ.FilteredStaff(req.Context(), action.reserveDBQ, params)
	if err != nil {
		slog.Error("Failed to fetch staff", "error", err)
		return reservejson.StaffMembers{}, nil
	}
	resp := make(reservejson.StaffMembers, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, reservejson.StaffMember{
			ID:              row.ID,
			EmployeeID:      row.EmployeeID,
			Name:            row.Name,
			Age:             row.Age,
			Gender:          row.Gender,
			AssignedZone:    row.AssignedZone,
			ExperienceYears: row.ExperienceYears,
			Shift:           row.Shift,
			Role:            row.Role,
			Category:        row.Category,
		})
	}
	return resp, nil
}

type PostAddStaff struct {
	reserveDBQ *store.DBQ
}

func (action PostAddStaff) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	sessionCtx, errHTTP := getSessionCtx(req)
	if errHTTP != nil {
		errHTTP.From("[getSessionCtx]").WriteResponse(w)
		return
	}
	if errHTTP = requireAdmin(sessionCtx); errHTTP != nil {
		errHTTP.From("[requireAdmin]").WriteResponse(w)
		return
	}
	if err := req.ParseForm(); err != nil {
		flashErrorRedirect(w, req, "/staff", "Invalid form submission")
		return
	}

	employeeID := req.FormValue("employee_id")
	name := req.FormValue("name")
	zone := req.FormValue("assigned_zone")
	if employeeID == "" || name == "" || zone == "" {
		flashErrorRedirect(w, req, "/staff", "Employee id, name and assigned zone are required")
		return
	}
	age, err := conv.ParseInt32(req.FormValue("age"))
	if err != nil || age <= 0 {
		flashErrorRedirect(w, req, "/staff", "Age must be a positive number")
		return
	}
	experience, err := conv.ParseInt32(req.FormValue("experience_years"))
	if err != nil || experience < 0 {
		flashErrorRedirect(w, req, "/staff", "Experience must be a non-negative number")
		return
	}

	params := reservedb.AddStaffParams{
		EmployeeID:      employeeID,
		Name:            name,
		Age:             age,
		Gender:          req.FormValue("gender"),
		AssignedZone:    zone,
		ExperienceYears: experience,
		Shift:           req.FormValue("shift"),
		Role:            req.FormValue("role"),
		Category:        req.FormValue("category"),
	}
	staffID, err := action.reserveDBQ.HireRanger(req.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicate):
			flashErrorRedirect(w, req, "/staff", "A staff member with this employee id already exists")
		case errors.Is(err, store.ErrUnknownZone):
			flashErrorRedirect(w, req, "/staff", "The assigned zone does not exist")
		default:
			slog.Error("Failed to hire staff member", "employeeID", employeeID, "error", err)
			flashErrorRedirect(w, req, "/staff", "Failed to save the staff record")
		}
		return
	}
	slog.Info("Hired staff member", "employeeID", employeeID, "staffID", staffID)
	flashSuccessRedirect(w, req, "/staff", "Staff member added")
}

type GetStaffLookup struct {
	reserveDBQ *store.DBQ
}

func (action GetStaffLookup) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	resp, errHTTP := action.getStaffLookup(req)
	if errHTTP != nil {
		errHTTP.From("[getStaffLookup]").WriteResponse(w)
		return
	}
	mustWriteJSON(w, req, resp)
}
func (action GetStaffLookup) getStaffLookup(req *http.Request) (reservejson.Lookups, *herr.HTTPError) {
	rows, err := action.reserveDBQ.StaffLookup(req.Context(), action.reserveDBQ)
	if err != nil {
		return nil, herr.InternalServerError("Failed to fetch staff lookup", err).From("[StaffLookup]")
	}
	resp := make(reservejson.Lookups, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, reservejson.Lookup{ID: row.ID, Name: row.Name})
	}
	return resp, nil
}
