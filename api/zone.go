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
	"log/slog"
	"net/http"

	reservejson "github.com/wildhaven/reserve-console-go/json"
	"github.com/wildhaven/reserve-console-go/lib/conv"
	"github.com/wildhaven/reserve-console-go/lib/herr"
	"github.com/wildhaven/reserve-console-go/store"
	"github.com/wildhaven/reserve-console-go/store/filter"
	"github.com/wildhaven/reserve-console-go/store/reservedb"
)

type GetZones struct {
	reserveDBQ *store.DBQ
}

func (action GetZones) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	resp, errHTTP := action.getZones(req)
	if errHTTP != nil {
		errHTTP.From("[getZones]").WriteResponse(w)
		return
	}
	mustWriteJSON(w, req, resp)
}
func (action GetZones) getZones(req *http.Request) (reservejson.Zones, *herr.HTTPError) {
	if err := req.ParseForm(); err != nil {
		return nil, herr.BadRequest("Failed to parse form", err)
	}
	params := filter.ZonesParams{
		Climate:     req.FormValue("climate"),
		AccessLevel: req.FormValue("access_level"),
		MinArea:     floatParam(req.Form, "min_area"),
		MaxArea:     floatParam(req.Form, "max_area"),
		Search:      req.FormValue("q"),
		SortBy:      req.FormValue("sort_by"),
		SortDir:     req.FormValue("sort_dir"),
	}
	rows, err := action.reserveDBQ.FilteredZones(req.Context(), action.reserveDBQ, params)
	if err != nil {
		slog.Error("Failed to fetch zones", "error", err)
		return reservejson.Zones{}, nil
	}
	resp := make(reservejson.Zones, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, toJSONZone(row))
	}
	return resp, nil
}

func toJSONZone(row reservedb.Zone) reservejson.Zone {
	return reservejson.Zone{
		ID:             row.ID,
		Name:           row.Name,
		AreaSqkm:       row.AreaSqkm,
		Climate:        row.Climate,
		CameraTraps:    row.CameraTraps,
		AccessLevel:    row.AccessLevel,
		PrimarySpecies: row.PrimarySpecies,
	}
}

type PostAddZone struct {
	reserveDBQ *store.DBQ
}

func (action PostAddZone) ServeHTTP(w http.ResponseWriter, req *http.Request) {
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
		flashErrorRedirect(w, req, "/zones", "Invalid form submission")
		return
	}

	id := req.FormValue("id")
	name := req.FormValue("name")
	if id == "" || name == "" {
		flashErrorRedirect(w, req, "/zones", "Zone id and name are required")
		return
	}
	area, err := conv.ParseFloat64(req.FormValue("area_sqkm"))
	if err != nil || area <= 0 {
		flashErrorRedirect(w, req, "/zones", "Area must be a positive number")
		return
	}
	cameraTraps, err := conv.ParseInt32(req.FormValue("camera_traps"))
	if err != nil || cameraTraps < 0 {
		cameraTraps = 0
	}

	params := reservedb.AddZoneParams{
		ID:             id,
		Name:           name,
		AreaSqkm:       area,
		Climate:        req.FormValue("climate"),
		CameraTraps:    cameraTraps,
		AccessLevel:    req.FormValue("access_level"),
		PrimarySpecies: req.FormValue("primary_species"),
	}
	err = action.reserveDBQ.CreateZone(req.Context(), params)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			flashErrorRedirect(w, req, "/zones", "A zone with this id or name already exists")
			return
		}
		slog.Error("Failed to create zone", "zoneID", id, "error", err)
		flashErrorRedirect(w, req, "/zones", "Failed to save the zone")
		return
	}
	slog.Info("Created zone", "zoneID", id, "name", name)
	flashSuccessRedirect(w, req, "/zones", "Zone added")
}

type GetZoneDetail struct {
	reserveDBQ *store.DBQ
}

func (action GetZoneDetail) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	resp, errHTTP := action.getZoneDetail(req)
	if errHTTP != nil {
		errHTTP.From("[getZoneDetail]").WriteResponse(w)
		return
	}
	mustWriteJSON(w, req, resp)
}
func (action GetZoneDetail) getZoneDetail(req *http.Request) (reservejson.ZoneDetail, *herr.HTTPError) {
	var empty reservejson.ZoneDetail
	zoneID := req.PathValue("zoneID")
	if zoneID == "" {
		return empty, herr.BadRequest("No zoneID was provided", nil)
	}
	zone, err := action.reserveDBQ.Zone(req.Context(), action.reserveDBQ, zoneID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return empty, herr.NotFound("Zone not found", err)
		}
		return empty, herr.InternalServerError("Failed to fetch zone", err).From("[Zone]")
	}
	animals, err := action.reserveDBQ.AnimalsByZone(req.Context(), action.reserveDBQ, zoneID)
	if err != nil {
		return empty, herr.InternalServerError("Failed to fetch zone animals", err).From("[AnimalsByZone]")
	}
	staff, err := action.reserveDBQ.StaffByZone(req.Context(), action.reserveDBQ, zoneID)
	if err != nil {
		return empty, herr.InternalServerError("Failed to fetch zone staff", err).From("[StaffByZone]")
	}

	resp := reservejson.ZoneDetail{
		Zone:    toJSONZone(zone),
		Animals: make(reservejson.Animals, 0, len(animals)),
		Staff:   make(reservejson.StaffMembers, 0, len(staff)),
	}
	for _, animal := range animals {
		resp.Animals = append(resp.Animals, toJSONAnimal(animal))
	}
	for _, member := range staff {
		resp.Staff = append(resp.Staff, reservejson.StaffMember{
			ID:              member.ID,
			EmployeeID:      member.EmployeeID,
			Name:            member.Name,
			Age:             member.Age,
			Gender:          member.Gender,
			AssignedZone:    member.AssignedZone,
			ExperienceYears: member.ExperienceYears,
			Shift:           member.Shift,
			Role:            member.Role,
			Category:        member.Category,
		})
	}
	return resp, nil
}
