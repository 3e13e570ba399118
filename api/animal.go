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
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	reservejson "github.com/wildhaven/reserve-console-go/json"
	"github.com/wildhaven/reserve-console-go/lib/conv"
	"github.com/wildhaven/reserve-console-go/lib/herr"
	"github.com/wildhaven/reserve-console-go/store"
	"github.com/wildhaven/reserve-console-go/store/filter"
	"github.com/wildhaven/reserve-console-go/store/reservedb"
)

type GetAnimals struct {
	reserveDBQ       *store.DBQ
	cacheControlLong time.Duration
}

func (action GetAnimals) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	resp, errHTTP := action.getAnimals(req)
	if errHTTP != nil {
		errHTTP.From("[getAnimals]").WriteResponse(w)
		return
	}
	w.Header().Set("Cache-Control", fmt.Sprintf(
		"max-age=%v, private", action.cacheControlLong.Milliseconds()/1000))
	mustWriteJSON(w, req, resp)
}
func (action GetAnimals) getAnimals(req *http.Request) (reservejson.Animals, *herr.HTTPError) {
	if err := req.ParseForm(); err != nil {
		return nil, herr.BadRequest("Failed to parse form", err)
	}
	params := filter.AnimalsParams{
		Zone:      req.FormValue("zone"),
		Status:    req.FormValue("status"),
		SpeciesID: req.FormValue("species_id"),
		MinCount:  floatParam(req.Form, "min_count"),
		MaxCount:  floatParam(req.Form, "max_count"),
		Search:    req.FormValue("q"),
		SortBy:    req.FormValue("sort_by"),
		SortDir:   req.FormValue("sort_dir"),
	}
	rows, err := action.reserveDBQ.FilteredAnimals(req.Context(), action.reserveDBQ, params)
	if err != nil {
		slog.Error("Failed to fetch animals", "error", err)
		return reservejson.Animals{}, nil
	}
	resp := make(reservejson.Animals, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, toJSONAnimal(row))
	}
	return resp, nil
}

// floatParam parses an optional numeric query parameter. Garbage is
// treated as absent rather than rejected, same as the other filters.
func floatParam(form url.Values, key string) *float64 {
	val := form.Get(key)
	if val == "" {
		return nil
	}
	f, err := conv.ParseFloat64(val)
	if err != nil {
		return nil
	}
	return &f
}

func int32Param(form url.Values, key string) *int32 {
	val := form.Get(key)
	if val == "" {
		return nil
	}
	i, err := conv.ParseInt32(val)
	if err != nil {
		return nil
	}
	return &i
}

func toJSONAnimal(row reservedb.Animal) reservejson.Animal {
	a := reservejson.Animal{
		ID:          row.ID,
		Name:        row.Name,
		SpeciesID:   row.SpeciesID,
		Status:      row.Status,
		Count:       row.Count,
		HabitatZone: row.HabitatZone,
		ImageURL:    conv.SqlToString(row.ImageUrl),
	}
	if row.LastSurveyDate.Valid {
		a.LastSurveyDate = &row.LastSurveyDate.Time
	}
	return a
}

type PostAddAnimal struct {
	reserveDBQ *store.DBQ
}

func (action PostAddAnimal) ServeHTTP(w http.ResponseWriter, req *http.Request) {
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
		flashErrorRedirect(w, req, "/animals", "Invalid form submission")
		return
	}

	name := req.FormValue("name")
	speciesID := req.FormValue("species_id")
	zone := req.FormValue("habitat_zone")
	if name == "" || speciesID == "" || zone == "" {
		flashErrorRedirect(w, req, "/animals", "Name, species and habitat zone are required")
		return
	}
	count, err := conv.ParseInt32(req.FormValue("count"))
	if err != nil || count < 0 {
		flashErrorRedirect(w, req, "/animals", "Count must be a non-negative number")
		return
	}
	params := reservedb.AddAnimalParams{
		Name:        name,
		SpeciesID:   speciesID,
		Status:      req.FormValue("status"),
		Count:       count,
		HabitatZone: zone,
		ImageUrl:    conv.StringToSql(conv.EmptyToNil(req.FormValue("image_url")), 512),
	}

	survey, err := action.reserveDBQ.LogAnimalSurvey(req.Context(), params)
	if err != nil {
		slog.Error("Failed to log animal survey", "animal", name, "error", err)
		flashErrorRedirect(w, req, "/animals", "Failed to save the animal record")
		return
	}
	if survey.Created {
		slog.Info("Added animal record", "animal", name, "animalID", survey.AnimalID)
	} else {
		slog.Info("Updated animal survey", "animal", name, "animalID", survey.AnimalID)
	}
	flashSuccessRedirect(w, req, "/animals", "Animal record saved")
}

type GetAnimalLookup struct {
	reserveDBQ *store.DBQ
}

func (action GetAnimalLookup) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	resp, errHTTP := action.getAnimalLookup(req)
	if errHTTP != nil {
		errHTTP.From("[getAnimalLookup]").WriteResponse(w)
		return
	}
	mustWriteJSON(w, req, resp)
}
func (action GetAnimalLookup) getAnimalLookup(req *http.Request) (reservejson.Lookups, *herr.HTTPError) {
	rows, err := action.reserveDBQ.AnimalLookup(req.Context(), action.reserveDBQ)
	if err != nil {
		return nil, herr.InternalServerError("Failed to fetch animal lookup", err).From("[AnimalLookup]")
	}
	resp := make(reservejson.Lookups, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, reservejson.Lookup{ID: row.ID, Name: row.Name})
	}
	return resp, nil
}
