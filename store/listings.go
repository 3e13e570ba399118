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
	"time"

	"github.com/wildhaven/reserve-console-go/store/filter"
	"github.com/wildhaven/reserve-console-go/store/reservedb"
)

// The filtered listings build their SQL dynamically through the filter
// package, so they live here rather than in the hand-written reservedb
// queries. Column order in each scan matches the entity's select list in
// filter/entities.go.

func (l DBQ) FilteredAnimals(ctx context.Context, db reservedb.DBTX, p filter.AnimalsParams) ([]reservedb.Animal, error) {
	start := time.Now()
	query, args := filter.Animals(p)
	rows, err := db.QueryContext(ctx, query, args...)
	logQuery("FilteredAnimals", start, err)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []reservedb.Animal
	for rows.Next() {
		var i reservedb.Animal
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
	return items, rows.Err()
}

func (l DBQ) FilteredStaff(ctx context.Context, db reservedb.DBTX, p filter.StaffParams) ([]reservedb.StaffMember, error) {
	start := time.Now()
	query, args := filter.Staff(p)
	rows, err := db.QueryContext(ctx, query, args...)
	logQuery("FilteredStaff", start, err)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []reservedb.StaffMember
	for rows.Next() {
		var i reservedb.StaffMember
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
	return items, rows.Err()
}

func (l DBQ) FilteredZones(ctx context.Context, db reservedb.DBTX, p filter.ZonesParams) ([]reservedb.Zone, error) {
	start := time.Now()
	query, args := filter.Zones(p)
	rows, err := db.QueryContext(ctx, query, args...)
	logQuery("FilteredZones", start, err)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []reservedb.Zone
	for rows.Next() {
		var i reservedb.Zone
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
	return items, rows.Err()
}

func (l DBQ) FilteredCheckups(ctx context.Context, db reservedb.DBTX, p filter.CheckupsParams) ([]reservedb.MedicalCheckup, error) {
	start := time.Now()
	query, args := filter.Checkups(p)
	rows, err := db.QueryContext(ctx, query, args...)
	logQuery("FilteredCheckups", start, err)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []reservedb.MedicalCheckup
	for rows.Next() {
		var i reservedb.MedicalCheckup
		if err := rows.Scan(
			&i.ID,
			&i.Animal,
			&i.CheckupDate,
			&i.VetName,
			&i.WeightKg,
			&i.TemperatureC,
			&i.Notes,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

func (l DBQ) FilteredTreatments(ctx context.Context, db reservedb.DBTX, p filter.TreatmentsParams) ([]reservedb.MedicalTreatment, error) {
	start := time.Now()
	query, args := filter.Treatments(p)
	rows, err := db.QueryContext(ctx, query, args...)
	logQuery("FilteredTreatments", start, err)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []reservedb.MedicalTreatment
	for rows.Next() {
		var i reservedb.MedicalTreatment
		if err := rows.Scan(
			&i.ID,
			&i.Animal,
			&i.Diagnosis,
			&i.Treatment,
			&i.StartDate,
			&i.EndDate,
			&i.VetName,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

func (l DBQ) FilteredFeedingLogs(ctx context.Context, db reservedb.DBTX, p filter.FeedingLogsParams) ([]reservedb.FeedingLog, error) {
	start := time.Now()
	query, args := filter.FeedingLogs(p)
	rows, err := db.QueryContext(ctx, query, args...)
	logQuery("FilteredFeedingLogs", start, err)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []reservedb.FeedingLog
	for rows.Next() {
		var i reservedb.FeedingLog
		if err := rows.Scan(
			&i.ID,
			&i.Animal,
			&i.Staff,
			&i.FedAt,
			&i.FoodType,
			&i.QuantityKg,
			&i.Notes,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
