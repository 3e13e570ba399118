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

package json

import "time"

type Checkups []Checkup

type Checkup struct {
	ID           int32     `json:"id"`
	AnimalID     int32     `json:"animal_id"`
	CheckupDate  time.Time `json:"checkup_date"`
	VetName      string    `json:"vet_name"`
	WeightKg     *float64  `json:"weight_kg,omitzero"`
	TemperatureC *float64  `json:"temperature_c,omitzero"`
	Notes        *string   `json:"notes,omitzero"`
}

type Treatments []Treatment

type Treatment struct {
	ID        int32      `json:"id"`
	AnimalID  int32      `json:"animal_id"`
	Diagnosis string     `json:"diagnosis"`
	Treatment string     `json:"treatment"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	VetName   string     `json:"vet_name"`
}

type FeedingLogs []FeedingLog

type FeedingLog struct {
	ID         int32     `json:"id"`
	AnimalID   int32     `json:"animal_id"`
	StaffID    int32     `json:"staff_id"`
	FedAt      time.Time `json:"fed_at"`
	FoodType   string    `json:"food_type"`
	QuantityKg float64   `json:"quantity_kg"`
	Notes      *string   `json:"notes,omitzero"`
}

// MedicalRecord is the request body for the JSON medical submission
// endpoint. Kind selects which record type gets inserted, and only the
// fields for that kind are read.
type MedicalRecord struct {
	Kind string `json:"kind"`

	AnimalID int32 `json:"animal_id"`

	// checkup
	CheckupDate  *time.Time `json:"checkup_date,omitempty"`
	VetName      string     `json:"vet_name,omitzero"`
	WeightKg     *float64   `json:"weight_kg,omitempty"`
	TemperatureC *float64   `json:"temperature_c,omitempty"`

	// treatment
	Diagnosis string     `json:"diagnosis,omitzero"`
	Treatment string     `json:"treatment,omitzero"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`

	// feeding
	StaffID    int32      `json:"staff_id,omitzero"`
	FedAt      *time.Time `json:"fed_at,omitempty"`
	FoodType   string     `json:"food_type,omitzero"`
	QuantityKg float64    `json:"quantity_kg,omitzero"`

	Notes string `json:"notes,omitzero"`
}

// MedicalRecordCreated acknowledges a JSON medical submission.
type MedicalRecordCreated struct {
	Kind string `json:"kind"`
	ID   int64  `json:"id"`
}
