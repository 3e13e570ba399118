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

type Tickets []Ticket

type Ticket struct {
	BookingID      string    `json:"booking_id"`
	VisitorName    string    `json:"visitor_name"`
	Email          string    `json:"email"`
	Contact        string    `json:"contact"`
	SafariDate     time.Time `json:"safari_date"`
	TimeSlot       string    `json:"time_slot"`
	Zone           string    `json:"zone"`
	PersonCount    int32     `json:"person_count"`
	Guide          bool      `json:"guide"`
	Camera         bool      `json:"camera"`
	Lunch          bool      `json:"lunch"`
	Transport      bool      `json:"transport"`
	BaseAmount     float64   `json:"base_amount"`
	ServicesAmount float64   `json:"services_amount"`
	GstAmount      float64   `json:"gst_amount"`
	TotalAmount    float64   `json:"total_amount"`
	Status         string    `json:"status"`
	Created        time.Time `json:"created,omitzero"`
}

// BookingConfirmation is the response for a successful safari booking.
type BookingConfirmation struct {
	BookingID      string  `json:"booking_id"`
	BaseAmount     float64 `json:"base_amount"`
	ServicesAmount float64 `json:"services_amount"`
	GstAmount      float64 `json:"gst_amount"`
	TotalAmount    float64 `json:"total_amount"`
	Status         string  `json:"status"`
}

type Feedbacks []Feedback

type Feedback struct {
	ID             int32     `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	VisitDate      time.Time `json:"visit_date"`
	BookingID      string    `json:"booking_id"`
	RatingOverall  int32     `json:"rating_overall"`
	RatingGuide    *int32    `json:"rating_guide,omitzero"`
	RatingFacility *int32    `json:"rating_facility,omitzero"`
	Sightings      []string  `json:"sightings"`
	LikedMost      []string  `json:"liked_most"`
	Comments       *string   `json:"comments,omitzero"`
	Recommend      bool      `json:"recommend"`
	Submitted      time.Time `json:"submitted,omitzero"`
}
