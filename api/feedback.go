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
	"github.com/wildhaven/reserve-console-go/store/reservedb"
)

type PostFeedback struct {
	reserveDBQ *store.DBQ
}

func (action PostFeedback) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	// Feedback is open to anonymous visitors. A valid booking id is the
	// only proof of visit required.
	if err := req.ParseForm(); err != nil {
		flashErrorRedirect(w, req, "/feedback", "Invalid form submission")
		return
	}

	name := req.FormValue("name")
	email := req.FormValue("email")
	bookingID := req.FormValue("booking_id")
	if name == "" || email == "" || bookingID == "" {
		flashErrorRedirect(w, req, "/feedback", "Name, email and booking id are required")
		return
	}
	visitDate, err := parseDate(req.FormValue("visit_date"))
	if err != nil {
		flashErrorRedirect(w, req, "/feedback", "Visit date is invalid")
		return
	}
	ratingOverall, err := conv.ParseInt32(req.FormValue("rating_overall"))
	if err != nil || ratingOverall < 1 || ratingOverall > 5 {
		flashErrorRedirect(w, req, "/feedback", "Overall rating must be between 1 and 5")
		return
	}

	params := reservedb.AddFeedbackParams{
		Name:          name,
		Email:         email,
		VisitDate:     visitDate,
		BookingID:     bookingID,
		RatingOverall: ratingOverall,
		Sightings:     conv.StringToSql(conv.EmptyToNil(joinList(req.Form["sightings"])), 1024),
		LikedMost:     conv.StringToSql(conv.EmptyToNil(joinList(req.Form["liked_most"])), 1024),
		Comments:      conv.StringToSql(conv.EmptyToNil(req.FormValue("comments")), 2048),
		Recommend:     req.FormValue("recommend") != "",
	}
	if guide := int32Param(req.Form, "rating_guide"); guide != nil {
		params.RatingGuide = sql.NullInt32{Int32: *guide, Valid: true}
	}
	if facility := int32Param(req.Form, "rating_facility"); facility != nil {
		params.RatingFacility = sql.NullInt32{Int32: *facility, Valid: true}
	}

	feedbackID, err := action.reserveDBQ.SubmitFeedback(req.Context(), params)
	if err != nil {
		if errors.Is(err, store.ErrUnknownBooking) {
			flashErrorRedirect(w, req, "/feedback", store.ErrUnknownBooking.Error())
			return
		}
		slog.Error("Failed to submit feedback", "bookingID", bookingID, "error", err)
		flashErrorRedirect(w, req, "/feedback", "Failed to submit feedback. Please try again")
		return
	}
	slog.Info("Received visitor feedback", "feedbackID", feedbackID, "bookingID", bookingID)
	flashSuccessRedirect(w, req, "/feedback", "Thank you for your feedback")
}

type GetFeedback struct {
	reserveDBQ *store.DBQ
}

func (action GetFeedback) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	resp, errHTTP := action.getFeedback(req)
	if errHTTP != nil {
		errHTTP.From("[getFeedback]").WriteResponse(w)
		return
	}
	mustWriteJSON(w, req, resp)
}
func (action GetFeedback) getFeedback(req *http.Request) (reservejson.Feedbacks, *herr.HTTPError) {
	sessionCtx, errHTTP := getSessionCtx(req)
	if errHTTP != nil {
		return nil, errHTTP.From("[getSessionCtx]")
	}
	if errHTTP = requireAdmin(sessionCtx); errHTTP != nil {
		return nil, errHTTP.From("[requireAdmin]")
	}
	rows, err := action.reserveDBQ.AllFeedback(req.Context(), action.reserveDBQ)
	if err != nil {
		slog.Error("Failed to fetch feedback", "error", err)
		return reservejson.Feedbacks{}, nil
	}
	resp := make(reservejson.Feedbacks, 0, len(rows))
	for _, row := range rows {
		feedback := reservejson.Feedback{
			ID:            row.ID,
			Name:          row.Name,
			Email:         row.Email,
			VisitDate:     row.VisitDate,
			BookingID:     row.BookingID,
			RatingOverall: row.RatingOverall,
			Sightings:     []string{},
			LikedMost:     []string{},
			Comments:      conv.SqlToString(row.Comments),
			Recommend:     row.Recommend,
			Submitted:     row.Submitted,
		}
		feedback.RatingGuide = conv.SqlToInt32(row.RatingGuide)
		feedback.RatingFacility = conv.SqlToInt32(row.RatingFacility)
		if row.Sightings.Valid {
			feedback.Sightings = splitList(row.Sightings.String)
		}
		if row.LikedMost.Valid {
			feedback.LikedMost = splitList(row.LikedMost.String)
		}
		resp = append(resp, feedback)
	}
	return resp, nil
}
