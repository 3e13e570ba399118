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
)

type GetBookings struct {
	reserveDBQ *store.DBQ
}

func (action GetBookings) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	resp, errHTTP := action.getBookings(req)
	if errHTTP != nil {
		errHTTP.From("[getBookings]").WriteResponse(w)
		return
	}
	mustWriteJSON(w, req, resp)
}
func (action GetBookings) getBookings(req *http.Request) (reservejson.Tickets, *herr.HTTPError) {
	sessionCtx, errHTTP := getSessionCtx(req)
	if errHTTP != nil {
		return nil, errHTTP.From("[getSessionCtx]")
	}
	// Visitors only ever see their own tickets. The session email is the
	// lookup key, not anything client-provided.
	rows, err := action.reserveDBQ.TicketsByEmail(req.Context(), action.reserveDBQ, sessionCtx.Claims.UserEmail())
	if err != nil {
		slog.Error("Failed to fetch tickets", "error", err)
		return reservejson.Tickets{}, nil
	}
	resp := make(reservejson.Tickets, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, reservejson.Ticket{
			BookingID:      row.BookingID,
			VisitorName:    row.VisitorName,
			Email:          row.Email,
			Contact:        row.Contact,
			SafariDate:     row.SafariDate,
			TimeSlot:       row.TimeSlot,
			Zone:           row.Zone,
			PersonCount:    row.PersonCount,
			Guide:          row.Guide,
			Camera:         row.Camera,
			Lunch:          row.Lunch,
			Transport:      row.Transport,
			BaseAmount:     row.BaseAmount,
			ServicesAmount: row.ServicesAmount,
			GstAmount:      row.GstAmount,
			TotalAmount:    row.TotalAmount,
			Status:         row.Status,
			Created:        row.Created,
		})
	}
	return resp, nil
}

type PostBooking struct {
	reserveDBQ *store.DBQ
}

func (action PostBooking) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	resp, errHTTP := action.postBooking(req)
	if errHTTP != nil {
		errHTTP.From("[postBooking]").WriteResponse(w)
		return
	}
	w.WriteHeader(http.StatusCreated)
	mustWriteJSON(w, req, resp)
}
func (action PostBooking) postBooking(req *http.Request) (reservejson.BookingConfirmation, *herr.HTTPError) {
	var empty reservejson.BookingConfirmation
	sessionCtx, errHTTP := getSessionCtx(req)
	if errHTTP != nil {
		return empty, errHTTP.From("[getSessionCtx]")
	}
	if err := req.ParseForm(); err != nil {
		return empty, herr.BadRequest("Failed to parse form", err)
	}

	visitorName := req.FormValue("visitor_name")
	if visitorName == "" {
		visitorName = sessionCtx.Claims.UserName()
	}
	contact := req.FormValue("contact")
	zone := req.FormValue("zone")
	timeSlot := req.FormValue("time_slot")
	if contact == "" || zone == "" || timeSlot == "" {
		return empty, herr.BadRequest("Contact, zone and time slot are required", nil)
	}
	safariDate, err := parseDate(req.FormValue("safari_date"))
	if err != nil {
		return empty, herr.BadRequest("Safari date is invalid", err)
	}
	personCount, err := conv.ParseInt32(req.FormValue("person_count"))
	if err != nil || personCount <= 0 {
		return empty, herr.BadRequest("Person count must be a positive number", err)
	}

	booking, err := action.reserveDBQ.BookSafariTicket(req.Context(), store.BookSafariTicketParams{
		VisitorName: visitorName,
		Email:       sessionCtx.Claims.UserEmail(),
		Contact:     contact,
		SafariDate:  safariDate,
		TimeSlot:    timeSlot,
		Zone:        zone,
		PersonCount: personCount,
		Guide:       req.FormValue("guide") != "",
		Camera:      req.FormValue("camera") != "",
		Lunch:       req.FormValue("lunch") != "",
		Transport:   req.FormValue("transport") != "",
	})
	if err != nil {
		if errors.Is(err, store.ErrUnknownZone) {
			return empty, herr.BadRequest("The selected safari zone does not exist", err).SetExpectedError()
		}
		return empty, herr.InternalServerError("Failed to book safari ticket", err).From("[BookSafariTicket]")
	}
	slog.Info("Booked safari ticket",
		"bookingID", booking.BookingID,
		"zone", zone,
		"persons", personCount,
		"total", booking.TotalAmount,
	)
	return reservejson.BookingConfirmation{
		BookingID:      booking.BookingID,
		BaseAmount:     booking.BaseAmount,
		ServicesAmount: booking.ServicesAmount,
		GstAmount:      booking.GstAmount,
		TotalAmount:    booking.TotalAmount,
		Status:         booking.Status,
	}, nil
}
