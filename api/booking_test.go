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

package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wildhaven/reserve-console-go/auth"
	reservejson "github.com/wildhaven/reserve-console-go/json"
)

func TestPostBookingCreated(t *testing.T) {
	t.Parallel()
	mux, mock := newMuxAndMock(t)
	token := sessionTokenFor(t, 7, "Kiran Rao", "kiran@example.com", auth.RoleVisitor)

	mock.ExpectBegin()
	mock.ExpectQuery("from ZONE").
		WithArgs("Z-N").
		WillReturnRows(sqlmock.NewRows(
			[]string{"ID", "NAME", "AREA_SQKM", "CLIMATE", "CAMERA_TRAPS", "ACCESS_LEVEL", "PRIMARY_SPECIES"},
		).AddRow("Z-N", "Northern Grasslands", 412.5, "Semi-arid", 36, "guided", "Bengal Tiger"))
	mock.ExpectExec("insert into TICKET").
		WillReturnResult(sqlmock.NewResult(9, 1))
	mock.ExpectCommit()

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, withSession(postForm("/booking", url.Values{
		"contact":      {"+91-9800000001"},
		"safari_date":  {"2026-09-20"},
		"time_slot":    {"morning"},
		"zone":         {"Z-N"},
		"person_count": {"2"},
		"guide":        {"on"},
		"lunch":        {"on"},
	}), token))
	require.Equal(t, http.StatusCreated, w.Code)

	var resp reservejson.BookingConfirmation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, strings.HasPrefix(resp.BookingID, "WH-"), resp.BookingID)
	assert.InDelta(t, 3000.0, resp.BaseAmount, 0.001)
	assert.InDelta(t, 800.0, resp.ServicesAmount, 0.001)
	assert.InDelta(t, 684.0, resp.GstAmount, 0.001)
	assert.InDelta(t, 4484.0, resp.TotalAmount, 0.001)
	assert.Contains(t, resp.Status, "Booking confirmed")
	assert.Contains(t, resp.Status, resp.BookingID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostBookingUnknownZone(t *testing.T) {
	t.Parallel()
	mux, mock := newMuxAndMock(t)
	token := sessionTokenFor(t, 7, "Kiran Rao", "kiran@example.com", auth.RoleVisitor)

	mock.ExpectBegin()
	mock.ExpectQuery("from ZONE").
		WithArgs("Z-X").
		WillReturnRows(sqlmock.NewRows([]string{"ID"}))
	mock.ExpectRollback()

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, withSession(postForm("/booking", url.Values{
		"contact":      {"+91-9800000001"},
		"safari_date":  {"2026-09-20"},
		"time_slot":    {"morning"},
		"zone":         {"Z-X"},
		"person_count": {"2"},
	}), token))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "does not exist")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostBookingValidation(t *testing.T) {
	t.Parallel()
	mux, _ := newMuxAndMock(t)
	token := sessionTokenFor(t, 7, "Kiran Rao", "kiran@example.com", auth.RoleVisitor)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, withSession(postForm("/booking", url.Values{
		"contact":      {"+91-9800000001"},
		"safari_date":  {"2026-09-20"},
		"time_slot":    {"morning"},
		"zone":         {"Z-N"},
		"person_count": {"0"},
	}), token))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Person count")
}

func TestGetBookingsUsesSessionEmail(t *testing.T) {
	t.Parallel()
	mux, mock := newMuxAndMock(t)
	token := sessionTokenFor(t, 7, "Kiran Rao", "kiran@example.com", auth.RoleVisitor)

	mock.ExpectQuery("from TICKET").
		WithArgs("kiran@example.com").
		WillReturnRows(sqlmock.NewRows([]string{
			"ID", "BOOKING_ID", "VISITOR_NAME", "EMAIL", "CONTACT", "SAFARI_DATE", "TIME_SLOT", "ZONE",
			"PERSON_COUNT", "GUIDE", "CAMERA", "LUNCH", "TRANSPORT",
			"BASE_AMOUNT", "SERVICES_AMOUNT", "GST_AMOUNT", "TOTAL_AMOUNT", "STATUS", "CREATED",
		}).AddRow(
			9, "WH-1A2B3C4D", "Kiran Rao", "kiran@example.com", "+91-9800000001",
			time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC), "morning", "Z-N",
			2, true, false, true, false,
			3000.0, 800.0, 684.0, 4484.0, "confirmed", time.Now(),
		))

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, withSession(httptest.NewRequest(http.MethodGet, "/booking", nil), token))
	require.Equal(t, http.StatusOK, w.Code)

	var resp reservejson.Tickets
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "WH-1A2B3C4D", resp[0].BookingID)
	assert.InDelta(t, 4484.0, resp[0].TotalAmount, 0.001)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostFeedbackUnknownBooking(t *testing.T) {
	t.Parallel()
	mux, mock := newMuxAndMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("insert into FEEDBACK").
		WillReturnError(&mysql.MySQLError{Number: 1452, Message: "foreign key constraint fails"})
	mock.ExpectRollback()

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, postForm("/feedback", url.Values{
		"name":           {"Kiran Rao"},
		"email":          {"kiran@example.com"},
		"visit_date":     {"2026-08-20"},
		"booking_id":     {"WH-NOPE0000"},
		"rating_overall": {"4"},
	}))
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"),
		url.QueryEscape("Booking Id does not exist"))
	require.NoError(t, mock.ExpectationsWereMet())
}

// Feedback does not require a login, only a booking id.
func TestPostFeedbackAnonymous(t *testing.T) {
	t.Parallel()
	mux, mock := newMuxAndMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("insert into FEEDBACK").
		WillReturnResult(sqlmock.NewResult(4, 1))
	mock.ExpectCommit()

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, postForm("/feedback", url.Values{
		"name":           {"Kiran Rao"},
		"email":          {"kiran@example.com"},
		"visit_date":     {"2026-08-20"},
		"booking_id":     {"WH-1A2B3C4D"},
		"rating_overall": {"5"},
		"rating_guide":   {"4"},
		"sightings":      {"tiger", "peacock"},
		"recommend":      {"on"},
	}))
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "/feedback?success=")
	require.NoError(t, mock.ExpectationsWereMet())
}
