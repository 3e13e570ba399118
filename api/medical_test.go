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
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wildhaven/reserve-console-go/auth"
	reservejson "github.com/wildhaven/reserve-console-go/json"
)

func postJSON(path, body, token string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return withSession(req, token)
}

func TestPostMedicalCheckup(t *testing.T) {
	t.Parallel()
	mux, mock := newMuxAndMock(t)
	token := sessionTokenFor(t, 1, "Asha Verma", "asha@wildhaven.example", auth.RoleAdmin)

	mock.ExpectExec("insert into MEDICAL_CHECKUP").
		WillReturnResult(sqlmock.NewResult(21, 1))

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, postJSON("/api/medical",
		`{"kind":"checkup","animal_id":3,"vet_name":"Dr. Rao","weight_kg":182.5}`, token))
	require.Equal(t, http.StatusCreated, w.Code)

	var resp reservejson.MedicalRecordCreated
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "checkup", resp.Kind)
	assert.EqualValues(t, 21, resp.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostMedicalUnknownKind(t *testing.T) {
	t.Parallel()
	mux, _ := newMuxAndMock(t)
	token := sessionTokenFor(t, 1, "Asha Verma", "asha@wildhaven.example", auth.RoleAdmin)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, postJSON("/api/medical",
		`{"kind":"surgery","animal_id":3}`, token))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "surgery")
}

func TestPostMedicalRequiresAdmin(t *testing.T) {
	t.Parallel()
	mux, _ := newMuxAndMock(t)
	token := sessionTokenFor(t, 7, "Kiran Rao", "kiran@example.com", auth.RoleVisitor)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, postJSON("/api/medical",
		`{"kind":"checkup","animal_id":3,"vet_name":"Dr. Rao"}`, token))
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetMedicalSelectsKind(t *testing.T) {
	t.Parallel()
	mux, mock := newMuxAndMock(t)
	token := sessionTokenFor(t, 1, "Asha Verma", "asha@wildhaven.example", auth.RoleAdmin)

	mock.ExpectQuery("from FEEDING_LOG").
		WillReturnRows(sqlmock.NewRows(
			[]string{"ID", "ANIMAL", "STAFF", "FED_AT", "FOOD_TYPE", "QUANTITY_KG", "NOTES"},
		).AddRow(5, 3, 2, time.Now(), "meat", 12.5, nil))

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, withSession(
		httptest.NewRequest(http.MethodGet, "/medical?kind=feeding", nil), token))
	require.Equal(t, http.StatusOK, w.Code)

	var resp reservejson.FeedingLogs
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "meat", resp[0].FoodType)
	assert.InDelta(t, 12.5, resp[0].QuantityKg, 0.001)
	require.NoError(t, mock.ExpectationsWereMet())
}
