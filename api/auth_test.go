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
	"database/sql"
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
	"github.com/wildhaven/reserve-console-go/lib/authn"
)

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func cookieByName(t *testing.T, resp *http.Response, name string) *http.Cookie {
	t.Helper()
	for _, cookie := range resp.Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	t.Fatalf("no cookie named %v in response", name)
	return nil
}

func visitorRow(passwordHash string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"ID", "NAME", "AADHAR_ID", "EMAIL", "AGE", "GENDER", "PHONE",
		"ADDRESS", "CITY", "PIN", "INTERESTS", "PASSWORD", "CREATED", "UPDATED",
	}).AddRow(
		7, "Kiran Rao", "123412341234", "kiran@example.com", 34, "male", "+91-9800000001",
		"12 Lake Road", "Pune", "411001", "birding,photography", passwordHash, time.Now(), time.Now(),
	)
}

func TestLoginSetsSessionCookies(t *testing.T) {
	t.Parallel()
	mux, mock := newMuxAndMock(t)
	hash := authn.NewSaltedDevOnly("correct horse battery staple")

	mock.ExpectQuery("from VISITOR").
		WithArgs("kiran@example.com").
		WillReturnRows(visitorRow(hash))

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, postForm("/login", url.Values{
		"email":    {"Kiran@Example.com"},
		"password": {"correct horse battery staple"},
		"role":     {"visitor"},
	}))
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/", w.Header().Get("Location"))

	resp := w.Result()
	sessionCookie := cookieByName(t, resp, auth.SessionTokenCookieName)
	assert.True(t, sessionCookie.HttpOnly)
	markerCookie := cookieByName(t, resp, auth.LoggedInCookieName)
	assert.False(t, markerCookie.HttpOnly)

	claims, err := auth.JWTer{SecretKey: testJWTSecret}.AuthenticateSessionToken(sessionCookie.Value)
	require.NoError(t, err)
	assert.Equal(t, "Kiran Rao", claims.UserName())
	assert.Equal(t, "kiran@example.com", claims.UserEmail())
	assert.Equal(t, int64(7), claims.UserID())
	assert.False(t, claims.IsAdmin())
}

func TestLoginAdmin(t *testing.T) {
	t.Parallel()
	mux, mock := newMuxAndMock(t)
	hash := authn.NewSaltedDevOnly("admin-password")

	mock.ExpectQuery("from ADMIN").
		WithArgs("asha@wildhaven.example").
		WillReturnRows(sqlmock.NewRows([]string{"ID", "NAME", "EMAIL", "PASSWORD", "ROLE"}).
			AddRow(1, "Asha Verma", "asha@wildhaven.example", hash, "admin"))

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, postForm("/login", url.Values{
		"email":    {"asha@wildhaven.example"},
		"password": {"admin-password"},
		"role":     {"admin"},
	}))
	require.Equal(t, http.StatusSeeOther, w.Code)

	sessionCookie := cookieByName(t, w.Result(), auth.SessionTokenCookieName)
	claims, err := auth.JWTer{SecretKey: testJWTSecret}.AuthenticateSessionToken(sessionCookie.Value)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin())
}

// An unknown account and a wrong password must produce byte-identical
// redirects, so the login form leaks nothing about which emails exist.
func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	t.Parallel()

	unknownMux, unknownMock := newMuxAndMock(t)
	unknownMock.ExpectQuery("from VISITOR").
		WithArgs("nobody@example.com").
		WillReturnError(sql.ErrNoRows)
	unknownW := httptest.NewRecorder()
	unknownMux.ServeHTTP(unknownW, postForm("/login", url.Values{
		"email":    {"nobody@example.com"},
		"password": {"whatever"},
	}))

	wrongPassMux, wrongPassMock := newMuxAndMock(t)
	wrongPassMock.ExpectQuery("from VISITOR").
		WithArgs("kiran@example.com").
		WillReturnRows(visitorRow(authn.NewSaltedDevOnly("the real password")))
	wrongPassW := httptest.NewRecorder()
	wrongPassMux.ServeHTTP(wrongPassW, postForm("/login", url.Values{
		"email":    {"kiran@example.com"},
		"password": {"not the real password"},
	}))

	require.Equal(t, http.StatusSeeOther, unknownW.Code)
	require.Equal(t, http.StatusSeeOther, wrongPassW.Code)
	assert.Equal(t, unknownW.Header().Get("Location"), wrongPassW.Header().Get("Location"))
	assert.Contains(t, unknownW.Header().Get("Location"), url.QueryEscape("Invalid email or password"))
	assert.Empty(t, unknownW.Result().Cookies())
	assert.Empty(t, wrongPassW.Result().Cookies())
}

func TestRegisterPasswordMismatch(t *testing.T) {
	t.Parallel()
	mux, _ := newMuxAndMock(t)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, postForm("/register", url.Values{
		"name":             {"Kiran Rao"},
		"aadhar_id":        {"123412341234"},
		"email":            {"kiran@example.com"},
		"age":              {"34"},
		"phone":            {"+91-9800000001"},
		"password":         {"one password"},
		"confirm_password": {"another password"},
	}))
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "/register?error=")
	assert.Contains(t, w.Header().Get("Location"), url.QueryEscape("Passwords do not match"))
}

func TestRegisterDuplicateAccount(t *testing.T) {
	t.Parallel()
	mux, mock := newMuxAndMock(t)

	mock.ExpectExec("insert into VISITOR").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, postForm("/register", url.Values{
		"name":             {"Kiran Rao"},
		"aadhar_id":        {"123412341234"},
		"email":            {"kiran@example.com"},
		"age":              {"34"},
		"phone":            {"+91-9800000001"},
		"password":         {"some password"},
		"confirm_password": {"some password"},
	}))
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "/register?error=")
	assert.Contains(t, w.Header().Get("Location"), url.QueryEscape("already exists"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterSuccess(t *testing.T) {
	t.Parallel()
	mux, mock := newMuxAndMock(t)

	mock.ExpectExec("insert into VISITOR").
		WillReturnResult(sqlmock.NewResult(12, 1))

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, postForm("/register", url.Values{
		"name":             {"Meera Pillai"},
		"aadhar_id":        {"567856785678"},
		"email":            {"meera@example.com"},
		"age":              {"27"},
		"gender":           {"female"},
		"phone":            {"+91-9800000004"},
		"city":             {"Kochi"},
		"interests":        {"trekking", "birding"},
		"password":         {"some password"},
		"confirm_password": {"some password"},
	}))
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "/login?success=")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLogoutClearsCookies(t *testing.T) {
	t.Parallel()
	mux, _ := newMuxAndMock(t)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/logout", nil))
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/", w.Header().Get("Location"))

	resp := w.Result()
	assert.Negative(t, cookieByName(t, resp, auth.SessionTokenCookieName).MaxAge)
	assert.Negative(t, cookieByName(t, resp, auth.LoggedInCookieName).MaxAge)
}

func TestGetAuth(t *testing.T) {
	t.Parallel()
	mux, _ := newMuxAndMock(t)

	t.Run("anonymous", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth", nil))
		require.Equal(t, http.StatusOK, w.Code)
		var resp reservejson.AuthInfo
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Authenticated)
	})

	t.Run("logged in admin", func(t *testing.T) {
		t.Parallel()
		token := sessionTokenFor(t, 1, "Asha Verma", "asha@wildhaven.example", auth.RoleAdmin)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, withSession(httptest.NewRequest(http.MethodGet, "/api/auth", nil), token))
		require.Equal(t, http.StatusOK, w.Code)
		var resp reservejson.AuthInfo
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Authenticated)
		assert.Equal(t, "Asha Verma", resp.User)
		assert.True(t, resp.Admin)
	})
}
