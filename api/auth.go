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
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/wildhaven/reserve-console-go/auth"
	reservejson "github.com/wildhaven/reserve-console-go/json"
	"github.com/wildhaven/reserve-console-go/lib/authn"
	"github.com/wildhaven/reserve-console-go/lib/conv"
	"github.com/wildhaven/reserve-console-go/store"
	"github.com/wildhaven/reserve-console-go/store/reservedb"
)

type PostRegister struct {
	reserveDBQ *store.DBQ
}

func (action PostRegister) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	// This endpoint is unauthenticated, as the point of this is to take a
	// registration form and create a new visitor account.
	err := req.ParseForm()
	if err != nil {
		flashErrorRedirect(w, req, "/register", "Invalid form submission")
		return
	}

	name := strings.TrimSpace(req.FormValue("name"))
	aadharID := strings.TrimSpace(req.FormValue("aadhar_id"))
	email := strings.TrimSpace(strings.ToLower(req.FormValue("email")))
	phone := strings.TrimSpace(req.FormValue("phone"))
	password := req.FormValue("password")
	confirm := req.FormValue("confirm_password")

	if name == "" || aadharID == "" || email == "" || phone == "" || password == "" {
		flashErrorRedirect(w, req, "/register", "All required fields must be filled in")
		return
	}
	if password != confirm {
		flashErrorRedirect(w, req, "/register", "Passwords do not match")
		return
	}
	age, err := conv.ParseInt32(req.FormValue("age"))
	if err != nil || age <= 0 {
		flashErrorRedirect(w, req, "/register", "Age must be a positive number")
		return
	}

	params := reservedb.AddVisitorParams{
		Name:      name,
		AadharID:  aadharID,
		Email:     email,
		Age:       age,
		Gender:    req.FormValue("gender"),
		Phone:     phone,
		Address:   req.FormValue("address"),
		City:      req.FormValue("city"),
		Pin:       req.FormValue("pin"),
		Interests: conv.StringToSql(conv.EmptyToNil(joinList(req.Form["interests"])), 1024),
		Password:  authn.NewSalted(password),
	}
	visitorID, err := action.reserveDBQ.RegisterVisitor(req.Context(), params)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			flashErrorRedirect(w, req, "/register", "An account with this email or Aadhar id already exists")
			return
		}
		slog.Error("Failed to register visitor", "error", err)
		flashErrorRedirect(w, req, "/register", "Registration failed. Please try again")
		return
	}
	slog.Info("Registered new visitor", "visitorID", visitorID)
	flashSuccessRedirect(w, req, "/login", "Registration successful. Please log in")
}

type PostLogin struct {
	reserveDBQ      *store.DBQ
	jwtSecret       string
	sessionLifetime time.Duration
}

// loginFailed is deliberately the same for a missing account and a wrong
// password, so that the form gives no account enumeration signal.
func loginFailed(w http.ResponseWriter, req *http.Request, internal error) {
	slog.Info("Failed login attempt", "error", internal)
	flashErrorRedirect(w, req, "/login", "Invalid email or password")
}

func (action PostLogin) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	// This endpoint is unauthenticated, as the point of this is to take an
	// email and password to create a new session token.
	err := req.ParseForm()
	if err != nil {
		flashErrorRedirect(w, req, "/login", "Invalid form submission")
		return
	}
	email := strings.TrimSpace(strings.ToLower(req.FormValue("email")))
	password := req.FormValue("password")
	role := req.FormValue("role")
	if role != auth.RoleAdmin {
		role = auth.RoleVisitor
	}

	var userID int64
	var name, storedHash string
	switch role {
	case auth.RoleAdmin:
		admin, err := action.reserveDBQ.AdminByEmail(req.Context(), action.reserveDBQ, email)
		if err != nil {
			loginFailed(w, req, fmt.Errorf("admin login for unknown email %v: %w", email, err))
			return
		}
		userID, name, storedHash = int64(admin.ID), admin.Name, admin.Password
	default:
		visitor, err := action.reserveDBQ.VisitorByEmail(req.Context(), action.reserveDBQ, email)
		if err != nil {
			loginFailed(w, req, fmt.Errorf("visitor login for unknown email %v: %w", email, err))
			return
		}
		userID, name, storedHash = int64(visitor.ID), visitor.Name, visitor.Password
	}

	correct, err := authn.Verify(password, storedHash)
	if !correct {
		loginFailed(w, req, fmt.Errorf("bad password for valid user %v", email))
		return
	}
	if err != nil {
		slog.Error("Failed to verify password", "error", err)
		flashErrorRedirect(w, req, "/login", "Login failed. Please try again")
		return
	}

	expiration := time.Now().Add(action.sessionLifetime)
	token, err := auth.JWTer{SecretKey: action.jwtSecret}.
		CreateSessionToken(userID, name, email, role, expiration)
	if err != nil {
		slog.Error("Failed to create session token", "error", err)
		flashErrorRedirect(w, req, "/login", "Login failed. Please try again")
		return
	}
	slog.Info("Successful login", "email", email, "role", role)

	maxAge := int(action.sessionLifetime.Milliseconds() / 1000)
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionTokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	// The marker cookie is readable by page scripts, so they can show
	// logged-in navigation without holding the actual token.
	http.SetCookie(w, &http.Cookie{
		Name:     auth.LoggedInCookieName,
		Value:    "true",
		Path:     "/",
		MaxAge:   maxAge,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, req, "/", http.StatusSeeOther)
}

type GetLogout struct{}

func (action GetLogout) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionTokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	http.SetCookie(w, &http.Cookie{
		Name:   auth.LoggedInCookieName,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
	http.Redirect(w, req, "/", http.StatusSeeOther)
}

type GetAuth struct{}

func (action GetAuth) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	// This endpoint is unauthenticated. Callers without a valid session
	// just get told they aren't logged in.
	resp := reservejson.AuthInfo{}
	sessionCtx, found := req.Context().Value(SessionContextKey).(SessionContext)
	if !found || sessionCtx.Error != nil || sessionCtx.Claims == nil {
		mustWriteJSON(w, req, resp)
		return
	}
	claims := sessionCtx.Claims
	resp.Authenticated = true
	resp.User = claims.UserName()
	resp.Email = claims.UserEmail()
	resp.Role = claims.Role
	resp.Admin = claims.IsAdmin()
	mustWriteJSON(w, req, resp)
}
