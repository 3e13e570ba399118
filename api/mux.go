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
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"sync"
	"time"

	"github.com/wildhaven/reserve-console-go/auth"
	"github.com/wildhaven/reserve-console-go/conf"
	"github.com/wildhaven/reserve-console-go/lib/herr"
	"github.com/wildhaven/reserve-console-go/store"
	"github.com/wildhaven/reserve-console-go/store/actionlog"
	"github.com/wildhaven/reserve-console-go/store/reservedb"
)

func AddToMux(
	mux *http.ServeMux,
	cfg *conf.RMSConfig,
	db *store.DBQ,
	actionLogger *actionlog.Logger,
) *http.ServeMux {
	if mux == nil {
		mux = http.NewServeMux()
	}

	jwter := auth.JWTer{SecretKey: cfg.Core.JWTSecret}

	mux.Handle("POST /register",
		Adapt(
			PostRegister{db},
			RecoverFromPanic(),
			LogRequest(actionLogger),
			LimitRequestBytes(cfg.Core.MaxRequestBytes),
			// This endpoint does not consider the session cookie,
			// because the point of this is to make a new account.
		),
	)

	mux.Handle("POST /login",
		Adapt(
			PostLogin{db, cfg.Core.JWTSecret, cfg.Core.SessionTokenLifetime},
			RecoverFromPanic(),
			LogRequest(actionLogger),
			LimitRequestBytes(cfg.Core.MaxRequestBytes),
			// This endpoint does not require authentication, because
			// the point of this is to make a new session token.
		),
	)

	mux.Handle("GET /logout",
		Adapt(
			GetLogout{},
			RecoverFromPanic(),
			LogRequest(actionLogger),
			LimitRequestBytes(cfg.Core.MaxRequestBytes),
		),
	)

	mux.Handle("GET /api/auth",
		Adapt(
			GetAuth{},
			RecoverFromPanic(),
			// Unauthenticated callers get {"authenticated": false}
			OptionalAuthN(jwter),
			LogRequest(actionLogger),
			LimitRequestBytes(cfg.Core.MaxRequestBytes),
		),
	)

	mux.Handle("GET /visitors",
		Adapt(
			GetVisitors{db},
			RecoverFromPanic(),
			RequirePageAuthN(jwter),
			LogRequest(actionLogger),
			LimitRequestBytes(cfg.Core.MaxRequestBytes),
		),
	)

	mux.Handle("GET /user-profile",
		Adapt(
			GetUserProfile{db},
			RecoverFromPanic(),
			RequirePageAuthN(jwter),
			LogRequest(actionLogger),
			LimitRequestBytes(cfg.Core.MaxRequestBytes),
		),
	)

	mux.Handle("GET /animals",
		Adapt(
			GetAnimals{db, cfg.Core.CacheControlLong},
			RecoverFromPanic(),
			RequirePageAuthN(jwter),
			LogRequest(actionLogger),
			LimitRequestBytes(cfg.Core.MaxRequestBytes),
		),
	)

	mux.Handle("POST /addAnimal",
		Adapt(
			PostAddAnimal{db},
			RecoverFromPanic(),
			RequirePageAuthN(jwter),
			LogRequest(actionLogger),
			LimitRequestBytes(cfg.Core.MaxRequestBytes),
		),
	)

	mux.Handle("GET /staff",
		Adapt(
			GetStaff{db},
			RecoverFromPanic(),
			RequirePageAuthN(jwter),
			LogRequest(actionLogger),
			LimitRequestBytes(cfg.Core.MaxRequestBytes),
		),
	)

	mux.Handle("POST /addStaff",
		Adapt(
			PostAddStaff{db},
			RecoverFromPanic(),
			RequirePageAuthN(jwter),
			LogRequest(actionLogger),
			LimitRequestBytes(cfg.Core.MaxRequestBytes),
		),
	)

	mux.Handle("GET /zones",
		Adapt(
			GetZones{db},
			RecoverFromPanic(),
			RequirePageAuthN(jwter),
			LogRequest(actionLogger),
			LimitRequestBytes(cfg.Core.MaxRequestBytes),
		),
	)

	mux.Handle("POST /addZone",
		Adapt(
			PostAddZone{db},
			RecoverFromPanic(),
			RequirePageAuthN(jwter),
			LogRequest(actionLogger),
			LimitRequestBytes(cfg.Core.MaxRequestBytes),
		),
	)

	mux.Handle("GET /medical",
		Adapt(
			GetMedical{db},
			RecoverFromPanic(),
			RequirePageAuthN(jwter),
			LogRequest(actionLogger),
			LimitRequestBytes(cfg.Core.MaxRequestBytes),
		),
	)

	mux.Handle("POST /addMedicalCheckup",
		Adapt(
			PostAddCheckup{db},
			RecoverFromPanic(),
			RequirePageAuthN(jwter),
			LogRequest(actionLogger),
			LimitRequestBytes(cfg.Core.MaxRequestBytes),
		),
	)

	mux.Handle("POST /addTreatment",
		Adapt(
			PostAddTreatment{db},
			RecoverFromPanic(),
			RequirePageAuthN(jwter),
			LogRequest(actionLogger),
			LimitRequestBytes(cfg.Core.MaxRequestBytes),
		),
	)

	mux.Handle("POST /addFeedingLog",
		Adapt(
			PostAddFeedingLog{db},
			RecoverFromPanic(),
			RequirePageAuthN(jwter),
			LogRequest(actionLogger),
			LimitRequestBytes(cfg.Core.MaxRequestBytes),
		),
	)

	mux.Handle("GET /booking",
		Adapt(
			GetBookings{db},
			RecoverFromPanic(),
			RequirePageAuthN(jwter),
			LogRequest(actionLogger),
			LimitRequestBytes(cfg.Core.MaxRequestBytes),
		),
	)

	mux.Handle("POST /booking",
		Adapt(
			PostBooking{db},
			RecoverFromPanic(),
			RequirePageAuthN(jwter),
			LogRequest(actionLogger),
			LimitRequestBytes(cfg.Core.MaxRequestBytes),
		),
	)

	mux.Handle("POST /feedback",
		Adapt(
			PostFeedback{db},
			RecoverFromPanic(),
			// Feedback stays open to visitors who are no longer
			// logged in. Their booking id is the proof of visit.
			OptionalAuthN(jwter),
			LogRequest(actionLogger),
			LimitRequestBytes(cfg.Core.MaxRequestBytes),
		),
	)

	mux.Handle("GET /visitors-feedback",
		Adapt(
			GetFeedback{db},
			RecoverFromPanic(),
			RequirePageAuthN(jwter),
			LogRequest(actionLogger),
			LimitRequestBytes(cfg.Core.MaxRequestBytes),
		),
	)

	mux.Handle("GET /api/zones/{zoneID}",
		Adapt(
			GetZoneDetail{db},
			RecoverFromPanic(),
			RequireAPIAuthN(jwter),
			LogRequest(actionLogger),
			LimitRequestBytes(cfg.Core.MaxRequestBytes),
		),
	)

	mux.Handle("GET /api/animals/lookup",
		Adapt(
			GetAnimalLookup{db},
			RecoverFromPanic(),
			RequireAPIAuthN(jwter),
			LogRequest(actionLogger),
			LimitRequestBytes(cfg.Core.MaxRequestBytes),
		),
	)

	mux.Handle("GET /api/staff/lookup",
		Adapt(
			GetStaffLookup{db},
			RecoverFromPanic(),
			RequireAPIAuthN(jwter),
			LogRequest(actionLogger),
			LimitRequestBytes(cfg.Core.MaxRequestBytes),
		),
	)

	mux.Handle("POST /api/medical",
		Adapt(
			PostMedical{db},
			RecoverFromPanic(),
			RequireAPIAuthN(jwter),
			LogRequest(actionLogger),
			LimitRequestBytes(cfg.Core.MaxRequestBytes),
		),
	)

	mux.Handle("GET /api/dashboard",
		Adapt(
			NewGetDashboard(db, cfg.Core.DashboardCacheTTL),
			RecoverFromPanic(),
			RequireAPIAuthN(jwter),
			LogRequest(actionLogger),
			LimitRequestBytes(cfg.Core.MaxRequestBytes),
		),
	)

	AddBasicHandlers(mux)

	return mux
}

// AddBasicHandlers registers the unauthenticated utility endpoints. The
// healthcheck command depends on the ping endpoint.
func AddBasicHandlers(mux *http.ServeMux) *http.ServeMux {
	if mux == nil {
		mux = http.NewServeMux()
	}

	mux.HandleFunc("GET /",
		func(w http.ResponseWriter, req *http.Request) {
			http.Error(w, "Wildhaven Reserve Console", http.StatusOK)
		},
	)

	mux.HandleFunc("GET /api/ping",
		func(w http.ResponseWriter, req *http.Request) {
			http.Error(w, "ack", http.StatusOK)
		},
	)

	mux.HandleFunc("GET /api/debug/buildinfo",
		func(w http.ResponseWriter, req *http.Request) {
			bi := buildInfo()
			http.Error(w, bi.String(), http.StatusOK)
		},
	)

	return mux
}

var buildInfo = sync.OnceValue[debug.BuildInfo](func() debug.BuildInfo {
	bi, ok := debug.ReadBuildInfo()
	if ok {
		return *bi
	}
	// The conditions for this to happen aren't really possible, but returning an
	// empty struct instead is a good alternative. These values are just used for
	// informational purposes in the server anyway.
	slog.Info("Build info was unavailable, so an empty placeholder will be used instead")
	return debug.BuildInfo{}
})

type Adapter func(http.Handler) http.Handler

// responseWriter is a wrapper around http.ResponseWriter that lets us
// capture details about the response.
type responseWriter struct {
	http.ResponseWriter
	code int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.code = code
	rw.ResponseWriter.WriteHeader(code)
}

func LimitRequestBytes(maxRequestBytes int64) Adapter {
	return func(next http.Handler) http.Handler {
		return http.MaxBytesHandler(next, maxRequestBytes)
	}
}

func LogRequest(actionLogger *actionlog.Logger) Adapter {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			writ := &responseWriter{w, http.StatusOK}

			next.ServeHTTP(writ, r)

			username := "(unauthenticated)"
			var userID sql.NullInt32
			sessionCtx, _ := r.Context().Value(SessionContextKey).(SessionContext)
			if sessionCtx.Claims != nil {
				username = sessionCtx.Claims.UserName()
				if id := sessionCtx.Claims.UserID(); id >= 0 {
					userID = sql.NullInt32{Int32: int32(id), Valid: true}
				}
			}
			durationMicros := time.Since(start).Microseconds()

			if actionLogger != nil {
				actionLogger.Log(r.Context(), reservedb.AddActionLogParams{
					CreatedAt:      float64(start.UnixMicro()) / 1e6,
					ActionType:     "http_request",
					Method:         sql.NullString{String: r.Method, Valid: true},
					Path:           sql.NullString{String: r.URL.Path, Valid: true},
					Referrer:       sql.NullString{String: r.Referer(), Valid: r.Referer() != ""},
					UserID:         userID,
					UserName:       sql.NullString{String: username, Valid: true},
					Url:            sql.NullString{String: r.URL.String(), Valid: true},
					HttpStatus:     sql.NullInt16{Int16: int16(writ.code), Valid: true},
					DurationMicros: sql.NullInt64{Int64: durationMicros, Valid: true},
				})
			}

			slog.Debug(fmt.Sprintf("Served request for: %v %v ", r.Method, r.URL.Path),
				"duration", fmt.Sprintf("%.3fms", float64(durationMicros)/1000.0),
				"method", r.Method,
				"user", username,
				"code", writ.code,
			)
		})
	}
}

func RecoverFromPanic() Adapter {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					slog.Error("Recovered from panic", "err", err)
					debug.PrintStack()
					http.Error(w, "The server malfunctioned", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

type ContextKey string

const SessionContextKey ContextKey = "SessionContext"

type SessionContext struct {
	Claims *auth.SessionClaims
	Error  error
}

// sessionToken pulls the raw token out of a request, from the session
// cookie or, for API clients, from the Authorization header.
func sessionToken(r *http.Request) string {
	if cookie, err := r.Cookie(auth.SessionTokenCookieName); err == nil {
		return cookie.Value
	}
	return r.Header.Get("Authorization")
}

func OptionalAuthN(j auth.JWTer) Adapter {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := j.AuthenticateSessionToken(sessionToken(r))
			ctx := context.WithValue(r.Context(), SessionContextKey, SessionContext{
				Claims: claims,
				Error:  err,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequirePageAuthN is for browser-facing endpoints. A visitor with a bad or
// missing session gets bounced to the landing page rather than shown an
// error document.
func RequirePageAuthN(j auth.JWTer) Adapter {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := j.AuthenticateSessionToken(sessionToken(r))
			if err != nil || claims == nil {
				slog.Debug("Redirecting unauthenticated request", "path", r.URL.Path, "error", err)
				http.Redirect(w, r, "/", http.StatusSeeOther)
				return
			}
			ctx := context.WithValue(r.Context(), SessionContextKey, SessionContext{
				Claims: claims,
				Error:  err,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func RequireAPIAuthN(j auth.JWTer) Adapter {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := j.AuthenticateSessionToken(sessionToken(r))
			if err != nil || claims == nil {
				herr.Unauthorized("Invalid session token", err).WriteResponse(w)
				return
			}
			ctx := context.WithValue(r.Context(), SessionContextKey, SessionContext{
				Claims: claims,
				Error:  err,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func Adapt(handler http.Handler, adapters ...Adapter) http.Handler {
	for i := range adapters {
		adapter := adapters[len(adapters)-1-i] // range in reverse
		handler = adapter(handler)
	}
	return handler
}
