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
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/wildhaven/reserve-console-go/lib/herr"
)

func readBodyAs[T any](req *http.Request) (T, *herr.HTTPError) {
	empty := *new(T)
	defer shut(req.Body)
	bodyBytes, err := io.ReadAll(req.Body)
	if err != nil {
		return empty, herr.BadRequest("Failed to read request body", err).From("[io.ReadAll]")
	}
	var t T
	err = json.Unmarshal(bodyBytes, &t)
	if err != nil {
		return empty, herr.BadRequest("Failed to unmarshal request body", err).From("[Unmarshal]")
	}
	return t, nil
}

func mustWriteJSON(w http.ResponseWriter, req *http.Request, resp any) (success bool) {
	marshalled, err := json.Marshal(resp)
	if err != nil {
		herr.InternalServerError("Failed to marshal JSON", err).From("[Marshal]").WriteResponse(w)
		return false
	}
	w.Header().Set("Content-Type", "application/json")
	_, err = w.Write(marshalled)
	if err != nil {
		herr.InternalServerError("Failed to write JSON", err).From("[Write]").WriteResponse(w)
		return false
	}
	return true
}

func getSessionCtx(req *http.Request) (SessionContext, *herr.HTTPError) {
	sessionCtx, found := req.Context().Value(SessionContextKey).(SessionContext)
	if !found {
		return SessionContext{}, herr.InternalServerError("This endpoint has been misconfigured", nil)
	}
	return sessionCtx, nil
}

// requireAdmin is the second authorization level, after the session
// middleware. Admin-only page handlers call this after getSessionCtx.
func requireAdmin(sessionCtx SessionContext) *herr.HTTPError {
	if sessionCtx.Claims == nil || !sessionCtx.Claims.IsAdmin() {
		return herr.Forbidden("The requestor is not an administrator", nil)
	}
	return nil
}

// flashErrorRedirect sends the browser back to the form it came from, with
// the failure message in the query string for the page to display.
func flashErrorRedirect(w http.ResponseWriter, req *http.Request, path, message string) {
	http.Redirect(w, req, path+"?error="+url.QueryEscape(message), http.StatusSeeOther)
}

func flashSuccessRedirect(w http.ResponseWriter, req *http.Request, path, message string) {
	http.Redirect(w, req, path+"?success="+url.QueryEscape(message), http.StatusSeeOther)
}

// parseDate reads a form date, accepting the HTML date and datetime-local
// input formats first.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02T15:04", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// joinList serializes a multi-valued form field the same way the visitor
// registration form does, comma-separated.
func joinList(vals []string) string {
	return strings.Join(vals, ",")
}

func splitList(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}

func shut(c io.Closer) {
	err := c.Close()
	if err != nil {
		slog.Error("Failed to close Closer", "error", err)
	}
}
