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
	"log/slog"
	"net/http"

	reservejson "github.com/wildhaven/reserve-console-go/json"
	"github.com/wildhaven/reserve-console-go/lib/herr"
	"github.com/wildhaven/reserve-console-go/store"
	"github.com/wildhaven/reserve-console-go/store/reservedb"
)

type GetVisitors struct {
	reserveDBQ *store.DBQ
}

func (action GetVisitors) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	resp, errHTTP := action.getVisitors(req)
	if errHTTP != nil {
		errHTTP.From("[getVisitors]").WriteResponse(w)
		return
	}
	mustWriteJSON(w, req, resp)
}
func (action GetVisitors) getVisitors(req *http.Request) (reservejson.Visitors, *herr.HTTPError) {
	sessionCtx, errHTTP := getSessionCtx(req)
	if errHTTP != nil {
		return nil, errHTTP.From("[getSessionCtx]")
	}
	if errHTTP = requireAdmin(sessionCtx); errHTTP != nil {
		return nil, errHTTP.From("[requireAdmin]")
	}
	rows, err := action.reserveDBQ.Visitors(req.Context(), action.reserveDBQ)
	if err != nil {
		// Availability over strictness for the listing pages. The page
		// renders an empty table and the failure lands in the log.
		slog.Error("Failed to fetch visitors", "error", err)
		return reservejson.Visitors{}, nil
	}
	resp := make(reservejson.Visitors, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, toJSONVisitor(row))
	}
	return resp, nil
}

type GetUserProfile struct {
	reserveDBQ *store.DBQ
}

func (action GetUserProfile) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	resp, errHTTP := action.getUserProfile(req)
	if errHTTP != nil {
		errHTTP.From("[getUserProfile]").WriteResponse(w)
		return
	}
	mustWriteJSON(w, req, resp)
}
func (action GetUserProfile) getUserProfile(req *http.Request) (reservejson.Visitor, *herr.HTTPError) {
	var empty reservejson.Visitor
	sessionCtx, errHTTP := getSessionCtx(req)
	if errHTTP != nil {
		return empty, errHTTP.From("[getSessionCtx]")
	}
	visitor, err := action.reserveDBQ.VisitorByEmail(req.Context(), action.reserveDBQ, sessionCtx.Claims.UserEmail())
	if err != nil {
		return empty, herr.NotFound("No visitor profile for this account", err).From("[VisitorByEmail]")
	}
	return toJSONVisitor(visitor), nil
}

func toJSONVisitor(row reservedb.Visitor) reservejson.Visitor {
	interests := []string{}
	if row.Interests.Valid {
		interests = splitList(row.Interests.String)
	}
	return reservejson.Visitor{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		Age:       row.Age,
		Gender:    row.Gender,
		Phone:     row.Phone,
		Address:   row.Address,
		City:      row.City,
		Pin:       row.Pin,
		Interests: interests,
		Created:   row.Created,
	}
}
