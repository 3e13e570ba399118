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
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	reservejson "github.com/wildhaven/reserve-console-go/json"
	"github.com/wildhaven/reserve-console-go/lib/cache"
	"github.com/wildhaven/reserve-console-go/lib/herr"
	"github.com/wildhaven/reserve-console-go/store"
	"github.com/wildhaven/reserve-console-go/store/reservedb"
)

type GetDashboard struct {
	reserveDBQ *store.DBQ
	dashCache  *cache.InMemory[reservejson.Dashboard]
}

// NewGetDashboard builds the dashboard handler with its TTL cache. The
// aggregates scan the whole TICKET table, so they get reused across
// requests rather than recomputed per page load.
func NewGetDashboard(reserveDBQ *store.DBQ, ttl time.Duration) GetDashboard {
	return GetDashboard{
		reserveDBQ: reserveDBQ,
		dashCache: cache.New[reservejson.Dashboard](ttl, func(ctx context.Context) (reservejson.Dashboard, error) {
			return fetchDashboard(ctx, reserveDBQ)
		}),
	}
}

func (action GetDashboard) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	resp, errHTTP := action.getDashboard(req)
	if errHTTP != nil {
		errHTTP.From("[getDashboard]").WriteResponse(w)
		return
	}
	mustWriteJSON(w, req, resp)
}
func (action GetDashboard) getDashboard(req *http.Request) (*reservejson.Dashboard, *herr.HTTPError) {
	sessionCtx, errHTTP := getSessionCtx(req)
	if errHTTP != nil {
		return nil, errHTTP.From("[getSessionCtx]")
	}
	if errHTTP = requireAdmin(sessionCtx); errHTTP != nil {
		return nil, errHTTP.From("[requireAdmin]")
	}
	dashboard, err := action.dashCache.Get(req.Context())
	if err != nil {
		return nil, herr.InternalServerError("Failed to compute dashboard", err).From("[Get]")
	}
	return dashboard, nil
}

func fetchDashboard(ctx context.Context, reserveDBQ *store.DBQ) (reservejson.Dashboard, error) {
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var today, month, total reservedb.BookingStatsRow
	var visitorCount int64

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		today, err = reserveDBQ.BookingStatsSince(groupCtx, reserveDBQ, startOfDay)
		return err
	})
	group.Go(func() error {
		var err error
		month, err = reserveDBQ.BookingStatsSince(groupCtx, reserveDBQ, startOfMonth)
		return err
	})
	group.Go(func() error {
		var err error
		total, err = reserveDBQ.BookingStatsSince(groupCtx, reserveDBQ, time.Time{})
		return err
	})
	group.Go(func() error {
		var err error
		visitorCount, err = reserveDBQ.CountVisitors(groupCtx, reserveDBQ)
		return err
	})
	if err := group.Wait(); err != nil {
		return reservejson.Dashboard{}, err
	}

	return reservejson.Dashboard{
		Today:              toJSONStats(today),
		Month:              toJSONStats(month),
		Total:              toJSONStats(total),
		RegisteredVisitors: visitorCount,
		GeneratedAt:        now,
	}, nil
}

func toJSONStats(row reservedb.BookingStatsRow) reservejson.BookingStats {
	return reservejson.BookingStats{
		Bookings: row.Bookings,
		Visitors: row.Visitors,
		Revenue:  row.Revenue,
	}
}
