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

// Package actionlog records notable console actions (logins, bookings,
// record changes) to the ACTION_LOG table, off the request path.
package actionlog

import (
	"context"
	"log/slog"
	"time"

	"github.com/wildhaven/reserve-console-go/store"
	"github.com/wildhaven/reserve-console-go/store/reservedb"
)

const (
	workQueueMaxLength = 1024
	insertDeadline     = 10 * time.Second
)

type Logger struct {
	work                chan reservedb.AddActionLogParams
	dbq                 *store.DBQ
	enabled             bool
	synchronousForTests bool
}

func NewLogger(
	ctx context.Context,
	dbq *store.DBQ,
	enabled bool,
	synchronousForTests bool,
) *Logger {
	logger := &Logger{
		work:                make(chan reservedb.AddActionLogParams, workQueueMaxLength),
		dbq:                 dbq,
		enabled:             enabled,
		synchronousForTests: synchronousForTests,
	}
	go logger.startWorker(ctx)
	return logger
}

func (l *Logger) Log(ctx context.Context, record reservedb.AddActionLogParams) {
	if l.enabled {
		if l.synchronousForTests {
			l.writeRow(ctx, record)
		} else {
			l.work <- record
		}
	}
}

func (l *Logger) Close() {}

func (l *Logger) startWorker(ctx context.Context) {
	for row := range l.work {
		l.writeRow(ctx, row)
	}
	slog.Info("actionlog.Logger worker finished")
}

func (l *Logger) writeRow(ctx context.Context, row reservedb.AddActionLogParams) {
	// The passed-in context gets cancelled soon after SIGINT. A timeout
	// context gives a final row a chance to land before the server quits.
	ctx, cancel := context.WithTimeout(ctx, insertDeadline)
	defer cancel()
	_, err := l.dbq.AddActionLog(ctx, l.dbq, row)
	if err != nil {
		slog.Error("failed to add action log to db", "error", err)
	}
}
