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

package json

import "time"

// Dashboard is the admin landing page's aggregate view. The three stats
// windows share a shape so the page can render them uniformly.
type Dashboard struct {
	Today              BookingStats `json:"today"`
	Month              BookingStats `json:"month"`
	Total              BookingStats `json:"total"`
	RegisteredVisitors int64        `json:"registered_visitors"`
	GeneratedAt        time.Time    `json:"generated_at"`
}

type BookingStats struct {
	Bookings int64   `json:"bookings"`
	Visitors int64   `json:"visitors"`
	Revenue  float64 `json:"revenue"`
}
