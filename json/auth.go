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

// AuthInfo says who the requestor is, based on their session token. An
// unauthenticated caller gets {"authenticated": false} and nothing else.
type AuthInfo struct {
	Authenticated bool   `json:"authenticated"`
	User          string `json:"user,omitzero"`
	Email         string `json:"email,omitzero"`
	Role          string `json:"role,omitzero"`
	Admin         bool   `json:"admin"`
}
