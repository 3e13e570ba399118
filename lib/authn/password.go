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

package authn

import (
	"errors"
	"strings"
	"sync"

	"github.com/wildhaven/reserve-console-go/lib/argon2id"
)

// argonLocker disallows concurrent calls into the Argon2id hash algorithm.
// Our parameters require the algorithm to use 64 MiB of memory, and a burst
// of registrations or logins could otherwise push the process well past the
// memory available to its container.
var argonLocker sync.Mutex

// Verify reports whether password matches the stored Argon2id value.
func Verify(password, storedValue string) (isValid bool, err error) {
	if !strings.HasPrefix(storedValue, "$argon2id") {
		return false, errors.New("unsupported non-argon2id stored password")
	}
	argonLocker.Lock()
	defer argonLocker.Unlock()
	return argon2id.ComparePasswordAndHash(password, storedValue)
}

// NewSalted hashes a password for storage.
func NewSalted(password string) string {
	argonLocker.Lock()
	defer argonLocker.Unlock()
	return argon2id.CreateHash(password, argon2id.DefaultParams)
}

// NewSaltedDevOnly uses fast parameters. Not for production credentials.
func NewSaltedDevOnly(password string) string {
	return argon2id.CreateHash(password, argon2id.DevelopmentParams)
}
