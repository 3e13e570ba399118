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

// Package argon2id creates and verifies Argon2id password hashes in the
// standard "$argon2id$v=..$m=..,t=..,p=..$salt$key" encoded form.
package argon2id

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
)

var (
	ErrInvalidHash         = errors.New("argon2id: hash is not in the correct format")
	ErrIncompatibleVariant = errors.New("argon2id: incompatible variant of argon2")
	ErrIncompatibleVersion = errors.New("argon2id: incompatible version of argon2")
)

type Params struct {
	// Memory is the amount of memory used by the algorithm, in KiB.
	Memory uint32

	// Iterations is the number of passes over the memory.
	Iterations uint32

	// Parallelism is the number of threads used by the algorithm.
	Parallelism uint8

	SaltLength uint32
	KeyLength  uint32
}

// DefaultParams is what we use for newly created password hashes.
var DefaultParams = &Params{
	Memory:      64 * 1024,
	Iterations:  3,
	Parallelism: uint8(runtime.NumCPU()),
	SaltLength:  16,
	KeyLength:   32,
}

// DevelopmentParams hash quickly. Do not use these for real credentials.
var DevelopmentParams = &Params{
	Memory:      64 * 1024,
	Iterations:  1,
	Parallelism: uint8(runtime.NumCPU()),
	SaltLength:  16,
	KeyLength:   32,
}

func CreateHash(password string, params *Params) string {
	salt := make([]byte, params.SaltLength)
	// rand.Read never returns an error
	_, _ = rand.Read(salt)

	key := argon2.IDKey([]byte(password), salt, params.Iterations, params.Memory, params.Parallelism, params.KeyLength)

	b64Salt := base64.RawStdEncoding.EncodeToString(salt)
	b64Key := base64.RawStdEncoding.EncodeToString(key)

	return fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, params.Memory, params.Iterations, params.Parallelism, b64Salt, b64Key,
	)
}

// ComparePasswordAndHash reports whether the password matches the encoded hash.
func ComparePasswordAndHash(password, hash string) (match bool, err error) {
	match, _, err = CheckHash(password, hash)
	return match, err
}

// CheckHash is like ComparePasswordAndHash, except it also exposes the
// parameters that the stored hash was created with. This can be useful if you
// want to update your hash params over time.
func CheckHash(password, hash string) (match bool, params *Params, err error) {
	params, salt, key, err := DecodeHash(hash)
	if err != nil {
		return false, nil, fmt.Errorf("[DecodeHash]: %w", err)
	}
	otherKey := argon2.IDKey([]byte(password), salt, params.Iterations, params.Memory, params.Parallelism, params.KeyLength)
	if subtle.ConstantTimeCompare(key, otherKey) == 1 {
		return true, params, nil
	}
	return false, params, nil
}

// DecodeHash strictly parses an encoded hash into its params, salt, and key.
// Any junk in the encoding is an error, since accepting it would mean the
// verified key no longer covers the whole stored value.
func DecodeHash(hash string) (params *Params, salt, key []byte, err error) {
	vals := strings.Split(hash, "$")
	if len(vals) != 6 || vals[0] != "" {
		return nil, nil, nil, ErrInvalidHash
	}
	if vals[1] != "argon2id" {
		return nil, nil, nil, ErrIncompatibleVariant
	}

	version, err := decodeInts(vals[2], "v")
	if err != nil {
		return nil, nil, nil, err
	}
	if version[0] != argon2.Version {
		return nil, nil, nil, ErrIncompatibleVersion
	}

	mtp, err := decodeInts(vals[3], "m", "t", "p")
	if err != nil {
		return nil, nil, nil, err
	}
	params = &Params{
		Memory:      uint32(mtp[0]),
		Iterations:  uint32(mtp[1]),
		Parallelism: uint8(mtp[2]),
	}

	salt, err = decodeBase64(vals[4])
	if err != nil {
		return nil, nil, nil, err
	}
	params.SaltLength = uint32(len(salt))

	key, err = decodeBase64(vals[5])
	if err != nil {
		return nil, nil, nil, err
	}
	params.KeyLength = uint32(len(key))

	return params, salt, key, nil
}

// decodeInts parses a string like "m=65536,t=1,p=2" given keys "m", "t", "p".
// Keys must appear exactly, in order, and values must be pure integers.
func decodeInts(s string, keys ...string) ([]int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != len(keys) {
		return nil, ErrInvalidHash
	}
	vals := make([]int, len(keys))
	for i, part := range parts {
		rest, found := strings.CutPrefix(part, keys[i]+"=")
		if !found {
			return nil, ErrInvalidHash
		}
		v, err := strconv.Atoi(rest)
		if err != nil {
			return nil, ErrInvalidHash
		}
		vals[i] = v
	}
	return vals, nil
}

// decodeBase64 is a strict unpadded base64 decode. The standard decoder
// silently skips \r and \n, which we must not accept in a stored hash.
func decodeBase64(s string) ([]byte, error) {
	if strings.ContainsAny(s, "\r\n \t") {
		return nil, ErrInvalidHash
	}
	b, err := base64.RawStdEncoding.Strict().DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidHash, err)
	}
	return b, nil
}
