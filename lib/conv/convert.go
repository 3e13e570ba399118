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

package conv

import (
	"database/sql"
	"strconv"
)

type IntLike interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

func FormatInt[T IntLike](i T) string {
	return strconv.FormatInt(int64(i), 10)
}

func ParseInt16(s string) (int16, error) {
	i, err := strconv.ParseInt(s, 10, 16)
	if err != nil {
		return 0, err
	}
	return int16(i), nil
}

func ParseInt32(s string) (int32, error) {
	i, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(i), nil
}

func ParseInt64(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func ParseFloat64(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

func SqlToInt32(v sql.NullInt32) *int32 {
	if v.Valid {
		return &v.Int32
	}
	return nil
}

func SqlToString(v sql.NullString) *string {
	if v.Valid {
		return &v.String
	}
	return nil
}

// StringToSql converts a string pointer into a sql.NullString.
//
// The string will be truncated at maxLength, if maxLength > 0. This uses the
// fact that Go and our MariaDB tables both encode strings in UTF-8.
func StringToSql(s *string, maxLength int) sql.NullString {
	if s == nil || *s == "" {
		return sql.NullString{}
	}
	val := *s
	if maxLength > 0 && len(val) > maxLength {
		val = val[:maxLength]
	}
	return sql.NullString{String: val, Valid: true}
}

func EmptyToNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
