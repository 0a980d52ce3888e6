// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.
package databasetypes

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
)

// Secret is an opaque value stored verbatim in the database and returned
// verbatim over the API, but never rendered into logs or format strings.
// Any %s/%v formatting and any slog attribute yields "[redacted]".
type Secret string

const redacted = "[redacted]"

func (s Secret) String() string {
	return redacted
}

func (s Secret) LogValue() slog.Value {
	return slog.StringValue(redacted)
}

func (s Secret) Format(f fmt.State, verb rune) {
	fmt.Fprint(f, redacted)
}

// Reveal returns the actual value. Call sites are easy to audit this way.
func (s Secret) Reveal() string {
	return string(s)
}

func (s Secret) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *Secret) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*s = Secret(v)
	case []byte:
		*s = Secret(v)
	default:
		return errors.New("type assertion to string failed")
	}
	return nil
}

// MarshalJSON keeps the verbatim value: the API contract is that key values
// are readable by their owner. Only logs redact.
func (s Secret) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (s *Secret) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*s = Secret(v)
	return nil
}

func (Secret) GormDataType() string {
	return "text"
}
