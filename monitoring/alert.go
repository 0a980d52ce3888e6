// Copyright (C) 2025 l3montree GmbH
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

package monitoring

import (
	"log/slog"

	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
)

// Alert forwards err to the error tracking backend, tagged with the api
// component, and logs it. A nil event id means the event was not delivered,
// either because tracking is disabled or because the event was dropped.
func Alert(message string, err error) {
	var evID *sentry.EventID
	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("component", "trackforge-api")
		evID = sentry.CurrentHub().CaptureException(errors.Wrap(err, message))
	})
	slog.Error("critical error encountered", "msg", message, "error", err, "eventID", evID)
}

// RecoverAndAlert reports a recovered panic. The message carries the stack
// captured at the recovery site.
func RecoverAndAlert(message string, err error) {
	var evID *sentry.EventID
	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("component", "trackforge-api")
		evID = sentry.CurrentHub().Recover(err)
	})
	slog.Error("recovered from panic", "msg", message, "error", err, "eventID", evID)
}
