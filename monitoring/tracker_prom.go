// Copyright 2025 l3montree UG (haftungsbeschraenkt).
// SPDX-License-Identifier: 	AGPL-3.0-or-later
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ProjectsCreated = promauto.NewCounter(prometheus.CounterOpts{
	Name: "trackforge_projects_created_total",
	Help: "Number of projects created",
})

var ProjectsDeleted = promauto.NewCounter(prometheus.CounterOpts{
	Name: "trackforge_projects_deleted_total",
	Help: "Number of projects deleted",
})

var APIKeysCreated = promauto.NewCounter(prometheus.CounterOpts{
	Name: "trackforge_api_keys_created_total",
	Help: "Number of API keys created, standalone or inline with a new project",
})

var IssuesCreated = promauto.NewCounter(prometheus.CounterOpts{
	Name: "trackforge_issues_created_total",
	Help: "Number of issues created",
})

var IssuesDeleted = promauto.NewCounter(prometheus.CounterOpts{
	Name: "trackforge_issues_deleted_total",
	Help: "Number of issues deleted",
})
