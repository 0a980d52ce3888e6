package router

import "go.uber.org/fx"

var RouterModule = fx.Options(
	fx.Provide(NewAPIV1Router),
	fx.Provide(NewSessionRouter),
	fx.Provide(NewProjectRouter),
	fx.Provide(NewAPIKeyRouter),
	fx.Provide(NewIssueRouter),
)
