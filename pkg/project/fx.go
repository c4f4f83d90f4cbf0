package project

import "go.uber.org/fx"

const configFileName = "sqlschema.yaml"

// Module provides the project configuration, loaded from sqlschema.yaml in
// the working directory if present, following the teacher's
// pkg/config/fx.go pattern of an fx-provided, optionally-absent config file.
var Module = fx.Module("project", fx.Provide(
	func() (*Config, error) {
		return LoadConfigFile(configFileName)
	},
))
