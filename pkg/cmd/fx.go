package cmd

import "go.uber.org/fx"

// Module wires the sqlschema CLI's commands and runs the application,
// following the teacher's pkg/cmd fx module shape.
var Module = fx.Module("cli",
	fx.Provide(
		fx.Annotate(schema, fx.ResultTags(`group:"commands"`)),
		fx.Annotate(migration, fx.ResultTags(`group:"commands"`)),
	),
	fx.Invoke(Run),
)
