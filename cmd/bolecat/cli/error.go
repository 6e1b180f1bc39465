package cli

import "github.com/ardnew/bole"

// Sentinel errors returned by bolecat commands.
//
//nolint:gochecknoglobals
var (
	// ErrBadRule reports a malformed --rule argument.
	ErrBadRule = bole.MakeErrorf("malformed channel rule")
	// ErrBadFormat reports an unrecognized --format preset.
	ErrBadFormat = bole.MakeErrorf("unrecognized format preset")
	// ErrWhereCompile reports a --where expression that failed to compile.
	ErrWhereCompile = bole.MakeErrorf("compile where expression")
	// ErrWhereEval reports a --where expression that failed against a line.
	ErrWhereEval = bole.MakeErrorf("evaluate where expression")
	// ErrConfigLoad reports an unreadable configuration file.
	ErrConfigLoad = bole.MakeErrorf("load configuration file")
)
