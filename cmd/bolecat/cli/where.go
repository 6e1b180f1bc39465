package cli

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/ardnew/bole/cmd/bolecat/parser"
)

// whereEnv builds the expression environment for one parsed line.
//
// The environment exposes the line's fields to --where expressions:
//
//	level    severity name ("" for raw lines)
//	severity numeric severity (-1 for raw lines)
//	channel  dot-separated logger name
//	message  message text
//	file     source file from the call site
//	line     source line number
//	raw      the unparsed input line
func whereEnv(l parser.Line) map[string]any {
	level, severity := "", -1
	if l.Structured() {
		level, severity = l.Level.String(), int(l.Level)
	}

	return map[string]any{
		"level":    level,
		"severity": severity,
		"channel":  l.Channel,
		"message":  l.Message,
		"file":     l.Site.File,
		"line":     l.Site.Line,
		"raw":      l.Raw,
	}
}

// compileWhere compiles a --where expression against the line
// environment. The expression must produce a boolean.
func compileWhere(source string) (*vm.Program, error) {
	program, err := expr.Compile(source,
		expr.Env(whereEnv(parser.Line{})),
		expr.AsBool(),
	)
	if err != nil {
		return nil, ErrWhereCompile.Wrap(err)
	}

	return program, nil
}

// evalWhere reports whether the line satisfies the compiled expression.
func evalWhere(program *vm.Program, l parser.Line) (bool, error) {
	out, err := vm.Run(program, whereEnv(l))
	if err != nil {
		return false, ErrWhereEval.Wrap(err)
	}

	keep, ok := out.(bool)
	if !ok {
		return false, ErrWhereEval.Wrapf("result is %T, not bool", out)
	}

	return keep, nil
}
