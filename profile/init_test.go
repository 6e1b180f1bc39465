package profile

import "testing"

func TestMake(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		opts  []func(Config) Config
		mode  string
		path  string
		quiet bool
	}{
		{
			name: "zero base",
		},
		{
			name: "all options",
			opts: []func(Config) Config{
				WithMode("cpu"),
				WithPath("/tmp/profiles"),
				WithQuiet(true),
			},
			mode:  "cpu",
			path:  "/tmp/profiles",
			quiet: true,
		},
		{
			name: "last option wins",
			opts: []func(Config) Config{
				WithMode("cpu"),
				WithMode("heap"),
			},
			mode: "heap",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mode, path, quiet := Make(tt.opts...)()

			if mode != tt.mode || path != tt.path || quiet != tt.quiet {
				t.Errorf("expected (%q, %q, %v), got (%q, %q, %v)",
					tt.mode, tt.path, tt.quiet, mode, path, quiet)
			}
		})
	}
}

func TestStartWithoutMode(t *testing.T) {
	t.Parallel()

	ctrl := Make().Start()
	if ctrl == nil {
		t.Fatal("expected a stop handle")
	}

	ctrl.Stop()
}
