package runtime

import (
	"context"
	"fmt"
	"io"
	"os"

	"autoupdater.dev/autoupdater/internal/config"
	"autoupdater.dev/autoupdater/internal/output"
)

// Context provides access to settings and output for commands
type Context struct {
	context.Context
	Settings config.Settings
	Splog    *output.Splog
}

// NewContext creates a new context from already loaded settings
func NewContext(ctx context.Context, settings config.Settings, splog *output.Splog) *Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Context{
		Context:  ctx,
		Settings: settings,
		Splog:    splog,
	}
}

// GetContext loads settings and opens the status printer writing to w.
// Callers must Close the returned context.
func GetContext(ctx context.Context, w io.Writer) (*Context, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	splog, err := output.NewSplogWithConfig(w, settings.LogFile)
	if err != nil {
		return nil, err
	}
	applyColorOverride(splog)

	return NewContext(ctx, settings, splog), nil
}

// Close flushes and closes the log file, if any
func (c *Context) Close() error {
	return c.Splog.Close()
}

func applyColorOverride(splog *output.Splog) {
	switch {
	case os.Getenv("NO_COLOR") != "":
		splog.SetColor(false)
	case os.Getenv(output.EnvColor) == "always":
		splog.SetColor(true)
	case os.Getenv(output.EnvColor) == "never":
		splog.SetColor(false)
	}
}
