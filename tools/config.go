package tools

import "context"

// Config is the base configuration embedded by every tool.
type Config struct {
	// title the default title of the tool
	title string
	// description the default description of the tool
	description string
	startHook   StartHook
	endHook     EndHook
	errorHook   ErrorHook
}

func (c *Config) SetTitle(v string) {
	c.title = v
}

func (c Config) Title() string {
	return c.title
}

func (c *Config) SetDescription(v string) {
	c.description = v
}

func (c Config) Description() string {
	return c.description
}

func (c *Config) SetStartHook(fn StartHook) {
	c.startHook = fn
}

func (c *Config) SetEndHook(fn EndHook) {
	c.endHook = fn
}

func (c *Config) SetErrorHook(fn ErrorHook) {
	c.errorHook = fn
}

// Start fires the start hook if registered.
func (c Config) Start(ctx context.Context, input any) {
	if c.startHook != nil {
		c.startHook(ctx, c.title, input)
	}
}

// End fires the end hook if registered.
func (c Config) End(ctx context.Context, input, output any) {
	if c.endHook != nil {
		c.endHook(ctx, c.title, input, output)
	}
}

// Error fires the error hook if registered.
func (c Config) Error(ctx context.Context, input any, err error) {
	if c.errorHook != nil {
		c.errorHook(ctx, c.title, input, err)
	}
}
