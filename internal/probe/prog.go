package probe

import "github.com/confkit/confkit/internal/toolchain"

// CheckProg reports whether an executable is available on PATH,
// honoring the configuration's environment overrides.
func (c *Context) CheckProg(prog string) bool {
	ok := len(toolchain.Which(c.Config.Env, prog)) > 0
	c.logResult("executable "+prog, ok)
	return ok
}
