package pantheon

import (
	"github.com/SpartanDigitalDotNet/pantheon-legends/engines/dow"
	"github.com/SpartanDigitalDotNet/pantheon-legends/engines/wyckoff"
	"github.com/SpartanDigitalDotNet/pantheon-legends/internal/registry"
)

// CreateDefault returns a Pantheon wired with the built-in demo engines.
// These produce structured sample facts, not real market analysis; they exist
// so the framework is runnable out of the box.
func CreateDefault(opts ...Option) *Pantheon {
	reg := registry.New()
	// Registration of fresh engines into a fresh registry cannot collide.
	_ = reg.Register(dow.New(nil))
	_ = reg.Register(wyckoff.New(nil))
	return New(reg, opts...)
}
