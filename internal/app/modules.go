package app

import (
	"github.com/nfrund/flexe/internal/module"
	"github.com/nfrund/flexe/internal/modules/posts"
)

// NewModules creates and returns the list of all active modules for the application.
// This is the single source of truth for which features are enabled.
func NewModules() []module.Module {
	return []module.Module{
		// Add new application modules here.
		posts.New(),
	}
}
