// Package embedded links every format handler into the binary. Importing
// it runs each handler's init registration with core/plugins.
package embedded

import (
	"github.com/FocuswithJustin/versetab/core/plugins"

	_ "github.com/FocuswithJustin/versetab/internal/formats/usfm"
	_ "github.com/FocuswithJustin/versetab/internal/formats/usx"
)

// Extensions returns the source extensions the compiled-in handlers accept.
func Extensions() []string {
	return plugins.SupportedExtensions()
}
