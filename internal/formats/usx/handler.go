package usx

import (
	"github.com/FocuswithJustin/versetab/core/ir"
	"github.com/FocuswithJustin/versetab/core/plugins"
)

// Handler implements plugins.FormatHandler for USX.
type Handler struct{}

// Manifest returns the plugin manifest for registration.
func Manifest() *plugins.Manifest {
	return &plugins.Manifest{
		PluginID:   "format.usx",
		Version:    "1.0.0",
		Format:     formatName,
		Extensions: []string{".usx"},
	}
}

// Register registers this plugin with the embedded registry.
func Register() {
	plugins.RegisterEmbeddedPlugin(&plugins.EmbeddedPlugin{
		Manifest: Manifest(),
		Format:   &Handler{},
	})
}

func init() {
	Register()
}

// Extract implements plugins.FormatHandler.
func (h *Handler) Extract(path string, data []byte) ([]ir.VerseRecord, error) {
	return parseUSX(path, data)
}
