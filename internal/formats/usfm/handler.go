package usfm

import (
	"github.com/FocuswithJustin/versetab/core/ir"
	"github.com/FocuswithJustin/versetab/core/plugins"
)

// Handler implements plugins.FormatHandler for USFM and SFM.
type Handler struct{}

// Manifest returns the plugin manifest for registration.
func Manifest() *plugins.Manifest {
	return &plugins.Manifest{
		PluginID:   "format.usfm",
		Version:    "1.0.0",
		Format:     formatName,
		Extensions: []string{".usfm", ".sfm"},
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
	return parseUSFM(path, data)
}
