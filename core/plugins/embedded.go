// Package plugins provides the registry of format handlers compiled into
// versetab. Each handler registers itself from an init function; the
// internal/embedded package imports all of them.
package plugins

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/FocuswithJustin/versetab/core/ir"
)

// FormatHandler turns the raw bytes of one source file into verse records.
// Implementations create fresh engine state for every call.
type FormatHandler interface {
	// Extract parses data and returns the records in document order.
	// path is only used for error messages.
	Extract(path string, data []byte) ([]ir.VerseRecord, error)
}

// Manifest describes a registered format.
type Manifest struct {
	PluginID   string   // e.g. "format.usx"
	Version    string   // handler version
	Format     string   // display name, e.g. "USX"
	Extensions []string // lower-case extensions including the dot
}

// EmbeddedPlugin wraps a format handler with its manifest.
type EmbeddedPlugin struct {
	Manifest *Manifest
	Format   FormatHandler
}

// embeddedRegistry holds all embedded plugins by plugin ID.
var embeddedRegistry = make(map[string]*EmbeddedPlugin)

// RegisterEmbeddedPlugin registers an embedded plugin by its plugin ID.
func RegisterEmbeddedPlugin(p *EmbeddedPlugin) {
	if p.Manifest != nil && p.Manifest.PluginID != "" && p.Format != nil {
		embeddedRegistry[p.Manifest.PluginID] = p
	}
}

// GetEmbeddedPlugin returns an embedded plugin by ID, or nil if not found.
func GetEmbeddedPlugin(id string) *EmbeddedPlugin {
	return embeddedRegistry[id]
}

// ListEmbeddedPlugins returns all registered plugins sorted by ID.
func ListEmbeddedPlugins() []*EmbeddedPlugin {
	result := make([]*EmbeddedPlugin, 0, len(embeddedRegistry))
	for _, p := range embeddedRegistry {
		result = append(result, p)
	}
	slices.SortFunc(result, func(a, b *EmbeddedPlugin) int {
		return strings.Compare(a.Manifest.PluginID, b.Manifest.PluginID)
	})
	return result
}

// ClearEmbeddedRegistry clears all registered embedded plugins (for testing).
func ClearEmbeddedRegistry() {
	embeddedRegistry = make(map[string]*EmbeddedPlugin)
}

// ForPath returns the plugin handling path's extension (case-insensitive).
func ForPath(path string) (*EmbeddedPlugin, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return nil, false
	}
	for _, p := range ListEmbeddedPlugins() {
		if slices.Contains(p.Manifest.Extensions, ext) {
			return p, true
		}
	}
	return nil, false
}

// SupportedExtensions returns every registered extension, sorted.
func SupportedExtensions() []string {
	var exts []string
	for _, p := range embeddedRegistry {
		exts = append(exts, p.Manifest.Extensions...)
	}
	slices.Sort(exts)
	return slices.Compact(exts)
}
