package catalog

import (
	"slices"
	"strings"

	"github.com/nao1215/osintnexus/internal/model"
)

// Tool describes one mock analysis capability inside a module.
type Tool struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Status      model.ToolStatus `json:"status"`
	Category    string           `json:"category"`
}

// Module is a thematic grouping of tools.
type Module struct {
	// ID is the route identifier, e.g. "osint".
	ID string `json:"id"`

	// Name is the short display name, e.g. "OSINT" or "Darknet".
	Name string `json:"name"`

	Title       string `json:"title"`
	Description string `json:"description"`

	// Color is the accent color as a #RRGGBB hex string.
	Color string `json:"color"`

	// Icon is the symbolic icon name. Glyph is its terminal rendering.
	Icon  string `json:"icon"`
	Glyph string `json:"-"`

	Tools []Tool `json:"tools"`
}

// Tool returns the tool with the given name. Matching is exact.
func (m Module) Tool(name string) (Tool, bool) {
	for _, t := range m.Tools {
		if t.Name == name {
			return t, true
		}
	}
	return Tool{}, false
}

// ToolNames returns the tool names in catalog order.
func (m Module) ToolNames() []string {
	names := make([]string, len(m.Tools))
	for i, t := range m.Tools {
		names[i] = t.Name
	}
	return names
}

// FilterTools returns the tools whose name or description contains query,
// ignoring case. An empty or blank query returns every tool.
func (m Module) FilterTools(query string) []Tool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return slices.Clone(m.Tools)
	}
	var out []Tool
	for _, t := range m.Tools {
		if strings.Contains(strings.ToLower(t.Name), q) ||
			strings.Contains(strings.ToLower(t.Description), q) {
			out = append(out, t)
		}
	}
	return out
}

// index maps module ids to their position in modules.
var index = func() map[string]int {
	idx := make(map[string]int, len(modules))
	for i, m := range modules {
		idx[m.ID] = i
	}
	return idx
}()

// Lookup returns the module with the given id.
func Lookup(id string) (Module, bool) {
	i, ok := index[id]
	if !ok {
		return Module{}, false
	}
	return clone(modules[i]), true
}

// Has reports whether id names a catalog module.
func Has(id string) bool {
	_, ok := index[id]
	return ok
}

// All returns every module in display order. The result is a copy and may
// be modified by the caller.
func All() []Module {
	out := make([]Module, len(modules))
	for i, m := range modules {
		out[i] = clone(m)
	}
	return out
}

// IDs returns the module ids in display order.
func IDs() []string {
	ids := make([]string, len(modules))
	for i, m := range modules {
		ids[i] = m.ID
	}
	return ids
}

// ModuleOf returns the id of the module that owns the named tool.
func ModuleOf(toolName string) (string, bool) {
	for _, m := range modules {
		if _, ok := m.Tool(toolName); ok {
			return m.ID, true
		}
	}
	return "", false
}

func clone(m Module) Module {
	m.Tools = slices.Clone(m.Tools)
	return m
}

// ShortName returns the compact display name, e.g. "OSINT" or "Darknet".
func (m Module) ShortName() string {
	return m.Name
}
