package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/nao1215/osintnexus/internal/catalog"
)

// TestModulesCmd tests the catalog listing.
func TestModulesCmd(t *testing.T) {
	t.Parallel()

	t.Run("lists every module", func(t *testing.T) {
		t.Parallel()
		out, _, err := executeCommand(t, "modules")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, id := range catalog.IDs() {
			if !strings.Contains(out, id) {
				t.Errorf("module %s missing from output", id)
			}
		}
	})

	t.Run("lists the tools of one module", func(t *testing.T) {
		t.Parallel()
		out, _, err := executeCommand(t, "modules", "OSINT")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, tool := range []string{"theHarvester", "Sherlock", "SpiderFoot", "Maltego CE"} {
			if !strings.Contains(out, tool) {
				t.Errorf("tool %s missing from output", tool)
			}
		}
	})

	t.Run("json output", func(t *testing.T) {
		t.Parallel()
		out, _, err := executeCommand(t, "modules", "--json")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var modules []catalog.Module
		if err := json.Unmarshal([]byte(out), &modules); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if len(modules) != len(catalog.IDs()) {
			t.Errorf("got %d modules, want %d", len(modules), len(catalog.IDs()))
		}
	})

	t.Run("unknown module", func(t *testing.T) {
		t.Parallel()
		_, _, err := executeCommand(t, "modules", "nope")
		if err == nil || !strings.Contains(err.Error(), "unknown module") {
			t.Errorf("expected unknown module error, got %v", err)
		}
	})
}

// TestResolveTool tests module and tool name matching.
func TestResolveTool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		module   string
		tool     string
		wantTool string
		wantErr  bool
	}{
		{name: "exact", module: "osint", tool: "theHarvester", wantTool: "theHarvester"},
		{name: "case insensitive", module: "Network", tool: "nmap", wantTool: "Nmap"},
		{name: "tool of another module", module: "osint", tool: "Nmap", wantErr: true},
		{name: "unknown module", module: "bogus", tool: "Nmap", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, tool, err := resolveTool(tt.module, tt.tool)
			if (err != nil) != tt.wantErr {
				t.Fatalf("resolveTool() error = %v, wantErr %t", err, tt.wantErr)
			}
			if tool != tt.wantTool {
				t.Errorf("resolveTool() = %q, want %q", tool, tt.wantTool)
			}
		})
	}
}
