package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nao1215/osintnexus/internal/catalog"
)

// NewModulesCmd creates the modules command.
func NewModulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "modules [module-id]",
		Short: "List intelligence modules and their tools",
		Long: `Modules prints the built-in module catalog.

Without arguments every module is listed. With a module id, the tools of
that module are listed with their status and category.

Examples:
  # List all modules
  osintnexus modules

  # List the tools of the darknet module
  osintnexus modules darknet

  # Machine readable output
  osintnexus modules --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runModulesCmd,
	}

	cmd.Flags().BoolP("json", "j", false, "Output in JSON format")

	return cmd
}

// runModulesCmd executes the modules command.
func runModulesCmd(cmd *cobra.Command, args []string) error {
	jsonOutput, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		if jsonOutput {
			return writeJSON(out, catalog.All())
		}
		return printModules(out, catalog.All())
	}

	mod, err := lookupModule(args[0])
	if err != nil {
		return err
	}
	if jsonOutput {
		return writeJSON(out, mod)
	}
	return printTools(out, mod)
}

// lookupModule finds a module by id, ignoring case.
func lookupModule(id string) (catalog.Module, error) {
	mod, ok := catalog.Lookup(strings.ToLower(strings.TrimSpace(id)))
	if !ok {
		return catalog.Module{}, fmt.Errorf("unknown module %q (available: %s)",
			id, strings.Join(catalog.IDs(), ", "))
	}
	return mod, nil
}

func printModules(out io.Writer, modules []catalog.Module) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tMODULE\tTOOLS\tDESCRIPTION")
	for _, m := range modules {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", m.ID, m.ShortName(), len(m.Tools), m.Description)
	}
	return tw.Flush()
}

func printTools(out io.Writer, mod catalog.Module) error {
	fmt.Fprintf(out, "%s %s\n%s\n\n", mod.Glyph, mod.Title, mod.Description)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TOOL\tSTATUS\tCATEGORY\tDESCRIPTION")
	for _, t := range mod.Tools {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", t.Name, t.Status, t.Category, t.Description)
	}
	return tw.Flush()
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
