package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/glasslab/gstr/catalog"
	"github.com/glasslab/gstr/workspace"
)

func newCheckCmd() *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "check [dir]",
		Short: "Check every schedule under a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			return runCheck(root, catalogPath)
		},
	}

	cmd.Flags().StringVarP(&catalogPath, "catalog", "c", "", "product catalog file (default $"+catalog.EnvCatalog+")")

	return cmd
}

func runCheck(root, catalogPath string) error {
	cat, err := loadCatalog(catalogPath)
	if err != nil {
		return err
	}

	ws := workspace.New(root)
	ws.SetCatalog(cat)
	if err := ws.ScanAll(); err != nil {
		return fmt.Errorf("scan %s: %w", root, err)
	}

	paths := ws.Paths()
	sort.Strings(paths)

	invalid := 0
	for _, path := range paths {
		f := ws.GetFile(path)
		diags := ws.Diagnostics(path)
		if len(diags) == 0 && f != nil && f.Schedule != nil {
			fmt.Printf("[OK] %s (%d entries)\n", path, len(f.Schedule.Entries))
			continue
		}
		for _, d := range diags {
			fmt.Printf("%s:%d: %s%s\n", path, d.Line, severityTag(d.Severity), d.Message)
			if d.Severity == workspace.SeverityError {
				invalid++
			}
		}
	}
	fmt.Printf("%d schedules checked\n", len(paths))

	if invalid > 0 {
		return fmt.Errorf("%d invalid entries", invalid)
	}
	return nil
}

func severityTag(s workspace.Severity) string {
	switch s {
	case workspace.SeverityError:
		return "error: "
	case workspace.SeverityWarning:
		return "warning: "
	default:
		return "note: "
	}
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.LoadDefault()
	}
	cat, err := catalog.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return cat, nil
}
