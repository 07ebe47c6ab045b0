package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/glasslab/gstr/catalog"
	"github.com/glasslab/gstr/ui"
	"github.com/glasslab/gstr/workspace"
)

func newUICmd() *cobra.Command {
	var addr string
	var dir string
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Start the web UI server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(catalogPath)
			if err != nil {
				return err
			}

			ws := workspace.New(dir)
			ws.SetCatalog(cat)
			if err := ws.ScanAll(); err != nil {
				return fmt.Errorf("scan %s: %w", dir, err)
			}

			watcher := workspace.NewFileWatcher(ws)
			watcher.Start()
			defer watcher.Stop()

			server, err := ui.NewServer(ws)
			if err != nil {
				return fmt.Errorf("create server: %w", err)
			}
			displayAddr := addr
			if strings.HasPrefix(addr, ":") {
				displayAddr = "localhost" + addr
			}
			fmt.Printf("Starting server at http://%s\n", displayAddr)
			return http.ListenAndServe(addr, server)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "address to listen on")
	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "workspace directory with schedule files")
	cmd.Flags().StringVarP(&catalogPath, "catalog", "c", "", "product catalog file (default $"+catalog.EnvCatalog+")")

	return cmd
}
