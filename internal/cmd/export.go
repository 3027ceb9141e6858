package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/miix-automations/website/internal/components"
	"github.com/miix-automations/website/internal/config"
	"github.com/miix-automations/website/internal/content"
	"github.com/miix-automations/website/internal/handlers"
	"github.com/miix-automations/website/internal/logger"
	"github.com/miix-automations/website/internal/seo"
	"github.com/miix-automations/website/static"
)

func newExportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the landing page and its assets as static files",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Parse()
			if err != nil {
				return err
			}

			log := logger.NewLogger().With(logger.Scope("export"))
			if err := export(cfg, out, time.Now()); err != nil {
				log.Error("export failed", logger.Error(err))
				return err
			}
			log.Info("export complete", "dir", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "dist", "output directory")

	return cmd
}

// export renders the site into dir, mirroring the routes served by
// the HTTP server.
func export(cfg *config.Config, dir string, now time.Time) error {
	page, err := components.Landing(handlers.LandingConfig(cfg, now))
	if err != nil {
		return fmt.Errorf("compose landing page: %w", err)
	}

	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		return fmt.Errorf("render landing page: %w", err)
	}
	if err := writeFile(filepath.Join(dir, "index.html"), buf.Bytes()); err != nil {
		return err
	}

	org := seo.NewOrganization(content.Brand.Name, strings.TrimSuffix(cfg.SiteURL, "/"))
	data := map[string]any{
		"services.json":     seo.ServicesList(org, content.Services()),
		"case-studies.json": seo.CaseStudiesList(org, content.CaseStudies()),
	}
	for name, v := range data {
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("encode %s: %w", name, err)
		}
		if err := writeFile(filepath.Join(dir, "structured-data", name), b); err != nil {
			return err
		}
	}

	return copyStatic(filepath.Join(dir, "static"))
}

func copyStatic(dir string) error {
	return fs.WalkDir(static.FS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		b, err := fs.ReadFile(static.FS, path)
		if err != nil {
			return err
		}
		return writeFile(filepath.Join(dir, filepath.FromSlash(path)), b)
	})
}

func writeFile(path string, b []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
