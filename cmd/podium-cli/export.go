package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	app "github.com/okian/podium/internal/app"
	"github.com/okian/podium/internal/config"
	"github.com/okian/podium/internal/domain/view"
	"github.com/okian/podium/pkg/logger"
)

const allViews = "all"

const (
	directoryPermission = 0o750
	filePermission      = 0o600
)

type exportOptions struct {
	view       string
	out        string
	athletes   string
	medallists string
	medals     string
	features   string
}

func newExportCmd() *cobra.Command {
	opts := exportOptions{}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Compute views and write them as JSON files",
		Example: `  # Every view from the configured tables
  podium-cli export --out build/views

  # Only the heatmap, from a generated dataset
  podium-cli export --view heatmap --athletes fx/athletes.csv --medals fx/medals.csv --out build`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.view, "view", allViews, "view to export: flow, heatmap, choropleth or all")
	cmd.Flags().StringVar(&opts.out, "out", ".", "output directory")
	cmd.Flags().StringVar(&opts.athletes, "athletes", "", "athletes CSV (overrides config)")
	cmd.Flags().StringVar(&opts.medallists, "medallists", "", "medallists CSV (overrides config)")
	cmd.Flags().StringVar(&opts.medals, "medals", "", "medals CSV (overrides config)")
	cmd.Flags().StringVar(&opts.features, "features", "", "GeoJSON feature collection (overrides config)")
	return cmd
}

// exportKinds resolves the --view flag.
func exportKinds(name string) ([]view.Kind, error) {
	if name == allViews {
		return view.Kinds, nil
	}
	kind, err := view.ParseKind(name)
	if err != nil {
		return nil, err
	}
	return []view.Kind{kind}, nil
}

func runExport(cmd *cobra.Command, opts exportOptions) error {
	ctx := cmd.Context()
	kinds, err := exportKinds(opts.view)
	if err != nil {
		return err
	}

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	if opts.athletes != "" {
		cfg.AthletesPath = opts.athletes
	}
	if opts.medallists != "" {
		cfg.MedallistsPath = opts.medallists
	}
	if opts.medals != "" {
		cfg.MedalsPath = opts.medals
	}
	if opts.features != "" {
		cfg.FeaturesPath = opts.features
	}

	svc := app.New(app.ConfigOptions(cfg)...)
	if err := svc.Start(ctx); err != nil {
		return err
	}
	defer svc.Stop()

	if err := os.MkdirAll(opts.out, directoryPermission); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	// A failed view does not stop the others.
	var errs []error
	for _, kind := range kinds {
		snap, err := svc.ComputeView(ctx, kind)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		path := filepath.Join(opts.out, string(kind)+".json")
		if err := os.WriteFile(path, snap.Body, filePermission); err != nil {
			errs = append(errs, fmt.Errorf("write %s: %w", path, err))
			continue
		}
		logger.Get().Info(ctx, "view exported",
			logger.String("view", string(kind)),
			logger.String("path", path),
			logger.Int("size", snap.Size))
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return errors.Join(errs...)
}
