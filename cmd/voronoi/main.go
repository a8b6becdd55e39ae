// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Command voronoi reads sites from a text file and renders their Voronoi
// diagram as SVG and/or PNG.
//
//	voronoi --svg out.svg --png out.png --relax 3 points.txt
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/2dChan/r2voronoi"
	"github.com/2dChan/r2voronoi/pointio"
	"github.com/2dChan/r2voronoi/render"
	"github.com/2dChan/r2voronoi/utils"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
)

type config struct {
	input     string
	svgPath   string
	pngPath   string
	stylePath string
	margin    float64
	eps       float64
	tolerance float64
	workers   int
	relax     int
	verbose   bool
}

func newApp(cfg *config) *kingpin.Application {
	app := kingpin.New("voronoi", "Compute and render the Voronoi diagram of a set of planar sites.")
	app.Flag("svg", "Write an SVG image to this path.").Envar("VORONOI_SVG").StringVar(&cfg.svgPath)
	app.Flag("png", "Write a PNG image to this path.").Envar("VORONOI_PNG").StringVar(&cfg.pngPath)
	app.Flag("style", "YAML style file.").Envar("VORONOI_STYLE").ExistingFileVar(&cfg.stylePath)
	app.Flag("margin", "Padding around the sites, as a fraction of their extent.").
		Default(fmt.Sprint(utils.DefaultMargin)).Envar("VORONOI_MARGIN").Float64Var(&cfg.margin)
	app.Flag("eps", "Half-plane inclusion tolerance.").
		Default(fmt.Sprint(r2voronoi.DefaultEps)).Envar("VORONOI_EPS").Float64Var(&cfg.eps)
	app.Flag("tolerance", "Distance under which polygon vertices are merged.").
		Default(fmt.Sprint(r2voronoi.DefaultVertexTolerance)).Envar("VORONOI_TOLERANCE").Float64Var(&cfg.tolerance)
	app.Flag("workers", "Number of goroutines building cells.").
		Default("1").Envar("VORONOI_WORKERS").IntVar(&cfg.workers)
	app.Flag("relax", "Lloyd relaxation steps.").Default("0").IntVar(&cfg.relax)
	app.Flag("verbose", "Development logging.").Short('v').BoolVar(&cfg.verbose)
	app.Arg("points", "Text file with one x,y point per line.").Required().ExistingFileVar(&cfg.input)
	return app
}

func main() {
	var cfg config
	app := newApp(&cfg)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger, err := newLogger(cfg.verbose)
	if err != nil {
		app.Fatalf("%v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger, os.Stderr); err != nil {
		logger.Error("voronoi failed", zap.Error(err))
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(cfg config, logger *zap.Logger, stderr io.Writer) error {
	if cfg.svgPath == "" && cfg.pngPath == "" {
		return errors.New("nothing to do: set --svg or --png")
	}

	style := render.DefaultStyle()
	if cfg.stylePath != "" {
		f, err := os.Open(cfg.stylePath)
		if err != nil {
			return errors.Wrap(err, "open style")
		}
		style, err = render.LoadStyle(f)
		f.Close()
		if err != nil {
			return err
		}
	}

	points, err := pointio.ParseFile(cfg.input)
	var pe pointio.ParseErrors
	switch {
	case errors.As(err, &pe):
		for _, le := range pe {
			fmt.Fprintf(stderr, "%s:%d: %s %s\n", cfg.input, le.Line,
				aurora.Red("error:"), aurora.Bold(le.Err.Error()))
		}
		logger.Warn("skipped malformed lines", zap.Int("count", len(pe)))
	case err != nil:
		return err
	}
	if len(points) < 2 {
		return errors.Errorf("need at least 2 points, got %d", len(points))
	}
	logger.Info("parsed points", zap.String("file", cfg.input), zap.Int("count", len(points)))

	bounds := utils.BoundsFromPoints(points, cfg.margin)
	start := time.Now()
	d, err := r2voronoi.NewDiagram(points, bounds,
		r2voronoi.WithEps(cfg.eps),
		r2voronoi.WithVertexTolerance(cfg.tolerance),
		r2voronoi.WithWorkers(cfg.workers),
	)
	if err != nil {
		return errors.Wrap(err, "build diagram")
	}
	if err := d.Relax(cfg.relax); err != nil {
		return errors.Wrap(err, "relax")
	}
	logger.Info("built diagram",
		zap.Int("sites", d.NumCells()),
		zap.Int("relax", cfg.relax),
		zap.Duration("elapsed", time.Since(start)),
	)

	if cfg.svgPath != "" {
		if err := writeFile(cfg.svgPath, func(w io.Writer) error { return render.WriteSVG(w, d, style) }); err != nil {
			return err
		}
		logger.Info("wrote svg", zap.String("path", cfg.svgPath))
	}
	if cfg.pngPath != "" {
		if err := writeFile(cfg.pngPath, func(w io.Writer) error { return render.WritePNG(w, d, style) }); err != nil {
			return err
		}
		logger.Info("wrote png", zap.String("path", cfg.pngPath))
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrapf(cerr, "close %s", path)
		}
	}()
	return write(f)
}
