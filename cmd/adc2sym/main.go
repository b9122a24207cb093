package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/bodgit/adc2"
	"github.com/bodgit/adc2/archive"
	"github.com/hashicorp/go-hclog"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) hclog.Logger {
	level := hclog.Warn
	if c.Bool("verbose") {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   c.App.Name,
		Level:  level,
		Output: os.Stderr,
	})
}

func open(c *cli.Context, extra ...adc2.Option) (*adc2.SymbolSet, error) {
	zoom := c.Int("zoom")
	if zoom < 1 || zoom > 3 {
		return nil, fmt.Errorf("zoom level must be 1, 2 or 3, not %d", zoom)
	}

	opts := append([]adc2.Option{
		adc2.WithZoom(adc2.Zoom(zoom - 1)),
		adc2.WithLogger(newLogger(c)),
	}, extra...)

	return adc2.Open(c.Args().First(), opts...)
}

func info(w io.Writer, s *adc2.SymbolSet) {
	fmt.Fprintf(w, "Shape:        %s\n", s.Shape())
	fmt.Fprintf(w, "Zoom level:   %s\n", s.Zoom())
	fmt.Fprintf(w, "Map board:    %d\n", s.Len(adc2.MapBoard))
	fmt.Fprintf(w, "Game pieces:  %d\n", s.Len(adc2.GamePiece))
	if s.IgnoresMasks() {
		fmt.Fprintf(w, "Masks:        ignored\n")
	} else {
		fmt.Fprintf(w, "Masks:        %d\n", s.Len(adc2.Mask))
	}
	fmt.Fprintf(w, "Symbol size:  %d\n", s.SymbolSize())
	for z := adc2.ZoomSmall; z <= adc2.ZoomLarge; z++ {
		fmt.Fprintf(w, "Zoom %s:       %.3f\n", z, s.ZoomFactor(z))
	}
	m := s.ModalSize()
	fmt.Fprintf(w, "Modal piece:  %dx%d\n", m.X, m.Y)
}

func export(c *cli.Context) error {
	var opts []adc2.Option
	if c.Bool("palette") {
		opts = append(opts, adc2.WithPalette(256))
	}

	s, err := open(c, opts...)
	if err != nil {
		return err
	}

	var sink adc2.Sink
	switch {
	case c.String("dir") != "":
		d, err := archive.NewDir(c.String("dir"))
		if err != nil {
			return err
		}
		sink = d
	default:
		db, err := archive.NewDB(c.String("db"))
		if err != nil {
			return err
		}
		defer db.Close()
		sink = db
	}

	categories := []adc2.Category{adc2.GamePiece}
	if c.Bool("terrain") {
		categories = append(categories, adc2.MapBoard)
	}

	return s.WriteToArchive(sink, categories...)
}

func main() {
	app := cli.NewApp()

	app.Name = "adc2sym"
	app.Usage = "ADC2 symbol set utility"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.IntFlag{
			Name:    "zoom",
			EnvVars: []string{"ADC2_ZOOM"},
			Value:   int(adc2.DefaultZoom) + 1,
			Usage:   "zoom level to decode (1-3)",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:      "info",
			Usage:     "Describe a symbol set",
			ArgsUsage: "FILE",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				s, err := open(c)
				if err != nil {
					return cli.Exit(err, 1)
				}

				info(c.App.Writer, s)

				return nil
			},
		},
		{
			Name:      "export",
			Usage:     "Write symbol images as PNG files",
			ArgsUsage: "FILE",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "db",
					EnvVars: []string{"ADC2_DB"},
					Value:   "symbols.db",
					Usage:   "path to database",
				},
				&cli.StringFlag{
					Name:  "dir",
					Usage: "write files to directory instead of database",
				},
				&cli.BoolFlag{
					Name:  "terrain",
					Usage: "include map board symbols",
				},
				&cli.BoolFlag{
					Name:  "palette",
					Usage: "write paletted images",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				if err := export(c); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
