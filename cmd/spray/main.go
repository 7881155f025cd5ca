package main

import (
	"fmt"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/spray"
	"github.com/bodgit/spray/wad"
	"github.com/urfave/cli/v2"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:  "version, V",
		Usage: "print the version",
	}
}

func newEncoder(c *cli.Context) (*spray.Encoder, error) {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	return spray.New(c.Int("max-pixels"), logger)
}

func wadName(file string) string {
	return strings.TrimSuffix(file, filepath.Ext(file)) + ".wad"
}

func convert(e *spray.Encoder, file string) error {
	in, err := os.Open(file)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(wadName(file))
	if err != nil {
		return err
	}
	defer out.Close()

	return e.Encode(out, in)
}

func main() {
	app := cli.NewApp()

	app.Name = "spray"
	app.Usage = "GoldSrc spray decal generator"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.IntFlag{
			Name:    "max-pixels",
			EnvVars: []string{"SPRAY_MAX_PIXELS"},
			Value:   spray.MaxPixelHalfLife,
			Usage:   "pixel budget for the target engine",
		},
		&cli.BoolFlag{
			Name:  "verbose, v",
			Usage: "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "convert",
			Usage:       "Convert images to WAD3 spray decals",
			Description: "",
			ArgsUsage:   "FILE [FILE...]",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				e, err := newEncoder(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				for _, file := range c.Args().Slice() {
					if err := convert(e, file); err != nil {
						return cli.NewExitError(err, 1)
					}
				}

				return nil
			},
		},
		{
			Name:        "batch",
			Usage:       "Convert every image under a directory",
			Description: "",
			ArgsUsage:   "DIRECTORY",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				e, err := newEncoder(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				if err := e.Batch(c.Args().First()); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "info",
			Usage:       "Show the texture dimensions of a WAD3 file",
			Description: "",
			ArgsUsage:   "FILE",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				f, err := os.Open(c.Args().First())
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer f.Close()

				config, err := wad.DecodeConfig(f)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				fmt.Printf("%s: %dx%d\n", c.Args().First(), config.Width, config.Height)

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
