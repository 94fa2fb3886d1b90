package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"log"
	"os"

	"github.com/andyherbert/gif2ans"
	"github.com/andyherbert/gif2ans/font"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	return m, err
}

func columnCount(c *cli.Context) (int, error) {
	columns := c.Int("columns")
	if columns > 0 {
		return columns, nil
	}
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0, fmt.Errorf("cannot detect terminal width: %w", err)
	}
	return width, nil
}

func convert(c *cli.Context) error {
	if c.NArg() < 2 {
		cli.ShowAppHelpAndExit(c, 1)
	}
	input, output := c.Args().Get(0), c.Args().Get(1)

	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	m, err := decode(input)
	if err != nil {
		return cli.Exit(err, 1)
	}

	f := font.IBMVGA()
	if c.Bool("vga50") {
		f = font.VGA50()
	}

	columns, err := columnCount(c)
	if err != nil {
		return cli.Exit(err, 1)
	}

	converter := gif2ans.New(f, logger)
	converter.FixedScoring = c.Bool("fixed-scoring")
	blocks := converter.Convert(m, columns, c.Bool("blocks"))

	mode := gif2ans.ModeLegacy
	switch {
	case c.Bool("cga") && c.Bool("sgr"):
		return cli.Exit("--cga and --sgr are mutually exclusive", 1)
	case c.Bool("cga"):
		mode = gif2ans.ModeCGA
	case c.Bool("sgr"):
		mode = gif2ans.ModeSGR
	}

	out, err := os.Create(output)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer out.Close()

	if err := gif2ans.EncodeANS(out, blocks, f, columns, mode); err != nil {
		return cli.Exit(err, 1)
	}
	logger.Printf("wrote %s\n", output)

	if c.Bool("image") {
		if err := writePNG(output+".png", blocks, f, columns); err != nil {
			return cli.Exit(err, 1)
		}
		logger.Printf("wrote %s.png\n", output)
	}

	return nil
}

func writePNG(path string, blocks []gif2ans.Block, f *font.Font, columns int) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	return png.Encode(out, gif2ans.BlocksToImage(blocks, f, columns))
}

func main() {
	app := cli.NewApp()

	app.Name = "gif2ans"
	app.Usage = "convert images to ANSI art"
	app.ArgsUsage = "INPUT OUTPUT"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "vga50",
			EnvVars: []string{"GIF2ANS_VGA50"},
			Usage:   "use the 8x8 font instead of 8x16",
		},
		&cli.IntFlag{
			Name:  "columns",
			Value: 80,
			Usage: "number of character columns, 0 to match the terminal",
		},
		&cli.BoolFlag{
			Name:  "blocks",
			Usage: "restrict matching to block-drawing glyphs",
		},
		&cli.BoolFlag{
			Name:  "cga",
			Usage: "emit 16-color CGA escape sequences",
		},
		&cli.BoolFlag{
			Name:  "sgr",
			Usage: "emit standard truecolor SGR escape sequences",
		},
		&cli.BoolFlag{
			Name:  "fixed-scoring",
			Usage: "use corrected glyph scoring (changes output)",
		},
		&cli.BoolFlag{
			Name:  "image",
			Usage: "also write a PNG reconstruction next to OUTPUT",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Action = convert

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
