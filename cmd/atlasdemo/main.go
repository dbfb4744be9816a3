package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/textatlas/textatlas/atlas"
	"github.com/textatlas/textatlas/atlasconfig"
	"github.com/textatlas/textatlas/fontprovider"
	"github.com/textatlas/textatlas/geom"
	"github.com/textatlas/textatlas/textblock"
	"github.com/textatlas/textatlas/textopts"
	"github.com/textatlas/textatlas/version"
)

type cliOpts struct {
	verbose     bool
	showVersion bool
	pages       int
	textureSize int
	text        string
	fontPath    string
	outPath     string
}

func parseCLIOpts() cliOpts {
	var opt cliOpts
	flag.BoolVar(&opt.verbose, "v", false, "Verbose output (print logs to stderr)")
	flag.BoolVar(&opt.showVersion, "version", false, "Print the module version and exit")
	flag.IntVar(&opt.pages, "pages", 1, "Number of atlas pages")
	flag.IntVar(&opt.textureSize, "size", 1024, "Texture page width and height, in pixels")
	flag.StringVar(&opt.text, "text", "", "Text to lay out and claim a slot for")
	flag.StringVar(&opt.fontPath, "font", "", "Path to a TTF/OTF font file")
	flag.StringVar(&opt.outPath, "out", "", "Path to dump the claimed page as a PNG")
	flag.Parse()
	return opt
}

func main() {
	opt := parseCLIOpts()

	if opt.verbose {
		log.SetOutput(os.Stderr)
	} else {
		log.SetOutput(io.Discard)
	}

	if opt.showVersion {
		v, err := version.Parsed()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Couldn't parse version %q: %v\n", version.Number, err)
			os.Exit(1)
		}
		fmt.Println(v.String())
		return
	}

	if err := atlasconfig.InitializeIfNot(atlasconfig.Dir()); err != nil {
		log.Fatalf("Couldn't initialize config: %v\n", err)
	}
	cfg, err := atlasconfig.Read(atlasconfig.Dir())
	if err != nil {
		log.Fatalf("Couldn't read config: %v\n", err)
	}
	log.Printf("Loaded config: %+v\n", cfg)

	if opt.text == "" || opt.fontPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: atlasdemo -text \"hello\" -font /path/to/font.ttf [-out atlas.png]")
		os.Exit(1)
	}

	fontBytes, err := os.ReadFile(opt.fontPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't read font file: %v\n", err)
		os.Exit(1)
	}

	provider, err := fontprovider.New(opt.fontPath, fontBytes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't parse font: %v\n", err)
		os.Exit(1)
	}

	size := geom.Size{Width: opt.textureSize, Height: opt.textureSize}
	pages := make([]*atlas.Page, 0, opt.pages)
	images := make([]*imagePage, 0, opt.pages)
	for i := 0; i < opt.pages; i++ {
		img := newImagePage(size)
		images = append(images, img)
		pages = append(pages, atlas.NewPage(img))
	}

	manager := atlas.NewAtlasManager(pages)
	manager.Metrics = &atlas.Metrics{}

	options := textopts.TextOptions{
		BaseStyle: textopts.Style{
			FontHandle: opt.fontPath,
			Size:       cfg.DefaultFontSize,
			Foreground: textopts.RGBA8{R: 255, G: 255, B: 255, A: 255},
		},
		AntialiasMode: cfg.ParsedAntialiasMode(),
	}

	block, err := textblock.New(manager, []rune(opt.text), opt.textureSize, options, provider)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't claim a slot: %v\n", err)
		os.Exit(1)
	}
	defer block.Close()

	rect := block.Rect()
	fmt.Printf("Placed %q at (%d,%d) %dx%d\n", opt.text, rect.X, rect.Y, rect.Width, rect.Height)
	log.Printf("Claims: %d, misses: %d, releases: %d\n", manager.Metrics.Claims, manager.Metrics.ClaimMisses, manager.Metrics.Releases)

	if opt.outPath != "" {
		for i, page := range pages {
			if page == block.Page() {
				if err := images[i].savePNG(opt.outPath); err != nil {
					fmt.Fprintf(os.Stderr, "Couldn't save PNG: %v\n", err)
					os.Exit(1)
				}
				break
			}
		}
	}
}
