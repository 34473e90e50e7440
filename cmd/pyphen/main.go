/*
Command pyphen hyphenates words with hunspell or TeX hyphenation
dictionaries.

# Usage

Hyphenate words given as arguments, or lines read from stdin:

	pyphen -lang nl_NL lettergrepen
	let-ter-gre-pen

	echo "Hyphenation of a whole sentence" | pyphen -lang en_US

List the break positions, wrap words to a width, or fill paragraphs:

	pyphen -lang nl_NL -positions lettergrepen
	pyphen -lang nl_NL -width 8 lettergrepen
	pyphen -lang de_DE -fill -width 40 < text.txt

Dictionaries are looked up in the directory given by -dir or by the config
file. A single dictionary file may be given with -dict instead of -lang.

# Configuration

Defaults are read from a TOML file given with -config:

	[hyphenation]
	dictionaries = "/usr/share/hyphen"
	lang = "en_US"
	left = 2
	right = 2

	[wrap]
	width = 72

Flags override config values.
*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/npillmayer/pyphen"
	"github.com/npillmayer/pyphen/config"
	"github.com/npillmayer/pyphen/internal/logger"
	"github.com/npillmayer/pyphen/registry"
	"github.com/npillmayer/pyphen/textwrap"
)

func main() {
	configPath := flag.String("config", "", "TOML config file")
	dir := flag.String("dir", "", "Directory containing hyph_*.dic and hyph-*.tex files")
	lang := flag.String("lang", "", "Language of the dictionary, e.g. nl_NL")
	dict := flag.String("dict", "", "Dictionary file to use instead of -lang")
	left := flag.Int("left", 0, "Minimum characters in the first syllable")
	right := flag.Int("right", 0, "Minimum characters in the last syllable")
	hyphen := flag.String("hyphen", "", "Hyphen string to insert")
	width := flag.Int("width", 0, "Wrap words (or -fill text) to this width")
	positions := flag.Bool("positions", false, "Print break positions instead of hyphenated words")
	fill := flag.Bool("fill", false, "Fill the input text as paragraphs to -width")
	list := flag.Bool("list", false, "List available languages")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	flag.Parse()

	cfg, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	overrideConfig(cfg, *dir, *lang, *left, *right, *hyphen, *width)
	logger.SetLevel(cfg.Log.Level)
	if *debugMode {
		log.SetLevel(log.DebugLevel)
	}
	lg := logger.New("pyphen")

	reg := registry.New(cfg.Options()...)
	if n, err := reg.ScanDir(cfg.Hyphenation.Dictionaries); err != nil {
		lg.Warn("Cannot scan dictionary directory", "dir", cfg.Hyphenation.Dictionaries, "err", err)
	} else {
		lg.Debug("Scanned dictionary directory", "dir", cfg.Hyphenation.Dictionaries, "count", n)
	}
	if *list {
		for _, l := range reg.Languages() {
			fmt.Println(l)
		}
		return
	}

	var builder *registry.Builder
	if *dict != "" {
		builder = reg.File(*dict)
	} else {
		builder = reg.Lang(cfg.Hyphenation.Lang)
	}
	h, err := builder.Left(cfg.Hyphenation.Left).Right(cfg.Hyphenation.Right).Build()
	if err != nil {
		lg.Fatal("Cannot load dictionary", "err", err)
	}
	lg.Debug("Using dictionary", "path", builder.Path(), "patterns", h.Dictionary().Len(),
		"backend", h.Dictionary().Backend())

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	if *fill {
		text, err := readText(flag.Args(), os.Stdin)
		if err != nil {
			lg.Fatal("Cannot read input", "err", err)
		}
		fmt.Fprintln(out, textwrap.Fill(text, cfg.Wrap.Width, h))
		return
	}
	p := printer{out: out, h: h, hyphen: cfg.Hyphenation.Hyphen}
	switch {
	case *positions:
		p.emit = p.positions
	case *width > 0:
		p.width = *width
		p.emit = p.wrap
	default:
		p.emit = p.inserted
	}
	if flag.NArg() > 0 {
		for _, word := range flag.Args() {
			p.emit(word)
		}
		return
	}
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if *positions || p.width > 0 {
			for _, word := range strings.Fields(scanner.Text()) {
				p.emit(word)
			}
			continue
		}
		fmt.Fprintln(out, h.HyphenateText(scanner.Text(), p.hyphen))
	}
	if err := scanner.Err(); err != nil {
		lg.Error("Cannot read input", "err", err)
	}
}

// overrideConfig applies flags which have been set explicitly.
func overrideConfig(cfg *config.Config, dir, lang string, left, right int, hyphen string, width int) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dir":
			cfg.Hyphenation.Dictionaries = dir
		case "lang":
			cfg.Hyphenation.Lang = lang
		case "left":
			cfg.Hyphenation.Left = left
		case "right":
			cfg.Hyphenation.Right = right
		case "hyphen":
			cfg.Hyphenation.Hyphen = hyphen
		case "width":
			cfg.Wrap.Width = width
		}
	})
}

func readText(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(stdin)
	return string(data), err
}

type printer struct {
	out    io.Writer
	h      *pyphen.Hyphenator
	hyphen string
	width  int
	emit   func(word string)
}

func (p printer) inserted(word string) {
	fmt.Fprintln(p.out, p.h.InsertedWith(word, p.hyphen))
}

func (p printer) positions(word string) {
	fmt.Fprintf(p.out, "%s %v\n", word, p.h.Positions(word))
}

func (p printer) wrap(word string) {
	first, rest, ok := p.h.WrapWith(word, p.width, p.hyphen)
	if !ok {
		fmt.Fprintln(p.out, word)
		return
	}
	fmt.Fprintf(p.out, "%s\n%s\n", first, rest)
}
