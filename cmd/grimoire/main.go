package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/suparena/grimoire"
	"github.com/suparena/grimoire/catalog"
	"github.com/suparena/grimoire/config"
	"github.com/suparena/grimoire/game"
	"github.com/suparena/grimoire/locale"
	"github.com/suparena/grimoire/source"
	"github.com/suparena/grimoire/token"
)

var (
	versionFlag  = flag.Bool("version", false, "Show version information")
	vFlag        = flag.Bool("v", false, "Show version information (short)")
	editionsFlag = flag.Bool("editions", false, "List the editions in the character data")
	editionFlag  = flag.String("edition", "", "List the characters of an edition")
	playersFlag  = flag.Int("players", 0, "Show the team totals for a player count")
	getFlag      = flag.String("get", "", "Character id to read with -field")
	fieldFlag    = flag.String("field", "getAbility", "Accessor to call on the -get character")
	localesFlag  = flag.Bool("locales", false, "List the interface locales")
	acceptFlag   = flag.String("accept", "", "Pick a locale for an Accept-Language value")
	envFlag      = flag.String("env", "", "Path to a .env file (default .env)")
)

func main() {
	flag.Parse()

	if *versionFlag || *vFlag {
		info := grimoire.GetVersionInfo()
		fmt.Printf("grimoire version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	var envFiles []string
	if *envFlag != "" {
		envFiles = append(envFiles, *envFlag)
	}
	cfg, err := config.Load(envFiles...)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := run(context.Background(), cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cfg config.Config, out io.Writer) error {
	if *localesFlag || *acceptFlag != "" {
		return runLocales(cfg, out)
	}

	src := source.NewFS(os.DirFS(cfg.DataDir))

	switch {
	case *editionsFlag, *editionFlag != "", *getFlag != "":
		cat, err := catalog.Load(ctx, src, cfg.CharactersFile)
		if err != nil {
			return err
		}
		log.Printf("loaded %d characters from %s", cat.Len(), cfg.CharactersFile)
		return runCatalog(cat, cfg, out)

	case *playersFlag != 0:
		table, err := game.Load(ctx, src, cfg.GameFile)
		if err != nil {
			return err
		}
		totals, err := table.Row(*playersFlag)
		if err != nil {
			return err
		}
		return write(out, cfg.Output, totals)

	default:
		flag.Usage()
		return nil
	}
}

func runCatalog(cat *catalog.Catalog, cfg config.Config, out io.Writer) error {
	switch {
	case *editionsFlag:
		return write(out, cfg.Output, cat.Editions())

	case *editionFlag != "":
		chars := cat.Edition(*editionFlag)
		records := make([]token.Record, 0, len(chars))
		for _, c := range chars {
			records = append(records, c.Data())
		}
		return write(out, cfg.Output, records)

	default:
		char, err := cat.Get(*getFlag)
		if err != nil {
			return err
		}
		value, err := char.Call(*fieldFlag)
		if err != nil {
			return fmt.Errorf("%s.%s: %w", *getFlag, *fieldFlag, err)
		}
		return write(out, cfg.Output, map[string]any{*fieldFlag: value})
	}
}

// localeListing is the -locales output, with the configured locale marked.
type localeListing struct {
	Current string          `json:"current" yaml:"current"`
	Locales []locale.Locale `json:"locales" yaml:"locales"`
}

func runLocales(cfg config.Config, out io.Writer) error {
	list := locale.Default()
	current, err := list.Lookup(cfg.Locale)
	if err != nil {
		return err
	}

	if *acceptFlag != "" {
		return write(out, cfg.Output, list.MatchOr(*acceptFlag, current))
	}
	return write(out, cfg.Output, localeListing{Current: current.Code, Locales: list.Locales()})
}

func write(out io.Writer, format string, v any) error {
	if format == config.OutputJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
