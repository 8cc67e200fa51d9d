package main

import (
	"bytes"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/natefinch/atomic"

	"presbuilder/internal"
	"presbuilder/internal/cms"
	"presbuilder/internal/config"
	"presbuilder/internal/deck"
	"presbuilder/internal/storage"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "build":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		cmsDir := fs.String("cms", cfg.CMSDir, "input sheets directory")
		outDir := fs.String("out", cfg.OutputDir, "output directory")
		_ = fs.Parse(os.Args[2:])
		cfg.CMSDir = *cmsDir
		cfg.OutputDir = *outDir

		db, err := storage.Open(cfg.DBPath)
		must(err)
		defer db.Close()

		agg := cms.NewAggregator(cfg, db)
		res, outPath, err := agg.BuildAndPersist()
		for _, w := range res.Warnings {
			fmt.Fprintf(os.Stderr, "warning: %s\n", w)
		}
		must(err)
		counts := res.Counts()
		fmt.Printf("build done categories=%d projects=%d blog=%d clients=%d team=%d output=%s\n",
			counts["categories"], counts["projects"], counts["blog"], counts["clients"], counts["team"], outPath)

	case "slides":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		category := fs.String("category", "", "selected category id (optional)")
		projects := fs.String("projects", "", "comma-separated project ids, in presentation order")
		output := fs.String("output", "presentation", "presentation|report")
		clients := fs.Bool("clients", false, "include the clients slide in the category block")
		out := fs.String("out", "", "output slides.json path")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*out) == "" {
			must(fmt.Errorf("--out is required"))
		}
		outputType, err := parseOutputType(*output)
		must(err)

		var projectIDs []string
		for _, id := range strings.Split(*projects, ",") {
			if id = strings.TrimSpace(id); id != "" {
				projectIDs = append(projectIDs, id)
			}
		}

		slides := deck.BuildSlides(*category, projectIDs, outputType, deck.Options{IncludeClients: *clients})
		data, err := deck.ExportSlides(slides)
		must(err)
		must(writeFile(*out, data))
		fmt.Printf("slides done count=%d output=%s\n", len(slides), *out)

	case "render:html":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		slidesPath := fs.String("slides", "", "slides.json path")
		content := fs.String("content", "", "content document path or URL (default: persisted output)")
		out := fs.String("out", "", "output html path")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*slidesPath) == "" || strings.TrimSpace(*out) == "" {
			must(fmt.Errorf("--slides and --out are required"))
		}

		slides, doc := loadDeckInputs(cfg, *slidesPath, *content)
		html := deck.HTMLRenderer{}.RenderDeck(slides, doc)
		must(writeFile(*out, []byte(html)))
		fmt.Printf("render done slides=%d output=%s\n", len(slides), *out)

	case "render:text":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		slidesPath := fs.String("slides", "", "slides.json path")
		content := fs.String("content", "", "content document path or URL (default: persisted output)")
		paged := fs.Bool("print", false, "paginated print output instead of the interactive deck")
		_ = fs.Parse(os.Args[2:])
		if strings.TrimSpace(*slidesPath) == "" {
			must(fmt.Errorf("--slides is required"))
		}

		slides, doc := loadDeckInputs(cfg, *slidesPath, *content)
		var r deck.Renderer = deck.TextRenderer{}
		if *paged {
			r = deck.PrintRenderer{}
		}
		fmt.Print(r.RenderDeck(slides, doc))

	case "builds:list":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		limit := fs.Int("limit", 20, "max rows")
		_ = fs.Parse(os.Args[2:])

		db, err := storage.Open(cfg.DBPath)
		must(err)
		defer db.Close()

		builds, err := db.ListBuilds(*limit)
		must(err)
		for _, b := range builds {
			fmt.Printf("id=%d at=%s categories=%d projects=%d blog=%d clients=%d team=%d warnings=%d output=%s\n",
				b.ID, b.CreatedAt, b.Categories, b.Projects, b.Blog, b.Clients, b.Team, b.Warnings, b.OutputPath)
		}

	case "builds:restore":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		out := fs.String("out", filepath.Join(cfg.OutputDir, "data.json"), "where to write the restored document")
		_ = fs.Parse(os.Args[2:])

		db, err := storage.Open(cfg.DBPath)
		must(err)
		defer db.Close()

		doc, err := db.LatestDocument()
		if errors.Is(err, sql.ErrNoRows) {
			must(fmt.Errorf("no recorded builds to restore from"))
		}
		must(err)
		must(writeFile(*out, []byte(doc)))
		fmt.Printf("restore done output=%s\n", *out)

	default:
		usage()
		os.Exit(1)
	}
}

func loadDeckInputs(cfg config.Config, slidesPath, content string) ([]deck.Slide, *internal.ContentDocument) {
	data, err := os.ReadFile(slidesPath)
	must(err)
	slides, err := deck.ImportSlides(data)
	must(err)

	source := content
	if strings.TrimSpace(source) == "" {
		source = cfg.ContentURL
	}
	if strings.TrimSpace(source) == "" {
		source = filepath.Join(cfg.OutputDir, "data.json")
	}
	doc := cms.LoadDocument(source, time.Duration(cfg.FetchTimeoutMs)*time.Millisecond)
	return slides, &doc
}

func parseOutputType(s string) (deck.OutputType, error) {
	switch deck.OutputType(strings.ToLower(strings.TrimSpace(s))) {
	case deck.OutputPresentation:
		return deck.OutputPresentation, nil
	case deck.OutputReport:
		return deck.OutputReport, nil
	}
	return "", fmt.Errorf("unknown output type %q (presentation|report)", s)
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return atomic.WriteFile(path, bytes.NewReader(data))
}

func usage() {
	fmt.Println(`usage: presbuilder <command> [flags]

commands:
  build           read entity sheets and write the content document
  slides          derive a slide sequence from selections and write slides.json
  render:html     render a slide sequence as a self-contained HTML document
  render:text     render a slide sequence as text (interactive or --print)
  builds:list     show recorded build history
  builds:restore  rewrite the content document from the latest build snapshot`)
}

func must(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
