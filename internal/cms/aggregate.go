package cms

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"

	"presbuilder/internal"
	"presbuilder/internal/config"
	"presbuilder/internal/storage"
)

// ErrNothingToWrite means every collection came up empty. Persisting would
// silently replace a valid prior document with nothing, so the build aborts
// instead.
var ErrNothingToWrite = errors.New("all collections are empty, refusing to write")

// Sheet names match the export convention of the source spreadsheets.
const (
	sheetWork       = "Work"
	sheetCategories = "Categories"
	sheetBlog       = "Blog"
	sheetClients    = "Clients"
	sheetTeam       = "Team"
)

type Aggregator struct {
	cfg config.Config
	db  *storage.DB
}

// NewAggregator wires the build step. db may be nil; build history is then
// simply not recorded.
func NewAggregator(cfg config.Config, db *storage.DB) *Aggregator {
	return &Aggregator{cfg: cfg, db: db}
}

type BuildResult struct {
	Document internal.ContentDocument
	Warnings []Warning
}

// Counts reports collection sizes keyed by wire-contract name.
func (r BuildResult) Counts() map[string]int {
	return map[string]int{
		"categories": len(r.Document.Categories),
		"projects":   len(r.Document.Projects),
		"blog":       len(r.Document.Blog),
		"clients":    len(r.Document.Clients),
		"team":       len(r.Document.Team),
	}
}

// Build reads the five entity sheets and assembles the content document.
// Builder order only matters in one place: projects need the declared
// service index, and category stubs need the built projects.
func (a *Aggregator) Build() (BuildResult, error) {
	res := BuildResult{}

	catRows, w := ReadRows(a.cfg.CMSDir, sheetCategories)
	res.Warnings = append(res.Warnings, w...)
	workRows, w := ReadRows(a.cfg.CMSDir, sheetWork)
	res.Warnings = append(res.Warnings, w...)
	blogRows, w := ReadRows(a.cfg.CMSDir, sheetBlog)
	res.Warnings = append(res.Warnings, w...)
	clientRows, w := ReadRows(a.cfg.CMSDir, sheetClients)
	res.Warnings = append(res.Warnings, w...)
	teamRows, w := ReadRows(a.cfg.CMSDir, sheetTeam)
	res.Warnings = append(res.Warnings, w...)

	idx := NewServiceIndex(catRows)
	projects := BuildProjects(workRows, idx, a.cfg.AssetBase)

	res.Document = internal.ContentDocument{
		Categories: BuildCategories(idx, projects),
		Projects:   projects,
		Blog:       BuildBlog(blogRows, a.cfg.AssetBase),
		Clients:    BuildClients(clientRows, a.cfg.AssetBase),
		Team:       BuildTeam(teamRows, a.cfg.AssetBase),
	}
	return res, nil
}

// BuildAndPersist builds, enforces the all-empty guard, writes data.json
// atomically and records the run. Returns the output path.
func (a *Aggregator) BuildAndPersist() (BuildResult, string, error) {
	res, err := a.Build()
	if err != nil {
		return res, "", err
	}
	if res.Document.Empty() {
		return res, "", ErrNothingToWrite
	}

	data, err := json.MarshalIndent(res.Document, "", "  ")
	if err != nil {
		return res, "", err
	}

	outPath := filepath.Join(a.cfg.OutputDir, "data.json")
	if err := os.MkdirAll(a.cfg.OutputDir, 0o755); err != nil {
		return res, "", err
	}
	if err := atomic.WriteFile(outPath, bytes.NewReader(data)); err != nil {
		return res, "", err
	}

	if a.db != nil {
		counts := res.Counts()
		_, err := a.db.InsertBuild(storage.BuildRow{
			OutputPath: outPath,
			Categories: counts["categories"],
			Projects:   counts["projects"],
			Blog:       counts["blog"],
			Clients:    counts["clients"],
			Team:       counts["team"],
			Warnings:   len(res.Warnings),
			DocJSON:    string(data),
		})
		if err != nil {
			return res, outPath, err
		}
	}
	return res, outPath, nil
}
