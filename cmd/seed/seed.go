package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/nudostudio/nudo/modules/forms"
	"github.com/nudostudio/nudo/pkg/logger"
	"github.com/nudostudio/nudo/pkg/sanitizer"
)

// Fixtures is the demo data file, one list per back-office form.
type Fixtures struct {
	Products  []map[string]any `yaml:"products"`
	Suppliers []map[string]any `yaml:"suppliers"`
	Employees []map[string]any `yaml:"employees"`
	News      []map[string]any `yaml:"news"`
}

// Backend tables keyed by the form their rows are checked against.
var tables = map[string]string{
	forms.Product:  "products",
	forms.Supplier: "suppliers",
	forms.Employee: "employees",
	forms.News:     "news",
}

func (f Fixtures) byForm() map[string][]map[string]any {
	return map[string][]map[string]any{
		forms.Product:  f.Products,
		forms.Supplier: f.Suppliers,
		forms.Employee: f.Employees,
		forms.News:     f.News,
	}
}

// LoadFixtures decodes a fixtures document. Unknown top-level keys are errors.
func LoadFixtures(r io.Reader) (Fixtures, error) {
	var f Fixtures
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return Fixtures{}, fmt.Errorf("decode fixtures: %w", err)
	}
	return f, nil
}

// Inserter writes rows to a backend table.
type Inserter interface {
	Insert(ctx context.Context, table string, rows any) error
}

// Report counts rows per table.
type Report struct {
	Inserted map[string]int
	Skipped  map[string]int
}

type Seeder struct {
	forms  *forms.Registry
	dst    Inserter
	log    *slog.Logger
	dryRun bool
}

func NewSeeder(registry *forms.Registry, dst Inserter, log *slog.Logger, dryRun bool) *Seeder {
	if log == nil {
		log = logger.Nop()
	}
	return &Seeder{forms: registry, dst: dst, log: log.With(logger.Component("seed")), dryRun: dryRun}
}

// Run validates every row against its form and inserts the valid ones, one
// batch per table, in the order of forms.Admin. Invalid rows are logged with
// their failing fields and skipped.
func (s *Seeder) Run(ctx context.Context, f Fixtures) (Report, error) {
	report := Report{Inserted: map[string]int{}, Skipped: map[string]int{}}
	rowsByForm := f.byForm()

	for _, form := range forms.Admin {
		table := tables[form]
		var valid []map[string]any

		for i, row := range rowsByForm[form] {
			clean := sanitizeRow(row)
			errs, err := s.forms.Validate(form, clean)
			if err != nil {
				return report, err
			}
			if !errs.IsEmpty() {
				report.Skipped[table]++
				s.log.WarnContext(ctx, "fixture row skipped",
					logger.Form(form),
					slog.Int("row", i),
					logger.Fields(errs.Fields()),
					logger.Error(errs),
				)
				continue
			}
			valid = append(valid, clean)
		}

		if len(valid) == 0 {
			continue
		}
		if !s.dryRun {
			if err := s.dst.Insert(ctx, table, valid); err != nil {
				return report, fmt.Errorf("insert %s: %w", table, err)
			}
		}
		report.Inserted[table] = len(valid)
		s.log.InfoContext(ctx, "fixtures inserted",
			slog.String("table", table),
			slog.Int("rows", len(valid)),
			slog.Bool("dry_run", s.dryRun),
		)
	}
	return report, nil
}

func sanitizeRow(row map[string]any) map[string]any {
	out := make(map[string]any, len(row))
	for k, v := range row {
		if str, ok := v.(string); ok {
			v = sanitizer.Sanitize(str)
		}
		out[k] = v
	}
	return out
}
