package javagen

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/andrewkroh/gqljavagen/internal/introspection"
)

// Generator renders Java client classes for a schema.
type Generator struct {
	schema      *introspection.Schema
	cfg         Config
	nestUnder   string
	scalars     map[string]Scalar
	scalarNames []string
	unionsOf    map[string][]string // object type name → unions containing it
}

// New returns a Generator for schema. Custom scalar mappings are validated
// here; the license header is read when files are rendered.
func New(schema *introspection.Schema, cfg Config) (*Generator, error) {
	if schema == nil {
		return nil, errors.New("nil schema")
	}
	if cfg.PackageName == "" {
		return nil, errors.New("package name is required")
	}

	g := &Generator{
		schema:    schema,
		cfg:       cfg,
		nestUnder: cfg.NestUnder,
		scalars:   make(map[string]Scalar, len(cfg.CustomScalars)),
		unionsOf:  make(map[string][]string),
	}
	if g.nestUnder == "" {
		g.nestUnder = DefaultNestUnder
	}
	if g.cfg.Year == 0 {
		g.cfg.Year = time.Now().Year()
	}

	for _, s := range cfg.CustomScalars {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		g.scalars[s.TypeName] = s
		g.scalarNames = append(g.scalarNames, s.TypeName)
	}
	sort.Strings(g.scalarNames)

	for _, t := range schema.Types() {
		if t.Kind != introspection.KindUnion {
			continue
		}
		for _, member := range schema.Implementations(t.Name) {
			g.unionsOf[member.Name] = append(g.unionsOf[member.Name], t.Name)
		}
	}
	return g, nil
}

// Generate renders every file in memory, keyed by file name.
func (g *Generator) Generate() (map[string][]byte, error) {
	header, err := loadLicenseHeader(g.cfg.LicenseHeaderFile, g.cfg.LicenseTemplate, g.cfg.PackageName, g.cfg.Year)
	if err != nil {
		return nil, err
	}

	files, err := g.javaFiles()
	if err != nil {
		return nil, err
	}

	out := make(map[string][]byte, len(files))
	for _, f := range files {
		if _, dup := out[f.fileName()]; dup {
			return nil, fmt.Errorf("two generated classes map to %s", f.fileName())
		}
		h, err := header.render(f.name)
		if err != nil {
			return nil, err
		}
		out[f.fileName()] = f.render(h, g.cfg.PackageName)
	}
	return out, nil
}

// SaveGranular writes one file per generated class into dir, overwriting
// existing files. All files are rendered before the first write. It
// returns the written paths in sorted order.
func (g *Generator) SaveGranular(dir string) ([]string, error) {
	files, err := g.Generate()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	paths := make([]string, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, files[name], 0o644); err != nil {
			return paths, fmt.Errorf("writing %s: %w", name, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// javaFiles builds the compilation units for every generated type.
func (g *Generator) javaFiles() ([]*javaFile, error) {
	if t := g.schema.Type(g.nestUnder); t != nil && t.Kind != introspection.KindScalar {
		return nil, fmt.Errorf("entry-point class %s collides with schema type %s", g.nestUnder, t.Name)
	}

	files := []*javaFile{g.emitRoot()}
	for _, t := range g.schema.Types() {
		if introspection.IsIntrospectionType(t.Name) {
			continue
		}

		var (
			emitted []*javaFile
			err     error
		)
		switch t.Kind {
		case introspection.KindEnum:
			emitted, err = collect(g.emitEnum(t))
		case introspection.KindInputObject:
			emitted, err = collect(g.emitInputObject(t))
		case introspection.KindObject:
			emitted, err = g.emitObjectFiles(t)
		case introspection.KindInterface, introspection.KindUnion:
			emitted, err = g.emitAbstractFiles(t)
		}
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", t.Name, err)
		}
		files = append(files, emitted...)
	}
	return files, nil
}

func (g *Generator) emitObjectFiles(t *introspection.Type) ([]*javaFile, error) {
	response, err := g.emitResponse(t)
	if err != nil {
		return nil, err
	}
	query, err := g.emitQuery(t)
	if err != nil {
		return nil, err
	}
	return []*javaFile{response, query, g.emitQueryDefinition(t)}, nil
}

func (g *Generator) emitAbstractFiles(t *introspection.Type) ([]*javaFile, error) {
	iface, err := g.emitAbstract(t)
	if err != nil {
		return nil, err
	}
	unknown, err := g.emitUnknown(t)
	if err != nil {
		return nil, err
	}
	query, err := g.emitQuery(t)
	if err != nil {
		return nil, err
	}
	return []*javaFile{iface, unknown, query, g.emitQueryDefinition(t)}, nil
}

func collect(f *javaFile, err error) ([]*javaFile, error) {
	if err != nil {
		return nil, err
	}
	return []*javaFile{f}, nil
}
