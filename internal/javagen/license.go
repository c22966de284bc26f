package javagen

import (
	"fmt"
	"os"

	"github.com/flosch/pongo2/v6"
)

// licenseHeader produces the header prepended to each generated file.
// Headers are copied verbatim unless they were loaded as a template, in
// which case the template sees "package", "type" and "year".
type licenseHeader struct {
	text string
	tpl  *pongo2.Template
	pkg  string
	year int
}

func loadLicenseHeader(path string, template bool, pkg string, year int) (*licenseHeader, error) {
	if path == "" {
		return &licenseHeader{pkg: pkg, year: year}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading license header: %w", err)
	}
	if !template {
		return &licenseHeader{text: string(data), pkg: pkg, year: year}, nil
	}

	tpl, err := pongo2.FromString(string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing license header %s: %w", path, err)
	}
	return &licenseHeader{tpl: tpl, pkg: pkg, year: year}, nil
}

func (h *licenseHeader) render(typeName string) (string, error) {
	if h.tpl == nil {
		return h.text, nil
	}
	out, err := h.tpl.Execute(pongo2.Context{
		"package": h.pkg,
		"type":    typeName,
		"year":    h.year,
	})
	if err != nil {
		return "", fmt.Errorf("rendering license header for %s: %w", typeName, err)
	}
	return out, nil
}
