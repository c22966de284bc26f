package javagen

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
)

const indentUnit = "    "

// javaFile accumulates the body and imports of a single compilation unit.
type javaFile struct {
	name    string // class name; the file is name + ".java"
	imports map[string]bool
	body    bytes.Buffer
	depth   int
}

func newJavaFile(name string) *javaFile {
	return &javaFile{name: name, imports: make(map[string]bool)}
}

func (f *javaFile) fileName() string {
	return f.name + ".java"
}

// use records an import. Classes in java.lang need none.
func (f *javaFile) use(imports ...string) {
	for _, imp := range imports {
		if imp == "" || strings.HasPrefix(imp, "java.lang.") && strings.Count(imp, ".") == 2 {
			continue
		}
		f.imports[imp] = true
	}
}

// line writes a formatted, indented line. An empty format writes a blank
// line.
func (f *javaFile) line(format string, args ...any) {
	if format == "" {
		f.body.WriteByte('\n')
		return
	}
	f.body.WriteString(strings.Repeat(indentUnit, f.depth))
	fmt.Fprintf(&f.body, format, args...)
	f.body.WriteByte('\n')
}

// open writes a line and indents the following ones.
func (f *javaFile) open(format string, args ...any) {
	f.line(format, args...)
	f.depth++
}

// close dedents and writes a closing line.
func (f *javaFile) close(s string) {
	f.depth--
	f.line("%s", s)
}

// doc writes a Javadoc comment. Nothing is written for an empty text.
func (f *javaFile) doc(text string, deprecated string) {
	text = strings.TrimSpace(text)
	if text == "" && deprecated == "" {
		return
	}
	f.line("/**")
	if text != "" {
		for _, l := range strings.Split(text, "\n") {
			f.docLine(l)
		}
	}
	if deprecated != "" {
		if text != "" {
			f.line(" *")
		}
		f.docLine("@deprecated " + deprecated)
	}
	f.line(" */")
}

func (f *javaFile) docLine(text string) {
	text = strings.ReplaceAll(strings.TrimRight(text, " \t"), "*/", "*&#47;")
	if text == "" {
		f.line(" *")
		return
	}
	f.line(" * %s", text)
}

// render assembles header, package clause, imports and body.
func (f *javaFile) render(header, pkg string) []byte {
	var out bytes.Buffer
	if header != "" {
		out.WriteString(header)
		if !strings.HasSuffix(header, "\n") {
			out.WriteByte('\n')
		}
		out.WriteByte('\n')
	}
	fmt.Fprintf(&out, "package %s;\n\n", pkg)

	if len(f.imports) > 0 {
		imports := make([]string, 0, len(f.imports))
		for imp := range f.imports {
			imports = append(imports, imp)
		}
		sort.Strings(imports)
		for _, imp := range imports {
			fmt.Fprintf(&out, "import %s;\n", imp)
		}
		out.WriteByte('\n')
	}

	out.Write(f.body.Bytes())
	return out.Bytes()
}

// javaString quotes s as a Java string literal.
func javaString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
