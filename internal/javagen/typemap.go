package javagen

import (
	"fmt"

	"github.com/andrewkroh/gqljavagen/internal/introspection"
)

const (
	supportPkg = "com.shopify.graphql.support"
	gsonPkg    = "com.google.gson"
)

// builtinScalar describes how a specified GraphQL scalar maps to Java.
type builtinScalar struct {
	javaType string
	imports  []string
	// deserialize wraps a JsonElement expression.
	deserialize string
	// quoted values are serialized with Query.appendQuotedString.
	quoted bool
}

var builtinScalars = map[string]builtinScalar{
	"Int":     {javaType: "Integer", deserialize: "jsonAsInteger(%s, key)"},
	"Float":   {javaType: "Double", deserialize: "jsonAsDouble(%s, key)"},
	"String":  {javaType: "String", deserialize: "jsonAsString(%s, key)", quoted: true},
	"Boolean": {javaType: "Boolean", deserialize: "jsonAsBoolean(%s, key)"},
	"ID":      {javaType: "ID", imports: []string{supportPkg + ".ID"}, deserialize: "new ID(jsonAsString(%s, key))", quoted: true},
}

// javaType returns the Java type of a GraphQL type reference and records
// the imports it needs in f.
func (g *Generator) javaType(f *javaFile, ref *introspection.TypeRef) (string, error) {
	ref = ref.Nullable()
	if ref.Kind == introspection.KindList {
		elem, err := g.javaType(f, ref.OfType)
		if err != nil {
			return "", err
		}
		f.use("java.util.List")
		return "List<" + elem + ">", nil
	}
	return g.namedJavaType(f, ref.Name)
}

func (g *Generator) namedJavaType(f *javaFile, name string) (string, error) {
	if b, ok := builtinScalars[name]; ok {
		f.use(b.imports...)
		return b.javaType, nil
	}
	if s, ok := g.scalars[name]; ok {
		f.use(s.Imports...)
		return s.JavaType, nil
	}

	t := g.schema.Type(name)
	if t == nil {
		return "", fmt.Errorf("unknown type %q", name)
	}
	if t.Kind == introspection.KindScalar {
		// Unmapped custom scalars travel as their JSON string form.
		return "String", nil
	}
	return ClassName(t.Name), nil
}

// kindOf returns the kind of the named type at the core of ref.
func (g *Generator) kindOf(ref *introspection.TypeRef) introspection.Kind {
	named := ref.Named()
	if t := g.schema.Type(named.Name); t != nil {
		return t.Kind
	}
	if introspection.IsBuiltinScalar(named.Name) {
		return introspection.KindScalar
	}
	return named.Kind
}

// writeDeserialize writes the statements needed to convert the JsonElement
// expression src into a value of ref's Java type and returns the
// expression (or variable) holding the result.
func (g *Generator) writeDeserialize(f *javaFile, ref *introspection.TypeRef, src string, depth int) (string, error) {
	if ref.IsNonNull() {
		return g.writeDeserializeValue(f, ref.Nullable(), src, depth)
	}

	jt, err := g.javaType(f, ref)
	if err != nil {
		return "", err
	}
	optional := fmt.Sprintf("optional%d", depth)
	f.line("%s %s = null;", jt, optional)
	f.open("if (!%s.isJsonNull()) {", src)
	value, err := g.writeDeserializeValue(f, ref, src, depth)
	if err != nil {
		return "", err
	}
	f.line("%s = %s;", optional, value)
	f.close("}")
	f.line("")
	return optional, nil
}

func (g *Generator) writeDeserializeValue(f *javaFile, ref *introspection.TypeRef, src string, depth int) (string, error) {
	if ref.Kind == introspection.KindList {
		jt, err := g.javaType(f, ref)
		if err != nil {
			return "", err
		}
		list := fmt.Sprintf("list%d", depth)
		element := fmt.Sprintf("element%d", depth)
		f.use("java.util.ArrayList", gsonPkg+".JsonElement")
		f.line("%s %s = new ArrayList<>();", jt, list)
		f.open("for (JsonElement %s : jsonAsArray(%s, key)) {", element, src)
		item, err := g.writeDeserialize(f, ref.OfType, element, depth+1)
		if err != nil {
			return "", err
		}
		f.line("%s.add(%s);", list, item)
		f.close("}")
		f.line("")
		return list, nil
	}
	return g.deserializeNamed(f, ref.Name, src)
}

// deserializeNamed returns the expression converting src to the named type.
func (g *Generator) deserializeNamed(f *javaFile, name, src string) (string, error) {
	if b, ok := builtinScalars[name]; ok {
		f.use(b.imports...)
		return fmt.Sprintf(b.deserialize, src), nil
	}
	if s, ok := g.scalars[name]; ok {
		f.use(s.Imports...)
		return s.Deserialize(src), nil
	}

	t := g.schema.Type(name)
	if t == nil {
		return "", fmt.Errorf("unknown type %q", name)
	}
	class := ClassName(t.Name)
	switch t.Kind {
	case introspection.KindScalar:
		return fmt.Sprintf("jsonAsString(%s, key)", src), nil
	case introspection.KindEnum:
		return fmt.Sprintf("%s.fromGraphQl(jsonAsString(%s, key))", class, src), nil
	case introspection.KindObject:
		return fmt.Sprintf("new %s(jsonAsObject(%s, key))", class, src), nil
	case introspection.KindInterface, introspection.KindUnion:
		return fmt.Sprintf("Unknown%s.create(jsonAsObject(%s, key))", class, src), nil
	}
	return "", fmt.Errorf("type %s of kind %s cannot appear in a response", t.Name, t.Kind)
}

// writeSerialize writes the statements appending the GraphQL literal form
// of the Java value expression to _queryBuilder.
func (g *Generator) writeSerialize(f *javaFile, ref *introspection.TypeRef, value string, depth int) error {
	ref = ref.Nullable()
	if ref.Kind == introspection.KindList {
		elem, err := g.javaType(f, ref.OfType)
		if err != nil {
			return err
		}
		sep := fmt.Sprintf("listSeparator%d", depth)
		item := fmt.Sprintf("item%d", depth)
		f.line("_queryBuilder.append('[');")
		f.open("{")
		f.line("String %s = \"\";", sep)
		f.open("for (%s %s : %s) {", elem, item, value)
		f.line("_queryBuilder.append(%s);", sep)
		f.line("%s = \",\";", sep)
		if !ref.OfType.IsNonNull() {
			f.open("if (%s == null) {", item)
			f.line("_queryBuilder.append(\"null\");")
			f.close("} else {")
			f.depth++
		}
		if err := g.writeSerialize(f, ref.OfType, item, depth+1); err != nil {
			return err
		}
		if !ref.OfType.IsNonNull() {
			f.close("}")
		}
		f.close("}")
		f.close("}")
		f.line("_queryBuilder.append(']');")
		return nil
	}

	if b, ok := builtinScalars[ref.Name]; ok {
		if b.quoted {
			f.use(supportPkg + ".Query")
			f.line("Query.appendQuotedString(_queryBuilder, %s.toString());", value)
		} else {
			f.line("_queryBuilder.append(%s);", value)
		}
		return nil
	}
	if _, ok := g.scalars[ref.Name]; ok {
		f.use(supportPkg + ".Query")
		f.line("Query.appendQuotedString(_queryBuilder, %s.toString());", value)
		return nil
	}

	t := g.schema.Type(ref.Name)
	if t == nil {
		return fmt.Errorf("unknown type %q", ref.Name)
	}
	switch t.Kind {
	case introspection.KindScalar:
		f.use(supportPkg + ".Query")
		f.line("Query.appendQuotedString(_queryBuilder, %s.toString());", value)
	case introspection.KindEnum:
		f.line("_queryBuilder.append(%s.toString());", value)
	case introspection.KindInputObject:
		f.line("%s.appendTo(_queryBuilder);", value)
	default:
		return fmt.Errorf("type %s of kind %s cannot be used as input", t.Name, t.Kind)
	}
	return nil
}
