package javagen

import (
	"fmt"
	"strings"

	"github.com/andrewkroh/gqljavagen/internal/introspection"
)

// fields returns the output fields of t that are generated.
func (g *Generator) fields(t *introspection.Type) []*introspection.Field {
	var out []*introspection.Field
	for _, fld := range t.Fields {
		if fld.IsDeprecated && !g.cfg.IncludeDeprecated {
			continue
		}
		out = append(out, fld)
	}
	return out
}

// emitResponse writes the response class of an object type.
func (g *Generator) emitResponse(t *introspection.Type) (*javaFile, error) {
	class := ClassName(t.Name)
	f := newJavaFile(class)

	implements := ""
	if len(t.Interfaces) > 0 {
		names := make([]string, 0, len(t.Interfaces))
		for _, ref := range t.Interfaces {
			iface := g.schema.Type(ref.Name)
			if iface == nil {
				return nil, fmt.Errorf("unknown interface %q", ref.Name)
			}
			if iface.Kind != introspection.KindInterface {
				return nil, fmt.Errorf("%s implements %s, which is a %s", t.Name, iface.Name, iface.Kind)
			}
			names = append(names, ClassName(iface.Name))
		}
		implements = " implements " + strings.Join(names, ", ")
	}
	// Union membership is expressed through the union's marker interface.
	for _, u := range g.unionsOf[t.Name] {
		if implements == "" {
			implements = " implements " + ClassName(u)
		} else {
			implements += ", " + ClassName(u)
		}
	}

	f.doc(t.Description, "")
	f.open("public class %s extends AbstractResponse<%s>%s {", class, class, implements)
	if err := g.writeResponseBody(f, t, class); err != nil {
		return nil, err
	}
	f.close("}")
	return f, nil
}

// writeResponseBody writes constructors, accessors and unwrapsToObject for
// a response class named class holding the fields of t.
func (g *Generator) writeResponseBody(f *javaFile, t *introspection.Type, class string) error {
	f.use(
		supportPkg+".AbstractResponse",
		supportPkg+".SchemaViolationError",
		gsonPkg+".JsonElement",
		gsonPkg+".JsonObject",
		"java.util.Map",
	)
	fields := g.fields(t)

	f.open("public %s() {", class)
	f.close("}")
	f.line("")

	f.open("public %s(JsonObject fields) throws SchemaViolationError {", class)
	f.open("for (Map.Entry<String, JsonElement> field : fields.entrySet()) {")
	f.line("String key = field.getKey();")
	f.line("String fieldName = getFieldName(key);")
	f.open("switch (fieldName) {")
	for _, fld := range fields {
		f.open("case %s: {", javaString(fld.Name))
		value, err := g.writeDeserialize(f, fld.Type, "field.getValue()", 1)
		if err != nil {
			return fmt.Errorf("field %s.%s: %w", t.Name, fld.Name, err)
		}
		f.line("responseData.put(key, %s);", value)
		f.line("")
		f.line("break;")
		f.close("}")
		f.line("")
	}
	f.open("case \"__typename\": {")
	f.line("responseData.put(key, jsonAsString(field.getValue(), key));")
	f.line("break;")
	f.close("}")
	f.open("default: {")
	f.line("throw new SchemaViolationError(this, key, field.getValue());")
	f.close("}")
	f.close("}")
	f.close("}")
	f.close("}")
	f.line("")

	f.open("public String getGraphQlTypeName() {")
	f.line("return %s;", javaString(t.Name))
	f.close("}")

	for _, fld := range fields {
		jt, err := g.javaType(f, fld.Type)
		if err != nil {
			return fmt.Errorf("field %s.%s: %w", t.Name, fld.Name, err)
		}
		f.line("")
		f.doc(fld.Description, deprecation(fld.IsDeprecated, fld.DeprecationReason))
		f.open("public %s %s() {", jt, AccessorName("get", fld.Name))
		f.line("return (%s) get(%s);", jt, javaString(fld.Name))
		f.close("}")
		f.line("")
		f.open("public %s %s(%s arg) {", class, AccessorName("set", fld.Name), jt)
		f.line("optimisticData.put(getKey(%s), arg);", javaString(fld.Name))
		f.line("return this;")
		f.close("}")
	}
	f.line("")

	f.open("public boolean unwrapsToObject(String key) {")
	f.open("switch (getFieldName(key)) {")
	for _, fld := range fields {
		f.line("case %s: return %t;", javaString(fld.Name), g.kindOf(fld.Type).IsComposite())
		f.line("")
	}
	f.line("default: return false;")
	f.close("}")
	f.close("}")
	return nil
}

// emitQueryDefinition writes the functional interface used to define a
// selection on t.
func (g *Generator) emitQueryDefinition(t *introspection.Type) *javaFile {
	class := ClassName(t.Name)
	f := newJavaFile(class + "QueryDefinition")
	f.open("public interface %sQueryDefinition {", class)
	f.line("void define(%sQuery _queryBuilder);", class)
	f.close("}")
	return f
}

// emitQuery writes the query builder of an object, interface or union.
func (g *Generator) emitQuery(t *introspection.Type) (*javaFile, error) {
	class := ClassName(t.Name)
	query := class + "Query"
	f := newJavaFile(query)
	f.use(supportPkg + ".Query")

	f.doc(t.Description, "")
	f.open("public class %s extends Query<%s> {", query, query)
	f.open("%s(StringBuilder _queryBuilder) {", query)
	f.line("super(_queryBuilder);")
	if t.Kind != introspection.KindObject {
		f.line("startField(\"__typename\");")
	}
	f.close("}")

	for _, fld := range g.fields(t) {
		if err := g.writeFieldSelector(f, query, fld); err != nil {
			return nil, fmt.Errorf("field %s.%s: %w", t.Name, fld.Name, err)
		}
	}

	if t.Kind != introspection.KindObject {
		for _, impl := range g.schema.Implementations(t.Name) {
			implClass := ClassName(impl.Name)
			f.line("")
			f.open("public %s on%s(%sQueryDefinition queryDef) {", query, implClass, implClass)
			f.line("startInlineFragment(%s);", javaString(impl.Name))
			f.line("queryDef.define(new %sQuery(_queryBuilder));", implClass)
			f.line("_queryBuilder.append('}');")
			f.line("return this;")
			f.close("}")
		}
	}

	f.close("}")
	return f, nil
}

// writeFieldSelector writes the builder methods selecting fld, along with
// the argument class for its optional arguments.
func (g *Generator) writeFieldSelector(f *javaFile, query string, fld *introspection.Field) error {
	method := MemberName(fld.Name)
	upper := upperFirst(fld.Name)
	composite := g.kindOf(fld.Type).IsComposite()
	required := fld.RequiredArgs()
	optional := fld.OptionalArgs()

	var params []string
	var passthrough []string
	for _, a := range required {
		jt, err := g.javaType(f, a.Type)
		if err != nil {
			return fmt.Errorf("argument %s: %w", a.Name, err)
		}
		params = append(params, jt+" "+MemberName(a.Name))
		passthrough = append(passthrough, MemberName(a.Name))
	}

	argsClass := upper + "Arguments"
	argsDefinition := argsClass + "Definition"
	if len(optional) > 0 {
		f.use(supportPkg + ".Arguments")
		f.line("")
		f.open("public static class %s extends Arguments {", argsClass)
		f.open("%s(StringBuilder _queryBuilder, boolean _firstArgument) {", argsClass)
		f.line("super(_queryBuilder, _firstArgument);")
		f.close("}")
		for _, a := range optional {
			jt, err := g.javaType(f, a.Type)
			if err != nil {
				return fmt.Errorf("argument %s: %w", a.Name, err)
			}
			name := MemberName(a.Name)
			f.line("")
			f.doc(a.Description, "")
			f.open("public %s %s(%s value) {", argsClass, name, jt)
			f.open("if (value != null) {")
			f.line("startArgument(%s);", javaString(a.Name))
			if err := g.writeSerialize(f, a.Type, "value", 1); err != nil {
				return fmt.Errorf("argument %s: %w", a.Name, err)
			}
			f.close("}")
			f.line("return this;")
			f.close("}")
		}
		f.close("}")
		f.line("")
		f.open("public interface %s {", argsDefinition)
		f.line("void define(%s args);", argsClass)
		f.close("}")
	}

	queryDef := ""
	if composite {
		queryDef = ClassName(fld.Type.Named().Name) + "QueryDefinition"
	}

	// Convenience overload without optional arguments.
	if len(optional) > 0 {
		shortParams := append([]string{}, params...)
		call := append([]string{}, passthrough...)
		call = append(call, "args -> {}")
		if composite {
			shortParams = append(shortParams, queryDef+" queryDef")
			call = append(call, "queryDef")
		}
		f.line("")
		f.doc(fld.Description, deprecation(fld.IsDeprecated, fld.DeprecationReason))
		f.open("public %s %s(%s) {", query, method, strings.Join(shortParams, ", "))
		f.line("return %s(%s);", method, strings.Join(call, ", "))
		f.close("}")
	}

	fullParams := append([]string{}, params...)
	if len(optional) > 0 {
		fullParams = append(fullParams, argsDefinition+" argsDef")
	}
	if composite {
		fullParams = append(fullParams, queryDef+" queryDef")
	}

	f.line("")
	f.doc(fld.Description, deprecation(fld.IsDeprecated, fld.DeprecationReason))
	f.open("public %s %s(%s) {", query, method, strings.Join(fullParams, ", "))
	f.line("startField(%s);", javaString(fld.Name))

	if len(required) > 0 {
		f.line("")
		f.line("_queryBuilder.append(\"(\");")
		for i, a := range required {
			if i > 0 {
				f.line("_queryBuilder.append(',');")
			}
			f.line("_queryBuilder.append(%s);", javaString(a.Name+":"))
			if err := g.writeSerialize(f, a.Type, MemberName(a.Name), 1); err != nil {
				return fmt.Errorf("argument %s: %w", a.Name, err)
			}
		}
	}

	if len(optional) > 0 {
		f.line("")
		f.line("%s args = new %s(_queryBuilder, %t);", argsClass, argsClass, len(required) == 0)
		f.line("argsDef.define(args);")
		f.line("%s.end(args);", argsClass)
	} else if len(required) > 0 {
		f.line("")
		f.line("_queryBuilder.append(')');")
	}

	if composite {
		f.line("")
		f.line("_queryBuilder.append('{');")
		f.line("queryDef.define(new %sQuery(_queryBuilder));", ClassName(fld.Type.Named().Name))
		f.line("_queryBuilder.append('}');")
	}
	f.line("")
	f.line("return this;")
	f.close("}")
	return nil
}
