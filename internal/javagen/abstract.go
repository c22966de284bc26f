package javagen

import (
	"fmt"

	"github.com/andrewkroh/gqljavagen/internal/introspection"
)

// emitAbstract writes the Java interface of a GraphQL interface or union.
func (g *Generator) emitAbstract(t *introspection.Type) (*javaFile, error) {
	class := ClassName(t.Name)
	f := newJavaFile(class)

	f.doc(t.Description, "")
	f.open("public interface %s {", class)
	f.line("String getGraphQlTypeName();")
	for _, fld := range g.fields(t) {
		jt, err := g.javaType(f, fld.Type)
		if err != nil {
			return nil, fmt.Errorf("field %s.%s: %w", t.Name, fld.Name, err)
		}
		f.line("")
		f.doc(fld.Description, deprecation(fld.IsDeprecated, fld.DeprecationReason))
		f.line("%s %s();", jt, AccessorName("get", fld.Name))
	}
	f.close("}")
	return f, nil
}

// emitUnknown writes the fallback response class used when the server
// returns a concrete type the client does not know about.
func (g *Generator) emitUnknown(t *introspection.Type) (*javaFile, error) {
	class := ClassName(t.Name)
	unknown := "Unknown" + class
	f := newJavaFile(unknown)

	f.open("public class %s extends AbstractResponse<%s> implements %s {", unknown, unknown, class)
	if err := g.writeResponseBody(f, t, unknown); err != nil {
		return nil, err
	}
	f.line("")

	f.open("public static %s create(JsonObject fields) throws SchemaViolationError {", class)
	f.line("String typeName = fields.getAsJsonPrimitive(\"__typename\").getAsString();")
	f.open("switch (typeName) {")
	for _, impl := range g.schema.Implementations(t.Name) {
		f.open("case %s: {", javaString(impl.Name))
		f.line("return new %s(fields);", ClassName(impl.Name))
		f.close("}")
		f.line("")
	}
	f.open("default: {")
	f.line("return new %s(fields);", unknown)
	f.close("}")
	f.close("}")
	f.close("}")
	f.close("}")
	return f, nil
}
