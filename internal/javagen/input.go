package javagen

import (
	"fmt"

	"github.com/andrewkroh/gqljavagen/internal/introspection"
)

func (g *Generator) emitInputObject(t *introspection.Type) (*javaFile, error) {
	class := ClassName(t.Name)
	f := newJavaFile(class)
	f.use("java.io.Serializable")

	type inputField struct {
		field    *introspection.InputValue
		javaType string
		name     string
	}
	var fields, required []inputField
	for _, in := range t.InputFields {
		jt, err := g.javaType(f, in.Type)
		if err != nil {
			return nil, fmt.Errorf("input field %s.%s: %w", t.Name, in.Name, err)
		}
		fld := inputField{field: in, javaType: jt, name: MemberName(in.Name)}
		fields = append(fields, fld)
		if in.Required() {
			required = append(required, fld)
		}
	}

	f.doc(t.Description, "")
	f.open("public class %s implements Serializable {", class)
	for _, fld := range fields {
		f.line("private %s %s;", fld.javaType, fld.name)
	}
	if len(fields) > 0 {
		f.line("")
	}

	if len(required) > 0 {
		params := ""
		for i, fld := range required {
			if i > 0 {
				params += ", "
			}
			params += fld.javaType + " " + fld.name
		}
		f.open("public %s(%s) {", class, params)
		for _, fld := range required {
			f.line("this.%s = %s;", fld.name, fld.name)
		}
		f.close("}")
	} else {
		f.open("public %s() {", class)
		f.close("}")
	}

	for _, fld := range fields {
		f.line("")
		f.doc(fld.field.Description, "")
		f.open("public %s %s() {", fld.javaType, AccessorName("get", fld.field.Name))
		f.line("return %s;", fld.name)
		f.close("}")
		f.line("")
		f.open("public %s %s(%s %s) {", class, AccessorName("set", fld.field.Name), fld.javaType, fld.name)
		f.line("this.%s = %s;", fld.name, fld.name)
		f.line("return this;")
		f.close("}")
	}

	f.line("")
	f.open("public void appendTo(StringBuilder _queryBuilder) {")
	f.line("String separator = \"\";")
	f.line("_queryBuilder.append('{');")
	for _, fld := range fields {
		f.line("")
		nullable := !fld.field.Required()
		if nullable {
			f.open("if (%s != null) {", fld.name)
		}
		f.line("_queryBuilder.append(separator);")
		f.line("separator = \",\";")
		f.line("_queryBuilder.append(%s);", javaString(fld.field.Name+":"))
		if err := g.writeSerialize(f, fld.field.Type, fld.name, 1); err != nil {
			return nil, fmt.Errorf("input field %s.%s: %w", t.Name, fld.field.Name, err)
		}
		if nullable {
			f.close("}")
		}
	}
	f.line("")
	f.line("_queryBuilder.append('}');")
	f.close("}")
	f.close("}")
	return f, nil
}
