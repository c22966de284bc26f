package javagen

import (
	"fmt"

	"github.com/andrewkroh/gqljavagen/internal/introspection"
)

const unknownEnumValue = "UNKNOWN_VALUE"

func (g *Generator) emitEnum(t *introspection.Type) (*javaFile, error) {
	class := ClassName(t.Name)
	f := newJavaFile(class)

	// constant name → GraphQL value
	constants := map[string]string{unknownEnumValue: ""}
	var values []*introspection.EnumValue
	for _, v := range t.EnumValues {
		if v.IsDeprecated && !g.cfg.IncludeDeprecated {
			continue
		}
		c := EnumConstant(v.Name)
		if existing, ok := constants[c]; ok {
			if existing == "" {
				return nil, fmt.Errorf("enum value %q conflicts with the generated %s constant", v.Name, unknownEnumValue)
			}
			return nil, fmt.Errorf("enum values %q and %q both map to constant %s", existing, v.Name, c)
		}
		constants[c] = v.Name
		values = append(values, v)
	}

	f.doc(t.Description, "")
	f.open("public enum %s {", class)
	for _, v := range values {
		f.doc(v.Description, deprecation(v.IsDeprecated, v.DeprecationReason))
		if v.IsDeprecated {
			f.line("@Deprecated")
		}
		f.line("%s,", EnumConstant(v.Name))
		f.line("")
	}
	f.line("%s;", unknownEnumValue)
	f.line("")

	f.open("public static %s fromGraphQl(String value) {", class)
	f.open("if (value == null) {")
	f.line("return null;")
	f.close("}")
	f.line("")
	f.open("switch (value) {")
	for _, v := range values {
		f.open("case %s: {", javaString(v.Name))
		f.line("return %s;", EnumConstant(v.Name))
		f.close("}")
		f.line("")
	}
	f.open("default: {")
	f.line("return %s;", unknownEnumValue)
	f.close("}")
	f.close("}")
	f.close("}")
	f.line("")

	f.open("public String toString() {")
	f.open("switch (this) {")
	for _, v := range values {
		f.open("case %s: {", EnumConstant(v.Name))
		f.line("return %s;", javaString(v.Name))
		f.close("}")
		f.line("")
	}
	f.open("default: {")
	f.line("return \"\";")
	f.close("}")
	f.close("}")
	f.close("}")
	f.close("}")
	return f, nil
}

// deprecation returns the @deprecated text for a deprecated member.
func deprecation(deprecated bool, reason string) string {
	if !deprecated {
		return ""
	}
	if reason == "" {
		return "No longer supported."
	}
	return reason
}
