package javagen

import (
	"strings"
	"unicode"
)

// reservedWords are Java keywords and literals that cannot be used as
// identifiers.
var reservedWords = map[string]bool{
	"abstract": true, "assert": true, "boolean": true, "break": true,
	"byte": true, "case": true, "catch": true, "char": true,
	"class": true, "const": true, "continue": true, "default": true,
	"do": true, "double": true, "else": true, "enum": true,
	"extends": true, "final": true, "finally": true, "float": true,
	"for": true, "goto": true, "if": true, "implements": true,
	"import": true, "instanceof": true, "int": true, "interface": true,
	"long": true, "native": true, "new": true, "package": true,
	"private": true, "protected": true, "public": true, "return": true,
	"short": true, "static": true, "strictfp": true, "super": true,
	"switch": true, "synchronized": true, "this": true, "throw": true,
	"throws": true, "transient": true, "try": true, "void": true,
	"volatile": true, "while": true, "true": true, "false": true,
	"null": true, "var": true, "record": true, "yield": true,
}

// objectMethods are java.lang.Object accessors that generated getters must
// not shadow.
var objectMethods = map[string]bool{
	"getClass": true,
}

// escapeReserved appends "Value" to identifiers that collide with Java
// keywords.
func escapeReserved(name string) string {
	if reservedWords[name] {
		return name + "Value"
	}
	return name
}

// ClassName converts a GraphQL type name into a Java class name.
func ClassName(graphqlName string) string {
	return escapeReserved(upperFirst(graphqlName))
}

// MemberName converts a GraphQL field or argument name into a Java method
// or variable name.
func MemberName(graphqlName string) string {
	return escapeReserved(lowerFirst(graphqlName))
}

// AccessorName builds a bean accessor ("get", "set") for a GraphQL field.
func AccessorName(prefix, graphqlName string) string {
	name := prefix + upperFirst(graphqlName)
	if objectMethods[name] {
		return name + "Value"
	}
	return name
}

// EnumConstant converts a GraphQL enum value into a Java enum constant in
// SCREAMING_SNAKE_CASE.
func EnumConstant(value string) string {
	words := splitWords(value)
	for i, w := range words {
		words[i] = strings.ToUpper(w)
	}
	name := strings.Join(words, "_")
	if name == "" || unicode.IsDigit([]rune(name)[0]) {
		name = "_" + name
	}
	return name
}

// splitWords breaks an identifier string into its component words. It
// handles snake_case, kebab-case, dot-separated, and camelCase boundaries.
func splitWords(s string) []string {
	var words []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '_' || r == '-' || r == '.':
			flush()
		case unicode.IsUpper(r):
			// "URLParser" splits into "URL" and "Parser": an upper run ends
			// one rune before the next lowercase letter.
			if current.Len() > 0 && i > 0 && unicode.IsLower(runes[i-1]) {
				flush()
			} else if current.Len() > 1 && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
				flush()
			}
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return words
}

// upperFirst returns s with its first rune uppercased. The rest is kept
// as-is because GraphQL names are already camel-cased.
func upperFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// lowerFirst returns s with its first rune lowercased.
func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}
