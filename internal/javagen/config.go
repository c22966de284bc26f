// Package javagen generates Java GraphQL client classes from an
// introspection schema.
//
// Generated sources depend on the com.shopify.graphql.support runtime
// (AbstractResponse, Query, Arguments, ID, SchemaViolationError,
// TopLevelResponse) and on Gson for JSON handling.
package javagen

import (
	"fmt"
	"strings"
)

// DefaultNestUnder is the name of the schema entry-point class.
const DefaultNestUnder = "Schema"

// ExprPlaceholder is substituted with the JSON element expression in a
// Scalar's DeserializeExpr.
const ExprPlaceholder = "{{expr}}"

// Config holds the options of a Generator.
type Config struct {
	// PackageName is the Java package declared by every generated file.
	PackageName string
	// LicenseHeaderFile is prepended verbatim to every generated file.
	LicenseHeaderFile string
	// LicenseTemplate renders LicenseHeaderFile as a pongo2 template with
	// the variables package, type and year.
	LicenseTemplate bool
	// NestUnder names the entry-point class holding the static query and
	// mutation builders. Defaults to DefaultNestUnder.
	NestUnder string
	// CustomScalars maps GraphQL scalars to Java types.
	CustomScalars []Scalar
	// IncludeDeprecated keeps deprecated fields and enum values.
	IncludeDeprecated bool
	// Year is exposed to the license header template. Zero means the
	// current year.
	Year int
}

// Scalar describes how a custom GraphQL scalar is represented in Java.
type Scalar struct {
	TypeName string `yaml:"type_name"`
	JavaType string `yaml:"java_type"`
	// DeserializeExpr is a Java expression producing a JavaType value. It
	// must contain ExprPlaceholder where the JsonElement goes; the
	// variable "key" is in scope.
	DeserializeExpr string   `yaml:"deserialize_expr"`
	Imports         []string `yaml:"imports"`
}

// Deserialize renders the deserialization expression for the given JSON
// element expression.
func (s Scalar) Deserialize(expr string) string {
	return strings.ReplaceAll(s.DeserializeExpr, ExprPlaceholder, expr)
}

// Validate checks that the mapping is usable.
func (s Scalar) Validate() error {
	switch {
	case s.TypeName == "":
		return fmt.Errorf("custom scalar has no type_name")
	case s.JavaType == "":
		return fmt.Errorf("custom scalar %s has no java_type", s.TypeName)
	case !strings.Contains(s.DeserializeExpr, ExprPlaceholder):
		return fmt.Errorf("custom scalar %s: deserialize_expr must contain %s", s.TypeName, ExprPlaceholder)
	}
	return nil
}

// DecimalScalar maps the Decimal scalar to java.math.BigDecimal.
func DecimalScalar() Scalar {
	return Scalar{
		TypeName:        "Decimal",
		JavaType:        "BigDecimal",
		DeserializeExpr: "new BigDecimal(jsonAsString(" + ExprPlaceholder + ", key))",
		Imports:         []string{"java.math.BigDecimal"},
	}
}
