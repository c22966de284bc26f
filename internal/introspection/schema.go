// Package introspection models the result of a GraphQL introspection query.
//
// Only the parts of the __Schema document needed for client code generation
// are decoded. Directives and specifiedByURL are ignored.
package introspection

import (
	"sort"
	"strings"
)

// Kind is a GraphQL __TypeKind value.
type Kind string

const (
	KindScalar      Kind = "SCALAR"
	KindObject      Kind = "OBJECT"
	KindInterface   Kind = "INTERFACE"
	KindUnion       Kind = "UNION"
	KindEnum        Kind = "ENUM"
	KindInputObject Kind = "INPUT_OBJECT"
	KindList        Kind = "LIST"
	KindNonNull     Kind = "NON_NULL"
)

// Valid reports whether k is one of the __TypeKind values.
func (k Kind) Valid() bool {
	switch k {
	case KindScalar, KindObject, KindInterface, KindUnion, KindEnum,
		KindInputObject, KindList, KindNonNull:
		return true
	}
	return false
}

// IsComposite reports whether values of the kind carry a selection set.
func (k Kind) IsComposite() bool {
	return k == KindObject || k == KindInterface || k == KindUnion
}

// builtinScalars are the scalars every GraphQL server provides.
var builtinScalars = map[string]bool{
	"Int":     true,
	"Float":   true,
	"String":  true,
	"Boolean": true,
	"ID":      true,
}

// IsBuiltinScalar reports whether name is one of the specified scalars.
func IsBuiltinScalar(name string) bool {
	return builtinScalars[name]
}

// IsIntrospectionType reports whether name belongs to the introspection
// system (__Schema, __Type, ...).
func IsIntrospectionType(name string) bool {
	return strings.HasPrefix(name, "__")
}

// Schema is a decoded introspection result.
type Schema struct {
	QueryTypeName        string
	MutationTypeName     string
	SubscriptionTypeName string

	types  []*Type
	byName map[string]*Type
}

// Type is a named GraphQL type.
type Type struct {
	Kind          Kind          `json:"kind"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Fields        []*Field      `json:"fields"`
	InputFields   []*InputValue `json:"inputFields"`
	Interfaces    []*TypeRef    `json:"interfaces"`
	EnumValues    []*EnumValue  `json:"enumValues"`
	PossibleTypes []*TypeRef    `json:"possibleTypes"`
}

// Field is an output field of an object or interface type.
type Field struct {
	Name              string        `json:"name"`
	Description       string        `json:"description"`
	Args              []*InputValue `json:"args"`
	Type              *TypeRef      `json:"type"`
	IsDeprecated      bool          `json:"isDeprecated"`
	DeprecationReason string        `json:"deprecationReason"`
}

// RequiredArgs returns the arguments declared non-null without a default.
func (f *Field) RequiredArgs() []*InputValue {
	var out []*InputValue
	for _, a := range f.Args {
		if a.Required() {
			out = append(out, a)
		}
	}
	return out
}

// OptionalArgs returns the arguments that may be omitted.
func (f *Field) OptionalArgs() []*InputValue {
	var out []*InputValue
	for _, a := range f.Args {
		if !a.Required() {
			out = append(out, a)
		}
	}
	return out
}

// InputValue is a field argument or an input object field.
type InputValue struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Type         *TypeRef `json:"type"`
	DefaultValue *string  `json:"defaultValue"`
}

// Required reports whether a value must be supplied.
func (v *InputValue) Required() bool {
	return v.Type.IsNonNull() && v.DefaultValue == nil
}

// EnumValue is a single value of an enum type.
type EnumValue struct {
	Name              string `json:"name"`
	Description       string `json:"description"`
	IsDeprecated      bool   `json:"isDeprecated"`
	DeprecationReason string `json:"deprecationReason"`
}

// TypeRef is a possibly wrapped reference to a named type.
type TypeRef struct {
	Kind   Kind     `json:"kind"`
	Name   string   `json:"name"`
	OfType *TypeRef `json:"ofType"`
}

// IsNonNull reports whether the outermost wrapper is NON_NULL.
func (r *TypeRef) IsNonNull() bool {
	return r != nil && r.Kind == KindNonNull
}

// IsList reports whether the reference, ignoring a NON_NULL wrapper, is a
// list.
func (r *TypeRef) IsList() bool {
	return r.Nullable().Kind == KindList
}

// Nullable strips a single NON_NULL wrapper.
func (r *TypeRef) Nullable() *TypeRef {
	if r.IsNonNull() && r.OfType != nil {
		return r.OfType
	}
	return r
}

// Named returns the innermost named type reference.
func (r *TypeRef) Named() *TypeRef {
	cur := r
	for cur != nil && cur.OfType != nil {
		cur = cur.OfType
	}
	return cur
}

// String renders the reference in GraphQL notation, e.g. "[String!]!".
func (r *TypeRef) String() string {
	if r == nil {
		return ""
	}
	switch r.Kind {
	case KindNonNull:
		return r.OfType.String() + "!"
	case KindList:
		return "[" + r.OfType.String() + "]"
	}
	return r.Name
}

// Types returns all named types sorted by name.
func (s *Schema) Types() []*Type {
	out := make([]*Type, len(s.types))
	copy(out, s.types)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// Type returns the named type, or nil.
func (s *Schema) Type(name string) *Type {
	return s.byName[name]
}

// QueryType returns the query root type, or nil.
func (s *Schema) QueryType() *Type {
	return s.Type(s.QueryTypeName)
}

// MutationType returns the mutation root type, or nil when the schema has
// no mutations.
func (s *Schema) MutationType() *Type {
	if s.MutationTypeName == "" {
		return nil
	}
	return s.Type(s.MutationTypeName)
}

// SubscriptionType returns the subscription root type, or nil.
func (s *Schema) SubscriptionType() *Type {
	if s.SubscriptionTypeName == "" {
		return nil
	}
	return s.Type(s.SubscriptionTypeName)
}

// Implementations returns the object types that implement or are members
// of the named interface or union, sorted by name.
func (s *Schema) Implementations(name string) []*Type {
	t := s.Type(name)
	if t == nil {
		return nil
	}
	var out []*Type
	for _, ref := range t.PossibleTypes {
		if pt := s.Type(ref.Name); pt != nil {
			out = append(out, pt)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}
