package introspection

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-json"
)

// ErrMalformedSchema is returned when the input is not valid JSON or does
// not have the shape of an introspection result.
var ErrMalformedSchema = errors.New("malformed introspection result")

// document accepts both the full GraphQL response ({"data": {"__schema":
// ...}}) and the bare {"__schema": ...} form some tools write.
type document struct {
	Data *struct {
		Schema *rawSchema `json:"__schema"`
	} `json:"data"`
	Schema *rawSchema `json:"__schema"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

type rawSchema struct {
	QueryType        *namedRef `json:"queryType"`
	MutationType     *namedRef `json:"mutationType"`
	SubscriptionType *namedRef `json:"subscriptionType"`
	Types            []*Type   `json:"types"`
}

type namedRef struct {
	Name string `json:"name"`
}

func (r *namedRef) name() string {
	if r == nil {
		return ""
	}
	return r.Name
}

// Load reads and parses an introspection result file.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema: %w", err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing schema %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes an introspection result.
func Parse(data []byte) (*Schema, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSchema, err)
	}

	raw := doc.Schema
	if doc.Data != nil && doc.Data.Schema != nil {
		raw = doc.Data.Schema
	}
	if raw == nil {
		if len(doc.Errors) > 0 {
			msgs := make([]string, 0, len(doc.Errors))
			for _, e := range doc.Errors {
				msgs = append(msgs, e.Message)
			}
			return nil, fmt.Errorf("%w: server returned errors: %s", ErrMalformedSchema, strings.Join(msgs, "; "))
		}
		return nil, fmt.Errorf("%w: missing __schema", ErrMalformedSchema)
	}
	if raw.Types == nil {
		return nil, fmt.Errorf("%w: __schema has no types", ErrMalformedSchema)
	}

	s := &Schema{
		QueryTypeName:        raw.QueryType.name(),
		MutationTypeName:     raw.MutationType.name(),
		SubscriptionTypeName: raw.SubscriptionType.name(),
		types:                raw.Types,
		byName:               make(map[string]*Type, len(raw.Types)),
	}

	if err := s.index(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSchema, err)
	}
	return s, nil
}

// index builds the name lookup and checks the structural invariants the
// code generator relies on.
func (s *Schema) index() error {
	for i, t := range s.types {
		if t == nil {
			return fmt.Errorf("types[%d] is null", i)
		}
		if t.Name == "" {
			return fmt.Errorf("types[%d] has no name", i)
		}
		if !t.Kind.Valid() || t.Kind == KindList || t.Kind == KindNonNull {
			return fmt.Errorf("type %s has invalid kind %q", t.Name, t.Kind)
		}
		if _, dup := s.byName[t.Name]; dup {
			return fmt.Errorf("type %s is defined more than once", t.Name)
		}
		s.byName[t.Name] = t
	}

	for _, t := range s.types {
		for i, f := range t.Fields {
			if f == nil || f.Name == "" {
				return fmt.Errorf("type %s: fields[%d] is null or unnamed", t.Name, i)
			}
			if err := checkRef(f.Type); err != nil {
				return fmt.Errorf("field %s.%s: %w", t.Name, f.Name, err)
			}
			for j, a := range f.Args {
				if a == nil || a.Name == "" {
					return fmt.Errorf("field %s.%s: args[%d] is null or unnamed", t.Name, f.Name, j)
				}
				if err := checkRef(a.Type); err != nil {
					return fmt.Errorf("argument %s.%s(%s): %w", t.Name, f.Name, a.Name, err)
				}
			}
		}
		for i, f := range t.InputFields {
			if f == nil || f.Name == "" {
				return fmt.Errorf("type %s: inputFields[%d] is null or unnamed", t.Name, i)
			}
			if err := checkRef(f.Type); err != nil {
				return fmt.Errorf("input field %s.%s: %w", t.Name, f.Name, err)
			}
		}
		for i, v := range t.EnumValues {
			if v == nil || v.Name == "" {
				return fmt.Errorf("type %s: enumValues[%d] is null or unnamed", t.Name, i)
			}
		}
		for i, ref := range t.Interfaces {
			if err := checkRef(ref); err != nil {
				return fmt.Errorf("type %s: interfaces[%d]: %w", t.Name, i, err)
			}
		}
		for i, ref := range t.PossibleTypes {
			if err := checkRef(ref); err != nil {
				return fmt.Errorf("type %s: possibleTypes[%d]: %w", t.Name, i, err)
			}
		}
	}

	if s.QueryTypeName != "" && s.byName[s.QueryTypeName] == nil {
		return fmt.Errorf("query type %s is not defined", s.QueryTypeName)
	}
	if s.MutationTypeName != "" && s.byName[s.MutationTypeName] == nil {
		return fmt.Errorf("mutation type %s is not defined", s.MutationTypeName)
	}
	return nil
}

// checkRef verifies that a type reference terminates in a named type.
func checkRef(r *TypeRef) error {
	if r == nil {
		return errors.New("missing type")
	}
	for cur := r; ; cur = cur.OfType {
		switch cur.Kind {
		case KindList, KindNonNull:
			if cur.OfType == nil {
				return fmt.Errorf("%s wrapper without ofType", cur.Kind)
			}
		default:
			if cur.Name == "" {
				return fmt.Errorf("unnamed %q type reference", cur.Kind)
			}
			return nil
		}
	}
}
