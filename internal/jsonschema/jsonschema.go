package jsonschema

import (
	"reflect"
	"strings"
)

// Schema is a JSON-Schema shaped description of a value. It is the format
// used for tool parameter declarations: the core treats it as opaque and
// adapters translate it into each vendor's function-schema dialect.
type Schema struct {
	// Type specifies the data type ("object", "array", "string", "number", ...)
	Type        string   `json:"type,omitempty"`
	Description string   `json:"description,omitempty"`
	Required    []string `json:"required,omitempty"`
	// Properties of an object type, each with its own schema
	Properties map[string]*Schema `json:"properties,omitempty"`
	// Items defines the element schema for array types
	Items *Schema `json:"items,omitempty"`
	// Enum lists the allowed values for the parameter
	Enum []any `json:"enum,omitempty"`
	// AdditionalProperties controls whether undeclared object keys are allowed
	AdditionalProperties any `json:"additionalProperties,omitempty"`
}

// Generate derives a Schema from the Go type T by reflection. Struct fields
// are mapped through their `json` tags, `description` tags become property
// descriptions, and fields are required unless tagged `optional:"true"` or
// marked omitempty. Pointer fields are treated as their element type.
func Generate[T any]() *Schema {
	return generate(reflect.TypeFor[T]())
}

// GenerateForType is the non-generic variant of [Generate] for callers that
// only hold a reflect.Type at runtime.
func GenerateForType(t reflect.Type) *Schema {
	return generate(t)
}

func generate(t reflect.Type) *Schema {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return &Schema{Type: "object"}
	}

	switch t.Kind() {
	case reflect.String:
		return &Schema{Type: "string"}
	case reflect.Bool:
		return &Schema{Type: "boolean"}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &Schema{Type: "integer"}
	case reflect.Float32, reflect.Float64:
		return &Schema{Type: "number"}
	case reflect.Slice, reflect.Array:
		return &Schema{Type: "array", Items: generate(t.Elem())}
	case reflect.Map:
		return &Schema{Type: "object", AdditionalProperties: generate(t.Elem())}
	case reflect.Struct:
		return generateStruct(t)
	case reflect.Interface:
		// No static shape available; accept anything.
		return &Schema{}
	default:
		return &Schema{Type: "string"}
	}
}

func generateStruct(t reflect.Type) *Schema {
	schema := &Schema{
		Type:       "object",
		Properties: map[string]*Schema{},
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		// Flatten embedded structs into the parent object.
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			embedded := generateStruct(field.Type)
			for name, prop := range embedded.Properties {
				schema.Properties[name] = prop
			}
			schema.Required = append(schema.Required, embedded.Required...)
			continue
		}

		name, omitempty, skip := parseJSONTag(field)
		if skip {
			continue
		}

		prop := generate(field.Type)
		if description := field.Tag.Get("description"); description != "" {
			prop.Description = description
		}
		if enum := field.Tag.Get("enum"); enum != "" {
			for _, v := range strings.Split(enum, ",") {
				prop.Enum = append(prop.Enum, strings.TrimSpace(v))
			}
		}
		schema.Properties[name] = prop

		optional := omitempty ||
			field.Type.Kind() == reflect.Pointer ||
			field.Tag.Get("optional") == "true"
		if !optional {
			schema.Required = append(schema.Required, name)
		}
	}

	return schema
}

// parseJSONTag resolves the effective property name of a struct field from
// its json tag, falling back to the Go field name when untagged.
func parseJSONTag(field reflect.StructField) (name string, omitempty, skip bool) {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return "", false, true
	}

	name = field.Name
	parts := strings.Split(tag, ",")
	if parts[0] != "" {
		name = parts[0]
	}
	for _, opt := range parts[1:] {
		if opt == "omitempty" {
			omitempty = true
		}
	}
	return name, omitempty, false
}
