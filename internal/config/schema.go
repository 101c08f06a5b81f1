package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "playlint-config.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// SchemaJSON returns the JSON schema for the config file, generated from
// Options.
func SchemaJSON() ([]byte, error) {
	props := make(map[string]any, len(Options))
	for _, opt := range Options {
		props[opt.Name] = optionSchema(opt)
	}
	doc := map[string]any{
		"$schema":              "https://json-schema.org/draft/2020-12/schema",
		"title":                "playlint configuration",
		"type":                 "object",
		"properties":           props,
		"additionalProperties": false,
	}
	return json.MarshalIndent(doc, "", "  ")
}

func optionSchema(opt Option) map[string]any {
	s := map[string]any{"description": opt.Usage}
	switch opt.Kind {
	case KindBool:
		s["type"] = "boolean"
	case KindInt:
		s["type"] = "integer"
		s["minimum"] = 0
	case KindString:
		s["type"] = "string"
	case KindEnum:
		s["type"] = "string"
		s["enum"] = opt.Choices
	case KindList, KindWriteSet:
		// A scalar is promoted to a one-element list by the loader.
		s["type"] = []string{"array", "string", "null"}
		s["items"] = map[string]any{"type": "string"}
	case KindMapping:
		s["type"] = []string{"object", "null"}
	}
	return s
}

func configSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		data, err := SchemaJSON()
		if err != nil {
			schemaErr = fmt.Errorf("building config schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource(schemaURL, bytes.NewReader(data)); err != nil {
			schemaErr = fmt.Errorf("adding config schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}

// validateDocument checks a decoded config document against the schema.
// A copy of the document is round-tripped through JSON so that the validator
// sees plain JSON types; doc itself is left untouched.
func validateDocument(path string, doc any) error {
	schema, err := configSchema()
	if err != nil {
		return err
	}

	data, err := json.Marshal(stringKeys(doc))
	if err != nil {
		return &ConfigSchemaError{Path: path, Message: fmt.Sprintf("unsupported value: %v", err)}
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var instance any
	if err := dec.Decode(&instance); err != nil {
		return &ConfigSchemaError{Path: path, Message: err.Error()}
	}

	if err := schema.Validate(instance); err != nil {
		ve, ok := err.(*jsonschema.ValidationError)
		if !ok {
			return &ConfigSchemaError{Path: path, Message: err.Error()}
		}
		leaf := firstLeaf(ve)
		return &ConfigSchemaError{
			Path:    path,
			Key:     keyFromPointer(leaf.InstanceLocation),
			Message: leaf.Message,
		}
	}
	return nil
}

// stringKeys copies v with every map[any]any, which YAML produces for
// non-string keys such as 80: http, turned into a map[string]any.
func stringKeys(v any) any {
	switch val := v.(type) {
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprint(k)] = stringKeys(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = stringKeys(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = stringKeys(item)
		}
		return out
	}
	return v
}

func firstLeaf(ve *jsonschema.ValidationError) *jsonschema.ValidationError {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return ve
}

// keyFromPointer turns a JSON pointer such as /tags/0 into tags[0].
func keyFromPointer(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}
	parts := strings.Split(ptr, "/")
	var b strings.Builder
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		b.WriteString("[" + p + "]")
	}
	return b.String()
}
