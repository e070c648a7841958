package service

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const authResponseSchema = `{
  "type": "object",
  "required": ["tokens", "user"],
  "properties": {
    "tokens": {
      "type": "object",
      "required": ["access"],
      "properties": {"access": {"type": "string", "pattern": "\\S"}}
    },
    "user": {"type": "object"}
  }
}`

const profileResponseSchema = `{
  "type": "object",
  "required": ["user"],
  "properties": {"user": {"type": "object"}}
}`

var (
	authSchema    = mustSchema(authResponseSchema)
	profileSchema = mustSchema(profileResponseSchema)
)

func mustSchema(src string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("compile schema: %v", err))
	}
	return schema
}

func checkShape(schema *gojsonschema.Schema, raw []byte) error {
	result, err := schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("validate payload: %w", err)
	}
	if result.Valid() {
		return nil
	}
	problems := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		problems = append(problems, e.String())
	}
	return fmt.Errorf("unexpected payload shape: %s", strings.Join(problems, "; "))
}
