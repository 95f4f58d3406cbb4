package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/bootstrap.schema.json
var schemaBytes []byte

const schemaURL = "bootstrap.schema.json"

var layoutSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
	if err != nil {
		return nil, fmt.Errorf("unmarshaling schema JSON: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, doc); err != nil {
		return nil, fmt.Errorf("adding schema resource: %w", err)
	}
	schema, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compiling schema: %w", err)
	}
	return schema, nil
})

var printer = message.NewPrinter(language.English)

// Issue is one schema violation in a config file.
type Issue struct {
	Key     string // offending key, empty for document-level problems
	Message string
}

func (i Issue) String() string {
	if i.Key == "" {
		return i.Message
	}
	return i.Key + ": " + i.Message
}

// InvalidFileError reports a config file that failed schema validation.
type InvalidFileError struct {
	Path   string
	Issues []Issue
}

func (e *InvalidFileError) Error() string {
	msgs := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		msgs[i] = issue.String()
	}
	return fmt.Sprintf("invalid config file %s: %s", e.Path, strings.Join(msgs, "; "))
}

// Validate checks a YAML config document against the embedded schema and
// returns its violations; none means the document is valid. The error is
// reserved for documents that are not YAML at all.
func Validate(data []byte) ([]Issue, error) {
	schema, err := layoutSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if doc == nil {
		doc = map[string]any{}
	}

	// The validator expects JSON-shaped values (json.Number, map[string]any).
	encoded, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("converting to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("preparing JSON for validation: %w", err)
	}

	var verr *jsonschema.ValidationError
	if err := schema.Validate(inst); !errors.As(err, &verr) {
		return nil, err
	}
	issues := leafIssues(verr, nil)
	if len(issues) == 0 {
		issues = []Issue{{Message: verr.Error()}}
	}
	return issues, nil
}

func leafIssues(ve *jsonschema.ValidationError, issues []Issue) []Issue {
	for _, cause := range ve.Causes {
		issues = leafIssues(cause, issues)
	}
	if len(ve.Causes) > 0 || ve.ErrorKind == nil {
		return issues
	}
	return append(issues, Issue{
		Key:     strings.Join(ve.InstanceLocation, "."),
		Message: ve.ErrorKind.LocalizedString(printer),
	})
}
