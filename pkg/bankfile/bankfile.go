// pkg/bankfile/bankfile.go
// Package bankfile validates question-bank override files before the
// built-in question sets are replaced with them.
package bankfile

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// bankSchema is the structural contract for an override file. Each scored
// stage carries its own question list; likert stages omit the correct flag,
// the technical stage requires it on exactly one option (enforced in
// validateSemantics, the schema only checks shape).
const bankSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["psychometric", "technical", "wiscar"],
  "additionalProperties": false,
  "properties": {
    "psychometric": {"$ref": "#/definitions/questionList"},
    "technical": {"$ref": "#/definitions/questionList"},
    "wiscar": {"$ref": "#/definitions/questionList"}
  },
  "definitions": {
    "questionList": {
      "type": "array",
      "minItems": 1,
      "items": {"$ref": "#/definitions/question"}
    },
    "question": {
      "type": "object",
      "required": ["id", "tag", "text", "options"],
      "additionalProperties": false,
      "properties": {
        "id": {"type": "string", "minLength": 1},
        "tag": {"type": "string", "minLength": 1},
        "text": {"type": "string", "minLength": 1},
        "options": {
          "type": "array",
          "minItems": 2,
          "items": {"$ref": "#/definitions/option"}
        }
      }
    },
    "option": {
      "type": "object",
      "required": ["value", "label"],
      "additionalProperties": false,
      "properties": {
        "value": {"type": "string", "minLength": 1},
        "label": {"type": "string", "minLength": 1},
        "isCorrect": {"type": "boolean"}
      }
    }
  }
}`

// ValidationError collects every problem found in one pass so operators can
// fix the file in a single round trip.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("bank file invalid: %s", strings.Join(e.Problems, "; "))
}

// ValidateFile checks a bank override file on disk.
func ValidateFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read bank file: %w", err)
	}
	return Validate(data)
}

// Validate checks raw bank JSON against the schema and the stage rules.
func Validate(data []byte) error {
	schema := gojsonschema.NewStringLoader(bankSchema)
	document := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schema, document)
	if err != nil {
		return fmt.Errorf("validate bank file: %w", err)
	}

	problems := make([]string, 0)
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}

	return validateSemantics(data)
}

type bankDoc struct {
	Psychometric []questionDoc `json:"psychometric"`
	Technical    []questionDoc `json:"technical"`
	WISCAR       []questionDoc `json:"wiscar"`
}

type questionDoc struct {
	ID      string      `json:"id"`
	Tag     string      `json:"tag"`
	Text    string      `json:"text"`
	Options []optionDoc `json:"options"`
}

type optionDoc struct {
	Value   string `json:"value"`
	Label   string `json:"label"`
	Correct bool   `json:"isCorrect"`
}

// validateSemantics covers the rules a JSON schema cannot express: ids unique
// within a stage, option values unique within a question, exactly one correct
// option per technical question, and none anywhere else.
func validateSemantics(data []byte) error {
	doc, err := decode(data)
	if err != nil {
		return err
	}

	problems := make([]string, 0)
	problems = append(problems, checkStage("psychometric", doc.Psychometric, false)...)
	problems = append(problems, checkStage("technical", doc.Technical, true)...)
	problems = append(problems, checkStage("wiscar", doc.WISCAR, false)...)

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

func decode(data []byte) (*bankDoc, error) {
	var doc bankDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse bank file: %w", err)
	}
	return &doc, nil
}

func checkStage(stage string, questions []questionDoc, scored bool) []string {
	problems := make([]string, 0)
	seen := make(map[string]bool, len(questions))

	for _, q := range questions {
		if seen[q.ID] {
			problems = append(problems, fmt.Sprintf("%s: duplicate question id %q", stage, q.ID))
		}
		seen[q.ID] = true

		values := make(map[string]bool, len(q.Options))
		correct := 0
		for _, opt := range q.Options {
			if values[opt.Value] {
				problems = append(problems, fmt.Sprintf("%s/%s: duplicate option value %q", stage, q.ID, opt.Value))
			}
			values[opt.Value] = true
			if opt.Correct {
				correct++
			}
		}

		if scored && correct != 1 {
			problems = append(problems, fmt.Sprintf("%s/%s: expected exactly one correct option, found %d", stage, q.ID, correct))
		}
		if !scored && correct != 0 {
			problems = append(problems, fmt.Sprintf("%s/%s: likert questions must not flag a correct option", stage, q.ID))
		}
	}
	return problems
}
