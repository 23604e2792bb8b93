package llm

import (
	"fmt"
	"strings"
)

// ResponseSchema describes the JSON object a prompt asks the model to return.
type ResponseSchema struct {
	Name        string        // Schema name, used in logs
	Description string        // Task description placed before the input
	InputLabel  string        // Heading for the input text
	Fields      []SchemaField // Expected output fields
	Guidelines  []string      // Scoring or content guidelines placed after the input
}

// SchemaField defines a single field in the expected output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint shown to the model, e.g. "<score 0-100>"
	Description string // Optional explanation for the model
}

// BuildPrompt renders the task description, the input text, the expected JSON
// structure and the guidelines into a single prompt.
func BuildPrompt(schema ResponseSchema, input string) string {
	var sb strings.Builder

	sb.WriteString(strings.TrimSpace(schema.Description))
	sb.WriteString("\n\n")

	label := schema.InputLabel
	if label == "" {
		label = "Input text"
	}
	sb.WriteString(label)
	sb.WriteString(":\n")
	sb.WriteString(strings.TrimSpace(input))
	sb.WriteString("\n\n")

	sb.WriteString("Return your analysis as a JSON object with the following structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = `"string"`
		}
		sb.WriteString(fmt.Sprintf("  %q: %s", field.Name, typeHint))
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	if len(schema.Guidelines) > 0 {
		sb.WriteString("Guidelines:\n")
		for _, g := range schema.Guidelines {
			sb.WriteString("- ")
			sb.WriteString(g)
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Return only the JSON object, no additional text.\n")
	return sb.String()
}
