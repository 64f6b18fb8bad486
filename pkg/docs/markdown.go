package docs

import (
	"fmt"
	"strings"
)

// MarkdownExporter exports documentation to Markdown format
type MarkdownExporter struct{}

// NewMarkdownExporter creates a new Markdown exporter
func NewMarkdownExporter() *MarkdownExporter {
	return &MarkdownExporter{}
}

// Export exports documentation to Markdown. Lines end with LF only.
func (e *MarkdownExporter) Export(doc *Documentation) string {
	var b strings.Builder

	// Title
	b.WriteString(fmt.Sprintf("# %s\n\n", doc.Title))

	// Table of contents
	b.WriteString("## Table of Contents\n\n")
	if len(doc.Services) > 0 {
		b.WriteString("- [Services](#services)\n")
		for _, svc := range doc.Services {
			b.WriteString(fmt.Sprintf("  - [%s](#%s)\n", svc.Name, anchor(svc.Name)))
		}
	}
	if len(doc.CustomTypes) > 0 {
		b.WriteString("- [Custom Types](#custom-types)\n")
	}
	b.WriteString("\n")

	// Services
	if len(doc.Services) > 0 {
		b.WriteString("## Services\n\n")
		for _, svc := range doc.Services {
			e.writeService(&b, svc)
		}
	}

	// Custom types
	if len(doc.CustomTypes) > 0 {
		b.WriteString("## Custom Types\n\n")
		for _, ct := range doc.CustomTypes {
			e.writeCustomType(&b, ct)
		}
	}

	return b.String()
}

// writeService writes a service to markdown
func (e *MarkdownExporter) writeService(b *strings.Builder, svc *ServiceDoc) {
	b.WriteString(fmt.Sprintf("### %s\n\n", svc.Name))
	b.WriteString(fmt.Sprintf("**Service id:** %d\n\n", svc.ID))

	for _, method := range svc.Methods {
		e.writeMethod(b, svc.Name, method)
	}
}

// writeMethod writes a method, its messages and its events to markdown
func (e *MarkdownExporter) writeMethod(b *strings.Builder, service string, method *MethodDoc) {
	b.WriteString(fmt.Sprintf("#### %s.%s\n\n", service, method.Name))

	if method.Description != "" {
		b.WriteString(fmt.Sprintf("%s\n\n", method.Description))
	}

	b.WriteString(fmt.Sprintf("**Available since:** %s\n\n", method.Since))

	// Request
	b.WriteString(fmt.Sprintf("##### Request\n\n**Message type:** `%s`", method.RequestID))
	if method.Retryable {
		b.WriteString(" (retryable)")
	}
	b.WriteString("\n\n")
	if method.PartitionIdentifier != "" {
		b.WriteString(fmt.Sprintf("**Partition identifier:** `%s`\n\n", method.PartitionIdentifier))
	}
	writeFields(b, method.Request)

	// Response
	b.WriteString(fmt.Sprintf("##### Response\n\n**Message type:** `%s`\n\n", method.ResponseID))
	writeFields(b, method.Response)

	// Events
	for _, event := range method.Events {
		b.WriteString(fmt.Sprintf("##### Event: %s\n\n**Message type:** `%s`\n\n", event.Name, event.MessageID))
		if event.Description != "" {
			b.WriteString(fmt.Sprintf("%s\n\n", event.Description))
		}
		writeFields(b, event.Params)
	}
}

// writeCustomType writes a custom type to markdown
func (e *MarkdownExporter) writeCustomType(b *strings.Builder, ct *CustomTypeDoc) {
	b.WriteString(fmt.Sprintf("### %s\n\n", ct.Name))

	if ct.Description != "" {
		b.WriteString(fmt.Sprintf("%s\n\n", ct.Description))
	}

	b.WriteString(fmt.Sprintf("**Available since:** %s\n\n", ct.Since))
	writeFields(b, ct.Fields)
}

// writeFields writes a parameter table, or a note when there are none
func writeFields(b *strings.Builder, fields []*FieldDoc) {
	if len(fields) == 0 {
		b.WriteString("Header only, no body.\n\n")
		return
	}

	b.WriteString("| Name | Type | Nullable | Since | Description |\n")
	b.WriteString("|------|------|----------|-------|-------------|\n")

	for _, field := range fields {
		b.WriteString(fmt.Sprintf("| %s | `%s` | %t | %s | %s |\n",
			field.Name, field.Type, field.Nullable, field.Since, oneLine(field.Description)))
	}
	b.WriteString("\n")
}

func anchor(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "-"))
}

// oneLine keeps multi-line descriptions inside one table cell
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
