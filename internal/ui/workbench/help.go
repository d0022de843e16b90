// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package workbench

import (
	"github.com/charmbracelet/glamour"
)

// helpMarkdown is the static regex reference shown in the help overlay.
const helpMarkdown = `# Regex Help

## Anchors

| Pattern | Meaning |
|---------|---------|
| ` + "`^`" + ` | Start of line (multiline is always on) |
| ` + "`$`" + ` | End of line |
| ` + "`\\b`" + ` | Word boundary |
| ` + "`\\B`" + ` | Not a word boundary |

## Quantifiers

| Pattern | Meaning |
|---------|---------|
| ` + "`*`" + ` | 0 or more |
| ` + "`+`" + ` | 1 or more |
| ` + "`?`" + ` | 0 or 1 |
| ` + "`{n}`" + ` | Exactly n times |
| ` + "`{n,}`" + ` | n or more times |
| ` + "`{n,m}`" + ` | Between n and m times |

## Character Classes

| Pattern | Meaning |
|---------|---------|
| ` + "`.`" + ` | Any character except newline |
| ` + "`\\d`" + ` / ` + "`\\D`" + ` | Digit / non-digit |
| ` + "`\\w`" + ` / ` + "`\\W`" + ` | Word / non-word character |
| ` + "`\\s`" + ` / ` + "`\\S`" + ` | Whitespace / non-whitespace |
| ` + "`[abc]`" + ` | Any of a, b, or c |
| ` + "`[^abc]`" + ` | Not a, b, or c |

## Groups

| Pattern | Meaning |
|---------|---------|
| ` + "`(...)`" + ` | Capturing group |
| ` + "`(?:...)`" + ` | Non-capturing group |
| ` + "`(?P<name>...)`" + ` | Named capturing group |
| ` + "`\\1`" + ` | Backreference to group 1 |

## Lookaround (extended engine)

| Pattern | Meaning |
|---------|---------|
| ` + "`(?=...)`" + ` / ` + "`(?!...)`" + ` | Positive / negative lookahead |
| ` + "`(?<=...)`" + ` / ` + "`(?<!...)`" + ` | Positive / negative lookbehind |

## Flags

| Pattern | Meaning |
|---------|---------|
| ` + "`(?i)`" + ` | Case-insensitive |
| ` + "`(?s)`" + ` | Dot matches newline |

Press **F2** to edit the active profile's feature set.
`

// renderHelp renders the help markdown once, sized to the current width.
func (m *Model) renderHelp() {
	width := m.width - 4
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		m.helpText = helpMarkdown
		return
	}
	out, err := r.Render(helpMarkdown)
	if err != nil {
		m.helpText = helpMarkdown
		return
	}
	m.helpText = out
}
