// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package workbench

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"

	"github.com/andriy-git/rexi/internal/fields"
	"github.com/andriy-git/rexi/internal/util"
)

// =============================================================================
// FIELDS VIEW
// =============================================================================

// viewFields renders the field-extraction panel: the decoded records on
// top, the probe program (syntax highlighted) below. A process failure
// falls back to the unmodified input text with the error in the panel
// header, keeping the session editable.
func (m Model) viewFields() string {
	var b strings.Builder

	if m.fieldsErr != nil {
		b.WriteString(m.theme.ErrorText.Render(m.fieldsErr.Error()))
		b.WriteString("\n\n")
		b.WriteString(m.text)
		return b.String()
	}
	if m.records == nil {
		b.WriteString(m.theme.ShortcutDesc.Render("running field probe..."))
		return b.String()
	}

	b.WriteString(m.theme.GroupsTitle.Render(
		fmt.Sprintf("Records (%s)", m.awkRunner.Program())))
	b.WriteByte('\n')

	valueWidth := m.width - 12
	if valueWidth < 10 {
		valueWidth = 10
	}
	for _, rec := range m.records {
		b.WriteString(fmt.Sprintf("%s NF=%d %s\n",
			m.theme.GroupName.Render(fmt.Sprintf("NR=%-3d", rec.Number)),
			rec.NF,
			util.TruncateRunes(rec.Full, valueWidth)))
		for _, f := range rec.Fields {
			b.WriteString(fmt.Sprintf("      $%-2d %s\n",
				f.Index, util.TruncateRunes(f.Value, valueWidth)))
		}
	}

	b.WriteByte('\n')
	b.WriteString(m.theme.GroupsTitle.Render("Probe program"))
	b.WriteByte('\n')
	b.WriteString(highlightAwk(fields.ProbeProgram()))
	return b.String()
}

// highlightAwk applies chroma syntax highlighting to the probe program,
// returning the source unstyled when highlighting fails.
func highlightAwk(code string) string {
	lexer := lexers.Get("awk")
	if lexer == nil {
		return code
	}
	style := chromaStyles.Get("monokai")
	formatter := formatters.Get("terminal256")
	if style == nil || formatter == nil {
		return code
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}
	var b strings.Builder
	if err := formatter.Format(&b, style, iterator); err != nil {
		return code
	}
	return b.String()
}
