package tui

import (
	"fmt"
	"strings"

	"github.com/samuelho-dev/monorepo-library-generator-sub003/internal/output"
	"github.com/samuelho-dev/monorepo-library-generator-sub003/internal/wizard"
)

// recentFileWindow is how many generated files the progress view shows.
const recentFileWindow = 5

func (m Model) View() string {
	var body string
	switch m.state.CurrentStep {
	case wizard.StepSelectType:
		body = m.viewSelectType()
	case wizard.StepEnterName:
		body = m.viewEnterName()
	case wizard.StepEnterExternalService:
		body = m.viewEnterService()
	case wizard.StepConfigureOptions:
		body = m.viewConfigureOptions()
	case wizard.StepPreview:
		body = m.viewPreview()
	case wizard.StepConfirm:
		body = m.viewConfirm()
	case wizard.StepGenerating:
		body = m.viewGenerating()
	case wizard.StepComplete:
		body = m.viewComplete()
	case wizard.StepError:
		body = m.viewError()
	}
	return "\n" + body + "\n"
}

func header(title string) string {
	return output.StyleBold.Render(title) + "\n\n"
}

func hint(s string) string {
	return "\n" + output.StyleDim.Render(s) + "\n"
}

func (m Model) viewSelectType() string {
	var sb strings.Builder
	sb.WriteString(header("What would you like to create?"))
	for i, sel := range wizard.Selections() {
		cursor := "  "
		title := sel.Title()
		if i == m.typeCursor {
			cursor = output.StyleNoun.Render("> ")
			title = output.StyleNoun.Render(title)
		}
		sb.WriteString(cursor + title + "\n")
	}
	sb.WriteString(hint("↑/↓ move · enter select · q quit"))
	return sb.String()
}

func (m Model) viewEnterName() string {
	var sb strings.Builder
	sb.WriteString(header(fmt.Sprintf("Name for the new %s library", m.state.LibraryType)))
	sb.WriteString(m.nameInput.View() + "\n")
	if m.inlineErr != "" {
		sb.WriteString("\n" + output.StyleFailed.Render(m.inlineErr) + "\n")
	}
	sb.WriteString(hint("enter continue · esc back"))
	return sb.String()
}

func (m Model) viewEnterService() string {
	var sb strings.Builder
	sb.WriteString(header("External service this provider wraps"))
	sb.WriteString(m.serviceInput.View() + "\n")
	if m.inlineErr != "" {
		sb.WriteString("\n" + output.StyleFailed.Render(m.inlineErr) + "\n")
	}
	sb.WriteString(hint("enter continue (blank uses the library name) · esc back"))
	return sb.String()
}

func (m Model) optionValue(cfg wizard.OptionConfig) string {
	opts := m.state.Options
	switch cfg.Key {
	case wizard.KeyDescription:
		if opts.Description == "" {
			return output.StyleDim.Render("(none)")
		}
		return opts.Description
	case wizard.KeyScope:
		if opts.Scope == nil {
			return output.StyleDim.Render("(unset)")
		}
		return *opts.Scope
	case wizard.KeyPlatform:
		if opts.Platform == nil {
			return output.StyleDim.Render("(default)")
		}
		return *opts.Platform
	case wizard.KeyIncludeCQRS:
		return boolLabel(opts.IncludeCQRS)
	case wizard.KeyIncludeClientServer:
		return boolLabel(opts.IncludeClientServer)
	}
	return ""
}

func boolLabel(v *bool) string {
	if v == nil {
		return output.StyleDim.Render("(unset)")
	}
	if *v {
		return output.StyleSuccess.Render("yes")
	}
	return "no"
}

func (m Model) viewConfigureOptions() string {
	var sb strings.Builder
	sb.WriteString(header(fmt.Sprintf("Configure %s", output.StyleNoun.Render(m.state.LibraryName))))
	for i, row := range m.optRows {
		cursor := "  "
		if i == m.optCursor {
			cursor = output.StyleNoun.Render("> ")
		}
		switch row.kind {
		case rowOption:
			value := m.optionValue(row.cfg)
			if m.editing && i == m.optCursor {
				value = m.editInput.View()
			}
			sb.WriteString(fmt.Sprintf("%s%-28s %s\n", cursor, row.cfg.Label, value))
		case rowTag:
			mark := "[ ]"
			if containsTag(m.state.Options.SelectedTags, row.tag) {
				mark = output.StyleSuccess.Render("[x]")
			}
			sb.WriteString(fmt.Sprintf("%s%s tag:%s\n", cursor, mark, row.tag))
		case rowContinue:
			label := "Continue"
			if i == m.optCursor {
				label = output.StyleBold.Render(label)
			}
			sb.WriteString("\n" + cursor + label + "\n")
		}
	}
	if m.editing {
		sb.WriteString(hint("enter save · esc cancel"))
	} else {
		sb.WriteString(hint("↑/↓ move · space toggle · ←/→ cycle · enter edit/continue · esc back"))
	}
	return sb.String()
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (m Model) previewRootName() string {
	if m.state.Selection == wizard.SelectInit {
		return m.root
	}
	return m.ops.Preview.TargetDirectory(m.state.LibrariesRoot, m.state.LibraryType, m.state.LibraryName)
}

func (m Model) viewPreview() string {
	var sb strings.Builder
	sb.WriteString(header("Files to create"))
	entries := make([]output.FileEntry, 0, len(m.state.FilesToCreate))
	for _, f := range m.state.FilesToCreate {
		entries = append(entries, output.FileEntry{
			Path:        f.Path,
			Description: f.Description,
			Optional:    f.Optional,
		})
	}
	sb.WriteString(output.RenderFileTree(m.previewRootName(), entries))
	counts := wizard.CountFiles(m.state.FilesToCreate)
	sb.WriteString(fmt.Sprintf("\n%d files (%d required, %d optional)\n",
		counts.Total, counts.Required, counts.Optional))
	sb.WriteString(hint("enter continue · esc back"))
	return sb.String()
}

func (m Model) viewConfirm() string {
	var sb strings.Builder
	if m.state.Selection == wizard.SelectInit {
		sb.WriteString(header("Initialize workspace?"))
		sb.WriteString("This will scaffold " + output.StyleNoun.Render(m.root) + "\n")
	} else {
		sb.WriteString(header("Create library?"))
		sb.WriteString(m.ops.Preview.CreationDescription(m.state.LibraryType, m.state.LibraryName) + "\n")
		sb.WriteString("Location: " + output.StyleNoun.Render(m.previewRootName()) + "\n")
	}
	sb.WriteString(hint("enter/y create · esc/n back"))
	return sb.String()
}

func (m Model) viewGenerating() string {
	var sb strings.Builder
	sb.WriteString(m.spin.View() + output.StyleBold.Render(" Generating...") + "\n\n")
	files := m.state.GeneratedFiles
	start := 0
	if len(files) > recentFileWindow {
		start = len(files) - recentFileWindow
		sb.WriteString(output.StyleDim.Render(fmt.Sprintf("  … %d earlier files", start)) + "\n")
	}
	for _, f := range files[start:] {
		sb.WriteString("  " + output.StyleSuccess.Render("•") + " " + f + "\n")
	}
	return sb.String()
}

func (m Model) viewComplete() string {
	var sb strings.Builder
	if m.state.Selection == wizard.SelectInit {
		sb.WriteString(output.FormatCheckmark("Workspace initialized") + "\n\n")
	} else {
		sb.WriteString(output.FormatCheckmark(fmt.Sprintf("Created %s library %s",
			m.state.LibraryType, output.StyleNoun.Render(m.state.LibraryName))) + "\n\n")
	}
	for _, f := range m.state.GeneratedFiles {
		sb.WriteString("  " + output.StyleSuccess.Render(f) + "\n")
	}
	sb.WriteString("\nLocation: " + output.StyleNoun.Render(m.previewRootName()) + "\n")
	sb.WriteString(hint("enter quit · r start over"))
	return sb.String()
}

func (m Model) viewError() string {
	var sb strings.Builder
	sb.WriteString(output.FormatCross("Generation failed") + "\n\n")
	sb.WriteString(output.StyleFailed.Render(m.state.Error) + "\n")
	sb.WriteString(hint("r retry from the start · q quit"))
	return sb.String()
}
