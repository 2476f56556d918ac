package responder

import (
	"regexp"
	"strings"
)

var (
	pageNumberLineRe = regexp.MustCompile(`(?m)^\d+$`)
	tocEntryLineRe   = regexp.MustCompile(`(?m)^\d+\.\s+[\w\s\-,/]+\s+\d+$`)
	referencesRe     = regexp.MustCompile(`(?is)references\s*\n.*$`)
	multiNewlineRe   = regexp.MustCompile(`\n{3,}`)

	pageNumberRe = regexp.MustCompile(`^\d+$`)
	tocEntryRe   = regexp.MustCompile(`^\d+\.\s+[\w\s\-,/]+\s+\d+$`)

	sectionHeaderRe     = regexp.MustCompile(`(?i)^(procedure|apparatus|materials|equipment|caution|warning|note|safety precautions):`)
	bareSectionHeaderRe = regexp.MustCompile(`(?i)^(procedure|apparatus|materials|equipment)$`)

	romanListItemRe    = regexp.MustCompile(`^[ivxIVX]+\.\s`)
	letteredListItemRe = regexp.MustCompile(`^[a-z0-9]\.\s`)
	dashedListItemRe   = regexp.MustCompile(`^-\s`)
	numberedListItemRe = regexp.MustCompile(`^\d+\.\s`)
)

// IsTableOfContents reports whether more than half of the non-empty lines
// look like index entries or bare page numbers.
func IsTableOfContents(content string) bool {
	var total, tocLines int
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		total++
		if tocEntryRe.MatchString(line) || pageNumberRe.MatchString(line) {
			tocLines++
		}
	}
	if total == 0 {
		return false
	}
	return float64(tocLines)/float64(total) > 0.5
}

// CleanRetrievedContent strips indexing noise from extracted manual text:
// bare page number lines, table of contents entries, and everything from a
// references heading onward. Content that is mostly a table of contents is
// replaced wholesale with a redirecting message.
func CleanRetrievedContent(content string) string {
	if IsTableOfContents(content) {
		if strings.Contains(strings.ToLower(content), "cereal") {
			return tocCerealResponse
		}
		return tocGenericResponse
	}

	cleaned := pageNumberLineRe.ReplaceAllString(content, "")
	cleaned = tocEntryLineRe.ReplaceAllString(cleaned, "")
	cleaned = referencesRe.ReplaceAllString(cleaned, "")
	cleaned = multiNewlineRe.ReplaceAllString(cleaned, "\n\n")

	return strings.TrimSpace(cleaned)
}

func isListItem(line string) bool {
	return romanListItemRe.MatchString(line) ||
		letteredListItemRe.MatchString(line) ||
		dashedListItemRe.MatchString(line) ||
		numberedListItemRe.MatchString(line)
}

// FormatForDisplay normalizes manual text for chat rendering: section headers
// get capitalized and set off by blank lines, list items are grouped, and runs
// of three or more newlines collapse to a paragraph break.
func FormatForDisplay(content string) string {
	lines := strings.Split(content, "\n")
	var formatted strings.Builder
	inList := false

	for i := range lines {
		line := strings.TrimSpace(lines[i])
		nextLine := ""
		if i < len(lines)-1 {
			nextLine = strings.TrimSpace(lines[i+1])
		}

		if line == "" {
			formatted.WriteString("\n")
			continue
		}

		if sectionHeaderRe.MatchString(line) || bareSectionHeaderRe.MatchString(line) {
			if formatted.Len() > 0 && !strings.HasSuffix(formatted.String(), "\n\n") {
				formatted.WriteString("\n\n")
			}
			formatted.WriteString(strings.ToUpper(line[:1]) + line[1:] + "\n")
			continue
		}

		if isListItem(line) {
			if !inList && formatted.Len() > 0 && !strings.HasSuffix(formatted.String(), "\n") {
				formatted.WriteString("\n")
			}
			inList = true
			formatted.WriteString(line + "\n")
			continue
		}
		if inList && nextLine == "" {
			inList = false
			formatted.WriteString(line + "\n\n")
			continue
		}

		formatted.WriteString(line + "\n")
	}

	return strings.TrimSpace(multiNewlineRe.ReplaceAllString(formatted.String(), "\n\n"))
}
