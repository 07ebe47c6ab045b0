package workspace

import (
	"strings"

	"github.com/glasslab/gstr/glass"
	"github.com/glasslab/gstr/glass/token"
)

type CompletionKind int

const (
	CompletionKindPane CompletionKind = iota
	CompletionKindInterlayer
	CompletionKindGasGap
	CompletionKindMarker
	CompletionKindCode
)

type CompletionItem struct {
	Label      string
	Kind       CompletionKind
	Detail     string
	InsertText string
}

// CompletionsAtPoint suggests layer tokens for the position in a schedule
// file, chosen by the separator introducing the token being typed: "&"
// offers interlayers, "_" gas gaps, "-" metadata markers, "#" catalog
// codes, and anything else panes. Line is 1-based, col 0-based.
func (w *Workspace) CompletionsAtPoint(path string, line, col int) []CompletionItem {
	f := w.GetFile(path)
	if f == nil {
		return nil
	}
	lines := strings.Split(string(f.Content), "\n")
	if line <= 0 || line > len(lines) {
		return nil
	}
	text := lines[line-1]
	if col > len(text) {
		col = len(text)
	}

	switch completionContext(text, col) {
	case '&':
		return interlayerCompletions()
	case '_':
		return gasGapCompletions()
	case '-':
		return markerCompletions()
	case '#':
		return w.codeCompletions()
	case ')':
		return nil
	default:
		return paneCompletions()
	}
}

// completionContext scans left from the cursor for the nearest character
// that decides what the current token can be.
func completionContext(line string, col int) byte {
	for i := col - 1; i >= 0; i-- {
		switch line[i] {
		case '&', '_', '-', '#', '(', ')':
			return line[i]
		case ' ', '\t':
			return ' '
		}
	}
	return ' '
}

func paneCompletions() []CompletionItem {
	heats := []glass.HeatTreatment{
		glass.HeatAnnealed,
		glass.HeatStrengthened,
		glass.HeatToughened,
		glass.HeatSoaked,
	}
	var items []CompletionItem
	for _, t := range glass.PaneThicknesses {
		for _, h := range heats {
			label := token.FormatNumber(t) + string(h)
			items = append(items, CompletionItem{
				Label:      label,
				Kind:       CompletionKindPane,
				Detail:     token.FormatNumber(t) + " mm " + h.Name() + " pane",
				InsertText: label,
			})
		}
	}
	return items
}

func interlayerCompletions() []CompletionItem {
	materials := []glass.InterlayerMaterial{glass.PVB, glass.SG, glass.EVA}
	var items []CompletionItem
	for _, m := range materials {
		for _, t := range glass.InterlayerThicknesses {
			label := token.FormatNumber(t) + string(m)
			items = append(items, CompletionItem{
				Label:      label,
				Kind:       CompletionKindInterlayer,
				Detail:     token.FormatNumber(t) + " mm " + string(m) + " interlayer",
				InsertText: label,
			})
		}
	}
	return items
}

func gasGapCompletions() []CompletionItem {
	gases := []glass.Gas{glass.Air, glass.Argon, glass.Xenon, glass.Krypton}
	var items []CompletionItem
	for _, g := range gases {
		for _, t := range glass.GasGapThicknesses {
			label := token.FormatNumber(t) + string(g)
			items = append(items, CompletionItem{
				Label:      label,
				Kind:       CompletionKindGasGap,
				Detail:     token.FormatNumber(t) + " mm " + g.Name() + " gap",
				InsertText: label,
			})
		}
	}
	return items
}

func markerCompletions() []CompletionItem {
	return []CompletionItem{
		{Label: token.WidthMarker, Kind: CompletionKindMarker, Detail: "width, mm", InsertText: token.WidthMarker},
		{Label: token.HeightMarker, Kind: CompletionKindMarker, Detail: "height, mm", InsertText: token.HeightMarker},
		{Label: token.SupportMarker, Kind: CompletionKindMarker, Detail: "supported edges", InsertText: token.SupportMarker},
	}
}

func (w *Workspace) codeCompletions() []CompletionItem {
	w.mu.RLock()
	cat := w.cat
	w.mu.RUnlock()
	if cat == nil {
		return nil
	}
	var items []CompletionItem
	for _, p := range cat.Products() {
		items = append(items, CompletionItem{
			Label:      p.Code,
			Kind:       CompletionKindCode,
			Detail:     p.Name,
			InsertText: p.Code,
		})
	}
	return items
}
