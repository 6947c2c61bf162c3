package ui

import "strings"

type helpEntry struct {
	keys string
	desc string
}

var helpSections = []struct {
	title   string
	entries []helpEntry
}{
	{
		title: "Global",
		entries: []helpEntry{
			{"tab / shift+tab", "switch screen"},
			{"?", "toggle this help"},
			{"q / ctrl+c", "quit"},
		},
	},
	{
		title: "Browse",
		entries: []helpEntry{
			{"j / k", "move cursor"},
			{"c / C", "next / previous category"},
			{"l / h", "next / previous page"},
			{"+ / -", "meals per page"},
			{"enter", "open recipe"},
			{"f", "toggle favorite"},
			{"s", "shortlist for planning"},
		},
	},
	{
		title: "Search",
		entries: []helpEntry{
			{"enter", "search / open result"},
			{"esc", "leave the input"},
			{"i or /", "edit the query"},
			{"ctrl+u", "clear the query"},
		},
	},
	{
		title: "Favorites",
		entries: []helpEntry{
			{"x or f", "remove"},
			{"X", "remove all"},
			{"s", "shortlist"},
		},
	},
	{
		title: "Planner",
		entries: []helpEntry{
			{"tab", "next form field"},
			{"left / right", "change option"},
			{"enter", "save plan"},
			{"esc", "browse shortlist and plans"},
			{"1-5", "shortlist a suggestion"},
		},
	},
}

// helpView renders the full key reference.
func (m Model) helpView() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("forkful help") + "\n\n")
	for _, section := range helpSections {
		b.WriteString(LabelStyle.Render(section.title) + "\n")
		for _, entry := range section.entries {
			b.WriteString("  " + NormalRowStyle.Render(pad(entry.keys, 18)) +
				MutedStyle.Render(entry.desc) + "\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(MutedStyle.Render("press ? or esc to close"))
	return b.String()
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-len(s))
}
