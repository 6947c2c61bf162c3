package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"forkful/internal/model"
	"forkful/internal/planner"
)

// suggestionLimit caps the live suggestion table.
const suggestionLimit = 5

// Planner form fields, in focus order.
const (
	fieldTitle = iota
	fieldEmail
	fieldDate
	fieldServings
	fieldCategory
	fieldArea
	fieldIngredient
	fieldDessert
	fieldNotes
	fieldCount
)

// plannerMode mirrors the nav/insert split: insert edits the form, nav
// walks the queue and the saved plans.
type plannerMode int

const (
	plannerInsert plannerMode = iota
	plannerNav
)

// textInputFor maps form fields to their textinput slot; selects and the
// checkbox have none.
var textInputFor = map[int]int{
	fieldTitle:    0,
	fieldEmail:    1,
	fieldDate:     2,
	fieldServings: 3,
	fieldNotes:    4,
}

// PlannerModel is the meal planner screen: a validated form, a live
// suggestion table for the selected category/area, the shortlist queue
// and the saved plans.
type PlannerModel struct {
	stores Stores
	keys   KeyMap

	mode       plannerMode
	focused    int
	inputs     []textinput.Model
	category   string
	area       string
	ingredient string
	dessert    bool

	fieldErrors map[string]string
	status      string
	cursor      int
}

// NewPlannerModel creates the planner screen with form defaults: today's
// date and two servings.
func NewPlannerModel(stores Stores, keys KeyMap) PlannerModel {
	inputs := make([]textinput.Model, 5)

	inputs[0] = textinput.New()
	inputs[0].Placeholder = "e.g. Italian Night"
	inputs[0].CharLimit = 100
	inputs[0].Focus()

	inputs[1] = textinput.New()
	inputs[1].Placeholder = "chef@example.com"
	inputs[1].CharLimit = 100

	inputs[2] = textinput.New()
	inputs[2].Placeholder = "YYYY-MM-DD"
	inputs[2].CharLimit = 10
	inputs[2].SetValue(planner.Today())

	inputs[3] = textinput.New()
	inputs[3].Placeholder = "1-20"
	inputs[3].CharLimit = 2
	inputs[3].SetValue("2")

	inputs[4] = textinput.New()
	inputs[4].Placeholder = "Notes..."
	inputs[4].CharLimit = 500

	return PlannerModel{
		stores: stores,
		keys:   keys,
		inputs: inputs,
	}
}

// Editing reports whether the form holds keyboard focus.
func (m PlannerModel) Editing() bool {
	return m.mode == plannerInsert
}

// MetadataReady resolves the select fields once the lookup lists arrive
// and kicks off the first suggestion refresh.
func (m PlannerModel) MetadataReady() (PlannerModel, tea.Cmd) {
	meta := m.stores.Metadata
	category := planner.ResolveValue(m.category, meta.Categories())
	area := planner.ResolveValue(m.area, meta.Areas())
	m.ingredient = planner.ResolveValue(m.ingredient, meta.Ingredients())

	if category == m.category && area == m.area {
		return m, nil
	}
	m.category = category
	m.area = area
	return m, refreshSuggestionsCmd(m.stores.Suggestions, category, area, suggestionLimit)
}

// Update handles planner keys.
func (m PlannerModel) Update(msg tea.KeyMsg) (PlannerModel, tea.Cmd) {
	if m.mode == plannerNav {
		return m.updateNav(msg)
	}
	return m.updateInsert(msg)
}

func (m PlannerModel) updateInsert(msg tea.KeyMsg) (PlannerModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = plannerNav
		m.blurAll()
		return m, nil

	case "tab", "down":
		return m.focusField((m.focused + 1) % fieldCount), nil

	case "shift+tab", "up":
		return m.focusField((m.focused + fieldCount - 1) % fieldCount), nil

	case "enter":
		return m.submit()

	case "left", "right":
		if cmd, handled := m.cycleSelect(msg.String() == "right"); handled {
			return m, cmd
		}

	case " ":
		if m.focused == fieldDessert {
			m.dessert = !m.dessert
			return m, nil
		}
	}

	if slot, ok := textInputFor[m.focused]; ok {
		var cmd tea.Cmd
		m.status = ""
		m.inputs[slot], cmd = m.inputs[slot].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m PlannerModel) updateNav(msg tea.KeyMsg) (PlannerModel, tea.Cmd) {
	queue := m.stores.Plans.Queue()
	plans := m.stores.Plans.List()
	total := len(queue) + len(plans)

	switch msg.String() {
	case "i", "enter":
		m.mode = plannerInsert
		return m.focusField(m.focused), nil

	case "j", "down":
		if m.cursor < total-1 {
			m.cursor++
		}

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}

	case "x":
		if m.cursor < len(queue) {
			m.stores.Plans.RemoveSuggested(queue[m.cursor].ID)
		} else if i := m.cursor - len(queue); i < len(plans) {
			m.stores.Plans.Remove(plans[i].ID)
		}
		if total > 0 && m.cursor >= total-1 {
			m.cursor = total - 2
			if m.cursor < 0 {
				m.cursor = 0
			}
		}

	case "X":
		if m.cursor < len(queue) {
			m.stores.Plans.ClearSuggestions()
		} else {
			m.stores.Plans.ClearPlans()
		}
		m.cursor = 0

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		n, _ := strconv.Atoi(msg.String())
		suggestions := m.stores.Suggestions.List()
		if n >= 1 && n <= len(suggestions) {
			m.stores.Plans.AddSuggested(suggestions[n-1].Summary())
		}
	}

	return m, nil
}

// cycleSelect steps the focused select field through its options.
func (m *PlannerModel) cycleSelect(forward bool) (tea.Cmd, bool) {
	meta := m.stores.Metadata

	switch m.focused {
	case fieldCategory:
		m.category = neighborCategory(meta.Categories(), m.category, forward)
	case fieldArea:
		m.area = neighborCategory(meta.Areas(), m.area, forward)
	case fieldIngredient:
		m.ingredient = neighborCategory(meta.Ingredients(), m.ingredient, forward)
		return nil, true
	case fieldDessert:
		m.dessert = !m.dessert
		return nil, true
	default:
		return nil, false
	}

	// Category or area changed: recompute the live suggestions.
	return refreshSuggestionsCmd(m.stores.Suggestions, m.category, m.area, suggestionLimit), true
}

func (m PlannerModel) focusField(field int) PlannerModel {
	m.focused = field
	m.blurAll()
	if slot, ok := textInputFor[field]; ok {
		m.inputs[slot].Focus()
	}
	return m
}

func (m *PlannerModel) blurAll() {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
}

// form assembles the current PlanForm from the widgets.
func (m PlannerModel) form() model.PlanForm {
	servings, _ := strconv.Atoi(strings.TrimSpace(m.inputs[3].Value()))
	return model.PlanForm{
		Title:          strings.TrimSpace(m.inputs[0].Value()),
		Email:          strings.TrimSpace(m.inputs[1].Value()),
		Date:           strings.TrimSpace(m.inputs[2].Value()),
		Servings:       servings,
		Category:       m.category,
		Area:           m.area,
		Ingredient:     m.ingredient,
		IncludeDessert: m.dessert,
		Notes:          strings.TrimSpace(m.inputs[4].Value()),
	}
}

// submit validates and saves. On success the title and notes reset while
// the remaining fields keep their values for the next entry.
func (m PlannerModel) submit() (PlannerModel, tea.Cmd) {
	form := m.form()
	if errs := planner.Validate(form); len(errs) > 0 {
		m.fieldErrors = errs
		m.status = ""
		return m, nil
	}

	m.stores.Plans.Add(form)
	m.fieldErrors = nil
	m.status = "Meal plan saved successfully."
	m.inputs[0].SetValue("")
	m.inputs[4].SetValue("")
	return m.focusField(fieldTitle), nil
}

// View renders the planner screen.
func (m PlannerModel) View(width int) string {
	var b strings.Builder
	b.WriteString(m.formView())
	b.WriteString("\n" + m.suggestionsView())
	b.WriteString("\n" + m.listsView())
	return b.String()
}

func (m PlannerModel) formView() string {
	meta := m.stores.Metadata
	var b strings.Builder

	b.WriteString(LabelStyle.Render("Plan details") + "\n")
	if meta.Status() == model.StatusLoading {
		b.WriteString(MutedStyle.Render("Loading metadata...\n"))
	}
	if msg := meta.Error(); msg != "" {
		b.WriteString(ErrorStyle.Render(msg) + "\n")
	}

	rows := []struct {
		field int
		label string
		value string
	}{
		{fieldTitle, "Title", m.inputs[0].View()},
		{fieldEmail, "Email", m.inputs[1].View()},
		{fieldDate, "Date", m.inputs[2].View()},
		{fieldServings, "Servings", m.inputs[3].View()},
		{fieldCategory, "Category", selectView(m.category)},
		{fieldArea, "Cuisine", selectView(m.area)},
		{fieldIngredient, "Ingredient", selectView(m.ingredient)},
		{fieldDessert, "Dessert", checkboxView(m.dessert)},
		{fieldNotes, "Notes", m.inputs[4].View()},
	}
	errKeys := map[int]string{
		fieldTitle: "title", fieldEmail: "email", fieldDate: "date",
		fieldServings: "servings", fieldCategory: "category", fieldArea: "area",
	}

	for _, row := range rows {
		label := fmt.Sprintf("%-10s", row.label)
		if m.mode == plannerInsert && row.field == m.focused {
			label = LabelStyle.Render(label)
		} else {
			label = MutedStyle.Render(label)
		}
		b.WriteString(label + row.value)
		if msg, ok := m.fieldErrors[errKeys[row.field]]; ok {
			b.WriteString("  " + ErrorStyle.Render(msg))
		}
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(SuccessStyle.Render(m.status) + "\n")
	}
	if m.mode == plannerInsert {
		b.WriteString(MutedStyle.Render("tab: next field · ←/→: change option · enter: save · esc: lists"))
	} else {
		b.WriteString(MutedStyle.Render("i: edit form · j/k: move · x: remove · X: clear · 1-5: shortlist"))
	}
	return b.String()
}

func (m PlannerModel) suggestionsView() string {
	suggest := m.stores.Suggestions
	var b strings.Builder

	b.WriteString(LabelStyle.Render("Suggestions") +
		MutedStyle.Render(fmt.Sprintf("  %s / %s", orNone(m.category), orNone(m.area))) + "\n")

	if suggest.Loading() {
		b.WriteString(MutedStyle.Render("Finding recipes...\n"))
	}
	if msg := suggest.Error(); msg != "" {
		b.WriteString(ErrorStyle.Render(msg) + "\n")
	}

	list := suggest.List()
	if len(list) == 0 && !suggest.Loading() && suggest.Error() == "" {
		b.WriteString(EmptyStateStyle.Render("Pick a category or cuisine to see suggestions.") + "\n")
	}
	for i, suggestion := range list {
		line := fmt.Sprintf("%d. %s", i+1, suggestion.Name)
		if len(suggestion.Tags) > 0 {
			line += MutedStyle.Render("  " + strings.Join(suggestion.Tags, ", "))
		}
		if m.stores.Plans.IsQueued(suggestion.ID) {
			line += SuccessStyle.Render(" ✓")
		}
		b.WriteString(NormalRowStyle.Render(line) + "\n")
	}
	return b.String()
}

func (m PlannerModel) listsView() string {
	queue := m.stores.Plans.Queue()
	plans := m.stores.Plans.List()
	var b strings.Builder

	b.WriteString(LabelStyle.Render(fmt.Sprintf("Shortlist (%d)", len(queue))) + "\n")
	if len(queue) == 0 {
		b.WriteString(EmptyStateStyle.Render("Nothing shortlisted.") + "\n")
	}
	for i, meal := range queue {
		line := "• " + meal.Name
		if m.mode == plannerNav && m.cursor == i {
			line = SelectedRowStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}

	b.WriteString(LabelStyle.Render(fmt.Sprintf("Saved plans (%d)", len(plans))) + "\n")
	if len(plans) == 0 {
		b.WriteString(EmptyStateStyle.Render("No plans saved yet.") + "\n")
	}
	for i, plan := range plans {
		line := fmt.Sprintf("%s — %s · %d servings · %s",
			plan.Date, plan.Title, plan.Servings, plan.Category)
		if plan.IncludeDessert {
			line += " · dessert"
		}
		if m.mode == plannerNav && m.cursor == len(queue)+i {
			line = SelectedRowStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func selectView(value string) string {
	if value == "" {
		return MutedStyle.Render("‹ none ›")
	}
	return NormalRowStyle.Render("‹ " + value + " ›")
}

func checkboxView(checked bool) string {
	if checked {
		return NormalRowStyle.Render("[x] include dessert")
	}
	return MutedStyle.Render("[ ] include dessert")
}

func orNone(value string) string {
	if value == "" {
		return "(none)"
	}
	return value
}
