package tui

import (
	"errors"
	"strings"

	"github.com/diarijajan/diari/internal/cli"
	"github.com/diarijajan/diari/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// entryValues backs the add-entry form fields. It lives behind a pointer so
// the huh form keeps writing to the same values while App is copied.
type entryValues struct {
	name    string
	cost    string
	confirm bool
}

func modalWidth(width int) int {
	w := width - 8
	if w > 48 {
		w = 48
	}
	if w < 24 {
		w = 24
	}
	return w
}

func validateCost(s string) error {
	if _, err := cli.ParseAmount(s); err != nil {
		return errors.New("harga harus berupa angka")
	}
	return nil
}

func newEntryForm(vals *entryValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Nama").
				Placeholder("nama").
				Value(&vals.name),
			huh.NewInput().
				Title("Harga").
				Placeholder("cost").
				Validate(validateCost).
				Value(&vals.cost),
			huh.NewConfirm().
				Title("Kirim entri ini?").
				Affirmative("KIRIM").
				Negative("BATAL").
				Value(&vals.confirm),
		).Title("Tambah Entri"),
	).WithShowHelp(true)
}

// openEntryForm shows the modal with empty fields.
func (a App) openEntryForm() (tea.Model, tea.Cmd) {
	*a.entry = entryValues{confirm: true}
	a.form = newEntryForm(a.entry)
	if a.width > 0 {
		a.form = a.form.WithWidth(modalWidth(a.width))
	}
	a.status = ""
	a.statusErr = false
	return a, a.form.Init()
}

func (a App) closeEntryForm() App {
	a.form = nil
	*a.entry = entryValues{}
	return a
}

func (a App) updateEntryForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		vals := *a.entry
		a = a.closeEntryForm()
		if !vals.confirm {
			return a, nil
		}
		return a.submitEntry(vals.name, vals.cost), nil
	case huh.StateAborted:
		return a.closeEntryForm(), nil
	}

	return a, cmd
}

// submitEntry appends a new record stamped with a.now. The collection is
// left as it was when the amount cannot be used.
func (a App) submitEntry(name, costText string) App {
	cost, err := cli.ParseAmount(costText)
	if err != nil {
		a.status = "Harga tidak valid: " + strings.TrimSpace(costText)
		a.statusErr = true
		return a
	}

	next, err := a.agg.Append(a.collection, strings.TrimSpace(name), cost, a.now())
	if err != nil {
		a.status = err.Error()
		a.statusErr = true
		return a
	}

	a.collection = next
	a.recompute()
	a.status = "Ditambahkan: " + strings.TrimSpace(name) + " " + a.format.Currency(cost)
	a.statusErr = false
	return a
}

func (a App) viewEntryForm() string {
	t := theme.Active
	modalStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderFocus).
		Padding(1, 2)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		modalStyle.Render(a.form.View()))
}
