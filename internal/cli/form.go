package cli

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/worklog/internal/cli/formatter"
	"github.com/alexanderramin/worklog/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// worklogHuhTheme returns a custom huh theme using the Gruvbox palette.
func worklogHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// entryFormValues are the raw strings collected by the entry form.
type entryFormValues struct {
	Date          string
	Worker        string
	WorkerOther   string
	Category      string
	CategoryOther string
	Hours         string
	Minutes       string
	Notes         string
}

// toEntry converts validated form values into an entry.
func (v entryFormValues) toEntry() (domain.TimeEntry, error) {
	h, err := atoiOrZero(v.Hours)
	if err != nil {
		return domain.TimeEntry{}, fmt.Errorf("hours: %w", err)
	}
	m, err := atoiOrZero(v.Minutes)
	if err != nil {
		return domain.TimeEntry{}, fmt.Errorf("minutes: %w", err)
	}
	if err := validateDuration(h, m); err != nil {
		return domain.TimeEntry{}, err
	}
	return domain.TimeEntry{
		Date:          strings.TrimSpace(v.Date),
		Worker:        pickLabel(v.Worker, v.WorkerOther),
		Category:      pickLabel(v.Category, v.CategoryOther),
		DurationHours: domain.FromHoursMinutes(h, m),
		Notes:         strings.TrimSpace(v.Notes),
	}, nil
}

// entryForm builds the interactive log form. Worker and category are picked
// from known values; choosing "Other…" falls through to a free-text input.
func entryForm(v *entryFormValues, workers, categories []string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Value(&v.Date).
				Validate(validateRequiredDate),
			labelSelect("Worker", workers, &v.Worker),
			labelSelect("Category", categories, &v.Category),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Worker name").
				Value(&v.WorkerOther).
				Validate(validateRequired("worker")),
		).WithHideFunc(func() bool { return v.Worker != otherOption }),
		huh.NewGroup(
			huh.NewInput().
				Title("Category name").
				Value(&v.CategoryOther).
				Validate(validateRequired("category")),
		).WithHideFunc(func() bool { return v.Category != otherOption }),
		huh.NewGroup(
			huh.NewInput().
				Title("Hours").
				Placeholder("0").
				Value(&v.Hours).
				Validate(validateNonNegativeInt),
			huh.NewInput().
				Title("Minutes").
				Placeholder("0").
				Value(&v.Minutes).
				Validate(validateMinutes),
			huh.NewText().
				Title("Notes (optional)").
				Value(&v.Notes),
		),
	).WithTheme(worklogHuhTheme()).WithShowHelp(false)
}

const otherOption = "Other…"

func labelSelect(title string, known []string, value *string) *huh.Select[string] {
	options := make([]huh.Option[string], 0, len(known)+1)
	for _, k := range known {
		options = append(options, huh.NewOption(k, k))
	}
	options = append(options, huh.NewOption(otherOption, otherOption))
	return huh.NewSelect[string]().Title(title).Options(options...).Value(value)
}

func pickLabel(selected, other string) string {
	if selected == otherOption {
		return strings.TrimSpace(other)
	}
	return strings.TrimSpace(selected)
}

// mergeLabels returns the sorted union of label lists without duplicates.
func mergeLabels(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		out = append(out, l...)
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// validateNonNegativeInt accepts empty or a non-negative integer.
func validateNonNegativeInt(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}

// validateMinutes accepts empty or 0-59.
func validateMinutes(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 || v > 59 {
		return fmt.Errorf("enter minutes between 0 and 59")
	}
	return nil
}

// validateOptionalDate accepts empty or a YYYY-MM-DD date string.
func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	return validateRequiredDate(s)
}

func validateRequiredDate(s string) error {
	if _, err := time.Parse(domain.DateLayout, strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func validateDuration(hours, minutes int) error {
	if hours < 0 {
		return fmt.Errorf("hours must be non-negative")
	}
	if minutes < 0 || minutes > 59 {
		return fmt.Errorf("minutes must be between 0 and 59")
	}
	return nil
}

func atoiOrZero(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

func flagError(cmd *cobra.Command, name string, err error) error {
	return fmt.Errorf("invalid --%s for %s: %w", name, cmd.Name(), err)
}
