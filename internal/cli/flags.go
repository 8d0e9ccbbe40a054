package cli

import (
	"time"

	"github.com/alexanderramin/worklog/internal/analytics"
	"github.com/alexanderramin/worklog/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// weekdayValue is a pflag.Value accepting full or three-letter weekday names.
type weekdayValue struct {
	day time.Weekday
	set bool
}

var _ pflag.Value = (*weekdayValue)(nil)

func (w *weekdayValue) String() string { return w.day.String() }
func (w *weekdayValue) Type() string   { return "weekday" }

func (w *weekdayValue) Set(s string) error {
	d, err := config.ParseWeekday(s)
	if err != nil {
		return err
	}
	w.day, w.set = d, true
	return nil
}

// ptr returns the chosen weekday, or nil when the flag was not given.
func (w *weekdayValue) ptr() *time.Weekday {
	if !w.set {
		return nil
	}
	d := w.day
	return &d
}

// addFilterFlags registers the entry filter flags shared by list, stats and
// export.
func addFilterFlags(flags *pflag.FlagSet, f *analytics.Filter) {
	flags.StringVar(&f.Worker, "worker", "", "Only entries by this worker (exact match)")
	flags.StringVar(&f.Category, "category", "", "Only entries in this category (exact match)")
	flags.StringVar(&f.DateFrom, "from", "", "Only entries on or after this date (YYYY-MM-DD)")
	flags.StringVar(&f.DateTo, "to", "", "Only entries on or before this date (YYYY-MM-DD)")
}

// validateFilterDates rejects malformed --from/--to before they reach the
// lexical date comparison.
func validateFilterDates(cmd *cobra.Command, f analytics.Filter) error {
	for name, v := range map[string]string{"from": f.DateFrom, "to": f.DateTo} {
		if err := validateOptionalDate(v); err != nil {
			return flagError(cmd, name, err)
		}
	}
	return nil
}
