package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"bigcal/internal/calendar"
	"bigcal/internal/config"
	"bigcal/internal/ics"
	"bigcal/internal/layout"
	appLog "bigcal/internal/log"
	"bigcal/internal/model"
)

// flagConfig holds CLI flag values.
type flagConfig struct {
	configPath string
	icsPath    string
	date       string
	view       string
	verbose    bool
}

func main() {
	appLog.Info("bigcal starting", "version", "0.1.0")

	flags := parseFlags()
	if flags.verbose {
		appLog.SetLevel(appLog.LevelDebug)
	}

	conf, err := config.Load(flags.configPath)
	if err != nil {
		appLog.Error("failed to load config", err, "config_path", flags.configPath)
		os.Exit(1)
	}

	selected := time.Now()
	if flags.date != "" {
		selected, err = time.Parse("2006-01-02", flags.date)
		if err != nil {
			appLog.Error("invalid -date, expected YYYY-MM-DD", err, "date", flags.date)
			os.Exit(1)
		}
	}

	view := layout.ParseView(flags.view)

	appLog.Info("effective config",
		"badge_variant", conf.BadgeVariant,
		"visible_from", conf.VisibleHours.From,
		"visible_to", conf.VisibleHours.To,
		"hour_height", conf.HourHeight,
		"block_gutter", conf.BlockGutter,
		"dark_mode", conf.DarkMode,
		"view", string(view),
	)

	ctrl := calendar.New(conf, selected)
	ctrl.SetView(view)

	if flags.icsPath != "" {
		events, err := ics.Load(flags.icsPath)
		if err != nil {
			appLog.Error("failed to load ICS file", err, "ics_path", flags.icsPath)
			os.Exit(1)
		}
		ctrl.SetEvents(events)
	}

	fmt.Printf("%s  (%d events in range)\n\n", ctrl.RangeLabel(), ctrl.EventCount())

	switch view {
	case layout.ViewDay:
		printDay(ctrl)
	case layout.ViewWeek:
		printWeek(ctrl)
	case layout.ViewYear:
		printYear(ctrl)
	case layout.ViewAgenda:
		printAgenda(ctrl)
	default:
		printMonth(ctrl)
	}
}

func parseFlags() flagConfig {
	var cfg flagConfig

	flag.StringVar(&cfg.configPath, "config", "bigcal.yaml", "Path to config file (created with defaults if missing)")
	flag.StringVar(&cfg.icsPath, "ics", "", "Path to an ICS file to load events from")
	flag.StringVar(&cfg.date, "date", "", "Selected date as YYYY-MM-DD (defaults to today)")
	flag.StringVar(&cfg.view, "view", "month", "View: day, week, month, year or agenda")
	flag.BoolVar(&cfg.verbose, "v", false, "Enable debug logging")

	flag.Parse()

	return cfg
}

// printMonth renders the month grid one cell per line: day number, the
// events in their assigned slots and the overflow counter.
func printMonth(ctrl *calendar.Controller) {
	events := ctrl.Events()
	selected := ctrl.SelectedDate()

	single, multi := layout.SplitEvents(events)
	positions := layout.MonthEventPositions(multi, single, selected)
	cells := layout.CalendarCells(selected)

	for _, cell := range cells {
		marker := " "
		if !cell.CurrentMonth {
			marker = "."
		}
		fmt.Printf("%s %s %2d", marker, cell.Date.Format("Mon 2006-01-02"), cell.Day)

		cellEvents := layout.MonthCellEvents(cell.Date, events, positions)
		for _, pe := range cellEvents {
			if pe.Slot >= layout.MaxVisibleSlots {
				continue
			}
			fmt.Printf("  [%d] %s%s", pe.Slot, pe.Title, badgeSuffix(pe.Event, cell.Date))
		}
		if n := layout.OverflowCount(cellEvents); n > 0 {
			fmt.Printf("  +%d more", n)
		}
		fmt.Println()
	}
}

func badgeSuffix(ev model.Event, cellDate time.Time) string {
	switch layout.BadgeDayState(ev, cellDate) {
	case layout.BadgeFirst:
		return " >"
	case layout.BadgeMiddle:
		return " -"
	case layout.BadgeLast:
		return " <"
	}
	return ""
}

// printDay renders the pixel geometry of the selected day's event blocks.
func printDay(ctrl *calendar.Controller) {
	conf := ctrl.Settings()
	selected := ctrl.SelectedDate()

	dayEvents := layout.EventsStartingOn(ctrl.Events(), selected)
	hours, earliest, latest := layout.VisibleHourRange(conf.VisibleHourRange(), dayEvents)
	working := conf.WorkingHourMap()

	fmt.Printf("visible hours %02d:00-%02d:00\n", earliest, latest)
	for _, h := range hours {
		mark := " "
		if layout.IsWorkingHour(selected, h, working) {
			mark = "*"
		}
		fmt.Printf("  %s %02d:00\n", mark, h)
	}

	bounds := layout.HourBounds{From: earliest, To: latest}
	for _, blk := range layout.DayBlockLayout(dayEvents, selected, bounds, conf.Scale()) {
		fmt.Printf("%-24s top=%.0fpx height=%.0fpx left=%.1f%% width=%.1f%%\n",
			blk.Event.Title, blk.Style.Top, blk.Style.Height, blk.Style.Left, blk.Style.Width)
	}

	now := time.Now()
	if percent, visible := layout.TimelinePosition(now, earliest, latest); visible {
		fmt.Printf("now marker at %.1f%%\n", percent)
	}
	for _, ev := range layout.CurrentEvents(dayEvents, now) {
		fmt.Printf("happening now: %s\n", ev.Title)
	}
}

// printWeek renders one line per weekday with its multi-day header row and
// timed events.
func printWeek(ctrl *calendar.Controller) {
	events := ctrl.Events()
	selected := ctrl.SelectedDate()
	_, multi := layout.SplitEvents(events)

	weekStart := selected.AddDate(0, 0, -int(selected.Weekday()))
	for i := 0; i < 7; i++ {
		day := weekStart.AddDate(0, 0, i)
		fmt.Printf("%s\n", day.Format("Mon 2006-01-02"))

		for _, ev := range layout.MultiDayEventsForDay(multi, day) {
			cur, total := layout.SpanProgress(ev, day)
			fmt.Printf("  === %s (day %d/%d)\n", ev.Title, cur, total)
		}
		for _, ev := range layout.EventsForDay(events, day) {
			fmt.Printf("  %s %s\n", ev.Start.Format("15:04"), ev.Title)
		}
	}
}

// printYear renders each month's slot row: zeros are leading blanks.
func printYear(ctrl *calendar.Controller) {
	year := ctrl.SelectedDate().Year()

	for m := time.January; m <= time.December; m++ {
		month := time.Date(year, m, 1, 0, 0, 0, 0, ctrl.SelectedDate().Location())
		fmt.Printf("%-10s", m.String())
		for _, slot := range layout.YearMonthSlots(month) {
			if slot == 0 {
				fmt.Print("  .")
			} else {
				fmt.Printf(" %2d", slot)
			}
		}
		fmt.Println()
	}
}

// printAgenda renders the selected month's per-day event listing.
func printAgenda(ctrl *calendar.Controller) {
	single, multi := layout.SplitEvents(ctrl.Events())

	days := layout.AgendaDays(single, multi, ctrl.SelectedDate())
	if len(days) == 0 {
		fmt.Println("no events this month")
		return
	}
	for _, day := range days {
		fmt.Printf("%s\n", day.Date.Format("Mon Jan 2"))
		for _, ev := range day.MultiDayEvents {
			fmt.Printf("  all day   %s\n", ev.Title)
		}
		for _, ev := range day.Events {
			fmt.Printf("  %s-%s %s\n", ev.Start.Format("15:04"), ev.End.Format("15:04"), ev.Title)
		}
	}
}
