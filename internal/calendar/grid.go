package calendar

import (
	"fmt"
	"time"

	"github.com/crewcal/crewcal/internal/colors"
	"github.com/crewcal/crewcal/internal/schedule"
)

// GridCells is the fixed cell count of every month grid: six full weeks.
// Always rendering 42 days guarantees the whole target month fits no matter
// its length or starting weekday.
const GridCells = 42

// DaysPerWeek is the grid width. Weeks start on Sunday.
const DaysPerWeek = 7

// Swatch is one colored marker on a calendar cell.
type Swatch struct {
	Category colors.Category
	Title    string
}

// Cell is one day of a rendered month grid.
type Cell struct {
	Day      schedule.Day
	InMonth  bool
	Swatches []Swatch
}

// Grid is a complete month: a header label plus exactly GridCells day cells
// starting on the Sunday on or before the first of the month.
type Grid struct {
	Year  int
	Month time.Month
	Label string
	Cells []Cell
}

// SwatchFunc derives the swatches for one cell from the tasks active on that
// day. The planner emits one swatch per task; the dashboard emits one per
// project.
type SwatchFunc func(day schedule.Day, active []schedule.Task) []Swatch

// TaskSwatches is the planner's SwatchFunc: one swatch per distinct category
// among the day's active tasks, in first-occurrence order, titled with the
// first team that introduced the category.
func TaskSwatches(classifier *colors.Classifier) SwatchFunc {
	return func(_ schedule.Day, active []schedule.Task) []Swatch {
		seen := make(map[colors.Category]struct{}, len(active))
		var swatches []Swatch
		for _, task := range active {
			category := classifier.Classify(task.Team)
			if _, ok := seen[category]; ok {
				continue
			}
			seen[category] = struct{}{}
			swatches = append(swatches, Swatch{
				Category: category,
				Title:    task.Team,
			})
		}
		return swatches
	}
}

// MonthGrid generates the grid for one month. The function is pure: the same
// year, month, tasks, and swatch function always produce the same grid, and
// the inputs are never mutated. The current date plays no part here.
func MonthGrid(year int, month time.Month, tasks []schedule.Task, swatches SwatchFunc) Grid {
	grid := Grid{
		Year:  year,
		Month: month,
		Label: fmt.Sprintf("%s %d", month, year),
		Cells: make([]Cell, 0, GridCells),
	}
	day := anchorSunday(year, month)
	for i := 0; i < GridCells; i++ {
		cell := Cell{
			Day:     day,
			InMonth: day.Month() == month && day.Year() == year,
		}
		active := schedule.TasksOn(tasks, day)
		if swatches != nil && len(active) > 0 {
			cell.Swatches = swatches(day, active)
		}
		grid.Cells = append(grid.Cells, cell)
		day = day.Next()
	}
	return grid
}

// anchorSunday backs up from the first of the month to the most recent
// Sunday on or before it.
func anchorSunday(year int, month time.Month) schedule.Day {
	first := schedule.NewDay(year, month, 1)
	return first.AddDays(-int(first.Weekday()))
}

// YearMonth names one calendar month.
type YearMonth struct {
	Year  int
	Month time.Month
}

// MonthsSpanning enumerates every month from min's through max's, inclusive.
// Area calendars render one grid per entry.
func MonthsSpanning(min, max schedule.Day) []YearMonth {
	if max.Before(min) {
		return nil
	}
	var months []YearMonth
	year, month := min.Year(), min.Month()
	for {
		months = append(months, YearMonth{Year: year, Month: month})
		if year == max.Year() && month == max.Month() {
			return months
		}
		month++
		if month > time.December {
			month = time.January
			year++
		}
	}
}
