package analytics

import (
	"strings"
	"time"

	"swiftrider/internal/entities"
)

const dateLayout = "2006-01-02"

// ParseWindow разбирает startDate и endDate из запроса. Пустая строка - граница не задана.
// Дата без времени в endDate включает весь день.
func ParseWindow(start, end string) (entities.AnalyticsWindow, error) {
	var window entities.AnalyticsWindow

	if start = strings.TrimSpace(start); start != "" {
		t, _, ok := parseBound(start)
		if !ok {
			return window, ErrInvalidStartDate
		}
		window.Start = &t
	}

	if end = strings.TrimSpace(end); end != "" {
		t, dateOnly, ok := parseBound(end)
		if !ok {
			return window, ErrInvalidEndDate
		}
		if dateOnly {
			t = t.Add(24*time.Hour - time.Nanosecond)
		}
		window.End = &t
	}

	err := validateWindow(window)
	if err != nil {
		return entities.AnalyticsWindow{}, err
	}
	return window, nil
}

func parseBound(value string) (time.Time, bool, bool) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), false, true
	}
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t.UTC(), true, true
	}
	return time.Time{}, false, false
}

func validateWindow(window entities.AnalyticsWindow) error {
	if window.Start != nil && window.End != nil && window.Start.After(*window.End) {
		return ErrInvalidWindow
	}
	return nil
}
