package calendar

import (
	"strconv"
	"time"
)

var monthNames = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

var weekdayNames = [...]string{
	"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado",
}

var weekdayShort = [...]string{"Dom", "Lun", "Mar", "Mié", "Jue", "Vie", "Sáb"}

// MonthName returns the lower-case Spanish month name.
func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return monthNames[m-1]
}

// WeekdayName returns the lower-case Spanish weekday name.
func WeekdayName(d time.Weekday) string {
	if d < time.Sunday || d > time.Saturday {
		return ""
	}
	return weekdayNames[d]
}

// Weekdays returns the short grid header labels starting at weekStart.
func Weekdays(weekStart time.Weekday) []string {
	out := make([]string, 7)
	for i := range 7 {
		out[i] = weekdayShort[(int(weekStart)+i)%7]
	}
	return out
}

// FormatLong renders t as "lunes 4 de mayo de 2026".
func FormatLong(t time.Time) string {
	return WeekdayName(t.Weekday()) + " " + strconv.Itoa(t.Day()) + " de " + MonthName(t.Month()) + " de " + strconv.Itoa(t.Year())
}

func itoa(n int) string { return strconv.Itoa(n) }
