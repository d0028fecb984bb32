// Package calendar lays out a month as a grid of weeks for the workshop
// calendar and formats dates in Spanish.
//
//	g := calendar.Month(2026, time.March, time.Monday, loc, events)
//	for _, week := range g.Weeks {
//		for _, day := range week {
//			...
//		}
//	}
package calendar
