package bankcal

import "time"

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

// CanadianHolidays returns the federal statutory banking holidays for the
// supported years. Kept as data handed to New, never consulted directly by
// the calendar logic.
func CanadianHolidays() []time.Time {
	return []time.Time{
		d(2024, time.January, 1),    // New Year's Day
		d(2024, time.February, 19),  // Family Day
		d(2024, time.March, 29),     // Good Friday
		d(2024, time.May, 20),       // Victoria Day
		d(2024, time.July, 1),       // Canada Day
		d(2024, time.August, 5),     // Civic Holiday
		d(2024, time.September, 2),  // Labour Day
		d(2024, time.October, 14),   // Thanksgiving
		d(2024, time.November, 11),  // Remembrance Day
		d(2024, time.December, 25),  // Christmas Day
		d(2024, time.December, 26),  // Boxing Day
		d(2025, time.January, 1),    // New Year's Day
		d(2025, time.February, 17),  // Family Day
		d(2025, time.April, 18),     // Good Friday
		d(2025, time.May, 19),       // Victoria Day
		d(2025, time.July, 1),       // Canada Day
		d(2025, time.August, 4),     // Civic Holiday
		d(2025, time.September, 1),  // Labour Day
		d(2025, time.October, 13),   // Thanksgiving
		d(2025, time.November, 11),  // Remembrance Day
		d(2025, time.December, 25),  // Christmas Day
		d(2025, time.December, 26),  // Boxing Day
		d(2026, time.January, 1),    // New Year's Day
		d(2026, time.February, 16),  // Family Day
		d(2026, time.April, 3),      // Good Friday
		d(2026, time.May, 18),       // Victoria Day
		d(2026, time.July, 1),       // Canada Day
		d(2026, time.August, 3),     // Civic Holiday
		d(2026, time.September, 7),  // Labour Day
		d(2026, time.October, 12),   // Thanksgiving
		d(2026, time.November, 11),  // Remembrance Day
		d(2026, time.December, 25),  // Christmas Day
		d(2026, time.December, 28),  // Boxing Day (observed)
	}
}
