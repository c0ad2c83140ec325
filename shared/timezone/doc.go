// Package timezone pins every date the hotel reasons about to one location.
//
// Stay dates are calendar days at the property, not instants. A check-in of
// "2026-11-01" means that day in APP_TIMEZONE regardless of where the guest or
// the server is:
//
//	today := timezone.Today()                        // midnight at the property
//	checkIn, err := timezone.Parse(time.DateOnly, "2026-11-01")
//	nights := timezone.DaysBetween(checkIn, checkOut) // calendar days, DST safe
//
// Timestamps written to the database (created_at, cancelled_at) use Now and are
// rendered back with Format.
//
// APP_TIMEZONE takes IANA names such as "Asia/Jakarta" or "UTC". An empty or
// unknown name falls back to UTC with a log line. The binaries set it with Use
// after the logger is configured; otherwise it is read from the config on the
// first lookup.
package timezone
