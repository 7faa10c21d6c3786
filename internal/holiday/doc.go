// Package holiday provides the holiday record and the pipeline that turns raw
// table rows into a validated, deduplicated holiday set.
//
// Date text scraped from the source page comes in many shapes ("15 Aug",
// "15-08-2024", "August 15, 2024", ...). Normalize resolves it into a canonical
// YYYY-MM-DD date, using a year hint when the text omits the year. Build applies
// the normalizer to every row, drops what cannot be resolved, and returns the
// set sorted by date.
package holiday
