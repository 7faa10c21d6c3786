// Package scraper provides HTTP fetching and HTML table extraction for the
// public holidays page.
//
// The scraper fetches the holidays page, parses it into a Node tree and scans
// every table for holiday rows. Tables are recognised by their header labels
// (a holiday/occasion column and a date column); column roles are inferred from
// the same labels so the extractor survives columns being reordered or renamed
// between page revisions. Tables that do not look like holiday tables are skipped.
package scraper
