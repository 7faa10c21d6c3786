// Package calendar renders holiday sets as iCalendar (RFC 5545) text.
package calendar

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pfrederiksen/mmrda-holidays/internal/holiday"
	"github.com/pfrederiksen/mmrda-holidays/internal/logger"
)

const (
	// ProductID identifies the generator in the PRODID property
	ProductID = "-//HolidayMCP//EN"

	// UIDDomain is appended to each fingerprint to form the event UID
	UIDDomain = "holidaymcp"

	// maxLineOctets is the RFC 5545 content line limit, excluding CRLF
	maxLineOctets = 75
)

// GenerateICS renders one all-day event per holiday inside a single
// VCALENDAR. stamp is written as every event's DTSTAMP, so the same input
// always produces the same bytes. calName is optional.
func GenerateICS(holidays []holiday.Holiday, stamp time.Time, calName string) string {
	var ics strings.Builder

	writeLine(&ics, "BEGIN:VCALENDAR")
	writeLine(&ics, "VERSION:2.0")
	writeLine(&ics, "PRODID:"+ProductID)
	writeLine(&ics, "CALSCALE:GREGORIAN")
	writeLine(&ics, "METHOD:PUBLISH")
	if calName != "" {
		writeLine(&ics, "X-WR-CALNAME:"+escapeICS(calName))
	}

	dtstamp := formatICSTime(stamp)
	for _, h := range holidays {
		date, ok := holiday.ParseISO(h.Date)
		if !ok {
			logger.Debug("Skipping holiday with non-canonical date", logger.Fields{
				"name": h.Name,
				"date": h.Date,
			})
			continue
		}

		writeLine(&ics, "BEGIN:VEVENT")
		writeLine(&ics, fmt.Sprintf("UID:%s@%s", h.SourceHash, UIDDomain))
		writeLine(&ics, "DTSTAMP:"+dtstamp)
		writeLine(&ics, "SUMMARY:"+escapeICS(h.Name))
		writeLine(&ics, "DTSTART;VALUE=DATE:"+formatICSDate(date))
		writeLine(&ics, "DESCRIPTION:"+escapeICS("Holiday from "+h.SourceURL))
		// Holidays do not block time
		writeLine(&ics, "TRANSP:TRANSPARENT")
		writeLine(&ics, "END:VEVENT")
	}

	writeLine(&ics, "END:VCALENDAR")

	return ics.String()
}

// writeLine writes a folded content line terminated by CRLF
func writeLine(b *strings.Builder, line string) {
	b.WriteString(foldLine(line))
	b.WriteString("\r\n")
}

// foldLine splits lines longer than 75 octets. Continuation lines start
// with a single space and cuts never split a UTF-8 sequence.
func foldLine(line string) string {
	if len(line) <= maxLineOctets {
		return line
	}

	var b strings.Builder
	limit := maxLineOctets
	for len(line) > limit {
		cut := limit
		for cut > 0 && !utf8.RuneStart(line[cut]) {
			cut--
		}
		b.WriteString(line[:cut])
		b.WriteString("\r\n ")
		line = line[cut:]
		limit = maxLineOctets - 1
	}
	b.WriteString(line)

	return b.String()
}

// formatICSTime formats a time.Time as an iCalendar datetime string
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// formatICSDate formats a calendar date as an iCalendar DATE value
func formatICSDate(t time.Time) string {
	return t.Format("20060102")
}

// escapeICS escapes special characters for iCalendar format
func escapeICS(s string) string {
	// Replace special characters according to RFC 5545
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\r\n", "\\n")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
