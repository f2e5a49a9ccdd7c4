package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// NotFound is the sentinel for receipt fields the parser could not resolve.
const NotFound = "Not found"

var (
	amountRe     = regexp.MustCompile(`\$\s?\d{1,5}(\.\d{2})?`)
	totalWordRe  = regexp.MustCompile(`(?i)\btotal\b`)
	dateRe       = regexp.MustCompile(`\b(?:\d{1,2}/\d{1,2}/\d{2,4}|[A-Z][a-z]+ \d{1,2}, \d{4})\b`)
	slashDateRe  = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{2,4}$`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// ParsedReceipt holds the best-guess fields extracted from raw OCR text.
// Unresolved fields carry the NotFound sentinel.
type ParsedReceipt struct {
	Merchant string
	Total    string
	Date     string
}

// ParseReceiptText extracts merchant, total and date from multi-line OCR
// output. The merchant is the first non-empty line. The total comes from
// the first line containing the word "total" (checking that line, then the
// next one, for a $-amount); if no such line resolves, the largest $-amount
// seen anywhere in the text is used instead. The date is the first match of
// either M/D/YYYY or "Month D, YYYY". A space between $ and the digits is
// tolerated because OCR frequently inserts one.
func ParseReceiptText(raw string) ParsedReceipt {
	lines := make([]string, 0)
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}

	parsed := ParsedReceipt{
		Merchant: NotFound,
		Total:    NotFound,
		Date:     NotFound,
	}

	if len(lines) > 0 {
		parsed.Merchant = lines[0]
	}

	var largestAmount float64
	for i, line := range lines {
		// keyword total: first resolution wins
		if parsed.Total == NotFound && totalWordRe.MatchString(line) {
			if match := amountRe.FindString(line); match != "" {
				parsed.Total = whitespaceRe.ReplaceAllString(match, "")
			} else if i+1 < len(lines) {
				if match := amountRe.FindString(lines[i+1]); match != "" {
					parsed.Total = whitespaceRe.ReplaceAllString(match, "")
				}
			}
		}

		// largest-amount fallback scan runs on every line regardless
		for _, match := range amountRe.FindAllString(line, -1) {
			raw := whitespaceRe.ReplaceAllString(strings.TrimPrefix(match, "$"), "")
			if amount, err := strconv.ParseFloat(raw, 64); err == nil && amount > largestAmount {
				largestAmount = amount
			}
		}

		if parsed.Date == NotFound {
			if match := dateRe.FindString(line); match != "" {
				parsed.Date = match
			}
		}
	}

	if parsed.Total == NotFound && largestAmount > 0 {
		parsed.Total = fmt.Sprintf("$%.2f", largestAmount)
	}

	return parsed
}

// Amount resolves Total to a numeric value. ok is false for the sentinel
// and for anything that does not parse as a number.
func (p ParsedReceipt) Amount() (float64, bool) {
	if p.Total == NotFound {
		return 0, false
	}

	amount, err := strconv.ParseFloat(strings.TrimPrefix(p.Total, "$"), 64)
	if err != nil {
		return 0, false
	}

	return amount, true
}

// ResolvedDate converts the matched date text to a UTC instant. Two-digit
// years are treated as 20YY.
func (p ParsedReceipt) ResolvedDate() (time.Time, bool) {
	if p.Date == NotFound {
		return time.Time{}, false
	}

	if slashDateRe.MatchString(p.Date) {
		parts := strings.Split(p.Date, "/")

		month, _ := strconv.Atoi(parts[0])
		day, _ := strconv.Atoi(parts[1])

		yearPart := parts[2]
		if len(yearPart) == 2 {
			yearPart = "20" + yearPart
		}
		year, _ := strconv.Atoi(yearPart)

		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		// time.Date normalizes out-of-range components (13/45 rolls into the
		// next year), so an unchanged round trip is the validity check.
		if date.Year() != year || date.Month() != time.Month(month) || date.Day() != day {
			return time.Time{}, false
		}

		return date, true
	}

	date, err := time.Parse("January 2, 2006", p.Date)
	if err != nil {
		return time.Time{}, false
	}

	return date.UTC(), true
}
