// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package history

import (
	"os"
	"time"

	"golang.org/x/text/language"
)

// =============================================================================
// DATE GROUPING
// =============================================================================

// DateGroup is an ordered bucket of conversations sharing a calendar day,
// keyed by the locale-formatted date of each conversation's first message.
type DateGroup struct {
	Label         string
	Conversations []Conversation
}

// Group buckets conversations by the calendar date of their first message,
// formatted for the locale detected from the environment. Buckets appear
// in first-seen order of their date label; conversations keep discovery
// order within a bucket. Pure function of its input, recomputed on every
// history view.
func Group(convs []Conversation) []DateGroup {
	return GroupWithLocale(convs, EnvLocale())
}

// GroupWithLocale is Group with an explicit locale tag, for callers and
// tests that cannot rely on the process environment.
func GroupWithLocale(convs []Conversation, tag language.Tag) []DateGroup {
	layout := dateLayout(tag)

	var groups []DateGroup
	index := make(map[string]int)

	for _, conv := range convs {
		label := conv.First().Timestamp.Format(layout)
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, DateGroup{Label: label})
		}
		groups[i].Conversations = append(groups[i].Conversations, conv)
	}

	return groups
}

// NewestFirst reverses each bucket's conversations in place so a day's
// entries list newest first. The buckets themselves keep their
// first-seen order. Returns groups for chaining off Group.
func NewestFirst(groups []DateGroup) []DateGroup {
	for g := range groups {
		convs := groups[g].Conversations
		for i, j := 0, len(convs)-1; i < j; i, j = i+1, j-1 {
			convs[i], convs[j] = convs[j], convs[i]
		}
	}
	return groups
}

// =============================================================================
// LOCALE HANDLING
// =============================================================================

// EnvLocale resolves the user's locale from LC_ALL, LC_TIME, then LANG.
// An unset or unparseable locale falls back to English.
func EnvLocale() language.Tag {
	for _, name := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		value := os.Getenv(name)
		if value == "" || value == "C" || value == "POSIX" {
			continue
		}
		// Strip the ".UTF-8" style suffix before parsing.
		for i, r := range value {
			if r == '.' || r == '@' {
				value = value[:i]
				break
			}
		}
		if tag, err := language.Parse(value); err == nil {
			return tag
		}
	}
	return language.English
}

// dateLayout returns the day-granularity date layout for a locale. Month
// and day ordering follows the region; CJK locales get the ISO ordering
// they conventionally use.
func dateLayout(tag language.Tag) string {
	base, _ := tag.Base()
	switch base.String() {
	case "ja", "zh", "ko":
		return "2006-01-02"
	}

	region, _ := tag.Region()
	switch region.String() {
	case "US", "PH":
		return "January 2, 2006"
	default:
		return "2 January 2006"
	}
}

// SameDay reports whether two timestamps fall on the same calendar day in
// local time.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
