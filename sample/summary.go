package sample

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Labels of the statistics every Summary carries, in report order.
const (
	LabelCount    = "Count"
	LabelSum      = "Sum"
	LabelMean     = "Mean"
	LabelVariance = "Variance"
	LabelStdDev   = "Std Dev"
)

// UnknownStatistic is returned by Summary.Statistic for labels that were never added.
const UnknownStatistic = "Unknown"

// Statistic is one labelled, formatted entry of a Summary.
type Statistic struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// Summary is an insertion-ordered report of formatted statistics for a Sample.
// It is read-only once returned by Sample.Summary.
type Summary struct {
	name    string
	unit    string
	entries []Statistic
	index   map[string]int

	maxLabelLen int
	maxValueLen int
}

func newSummary(name, unit string) *Summary {
	return &Summary{
		name:  name,
		unit:  unit,
		index: make(map[string]int),
	}
}

// add records value under label, appending the sample's unit when it has
// one. The first value added for a label wins; later ones are ignored.
func (s *Summary) add(label, value string) {
	if _, ok := s.index[label]; ok {
		return
	}
	if s.unit != "" {
		value = value + " " + s.unit
	}
	s.addRaw(label, value)
}

// addRaw records value exactly as given.
func (s *Summary) addRaw(label, value string) {
	if _, ok := s.index[label]; ok {
		return
	}
	s.index[label] = len(s.entries)
	s.entries = append(s.entries, Statistic{Label: label, Value: value})
	s.maxLabelLen = max(s.maxLabelLen, utf8.RuneCountInString(label))
	s.maxValueLen = max(s.maxValueLen, utf8.RuneCountInString(value))
}

// Statistic returns the formatted value stored under label, or
// UnknownStatistic.
func (s *Summary) Statistic(label string) string {
	if i, ok := s.index[label]; ok {
		return s.entries[i].Value
	}
	return UnknownStatistic
}

// Len returns the number of statistics in the summary.
func (s *Summary) Len() int {
	return len(s.entries)
}

// Entries returns the statistics in insertion order.
func (s *Summary) Entries() []Statistic {
	entries := make([]Statistic, len(s.entries))
	copy(entries, s.entries)
	return entries
}

// String renders the summary as a header followed by one aligned line per
// statistic. Labels are left-justified and values right-justified to the
// widest entry.
func (s *Summary) String() string {
	var sb strings.Builder
	sb.WriteString("Summary Statistics for Sample: ")
	sb.WriteString(s.name)
	sb.WriteString("\n\n")
	for _, e := range s.entries {
		fmt.Fprintf(&sb, "%-*s: %*s\n", s.maxLabelLen, e.Label, s.maxValueLen, e.Value)
	}
	return sb.String()
}
