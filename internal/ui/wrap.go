package ui

import "strings"

// WrapText breaks text into lines narrower than maxWidth as reported by
// measure. A word joins the line while the line plus the word and its
// trailing space stays under maxWidth. Newlines are kept as hard breaks and blank lines survive as empty
// strings. A single word wider than maxWidth gets a line of its own.
func WrapText(text string, maxWidth float64, measure func(string) float64) []string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		current := ""
		for _, word := range strings.Fields(paragraph) {
			candidate := current + word + " "
			if current == "" || measure(candidate) < maxWidth {
				current = candidate
				continue
			}
			lines = append(lines, strings.TrimRight(current, " "))
			current = word + " "
		}
		lines = append(lines, strings.TrimRight(current, " "))
	}
	return lines
}
