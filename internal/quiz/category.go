package quiz

import (
	"fmt"
	"strings"
)

// Category is one of the fixed animal archetypes answers vote for.
type Category int

// Declaration order matters: it is the tie-break order for Winner.
const (
	Cat Category = iota
	Dog
	Fox
	Hamster
	Horse

	numCategories = iota
)

var categoryNames = [numCategories]string{
	Cat:     "cat",
	Dog:     "dog",
	Fox:     "fox",
	Hamster: "hamster",
	Horse:   "horse",
}

// Categories returns every category in declaration order.
func Categories() []Category {
	out := make([]Category, numCategories)
	for i := range out {
		out[i] = Category(i)
	}
	return out
}

// Valid reports whether c belongs to the closed category set.
func (c Category) Valid() bool {
	return c >= 0 && c < numCategories
}

func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// ParseCategory maps a lower-case animal name back to its Category.
func ParseCategory(s string) (Category, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range categoryNames {
		if n == name {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("parse category %q: %w", s, ErrUnknownCategory)
}

// ImagePath returns the static asset path for the category's result image.
func ImagePath(c Category) string {
	return "/" + c.String() + ".png"
}

// Headline is the heading shown above a finished quiz's result.
func Headline(c Category) string {
	return fmt.Sprintf("You are most similar to a %s!", c)
}

// ShareText formats the one-line share summary for a result.
func ShareText(c Category, siteURL string) string {
	return fmt.Sprintf("I am a %s! %s", c, siteURL)
}
