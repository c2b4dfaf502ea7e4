package order

import (
	"fmt"

	"orderdesk/internal/pkg/errs"
)

// Category is the closed set of project kinds a user can order.
type Category int

const (
	// CategoryUnknown represents an invalid or undefined category.
	CategoryUnknown Category = iota

	// CategoryChatbot is a chat bot project; the only category with a meaningful platform.
	CategoryChatbot

	// CategoryWebsite is a website project.
	CategoryWebsite

	// CategoryOther covers everything outside the two main offerings.
	CategoryOther
)

func getCategoryStrings() map[Category]string {
	return map[Category]string{
		CategoryUnknown: "unknown",
		CategoryChatbot: "chatbot",
		CategoryWebsite: "website",
		CategoryOther:   "other",
	}
}

func getValidCategoryStrings() map[Category]string {
	//nolint:exhaustive // CategoryUnknown is intentionally excluded as it's invalid
	return map[Category]string{
		CategoryChatbot: "chatbot",
		CategoryWebsite: "website",
		CategoryOther:   "other",
	}
}

// getCategoryLabels returns human-readable display labels for rendering.
func getCategoryLabels() map[Category]string {
	return map[Category]string{
		CategoryChatbot: "Chat bot",
		CategoryWebsite: "Website",
		CategoryOther:   "Other",
	}
}

// ParseCategory converts a wire/storage code into a Category.
// Returns an error for unrecognized codes: the category selection set is closed.
func ParseCategory(value string) (Category, error) {
	for category, str := range getValidCategoryStrings() {
		if str == value {
			return category, nil
		}
	}
	return CategoryUnknown, errs.NewValueIsInvalidErrorWithCause(
		"category", fmt.Errorf("%q is not a valid category", value))
}

// Validate checks if the Category value is valid.
func (c Category) Validate() error {
	if _, ok := getValidCategoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("category", fmt.Errorf("%d is not a valid category", c))
	}
	return nil
}

// String returns the stable code of the category, e.g. "chatbot".
func (c Category) String() string {
	if str, ok := getCategoryStrings()[c]; ok {
		return str
	}
	return "unknown"
}

// Label returns the display label of the category for user-facing screens.
func (c Category) Label() string {
	if label, ok := getCategoryLabels()[c]; ok {
		return label
	}
	return "Unknown"
}
