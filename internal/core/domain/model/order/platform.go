package order

import (
	"fmt"

	"orderdesk/internal/pkg/errs"
)

// Platform is the target messenger for chat-bot orders.
// For every other category the platform stays PlatformUnspecified.
type Platform int

const (
	// PlatformUnknown represents an invalid or undefined platform.
	PlatformUnknown Platform = iota

	// PlatformUnspecified is the default for non-chatbot orders.
	PlatformUnspecified

	// PlatformTelegram targets Telegram.
	PlatformTelegram

	// PlatformVK targets VK.
	PlatformVK
)

func getPlatformStrings() map[Platform]string {
	return map[Platform]string{
		PlatformUnknown:     "unknown",
		PlatformUnspecified: "unspecified",
		PlatformTelegram:    "telegram",
		PlatformVK:          "vk",
	}
}

func getValidPlatformStrings() map[Platform]string {
	//nolint:exhaustive // PlatformUnknown is intentionally excluded as it's invalid
	return map[Platform]string{
		PlatformUnspecified: "unspecified",
		PlatformTelegram:    "telegram",
		PlatformVK:          "vk",
	}
}

func getPlatformLabels() map[Platform]string {
	return map[Platform]string{
		PlatformUnspecified: "Not specified",
		PlatformTelegram:    "Telegram",
		PlatformVK:          "VK",
	}
}

// ParsePlatform converts a wire/storage code into a Platform.
// Returns an error for unrecognized codes.
func ParsePlatform(value string) (Platform, error) {
	for platform, str := range getValidPlatformStrings() {
		if str == value {
			return platform, nil
		}
	}
	return PlatformUnknown, errs.NewValueIsInvalidErrorWithCause(
		"platform", fmt.Errorf("%q is not a valid platform", value))
}

// Validate checks if the Platform value is valid.
func (p Platform) Validate() error {
	if _, ok := getValidPlatformStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("platform", fmt.Errorf("%d is not a valid platform", p))
	}
	return nil
}

// ValidateSelectable checks that the platform is a concrete choice a user may pick
// on the wizard's platform step. PlatformUnspecified is valid for storage but is
// not offered as a selection.
func (p Platform) ValidateSelectable() error {
	if p != PlatformTelegram && p != PlatformVK {
		return errs.NewValueIsInvalidErrorWithCause(
			"platform",
			fmt.Errorf("%s is not a selectable platform", p.String()),
		)
	}
	return nil
}

// String returns the stable code of the platform, e.g. "telegram".
func (p Platform) String() string {
	if str, ok := getPlatformStrings()[p]; ok {
		return str
	}
	return "unknown"
}

// Label returns the display label of the platform for user-facing screens.
func (p Platform) Label() string {
	if label, ok := getPlatformLabels()[p]; ok {
		return label
	}
	return "Unknown"
}
