package wizard

import (
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

// InputKind discriminates the Input variant. The zero value is invalid.
type InputKind int

const (
	InputUnknown InputKind = iota

	// InputCategory carries an order category selection.
	InputCategory
	// InputPlatform carries a platform selection.
	InputPlatform
	// InputCurrency carries a currency selection.
	InputCurrency
	// InputText carries free-form text (description or budget).
	InputText
	// InputConfirm submits the collected draft.
	InputConfirm
	// InputCancel discards the draft and leaves the wizard.
	InputCancel
	// InputBack moves one step towards the start.
	InputBack
	// InputReset leaves the wizard from any step.
	InputReset
)

func getInputKindStrings() map[InputKind]string {
	return map[InputKind]string{
		InputUnknown:  "unknown",
		InputCategory: "category",
		InputPlatform: "platform",
		InputCurrency: "currency",
		InputText:     "text",
		InputConfirm:  "confirm",
		InputCancel:   "cancel",
		InputBack:     "back",
		InputReset:    "reset",
	}
}

// String returns the InputKind string form, or "unknown" for unrecognized values.
func (k InputKind) String() string {
	if str, ok := getInputKindStrings()[k]; ok {
		return str
	}
	return getInputKindStrings()[InputUnknown]
}

// Input is one user input to the wizard: a selection, free text, or a control
// action. The payload getter matching the kind is meaningful; the others return
// zero values.
type Input struct {
	guard.ConstructorGuard

	kind     InputKind
	category order.Category
	platform order.Platform
	currency order.Currency
	text     string
}

// NewCategoryInput creates a category selection input.
func NewCategoryInput(category order.Category) Input {
	return Input{
		ConstructorGuard: guard.NewConstructorGuard(),

		kind:     InputCategory,
		category: category,
	}
}

// NewPlatformInput creates a platform selection input.
func NewPlatformInput(platform order.Platform) Input {
	return Input{
		ConstructorGuard: guard.NewConstructorGuard(),

		kind:     InputPlatform,
		platform: platform,
	}
}

// NewCurrencyInput creates a currency selection input.
func NewCurrencyInput(currency order.Currency) Input {
	return Input{
		ConstructorGuard: guard.NewConstructorGuard(),

		kind:     InputCurrency,
		currency: currency,
	}
}

// NewTextInput creates a free-form text input.
func NewTextInput(text string) Input {
	return Input{
		ConstructorGuard: guard.NewConstructorGuard(),

		kind: InputText,
		text: text,
	}
}

// NewConfirmInput creates a draft confirmation input.
func NewConfirmInput() Input {
	return Input{
		ConstructorGuard: guard.NewConstructorGuard(),

		kind: InputConfirm,
	}
}

// NewCancelInput creates a cancellation input.
func NewCancelInput() Input {
	return Input{
		ConstructorGuard: guard.NewConstructorGuard(),

		kind: InputCancel,
	}
}

// NewBackInput creates a one-step-back input.
func NewBackInput() Input {
	return Input{
		ConstructorGuard: guard.NewConstructorGuard(),

		kind: InputBack,
	}
}

// NewResetInput creates a reset input.
func NewResetInput() Input {
	return Input{
		ConstructorGuard: guard.NewConstructorGuard(),

		kind: InputReset,
	}
}

// Validate checks that the input was created via a constructor.
func (i Input) Validate() error {
	return i.ConstructorGuard.Validate(errs.NewValueIsRequiredError("input"))
}

// Kind returns the input discriminator.
func (i Input) Kind() InputKind {
	return i.kind
}

// Category returns the selected category for InputCategory inputs.
func (i Input) Category() order.Category {
	return i.category
}

// Platform returns the selected platform for InputPlatform inputs.
func (i Input) Platform() order.Platform {
	return i.platform
}

// Currency returns the selected currency for InputCurrency inputs.
func (i Input) Currency() order.Currency {
	return i.currency
}

// Text returns the free-form text for InputText inputs.
func (i Input) Text() string {
	return i.text
}
