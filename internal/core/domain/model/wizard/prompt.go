package wizard

import (
	"fmt"
	"strings"

	"orderdesk/internal/core/domain/model/order"
)

// Action is one choice offered at the current step. Code is the stable
// identifier transports echo back; Input is the ready-made input it stands for.
type Action struct {
	Code  string
	Label string
	Input Input
}

// Prompt is what the user sees at the current step: the display text and the
// legal next actions. Free-text steps list control actions only.
type Prompt struct {
	Text    string
	Actions []Action
}

func backAction() Action {
	return Action{Code: "back", Label: "Back", Input: NewBackInput()}
}

// Prompt renders the current step.
func (s *Session) Prompt() Prompt {
	switch s.step {
	case AwaitingCategory:
		return Prompt{
			Text: "What kind of project do you need?",
			Actions: []Action{
				{Code: "category:chatbot", Label: order.CategoryChatbot.Label(), Input: NewCategoryInput(order.CategoryChatbot)},
				{Code: "category:website", Label: order.CategoryWebsite.Label(), Input: NewCategoryInput(order.CategoryWebsite)},
				{Code: "category:other", Label: order.CategoryOther.Label(), Input: NewCategoryInput(order.CategoryOther)},
				backAction(),
			},
		}
	case AwaitingPlatform:
		return Prompt{
			Text: "Which platform should the bot run on?",
			Actions: []Action{
				{Code: "platform:telegram", Label: order.PlatformTelegram.Label(), Input: NewPlatformInput(order.PlatformTelegram)},
				{Code: "platform:vk", Label: order.PlatformVK.Label(), Input: NewPlatformInput(order.PlatformVK)},
				backAction(),
			},
		}
	case AwaitingDescription:
		return Prompt{
			Text: fmt.Sprintf("Describe your project in a few sentences (at least %d characters).",
				order.MinDescriptionLength),
			Actions: []Action{backAction()},
		}
	case AwaitingCurrency:
		return Prompt{
			Text: "Pick the currency for your budget.",
			Actions: []Action{
				{Code: "currency:rub", Label: order.CurrencyRUB.Label(), Input: NewCurrencyInput(order.CurrencyRUB)},
				{Code: "currency:byn", Label: order.CurrencyBYN.Label(), Input: NewCurrencyInput(order.CurrencyBYN)},
				{Code: "currency:cny", Label: order.CurrencyCNY.Label(), Input: NewCurrencyInput(order.CurrencyCNY)},
				{Code: "currency:eur", Label: order.CurrencyEUR.Label(), Input: NewCurrencyInput(order.CurrencyEUR)},
				{Code: "currency:kzt", Label: order.CurrencyKZT.Label(), Input: NewCurrencyInput(order.CurrencyKZT)},
				{Code: "currency:usd", Label: order.CurrencyUSD.Label(), Input: NewCurrencyInput(order.CurrencyUSD)},
				backAction(),
			},
		}
	case AwaitingBudget:
		return Prompt{
			Text:    "What budget do you have in mind? Enter an amount or a range.",
			Actions: []Action{backAction()},
		}
	case AwaitingConfirmation:
		return Prompt{
			Text: s.summary(),
			Actions: []Action{
				{Code: "confirm", Label: "Submit order", Input: NewConfirmInput()},
				{Code: "cancel", Label: "Cancel", Input: NewCancelInput()},
				backAction(),
			},
		}
	}
	return Prompt{}
}

// summary renders the collected draft for the confirmation step.
func (s *Session) summary() string {
	var b strings.Builder
	b.WriteString("Please check your order:\n")
	fmt.Fprintf(&b, "Category: %s\n", s.draft.Category.Label())
	fmt.Fprintf(&b, "Platform: %s\n", s.draft.Platform.Label())
	fmt.Fprintf(&b, "Description: %s\n", s.draft.Description)
	fmt.Fprintf(&b, "Currency: %s\n", s.draft.Currency.Label())
	fmt.Fprintf(&b, "Budget: %s", s.draft.Budget)
	return b.String()
}
