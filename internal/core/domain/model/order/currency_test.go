package order_test

import (
	"testing"

	"orderdesk/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCurrency(t *testing.T) {
	t.Run("known codes", func(t *testing.T) {
		tests := map[string]order.Currency{
			"rub": order.CurrencyRUB,
			"byn": order.CurrencyBYN,
			"cny": order.CurrencyCNY,
			"eur": order.CurrencyEUR,
			"kzt": order.CurrencyKZT,
			"usd": order.CurrencyUSD,
		}
		for code, expected := range tests {
			assert.Equal(t, expected, order.ParseCurrency(code), "code %s", code)
		}
	})

	t.Run("unknown code maps to unspecified without error", func(t *testing.T) {
		assert.Equal(t, order.CurrencyUnspecified, order.ParseCurrency("doge"))
		assert.Equal(t, order.CurrencyUnspecified, order.ParseCurrency(""))
	})
}

func TestCurrency_Label(t *testing.T) {
	assert.Equal(t, "US dollar ($)", order.CurrencyUSD.Label())
	assert.Equal(t, "Russian ruble (₽)", order.CurrencyRUB.Label())
	assert.Equal(t, "Not specified", order.CurrencyUnspecified.Label())
	assert.Equal(t, "Unknown", order.CurrencyUnknown.Label())
}

func TestCategoryAndPlatformParsing(t *testing.T) {
	t.Run("category codes", func(t *testing.T) {
		c, err := order.ParseCategory("chatbot")
		require.NoError(t, err)
		assert.Equal(t, order.CategoryChatbot, c)

		_, err = order.ParseCategory("design")
		require.Error(t, err)
	})

	t.Run("platform codes", func(t *testing.T) {
		p, err := order.ParsePlatform("vk")
		require.NoError(t, err)
		assert.Equal(t, order.PlatformVK, p)

		_, err = order.ParsePlatform("discord")
		require.Error(t, err)
	})

	t.Run("unspecified platform is valid but not selectable", func(t *testing.T) {
		require.NoError(t, order.PlatformUnspecified.Validate())
		require.Error(t, order.PlatformUnspecified.ValidateSelectable())
		require.NoError(t, order.PlatformTelegram.ValidateSelectable())
	})
}
