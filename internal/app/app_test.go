package app

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestCreateApp_GraphIsComplete(t *testing.T) {
	for _, tc := range []struct {
		name string
		env  map[string]string
	}{
		{
			name: "polling",
			env:  map[string]string{"TELEGRAM_BOT_TOKEN": "123:abc"},
		},
		{
			name: "webhook headlines",
			env: map[string]string{
				"TELEGRAM_BOT_TOKEN": "123:abc",
				"WEBHOOK_BASE_URL":   "https://bot.example.com",
				"NEWS_SOURCE":        "headlines",
				"NEWS_URL":           "https://news.example.com",
				"NEWS_PICK":          "random",
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			require.NoError(t, fx.ValidateApp(CreateApp()))
		})
	}
}
