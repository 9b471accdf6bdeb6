package telegram

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	tgbot "github.com/go-telegram/bot"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ideafy1/newsbot/config"
)

type fakeUpdatesAPI struct {
	mu          sync.Mutex
	calls       []string
	webhook     *tgbot.SetWebhookParams
	setErr      error
	setOK       bool
	deleteErr   error
	started     chan struct{}
	startedOnce sync.Once
}

func newFakeAPI() *fakeUpdatesAPI {
	return &fakeUpdatesAPI{setOK: true, started: make(chan struct{})}
}

func (f *fakeUpdatesAPI) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeUpdatesAPI) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeUpdatesAPI) block(ctx context.Context) {
	f.startedOnce.Do(func() { close(f.started) })
	<-ctx.Done()
}

func (f *fakeUpdatesAPI) Start(ctx context.Context) {
	f.record("start")
	f.block(ctx)
}

func (f *fakeUpdatesAPI) StartWebhook(ctx context.Context) {
	f.record("start_webhook")
	f.block(ctx)
}

func (f *fakeUpdatesAPI) SetWebhook(_ context.Context, params *tgbot.SetWebhookParams) (bool, error) {
	f.record("set_webhook")
	f.webhook = params
	return f.setOK, f.setErr
}

func (f *fakeUpdatesAPI) DeleteWebhook(context.Context, *tgbot.DeleteWebhookParams) (bool, error) {
	f.record("delete_webhook")
	return f.deleteErr == nil, f.deleteErr
}

func TestNewTransport_Selection(t *testing.T) {
	api := newFakeAPI()

	polling := NewTransport(&config.TelegramConfig{WebhookPath: "/webhook"}, api, zerolog.Nop())
	assert.Equal(t, config.TransportPolling, polling.Name())
	assert.IsType(t, &Polling{}, polling)

	webhook := NewTransport(&config.TelegramConfig{
		WebhookBaseURL: "https://bot.example.com/",
		WebhookPath:    "/webhook",
		WebhookSecret:  "s3cret",
	}, api, zerolog.Nop())
	require.IsType(t, &Webhook{}, webhook)
	assert.Equal(t, config.TransportWebhook, webhook.Name())
	assert.Equal(t, "https://bot.example.com/webhook", webhook.(*Webhook).url)
}

func TestPolling_PrepareToleratesDeleteError(t *testing.T) {
	api := newFakeAPI()
	api.deleteErr = errors.New("network down")

	err := NewPolling(api, zerolog.Nop()).Prepare(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []string{"delete_webhook"}, api.Calls())
}

func TestWebhook_PrepareRegistersURL(t *testing.T) {
	api := newFakeAPI()

	err := NewWebhook(api, "https://bot.example.com/webhook", "s3cret", zerolog.Nop()).Prepare(context.Background())

	require.NoError(t, err)
	require.NotNil(t, api.webhook)
	assert.Equal(t, "https://bot.example.com/webhook", api.webhook.URL)
	assert.Equal(t, "s3cret", api.webhook.SecretToken)
	assert.Equal(t, []string{"message", "callback_query"}, api.webhook.AllowedUpdates)
}

func TestWebhook_PrepareFailures(t *testing.T) {
	api := newFakeAPI()
	api.setErr = errors.New("bad request: bad webhook")
	assert.Error(t, NewWebhook(api, "https://x/webhook", "", zerolog.Nop()).Prepare(context.Background()))

	api = newFakeAPI()
	api.setOK = false
	assert.Error(t, NewWebhook(api, "https://x/webhook", "", zerolog.Nop()).Prepare(context.Background()))
}

func TestRunner_StartStop(t *testing.T) {
	for _, tc := range []struct {
		name      string
		transport func(api UpdatesAPI) Transport
		wantCalls []string
	}{
		{
			name:      "polling",
			transport: func(api UpdatesAPI) Transport { return NewPolling(api, zerolog.Nop()) },
			wantCalls: []string{"delete_webhook", "start"},
		},
		{
			name:      "webhook",
			transport: func(api UpdatesAPI) Transport { return NewWebhook(api, "https://x/webhook", "", zerolog.Nop()) },
			wantCalls: []string{"set_webhook", "start_webhook"},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			api := newFakeAPI()
			runner := NewRunner(tc.transport(api), zerolog.Nop())

			require.NoError(t, runner.Start(context.Background()))

			select {
			case <-api.started:
			case <-time.After(time.Second):
				t.Fatal("transport did not start")
			}
			assert.True(t, runner.Healthy())
			assert.Equal(t, tc.name, runner.TransportName())

			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			require.NoError(t, runner.Stop(ctx))

			assert.False(t, runner.Healthy())
			assert.Equal(t, tc.wantCalls, api.Calls())
		})
	}
}

func TestRunner_StartFailsWhenPrepareFails(t *testing.T) {
	api := newFakeAPI()
	api.setErr = errors.New("unauthorized")
	runner := NewRunner(NewWebhook(api, "https://x/webhook", "", zerolog.Nop()), zerolog.Nop())

	assert.Error(t, runner.Start(context.Background()))
	assert.False(t, runner.Healthy())
	assert.NoError(t, runner.Stop(context.Background()))
	assert.Equal(t, []string{"set_webhook"}, api.Calls())
}
