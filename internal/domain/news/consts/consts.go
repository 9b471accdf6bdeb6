// Package consts contains constants for the news domain
package consts

// Command represents a bot command
type Command struct {
	Name        string
	Description string
}

// Bot commands
var CommandStart = Command{Name: "start", Description: "Get a button that sends the latest news"}

// AllCommands contains all available bot commands for menu registration
var AllCommands = []Command{
	CommandStart,
}

// CallbackSendNews is the callback token of the "Send News" button
const CallbackSendNews = "send_news"

// User-facing texts
const (
	StartPrompt     = "Press the button to get news:"
	SendNewsButton  = "Send News"
	ApologyText     = "Sorry, couldn't fetch news at the moment."
	ReadMoreCaption = "Read more"
)
