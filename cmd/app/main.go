package main

import (
	"go.uber.org/fx"

	"github.com/ideafy1/newsbot/internal/app"
)

func main() {
	fx.New(app.CreateApp()).Run()
}
