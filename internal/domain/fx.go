// Package domain contains all domain modules
package domain

import (
	"go.uber.org/fx"

	"github.com/ideafy1/newsbot/internal/domain/news"
)

// Module aggregates all domain modules for fx dependency injection
var Module = fx.Module("domain",
	news.Module,
)
