package app

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/vgau/boteditor/core"
	"github.com/vgau/boteditor/internal/config"
	"github.com/vgau/boteditor/internal/graphmod"
	"github.com/vgau/boteditor/internal/service"
)

// Exporter writes the current menu graph to a file and returns its path.
type Exporter interface {
	Export(ctx context.Context, format service.Format) (string, error)
}

// Deps carries what the tabs need from the outside world. Nil fields leave
// the matching feature disabled.
type Deps struct {
	Config   config.Config
	Loader   graphmod.Loader
	Exporter Exporter
	Logger   logrus.FieldLogger
	// Context scopes background work; cancelled when the program exits.
	Context context.Context
}

func (d Deps) logger() logrus.FieldLogger {
	if d.Logger == nil {
		return logrus.StandardLogger()
	}
	return d.Logger
}

func (d Deps) context() context.Context {
	if d.Context == nil {
		return context.Background()
	}
	return d.Context
}

// Tabs returns the five sections in display order.
func Tabs(deps Deps) []core.Tab {
	return []core.Tab{
		NewMenuTab(),
		NewGraphTab(deps),
		NewFAQTab(),
		NewExportTab(deps),
		NewSettingsTab(deps.Config),
	}
}
