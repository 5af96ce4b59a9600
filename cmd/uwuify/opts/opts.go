package opts

import (
	"github.com/walteh/uwuify/pkg/config"
	"github.com/walteh/uwuify/pkg/hook"
	"github.com/walteh/uwuify/pkg/log"
	"github.com/walteh/uwuify/pkg/rules"
	"github.com/walteh/uwuify/pkg/store"
	"github.com/walteh/uwuify/pkg/uwu"
)

// RootOpts contains shared options used by all commands.
// The root command fills it in before any subcommand runs.
type RootOpts struct {
	ConfigFile string
	Debug      bool

	Config      *config.Config
	Store       store.Store
	Transformer *uwu.Transformer
	Dispatcher  *hook.Dispatcher
	Plugin      *hook.Plugin
	UserLogger  *log.UserLogger
}

// Settings returns the rule lists the plugin loaded
func (o *RootOpts) Settings() *rules.Settings {
	if o.Plugin == nil {
		return nil
	}
	return o.Plugin.Settings()
}
