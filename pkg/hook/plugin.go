// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hook

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/uwuify/pkg/rules"
	"github.com/walteh/uwuify/pkg/store"
	"github.com/walteh/uwuify/pkg/uwu"
)

// 🔌 Plugin wires the transformer into a dispatcher
type Plugin struct {
	dispatcher      *Dispatcher
	transformer     *uwu.Transformer
	store           store.Store
	reservedChannel string

	mu       sync.Mutex
	handle   Handle
	started  bool
	settings *rules.Settings
}

// NewPlugin creates a stopped plugin
func NewPlugin(d *Dispatcher, t *uwu.Transformer, s store.Store, reservedChannel string) *Plugin {
	return &Plugin{
		dispatcher:      d,
		transformer:     t,
		store:           s,
		reservedChannel: reservedChannel,
	}
}

// ▶️ Start loads the rule lists and registers the pre-send listener.
// Starting twice is an error.
func (p *Plugin) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return errors.New("plugin already started")
	}

	settings, err := rules.Load(ctx, p.store)
	if err != nil {
		return errors.Errorf("loading settings: %w", err)
	}

	p.settings = settings
	p.handle = p.dispatcher.AddPreSendListener(p.preSend)
	p.started = true

	zerolog.Ctx(ctx).Debug().Str("reserved_channel", p.reservedChannel).Msg("uwuify plugin started")
	return nil
}

// ⏹️ Stop unregisters the listener. Stopping a stopped plugin does nothing.
func (p *Plugin) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	p.dispatcher.RemovePreSendListener(p.handle)
	p.started = false
}

// Settings returns the rule lists loaded by Start, or nil before Start
func (p *Plugin) Settings() *rules.Settings {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.settings
}

func (p *Plugin) preSend(ctx context.Context, channelID string, msg *Message) error {
	if channelID == p.reservedChannel {
		zerolog.Ctx(ctx).Trace().Str("channel", channelID).Msg("reserved channel, leaving message as is")
		return nil
	}
	msg.Content = p.transformer.ApplyRules(msg.Content)
	return nil
}
