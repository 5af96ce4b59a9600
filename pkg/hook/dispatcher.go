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
)

// 💬 Message is an outgoing message that listeners may rewrite in place
type Message struct {
	Content string
}

// PreSendListener runs before a message is sent to channelID
type PreSendListener func(ctx context.Context, channelID string, msg *Message) error

// Handle identifies a registered listener
type Handle uint64

// 📮 Dispatcher runs pre-send listeners in registration order
type Dispatcher struct {
	mu        sync.Mutex
	next      Handle
	order     []Handle
	listeners map[Handle]PreSendListener
}

// NewDispatcher creates an empty dispatcher
func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: map[Handle]PreSendListener{}}
}

// AddPreSendListener registers fn and returns a handle for removing it
func (d *Dispatcher) AddPreSendListener(fn PreSendListener) Handle {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.next++
	h := d.next
	d.listeners[h] = fn
	d.order = append(d.order, h)
	return h
}

// RemovePreSendListener unregisters h. Unknown handles are ignored.
func (d *Dispatcher) RemovePreSendListener(h Handle) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.listeners[h]; !ok {
		return
	}
	delete(d.listeners, h)
	for i, o := range d.order {
		if o == h {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of registered listeners
func (d *Dispatcher) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.order)
}

// 🚀 Dispatch runs every listener against msg. The first error stops the chain.
func (d *Dispatcher) Dispatch(ctx context.Context, channelID string, msg *Message) error {
	if msg == nil {
		return errors.New("nil message")
	}

	d.mu.Lock()
	chain := make([]PreSendListener, 0, len(d.order))
	for _, h := range d.order {
		chain = append(chain, d.listeners[h])
	}
	d.mu.Unlock()

	zerolog.Ctx(ctx).Trace().Str("channel", channelID).Int("listeners", len(chain)).Msg("dispatching pre-send")

	for i, fn := range chain {
		if err := fn(ctx, channelID, msg); err != nil {
			return errors.Errorf("pre-send listener %d: %w", i, err)
		}
	}
	return nil
}
