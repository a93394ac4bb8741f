package outreach

import (
	"fmt"
	"sync"

	"github.com/thenoetrevino/hireboard/internal/events"
	"github.com/thenoetrevino/hireboard/internal/models"
	"github.com/thenoetrevino/hireboard/internal/notify"
)

// Draft is an email prepared for one transition
type Draft struct {
	Candidate models.Candidate
	Kind      Kind
	Tone      Tone
	Body      string
}

// Drafter turns transitions into drafts and keeps the most recent one open
// until a front end dismisses it
type Drafter struct {
	mu      sync.Mutex
	tone    Tone
	current *Draft
	onDraft func(Draft)
}

// NewDrafter creates a drafter using tone for new drafts
func NewDrafter(tone Tone) *Drafter {
	if tone == "" {
		tone = ToneProfessional
	}
	return &Drafter{tone: tone}
}

// OnDraft registers a callback fired after every new draft
func (d *Drafter) OnDraft(fn func(Draft)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onDraft = fn
}

// Observe is an events.Observer
func (d *Drafter) Observe(t events.Transition) {
	kind, ok := KindFor(t.Target)
	if !ok {
		return
	}

	d.mu.Lock()
	draft := Draft{Candidate: t.Card, Kind: kind, Tone: d.tone, Body: Generate(t.Card, kind, d.tone)}
	d.current = &draft
	cb := d.onDraft
	d.mu.Unlock()

	if cb != nil {
		cb(draft)
	}
}

// Current returns the open draft, if any
func (d *Drafter) Current() (Draft, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.current == nil {
		return Draft{}, false
	}
	return *d.current, true
}

// SetTone changes the tone and regenerates the open draft with it
func (d *Drafter) SetTone(tone Tone) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.tone = tone
	if d.current != nil {
		d.current.Tone = tone
		d.current.Body = Generate(d.current.Candidate, d.current.Kind, tone)
	}
}

// Tone returns the tone used for new drafts
func (d *Drafter) Tone() Tone {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.tone
}

// Dismiss closes the open draft
func (d *Drafter) Dismiss() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.current = nil
}

// Celebrate returns an observer that congratulates once per entry into
// the offer column
func Celebrate(n notify.Notifier) events.Observer {
	return func(t events.Transition) {
		if t.Target != models.ColumnOffer || t.Source == models.ColumnOffer {
			return
		}
		n.Notify(notify.LevelSuccess, fmt.Sprintf("🎉 Offer stage reached for %s!", t.Card.Name))
	}
}
