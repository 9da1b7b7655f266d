package recruitmenttest

import (
	"context"
	"sync"

	"github.com/Abraxas-365/jobboard/recruitment/application"
)

// Publisher records published events
type Publisher struct {
	mu     sync.Mutex
	events []application.SubmittedEvent

	// Err, when set, is returned instead of recording
	Err error
}

func (p *Publisher) PublishSubmitted(_ context.Context, event application.SubmittedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return p.Err
	}
	p.events = append(p.events, event)
	return nil
}

// Events returns a copy of the recorded events
func (p *Publisher) Events() []application.SubmittedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]application.SubmittedEvent(nil), p.events...)
}
