package authflow_test

import (
	"context"
	"sync"
	"time"

	"github.com/sosyaltarif/tarifauth/internal/authflow"
	"github.com/sosyaltarif/tarifauth/internal/domain"
	"golang.org/x/text/language"
)

// fakeProvider answers SignIn/CreateAccount from preset values. When gate is
// set, calls block until it is closed.
type fakeProvider struct {
	mu           sync.Mutex
	signInErr    error
	createErr    error
	profileErr   error
	gate         chan struct{}
	started      chan struct{}
	signInCalls  int
	createCalls  int
	displayNames []string
}

func (p *fakeProvider) wait(ctx context.Context) {
	if p.started != nil {
		p.started <- struct{}{}
	}
	if p.gate != nil {
		<-p.gate
	}
}

func (p *fakeProvider) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	p.mu.Lock()
	p.signInCalls++
	p.mu.Unlock()
	p.wait(ctx)
	if p.signInErr != nil {
		return nil, p.signInErr
	}
	return &domain.Session{UserID: "uid-1", Email: email, IDToken: "tok", ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func (p *fakeProvider) CreateAccount(ctx context.Context, email, password string) (*domain.Account, error) {
	p.mu.Lock()
	p.createCalls++
	p.mu.Unlock()
	p.wait(ctx)
	if p.createErr != nil {
		return nil, p.createErr
	}
	return &domain.Account{
		UserID:    "uid-2",
		Email:     email,
		CreatedAt: time.Now(),
		Session:   &domain.Session{UserID: "uid-2", Email: email},
	}, nil
}

// profileProvider adds display name support to fakeProvider.
type profileProvider struct {
	*fakeProvider
}

func (p profileProvider) UpdateDisplayName(ctx context.Context, account *domain.Account, name string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.profileErr != nil {
		return p.profileErr
	}
	p.displayNames = append(p.displayNames, name)
	return nil
}

// recordingPresenter records every call a flow makes.
type recordingPresenter struct {
	mu          sync.Mutex
	id          string
	lang        language.Tag
	busyStarted int
	busyStopped int
	alerts      []authflow.Alert
	navigations []authflow.Destination
	events      []string
}

func newPresenter(id string) *recordingPresenter {
	return &recordingPresenter{id: id, lang: language.Turkish}
}

func (p *recordingPresenter) ScreenID() string { return p.id }
func (p *recordingPresenter) Language() language.Tag { return p.lang }

func (p *recordingPresenter) BusyStarted() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.busyStarted++
	p.events = append(p.events, "busy_started")
}

func (p *recordingPresenter) BusyStopped() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.busyStopped++
	p.events = append(p.events, "busy_stopped")
}

func (p *recordingPresenter) ShowAlert(a authflow.Alert) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.alerts = append(p.alerts, a)
	p.events = append(p.events, "alert")
}

func (p *recordingPresenter) Navigate(d authflow.Destination) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.navigations = append(p.navigations, d)
	p.events = append(p.events, "navigate:"+d.String())
}

func (p *recordingPresenter) lastAlert() authflow.Alert {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.alerts) == 0 {
		return authflow.Alert{}
	}
	return p.alerts[len(p.alerts)-1]
}

func (p *recordingPresenter) calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.events)
}
