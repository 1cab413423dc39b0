package controller

import (
	"context"
	"sync"

	"github.com/tahaburak/would-watch/internal/model"
)

type ProfileService interface {
	Profile(ctx context.Context) (model.UserProfile, error)
	Update(ctx context.Context, username *string, privacy *model.PrivacySetting) (model.UserProfile, error)
}

type Profile struct {
	svc ProfileService

	mu      sync.Mutex
	profile *model.UserProfile
	loading bool
	errMsg  string
}

func NewProfile(svc ProfileService) *Profile {
	return &Profile{svc: svc}
}

func (p *Profile) Load(ctx context.Context) {
	p.mu.Lock()
	p.loading = true
	p.errMsg = ""
	p.mu.Unlock()

	profile, err := p.svc.Profile(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.loading = false
	if err != nil {
		p.errMsg = userMessage(err)
		return
	}
	p.profile = &profile
}

func (p *Profile) UpdateUsername(ctx context.Context, username string) {
	if username == "" {
		p.mu.Lock()
		p.errMsg = "Username cannot be empty"
		p.mu.Unlock()
		return
	}
	p.update(ctx, &username, nil)
}

func (p *Profile) UpdatePrivacy(ctx context.Context, privacy model.PrivacySetting) {
	p.update(ctx, nil, &privacy)
}

func (p *Profile) update(ctx context.Context, username *string, privacy *model.PrivacySetting) {
	p.mu.Lock()
	p.loading = true
	p.errMsg = ""
	p.mu.Unlock()

	profile, err := p.svc.Update(ctx, username, privacy)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.loading = false
	if err != nil {
		p.errMsg = userMessage(err)
		return
	}
	p.profile = &profile
}

func (p *Profile) Current() *model.UserProfile {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.profile == nil {
		return nil
	}
	profile := *p.profile
	return &profile
}

func (p *Profile) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loading
}

func (p *Profile) ErrorMessage() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.errMsg
}
