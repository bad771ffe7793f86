package session

import (
	"context"
	"sync"
)

// Provider owns the process-scoped session state machine:
//
//	Unknown → Checking → Authenticated | Anonymous
//
// It is an explicit instance injected into consumers, not an ambient
// singleton. Transitions are serialized under an internal mutex, so consumers
// always observe a complete session snapshot, never a profile without
// Authenticated status or the reverse.
type Provider struct {
	client *Client

	mu      sync.Mutex
	started bool
	current Session
	subs    []chan Session
}

func NewProvider(client *Client) *Provider {
	return &Provider{
		client:  client,
		current: Session{Status: StatusUnknown},
	}
}

// Start runs the restore transition exactly once: Unknown → Checking while
// the credential store is read, then Authenticated or Anonymous. Subsequent
// calls return the current session without re-running the restore.
func (p *Provider) Start(ctx context.Context) Session {
	p.mu.Lock()
	if p.started {
		defer p.mu.Unlock()
		return p.current
	}
	p.started = true
	p.commitLocked(Session{Status: StatusChecking})
	p.mu.Unlock()

	restored := p.client.Restore(ctx)
	return p.commit(restored)
}

// Current returns the session snapshot.
func (p *Provider) Current() Session {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Subscribe returns a channel receiving every state transition. The channel
// is buffered; a slow consumer misses intermediate transitions rather than
// blocking the state machine.
func (p *Provider) Subscribe() <-chan Session {
	p.mu.Lock()
	defer p.mu.Unlock()

	ch := make(chan Session, 8)
	p.subs = append(p.subs, ch)
	return ch
}

// Login delegates to the Client and commits the authenticated session. On
// error the state machine is untouched and the *AuthError is passed through
// for user-facing display.
func (p *Provider) Login(ctx context.Context, username, password string) (Session, error) {
	if err := p.requireStarted(); err != nil {
		return Session{}, err
	}

	s, err := p.client.Login(ctx, username, password)
	if err != nil {
		return Session{}, err
	}
	return p.commit(s), nil
}

// Register delegates to the Client with the same contract as Login.
func (p *Provider) Register(ctx context.Context, input RegisterInput) (Session, error) {
	if err := p.requireStarted(); err != nil {
		return Session{}, err
	}

	s, err := p.client.Register(ctx, input)
	if err != nil {
		return Session{}, err
	}
	return p.commit(s), nil
}

// Logout tears the session down. Local state always ends Anonymous, even
// when the remote invalidation fails.
func (p *Provider) Logout(ctx context.Context) Session {
	if err := p.requireStarted(); err != nil {
		return p.Current()
	}
	return p.commit(p.client.Logout(ctx))
}

// UpdateProfile refreshes the cached profile, preserving the token.
func (p *Provider) UpdateProfile(ctx context.Context, update ProfileUpdate) (*Profile, error) {
	if err := p.requireStarted(); err != nil {
		return nil, err
	}

	user, err := p.client.UpdateProfile(ctx, update)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	if p.current.Status == StatusAuthenticated {
		p.commitLocked(authenticated(p.current.Token, user))
	}
	p.mu.Unlock()
	return user, nil
}

// Invalidate handles out-of-band session invalidation: a downstream call
// reported the held token as rejected, so the credentials are discarded and
// the session becomes Anonymous. Callers should gate this on
// AuthError.TokenRejected. Before Start there is nothing to invalidate and
// the Unknown state is left alone.
func (p *Provider) Invalidate(ctx context.Context) Session {
	if err := p.requireStarted(); err != nil {
		return p.Current()
	}
	return p.commit(p.client.Discard(ctx))
}

func (p *Provider) requireStarted() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.started {
		return ErrNotInitialized
	}
	return nil
}

func (p *Provider) commit(s Session) Session {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.commitLocked(s)
	return p.current
}

func (p *Provider) commitLocked(s Session) {
	p.current = s
	for _, ch := range p.subs {
		select {
		case ch <- s:
		default:
		}
	}
}
