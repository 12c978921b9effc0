package usecase

import (
	"context"

	"github.com/ManideepMuddagowni/veronica/internal/domain"
)

// fakeChat returns canned replies (or an error) and counts calls.
type fakeChat struct {
	reply string
	err   error
	calls int

	lastSystem string
	lastUser   string
}

func (f *fakeChat) Complete(_ context.Context, system, user string, _ float32) (string, error) {
	f.calls++
	f.lastSystem = system
	f.lastUser = user
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

// fakeSearch serves canned Serper responses keyed per endpoint.
type fakeSearch struct {
	shopping    *domain.SerperShoppingResponse
	shoppingErr error
	web         *domain.SerperSearchResponse
	webErr      error

	shoppingQueries []string
	webQueries      []string
}

func (f *fakeSearch) SearchShopping(_ context.Context, query string) (*domain.SerperShoppingResponse, error) {
	f.shoppingQueries = append(f.shoppingQueries, query)
	if f.shoppingErr != nil {
		return nil, f.shoppingErr
	}
	return f.shopping, nil
}

func (f *fakeSearch) SearchWeb(_ context.Context, query string) (*domain.SerperSearchResponse, error) {
	f.webQueries = append(f.webQueries, query)
	if f.webErr != nil {
		return nil, f.webErr
	}
	return f.web, nil
}

// fakeAgent records queries and replies with fixed content.
type fakeAgent struct {
	name    string
	content domain.Content
	err     error
	queries []string
}

func (f *fakeAgent) Name() string { return f.name }

func (f *fakeAgent) Run(_ context.Context, query string) (domain.Content, error) {
	f.queries = append(f.queries, query)
	if f.err != nil {
		return domain.Content{}, f.err
	}
	return f.content, nil
}
