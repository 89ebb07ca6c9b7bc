package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"portfolio_admin/internal/models"
	"portfolio_admin/internal/notifier"
	"portfolio_admin/internal/repository"
)

// fakeProjectRepo keeps projects in memory.
type fakeProjectRepo struct {
	mu       sync.Mutex
	items    map[string]models.Project
	err      error
	migrated int
	seq      int
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{items: map[string]models.Project{}}
}

func (f *fakeProjectRepo) List(context.Context) ([]models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.Project, 0, len(f.items))
	for _, p := range f.items {
		p.Images = append([]string(nil), p.Images...)
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeProjectRepo) Get(_ context.Context, id string) (models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.items[id]
	if !ok {
		return models.Project{}, repository.ErrNotFound
	}
	p.Images = append([]string(nil), p.Images...)
	return p, nil
}

func (f *fakeProjectRepo) Create(_ context.Context, p models.Project) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if p.ID == "" {
		f.seq++
		p.ID = fmt.Sprintf("p%d", f.seq)
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	p.Images = append([]string(nil), p.Images...)
	f.items[p.ID] = p
	return nil
}

func (f *fakeProjectRepo) Update(_ context.Context, p models.Project) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cur, ok := f.items[p.ID]
	if !ok {
		return repository.ErrNotFound
	}
	cur.Title, cur.Description, cur.Category = p.Title, p.Description, p.Category
	cur.Images = append([]string(nil), p.Images...)
	cur.UpdatedAt = p.UpdatedAt
	f.items[p.ID] = cur
	return nil
}

func (f *fakeProjectRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeProjectRepo) Count(context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.items), f.err
}

func (f *fakeProjectRepo) MigrateLegacyImages(context.Context) (int, error) {
	return f.migrated, f.err
}

// fakeMessageRepo keeps contact messages in memory.
type fakeMessageRepo struct {
	mu    sync.Mutex
	items map[string]models.ContactMessage
	order []string
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{items: map[string]models.ContactMessage{}}
}

func (f *fakeMessageRepo) Create(_ context.Context, m models.ContactMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[m.ID] = m
	f.order = append(f.order, m.ID)
	return nil
}

func (f *fakeMessageRepo) List(context.Context) ([]models.ContactMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.ContactMessage, 0, len(f.order))
	for i := len(f.order) - 1; i >= 0; i-- {
		out = append(out, f.items[f.order[i]])
	}
	return out, nil
}

func (f *fakeMessageRepo) Get(_ context.Context, id string) (models.ContactMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.items[id]
	if !ok {
		return models.ContactMessage{}, repository.ErrNotFound
	}
	return m, nil
}

func (f *fakeMessageRepo) UpdateStatus(_ context.Context, id string, status models.MessageStatus, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.items[id]
	if !ok {
		return repository.ErrNotFound
	}
	m.Status, m.UpdatedAt = status, at
	f.items[id] = m
	return nil
}

func (f *fakeMessageRepo) SaveResponse(_ context.Context, id, response string, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.items[id]
	if !ok {
		return repository.ErrNotFound
	}
	m.Status = models.StatusResponded
	m.Response = response
	m.RespondedAt = &at
	m.UpdatedAt = at
	f.items[id] = m
	return nil
}

func (f *fakeMessageRepo) CountByStatus(context.Context) (map[models.MessageStatus]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := map[models.MessageStatus]int{}
	for _, m := range f.items {
		out[m.Status]++
	}
	return out, nil
}

// fakeSender records sent messages and optionally fails.
type fakeSender struct {
	sent []notifier.Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, m notifier.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m)
	return nil
}
