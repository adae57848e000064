package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/dhiraj-pandit/portfolio-api/internal/core/domain"
	"github.com/dhiraj-pandit/portfolio-api/internal/core/ports"
)

type stubProjectRepo struct {
	projects  []domain.Project
	nextID    int
	listCalls int
}

func (r *stubProjectRepo) List(context.Context) ([]domain.Project, error) {
	r.listCalls++
	out := make([]domain.Project, len(r.projects))
	copy(out, r.projects)
	return out, nil
}

func (r *stubProjectRepo) FindByID(_ context.Context, id string) (*domain.Project, error) {
	for _, p := range r.projects {
		if p.ID == id {
			out := p
			return &out, nil
		}
	}
	return nil, domain.ErrProjectNotFound
}

func (r *stubProjectRepo) Create(_ context.Context, p *domain.Project) (*domain.Project, error) {
	r.nextID++
	copy := *p
	copy.ID = fmt.Sprintf("proj-%d", r.nextID)
	r.projects = append(r.projects, copy)
	out := copy
	return &out, nil
}

func (r *stubProjectRepo) Update(_ context.Context, id string, p *domain.Project) (*domain.Project, error) {
	for i := range r.projects {
		if r.projects[i].ID == id {
			updated := *p
			updated.ID = id
			r.projects[i] = updated
			out := updated
			return &out, nil
		}
	}
	return nil, domain.ErrProjectNotFound
}

func (r *stubProjectRepo) Delete(_ context.Context, id string) error {
	for i := range r.projects {
		if r.projects[i].ID == id {
			r.projects = append(r.projects[:i], r.projects[i+1:]...)
			return nil
		}
	}
	return domain.ErrProjectNotFound
}

func (r *stubProjectRepo) Count(context.Context) (int64, error) {
	return int64(len(r.projects)), nil
}

// memCache is an in-process ports.ContentCache with optional fault injection.
type memCache struct {
	entries map[string][]byte
	getErr  error
	setErr  error
}

func newMemCache() *memCache {
	return &memCache{entries: make(map[string][]byte)}
}

func (c *memCache) Get(_ context.Context, key string, dest any) (bool, error) {
	if c.getErr != nil {
		return false, c.getErr
	}
	raw, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *memCache) Set(_ context.Context, key string, value any) error {
	if c.setErr != nil {
		return c.setErr
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = raw
	return nil
}

func (c *memCache) Invalidate(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.entries, k)
	}
	return nil
}

func TestProjectService_List_PopulatesAndServesCache(t *testing.T) {
	repo := &stubProjectRepo{}
	cache := newMemCache()
	svc := NewProjectService(repo, cache, zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.ProjectInput{Title: "one", Description: "d", Technologies: []string{"go"}}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	first, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("expected 1 project, got %d", len(first))
	}
	if repo.listCalls != 1 {
		t.Fatalf("expected one repository read, got %d", repo.listCalls)
	}
	if _, ok := cache.entries[CacheKeyProjects]; !ok {
		t.Fatalf("listing not written to cache")
	}

	second, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("cached List returned error: %v", err)
	}
	if len(second) != 1 {
		t.Fatalf("expected 1 project from cache, got %d", len(second))
	}
	if repo.listCalls != 1 {
		t.Fatalf("cache hit must not reach the repository, got %d reads", repo.listCalls)
	}
}

func TestProjectService_MutationsInvalidateCache(t *testing.T) {
	repo := &stubProjectRepo{}
	cache := newMemCache()
	svc := NewProjectService(repo, cache, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.ProjectInput{Title: "one", Description: "d"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.List(context.Background()); err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	if _, err := svc.Update(context.Background(), created.ID, ports.ProjectInput{Title: "renamed", Description: "d"}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if _, ok := cache.entries[CacheKeyProjects]; ok {
		t.Fatalf("update left stale cache entry")
	}

	listed, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List after update returned error: %v", err)
	}
	if listed[0].Title != "renamed" {
		t.Fatalf("stale listing after update: %+v", listed[0])
	}

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, ok := cache.entries[CacheKeyProjects]; ok {
		t.Fatalf("delete left stale cache entry")
	}
}

// A broken cache must degrade to the repository, never fail the request.
func TestProjectService_List_CacheFailureFallsBack(t *testing.T) {
	repo := &stubProjectRepo{}
	cache := newMemCache()
	cache.getErr = errors.New("redis down")
	cache.setErr = errors.New("redis down")
	svc := NewProjectService(repo, cache, zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.ProjectInput{Title: "one", Description: "d"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	listed, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List must fall back to the repository, got %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected 1 project, got %d", len(listed))
	}
}

func TestProjectService_Get_NotFound(t *testing.T) {
	svc := NewProjectService(&stubProjectRepo{}, newMemCache(), zerolog.Nop())

	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}
