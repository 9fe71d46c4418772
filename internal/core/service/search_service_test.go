package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestSearchService_EmptyTermReturnsEmptyBuckets(t *testing.T) {
	svc := NewSearchService(newStubBlogRepo(), newStubProjectRepo(), zerolog.Nop())

	results, err := svc.Everything(context.Background(), "   ")
	if err != nil {
		t.Fatalf("Everything returned error: %v", err)
	}
	if results.Blog == nil || results.Portfolio == nil || results.Projects == nil {
		t.Fatalf("expected non-nil empty buckets, got %+v", results)
	}
	if len(results.Blog)+len(results.Portfolio)+len(results.Projects) != 0 {
		t.Fatalf("expected all buckets empty, got %+v", results)
	}
}

func TestSearchService_ProjectAppearsInBothBuckets(t *testing.T) {
	blogRepo := newStubBlogRepo()
	projectRepo := newStubProjectRepo()
	svc := NewSearchService(blogRepo, projectRepo, zerolog.Nop())

	seedProject(t, projectRepo, "billing-platform", "client_1", true)

	results, err := svc.Everything(context.Background(), "billing")
	if err != nil {
		t.Fatalf("Everything returned error: %v", err)
	}
	if len(results.Portfolio) != 1 || len(results.Projects) != 1 {
		t.Fatalf("expected the project in both buckets, got portfolio=%d projects=%d",
			len(results.Portfolio), len(results.Projects))
	}
	if results.Portfolio[0].ID != results.Projects[0].ID {
		t.Fatalf("both buckets should carry the same record")
	}
}

func TestSearchService_MatchesBlogAndTechEntries(t *testing.T) {
	blogRepo := newStubBlogRepo()
	projectRepo := newStubProjectRepo()
	svc := NewSearchService(blogRepo, projectRepo, zerolog.Nop())

	seedPost(t, blogRepo, "Why we chose Postgres", "postgres", "long form content", true, time.Now().UTC())
	p := seedProject(t, projectRepo, "api-rewrite", "", false)
	p2, err := projectRepo.FindByID(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("find seeded project: %v", err)
	}
	p2.Tech = []string{"Go", "PostgreSQL"}
	projectRepo.projects[p2.ID] = p2

	results, err := svc.Everything(context.Background(), "postgres")
	if err != nil {
		t.Fatalf("Everything returned error: %v", err)
	}
	if len(results.Blog) != 1 {
		t.Fatalf("expected blog title match, got %d", len(results.Blog))
	}
	if len(results.Projects) != 1 {
		t.Fatalf("expected tech-entry match, got %d", len(results.Projects))
	}
}

func TestSearchService_UnpublishedPostsExcluded(t *testing.T) {
	blogRepo := newStubBlogRepo()
	svc := NewSearchService(blogRepo, newStubProjectRepo(), zerolog.Nop())

	seedPost(t, blogRepo, "Hidden draft about caching", "draft", "", false, time.Now().UTC())

	results, err := svc.Everything(context.Background(), "caching")
	if err != nil {
		t.Fatalf("Everything returned error: %v", err)
	}
	if len(results.Blog) != 0 {
		t.Fatalf("drafts must not surface in search, got %d", len(results.Blog))
	}
}
