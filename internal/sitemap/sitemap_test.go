package sitemap

import (
	"strings"
	"testing"
	"time"

	"empleos-backend/internal/domain/posting"

	"github.com/google/uuid"
)

func TestGenerate_WithPostings(t *testing.T) {
	id := uuid.New()
	body, err := Generate("https://agencia.example", []posting.Posting{
		{ID: id, Title: "Analista Contable", Active: true, PublishedAt: time.Unix(1700000000, 0)},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	s := string(body)
	if !strings.Contains(s, "<loc>https://agencia.example/empleos</loc>") {
		t.Fatalf("missing static route in:\n%s", s)
	}
	if !strings.Contains(s, "<loc>https://agencia.example/empleos/"+id.String()+"</loc>") {
		t.Fatalf("missing posting entry in:\n%s", s)
	}
	if !strings.Contains(s, "<lastmod>") {
		t.Fatalf("missing lastmod in:\n%s", s)
	}
}

func TestGenerate_NilPostingsStillValid(t *testing.T) {
	// The catalog reader may have failed; the sitemap degrades to static
	// routes instead of failing the build.
	body, err := Generate("https://agencia.example", nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	s := string(body)
	for _, route := range StaticRoutes {
		if !strings.Contains(s, "<loc>https://agencia.example"+route+"</loc>") {
			t.Fatalf("missing static route %q in:\n%s", route, s)
		}
	}
	if strings.Count(s, "<url>") != len(StaticRoutes) {
		t.Fatalf("expected only static entries in:\n%s", s)
	}
}

func TestRobots(t *testing.T) {
	s := string(Robots("https://agencia.example"))
	for _, disallowed := range []string{"/admin/", "/api/", "/private/"} {
		if !strings.Contains(s, "Disallow: "+disallowed) {
			t.Fatalf("missing disallow for %q in:\n%s", disallowed, s)
		}
	}
	if !strings.Contains(s, "Sitemap: https://agencia.example/sitemap.xml") {
		t.Fatalf("missing sitemap link in:\n%s", s)
	}
}
