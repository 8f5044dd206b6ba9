// Command sitemap writes sitemap.xml and robots.txt for the public site.
// It is meant to run at frontend build time: when the database cannot be
// reached it still emits the static routes and exits 0, so a backend outage
// never breaks a deploy.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"empleos-backend/internal/config"
	dbpostgres "empleos-backend/internal/database/postgres"
	"empleos-backend/internal/domain/posting"
	"empleos-backend/internal/repository"
	"empleos-backend/internal/sitemap"
)

func main() {
	outDir := flag.String("out", ".", "directory to write sitemap.xml and robots.txt into")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	postings := fetchActivePostings(cfg)

	out, err := sitemap.Generate(cfg.Site.BaseURL, postings)
	if err != nil {
		log.Fatalf("failed to generate sitemap: %v", err)
	}

	if err := os.WriteFile(filepath.Join(*outDir, "sitemap.xml"), out, 0o644); err != nil {
		log.Fatalf("failed to write sitemap.xml: %v", err)
	}
	if err := os.WriteFile(filepath.Join(*outDir, "robots.txt"), sitemap.Robots(cfg.Site.BaseURL), 0o644); err != nil {
		log.Fatalf("failed to write robots.txt: %v", err)
	}

	log.Printf("Sitemap | wrote sitemap.xml and robots.txt urls=%d dir=%s", len(sitemap.StaticRoutes)+len(postings), *outDir)
}

func fetchActivePostings(cfg config.Config) []posting.Posting {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Printf("Sitemap | database unreachable, emitting static routes only: %v", err)
		return nil
	}
	defer db.Close()

	items, err := repository.NewPostgresPostingRepository(db).ListActive(ctx)
	if err != nil {
		log.Printf("Sitemap | listing failed, emitting static routes only: %v", err)
		return nil
	}
	return items
}
