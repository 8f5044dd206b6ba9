package sitemap

import (
	"encoding/xml"
	"time"

	"empleos-backend/internal/domain/posting"
)

// StaticRoutes are always present regardless of catalog state.
var StaticRoutes = []string{"/", "/empleos", "/cargar-cv", "/contacto"}

type urlEntry struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	XMLNS   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

// Generate renders the sitemap for the static routes plus one entry per
// posting. Callers that cannot fetch the catalog pass nil and still get a
// valid document.
func Generate(baseURL string, postings []posting.Posting) ([]byte, error) {
	set := urlSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}

	for _, route := range StaticRoutes {
		set.URLs = append(set.URLs, urlEntry{Loc: baseURL + route})
	}
	for _, p := range postings {
		e := urlEntry{Loc: baseURL + "/empleos/" + p.ID.String()}
		if !p.PublishedAt.IsZero() {
			e.LastMod = p.PublishedAt.UTC().Format(time.RFC3339)
		}
		set.URLs = append(set.URLs, e)
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), append(body, '\n')...), nil
}

// Robots keeps crawlers out of the back office and the API.
func Robots(baseURL string) []byte {
	return []byte("User-agent: *\n" +
		"Allow: /\n" +
		"Disallow: /admin/\n" +
		"Disallow: /api/\n" +
		"Disallow: /private/\n" +
		"\n" +
		"Sitemap: " + baseURL + "/sitemap.xml\n")
}
