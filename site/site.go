// Package site is a small in-memory stand-in for the probed web site. It
// serves the JSON lists the load generator enumerates and a plain page for
// every path it may request.
package site

import (
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
)

type Catalog struct {
	Tags       []string
	Categories []string
	Authors    []string

	// Items maps an author name to the ids of their items.
	Items map[string][]int
}

type named struct {
	Name string `json:"name"`
}

type identified struct {
	ID int `json:"id"`
}

func DemoCatalog() *Catalog {
	return &Catalog{
		Tags:       []string{"politik", "wirtschaft", "open data", "go"},
		Categories: []string{"Inland", "Ausland", "Netzwelt"},
		Authors:    []string{"anna", "ben schmidt"},
		Items: map[string][]int{
			"anna":        {1, 2, 3},
			"ben schmidt": {4, 5},
		},
	}
}

func (c *Catalog) hasItem(id int) bool {
	for _, ids := range c.Items {
		if slices.Contains(ids, id) {
			return true
		}
	}
	return false
}

// Options tune the behaviour of the stub.
type Options struct {
	// ResponseDelay is applied to every page response.
	ResponseDelay time.Duration

	// HealthFailure makes /health answer with 500.
	HealthFailure bool
}

func NewHandler(c *Catalog, opts Options) http.Handler {
	h := new(http.ServeMux)

	h.HandleFunc("GET /health", func(rw http.ResponseWriter, r *http.Request) {
		rw.Header().Set("content-type", "text/plain")
		if opts.HealthFailure {
			rw.WriteHeader(http.StatusInternalServerError)
			_, _ = rw.Write([]byte("FAILURE"))
		} else {
			rw.WriteHeader(http.StatusOK)
			_, _ = rw.Write([]byte("OK"))
		}
	})

	h.HandleFunc("GET /json/tags", func(rw http.ResponseWriter, r *http.Request) {
		writeJSON(rw, names(c.Tags))
	})
	h.HandleFunc("GET /json/categories", func(rw http.ResponseWriter, r *http.Request) {
		writeJSON(rw, names(c.Categories))
	})
	h.HandleFunc("GET /json/authors", func(rw http.ResponseWriter, r *http.Request) {
		writeJSON(rw, names(c.Authors))
	})
	h.HandleFunc("GET /json/items/{author}", func(rw http.ResponseWriter, r *http.Request) {
		ids, ok := c.Items[r.PathValue("author")]
		if !ok {
			http.NotFound(rw, r)
			return
		}
		items := make([]identified, 0, len(ids))
		for _, id := range ids {
			items = append(items, identified{ID: id})
		}
		writeJSON(rw, items)
	})

	page := func(pattern, title string) {
		h.HandleFunc("GET "+pattern, func(rw http.ResponseWriter, r *http.Request) {
			writePage(rw, opts.ResponseDelay, title)
		})
	}
	page("/{$}", "Start")
	page("/aktuell", "Aktuell")
	page("/top", "Top")
	page("/alle", "Alle")

	h.HandleFunc("GET /tag/{tag}", func(rw http.ResponseWriter, r *http.Request) {
		tag := r.PathValue("tag")
		if !slices.Contains(c.Tags, tag) {
			http.NotFound(rw, r)
			return
		}
		writePage(rw, opts.ResponseDelay, "Tag "+tag)
	})
	h.HandleFunc("GET /category/{category}", func(rw http.ResponseWriter, r *http.Request) {
		category := r.PathValue("category")
		if !slices.Contains(c.Categories, category) {
			http.NotFound(rw, r)
			return
		}
		writePage(rw, opts.ResponseDelay, "Category "+category)
	})
	h.HandleFunc("GET /item/{id}", func(rw http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(r.PathValue("id"))
		if err != nil || !c.hasItem(id) {
			http.NotFound(rw, r)
			return
		}
		writePage(rw, opts.ResponseDelay, fmt.Sprintf("Item %d", id))
	})

	return h
}

func names(values []string) []named {
	out := make([]named, 0, len(values))
	for _, v := range values {
		out = append(out, named{Name: v})
	}
	return out
}

func writeJSON(rw http.ResponseWriter, v any) {
	rw.Header().Set("content-type", "application/json")
	rw.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(rw).Encode(v); err != nil {
		log.Error("encoding response", "err", err)
	}
}

func writePage(rw http.ResponseWriter, delay time.Duration, title string) {
	if delay > 0 {
		time.Sleep(delay)
	}
	rw.Header().Set("content-type", "text/html; charset=utf-8")
	rw.WriteHeader(http.StatusOK)
	title = html.EscapeString(title)
	_, _ = fmt.Fprintf(rw, "<!doctype html><title>%s</title><h1>%s</h1>\n", title, title)
}
