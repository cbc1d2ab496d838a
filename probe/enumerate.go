package probe

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Enumerator reads the JSON lists of the target site.
type Enumerator struct {
	Client  *resty.Client
	BaseURL string

	// Out receives one "Reading '<url>'" line per fetch. Defaults to
	// os.Stdout.
	Out io.Writer
}

// FetchList reads the JSON array at subpath and applies extract to each of
// its elements.
func (e *Enumerator) FetchList(ctx context.Context, subpath string, extract Extractor) ([]string, error) {
	u := strings.TrimRight(e.BaseURL, "/") + EscapePath(subpath)
	out := e.Out
	if out == nil {
		out = os.Stdout
	}
	fmt.Fprintf(out, "Reading '%s'\n", u)

	resp, err := e.Client.R().SetContext(ctx).Get(u)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", u, err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("reading %s: %w", u, newStatusError(resp))
	}

	records, err := decodeRecords(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", u, err)
	}

	values := make([]string, 0, len(records))
	for i, r := range records {
		v, err := extract(r)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: element %d: %w", u, i, err)
		}
		values = append(values, v)
	}
	return values, nil
}

// Enumerate fetches tags, categories and authors, then the items of every
// author in turn.
func (e *Enumerator) Enumerate(ctx context.Context) (*Catalog, error) {
	var (
		c   Catalog
		err error
	)
	if c.Tags, err = e.FetchList(ctx, "/json/tags", Name); err != nil {
		return nil, err
	}
	if c.Categories, err = e.FetchList(ctx, "/json/categories", Name); err != nil {
		return nil, err
	}
	if c.Authors, err = e.FetchList(ctx, "/json/authors", Name); err != nil {
		return nil, err
	}

	for _, author := range c.Authors {
		ids, err := e.FetchList(ctx, "/json/items/"+author, ID)
		if err != nil {
			return nil, err
		}
		c.Items = append(c.Items, ids...)
	}
	return &c, nil
}
