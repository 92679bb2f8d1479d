package wikipedia

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/erikbryant/sp500/cache"
	"github.com/erikbryant/sp500/csv"
	"github.com/erikbryant/sp500/date"
	"github.com/erikbryant/web"
	"golang.org/x/net/html"
)

// Table is an HTML table reduced to text: one header row and the data rows under it.
type Table struct {
	Header []string
	Rows   [][]string
}

// Column returns the cells of the column whose header matches name (ignoring case).
func (t Table) Column(name string) ([]string, error) {
	col := -1
	for i, h := range t.Header {
		if strings.EqualFold(h, name) {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("no %q column in %v", name, t.Header)
	}

	var cells []string
	for _, row := range t.Rows {
		if col < len(row) {
			cells = append(cells, row[col])
		}
	}

	return cells, nil
}

// Tickers returns the symbol column of a constituents table.
func (t Table) Tickers() ([]string, error) {
	tickers, err := t.Column("symbol")
	if err != nil {
		tickers, err = t.Column("ticker")
	}
	if err != nil {
		return nil, err
	}
	if len(tickers) == 0 {
		return nil, fmt.Errorf("constituents table has no rows")
	}

	return tickers, nil
}

// attr returns the value of an element's attribute, or "".
func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// text returns the visible text under n with whitespace collapsed. Footnote markers are skipped.
func text(n *html.Node) string {
	var b strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteString(" ")
			return
		}
		if n.Type == html.ElementNode && (n.Data == "sup" || n.Data == "style" || n.Data == "script") {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)

	return strings.Join(strings.Fields(b.String()), " ")
}

// findTable returns the table with the given id, else the first "wikitable".
func findTable(doc *html.Node, id string) *html.Node {
	var byID, byClass *html.Node

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if byID != nil {
			return
		}
		if n.Type == html.ElementNode && n.Data == "table" {
			if id != "" && attr(n, "id") == id {
				byID = n
				return
			}
			if byClass == nil {
				for _, class := range strings.Fields(attr(n, "class")) {
					if class == "wikitable" {
						byClass = n
					}
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if byID != nil {
		return byID
	}
	return byClass
}

// rows returns the tr elements belonging to table, not to any table nested inside it.
func rows(table *html.Node) []*html.Node {
	var trs []*html.Node

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode || c.Data == "table" {
				continue
			}
			if c.Data == "tr" {
				trs = append(trs, c)
				continue
			}
			walk(c)
		}
	}
	walk(table)

	return trs
}

// cells returns the text of each th/td directly under tr, and whether any was a th.
func cells(tr *html.Node) ([]string, bool) {
	var texts []string
	header := false

	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "th":
			header = true
		case "td":
		default:
			continue
		}
		texts = append(texts, text(c))
	}

	return texts, header
}

// Parse extracts the constituents table from the index's Wikipedia page.
func Parse(r io.Reader) (Table, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return Table{}, fmt.Errorf("unable to parse constituents page %w", err)
	}

	table := findTable(doc, "constituents")
	if table == nil {
		return Table{}, fmt.Errorf("no constituents table found")
	}

	var t Table
	for _, tr := range rows(table) {
		texts, header := cells(tr)
		if len(texts) == 0 {
			continue
		}
		if t.Header == nil && header {
			t.Header = texts
			continue
		}
		t.Rows = append(t.Rows, texts)
	}

	if t.Header == nil {
		return Table{}, fmt.Errorf("constituents table has no header row")
	}

	return t, nil
}

// Fetch downloads and parses the constituents page at url.
func Fetch(url string) (Table, error) {
	headers := map[string]string{}

	resp, err := web.Request2(url, headers)
	if err != nil {
		return Table{}, fmt.Errorf("unable to fetch constituents %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return Table{}, fmt.Errorf("got an unexpected StatusCode %d fetching %s", resp.StatusCode, url)
	}

	return Parse(resp.Body)
}

// Constituents returns today's constituents table, from cacheDir if it was already
// fetched today, otherwise from url. An empty cacheDir disables the cache.
func Constituents(url, cacheDir string) (Table, error) {
	id := date.Today().Format("20060102") + url

	var t Table
	if cacheDir != "" && cache.Read(cacheDir, id, &t) == nil {
		return t, nil
	}

	t, err := Fetch(url)
	if err != nil {
		return Table{}, err
	}

	// Only cache a table that has symbols in it.
	if _, err := t.Tickers(); cacheDir != "" && err == nil {
		err = cache.Update(cacheDir, id, t)
		if err != nil {
			return Table{}, err
		}
	}

	return t, nil
}

// WriteConstituents saves t to file with lower-cased headers and a trailing date column.
// Every record is padded to the widest row; extra cells get an unnamed column.
func WriteConstituents(file string, t Table, d time.Time) error {
	width := len(t.Header)
	for _, row := range t.Rows {
		width = max(width, len(row))
	}

	header := make([]string, width, width+1)
	for i, h := range t.Header {
		header[i] = strings.ToLower(h)
	}
	header = append(header, "date")

	stamp := date.Format(d)

	rows := make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		r := make([]string, width, width+1)
		copy(r, row)
		rows = append(rows, append(r, stamp))
	}

	return csv.WriteTable(file, header, rows)
}
