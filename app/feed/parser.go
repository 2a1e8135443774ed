package feed

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/mmcdole/gofeed"
)

const snippetLen = 120

// Parser turns raw feed documents into Article records. Input may be in
// any encoding (see normalizeToUTF8); malformed documents yield a
// *ParseError and no articles.
type Parser struct {
	gofeedParser *gofeed.Parser
}

func NewParser() *Parser {
	return &Parser{
		gofeedParser: gofeed.NewParser(),
	}
}

// Parse extracts the articles of a feed document in document order,
// stamping each one with the given source name. A well-formed feed with no
// items returns an empty slice and no error.
func (p *Parser) Parse(data []byte, source string) ([]Article, error) {
	data = normalizeToUTF8(data)

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &ParseError{Source: source, Snippet: snippet(data), Err: errors.New("empty document")}
	}

	feed, err := p.gofeedParser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, &ParseError{Source: source, Snippet: snippet(data), Err: err}
	}

	articles := make([]Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		articles = append(articles, p.normalizeItem(item, source))
	}

	return articles, nil
}

func (p *Parser) normalizeItem(item *gofeed.Item, source string) Article {
	description := item.Description
	if description == "" {
		description = item.Content
	}
	published := item.Published
	if published == "" {
		published = item.Updated
	}
	guid := item.GUID
	if guid == "" {
		guid = item.Link
	}

	article := Article{
		Title:       item.Title,
		Link:        item.Link,
		Description: description,
		Published:   published,
		GUID:        guid,
		Author:      p.extractAuthor(item),
		Source:      source,
	}

	if item.Categories != nil {
		article.Categories = item.Categories
	}

	article.Extra = p.extractExtensions(item)

	return article
}

func (p *Parser) extractAuthor(item *gofeed.Item) string {
	if len(item.Authors) > 0 && item.Authors[0] != nil {
		return p.formatAuthor(item.Authors[0].Name, item.Authors[0].Email)
	}
	if item.Author != nil {
		return p.formatAuthor(item.Author.Name, item.Author.Email)
	}
	return ""
}

func (p *Parser) formatAuthor(name, email string) string {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name != "" && email != "" {
		return fmt.Sprintf("%s (%s)", email, name)
	} else if name != "" {
		return name
	}
	return email
}

// extractExtensions flattens namespaced elements the Article model has no
// field for (media:credit and the like) by bare element name. Dublin Core
// creator/date and content:encoded are already folded into Author,
// Published and Description and are skipped here.
func (p *Parser) extractExtensions(item *gofeed.Item) map[string]string {
	if len(item.Extensions) == 0 {
		return nil
	}

	handled := map[string]bool{
		"creator": true,
		"date":    true,
		"encoded": true,
	}

	prefixes := make([]string, 0, len(item.Extensions))
	for prefix := range item.Extensions {
		prefixes = append(prefixes, prefix)
	}
	sort.Strings(prefixes)

	extra := make(map[string]string)
	for _, prefix := range prefixes {
		elements := item.Extensions[prefix]

		names := make([]string, 0, len(elements))
		for name := range elements {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			if handled[name] {
				continue
			}
			exts := elements[name]
			if len(exts) == 0 || exts[0].Value == "" {
				continue
			}
			if _, ok := extra[name]; !ok {
				extra[name] = exts[0].Value
			}
		}
	}

	if len(extra) == 0 {
		return nil
	}
	return extra
}

func snippet(data []byte) string {
	s := strings.TrimSpace(string(data))
	if len(s) > snippetLen {
		s = s[:snippetLen]
	}
	return s
}
