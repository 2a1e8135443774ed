package sources

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/codingthings-com/finfeed/app/feed"
)

// TopicPlaceholder marks where the topic slug is substituted in URL
// templates.
const TopicPlaceholder = "{topic}"

// Fetcher retrieves a raw feed document over HTTP.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

var _ Fetcher = (*feed.Fetcher)(nil)

// Parser converts a raw feed document into articles.
type Parser interface {
	Parse(data []byte, source string) ([]feed.Article, error)
}

var _ Parser = (*feed.Parser)(nil)

type UnknownTopicError struct {
	Source string
	Topic  string
	Known  []string
}

func (e *UnknownTopicError) Error() string {
	return fmt.Sprintf("source '%s' has no topic '%s'", e.Source, e.Topic)
}

type UnknownSourceError struct {
	Slug string
}

func (e *UnknownSourceError) Error() string {
	return fmt.Sprintf("source with slug '%s' not found", e.Slug)
}

// Source is a single news provider: a table mapping topic slugs to feed
// URLs, optionally backed by a URL pattern for topics missing from the
// table. Table-only sources reject unknown topics without touching the
// network.
type Source struct {
	slug    string
	name    string
	topics  map[string]string
	pattern string
	fetcher Fetcher
	parser  Parser
}

// New builds a table-only source. Topics missing from the table resolve
// to an UnknownTopicError.
func New(slug, name string, topics map[string]string, fetcher Fetcher, parser Parser) *Source {
	return &Source{
		slug:    slug,
		name:    name,
		topics:  topics,
		fetcher: fetcher,
		parser:  parser,
	}
}

// NewOpen builds a source that falls back to a URL pattern for topics
// missing from its table. The pattern must contain TopicPlaceholder.
func NewOpen(slug, name, pattern string, topics map[string]string, fetcher Fetcher, parser Parser) *Source {
	source := New(slug, name, topics, fetcher, parser)
	source.pattern = pattern
	return source
}

func (s *Source) Slug() string {
	return s.slug
}

func (s *Source) Name() string {
	return s.name
}

// Topics returns the known topic slugs in sorted order. Open sources
// accept topics beyond this list.
func (s *Source) Topics() []string {
	topics := make([]string, 0, len(s.topics))
	for topic := range s.topics {
		topics = append(topics, topic)
	}
	sort.Strings(topics)
	return topics
}

// Open reports whether the source accepts topics beyond its table.
func (s *Source) Open() bool {
	return s.pattern != ""
}

// ResolveTopic maps a topic slug to its feed URL. The table is consulted
// first; open sources then substitute the topic into their pattern.
func (s *Source) ResolveTopic(topic string) (string, error) {
	if url, ok := s.topics[topic]; ok {
		return url, nil
	}
	if s.pattern != "" {
		return strings.ReplaceAll(s.pattern, TopicPlaceholder, topic), nil
	}
	return "", &UnknownTopicError{Source: s.slug, Topic: topic, Known: s.Topics()}
}

// FetchTopic resolves a topic, then downloads and parses its feed. An
// unknown topic fails before any network request is made.
func (s *Source) FetchTopic(ctx context.Context, topic string) ([]feed.Article, error) {
	url, err := s.ResolveTopic(topic)
	if err != nil {
		return nil, err
	}
	return s.FetchURL(ctx, url)
}

// FetchURL downloads and parses an arbitrary feed URL. Every article
// comes back stamped with the source's display name.
func (s *Source) FetchURL(ctx context.Context, url string) ([]feed.Article, error) {
	data, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	articles, err := s.parser.Parse(data, s.name)
	if err != nil {
		return nil, err
	}

	slog.Debug("Feed parsed", "source", s.slug, "url", url, "articles", len(articles))
	return articles, nil
}

// TopicResult pairs a topic with its fetch outcome.
type TopicResult struct {
	Topic    string
	Articles []feed.Article
	Err      error
}

// FetchTopics downloads several topics concurrently. Results come back in
// the order the topics were given, each carrying its own error.
func (s *Source) FetchTopics(ctx context.Context, topics ...string) []TopicResult {
	results := make([]TopicResult, len(topics))

	var wg sync.WaitGroup
	for i, topic := range topics {
		wg.Add(1)
		go func(i int, topic string) {
			defer wg.Done()
			articles, err := s.FetchTopic(ctx, topic)
			results[i] = TopicResult{Topic: topic, Articles: articles, Err: err}
		}(i, topic)
	}
	wg.Wait()

	return results
}
