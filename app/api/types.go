package api

import (
	"context"

	"github.com/codingthings-com/finfeed/app/export"
	"github.com/codingthings-com/finfeed/app/feed"
	"github.com/codingthings-com/finfeed/app/sources"
)

type FetcherInterface interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

var _ FetcherInterface = (*feed.Fetcher)(nil)

type ExtractorInterface interface {
	Run(data []byte, pageURL string) (string, error)
}

var _ ExtractorInterface = (*feed.ContentExtractor)(nil)

type WriterInterface interface {
	Write(name string, articles []feed.Article) (string, error)
}

var _ WriterInterface = (*export.Writer)(nil)

type Handler struct {
	registry  *sources.Registry
	fetcher   FetcherInterface
	extractor ExtractorInterface
	writer    WriterInterface
}
