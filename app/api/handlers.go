package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/codingthings-com/finfeed/app/cfg"
	"github.com/codingthings-com/finfeed/app/feed"
	"github.com/codingthings-com/finfeed/app/sources"
)

func NewHandler(registry *sources.Registry, fetcher FetcherInterface,
	extractor ExtractorInterface, writer WriterInterface) *Handler {
	return &Handler{
		registry:  registry,
		fetcher:   fetcher,
		extractor: extractor,
		writer:    writer,
	}
}

func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
		"version":   cfg.GetVersion(),
		"sources":   h.registry.Count(),
	})
}

func (h *Handler) ListSources(c *gin.Context) {
	list := h.registry.Sources()

	infos := make([]gin.H, 0, len(list))
	for _, source := range list {
		infos = append(infos, gin.H{
			"slug":   source.Slug(),
			"name":   source.Name(),
			"topics": len(source.Topics()),
			"open":   source.Open(),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"sources": infos,
		"total":   len(infos),
	})
}

func (h *Handler) GetTopics(c *gin.Context) {
	slug := c.Param("source")

	source, err := h.registry.Get(slug)
	if err != nil {
		slog.Error("Source not found", "source", slug, "error", err)
		c.JSON(http.StatusNotFound, gin.H{"error": "Source not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"source": source.Slug(),
		"name":   source.Name(),
		"open":   source.Open(),
		"topics": source.Topics(),
	})
}

func (h *Handler) GetFeed(c *gin.Context) {
	slug := c.Param("source")
	topic := c.Param("topic")

	source, err := h.registry.Get(slug)
	if err != nil {
		slog.Error("Source not found", "source", slug, "error", err)
		c.JSON(http.StatusNotFound, gin.H{"error": "Source not found"})
		return
	}

	url, err := source.ResolveTopic(topic)
	if err != nil {
		h.renderFeedError(c, slug, topic, err)
		return
	}

	articles, err := source.FetchURL(c.Request.Context(), url)
	if err != nil {
		h.renderFeedError(c, slug, topic, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"source":   source.Name(),
		"topic":    topic,
		"url":      url,
		"count":    len(articles),
		"articles": articles,
	})
}

func (h *Handler) GetFeedByURL(c *gin.Context) {
	url := c.Query("url")
	if url == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing url parameter"})
		return
	}

	source, err := h.registry.Get("generic")
	if err != nil {
		slog.Error("Generic source not registered", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	articles, err := source.FetchURL(c.Request.Context(), url)
	if err != nil {
		h.renderFeedError(c, source.Slug(), url, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"source":   source.Name(),
		"url":      url,
		"count":    len(articles),
		"articles": articles,
	})
}

func (h *Handler) ExportFeed(c *gin.Context) {
	slug := c.Param("source")
	topic := c.Param("topic")

	source, err := h.registry.Get(slug)
	if err != nil {
		slog.Error("Source not found", "source", slug, "error", err)
		c.JSON(http.StatusNotFound, gin.H{"error": "Source not found"})
		return
	}

	url, err := source.ResolveTopic(topic)
	if err != nil {
		h.renderFeedError(c, slug, topic, err)
		return
	}

	articles, err := source.FetchURL(c.Request.Context(), url)
	if err != nil {
		h.renderFeedError(c, slug, topic, err)
		return
	}

	path, err := h.writer.Write(source.Slug()+"_"+topic, articles)
	if err != nil {
		slog.Error("Export failed", "source", slug, "topic", topic, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write export file"})
		return
	}

	slog.Info("Feed exported", "source", slug, "topic", topic, "path", path, "articles", len(articles))

	c.JSON(http.StatusOK, gin.H{
		"source": source.Slug(),
		"topic":  topic,
		"path":   path,
		"count":  len(articles),
	})
}

func (h *Handler) ExtractContent(c *gin.Context) {
	url := c.Query("url")
	if url == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing url parameter"})
		return
	}

	data, err := h.fetcher.Fetch(c.Request.Context(), url)
	if err != nil {
		var fetchErr *feed.FetchError
		status := http.StatusBadGateway
		if errors.As(err, &fetchErr) && fetchErr.Kind == feed.FailureTimeout {
			status = http.StatusGatewayTimeout
		}
		slog.Error("Page fetch failed", "url", url, "error", err)
		c.JSON(status, gin.H{"error": "Page could not be fetched"})
		return
	}

	content, err := h.extractor.Run(data, url)
	if err != nil {
		slog.Error("Content extraction failed", "url", url, "error", err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Content extraction failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url":     url,
		"content": content,
	})
}

// renderFeedError maps feed pipeline failures to HTTP statuses: unknown
// topics are the client's mistake, upstream fetch and parse failures are
// gateway errors.
func (h *Handler) renderFeedError(c *gin.Context, source, topic string, err error) {
	var topicErr *sources.UnknownTopicError
	var fetchErr *feed.FetchError
	var parseErr *feed.ParseError

	switch {
	case errors.As(err, &topicErr):
		slog.Error("Unknown topic", "source", source, "topic", topic)
		c.JSON(http.StatusNotFound, gin.H{
			"error":  "Unknown topic",
			"topics": topicErr.Known,
		})
	case errors.As(err, &fetchErr) && fetchErr.Kind == feed.FailureTimeout:
		slog.Error("Feed fetch timed out", "source", source, "topic", topic, "url", fetchErr.URL, "attempts", fetchErr.Attempts)
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "Upstream feed timed out"})
	case errors.As(err, &fetchErr):
		slog.Error("Feed fetch failed", "source", source, "topic", topic, "url", fetchErr.URL, "kind", fetchErr.Kind, "status", fetchErr.Status, "attempts", fetchErr.Attempts)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Upstream feed unavailable"})
	case errors.As(err, &parseErr):
		slog.Error("Feed parse failed", "source", source, "topic", topic, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Upstream feed could not be parsed"})
	default:
		slog.Error("Feed request failed", "source", source, "topic", topic, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
