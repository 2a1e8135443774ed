package sources

const (
	nasdaqFeedURL     = "https://www.nasdaq.com/feed/rssoutbound?category={topic}"
	nasdaqOriginalURL = "https://www.nasdaq.com/feed/nasdaq-original/rss.xml"
)

// NewNASDAQ builds the NASDAQ provider. The "original" topic maps to
// NASDAQ's own editorial feed, which lives at a dedicated URL.
func NewNASDAQ(fetcher Fetcher, parser Parser) *Source {
	topics := topicURLs(nasdaqFeedURL,
		"commodities",
		"cryptocurrency",
		"dividends",
		"earnings",
		"economics",
		"financial-advisors",
		"innovation",
		"stocks",
		"technology",
	)
	topics["original"] = nasdaqOriginalURL
	return NewOpen("nasdaq", "NASDAQ", nasdaqFeedURL, topics, fetcher, parser)
}
