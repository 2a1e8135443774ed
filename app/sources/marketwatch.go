package sources

const marketWatchFeedURL = "http://feeds.marketwatch.com/marketwatch/{topic}/"

// NewMarketWatch builds the MarketWatch provider. The published channel
// names are irregular, so only topics from the table can be resolved.
func NewMarketWatch(fetcher Fetcher, parser Parser) *Source {
	topics := topicTable(marketWatchFeedURL,
		"top_stories", "topstories",
		"real_time_headlines", "realtimeheadlines",
		"market_pulse", "marketpulse",
		"bulletins", "bulletins",
		"personal_finance", "pf",
		"stocks_to_watch", "StockstoWatch",
		"internet_stories", "Internet",
		"mutual_funds", "mutualfunds",
		"software_stories", "software",
		"banking_and_finance", "financial",
		"commentary", "commentary",
		"newsletter_and_research", "newslettersandresearch",
		"auto_reviews", "autoreviews",
	)
	return New("marketwatch", "MarketWatch", topics, fetcher, parser)
}
