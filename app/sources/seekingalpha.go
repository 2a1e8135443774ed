package sources

const seekingAlphaFeedURL = "https://seekingalpha.com/feed.xml?category={topic}"

// NewSeekingAlpha builds the Seeking Alpha provider. Beyond the listed
// topics the pattern accepts the parameterized families, for example
// "stocks-aapl", "sectors-energy" or "global-markets-china".
func NewSeekingAlpha(fetcher Fetcher, parser Parser) *Source {
	topics := topicURLs(seekingAlphaFeedURL,
		"latest-articles",
		"all-news",
		"market-news",
		"long-ideas",
		"short-ideas",
		"ipo-analysis",
		"transcripts",
		"wall-street-breakfast",
		"most-popular-articles",
		"forex",
		"editors-picks",
		"etfs",
	)
	return NewOpen("seekingalpha", "Seeking Alpha", seekingAlphaFeedURL, topics, fetcher, parser)
}
