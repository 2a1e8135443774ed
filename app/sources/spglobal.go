package sources

const spGlobalFeedURL = "https://www.spglobal.com/spdji/en/rss/rss-details/?rssFeedName={topic}"

// NewSPGlobal builds the S&P Dow Jones Indices provider. The
// "all-indicies" spelling matches the published feed name.
func NewSPGlobal(fetcher Fetcher, parser Parser) *Source {
	topics := topicURLs(spGlobalFeedURL,
		"methodologies",
		"all-indicies",
		"research",
		"market-commentary",
		"education",
		"performance-reports",
		"spiva",
		"index-tv",
		"corporate-news",
		"index-launches",
		"index-announcements",
		"new-consultations",
	)
	return NewOpen("spglobal", "S&P Global", spGlobalFeedURL, topics, fetcher, parser)
}
