package sources

const wsjFeedURL = "https://feeds.a.dj.com/rss/{topic}.xml"

// NewWSJ builds the Wall Street Journal provider. The table carries
// friendly names for the common feeds; any other Dow Jones feed slug,
// for example "RSSOpinion", works as a topic directly.
func NewWSJ(fetcher Fetcher, parser Parser) *Source {
	topics := topicTable(wsjFeedURL,
		"opinions", "RSSOpinion",
		"world_news", "RSSWorldNews",
		"us_business_news", "WSJcomUSBusiness",
		"market_news", "RSSMarketsMain",
		"technology_news", "RSSWSJD",
		"lifestyle", "RSSLifestyle",
	)
	return NewOpen("wsj", "Wall Street Journal", wsjFeedURL, topics, fetcher, parser)
}
