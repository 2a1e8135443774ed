package sources

const cnbcFeedURL = "https://www.cnbc.com/id/{topic}/device/rss/rss.html"

// NewCNBC builds the CNBC provider. CNBC addresses its feeds by numeric
// IDs, so only topics from the table can be resolved.
func NewCNBC(fetcher Fetcher, parser Parser) *Source {
	topics := topicTable(cnbcFeedURL,
		"top_news", "100003114",
		"world_news", "100727362",
		"us_news", "15837362",
		"asia_news", "19832390",
		"europe_news", "19794221",
		"business", "10001147",
		"earnings", "15839135",
		"commentary", "100370673",
		"economy", "20910258",
		"finance", "10000664",
		"technology", "19854910",
		"politics", "10000113",
		"health_care", "10000108",
		"real_estate", "10000115",
		"wealth", "10001054",
		"autos", "10000101",
		"energy", "19836768",
		"media", "10000110",
		"retail", "10000116",
		"travel", "10000739",
		"small_business", "44877279",
		"investing", "15839069",
		"financial_advisors", "100646281",
		"personal_finance", "21324812",
	)
	return New("cnbc", "CNBC", topics, fetcher, parser)
}
