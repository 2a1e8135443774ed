package sources

const (
	cnnFeedURL        = "http://rss.cnn.com/rss/{topic}.rss"
	cnnMorningBuzzURL = "http://rss.cnn.com/cnnmoneymorningbuzz"
)

// NewCNNFinance builds the CNN Finance provider.
func NewCNNFinance(fetcher Fetcher, parser Parser) *Source {
	topics := topicURLs(cnnFeedURL,
		"money_latest",
		"money_news_companies",
		"money_news_economy",
		"money_news_international",
		"money_news_investing",
		"money_markets",
		"money_media",
		"money_pf",
		"money_real_estate",
		"money_technology",
	)
	topics["morning_buzz"] = cnnMorningBuzzURL
	return NewOpen("cnnfinance", "CNN Finance", cnnFeedURL, topics, fetcher, parser)
}
