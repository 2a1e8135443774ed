package sources

import "strings"

const yahooFeedURL = "https://finance.yahoo.com/news/rssindex"

// NewYahooFinance builds the Yahoo Finance provider.
func NewYahooFinance(fetcher Fetcher, parser Parser) *Source {
	topics := map[string]string{
		"headlines":  yahooFeedURL + "/headlines",
		"topstories": yahooFeedURL + "/topstories",
	}
	return NewOpen("yahoo", "Yahoo Finance", yahooFeedURL+"/"+TopicPlaceholder, topics, fetcher, parser)
}

// YahooSymbolURL returns the headline feed URL for one or more ticker
// symbols. Symbol feeds take a query parameter instead of a topic, so
// they cannot be expressed through the topic table.
func YahooSymbolURL(symbols ...string) string {
	return yahooFeedURL + "/headline?s=" + strings.Join(symbols, ",")
}
