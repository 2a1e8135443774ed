package sources

// NewGeneric builds the catch-all provider for fetching arbitrary feed
// URLs. It has no topic table; the topic is the URL itself.
func NewGeneric(fetcher Fetcher, parser Parser) *Source {
	return NewOpen("generic", "Generic", TopicPlaceholder, nil, fetcher, parser)
}
