package sources

import "strings"

// Builtin returns a registry preloaded with every built-in news provider.
func Builtin(fetcher Fetcher, parser Parser) *Registry {
	registry := NewRegistry()
	registry.Add(NewCNBC(fetcher, parser))
	registry.Add(NewMarketWatch(fetcher, parser))
	registry.Add(NewWSJ(fetcher, parser))
	registry.Add(NewNASDAQ(fetcher, parser))
	registry.Add(NewSeekingAlpha(fetcher, parser))
	registry.Add(NewCNNFinance(fetcher, parser))
	registry.Add(NewYahooFinance(fetcher, parser))
	registry.Add(NewSPGlobal(fetcher, parser))
	registry.Add(NewGeneric(fetcher, parser))
	return registry
}

// topicURLs builds a topic table where each topic substitutes itself into
// the template.
func topicURLs(template string, topics ...string) map[string]string {
	table := make(map[string]string, len(topics))
	for _, topic := range topics {
		table[topic] = strings.ReplaceAll(template, TopicPlaceholder, topic)
	}
	return table
}

// topicTable builds a topic table from topic/value pairs, substituting
// each value into the template.
func topicTable(template string, pairs ...string) map[string]string {
	table := make(map[string]string, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		table[pairs[i]] = strings.ReplaceAll(template, TopicPlaceholder, pairs[i+1])
	}
	return table
}
