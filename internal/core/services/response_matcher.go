package services

import "strings"

// WelcomeMessage opens every help bot session.
const WelcomeMessage = "Hello! I'm your currency assistant. Ask me anything about currencies, exchange rates, or how to use this app."

// FallbackReply is returned when no keyword matches.
const FallbackReply = "I'm not sure I understand. You can ask me about exchange rates, how to use the app, or specific currencies. Try phrases like 'How accurate are the exchange rates?' or 'How do I convert currencies?'"

// ResponseRule pairs trigger keywords with a canned reply. Any keyword matching is enough.
type ResponseRule struct {
	Keywords []string
	Reply    string
}

// DefaultResponseRules is the help bot's table. Order matters: the first rule with a
// keyword contained in the lowercased input wins, so greetings and thanks come first and
// "convert" sits ahead of "currency".
var DefaultResponseRules = []ResponseRule{
	{Keywords: []string{"hello", "hi", "hey"}, Reply: "Hello! I'm your currency assistant. How can I help you today?"},
	{Keywords: []string{"thank", "thanks"}, Reply: "You're welcome! Is there anything else I can help you with?"},
	{Keywords: []string{"exchange rate"}, Reply: "Exchange rates are updated daily from reliable financial data sources. The rates shown are mid-market rates and may differ slightly from what banks or money transfer services offer."},
	{Keywords: []string{"convert"}, Reply: "To convert currency, simply enter the amount, select your source currency and target currency, and the conversion will happen automatically."},
	{Keywords: []string{"currency"}, Reply: "Our app supports over 150 currencies from around the world. You can convert between any two currencies instantly."},
	{Keywords: []string{"update"}, Reply: "Exchange rates are updated once per day, typically around midnight UTC."},
	{Keywords: []string{"accurate"}, Reply: "Our exchange rates come from reliable financial data providers and are updated daily. However, they are mid-market rates and actual rates from banks or money transfer services may vary."},
	{Keywords: []string{"offline"}, Reply: "Currently, our app requires an internet connection to fetch the latest exchange rates. We're working on an offline mode for future updates."},
	{Keywords: []string{"historical"}, Reply: "We don't currently support historical exchange rates in the free version. This feature may be available in future updates."},
	{Keywords: []string{"fee"}, Reply: "Our app doesn't charge any fees for currency conversions. However, if you're making actual money transfers, your bank or transfer service will likely charge fees."},
	{Keywords: []string{"save"}, Reply: "You can save your favorite currency pairs by tapping the star icon next to a conversion. Access your saved conversions from the Favorites tab."},
	{Keywords: []string{"notification"}, Reply: "You can set rate alerts to be notified when a currency pair reaches a specific exchange rate. Go to Settings > Rate Alerts to set this up."},
	{Keywords: []string{"help"}, Reply: "I'm your currency assistant! Ask me anything about currencies, exchange rates, or how to use this app."},
}

// ResponseMatcher picks a canned reply by first-match-wins keyword lookup.
// It keeps no state between calls.
type ResponseMatcher struct {
	rules    []ResponseRule
	fallback string
}

// NewResponseMatcher creates a matcher over rules. Keywords are compared in lower case.
func NewResponseMatcher(rules []ResponseRule, fallback string) *ResponseMatcher {
	normalized := make([]ResponseRule, len(rules))
	for i, rule := range rules {
		keywords := make([]string, len(rule.Keywords))
		for j, kw := range rule.Keywords {
			keywords[j] = strings.ToLower(kw)
		}
		normalized[i] = ResponseRule{Keywords: keywords, Reply: rule.Reply}
	}
	return &ResponseMatcher{rules: normalized, fallback: fallback}
}

// NewDefaultResponseMatcher creates the help bot's matcher.
func NewDefaultResponseMatcher() *ResponseMatcher {
	return NewResponseMatcher(DefaultResponseRules, FallbackReply)
}

// Reply returns the reply of the first rule with a keyword contained in input.
func (m *ResponseMatcher) Reply(input string) string {
	lowered := strings.ToLower(input)
	for _, rule := range m.rules {
		for _, kw := range rule.Keywords {
			if kw != "" && strings.Contains(lowered, kw) {
				return rule.Reply
			}
		}
	}
	return m.fallback
}
