package services_test

import (
	"testing"

	"github.com/SscSPs/currency_companion_app/internal/core/services"
	"github.com/stretchr/testify/assert"
)

func replyFor(keyword string) string {
	for _, rule := range services.DefaultResponseRules {
		for _, kw := range rule.Keywords {
			if kw == keyword {
				return rule.Reply
			}
		}
	}
	return ""
}

func TestResponseMatcher_Reply(t *testing.T) {
	matcher := services.NewDefaultResponseMatcher()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "greeting", input: "Hello there", want: replyFor("hello")},
		{name: "gratitude", input: "thanks a lot", want: replyFor("thanks")},
		{name: "convert beats currency", input: "how do I convert currency", want: replyFor("convert")},
		{name: "fallback", input: "xyz", want: services.FallbackReply},
		{name: "case insensitive", input: "IS IT ACCURATE?", want: replyFor("accurate")},
		{name: "multi word keyword", input: "what exchange rate do you use", want: replyFor("exchange rate")},
		{name: "empty input", input: "", want: services.FallbackReply},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.want)
			assert.Equal(t, tt.want, matcher.Reply(tt.input))
		})
	}
}

func TestResponseMatcher_GreetingWinsOverTopics(t *testing.T) {
	matcher := services.NewDefaultResponseMatcher()

	// "hey" is checked before any topic
	assert.Equal(t, replyFor("hey"), matcher.Reply("hey, what fee do you charge?"))
	// substring matching is literal: "this" contains "hi"
	assert.Equal(t, replyFor("hi"), matcher.Reply("is this offline?"))
}

func TestResponseMatcher_FirstRuleWins(t *testing.T) {
	matcher := services.NewResponseMatcher([]services.ResponseRule{
		{Keywords: []string{"Rate"}, Reply: "first"},
		{Keywords: []string{"rate"}, Reply: "second"},
	}, "none")

	assert.Equal(t, "first", matcher.Reply("what rate?"))
	assert.Equal(t, "none", matcher.Reply("nothing"))
}
