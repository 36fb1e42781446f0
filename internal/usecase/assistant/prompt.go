package assistant

import (
	"strings"

	"github.com/kailas-cloud/shopassist/internal/domain"
)

const systemPrompt = "You are a helpful assistant that provides detailed cooking instructions."

// BuildMessages renders the chat prompt for a dish and its ingredient names.
// An empty dish drops the "for a <dish>" clause.
func BuildMessages(dish string, ingredients []string) []domain.Message {
	var b strings.Builder
	b.WriteString("I have the following ingredients")
	if dish = strings.TrimSpace(dish); dish != "" {
		b.WriteString(" for a ")
		b.WriteString(dish)
	}
	b.WriteString(": ")
	b.WriteString(strings.Join(ingredients, ", "))
	b.WriteString(". Please provide step-by-step cooking instructions.")

	return []domain.Message{
		{Role: domain.RoleSystem, Content: systemPrompt},
		{Role: domain.RoleUser, Content: b.String()},
	}
}
