package knowledgebase

import (
	"checkups/pkg/domain"
	"strings"
)

const promptHeader = `Please provide detailed information about health checkup packages in the following format:
    Hospital Name: [hospital name]
    Package Name: [package name]
    Price: [price in INR]
    Description: [brief description]
    Features:
    - [feature 1]
    - [feature 2]
    - [feature 3]

    Query: `

// EnhanceQuery wraps the user query into a prompt asking for the structured
// answer format ParseAnswer understands.
func EnhanceQuery(q domain.Query) string {
	var b strings.Builder
	b.Grow(len(promptHeader) + len(q))
	b.WriteString(promptHeader)
	b.WriteString(q.String())

	return b.String()
}
