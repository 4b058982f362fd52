package enrich

import "fmt"

// analysisPromptTemplate embeds the taxonomy vocabulary so the model picks
// from the curated levels instead of inventing its own. Keep it in sync
// with pkg/taxonomy.
const analysisPromptTemplate = `Analyze this Hacker News story and provide:

1. A concise 2-3 sentence summary
2. Tags organized by level:

**L1 (Broad categories)**: Tech, Business, Science, Society
  - Pick 1-2 that best fit

**L2 (Topics by category)**:
  - Region: EU, USA, China, Canada, India, Germany, France, Netherlands, UK
  - Tech Stacks: Python, Rust, Go, JavaScript, Linux
  - Tech Topics: AI/ML, Web, Systems, Security, Mobile, DevOps, Data, Cloud,
    Open Source, Hardware
  - Business: Startups, Finance, Career, Products, Legal, Marketing
  - Science: Research, Space, Biology, Physics
  - Pick 2-4 relevant topics from any category

**L3 (Specific)**: Use BROAD names for companies/products, not versions.
  Examples: OpenAI (not GPT-4), Google, Meta, AWS, YC, Stripe
  - Pick 0-2 if applicable, only for major entities
  - Avoid version numbers or overly specific terms

Title: %s
URL: %s`

// analysisPrompt renders the prompt for one story
func analysisPrompt(title, url string) string {
	if url == "" {
		url = "No URL provided"
	}
	return fmt.Sprintf(analysisPromptTemplate, title, url)
}
