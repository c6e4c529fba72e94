package reminders

// SetAPIBaseURL points the provider at a test server.
func (p *OpenAIProvider) SetAPIBaseURL(baseURL string) {
	p.apiBaseURL = baseURL
}
