package fitbit

// SetAPIBaseURL points the client at a test server.
func (c *Client) SetAPIBaseURL(baseURL string) {
	c.apiBaseURL = baseURL
}
