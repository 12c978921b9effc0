package domain

// SerperShoppingItem is one raw result from the Serper shopping endpoint.
type SerperShoppingItem struct {
	Title       string  `json:"title"`
	Source      string  `json:"source"`
	Link        string  `json:"link"`
	Price       string  `json:"price"`
	Rating      float64 `json:"rating"`
	RatingCount int     `json:"ratingCount"`
	ImageURL    string  `json:"imageUrl"`
	Thumbnail   string  `json:"thumbnail,omitempty"`
	ProductID   string  `json:"productId"`
	Position    int     `json:"position"`
	Category    string  `json:"category,omitempty"`
	Description string  `json:"description,omitempty"`
}

// SerperShoppingResponse is the response from the shopping endpoint.
type SerperShoppingResponse struct {
	Shopping []SerperShoppingItem `json:"shopping"`
}

// SerperOrganicResult is one raw result from the Serper web search endpoint.
type SerperOrganicResult struct {
	Title    string `json:"title"`
	Link     string `json:"link"`
	Snippet  string `json:"snippet"`
	Position int    `json:"position"`
}

// SerperSearchResponse is the response from the web search endpoint.
type SerperSearchResponse struct {
	Organic []SerperOrganicResult `json:"organic"`
}
