package handler

type ArticleResponse struct {
	ID            int64  `json:"id"`
	Headline      string `json:"headline"`
	Summary       string `json:"summary"`
	Source        string `json:"source"`
	URL           string `json:"url"`
	Datetime      int64  `json:"datetime"`
	RelatedSymbol string `json:"related_symbol,omitempty"`
	IsCompanyNews bool   `json:"is_company_news"`
}

type NewsResponse struct {
	Articles []ArticleResponse `json:"articles"`
	Total    int               `json:"total"`
}

type StockMatchResponse struct {
	Symbol        string `json:"symbol"`
	Name          string `json:"name"`
	DisplaySymbol string `json:"display_symbol"`
	Type          string `json:"type"`
	Exchange      string `json:"exchange"`
}

type SearchResponse struct {
	Matches []StockMatchResponse `json:"matches"`
	Total   int                  `json:"total"`
}

type QuoteResponse struct {
	Symbol        string  `json:"symbol"`
	Price         float64 `json:"price"`
	ChangePercent float64 `json:"change_percent"`
}

type WatchlistResponse struct {
	Email   string   `json:"email"`
	Symbols []string `json:"symbols"`
}

type SignupRequest struct {
	Email             string `json:"email"`
	Name              string `json:"name"`
	Country           string `json:"country"`
	InvestmentGoals   string `json:"investment_goals"`
	RiskTolerance     string `json:"risk_tolerance"`
	PreferredIndustry string `json:"preferred_industry"`
}

type WatchlistRequest struct {
	Email   string `json:"email"`
	Symbol  string `json:"symbol"`
	Company string `json:"company"`
}
