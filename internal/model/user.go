package model

// User is a recipient profile as supplied by the user directory. Read-only
// to the digest pipeline.
type User struct {
	ID                string
	Email             string
	Name              string
	Country           string
	InvestmentGoals   string
	RiskTolerance     string
	PreferredIndustry string
}
