package usecase

import "research_backend/internal/feature/company/domain/entity"

// alias maps a lower-case company name or nickname to its canonical identity.
type alias struct {
	key     string
	company entity.ResolvedCompany
}

// aliasTable is searched in slice order; the substring pass returns the first hit,
// so earlier rows win collisions.
var aliasTable = []alias{
	{"apple", entity.ResolvedCompany{Symbol: "AAPL", DisplayName: "Apple Inc."}},
	{"microsoft", entity.ResolvedCompany{Symbol: "MSFT", DisplayName: "Microsoft Corporation"}},
	{"google", entity.ResolvedCompany{Symbol: "GOOGL", DisplayName: "Alphabet Inc."}},
	{"alphabet", entity.ResolvedCompany{Symbol: "GOOGL", DisplayName: "Alphabet Inc."}},
	{"amazon", entity.ResolvedCompany{Symbol: "AMZN", DisplayName: "Amazon.com Inc."}},
	{"meta", entity.ResolvedCompany{Symbol: "META", DisplayName: "Meta Platforms Inc."}},
	{"facebook", entity.ResolvedCompany{Symbol: "META", DisplayName: "Meta Platforms Inc."}},
	{"tesla", entity.ResolvedCompany{Symbol: "TSLA", DisplayName: "Tesla Inc."}},
	{"nvidia", entity.ResolvedCompany{Symbol: "NVDA", DisplayName: "NVIDIA Corporation"}},
	{"netflix", entity.ResolvedCompany{Symbol: "NFLX", DisplayName: "Netflix Inc."}},
	{"coca-cola", entity.ResolvedCompany{Symbol: "KO", DisplayName: "The Coca-Cola Company"}},
	{"coca cola", entity.ResolvedCompany{Symbol: "KO", DisplayName: "The Coca-Cola Company"}},
	{"coke", entity.ResolvedCompany{Symbol: "KO", DisplayName: "The Coca-Cola Company"}},
	{"pepsico", entity.ResolvedCompany{Symbol: "PEP", DisplayName: "PepsiCo Inc."}},
	{"pepsi", entity.ResolvedCompany{Symbol: "PEP", DisplayName: "PepsiCo Inc."}},
	{"walmart", entity.ResolvedCompany{Symbol: "WMT", DisplayName: "Walmart Inc."}},
	{"disney", entity.ResolvedCompany{Symbol: "DIS", DisplayName: "The Walt Disney Company"}},
	{"nike", entity.ResolvedCompany{Symbol: "NKE", DisplayName: "Nike Inc."}},
	{"intel", entity.ResolvedCompany{Symbol: "INTC", DisplayName: "Intel Corporation"}},
	{"amd", entity.ResolvedCompany{Symbol: "AMD", DisplayName: "Advanced Micro Devices Inc."}},
	{"advanced micro devices", entity.ResolvedCompany{Symbol: "AMD", DisplayName: "Advanced Micro Devices Inc."}},
	{"ibm", entity.ResolvedCompany{Symbol: "IBM", DisplayName: "International Business Machines"}},
	{"oracle", entity.ResolvedCompany{Symbol: "ORCL", DisplayName: "Oracle Corporation"}},
	{"salesforce", entity.ResolvedCompany{Symbol: "CRM", DisplayName: "Salesforce Inc."}},
	{"adobe", entity.ResolvedCompany{Symbol: "ADBE", DisplayName: "Adobe Inc."}},
	{"paypal", entity.ResolvedCompany{Symbol: "PYPL", DisplayName: "PayPal Holdings Inc."}},
	{"visa", entity.ResolvedCompany{Symbol: "V", DisplayName: "Visa Inc."}},
	{"mastercard", entity.ResolvedCompany{Symbol: "MA", DisplayName: "Mastercard Inc."}},
	{"jpmorgan", entity.ResolvedCompany{Symbol: "JPM", DisplayName: "JPMorgan Chase & Co."}},
	{"jp morgan", entity.ResolvedCompany{Symbol: "JPM", DisplayName: "JPMorgan Chase & Co."}},
	{"goldman sachs", entity.ResolvedCompany{Symbol: "GS", DisplayName: "The Goldman Sachs Group Inc."}},
	{"bank of america", entity.ResolvedCompany{Symbol: "BAC", DisplayName: "Bank of America Corporation"}},
	{"berkshire", entity.ResolvedCompany{Symbol: "BRK.B", DisplayName: "Berkshire Hathaway Inc."}},
	{"boeing", entity.ResolvedCompany{Symbol: "BA", DisplayName: "The Boeing Company"}},
	{"ford", entity.ResolvedCompany{Symbol: "F", DisplayName: "Ford Motor Company"}},
	{"general motors", entity.ResolvedCompany{Symbol: "GM", DisplayName: "General Motors Company"}},
	{"starbucks", entity.ResolvedCompany{Symbol: "SBUX", DisplayName: "Starbucks Corporation"}},
	{"mcdonald's", entity.ResolvedCompany{Symbol: "MCD", DisplayName: "McDonald's Corporation"}},
	{"mcdonalds", entity.ResolvedCompany{Symbol: "MCD", DisplayName: "McDonald's Corporation"}},
	{"johnson & johnson", entity.ResolvedCompany{Symbol: "JNJ", DisplayName: "Johnson & Johnson"}},
	{"pfizer", entity.ResolvedCompany{Symbol: "PFE", DisplayName: "Pfizer Inc."}},
	{"exxon", entity.ResolvedCompany{Symbol: "XOM", DisplayName: "Exxon Mobil Corporation"}},
	{"chevron", entity.ResolvedCompany{Symbol: "CVX", DisplayName: "Chevron Corporation"}},
	{"verizon", entity.ResolvedCompany{Symbol: "VZ", DisplayName: "Verizon Communications Inc."}},
	{"uber", entity.ResolvedCompany{Symbol: "UBER", DisplayName: "Uber Technologies Inc."}},
	{"airbnb", entity.ResolvedCompany{Symbol: "ABNB", DisplayName: "Airbnb Inc."}},
	{"spotify", entity.ResolvedCompany{Symbol: "SPOT", DisplayName: "Spotify Technology S.A."}},
	{"shopify", entity.ResolvedCompany{Symbol: "SHOP", DisplayName: "Shopify Inc."}},
	{"toyota", entity.ResolvedCompany{Symbol: "TM", DisplayName: "Toyota Motor Corporation"}},
	{"sony", entity.ResolvedCompany{Symbol: "SONY", DisplayName: "Sony Group Corporation"}},
}

// aliasIndex is the exact-match view of aliasTable, built once at init.
var aliasIndex = func() map[string]entity.ResolvedCompany {
	m := make(map[string]entity.ResolvedCompany, len(aliasTable))
	for _, a := range aliasTable {
		if _, dup := m[a.key]; !dup {
			m[a.key] = a.company
		}
	}
	return m
}()
