package models

// CallToAction описывает кнопку регистрации на главной странице.
type CallToAction struct {
	Audience    string `json:"audience"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ButtonLabel string `json:"buttonLabel"`
	Enabled     bool   `json:"enabled"`
}

// LandingPage - содержимое главной страницы.
type LandingPage struct {
	Headline    string         `json:"headline"`
	Description string         `json:"description"`
	Actions     []CallToAction `json:"actions"`
	Footer      string         `json:"footer"`
}

// DefaultLandingPage возвращает статичное содержимое главной страницы.
// Регистрация не реализована, поэтому обе кнопки выключены.
func DefaultLandingPage() LandingPage {
	return LandingPage{
		Headline:    "Connect with Opportunities: Deliver or Get Delivered, Your Way.",
		Description: "Join our network and experience the future of efficient and flexible service solutions.",
		Actions: []CallToAction{
			{
				Audience:    "customer",
				Title:       "Customers",
				Description: "Need something moved or delivered? Sign up and get connected with reliable drivers.",
				ButtonLabel: "Sign Up as a Customer",
			},
			{
				Audience:    "driver",
				Title:       "Drivers",
				Description: "Looking for flexible work? Become a driver and tap into a steady stream of opportunities.",
				ButtonLabel: "Sign Up as a Driver",
			},
		},
		Footer: "Powered by TowBid",
	}
}
