package restaurant

type Social struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Info is the restaurant's contact record shown on the contact page and
// footer.
type Info struct {
	Name    string   `json:"name"`
	Address string   `json:"address"`
	City    string   `json:"city"`
	Phone   string   `json:"phone"`
	Email   string   `json:"email"`
	MapsURL string   `json:"maps_url"`
	Socials []Social `json:"socials"`
}

// OpeningHours is one sitting on one weekday. Opens and Closes are
// "HH:MM"; Closes is half an hour after the last bookable slot.
type OpeningHours struct {
	Day     string `json:"day"`
	Sitting string `json:"sitting"`
	Opens   string `json:"opens"`
	Closes  string `json:"closes"`
}

var Savanna = Info{
	Name:    "Habesha Savanna Eetcafé",
	Address: "Boekhorststraat 44",
	City:    "Den Haag",
	Phone:   "+31 6 84293837",
	Email:   "savanna2512@outlook.com",
	MapsURL: "https://maps.app.goo.gl/JyD8qQWNWkLVms1p9",
	Socials: []Social{
		{Label: "Instagram", URL: "https://www.instagram.com/savanna2512cs"},
		{Label: "TikTok", URL: "https://www.tiktok.com/@sofiasium"},
	},
}
