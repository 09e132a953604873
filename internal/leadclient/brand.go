package leadclient

import "strings"

// Brand holds the business details that show up in rendered mails and in
// submit error messages.
type Brand struct {
	Name         string `toml:"name"`
	Tagline      string `toml:"tagline"`
	ContactEmail string `toml:"contact_email"`
	Website      string `toml:"website"`
	BlogURL      string `toml:"blog_url"`
	ServicesURL  string `toml:"services_url"`
}

var DefaultBrand = Brand{
	Name:         "NxtgenHub",
	Tagline:      "Simplify IT. Empower Growth",
	ContactEmail: "nxtgenhub15@gmail.com",
	Website:      "https://nxtgenhub.com",
	BlogURL:      "https://nxtgenhub.com/blog",
	ServicesURL:  "https://nxtgenhub.com/services",
}

// WithDefaults fills every empty field from DefaultBrand.
func (b Brand) WithDefaults() Brand {
	if b.Name == "" {
		b.Name = DefaultBrand.Name
	}
	if b.Tagline == "" {
		b.Tagline = DefaultBrand.Tagline
	}
	if b.ContactEmail == "" {
		b.ContactEmail = DefaultBrand.ContactEmail
	}
	if b.Website == "" {
		b.Website = DefaultBrand.Website
	}
	if b.BlogURL == "" {
		b.BlogURL = b.Website + "/blog"
	}
	if b.ServicesURL == "" {
		b.ServicesURL = b.Website + "/services"
	}
	return b
}

// Host is the website without its scheme, as printed in mail footers.
func (b Brand) Host() string {
	return strings.TrimPrefix(strings.TrimPrefix(b.Website, "https://"), "http://")
}
