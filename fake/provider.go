// Package fake exposes the fake values needed to build synthetic traffic, grouped by category.
// The gofakeit backed implementation can be seeded so that a given seed always yields the same stream of values.
package fake

// Identity values describe a person
type Identity interface {
	UUID() string
	FirstName() string
	LastName() string
	FunnyName() string
	Email() string
	Password() string
	PhoneNumber() string
	SSN() string
	Passport() string
	DrivingLicense(state string) string
	JobTitle() string
}

// Location values describe a postal address or coordinates
type Location interface {
	StreetAddress() string
	ZipCode() string
	City() string
	State() string
	Country() string
	Latitude() string
	Longitude() string
}

// Network values describe devices and endpoints
type Network interface {
	PrivateIPv4() string
	PublicIPv4() string
	MACAddress() string
	UserAgent() string
	BotUserAgent() string
	IMEI() string
	SIPNameAddress() string
	Hex(length int) string
}

// Finance values describe payment and tax identifiers
type Finance interface {
	CreditCard() string
	RoutingNumber() string
	IBAN() string
	CurrencyCode() string
	CPF() string
	CNPJ() string
	VIN() string
}

// Text values are free form or templated strings
type Text interface {
	Bothify(pattern string) string
	Numerify(pattern string) string
	Paragraph(sentences int) string
	FileName() string
	SHA512() string
}

// Trivia values are the "favorites" and pop culture picks
type Trivia interface {
	Artist() string
	Animal() string
	BookTitle() string
	DogBreed() string
	Pokemon() string
	ColorName() string
	BeerName() string
	LebowskiCharacter() string
	LebowskiQuote() string
	Galaxy() string
	CompanyName() string
	CompanyURL() string
	ProgrammingLanguage() string
}

// Provider is the full set of fake value capabilities
type Provider interface {
	Identity
	Location
	Network
	Finance
	Text
	Trivia
}
