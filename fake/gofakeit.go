package fake

import (
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"trafficsim/utils"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
)

const (
	hexChars = "0123456789abcdef"
	vinChars = "ABCDEFGHJKLMNPRSTUVWXYZ0123456789"
)

// Gofakeit is a Provider backed by a gofakeit instance.
// Every value, UUIDs included, is drawn from the instance's random stream.
type Gofakeit struct {
	faker *gofakeit.Faker
}

// Creates a provider whose values are fully determined by the seed
func New(seed int64) *Gofakeit {
	return &Gofakeit{faker: gofakeit.New(seed)}
}

// Creates a provider seeded from crypto/rand
func NewRandom() *Gofakeit {
	return New(utils.NewRandomSeed())
}

func (g *Gofakeit) UUID() string {
	id, err := uuid.NewRandomFromReader(g.faker.Rand)

	if err != nil {
		// *rand.Rand never fails to read
		return uuid.NewString()
	}

	return id.String()
}

func (g *Gofakeit) FirstName() string { return g.faker.FirstName() }

func (g *Gofakeit) LastName() string { return g.faker.LastName() }

func (g *Gofakeit) FunnyName() string {
	adjective := g.faker.Adjective()

	return strings.ToUpper(adjective[:1]) + adjective[1:] + " " + g.faker.LastName()
}

func (g *Gofakeit) Email() string { return g.faker.Email() }

func (g *Gofakeit) Password() string {
	return g.faker.Password(true, true, true, true, false, 12) //nolint:gomnd
}

func (g *Gofakeit) PhoneNumber() string { return g.faker.Phone() }

func (g *Gofakeit) SSN() string {
	// Area 000, 666 and 900-999 are never issued
	area := 1 + g.faker.Rand.Intn(665) //nolint:gomnd

	return fmt.Sprintf("%03d-%02d-%04d", area, 1+g.faker.Rand.Intn(99), 1+g.faker.Rand.Intn(9999)) //nolint:gomnd
}

func (g *Gofakeit) Passport() string {
	return strings.ToUpper(g.faker.Lexify("?")) + g.faker.Numerify("########")
}

// Returns a driving license number using the format of the given US state, falling back to a generic one
func (g *Gofakeit) DrivingLicense(state string) string {
	switch strings.ToUpper(state) {
	case "CO":
		return g.faker.Numerify("##-###-####")
	case "CA":
		return strings.ToUpper(g.faker.Lexify("?")) + g.faker.Numerify("#######")
	case "NY":
		return g.faker.Numerify("### ### ###")
	default:
		return g.faker.Numerify("#########")
	}
}

func (g *Gofakeit) JobTitle() string { return g.faker.JobTitle() }

func (g *Gofakeit) StreetAddress() string { return g.faker.Street() }

func (g *Gofakeit) ZipCode() string { return g.faker.Zip() }

func (g *Gofakeit) City() string { return g.faker.City() }

func (g *Gofakeit) State() string { return g.faker.State() }

func (g *Gofakeit) Country() string { return g.faker.Country() }

func (g *Gofakeit) Latitude() string {
	return strconv.FormatFloat(g.faker.Latitude(), 'f', 6, 64) //nolint:gomnd
}

func (g *Gofakeit) Longitude() string {
	return strconv.FormatFloat(g.faker.Longitude(), 'f', 6, 64) //nolint:gomnd
}

func (g *Gofakeit) PrivateIPv4() string {
	return utils.RandomPrivateIPv4(g.faker.Rand).String()
}

func (g *Gofakeit) PublicIPv4() string {
	return utils.RandomPublicIPv4(g.faker.Rand).String()
}

func (g *Gofakeit) MACAddress() string { return g.faker.MacAddress() }

func (g *Gofakeit) UserAgent() string { return g.faker.UserAgent() }

func (g *Gofakeit) BotUserAgent() string {
	return utils.RandomElementInSlice(g.faker.Rand, botUserAgents)
}

// Returns a 15 digits IMEI whose last digit is the Luhn check digit
func (g *Gofakeit) IMEI() string {
	body := g.faker.Numerify("##############")

	return body + strconv.Itoa(luhnCheckDigit(body))
}

func (g *Gofakeit) SIPNameAddress() string {
	user := strings.ToLower(g.faker.FirstName() + "." + g.faker.LastName())

	return fmt.Sprintf("<sip:%s@%s:%d>", user, g.PublicIPv4(), 5060+g.faker.Rand.Intn(1000)) //nolint:gomnd
}

func (g *Gofakeit) Hex(length int) string {
	var builder strings.Builder

	builder.Grow(length)

	for i := 0; i < length; i++ {
		builder.WriteByte(hexChars[g.faker.Rand.Intn(len(hexChars))])
	}

	return builder.String()
}

func (g *Gofakeit) CreditCard() string { return g.faker.CreditCardNumber(nil) }

func (g *Gofakeit) RoutingNumber() string { return g.faker.AchRouting() }

// Returns a german IBAN with valid check digits
func (g *Gofakeit) IBAN() string {
	bban := g.faker.Numerify("##################")

	return "DE" + ibanCheckDigits("DE", bban) + bban
}

func (g *Gofakeit) CurrencyCode() string { return g.faker.CurrencyShort() }

// Returns a formatted brazilian CPF with valid check digits
func (g *Gofakeit) CPF() string {
	digits := g.randomDigits(9) //nolint:gomnd
	digits = append(digits, mod11CheckDigit(digits, []int{10, 9, 8, 7, 6, 5, 4, 3, 2}))
	digits = append(digits, mod11CheckDigit(digits, []int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2}))

	s := joinDigits(digits)

	return s[0:3] + "." + s[3:6] + "." + s[6:9] + "-" + s[9:11]
}

// Returns a formatted brazilian CNPJ with valid check digits
func (g *Gofakeit) CNPJ() string {
	digits := append(g.randomDigits(8), 0, 0, 0, 1) //nolint:gomnd
	digits = append(digits, mod11CheckDigit(digits, []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}))
	digits = append(digits, mod11CheckDigit(digits, []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}))

	s := joinDigits(digits)

	return s[0:2] + "." + s[2:5] + "." + s[5:8] + "/" + s[8:12] + "-" + s[12:14]
}

func (g *Gofakeit) VIN() string {
	vin := make([]byte, 17) //nolint:gomnd

	for i := range vin {
		vin[i] = vinChars[g.faker.Rand.Intn(len(vinChars))]
	}

	return string(vin)
}

// Replaces every '?' with a lowercase letter and every '#' with a digit
func (g *Gofakeit) Bothify(pattern string) string {
	return g.faker.Numerify(g.faker.Lexify(pattern))
}

func (g *Gofakeit) Numerify(pattern string) string { return g.faker.Numerify(pattern) }

func (g *Gofakeit) Paragraph(sentences int) string {
	parts := make([]string, 0, sentences)

	for i := 0; i < sentences; i++ {
		parts = append(parts, g.faker.Sentence(6+g.faker.Rand.Intn(8))) //nolint:gomnd
	}

	return strings.Join(parts, " ")
}

func (g *Gofakeit) FileName() string {
	return strings.ToLower(g.faker.Noun()) + "_" + g.faker.Numerify("####") + "." + g.faker.FileExtension()
}

func (g *Gofakeit) SHA512() string {
	seed := make([]byte, 64) //nolint:gomnd

	for i := range seed {
		seed[i] = byte(g.faker.Rand.Intn(256)) //nolint:gomnd
	}

	sum := sha512.Sum512(seed)

	return hex.EncodeToString(sum[:])
}

func (g *Gofakeit) Artist() string { return utils.RandomElementInSlice(g.faker.Rand, artists) }

func (g *Gofakeit) Animal() string { return g.faker.Animal() }

func (g *Gofakeit) BookTitle() string {
	adjective := g.faker.Adjective()
	noun := g.faker.Noun()

	return "The " + strings.ToUpper(adjective[:1]) + adjective[1:] + " " + strings.ToUpper(noun[:1]) + noun[1:]
}

func (g *Gofakeit) DogBreed() string { return g.faker.Dog() }

func (g *Gofakeit) Pokemon() string { return utils.RandomElementInSlice(g.faker.Rand, pokemons) }

func (g *Gofakeit) ColorName() string { return g.faker.Color() }

func (g *Gofakeit) BeerName() string { return g.faker.BeerName() }

func (g *Gofakeit) LebowskiCharacter() string {
	return utils.RandomElementInSlice(g.faker.Rand, lebowskiCharacters)
}

func (g *Gofakeit) LebowskiQuote() string {
	return utils.RandomElementInSlice(g.faker.Rand, lebowskiQuotes)
}

func (g *Gofakeit) Galaxy() string { return utils.RandomElementInSlice(g.faker.Rand, galaxies) }

func (g *Gofakeit) CompanyName() string { return g.faker.Company() }

func (g *Gofakeit) CompanyURL() string {
	slug := strings.ToLower(strings.Join(strings.Fields(g.faker.Company()), ""))
	slug = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}

		return -1
	}, slug)

	return "www." + slug + ".com"
}

func (g *Gofakeit) ProgrammingLanguage() string { return g.faker.ProgrammingLanguage() }

func (g *Gofakeit) randomDigits(n int) []int {
	digits := make([]int, n)

	for i := range digits {
		digits[i] = g.faker.Rand.Intn(10) //nolint:gomnd
	}

	return digits
}

func joinDigits(digits []int) string {
	var builder strings.Builder

	for _, digit := range digits {
		builder.WriteByte(byte('0' + digit))
	}

	return builder.String()
}

// luhnCheckDigit returns the digit to append to the number so that it passes the Luhn check
func luhnCheckDigit(number string) int {
	sum := 0
	double := true

	for i := len(number) - 1; i >= 0; i-- {
		digit := int(number[i] - '0')

		if double {
			digit *= 2
			if digit > 9 { //nolint:gomnd
				digit -= 9
			}
		}

		sum += digit
		double = !double
	}

	return (10 - sum%10) % 10 //nolint:gomnd
}

// mod11CheckDigit is the check digit scheme shared by CPF and CNPJ
func mod11CheckDigit(digits, weights []int) int {
	sum := 0

	for i, weight := range weights {
		sum += digits[i] * weight
	}

	rest := sum % 11 //nolint:gomnd
	if rest < 2 {     //nolint:gomnd
		return 0
	}

	return 11 - rest //nolint:gomnd
}

// ibanCheckDigits computes the ISO 7064 mod 97-10 check digits of an IBAN
func ibanCheckDigits(country, bban string) string {
	var numeric strings.Builder

	for _, r := range bban + country + "00" {
		if r >= 'A' && r <= 'Z' {
			numeric.WriteString(strconv.Itoa(int(r-'A') + 10)) //nolint:gomnd
		} else {
			numeric.WriteRune(r)
		}
	}

	n, _ := new(big.Int).SetString(numeric.String(), 10)
	mod := new(big.Int).Mod(n, big.NewInt(97)).Int64() //nolint:gomnd

	return fmt.Sprintf("%02d", 98-mod)
}
