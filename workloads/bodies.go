package workloads

import "trafficsim/fake"

// RequestBody returns the identity fields of an account. withPII adds personal and banking details.
func RequestBody(p fake.Provider, withPII bool) map[string]any {
	body := map[string]any{
		"account_id": p.UUID(),
		"first_name": p.FirstName(),
	}

	if withPII {
		body["last_name"] = p.LastName()
		body["email"] = p.Email()
		body["password"] = p.Password()
		body["phone_number"] = p.PhoneNumber()
		body["ssn"] = p.SSN()
		body["passport"] = p.Passport()
		body["driving_license"] = p.DrivingLicense("CO")
		body["banking_details"] = map[string]any{
			"credit_card":    p.CreditCard(),
			"routing_number": p.RoutingNumber(),
			"iban":           p.IBAN(),
		}
	}

	address := map[string]any{}

	if withPII {
		address["address_street"] = p.StreetAddress()
		address["address_zipcode"] = p.ZipCode()
	}

	address["address_city"] = p.City()
	address["address_state"] = p.State()
	address["address_country"] = p.Country()
	body["address"] = address

	body["company_name"] = p.CompanyName()
	body["company_url"] = p.CompanyURL()
	body["handle_github"] = p.Bothify("github.com/??##.??##")
	body["handle_linkedin"] = p.Bothify("linkedin.com/??##.??##")
	body["handle_twitter"] = p.Bothify("@??##??##")
	body["preferred_currency"] = p.CurrencyCode()
	body["programming_language"] = p.ProgrammingLanguage()
	body["title"] = p.JobTitle()

	body["favorites"] = map[string]any{
		"favorite_artist":  p.Artist(),
		"favorite_animal":  p.Animal(),
		"favorite_book":    p.BookTitle(),
		"favorite_dog":     p.DogBreed(),
		"favorite_pokemon": p.Pokemon(),
	}

	if withPII {
		body["vehicle_identification_number"] = p.VIN()
		body["mac_address"] = p.MACAddress()
		body["imei"] = p.IMEI()
		body["sin"] = p.SIPNameAddress()
		body["cnpj"] = p.CNPJ()
		body["cpf"] = p.CPF()
	}

	return body
}

// ResponseBody returns the fields of a purchase receipt. withPII adds the order and its location.
func ResponseBody(p fake.Provider, withPII bool) map[string]any {
	body := map[string]any{
		"receipt_id":                 p.UUID(),
		"invoice_number":             p.UUID(),
		"recovery_key":               p.ColorName() + ":" + p.BeerName() + ":" + p.LebowskiCharacter() + ":" + p.Galaxy(),
		"special_instructions":       p.Paragraph(4),
		"payment_total":              p.Numerify("###.##"),
		"payment_tax":                p.Numerify("##.##"),
		"contract_filename":          p.FileName(),
		"contract_filename_sha512":   p.SHA512(),
		"future_order_discount_code": p.Hex(32),
	}

	if withPII {
		body["order_id"] = p.UUID()
		body["latitude"] = p.Latitude()
		body["longitude"] = p.Longitude()
	}

	body["lebowski_quote"] = p.LebowskiQuote()
	body["support_contact"] = p.FunnyName()

	return body
}
