package domain

type CheckoutForm struct {
	StreetAddress       string `json:"street_address" validate:"required,max=100"`
	ApartmentAddress    string `json:"apartment_address" validate:"max=100"`
	Country             string `json:"country" validate:"required,iso3166_1_alpha2"`
	Zip                 string `json:"zip" validate:"required,max=20"`
	SameShippingAddress bool   `json:"same_shipping_address"`
	SaveInfo            bool   `json:"save_info"`
	PaymentOption       string `json:"payment_option" validate:"required"`
}
