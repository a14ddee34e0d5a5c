package model

// OkPrice is one entry of the "historik" list in an ok.dk price history
// document, as saved to ok_<fueltype>.json:
//
// {
//   "visPriserFor1000Liter": false,
//   "historik": [ {"dato": "2022-04-30T00:00:00", "pris": 17.29}, ... ]
// }
//
// Date is kept as the literal string from the file; it is compared by exact
// match and never parsed.
type OkPrice struct {
	Date  string  `json:"dato"`
	Price float64 `json:"pris"`
}
