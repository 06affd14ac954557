package bankaccount

import "unicode/utf8"

// Draft holds every account field except the identifier. New accounts are
// sent to the API as drafts; the API assigns the ID.
type Draft struct {
	Name            string  `json:"name"`
	InstitutionName string  `json:"bankName"`
	AccountNumber   string  `json:"accountNumber"`
	Balance         Balance `json:"balance"`
	Kind            Kind    `json:"type"`
	Color           string  `json:"color"`
	IsActive        bool    `json:"isActive"`
}

// Account is a persisted bank account or e-wallet.
type Account struct {
	ID int64 `json:"id"`
	Draft
}

// WithID attaches an identifier to a draft.
func (d Draft) WithID(id int64) Account {
	return Account{ID: id, Draft: d}
}

const maskPrefix = "••••"

// MaskAccountNumber hides everything except the last four characters.
func MaskAccountNumber(number string) string {
	if utf8.RuneCountInString(number) <= 4 {
		return maskPrefix + number
	}
	runes := []rune(number)
	return maskPrefix + string(runes[len(runes)-4:])
}
