package bankaccount

// Banks are the institutions offered for checking, savings and credit accounts.
var Banks = []string{
	"BCA",
	"Mandiri",
	"BNI",
	"BRI",
	"CIMB Niaga",
	"Danamon",
	"Permata",
	"BTN",
	"BSI",
	"OCBC NISP",
	"Maybank",
	"Panin",
	"Jago",
	"Jenius",
	"SeaBank",
	"Other",
}

// EWallets are the providers offered for e-wallet accounts.
var EWallets = []string{
	"GoPay",
	"OVO",
	"DANA",
	"ShopeePay",
	"LinkAja",
	"Sakuku",
	"i.saku",
	"Other",
}

// Colors is the palette offered to group accounts visually. The first entry
// is the default for new accounts.
var Colors = []string{
	"#3B82F6",
	"#10B981",
	"#F59E0B",
	"#EF4444",
	"#8B5CF6",
	"#EC4899",
	"#06B6D4",
	"#84CC16",
}
