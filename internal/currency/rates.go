package currency

// BaseCode is the currency every rate is expressed against.
const BaseCode = "USD"

// rates holds units of each currency per one US dollar, as published on
// 2016-07-13. Codes are ISO 4217 plus a few non-standard codes that appear
// in the business dump.
var rates = map[string]float64{
	"AED": 3.672965, "AFN": 68.59, "ALL": 123.162, "AMD": 476.48,
	"ANG": 1.783775, "AOA": 165.565833, "ARS": 14.58535, "AUD": 1.313688,
	"AWG": 1.793333, "AZN": 1.556825, "BAM": 1.762514, "BBD": 2,
	"BDT": 78.39992, "BGN": 1.7621, "BHD": 0.377338, "BIF": 1661.8575,
	"BMD": 1, "BND": 1.346713, "BOB": 6.866232, "BRL": 3.284223,
	"BSD": 1, "BTC": 0.001506557843, "BTN": 67.0891, "BWP": 10.770925,
	"BYN": 1.9998, "BYR": 20026.25, "BZD": 2.00257, "CAD": 1.298368,
	"CDF": 946.2525, "CHF": 0.983025, "CLF": 0.024898, "CLP": 656.8257,
	"CNY": 6.687002, "COP": 2927.315, "CRC": 546.748, "CUC": 1,
	"CUP": 24.728383, "CVE": 99.621633, "CZK": 24.34203, "DJF": 177.0925,
	"DKK": 6.698861, "DOP": 45.89093, "DZD": 110.35122, "EEK": 14.10235,
	"EGP": 8.878225, "ERN": 15.25, "ETB": 22.00023, "EUR": 0.90005,
	"FJD": 2.045717, "FKP": 0.759963, "GBP": 0.759963, "GEL": 2.34754,
	"GGP": 0.759963, "GHS": 3.946445, "GIP": 0.759963, "GMD": 42.71614,
	"GNF": 9025.69, "GTQ": 7.618543, "GYD": 204.987667, "HKD": 7.756498,
	"HNL": 22.77943, "HRK": 6.738676, "HTG": 63.22425, "HUF": 282.7538,
	"IDR": 13096.1, "ILS": 3.862092, "IMP": 0.759963, "INR": 67.03183,
	"IQD": 1169.58303, "IRR": 30092.5, "ISK": 122.0874, "JEP": 0.759963,
	"JMD": 126.4777, "JOD": 0.708132, "JPY": 104.2072, "KES": 101.28279,
	"KGS": 67.26545, "KHR": 4078.0225, "KMF": 431.375, "KPW": 899.91,
	"KRW": 1146.24, "KWD": 0.302026, "KYD": 0.82438, "KZT": 338.155,
	"LAK": 8075.4175, "LBP": 1510.043333, "LKR": 145.9234, "LRD": 90.25,
	"LSL": 14.43109, "LTL": 3.080136, "LVL": 0.629127, "LYD": 1.385223,
	"MAD": 9.789585, "MDL": 19.77584, "MGA": 3083.595, "MKD": 55.42093,
	"MMK": 1177.475, "MNT": 2011.5, "MOP": 7.98973, "MRO": 354.548167,
	"MTL": 0.683738, "MUR": 35.397988, "MVR": 15.156667, "MWK": 714.1961,
	"MXN": 18.37789, "MYR": 3.967416, "MZN": 65.65, "NAD": 14.40709,
	"NGN": 282.7883, "NIO": 28.54047, "NOK": 8.418847, "NPR": 107.2698,
	"NZD": 1.374213, "OMR": 0.384977, "PAB": 1, "PEN": 3.279996,
	"PGK": 3.16225, "PHP": 47.23008, "PKR": 104.8037, "PLN": 3.969962,
	"PYG": 5582.961667, "QAR": 3.641597, "RON": 4.043564, "RSD": 111.12494,
	"RUB": 63.89577, "RWF": 754.015875, "SAR": 3.750409, "SBD": 7.90339,
	"SCR": 13.05092, "SDG": 6.083895, "SEK": 8.487254, "SGD": 1.347199,
	"SHP": 0.759963, "SLL": 5512.5, "SOS": 573.0905, "SRD": 7.0525,
	"STD": 22149.05, "SVC": 8.743546, "SYP": 216.086667, "SZL": 14.41707,
	"THB": 35.18589, "TJS": 7.8677, "TMT": 3.4682, "TND": 2.200574,
	"TOP": 2.2437, "TRY": 2.899136, "TTD": 6.660011, "TWD": 32.1565,
	"TZS": 2188.36, "UAH": 24.78282, "UGX": 3373.17, "USD": 1,
	"UY": 30.36919, "UZS": 2957.5, "VEF": 9.9785, "VND": 22310.933333,
	"VUV": 107.1, "WST": 2.513833, "XA": 0.00074, "XAF": 592.61702,
	"XAG": 0.04904, "XCD": 2.70302, "XDR": 0.718414, "XOF": 595.55702,
	"XPD": 0.0017, "XPF": 107.562375, "XPT": 0.0009, "YER": 250.009,
	"ZAR": 14.45476, "ZMK": 5221.025, "ZMW": 10.25155, "ZWL": 322.387236,

	// Obsolete currencies, approximated from their last published rates.
	"AFA": 68683, "ATS": 12, "AZM": 7890, "BEF": 36.5,
	"BGL": 1770, "CYP": 0.53, "DEM": 1.77, "ESP": 150,
	"FIM": 5, "FRF": 5.92, "GHC": 39582.8, "GRD": 308.0,
	"IEP": 0.71, "ITL": 1749, "LUF": 36.5, "MGF": 15850,
	"NLG": 2.0, "PTE": 181.05, "ROL": 40819.72, "RUR": 64100,
	"SDD": 644.91, "SIT": 216.4, "SKK": 27.0, "TMM": 17514,
	"TRL": 2895000, "UYU": 30.0, "VEB": 9975, "XAU": 0.001,
	"YUM": 2.0, "ZWD": 92233720368547760.00,
}
