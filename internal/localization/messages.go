package localization

import "golang.org/x/text/language"

// Locale codes used as LocalizedText keys.
const (
	LocaleEnglish = "en"
	LocaleTurkish = "tr"
)

const (
	VatRateStandard Key = "vat.rate.standard"
	VatRateReduced  Key = "vat.rate.reduced"
	VatRateZero     Key = "vat.rate.zero"
	VatRateCustom   Key = "vat.rate.custom"

	VatNetRefundDue Key = "vat.net.refund_due"
	VatNetPayable   Key = "vat.net.payable"
	VatNetNil       Key = "vat.net.nil"

	CategoryUncategorized Key = "category.uncategorized"
)

// StatusDescriptionKey returns the key describing an invoice status.
func StatusDescriptionKey(status string) Key {
	return Key("invoice.status." + status)
}

// defaultMessages are printf formats; a literal percent sign is %%.
var defaultMessages = map[Key]map[language.Tag]string{
	VatRateStandard: {
		language.English: "Standard Rate (20%%)",
		language.Turkish: "Standart Oran (%%20)",
	},
	VatRateReduced: {
		language.English: "Reduced Rate (5%%)",
		language.Turkish: "İndirimli Oran (%%5)",
	},
	VatRateZero: {
		language.English: "Zero Rate (0%%)",
		language.Turkish: "Sıfır Oran (%%0)",
	},
	VatRateCustom: {
		language.English: "Custom Rate (%s%%)",
		language.Turkish: "Özel Oran (%%%s)",
	},
	VatNetRefundDue: {
		language.English: "VAT refund due from HMRC: £%s",
		language.Turkish: "HMRC'den alınacak KDV iadesi: £%s",
	},
	VatNetPayable: {
		language.English: "VAT payable to HMRC: £%s",
		language.Turkish: "HMRC'ye ödenecek KDV: £%s",
	},
	VatNetNil: {
		language.English: "No VAT payable or refundable for this period",
		language.Turkish: "Bu dönem için ödenecek veya iade alınacak KDV yok",
	},
	CategoryUncategorized: {
		language.English: "Uncategorized",
		language.Turkish: "Kategorisiz",
	},
	StatusDescriptionKey("draft"): {
		language.English: "Draft - not yet sent to the customer",
		language.Turkish: "Taslak - henüz müşteriye gönderilmedi",
	},
	StatusDescriptionKey("pending"): {
		language.English: "Pending - sent and awaiting payment",
		language.Turkish: "Beklemede - gönderildi, ödeme bekleniyor",
	},
	StatusDescriptionKey("paid"): {
		language.English: "Paid - payment received",
		language.Turkish: "Ödendi - ödeme alındı",
	},
	StatusDescriptionKey("overdue"): {
		language.English: "Overdue - payment is past the due date",
		language.Turkish: "Gecikmiş - ödeme vadesi geçti",
	},
	StatusDescriptionKey("cancelled"): {
		language.English: "Cancelled - no further changes allowed",
		language.Turkish: "İptal edildi - başka değişiklik yapılamaz",
	},
	StatusDescriptionKey("refunded"): {
		language.English: "Refunded - payment returned to the customer",
		language.Turkish: "İade edildi - ödeme müşteriye geri verildi",
	},
}
