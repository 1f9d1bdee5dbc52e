package mail

// Template data for the three transactional emails.

type enquiryTemplateData struct {
	ClientName string
	FullName   string
	Email      string
	Phone      string
	Service    string
	Message    string
}

type agreementLinkTemplateData struct {
	FirstName    string
	BusinessName string
	AgreementURL string
}

type signedTemplateData struct {
	ContactName  string
	BusinessName string
	MonthlyFee   int
	SignedDate   string
	SignedFromIP string
	AgreementURL string
}
