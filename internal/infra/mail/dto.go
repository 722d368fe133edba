package mail

type LeadApprovedEmailData struct {
	VendorName string
	LeadTitle  string
}

type LeadRejectedEmailData struct {
	VendorName string
	LeadTitle  string
	Reason     string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}
