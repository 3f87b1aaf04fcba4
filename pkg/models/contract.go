package models

// ContractForm mirrors the contract form state sent by the frontend.
// Developer fields are fixed on the page; client fields are user-edited.
type ContractForm struct {
	DeveloperName    string `json:"developerName"`
	DeveloperLicense string `json:"developerLicense"`
	DeveloperAddress string `json:"developerAddress"`
	ClientFullName   string `json:"clientFullName"`
	ClientLicense    string `json:"clientLicense"`
	ClientAddress    string `json:"clientAddress"`
	ClientEmail      string `json:"clientEmail"`
	ContractDate     string `json:"contractDate"`
}

// ContractRequest is the data structure coming from the contract signing page
type ContractRequest struct {
	FormData           ContractForm `json:"formData"`
	DeveloperSignature string       `json:"developerSignature"`
	ClientSignature    string       `json:"clientSignature"`
	PDFBase64          string       `json:"pdfBase64"`
}

// ContractData is everything the contract renderer needs: the form fields
// plus the two signature images. The developer signature comes from a fixed
// asset, the client signature from the capture component.
type ContractData struct {
	Form               ContractForm
	DeveloperSignature SignatureImage
	ClientSignature    SignatureImage
}
