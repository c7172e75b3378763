package knowledge

import "github.com/nutmegai/nutmeg/internal/models"

var civilRegistryContact = models.ContactInfo{
	Office:  "Civil Registry Office",
	Address: "Ministerial Complex, Botanical Gardens, St. George's",
	Phone:   "+1 (473) 440-2251",
	Email:   "civilregistry@gov.gd",
	Hours:   "Monday-Friday, 8:00 AM - 4:00 PM",
}

// builtinRecords is the hand-authored knowledge base. Every document type in
// the closed set has exactly one record; records are immutable at runtime.
var builtinRecords = map[models.DocumentType]*models.DocumentRecord{
	models.DocBirthCertificate: {
		Information: "Birth certificates are official documents that record a person's birth. They are essential for various legal purposes including school enrollment, passport applications, and government services.",
		Requirements: []string{
			"Completed birth registration form",
			"Parent's valid identification (passport, national ID, or driver's license)",
			"Hospital birth record or midwife's certificate",
			"Witness statement (if applicable)",
			"Payment of EC$25.00 fee",
		},
		ProcessSteps: []string{
			"Visit the Civil Registry Office in St. George's",
			"Submit all required documents",
			"Pay the application fee",
			"Wait for processing (3-5 business days)",
			"Collect the certificate in person or arrange for delivery",
		},
		ContactInfo:   civilRegistryContact,
		EstimatedTime: "3-5 business days",
		Fees:          "EC$25.00",
	},
	models.DocDeathCertificate: {
		Information: "Death certificates are official documents that record a person's death. They are required for legal proceedings, insurance claims, and estate matters.",
		Requirements: []string{
			"Medical certificate of death from a doctor",
			"Funeral director's statement",
			"Next of kin's identification",
			"Completed application form",
			"Payment of EC$20.00 fee",
		},
		ProcessSteps: []string{
			"Obtain medical certificate of death",
			"Contact funeral director for statement",
			"Visit Civil Registry Office",
			"Submit all documents and payment",
			"Wait for processing (2-3 business days)",
			"Collect certificate",
		},
		ContactInfo:   civilRegistryContact,
		EstimatedTime: "2-3 business days",
		Fees:          "EC$20.00",
	},
	models.DocMarriageCertificate: {
		Information: "Marriage certificates are official documents that prove a legal marriage. They are required for name changes, insurance, and other legal purposes.",
		Requirements: []string{
			"Marriage license (obtained before ceremony)",
			"Officiant's certificate of marriage",
			"Witness statements",
			"Both parties' identification",
			"Payment of EC$30.00 fee",
		},
		ProcessSteps: []string{
			"Apply for marriage license (21 days notice required)",
			"Conduct marriage ceremony with licensed officiant",
			"Submit marriage certificate to Civil Registry",
			"Wait for official registration",
			"Obtain certified copy of marriage certificate",
		},
		ContactInfo:   civilRegistryContact,
		EstimatedTime: "5-7 business days",
		Fees:          "EC$30.00",
	},
	models.DocDivorceDecree: {
		Information: "Divorce decrees are court-issued documents that legally end a marriage. They are required for remarriage and other legal proceedings.",
		Requirements: []string{
			"Petition for divorce",
			"Marriage certificate",
			"Grounds for divorce documentation",
			"Legal representation (recommended)",
			"Court filing fees",
		},
		ProcessSteps: []string{
			"Consult with a lawyer",
			"File petition with the High Court",
			"Serve papers to spouse",
			"Attend court hearings",
			"Obtain final decree",
			"Register decree with Civil Registry",
		},
		ContactInfo: models.ContactInfo{
			Office:  "High Court of Grenada",
			Address: "Carenage, St. George's",
			Phone:   "+1 (473) 440-2251",
			Email:   "courts@gov.gd",
			Hours:   "Monday-Friday, 8:00 AM - 4:00 PM",
		},
		EstimatedTime: "3-6 months",
		Fees:          "Varies based on complexity",
	},
	models.DocPropertyDeed: {
		Information: "Property deeds are legal documents that prove ownership of real estate. They are essential for property transactions and inheritance matters.",
		Requirements: []string{
			"Survey plan of the property",
			"Title search report",
			"Transfer documents",
			"Stamp duty payment",
			"Legal representation (required)",
		},
		ProcessSteps: []string{
			"Conduct title search",
			"Obtain survey plan",
			"Prepare transfer documents",
			"Pay stamp duty",
			"Register with Land Registry",
			"Obtain certified copy of deed",
		},
		ContactInfo: models.ContactInfo{
			Office:  "Land Registry Office",
			Address: "Ministerial Complex, Botanical Gardens, St. George's",
			Phone:   "+1 (473) 440-2251",
			Email:   "landregistry@gov.gd",
			Hours:   "Monday-Friday, 8:00 AM - 4:00 PM",
		},
		EstimatedTime: "2-4 weeks",
		Fees:          "Based on property value",
	},
	models.DocBusinessRegistration: {
		Information: "Business registration is required for operating a business in Grenada. It provides legal recognition and tax identification.",
		Requirements: []string{
			"Business name reservation",
			"Completed registration form",
			"Business plan",
			"Identification documents",
			"Registration fee payment",
		},
		ProcessSteps: []string{
			"Reserve business name",
			"Complete registration application",
			"Submit required documents",
			"Pay registration fees",
			"Obtain business license",
			"Register for taxes",
		},
		ContactInfo: models.ContactInfo{
			Office:  "Companies Registry",
			Address: "Ministerial Complex, Botanical Gardens, St. George's",
			Phone:   "+1 (473) 440-2251",
			Email:   "companies@gov.gd",
			Hours:   "Monday-Friday, 8:00 AM - 4:00 PM",
		},
		EstimatedTime: "5-10 business days",
		Fees:          "EC$200.00 - EC$500.00",
	},
	models.DocPassportApplication: {
		Information: "Grenadian passports are travel documents issued to citizens. They are required for international travel and serve as proof of citizenship.",
		Requirements: []string{
			"Completed passport application form",
			"Birth certificate",
			"National ID or previous passport",
			"Two passport photos",
			"Payment of passport fee",
		},
		ProcessSteps: []string{
			"Complete application form",
			"Gather required documents",
			"Visit Passport Office",
			"Submit application and payment",
			"Wait for processing",
			"Collect passport",
		},
		ContactInfo: models.ContactInfo{
			Office:  "Passport Office",
			Address: "Ministerial Complex, Botanical Gardens, St. George's",
			Phone:   "+1 (473) 440-2251",
			Email:   "passports@gov.gd",
			Hours:   "Monday-Friday, 8:00 AM - 4:00 PM",
		},
		EstimatedTime: "10-15 business days",
		Fees:          "EC$150.00",
	},
	models.DocNationalID: {
		Information: "National ID cards are official identification documents for Grenadian citizens. They are required for various government services and transactions.",
		Requirements: []string{
			"Completed ID application form",
			"Birth certificate",
			"Proof of address",
			"Passport photo",
			"Application fee",
		},
		ProcessSteps: []string{
			"Complete application form",
			"Gather required documents",
			"Visit ID Office",
			"Submit application and payment",
			"Wait for processing",
			"Collect ID card",
		},
		ContactInfo: models.ContactInfo{
			Office:  "National ID Office",
			Address: "Ministerial Complex, Botanical Gardens, St. George's",
			Phone:   "+1 (473) 440-2251",
			Email:   "nationalid@gov.gd",
			Hours:   "Monday-Friday, 8:00 AM - 4:00 PM",
		},
		EstimatedTime: "7-10 business days",
		Fees:          "EC$50.00",
	},
	models.DocVoterRegistration: {
		Information: "Voter registration allows citizens to participate in elections. Registration is required to vote in national and local elections.",
		Requirements: []string{
			"Completed voter registration form",
			"Proof of citizenship",
			"Proof of address",
			"Identification document",
			"Age 18 or older",
		},
		ProcessSteps: []string{
			"Complete registration form",
			"Gather required documents",
			"Visit Electoral Office",
			"Submit application",
			"Wait for verification",
			"Receive voter ID card",
		},
		ContactInfo: models.ContactInfo{
			Office:  "Electoral Office",
			Address: "Ministerial Complex, Botanical Gardens, St. George's",
			Phone:   "+1 (473) 440-2251",
			Email:   "electoral@gov.gd",
			Hours:   "Monday-Friday, 8:00 AM - 4:00 PM",
		},
		EstimatedTime: "5-7 business days",
		Fees:          "Free",
	},
	models.DocTaxDocuments: {
		Information: "Tax documents include various forms and certificates required for tax compliance and business operations in Grenada.",
		Requirements: []string{
			"Business registration certificate",
			"Financial records",
			"Completed tax forms",
			"Supporting documentation",
			"Payment of taxes due",
		},
		ProcessSteps: []string{
			"Register for tax identification",
			"Maintain proper records",
			"Complete tax returns",
			"Submit to Inland Revenue",
			"Pay taxes due",
			"Obtain tax clearance certificate",
		},
		ContactInfo: models.ContactInfo{
			Office:  "Inland Revenue Department",
			Address: "Ministerial Complex, Botanical Gardens, St. George's",
			Phone:   "+1 (473) 440-2251",
			Email:   "tax@gov.gd",
			Hours:   "Monday-Friday, 8:00 AM - 4:00 PM",
		},
		EstimatedTime: "Varies by document type",
		Fees:          "Varies by tax type",
	},
}

// descriptions are the short human-readable labels returned by the document
// type listing endpoint.
var descriptions = map[models.DocumentType]string{
	models.DocBirthCertificate:     "Birth registration and certificate requests",
	models.DocDeathCertificate:     "Death certificate applications",
	models.DocMarriageCertificate:  "Marriage registration and certificates",
	models.DocDivorceDecree:        "Divorce proceedings and decrees",
	models.DocPropertyDeed:         "Property registration and deeds",
	models.DocBusinessRegistration: "Business and company registration",
	models.DocPassportApplication:  "Passport applications and renewals",
	models.DocNationalID:           "National ID card applications",
	models.DocVoterRegistration:    "Voter registration and updates",
	models.DocTaxDocuments:         "Tax-related documents and filings",
}
