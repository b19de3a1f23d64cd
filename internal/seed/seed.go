// Package seed holds the initial catalog reference data: the product
// categories, the MLM companies, and a sample set of prospect leads.
package seed

import (
	"fmt"

	"github.com/leadflow/leadflow/internal/model"
)

// Categories returns the seeded product categories.
func Categories() []model.Category {
	return []model.Category{
		{Name: "Health & Nutrition", Description: "Dietary supplements, weight-management and wellness products"},
		{Name: "Beauty", Description: "Skincare, cosmetics and personal care items"},
		{Name: "Essential Oils", Description: "Aromatherapy oils and diffusers"},
		{Name: "Financial Services", Description: "Insurance, investments and fintech offerings"},
		{Name: "Travel", Description: "Travel clubs and discount packages"},
		{Name: "Education", Description: "Online courses and coaching"},
		{Name: "Home Goods", Description: "Household products and cleaning supplies"},
	}
}

// Companies returns the seeded companies. Category IDs refer to the
// insertion order of Categories (1-based).
func Companies() []model.Company {
	return []model.Company{
		{Name: "NutriLife", CategoryID: 1, Overview: "Global provider of nutritional supplements.", WebsiteURL: "https://www.nutrilife.example", Country: "United States"},
		{Name: "Beauty Bloom", CategoryID: 2, Overview: "Skin care and beauty products.", WebsiteURL: "https://www.beautybloom.example", Country: "Canada"},
		{Name: "AromaCo", CategoryID: 3, Overview: "Essential oils and diffusers.", WebsiteURL: "https://www.aromaco.example", Country: "United Kingdom"},
		{Name: "FinSecure", CategoryID: 4, Overview: "Network marketing with insurance and investment products.", WebsiteURL: "https://www.finsecure.example", Country: "Australia"},
		{Name: "TravelWell", CategoryID: 5, Overview: "Discount travel packages and memberships.", WebsiteURL: "https://www.travelwell.example", Country: "South Africa"},
		{Name: "EduWorks", CategoryID: 6, Overview: "Online coaching and business courses.", WebsiteURL: "https://www.eduworks.example", Country: "India"},
		{Name: "HomeBright", CategoryID: 7, Overview: "Home goods and eco-friendly cleaning supplies.", WebsiteURL: "https://www.homebright.example", Country: "United States"},
	}
}

// Leads returns the sample prospect leads, rotated across the seeded
// companies so every category has candidates.
func Leads() []model.Lead {
	names := []string{
		"Alice Brown", "Bob Smith", "Carlos Diaz", "Diana Evans", "Ethan Fox",
		"Fiona Green", "George Harris", "Hannah Ito", "Ivan Jensen", "Julia Kim",
		"Kyle Lee", "Lina Martinez", "Mohamed Nasir", "Nina O'Connor", "Oscar Perez",
		"Patricia Quinn", "Quincy Rogers", "Riya Singh", "Sam Taylor", "Tamara Upton",
	}

	companies := Companies()
	leads := make([]model.Lead, 0, len(names))
	for i, name := range names {
		idx := i + 1
		companyID := int64(idx%len(companies)) + 1
		leads = append(leads, model.Lead{
			FullName:   name,
			Email:      fmt.Sprintf("user%d@example.com", idx),
			Phone:      fmt.Sprintf("+100000000%02d", idx),
			Country:    companies[companyID-1].Country,
			CompanyID:  companyID,
			SourceInfo: `{"source":"seed"}`,
		})
	}
	return leads
}
