package city

import "github.com/FACorreiaa/go-saudi-city-events/internal/types"

// saudiCities is the fixed catalog, in display order.
var saudiCities = []types.City{
	{
		ID:            "riyadh",
		Name:          "Riyadh",
		LocalizedName: "الرياض",
		Description:   "The vibrant capital where tradition meets the futuristic skyline of Najd.",
	},
	{
		ID:            "jeddah",
		Name:          "Jeddah",
		LocalizedName: "جدة",
		Description:   "The gateway to the Red Sea, blending historic Al-Balad with modern luxury.",
	},
	{
		ID:            "alula",
		Name:          "Al-Ula",
		LocalizedName: "العلا",
		Description:   "An ancient oasis of wonders, featuring the mirror-clad Maraya and Hegra.",
	},
	{
		ID:            "dammam",
		Name:          "Dammam",
		LocalizedName: "الدمام",
		Description:   "The Eastern Province hub, famous for its sprawling corniche and coastal breeze.",
	},
	{
		ID:            "abha",
		Name:          "Abha",
		LocalizedName: "أبها",
		Description:   "The capital of the Asir region, perched high above the clouds in the mountains.",
	},
	{
		ID:            "medina",
		Name:          "Medina",
		LocalizedName: "المدينة",
		Description:   "The city of the Prophet, radiating a unique sense of peace and historical depth.",
	},
	{
		ID:            "mecca",
		Name:          "Mecca",
		LocalizedName: "مكة",
		Description:   "The spiritual heart of Islam, hosting the iconic Great Mosque.",
	},
	{
		ID:            "taif",
		Name:          "Taif",
		LocalizedName: "الطائف",
		Description:   "The official summer capital, known for its rose fields and scenic mountain passes.",
	},
	{
		ID:            "tabuk",
		Name:          "Tabuk",
		LocalizedName: "تبوك",
		Description:   "A northern jewel with diverse landscapes ranging from NEOM to desert canyons.",
	},
}
