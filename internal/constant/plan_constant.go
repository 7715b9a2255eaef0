package constant

// PlanCatalogEntry is one row of the static pricing table. Annual prices
// are per month, billed yearly. Enterprise OEM is negotiated.
type PlanCatalogEntry struct {
	Id           string
	Name         string
	PriceMonthly float64
	PriceAnnual  float64
	AddOn        bool
	Featured     bool
}

var PlanCatalog = []PlanCatalogEntry{
	{Id: "solo", Name: "SMEPro Solo", PriceMonthly: 25, PriceAnnual: 20},
	{Id: "business", Name: "SMEPro Business", PriceMonthly: 55, PriceAnnual: 44, Featured: true},
	{Id: "solo-plus", Name: "Solo+ (Addon)", PriceMonthly: 45, PriceAnnual: 36, AddOn: true},
	{Id: "business-adv", Name: "Business Adv (Addon)", PriceMonthly: 95, PriceAnnual: 76, AddOn: true},
	{Id: "enterprise-oem", Name: "Enterprise OEM", PriceMonthly: 0, PriceAnnual: 0, AddOn: true},
}
