package taxonomy

// Business-plan taxonomy: industry, sub-type, operating segment.
//
// Operating segments are keyed by sub-type where the source schema defines
// per-sub-type rules (Technology, Healthcare, Financial Services, and the
// first two retail sub-types) and by industry everywhere else. Sub-type
// rules win when both exist.

var businessIndustries = []string{
	"Technology",
	"Healthcare & Pharmaceuticals",
	"Financial Services",
	"Oil & Gas Exploration & Production",
	"Automotive Manufacturing & Sales",
	"Retail & E-commerce",
	"Real Estate & Construction",
	"Telecommunications",
	"Transportation & Logistics",
	"Energy & Utilities",
	"Agriculture & Agribusiness",
	"Food & Beverage Manufacturing",
	"Media & Entertainment",
	"Education & Training",
	"Aerospace & Defense",
	"Chemicals & Materials",
	"Hospitality & Tourism",
	"Mining & Metals",
	"Consumer Goods",
	"Biotechnology & Life Sciences",
	"Environmental Services",
	"Professional Services",
	"Government & Public Administration",
	"Nonprofit & NGOs",
	"Sports & Recreation",
	"Shipping & Maritime",
	"Electronics & Semiconductors",
	"Cloud Computing & AI Services",
	"Cybersecurity",
	"Logistics & Supply Chain Management",
}

var businessSubTypes = map[string][]string{
	"Technology":                          {"Software Development", "Cloud Services", "AI/ML", "Cybersecurity", "Hardware", "Semiconductors", "IT Consulting", "SaaS", "Gaming", "Data Analytics"},
	"Healthcare & Pharmaceuticals":        {"Hospitals", "Clinics", "Pharmaceuticals", "Biotechnology", "Medical Devices", "Telemedicine", "Health Insurance", "Research Labs", "Public Health", "Wellness"},
	"Financial Services":                  {"Banking", "Insurance", "Pension Funds", "Investment Banking", "Wealth Management", "FinTech", "Credit Unions", "Payment Processing", "Risk Management", "Accounting Services"},
	"Oil & Gas Exploration & Production":  {"Upstream Exploration", "Midstream Transport", "Downstream Refining", "Natural Gas", "Petrochemicals", "Oilfield Services", "Drilling", "Pipeline Operations", "Energy Trading", "Renewable Integration"},
	"Automotive Manufacturing & Sales":    {"OEM Manufacturing", "Electric Vehicles", "Parts & Components", "Dealerships", "Fleet Services", "Aftermarket", "Autonomous Vehicles", "Logistics", "Car Rentals", "Motorsports"},
	"Retail & E-commerce":                 {"Brick & Mortar", "Online Retail", "Wholesale", "Luxury Goods", "Fast Fashion", "Consumer Electronics", "Home Goods", "Marketplace Platforms", "Subscription Commerce", "Omnichannel Retail"},
	"Real Estate & Construction":          {"Residential Development", "Commercial Development", "Industrial Construction", "Property Management", "Real Estate Investment", "Architecture", "Urban Planning", "Green Building", "Infrastructure Projects", "Facilities Management"},
	"Telecommunications":                  {"Mobile Networks", "Fixed-Line Services", "Broadband", "Satellite Communications", "VoIP", "Telecom Equipment", "5G Services", "IoT Connectivity", "Data Centers", "Network Security"},
	"Transportation & Logistics":          {"Airlines", "Rail", "Trucking", "Shipping", "Warehousing", "Freight Forwarding", "Public Transit", "Supply Chain Management", "Courier Services", "Last-Mile Delivery"},
	"Energy & Utilities":                  {"Electric Power", "Renewables", "Nuclear", "Hydropower", "Grid Management", "Energy Storage", "Smart Grids", "Utility Services", "Energy Trading", "Waste-to-Energy"},
	"Agriculture & Agribusiness":          {"Crop Production", "Livestock", "AgriTech", "Farming Equipment", "Dairy", "Fisheries", "Organic Farming", "Agri Logistics", "Food Processing", "Agri Research"},
	"Food & Beverage Manufacturing":       {"Packaged Foods", "Beverages", "Alcoholic Drinks", "Snacks", "Frozen Foods", "Restaurants", "Catering", "Food Tech", "Nutritional Products", "Supply Chain"},
	"Media & Entertainment":               {"Film", "Television", "Music", "Publishing", "Gaming", "Streaming", "Advertising", "Events", "Sports Media", "Digital Content"},
	"Education & Training":                {"Primary Education", "Secondary Education", "Higher Education", "Vocational Training", "Online Learning", "Tutoring", "Corporate Training", "EdTech", "Research Institutes", "Libraries"},
	"Aerospace & Defense":                 {"Aircraft Manufacturing", "Defense Contractors", "Space Exploration", "Military Technology", "Avionics", "Maintenance", "Logistics", "Cyber Defense", "Satellites", "R&D"},
	"Chemicals & Materials":               {"Petrochemicals", "Plastics", "Industrial Chemicals", "Specialty Chemicals", "Construction Materials", "Metals", "Composites", "Nanomaterials", "Recycling", "Packaging Materials"},
	"Hospitality & Tourism":               {"Hotels", "Resorts", "Travel Agencies", "Cruise Lines", "Airbnb", "Event Management", "Theme Parks", "Tour Operators", "Restaurants", "Eco Tourism"},
	"Mining & Metals":                     {"Iron Ore", "Coal", "Gold", "Copper", "Rare Earths", "Steel", "Aluminum", "Mining Equipment", "Exploration", "Sustainability"},
	"Consumer Goods":                      {"Apparel", "Household Products", "Personal Care", "Electronics", "Furniture", "Toys", "Luxury Goods", "Sports Equipment", "DIY Products", "Packaging"},
	"Biotechnology & Life Sciences":       {"Genomics", "Drug Discovery", "Bioinformatics", "Clinical Trials", "Medical Devices", "Cell & Gene Therapy", "Agricultural Biotech", "Industrial Biotech", "Biodefense", "Regulatory Affairs"},
	"Environmental Services":              {"Waste Management", "Recycling", "Water Treatment", "Air Quality", "Environmental Consulting", "Renewable Energy Services", "Land Remediation", "Carbon Management", "Sustainability Reporting", "Conservation"},
	"Professional Services":               {"Legal Services", "Accounting", "Management Consulting", "Marketing & Advertising", "Architectural Services", "Engineering Services", "HR Consulting", "IT Services", "Research Services", "Public Relations"},
	"Government & Public Administration":  {"Federal Government", "State Government", "Local Government", "Public Safety", "Defense", "Social Services", "Urban Planning", "Public Transport", "International Relations", "Regulatory Agencies"},
	"Nonprofit & NGOs":                    {"Humanitarian Aid", "Environmental", "Healthcare", "Education", "Arts & Culture", "Animal Welfare", "Social Advocacy", "Community Development", "Foundations", "International Development"},
	"Sports & Recreation":                 {"Professional Sports", "Fitness Centers", "Sporting Goods", "Outdoor Recreation", "Esports", "Event Management", "Sports Marketing", "Amateur Sports", "Betting & Gaming", "Stadium Operations"},
	"Shipping & Maritime":                 {"Container Shipping", "Bulk Carriers", "Tankers", "Port Operations", "Maritime Law", "Shipbuilding", "Cruise Lines", "Logistics", "Maritime Security", "Offshore Services"},
	"Electronics & Semiconductors":        {"Semiconductor Manufacturing", "Consumer Electronics", "Industrial Electronics", "Electronic Components", "Embedded Systems", "Robotics", "Telecommunications Equipment", "Printed Circuit Boards (PCBs)", "Optoelectronics", "Sensors"},
	"Cloud Computing & AI Services":       {"IaaS", "PaaS", "SaaS", "AI Development", "Machine Learning Platforms", "Data Analytics", "Cloud Storage", "DevOps", "Cybersecurity", "Cloud Consulting"},
	"Cybersecurity":                       {"Network Security", "Endpoint Security", "Cloud Security", "Application Security", "Identity & Access Management", "Threat Intelligence", "Security Consulting", "Managed Security Services (MSSP)", "Data Loss Prevention (DLP)", "Compliance"},
	"Logistics & Supply Chain Management": {"Warehousing", "Transportation Management", "Inventory Management", "Procurement", "Freight Forwarding", "Last-Mile Delivery", "Reverse Logistics", "Supply Chain Consulting", "Logistics Technology", "Cold Chain"},
}

var segmentsBySubType = map[string][]string{
	// Technology
	"Software Development": {"Engineering & Design", "Information Technology", "R&D", "Sales & Marketing", "Executive Management", "Human Resources"},
	"Cloud Services":       {"Information Technology", "Sales & Marketing", "Executive Management", "Logistics", "Legal & Compliance", "Accounting & Finance"},
	"AI/ML":                {"R&D", "Engineering & Design", "Information Technology", "Sales & Marketing", "Executive Management", "Legal & Compliance"},
	"Cybersecurity":        {"Engineering & Design", "Information Technology", "R&D", "Sales & Marketing", "Executive Management", "Legal & Compliance"},
	"Hardware":             {"Engineering & Design", "R&D", "Logistics", "Sales & Marketing", "Executive Management", "Accounting & Finance"},
	"Semiconductors":       {"Engineering & Design", "R&D", "Logistics", "Sales & Marketing", "Executive Management", "Accounting & Finance"},
	"IT Consulting":        {"Information Technology", "Sales & Marketing", "Executive Management", "Human Resources", "Accounting & Finance", "Legal & Compliance"},
	"SaaS":                 {"Sales & Marketing", "Engineering & Design", "Information Technology", "Executive Management", "Human Resources", "Accounting & Finance"},
	"Gaming":               {"Engineering & Design", "R&D", "Sales & Marketing", "Executive Management", "Legal & Compliance", "Human Resources"},
	"Data Analytics":       {"R&D", "Engineering & Design", "Information Technology", "Sales & Marketing", "Executive Management", "Legal & Compliance"},

	// Healthcare & Pharmaceuticals
	"Hospitals":        {"Administrative", "Human Resources", "Information Technology", "Legal & Compliance", "Accounting & Finance", "Executive Management"},
	"Clinics":          {"Administrative", "Human Resources", "Information Technology", "Legal & Compliance", "Accounting & Finance", "Executive Management"},
	"Pharmaceuticals":  {"R&D", "Sales & Marketing", "Legal & Compliance", "Logistics", "Executive Management", "Accounting & Finance"},
	"Biotechnology":    {"R&D", "Engineering & Design", "Legal & Compliance", "Executive Management", "Accounting & Finance"},
	"Medical Devices":  {"Engineering & Design", "R&D", "Sales & Marketing", "Legal & Compliance", "Logistics", "Executive Management"},
	"Telemedicine":     {"Information Technology", "Administrative", "Legal & Compliance", "Sales & Marketing", "Executive Management"},
	"Health Insurance": {"Accounting & Finance", "Legal & Compliance", "Sales & Marketing", "Information Technology", "Executive Management", "Administrative"},
	"Research Labs":    {"R&D", "Administrative", "Legal & Compliance", "Accounting & Finance"},
	"Public Health":    {"Administrative", "R&D", "Legal & Compliance", "Executive Management"},
	"Wellness":         {"Sales & Marketing", "Administrative", "Human Resources", "Executive Management"},

	// Financial Services
	"Banking":             {"Accounting & Finance", "Legal & Compliance", "Information Technology", "Sales & Marketing", "Executive Management", "Human Resources"},
	"Insurance":           {"Accounting & Finance", "Sales & Marketing", "Legal & Compliance", "Information Technology", "Executive Management"},
	"Pension Funds":       {"Accounting & Finance", "Legal & Compliance", "Executive Management", "Administrative"},
	"Investment Banking":  {"Accounting & Finance", "Legal & Compliance", "Information Technology", "Sales & Marketing", "Executive Management"},
	"Wealth Management":   {"Accounting & Finance", "Sales & Marketing", "Legal & Compliance", "Executive Management"},
	"FinTech":             {"Engineering & Design", "Information Technology", "Sales & Marketing", "Legal & Compliance", "Executive Management"},
	"Credit Unions":       {"Accounting & Finance", "Information Technology", "Sales & Marketing", "Human Resources", "Executive Management"},
	"Payment Processing":  {"Information Technology", "Engineering & Design", "Sales & Marketing", "Legal & Compliance", "Accounting & Finance"},
	"Risk Management":     {"Accounting & Finance", "Legal & Compliance", "Information Technology", "Executive Management"},
	"Accounting Services": {"Accounting & Finance", "Legal & Compliance", "Sales & Marketing", "Executive Management"},

	// Retail & E-commerce (only the first two sub-types carry their own rules)
	"Brick & Mortar": {"Sales & Marketing", "Logistics", "Human Resources", "Accounting & Finance", "Executive Management", "Administrative"},
	"Online Retail":  {"Sales & Marketing", "Logistics", "Information Technology", "Human Resources", "Accounting & Finance", "Executive Management"},
}

var segmentsByIndustry = map[string][]string{
	"Oil & Gas Exploration & Production":  {"Engineering & Design", "Logistics", "R&D", "Legal & Compliance", "Accounting & Finance", "Executive Management"},
	"Automotive Manufacturing & Sales":    {"Engineering & Design", "Logistics", "Sales & Marketing", "R&D", "Accounting & Finance", "Executive Management"},
	"Real Estate & Construction":          {"Engineering & Design", "Sales & Marketing", "Legal & Compliance", "Accounting & Finance", "Executive Management", "Administrative"},
	"Telecommunications":                  {"Engineering & Design", "Information Technology", "Sales & Marketing", "Legal & Compliance", "Executive Management"},
	"Transportation & Logistics":          {"Logistics", "Information Technology", "Sales & Marketing", "Accounting & Finance", "Human Resources", "Executive Management"},
	"Energy & Utilities":                  {"Engineering & Design", "Logistics", "Legal & Compliance", "R&D", "Executive Management", "Accounting & Finance"},
	"Agriculture & Agribusiness":          {"Logistics", "R&D", "Sales & Marketing", "Accounting & Finance", "Executive Management"},
	"Food & Beverage Manufacturing":       {"Logistics", "R&D", "Sales & Marketing", "Accounting & Finance", "Executive Management"},
	"Media & Entertainment":               {"Sales & Marketing", "R&D", "Legal & Compliance", "Accounting & Finance", "Executive Management"},
	"Education & Training":                {"Administrative", "Human Resources", "Sales & Marketing", "Executive Management", "Information Technology"},
	"Aerospace & Defense":                 {"Engineering & Design", "R&D", "Logistics", "Legal & Compliance", "Executive Management", "Information Technology"},
	"Chemicals & Materials":               {"R&D", "Engineering & Design", "Logistics", "Sales & Marketing", "Executive Management"},
	"Hospitality & Tourism":               {"Administrative", "Sales & Marketing", "Human Resources", "Accounting & Finance", "Executive Management"},
	"Mining & Metals":                     {"Engineering & Design", "Logistics", "R&D", "Legal & Compliance", "Executive Management"},
	"Consumer Goods":                      {"Sales & Marketing", "Logistics", "R&D", "Accounting & Finance", "Executive Management"},
	"Biotechnology & Life Sciences":       {"R&D", "Legal & Compliance", "Engineering & Design", "Accounting & Finance", "Executive Management"},
	"Environmental Services":              {"R&D", "Legal & Compliance", "Engineering & Design", "Sales & Marketing", "Executive Management"},
	"Professional Services":               {"Sales & Marketing", "Human Resources", "Accounting & Finance", "Legal & Compliance", "Executive Management"},
	"Government & Public Administration":  {"Administrative", "Legal & Compliance", "Information Technology", "Accounting & Finance", "Executive Management"},
	"Nonprofit & NGOs":                    {"Administrative", "Human Resources", "Accounting & Finance", "Executive Management", "Sales & Marketing"},
	"Sports & Recreation":                 {"Sales & Marketing", "Administrative", "Legal & Compliance", "Executive Management"},
	"Shipping & Maritime":                 {"Logistics", "Legal & Compliance", "Engineering & Design", "Sales & Marketing", "Executive Management"},
	"Electronics & Semiconductors":        {"Engineering & Design", "R&D", "Logistics", "Sales & Marketing", "Executive Management"},
	"Cloud Computing & AI Services":       {"Engineering & Design", "Information Technology", "R&D", "Sales & Marketing", "Executive Management"},
	"Cybersecurity":                       {"Information Technology", "Engineering & Design", "R&D", "Sales & Marketing", "Legal & Compliance", "Executive Management"},
	"Logistics & Supply Chain Management": {"Logistics", "Information Technology", "Sales & Marketing", "Accounting & Finance", "Executive Management"},
}
