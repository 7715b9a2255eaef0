package taxonomy

// Individual-plan taxonomy: category, sub-category, objective. Embedded so
// option resolution never depends on a fetch.

var soloCategories = []string{
	"Entertainment & Creative Arts",
	"Professional Services",
	"Entrepreneurship & Startups",
	"Education & Knowledge Work",
	"Lifestyle & Independent Professions",
}

var soloSubCategories = map[string][]string{
	"Entertainment & Creative Arts":       {"Music", "Visual Arts", "Film & Video", "Performing Arts", "Fashion & Design", "Writing & Publishing"},
	"Professional Services":               {"Management Consulting", "Freelance Tech & Development", "Legal & Compliance Services", "Financial Advisory"},
	"Entrepreneurship & Startups":         {"Startup Founder", "E-commerce Entrepreneur", "Social Enterprise", "Innovation & Tech Commercialization"},
	"Education & Knowledge Work":          {"Tutoring & Coaching", "Digital Content Creation", "Independent Research & Writing"},
	"Lifestyle & Independent Professions": {"Health & Wellness Coaching", "Culinary Arts", "Artisan Crafts & Trades", "Professional Photography"},
}

var soloObjectives = map[string][]string{
	"Music":                               {"Produce Album", "Build Audience", "Monetize Skills", "Book Gigs"},
	"Visual Arts":                         {"Launch Portfolio", "Sell Artwork", "Build Audience", "Secure Commissions"},
	"Film & Video":                        {"Produce Short Film", "Build YouTube Channel", "Monetize Content", "Freelance Videography"},
	"Performing Arts":                     {"Secure Auditions", "Produce a Show", "Build Audience", "Teach a Workshop"},
	"Fashion & Design":                    {"Launch Clothing Line", "Build Portfolio", "Freelance Design Work", "Open E-commerce Store"},
	"Writing & Publishing":                {"Publish a Book", "Build Blog Audience", "Freelance Writing Gigs", "Start a Newsletter"},
	"Management Consulting":               {"Acquire Clients", "Develop Frameworks", "Build Personal Brand", "Specialize in a Niche"},
	"Freelance Tech & Development":        {"Find Freelance Projects", "Build a SaaS Product", "Contribute to Open Source", "Automate Workflows"},
	"Legal & Compliance Services":         {"Start Solo Practice", "Offer Niche Services", "Automate Document Review", "Client Acquisition"},
	"Financial Advisory":                  {"Build Client Base", "Develop Financial Models", "Offer Specialized Advice", "Automate Reporting"},
	"Startup Founder":                     {"Secure Funding", "Build MVP", "Achieve Product-Market Fit", "Scale Operations"},
	"E-commerce Entrepreneur":             {"Launch Online Store", "Optimize Supply Chain", "Market Products", "Increase Conversion Rate"},
	"Social Enterprise":                   {"Define Social Impact", "Secure Grants/Funding", "Measure Outcomes", "Build Community"},
	"Innovation & Tech Commercialization": {"Patent Technology", "Find Market Application", "Create Business Plan", "License Technology"},
	"Tutoring & Coaching":                 {"Acquire Students/Clients", "Develop Curriculum", "Build Online Platform", "Market Services"},
	"Digital Content Creation":            {"Build Audience", "Monetize Content", "Create Online Course", "Launch Podcast/YouTube"},
	"Independent Research & Writing":      {"Publish Research Paper", "Write a Book", "Secure Grants", "Consulting"},
	"Health & Wellness Coaching":          {"Build Client Base", "Develop Coaching Programs", "Market Services", "Host Workshops"},
	"Culinary Arts":                       {"Start Catering Business", "Personal Chef Services", "Launch Food Product", "Create Food Blog"},
	"Artisan Crafts & Trades":             {"Sell on Etsy/Marketplaces", "Teach Workshops", "Streamline Production", "Wholesale Orders"},
	"Professional Photography":            {"Build Portfolio", "Book Clients (Weddings, Portraits)", "Sell Stock Photos", "Specialize in a Niche"},
}
