// Package seed holds the reference office catalog loaded by the ops CLI.
package seed

import "workspace-booking/internal/domain/office"

// Offices returns a fresh copy of the reference catalog on every call.
func Offices() []office.Params {
	out := make([]office.Params, len(catalog))
	for i, p := range catalog {
		p.Amenities = append([]string(nil), p.Amenities...)
		out[i] = p
	}
	return out
}

var catalog = []office.Params{
	{
		Name:             "Executive Meeting Room - Connaught Place",
		Type:             office.TypeMeetingRoom,
		Location:         "Connaught Place, Delhi",
		Address:          "Block A, Connaught Place, New Delhi 110001",
		Latitude:         28.6315,
		Longitude:        77.2167,
		BasePricePerHour: 500,
		Capacity:         10,
		Amenities:        []string{office.AmenityWiFi, office.AmenityProjector, office.AmenityWhiteboard, office.AmenityVideoConferencing, office.AmenityCoffeeTea, office.AmenityAirConditioning},
		Description:      "Premium meeting room with state-of-the-art facilities in the heart of Delhi",
	},
	{
		Name:             "Conference Center - Nehru Place",
		Type:             office.TypeMeetingRoom,
		Location:         "Nehru Place, Delhi",
		Address:          "Nehru Place, New Delhi 110019",
		Latitude:         28.5494,
		Longitude:        77.2500,
		BasePricePerHour: 450,
		Capacity:         8,
		Amenities:        []string{office.AmenityWiFi, office.AmenityProjector, office.AmenityWhiteboard, office.AmenityVideoConferencing, office.AmenityCoffeeTea},
		Description:      "Modern meeting space in Delhi business hub",
	},
	{
		Name:             "Boardroom - Saket",
		Type:             office.TypeMeetingRoom,
		Location:         "Saket, Delhi",
		Address:          "District Centre, Saket, New Delhi 110017",
		Latitude:         28.5244,
		Longitude:        77.2066,
		BasePricePerHour: 480,
		Capacity:         12,
		Amenities:        []string{office.AmenityWiFi, office.AmenityProjector, office.AmenityVideoConferencing, office.AmenityWhiteboard, office.AmenityCoffeeTea, office.AmenityParking},
		Description:      "Professional boardroom for executive meetings",
	},
	{
		Name:             "Meeting Suite - Vasant Vihar",
		Type:             office.TypeMeetingRoom,
		Location:         "Vasant Vihar, Delhi",
		Address:          "Vasant Vihar, New Delhi 110057",
		Latitude:         28.5677,
		Longitude:        77.1588,
		BasePricePerHour: 520,
		Capacity:         10,
		Amenities:        []string{office.AmenityWiFi, office.AmenityProjector, office.AmenityWhiteboard, office.AmenityVideoConferencing, office.AmenityCoffeeTea, office.AmenityAirConditioning},
		Description:      "Elegant meeting space in upscale neighborhood",
	},
	{
		Name:             "Day Office - Connaught Place",
		Type:             office.TypeDayOffice,
		Location:         "Connaught Place, Delhi",
		Address:          "Inner Circle, Connaught Place, New Delhi 110001",
		Latitude:         28.6320,
		Longitude:        77.2190,
		BasePricePerHour: 380,
		Capacity:         5,
		Amenities:        []string{office.AmenityWiFi, office.AmenityPrinterScanner, office.AmenityAirConditioning, office.AmenityCoffeeTea},
		Description:      "Convenient day office in central Delhi",
	},
	{
		Name:             "Business Day Office - Saket",
		Type:             office.TypeDayOffice,
		Location:         "Saket, Delhi",
		Address:          "Select Citywalk, Saket, New Delhi 110017",
		Latitude:         28.5250,
		Longitude:        77.2070,
		BasePricePerHour: 360,
		Capacity:         4,
		Amenities:        []string{office.AmenityWiFi, office.AmenityPrinterScanner, office.AmenityCoffeeTea, office.AmenityParking},
		Description:      "Day office near shopping district",
	},
	{
		Name:             "CoWork Hub - Nehru Place",
		Type:             office.TypeDayCoworking,
		Location:         "Nehru Place, Delhi",
		Address:          "Nehru Place, New Delhi 110019",
		Latitude:         28.5494,
		Longitude:        77.2500,
		BasePricePerHour: 150,
		Capacity:         50,
		Amenities:        []string{office.AmenityWiFi, office.AmenityCoffeeTea, office.AmenityAirConditioning, office.AmenityPrinterScanner},
		Description:      "Vibrant coworking space with hot desks",
	},
	{
		Name:             "Startup Space - Connaught Place",
		Type:             office.TypeDayCoworking,
		Location:         "Connaught Place, Delhi",
		Address:          "Outer Circle, Connaught Place, New Delhi 110001",
		Latitude:         28.6340,
		Longitude:        77.2200,
		BasePricePerHour: 170,
		Capacity:         40,
		Amenities:        []string{office.AmenityWiFi, office.AmenityCoffeeTea, office.AmenityPrinterScanner, office.AmenityAirConditioning},
		Description:      "Collaborative workspace for entrepreneurs",
	},
	{
		Name:             "Premium Private Office - Saket",
		Type:             office.TypePrivateOffice,
		Location:         "Saket, Delhi",
		Address:          "District Centre, Saket, New Delhi 110017",
		Latitude:         28.5244,
		Longitude:        77.2066,
		BasePricePerHour: 700,
		Capacity:         10,
		Amenities:        []string{office.AmenityWiFi, office.AmenityPrinterScanner, office.AmenityWhiteboard, office.AmenityAirConditioning, office.AmenityCoffeeTea, office.AmenityParking},
		Description:      "Exclusive private office suite with premium furnishings",
	},
	{
		Name:             "Executive Office - Connaught Place",
		Type:             office.TypePrivateOffice,
		Location:         "Connaught Place, Delhi",
		Address:          "Connaught Place, New Delhi 110001",
		Latitude:         28.6328,
		Longitude:        77.2185,
		BasePricePerHour: 750,
		Capacity:         12,
		Amenities:        []string{office.AmenityWiFi, office.AmenityVideoConferencing, office.AmenityPrinterScanner, office.AmenityWhiteboard, office.AmenityCoffeeTea, office.AmenityAirConditioning},
		Description:      "Prime private office in Delhi's business center",
	},
	{
		Name:             "Custom Office Suite - Vasant Vihar",
		Type:             office.TypeCustomOffice,
		Location:         "Vasant Vihar, Delhi",
		Address:          "Vasant Vihar, New Delhi 110057",
		Latitude:         28.5677,
		Longitude:        77.1588,
		BasePricePerHour: 800,
		Capacity:         15,
		Amenities:        []string{office.AmenityWiFi, office.AmenityVideoConferencing, office.AmenityProjector, office.AmenityWhiteboard, office.AmenityPrinterScanner, office.AmenityCoffeeTea, office.AmenityAirConditioning, office.AmenityParking},
		Description:      "Fully customizable office space tailored to your needs",
	},
	{
		Name:             "Tailored Workspace - Nehru Place",
		Type:             office.TypeCustomOffice,
		Location:         "Nehru Place, Delhi",
		Address:          "Nehru Place Complex, New Delhi 110019",
		Latitude:         28.5500,
		Longitude:        77.2510,
		BasePricePerHour: 720,
		Capacity:         14,
		Amenities:        []string{office.AmenityWiFi, office.AmenityVideoConferencing, office.AmenityProjector, office.AmenityWhiteboard, office.AmenityPrinterScanner, office.AmenityAirConditioning},
		Description:      "Custom designed workspace for growing businesses",
	},
	{
		Name:             "Boardroom - BKC Mumbai",
		Type:             office.TypeMeetingRoom,
		Location:         "Bandra Kurla Complex, Mumbai",
		Address:          "G Block, BKC, Mumbai 400051",
		Latitude:         19.0625,
		Longitude:        72.8687,
		BasePricePerHour: 600,
		Capacity:         12,
		Amenities:        []string{office.AmenityWiFi, office.AmenityProjector, office.AmenityVideoConferencing, office.AmenityWhiteboard, office.AmenityParking, office.AmenityCoffeeTea},
		Description:      "Elegant boardroom perfect for client meetings",
	},
	{
		Name:             "Conference Room - Lower Parel",
		Type:             office.TypeMeetingRoom,
		Location:         "Lower Parel, Mumbai",
		Address:          "Kamala Mills, Lower Parel, Mumbai 400013",
		Latitude:         19.0095,
		Longitude:        72.8295,
		BasePricePerHour: 550,
		Capacity:         10,
		Amenities:        []string{office.AmenityWiFi, office.AmenityProjector, office.AmenityWhiteboard, office.AmenityVideoConferencing, office.AmenityCoffeeTea, office.AmenityAirConditioning},
		Description:      "Modern conference space in creative district",
	},
	{
		Name:             "Meeting Hub - Andheri",
		Type:             office.TypeMeetingRoom,
		Location:         "Andheri East, Mumbai",
		Address:          "Marol, Andheri East, Mumbai 400059",
		Latitude:         19.1176,
		Longitude:        72.8697,
		BasePricePerHour: 480,
		Capacity:         8,
		Amenities:        []string{office.AmenityWiFi, office.AmenityProjector, office.AmenityWhiteboard, office.AmenityCoffeeTea, office.AmenityParking},
		Description:      "Professional meeting space near airport",
	},
	{
		Name:             "Executive Boardroom - Powai",
		Type:             office.TypeMeetingRoom,
		Location:         "Powai, Mumbai",
		Address:          "Hiranandani Business Park, Powai, Mumbai 400076",
		Latitude:         19.1197,
		Longitude:        72.9061,
		BasePricePerHour: 520,
		Capacity:         10,
		Amenities:        []string{office.AmenityWiFi, office.AmenityProjector, office.AmenityVideoConferencing, office.AmenityWhiteboard, office.AmenityCoffeeTea, office.AmenityAirConditioning},
		Description:      "Lakeside meeting room with premium amenities",
	},
	{
		Name:             "Executive Day Office - Powai",
		Type:             office.TypeDayOffice,
		Location:         "Powai, Mumbai",
		Address:          "Hiranandani Business Park, Powai, Mumbai 400076",
		Latitude:         19.1197,
		Longitude:        72.9061,
		BasePricePerHour: 400,
		Capacity:         6,
		Amenities:        []string{office.AmenityWiFi, office.AmenityPrinterScanner, office.AmenityCoffeeTea, office.AmenityAirConditioning, office.AmenityParking},
		Description:      "Premium day office with lake view",
	},
	{
		Name:             "Business Office - BKC",
		Type:             office.TypeDayOffice,
		Location:         "Bandra Kurla Complex, Mumbai",
		Address:          "BKC, Mumbai 400051",
		Latitude:         19.0630,
		Longitude:        72.8700,
		BasePricePerHour: 420,
		Capacity:         5,
		Amenities:        []string{office.AmenityWiFi, office.AmenityPrinterScanner, office.AmenityAirConditioning, office.AmenityCoffeeTea, office.AmenityParking},
		Description:      "Professional day office in business district",
	},
	{
		Name:             "Day Office - Andheri",
		Type:             office.TypeDayOffice,
		Location:         "Andheri East, Mumbai",
		Address:          "Andheri East, Mumbai 400059",
		Latitude:         19.1180,
		Longitude:        72.8700,
		BasePricePerHour: 370,
		Capacity:         4,
		Amenities:        []string{office.AmenityWiFi, office.AmenityPrinterScanner, office.AmenityCoffeeTea, office.AmenityParking},
		Description:      "Convenient day office near metro",
	},
	{
		Name:             "Creative CoSpace - Lower Parel",
		Type:             office.TypeDayCoworking,
		Location:         "Lower Parel, Mumbai",
		Address:          "Kamala Mills, Lower Parel, Mumbai 400013",
		Latitude:         19.0095,
		Longitude:        72.8295,
		BasePricePerHour: 180,
		Capacity:         40,
		Amenities:        []string{office.AmenityWiFi, office.AmenityCoffeeTea, office.AmenityPrinterScanner, office.AmenityAirConditioning},
		Description:      "Trendy coworking space in creative district",
	},
	{
		Name:             "BKC CoWork Space",
		Type:             office.TypeDayCoworking,
		Location:         "Bandra Kurla Complex, Mumbai",
		Address:          "BKC, Mumbai 400051",
		Latitude:         19.0635,
		Longitude:        72.8710,
		BasePricePerHour: 190,
		Capacity:         45,
		Amenities:        []string{office.AmenityWiFi, office.AmenityCoffeeTea, office.AmenityPrinterScanner, office.AmenityAirConditioning, office.AmenityParking},
		Description:      "Premium coworking in financial hub",
	},
	{
		Name:             "Startup Hub - Powai",
		Type:             office.TypeDayCoworking,
		Location:         "Powai, Mumbai",
		Address:          "Powai, Mumbai 400076",
		Latitude:         19.1200,
		Longitude:        72.9070,
		BasePricePerHour: 160,
		Capacity:         35,
		Amenities:        []string{office.AmenityWiFi, office.AmenityCoffeeTea, office.AmenityPrinterScanner},
		Description:      "Community-focused coworking space",
	},
	{
		Name:             "Corporate Private Office - Andheri",
		Type:             office.TypePrivateOffice,
		Location:         "Andheri East, Mumbai",
		Address:          "Marol, Andheri East, Mumbai 400059",
		Latitude:         19.1176,
		Longitude:        72.8697,
		BasePricePerHour: 650,
		Capacity:         8,
		Amenities:        []string{office.AmenityWiFi, office.AmenityVideoConferencing, office.AmenityPrinterScanner, office.AmenityAirConditioning, office.AmenityParking},
		Description:      "Sophisticated private office near airport",
	},
	{
		Name:             "Premium Office - BKC",
		Type:             office.TypePrivateOffice,
		Location:         "Bandra Kurla Complex, Mumbai",
		Address:          "BKC, Mumbai 400051",
		Latitude:         19.0640,
		Longitude:        72.8720,
		BasePricePerHour: 780,
		Capacity:         10,
		Amenities:        []string{office.AmenityWiFi, office.AmenityVideoConferencing, office.AmenityProjector, office.AmenityWhiteboard, office.AmenityPrinterScanner, office.AmenityCoffeeTea, office.AmenityParking},
		Description:      "Luxury private office in prime location",
	},
	{
		Name:             "Bespoke Office - Nariman Point",
		Type:             office.TypeCustomOffice,
		Location:         "Nariman Point, Mumbai",
		Address:          "Nariman Point, Mumbai 400021",
		Latitude:         18.9263,
		Longitude:        72.8230,
		BasePricePerHour: 900,
		Capacity:         20,
		Amenities:        []string{office.AmenityWiFi, office.AmenityVideoConferencing, office.AmenityProjector, office.AmenityWhiteboard, office.AmenityPrinterScanner, office.AmenityCoffeeTea, office.AmenityAirConditioning, office.AmenityParking},
		Description:      "High-end custom office with sea views",
	},
	{
		Name:             "Custom Workspace - Lower Parel",
		Type:             office.TypeCustomOffice,
		Location:         "Lower Parel, Mumbai",
		Address:          "Lower Parel, Mumbai 400013",
		Latitude:         19.0100,
		Longitude:        72.8310,
		BasePricePerHour: 820,
		Capacity:         16,
		Amenities:        []string{office.AmenityWiFi, office.AmenityVideoConferencing, office.AmenityProjector, office.AmenityWhiteboard, office.AmenityPrinterScanner, office.AmenityAirConditioning},
		Description:      "Customizable office in trendy area",
	},
	{
		Name:             "Conference Room - Indiranagar",
		Type:             office.TypeMeetingRoom,
		Location:         "Indiranagar, Bangalore",
		Address:          "100 Feet Road, Indiranagar, Bangalore 560038",
		Latitude:         12.9716,
		Longitude:        77.6412,
		BasePricePerHour: 450,
		Capacity:         8,
		Amenities:        []string{office.AmenityWiFi, office.AmenityProjector, office.AmenityWhiteboard, office.AmenityAirConditioning, office.AmenityCoffeeTea},
		Description:      "Modern conference space in tech hub",
	},
	{
		Name:             "Meeting Room - Koramangala",
		Type:             office.TypeMeetingRoom,
		Location:         "Koramangala, Bangalore",
		Address:          "80 Feet Road, Koramangala, Bangalore 560095",
		Latitude:         12.9352,
		Longitude:        77.6245,
		BasePricePerHour: 480,
		Capacity:         10,
		Amenities:        []string{office.AmenityWiFi, office.AmenityProjector, office.AmenityVideoConferencing, office.AmenityWhiteboard, office.AmenityCoffeeTea, office.AmenityAirConditioning},
		Description:      "Professional meeting space in startup hub",
	},
	{
		Name:             "Boardroom - Whitefield",
		Type:             office.TypeMeetingRoom,
		Location:         "Whitefield, Bangalore",
		Address:          "ITPL Main Road, Whitefield, Bangalore 560066",
		Latitude:         12.9698,
		Longitude:        77.7500,
		BasePricePerHour: 460,
		Capacity:         12,
		Amenities:        []string{office.AmenityWiFi, office.AmenityProjector, office.AmenityWhiteboard, office.AmenityVideoConferencing, office.AmenityCoffeeTea, office.AmenityParking},
		Description:      "Executive boardroom in IT corridor",
	},
	{
		Name:             "Conference Center - MG Road",
		Type:             office.TypeMeetingRoom,
		Location:         "MG Road, Bangalore",
		Address:          "MG Road, Bangalore 560001",
		Latitude:         12.9756,
		Longitude:        77.6073,
		BasePricePerHour: 520,
		Capacity:         14,
		Amenities:        []string{office.AmenityWiFi, office.AmenityProjector, office.AmenityVideoConferencing, office.AmenityWhiteboard, office.AmenityCoffeeTea, office.AmenityAirConditioning, office.AmenityParking},
		Description:      "Premium conference room in city center",
	},
	{
		Name:             "Business Day Office - Whitefield",
		Type:             office.TypeDayOffice,
		Location:         "Whitefield, Bangalore",
		Address:          "ITPL Main Road, Whitefield, Bangalore 560066",
		Latitude:         12.9698,
		Longitude:        77.7500,
		BasePricePerHour: 380,
		Capacity:         5,
		Amenities:        []string{office.AmenityWiFi, office.AmenityPrinterScanner, office.AmenityAirConditioning, office.AmenityParking},
		Description:      "Professional day office in IT corridor",
	},
	{
		Name:             "Day Office - Koramangala",
		Type:             office.TypeDayOffice,
		Location:         "Koramangala, Bangalore",
		Address:          "Koramangala, Bangalore 560095",
		Latitude:         12.9360,
		Longitude:        77.6250,
		BasePricePerHour: 360,
		Capacity:         4,
		Amenities:        []string{office.AmenityWiFi, office.AmenityPrinterScanner, office.AmenityCoffeeTea, office.AmenityAirConditioning},
		Description:      "Convenient day office in startup district",
	},
	{
		Name:             "Executive Office - MG Road",
		Type:             office.TypeDayOffice,
		Location:         "MG Road, Bangalore",
		Address:          "MG Road, Bangalore 560001",
		Latitude:         12.9760,
		Longitude:        77.6080,
		BasePricePerHour: 400,
		Capacity:         6,
		Amenities:        []string{office.AmenityWiFi, office.AmenityPrinterScanner, office.AmenityCoffeeTea, office.AmenityAirConditioning, office.AmenityParking},
		Description:      "Premium day office in business district",
	},
	{
		Name:             "Tech CoWork - Koramangala",
		Type:             office.TypeDayCoworking,
		Location:         "Koramangala, Bangalore",
		Address:          "80 Feet Road, Koramangala, Bangalore 560095",
		Latitude:         12.9352,
		Longitude:        77.6245,
		BasePricePerHour: 160,
		Capacity:         60,
		Amenities:        []string{office.AmenityWiFi, office.AmenityCoffeeTea, office.AmenityAirConditioning, office.AmenityParking},
		Description:      "Startup-friendly coworking space",
	},
	{
		Name:             "Innovation Hub - HSR Layout",
		Type:             office.TypeDayCoworking,
		Location:         "HSR Layout, Bangalore",
		Address:          "Sector 1, HSR Layout, Bangalore 560102",
		Latitude:         12.9121,
		Longitude:        77.6446,
		BasePricePerHour: 140,
		Capacity:         35,
		Amenities:        []string{office.AmenityWiFi, office.AmenityCoffeeTea, office.AmenityPrinterScanner},
		Description:      "Modern coworking with flexible seating",
	},
	{
		Name:             "CoWork Space - Whitefield",
		Type:             office.TypeDayCoworking,
		Location:         "Whitefield, Bangalore",
		Address:          "Whitefield, Bangalore 560066",
		Latitude:         12.9700,
		Longitude:        77.7510,
		BasePricePerHour: 150,
		Capacity:         50,
		Amenities:        []string{office.AmenityWiFi, office.AmenityCoffeeTea, office.AmenityPrinterScanner, office.AmenityAirConditioning, office.AmenityParking},
		Description:      "Tech-focused coworking space",
	},
	{
		Name:             "Startup Space - Indiranagar",
		Type:             office.TypeDayCoworking,
		Location:         "Indiranagar, Bangalore",
		Address:          "Indiranagar, Bangalore 560038",
		Latitude:         12.9720,
		Longitude:        77.6420,
		BasePricePerHour: 155,
		Capacity:         42,
		Amenities:        []string{office.AmenityWiFi, office.AmenityCoffeeTea, office.AmenityPrinterScanner, office.AmenityAirConditioning},
		Description:      "Vibrant coworking community",
	},
	{
		Name:             "Deluxe Private Office - MG Road",
		Type:             office.TypePrivateOffice,
		Location:         "MG Road, Bangalore",
		Address:          "MG Road, Bangalore 560001",
		Latitude:         12.9756,
		Longitude:        77.6073,
		BasePricePerHour: 750,
		Capacity:         12,
		Amenities:        []string{office.AmenityWiFi, office.AmenityVideoConferencing, office.AmenityProjector, office.AmenityWhiteboard, office.AmenityCoffeeTea, office.AmenityAirConditioning, office.AmenityParking},
		Description:      "Luxury private office in prime location",
	},
	{
		Name:             "Premium Office - Koramangala",
		Type:             office.TypePrivateOffice,
		Location:         "Koramangala, Bangalore",
		Address:          "Koramangala, Bangalore 560095",
		Latitude:         12.9358,
		Longitude:        77.6252,
		BasePricePerHour: 680,
		Capacity:         10,
		Amenities:        []string{office.AmenityWiFi, office.AmenityVideoConferencing, office.AmenityPrinterScanner, office.AmenityWhiteboard, office.AmenityCoffeeTea, office.AmenityAirConditioning},
		Description:      "Modern private office for tech teams",
	},
	{
		Name:             "Executive Office - Whitefield",
		Type:             office.TypePrivateOffice,
		Location:         "Whitefield, Bangalore",
		Address:          "Whitefield, Bangalore 560066",
		Latitude:         12.9705,
		Longitude:        77.7515,
		BasePricePerHour: 670,
		Capacity:         9,
		Amenities:        []string{office.AmenityWiFi, office.AmenityVideoConferencing, office.AmenityPrinterScanner, office.AmenityAirConditioning, office.AmenityParking},
		Description:      "Professional office in IT park",
	},
	{
		Name:             "Tailored Workspace - Electronic City",
		Type:             office.TypeCustomOffice,
		Location:         "Electronic City, Bangalore",
		Address:          "Phase 1, Electronic City, Bangalore 560100",
		Latitude:         12.8456,
		Longitude:        77.6603,
		BasePricePerHour: 700,
		Capacity:         18,
		Amenities:        []string{office.AmenityWiFi, office.AmenityVideoConferencing, office.AmenityProjector, office.AmenityWhiteboard, office.AmenityPrinterScanner, office.AmenityAirConditioning, office.AmenityParking},
		Description:      "Customizable workspace for tech companies",
	},
	{
		Name:             "Custom Suite - Koramangala",
		Type:             office.TypeCustomOffice,
		Location:         "Koramangala, Bangalore",
		Address:          "Koramangala, Bangalore 560095",
		Latitude:         12.9365,
		Longitude:        77.6258,
		BasePricePerHour: 750,
		Capacity:         16,
		Amenities:        []string{office.AmenityWiFi, office.AmenityVideoConferencing, office.AmenityProjector, office.AmenityWhiteboard, office.AmenityPrinterScanner, office.AmenityCoffeeTea, office.AmenityAirConditioning},
		Description:      "Fully customizable startup office",
	},
	{
		Name:             "Executive Meeting Room - Cyber City",
		Type:             office.TypeMeetingRoom,
		Location:         "Cyber City, Gurgaon",
		Address:          "DLF Cyber City, Gurgaon 122002",
		Latitude:         28.4950,
		Longitude:        77.0890,
		BasePricePerHour: 490,
		Capacity:         10,
		Amenities:        []string{office.AmenityWiFi, office.AmenityProjector, office.AmenityVideoConferencing, office.AmenityWhiteboard, office.AmenityCoffeeTea, office.AmenityAirConditioning, office.AmenityParking},
		Description:      "Modern meeting room in corporate hub",
	},
	{
		Name:             "Private Day Office - Cyber City",
		Type:             office.TypeDayOffice,
		Location:         "Cyber City, Gurgaon",
		Address:          "DLF Cyber City, Gurgaon 122002",
		Latitude:         28.4950,
		Longitude:        77.0890,
		BasePricePerHour: 350,
		Capacity:         4,
		Amenities:        []string{office.AmenityWiFi, office.AmenityPrinterScanner, office.AmenityAirConditioning, office.AmenityCoffeeTea, office.AmenityParking},
		Description:      "Fully furnished private office",
	},
	{
		Name:             "Cyber Hub CoWork",
		Type:             office.TypeDayCoworking,
		Location:         "Cyber City, Gurgaon",
		Address:          "Cyber Hub, Gurgaon 122002",
		Latitude:         28.4955,
		Longitude:        77.0895,
		BasePricePerHour: 165,
		Capacity:         48,
		Amenities:        []string{office.AmenityWiFi, office.AmenityCoffeeTea, office.AmenityPrinterScanner, office.AmenityAirConditioning, office.AmenityParking},
		Description:      "Professional coworking in corporate area",
	},
	{
		Name:             "Corporate Office - Cyber City",
		Type:             office.TypePrivateOffice,
		Location:         "Cyber City, Gurgaon",
		Address:          "DLF Cyber City, Gurgaon 122002",
		Latitude:         28.4960,
		Longitude:        77.0900,
		BasePricePerHour: 720,
		Capacity:         11,
		Amenities:        []string{office.AmenityWiFi, office.AmenityVideoConferencing, office.AmenityPrinterScanner, office.AmenityWhiteboard, office.AmenityCoffeeTea, office.AmenityAirConditioning, office.AmenityParking},
		Description:      "Premium private office space",
	},
	{
		Name:             "Custom Business Suite - Cyber City",
		Type:             office.TypeCustomOffice,
		Location:         "Cyber City, Gurgaon",
		Address:          "DLF Cyber City, Gurgaon 122002",
		Latitude:         28.4965,
		Longitude:        77.0905,
		BasePricePerHour: 780,
		Capacity:         17,
		Amenities:        []string{office.AmenityWiFi, office.AmenityVideoConferencing, office.AmenityProjector, office.AmenityWhiteboard, office.AmenityPrinterScanner, office.AmenityCoffeeTea, office.AmenityAirConditioning, office.AmenityParking},
		Description:      "Tailored office solution for enterprises",
	},
}
