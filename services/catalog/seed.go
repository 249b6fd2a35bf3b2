// File: services/catalog/seed.go
package catalog

import "voyago/models"

// sampleDestinations is the first-run catalog.
var sampleDestinations = []models.Destination{
	{
		ID:          "dest_1",
		Name:        "Maldives Paradise",
		Location:    "Maldives",
		Description: "Experience luxury overwater bungalows, crystal-clear waters, and pristine white sand beaches in this tropical paradise.",
		Price:       2499,
		Duration:    "7 Days, 6 Nights",
		Image:       "https://images.unsplash.com/photo-1682308999971-208126ba75ec?w=1080",
		Category:    models.CategoryBeach,
		Rating:      4.9,
		Reviews:     324,
		Includes:    []string{"5-Star Resort", "All Meals Included", "Water Sports", "Spa Access"},
	},
	{
		ID:          "dest_2",
		Name:        "Paris Romance",
		Location:    "Paris, France",
		Description: "Discover the City of Light with iconic landmarks, world-class museums, and exquisite French cuisine.",
		Price:       1899,
		Duration:    "5 Days, 4 Nights",
		Image:       "https://images.unsplash.com/photo-1431274172761-fca41d930114?w=1080",
		Category:    models.CategoryCity,
		Rating:      4.8,
		Reviews:     512,
		Includes:    []string{"4-Star Hotel", "City Tours", "Museum Passes", "Seine River Cruise"},
	},
	{
		ID:          "dest_3",
		Name:        "Dubai Luxury",
		Location:    "Dubai, UAE",
		Description: "Explore futuristic architecture, luxury shopping, and desert adventures in this modern oasis.",
		Price:       2199,
		Duration:    "6 Days, 5 Nights",
		Image:       "https://images.unsplash.com/photo-1512453979798-5ea266f8880c?w=1080",
		Category:    models.CategoryCity,
		Rating:      4.7,
		Reviews:     428,
		Includes:    []string{"5-Star Hotel", "Desert Safari", "Burj Khalifa Tickets", "Shopping Tours"},
	},
	{
		ID:          "dest_4",
		Name:        "Santorini Dreams",
		Location:    "Santorini, Greece",
		Description: "Witness breathtaking sunsets, white-washed buildings, and stunning Aegean Sea views.",
		Price:       1699,
		Duration:    "5 Days, 4 Nights",
		Image:       "https://images.unsplash.com/photo-1613395877344-13d4a8e0d49e?w=1080",
		Category:    models.CategoryBeach,
		Rating:      4.9,
		Reviews:     389,
		Includes:    []string{"Boutique Hotel", "Wine Tasting", "Boat Tours", "Local Cuisine"},
	},
	{
		ID:          "dest_5",
		Name:        "Tokyo Adventure",
		Location:    "Tokyo, Japan",
		Description: "Immerse yourself in Japanese culture, cutting-edge technology, and incredible cuisine.",
		Price:       2299,
		Duration:    "7 Days, 6 Nights",
		Image:       "https://images.unsplash.com/photo-1602283662099-1c6c158ee94d?w=1080",
		Category:    models.CategoryCity,
		Rating:      4.8,
		Reviews:     456,
		Includes:    []string{"4-Star Hotel", "JR Pass", "Cultural Tours", "Food Experience"},
	},
	{
		ID:          "dest_6",
		Name:        "Bali Retreat",
		Location:    "Bali, Indonesia",
		Description: "Find serenity in ancient temples, lush rice terraces, and pristine beaches.",
		Price:       1499,
		Duration:    "6 Days, 5 Nights",
		Image:       "https://images.unsplash.com/photo-1604394089666-6d365c060c6c?w=1080",
		Category:    models.CategoryBeach,
		Rating:      4.7,
		Reviews:     391,
		Includes:    []string{"Resort Stay", "Temple Tours", "Yoga Classes", "Spa Treatments"},
	},
	{
		ID:          "dest_7",
		Name:        "Swiss Alps Escape",
		Location:    "Swiss Alps, Switzerland",
		Description: "Experience majestic mountain peaks, charming villages, and world-class skiing.",
		Price:       2799,
		Duration:    "7 Days, 6 Nights",
		Image:       "https://images.unsplash.com/photo-1633942515749-f93dddbbcff9?w=1080",
		Category:    models.CategoryMountain,
		Rating:      4.9,
		Reviews:     267,
		Includes:    []string{"Chalet Accommodation", "Ski Passes", "Mountain Tours", "Swiss Cuisine"},
	},
	{
		ID:          "dest_8",
		Name:        "Caribbean Beach",
		Location:    "Caribbean Islands",
		Description: "Relax on stunning beaches, explore vibrant coral reefs, and enjoy island life.",
		Price:       1899,
		Duration:    "6 Days, 5 Nights",
		Image:       "https://images.unsplash.com/photo-1702743599501-a821d0b38b66?w=1080",
		Category:    models.CategoryBeach,
		Rating:      4.8,
		Reviews:     445,
		Includes:    []string{"Beachfront Resort", "Snorkeling", "Island Tours", "Water Activities"},
	},
}
