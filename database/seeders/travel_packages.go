package seeders

import (
	"log"

	"gorm.io/gorm"

	"github.com/Tawan151766/solva-travel-sub001/models/travelpackage"
)

// SeedTravelPackages loads the starter catalogue. Existing titles are left
// untouched so reseeding is safe.
func SeedTravelPackages(db *gorm.DB) {
	log.Printf("🔍 Checking travel packages data integrity...")

	packages := []travelpackage.TravelPackage{
		{Title: "Phuket Island Escape", Location: "Phuket", Price: 18900, DurationDays: 4, MaxCapacity: 20, Description: "Beaches of Patong and Kata, Phi Phi island hop, sunset at Promthep Cape.", IsActive: true},
		{Title: "Chiang Mai Highlands", Location: "Chiang Mai", Price: 14500, DurationDays: 3, MaxCapacity: 16, Description: "Doi Suthep temple, elephant sanctuary visit, night bazaar.", IsActive: true},
		{Title: "Bangkok City Highlights", Location: "Bangkok", Price: 9900, DurationDays: 2, MaxCapacity: 30, Description: "Grand Palace, Wat Arun by boat, Chatuchak weekend market.", IsActive: true},
		{Title: "Krabi Four Islands", Location: "Krabi", Price: 16500, DurationDays: 4, MaxCapacity: 18, Description: "Railay beach, Phra Nang cave, longtail boat island tour.", IsActive: true},
		{Title: "Koh Samui Retreat", Location: "Koh Samui", Price: 21900, DurationDays: 5, MaxCapacity: 14, Description: "Chaweng beach, Ang Thong marine park, Big Buddha temple.", IsActive: true},
		{Title: "Ayutthaya Heritage Day Trip", Location: "Ayutthaya", Price: 4500, DurationDays: 1, MaxCapacity: 40, Description: "UNESCO ruins, Wat Mahathat, river cruise return.", IsActive: true},
		{Title: "Kanchanaburi River Kwai", Location: "Kanchanaburi", Price: 8900, DurationDays: 2, MaxCapacity: 24, Description: "Death Railway, Erawan waterfalls, floating raft house stay.", IsActive: true},
		{Title: "Pai Valley Adventure", Location: "Pai", Price: 12500, DurationDays: 3, MaxCapacity: 12, Description: "Canyon sunrise, hot springs, bamboo bridge walk.", IsActive: true},
	}

	seeded := 0
	for _, pkg := range packages {
		var existing travelpackage.TravelPackage
		err := db.Where("title = ?", pkg.Title).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			if err := db.Create(&pkg).Error; err != nil {
				log.Printf("❌ Failed to seed travel package %q: %v", pkg.Title, err)
				continue
			}
			seeded++
		} else if err != nil {
			log.Printf("❌ Failed to check travel package %q: %v", pkg.Title, err)
		}
	}

	if seeded > 0 {
		log.Printf("✅ Seeded %d travel packages", seeded)
	} else {
		log.Printf("✅ Travel packages already up to date")
	}
}
