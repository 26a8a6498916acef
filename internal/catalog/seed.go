// Trendaryo - Storefront Personalization & Recommendation Service
// Copyright 2026 Trendaryo
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/trendaryo/trendaryo

package catalog

import "github.com/trendaryo/trendaryo/internal/models"

// Seed data for the built-in catalog. The image field carries the
// storefront's gradient class name; this service treats it as opaque.

func seedProducts() []models.Product {
	return []models.Product{
		{ID: 1, Name: "iPhone 15 Pro", Price: "$999", Category: "Tech", Type: models.TypeTech, Rating: 4.8, Image: "bg-gradient-to-br from-blue-100 to-indigo-100"},
		{ID: 2, Name: "MacBook Air M3", Price: "$1299", Category: "Tech", Type: models.TypeTech, Rating: 4.9, Image: "bg-gradient-to-br from-gray-100 to-slate-100"},
		{ID: 3, Name: "Apple Watch Ultra", Price: "$799", Category: "Tech", Type: models.TypeTech, Rating: 4.7, Image: "bg-gradient-to-br from-purple-100 to-pink-100"},
		{ID: 4, Name: "AirPods Pro 2", Price: "$249", Category: "Tech", Type: models.TypeTech, Rating: 4.6, Image: "bg-gradient-to-br from-orange-100 to-red-100"},
		{ID: 5, Name: "Fitness Tracker Pro", Price: "$199", Category: "Wellness", Type: models.TypeWellness, Rating: 4.5, Image: "bg-gradient-to-br from-green-100 to-emerald-100"},
		{ID: 6, Name: "Heart Rate Monitor", Price: "$89", Category: "Wellness", Type: models.TypeWellness, Rating: 4.4, Image: "bg-gradient-to-br from-teal-100 to-cyan-100"},
		{ID: 7, Name: "Energy Boost Supplement", Price: "$39", Category: "Wellness", Type: models.TypeWellness, Rating: 4.3, Image: "bg-gradient-to-br from-yellow-100 to-amber-100"},
		{ID: 8, Name: "Organic Protein Powder", Price: "$49", Category: "Wellness", Type: models.TypeWellness, Rating: 4.6, Image: "bg-gradient-to-br from-lime-100 to-green-100"},
		{ID: 9, Name: "Gaming Laptop RTX", Price: "$1899", Category: "Tech", Type: models.TypeTech, Rating: 4.8, Image: "bg-gradient-to-br from-red-100 to-pink-100"},
		{ID: 10, Name: "Yoga Mat Premium", Price: "$79", Category: "Wellness", Type: models.TypeWellness, Rating: 4.7, Image: "bg-gradient-to-br from-purple-100 to-indigo-100"},
		{ID: 11, Name: "Wireless Earbuds", Price: "$149", Category: "Tech", Type: models.TypeTech, Rating: 4.5, Image: "bg-gradient-to-br from-blue-100 to-cyan-100"},
		{ID: 12, Name: "Meditation Cushion", Price: "$59", Category: "Wellness", Type: models.TypeWellness, Rating: 4.4, Image: "bg-gradient-to-br from-green-100 to-teal-100"},
	}
}

func seedPool() []models.Product {
	return []models.Product{
		{ID: 201, Name: "Smart Home Hub Pro", Price: "$199", Category: "Smart Home", Type: models.TypeTech, Rating: 4.6, Image: "bg-gradient-to-br from-blue-100 to-indigo-100"},
		{ID: 202, Name: "Fitness Band Elite", Price: "$149", Category: "Fitness", Type: models.TypeWellness, Rating: 4.4, Image: "bg-gradient-to-br from-green-100 to-emerald-100"},
		{ID: 203, Name: "Wireless Earbuds Max", Price: "$179", Category: "Audio", Type: models.TypeTech, Rating: 4.8, Image: "bg-gradient-to-br from-purple-100 to-pink-100"},
		{ID: 204, Name: "Meditation Cushion Pro", Price: "$69", Category: "Wellness", Type: models.TypeWellness, Rating: 4.3, Image: "bg-gradient-to-br from-teal-100 to-cyan-100"},
	}
}
