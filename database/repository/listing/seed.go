package listingRepo

import "parcelo/models"

// SeedListings returns the launch catalog: five Moroccan land parcels.
// Record 5 never stated a sale mode and is deliberately left unspecified.
func SeedListings() []models.Listing {
	return []models.Listing{
		{
			ID:       1,
			Subject:  "VENTE LOT DE TERRAIN - 113M²",
			Location: "Casablanca, Lissasfa",
			Price:    models.Price{Value: 898350, Currency: "DH"},
			Images: []string{
				"https://content.avito.ma/classifieds/images/10130169825?t=images",
				"https://content.avito.ma/classifieds/images/10130169733?t=images",
				"https://content.avito.ma/classifieds/images/10130169609?t=images",
				"https://content.avito.ma/classifieds/images/10130169619?t=images",
				"https://content.avito.ma/classifieds/images/10130169635?t=images",
				"https://content.avito.ma/classifieds/images/10130169679?t=images",
				"https://content.avito.ma/classifieds/images/10130169712?t=images",
			},
			Seller: models.Seller{
				Type:     models.SellerTypeStore,
				Name:     "TIJARA DEVELOPPEMENT",
				Verified: false,
				Image:    "https://images.unsplash.com/photo-1560250097-0b93528c311a",
				Rating:   4.8,
				Reviews:  42,
				Phone:    "(+212) 522-987654",
				Email:    "contact@tijara.ma",
			},
			Description: "Magnifique lot de terrain à vendre dans un quartier prisé de Casablanca. Idéal pour construction résidentielle ou commerciale. Titre foncier clair et sans litiges.",
			Area:        113,
			AreaUnit:    "m²",
			Featured:    true,
			SaleStatus:  models.SaleModeSale,
			CreatedAt:   "2023-10-15",
			Features:    []string{"Titre foncier", "Accès facile", "Proximité commerces", "Quartier sécurisé"},
		},
		{
			ID:       2,
			Subject:  "TERRAIN AGRICOLE - 5 HECTARES",
			Location: "Marrakech, Route de Fès",
			Price:    models.Price{Value: 2500000, Currency: "DH"},
			Images: []string{
				"https://content.avito.ma/classifieds/images/10115340275?t=images",
				"https://content.avito.ma/classifieds/images/10115340272?t=images",
				"https://content.avito.ma/classifieds/images/10124184737?t=images",
				"https://content.avito.ma/classifieds/images/10115340271?t=images",
				"https://content.avito.ma/classifieds/images/10115340270?t=images",
				"https://content.avito.ma/classifieds/images/10115340278?t=images",
				"https://content.avito.ma/classifieds/images/10115340279?t=images",
			},
			Seller: models.Seller{
				Type:     models.SellerTypeIndividual,
				Name:     "Mohamed Alami",
				Verified: true,
				Image:    "https://images.unsplash.com/photo-1568602471122-7832951cc4c5",
				Rating:   4.5,
				Reviews:  28,
				Phone:    "(+212) 661-123456",
				Email:    "m.alami@gmail.com",
			},
			Description: "Terrain agricole fertile avec source d'eau, idéal pour l'agriculture ou projet touristique. Accès direct depuis la route principale de Fès.",
			Area:        50000,
			AreaUnit:    "m²",
			Featured:    false,
			SaleStatus:  models.SaleModeSale,
			CreatedAt:   "2023-11-05",
			Features:    []string{"Source d'eau", "Sol fertile", "Accès routier", "Électricité à proximité"},
		},
		{
			ID:       3,
			Subject:  "TERRAIN CONSTRUCTIBLE - 250M²",
			Location: "Tanger, Malabata",
			Price:    models.Price{Value: 1450000, Currency: "DH"},
			Images: []string{
				"https://content.avito.ma/classifieds/images/10110716582?t=images",
				"https://content.avito.ma/classifieds/images/10110716649?t=images",
				"https://content.avito.ma/classifieds/images/10110716629?t=images",
				"https://content.avito.ma/classifieds/images/10110716630?t=images",
				"https://content.avito.ma/classifieds/images/10110716631?t=images",
			},
			Seller: models.Seller{
				Type:     models.SellerTypeStore,
				Name:     "TANGER IMMOBILIER",
				Verified: true,
				Image:    "https://images.unsplash.com/photo-1494790108377-be9c29b29330",
				Rating:   4.9,
				Reviews:  67,
				Phone:    "(+212) 539-876543",
				Email:    "contact@tangerimmobilier.ma",
			},
			Description: "Superbe terrain dans le quartier prestigieux de Malabata avec vue sur mer. Tous documents administratifs en règle. Idéal pour villa de luxe.",
			Area:        250,
			AreaUnit:    "m²",
			Featured:    true,
			SaleStatus:  models.SaleModeSale,
			CreatedAt:   "2023-12-01",
			Features:    []string{"Vue sur mer", "Zone résidentielle", "Quartier sécurisé", "Proximité plage"},
		},
		{
			ID:       4,
			Subject:  "PARCELLE INDUSTRIELLE - 1200M²",
			Location: "Rabat, Zone Industrielle",
			Price:    models.Price{Value: 3800000, Currency: "DH"},
			Images: []string{
				"https://content.avito.ma/classifieds/images/10132544752?t=images",
				"https://content.avito.ma/classifieds/images/10132544751?t=images",
				"https://content.avito.ma/classifieds/images/10132544753?t=images",
			},
			Seller: models.Seller{
				Type:     models.SellerTypeStore,
				Name:     "RABAT PRO IMMOBILIER",
				Verified: true,
				Image:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d",
				Rating:   4.7,
				Reviews:  53,
				Phone:    "(+212) 537-654321",
				Email:    "info@rabatpro.ma",
			},
			Description: "Parcelle industrielle dans la nouvelle zone industrielle de Rabat. Parfaite pour entrepôt ou manufacture. Tous réseaux disponibles.",
			Area:        1200,
			AreaUnit:    "m²",
			Featured:    false,
			SaleStatus:  models.SaleModeSale,
			CreatedAt:   "2024-01-10",
			Features:    []string{"Zone industrielle", "Accès poids lourds", "Tous réseaux", "Sécurité 24/7"},
		},
		{
			ID:       5,
			Subject:  "TERRAIN RÉSIDENTIEL - 400M²",
			Location: "Agadir, Founty",
			Price:    models.Price{Value: 1200000, Currency: "DH"},
			Images: []string{
				"https://content.avito.ma/classifieds/images/10132925629?t=images",
				"https://content.avito.ma/classifieds/images/10132925631?t=images",
			},
			Seller: models.Seller{
				Type:     models.SellerTypeIndividual,
				Name:     "Nadia Bensalem",
				Verified: false,
				Image:    "https://images.unsplash.com/photo-1438761681033-6461ffad8d80",
				Rating:   4.2,
				Reviews:  15,
				Phone:    "(+212) 668-987654",
				Email:    "nadiab@gmail.com",
			},
			Description: "Beau terrain plat dans le quartier de Founty à Agadir. Proximité plage et commerces. Idéal pour construction villa familiale.",
			Area:        400,
			AreaUnit:    "m²",
			Featured:    true,
			SaleStatus:  models.SaleModeUnspecified,
			CreatedAt:   "2024-02-15",
			Features:    []string{"Proximité plage", "Quartier résidentiel", "Tous commerces", "Écoles à proximité"},
		},
	}
}
