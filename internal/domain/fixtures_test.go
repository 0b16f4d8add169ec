package domain

func testCatalog() *Catalog {
	return &Catalog{
		Profile: Profile{SiteTitle: "My Portfolio", Name: "Test Editor", Role: "Video Editor", Owner: "Tester"},
		Categories: []*Category{
			{
				Slug:     "shortform",
				Title:    "Short-form Edits",
				NavLabel: "Shorts",
				Kind:     KindVideo,
				Videos: []Video{
					{Title: "The Worst Cards in Magic: The Gathering", URL: "https://www.youtube.com/shorts/3dh-Vm48KM4", ExternalID: "3dh-Vm48KM4"},
					{Title: "Card Collectors Worst Nightmare", URL: "https://www.youtube.com/shorts/Gmtj0VWxmjU", ExternalID: "Gmtj0VWxmjU"},
					{Title: "THE HIGHEST RANK MOBILE PLAYER IN PARALLEL TCG", URL: "https://www.youtube.com/shorts/KDjI42cuhkw", ExternalID: "KDjI42cuhkw"},
				},
			},
			{
				Slug:     "thumbnails",
				Title:    "Thumbnails",
				NavLabel: "Thumbnails",
				Kind:     KindImage,
				Images: []Image{
					{Title: "Wayfinder 6", Filename: "wayfinder-6.jpg"},
					{Title: "Ghibli Style", Filename: "Ghibli.jpg"},
				},
			},
			{
				Slug:     "ads",
				Title:    "Ads & Informational",
				NavLabel: "Ads",
				Kind:     KindVideo,
				Videos: []Video{
					{Title: "BattlePlan APECHAIN explanation", URL: "https://www.youtube.com/watch?v=dJHf5xEe6eo", ExternalID: "dJHf5xEe6eo"},
					{Title: "Champions TCG Pro Tour 1", URL: "https://youtu.be/genEw6KJBFg", ExternalID: "genEw6KJBFg"},
				},
			},
		},
	}
}
