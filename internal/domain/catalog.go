package domain

// DefaultBankID names the built-in Swiss trivia bank.
const DefaultBankID = "swiss-trivia"

// SwissTriviaBank returns the built-in question catalog. Swap the loader with
// a Postgres-backed one to externalize it.
func SwissTriviaBank() QuestionBank {
	return QuestionBank{
		ID: DefaultBankID,
		Questions: []Question{
			{Prompt: "What is the capital city of Switzerland?", Options: []string{"Zurich", "Bern", "Geneva"}, Answer: "Bern"},
			{Prompt: "Where is the Matterhorn located?", Options: []string{"Lucerne", "Zermatt", "Geneva"}, Answer: "Zermatt"},
			{Prompt: "What year was Chillon Castle first built?", Options: []string{"1150", "1230", "1005"}, Answer: "1230"},
			{Prompt: "Which Swiss city is famous for its international banking?", Options: []string{"Basel", "Zurich", "Bern"}, Answer: "Zurich"},
			{Prompt: "What color is Switzerland's flag?", Options: []string{"Red and white", "Blue and white", "Green and red"}, Answer: "Red and white"},
			{Prompt: "The Grand Casino Luzern is located near which lake?", Options: []string{"Lake Geneva", "Lake Lucerne", "Lake Zurich"}, Answer: "Lake Lucerne"},
			{Prompt: "In which city can you find the famous \"Old Town Clock\"?", Options: []string{"Zurich", "Bern", "Geneva"}, Answer: "Bern"},
			{Prompt: "The Aletsch Glacier is located in which region?", Options: []string{"Jungfrau Region", "Valais", "Zurich"}, Answer: "Valais"},
			{Prompt: "What is Switzerland's official currency?", Options: []string{"Euro", "Swiss Franc", "Dollar"}, Answer: "Swiss Franc"},
			{Prompt: "Which famous Swiss product is often associated with mountains?", Options: []string{"Cheese", "Wine", "Olive Oil"}, Answer: "Cheese"},
			{Prompt: "Which river flows through Zurich?", Options: []string{"Rhone", "Limmat", "Aare"}, Answer: "Limmat"},
			{Prompt: "The Lavaux Vineyards overlook which lake?", Options: []string{"Lake Geneva", "Lake Zurich", "Lake Thun"}, Answer: "Lake Geneva"},
			{Prompt: "Which mountain range covers much of Switzerland?", Options: []string{"Himalayas", "Rockies", "Alps"}, Answer: "Alps"},
			{Prompt: "What is the primary language spoken in Zurich?", Options: []string{"French", "Italian", "German"}, Answer: "German"},
			{Prompt: "Where would you go to see Switzerland's \"Top of Europe\"?", Options: []string{"Zurich", "Jungfraujoch", "Basel"}, Answer: "Jungfraujoch"},
			{Prompt: "Which city hosts an annual international film festival?", Options: []string{"Lucerne", "Zurich", "St. Moritz"}, Answer: "Zurich"},
			{Prompt: "The Swiss Guards protect which international city?", Options: []string{"Bern", "Geneva", "Vatican City"}, Answer: "Vatican City"},
			{Prompt: "How many cantons make up Switzerland?", Options: []string{"25", "26", "27"}, Answer: "26"},
			{Prompt: "St. Moritz is famous for which sport?", Options: []string{"Soccer", "Skiing", "Sailing"}, Answer: "Skiing"},
			{Prompt: "Where would you find the Chapel Bridge?", Options: []string{"Geneva", "Lucerne", "Basel"}, Answer: "Lucerne"},
		},
	}
}

// Attractions returns the point-of-interest catalog.
func Attractions() []Attraction {
	return []Attraction{
		{
			Name:        "The Matterhorn",
			Address:     "Zermatt, 3920 Zermatt, Switzerland",
			Lat:         46.0207,
			Lng:         7.6586,
			Image:       "assets/ph1.jpg",
			Description: "The iconic Matterhorn is one of the highest peaks in the Alps, standing proudly at 4,478 meters. Known for its pyramid shape, it is a favorite among climbers and photographers.",
			SecretSpots: []SecretSpot{
				{Name: "Hörnli Hut", Address: "3920 Zermatt, Switzerland", Description: "The Hörnli Hut is the main base camp for climbers attempting to summit the Matterhorn. Located at 3,260 meters, it offers breathtaking views and essential services for adventurers."},
				{Name: "Gornergrat", Address: "Gornergrat Bahn, 3920 Zermatt, Switzerland", Description: "A stunning viewing platform accessible by train, Gornergrat provides panoramic views of the Matterhorn and surrounding peaks. It's perfect for hiking and photography."},
				{Name: "Schwarzsee", Address: "3920 Zermatt, Switzerland", Description: "Schwarzsee is a picturesque lake near the Matterhorn with walking trails and picnic spots. The area is known for its serene landscapes and close-up views of the mountain."},
			},
		},
		{
			Name:        "Lake Lucerne",
			Address:     "Lucerne, 6003 Lucerne, Switzerland",
			Lat:         47.0502,
			Lng:         8.3093,
			Image:       "assets/ph2.jpg",
			Description: "Nestled among towering mountains, Lake Lucerne is famous for its clear water, scenic boat rides, and historic bridges.",
			SecretSpots: []SecretSpot{
				{Name: "Rigi Mountain", Address: "Rigi, 6354 Weggis, Switzerland", Description: "Known as the \"Queen of the Mountains,\" Rigi offers spectacular views over Lake Lucerne and is accessible by cogwheel train or hiking, making it a perfect getaway."},
				{Name: "Pilatus", Address: "Pilatus, 6010 Lucerne, Switzerland", Description: "Pilatus features dramatic landscapes and hiking trails. The summit can be reached via the world's steepest cogwheel railway, offering stunning views of the lake below."},
				{Name: "Chapel Bridge (Kapellbrücke)", Address: "Weinmarkt, 6004 Lucerne, Switzerland", Description: "This iconic wooden bridge dates back to the 14th century and is adorned with beautiful paintings. It is a symbol of Lucerne's medieval architecture and history."},
			},
		},
		{
			Name:        "Grand Casino Luzern",
			Address:     "Haldenstrasse 6, 6006 Lucerne, Switzerland",
			Lat:         47.0508,
			Lng:         8.2920,
			Image:       "assets/ph3.jpg",
			Description: "A historic casino that combines elegance and entertainment, offering gambling, fine dining, and a touch of glamour.",
			SecretSpots: []SecretSpot{
				{Name: "Lakefront Promenade", Address: "6004 Lucerne, Switzerland", Description: "A scenic lakeside promenade perfect for leisurely strolls, offering beautiful views of Lake Lucerne and surrounding mountains."},
				{Name: "Richard Wagner Museum", Address: "Richard Wagner Weg 27, 6005 Lucerne, Switzerland", Description: "Located in Wagner's former residence, this museum showcases the life and works of the famous composer and is nestled in beautiful gardens."},
				{Name: "The Swiss Museum of Transport", Address: "Lidostrasse 5, 6006 Lucerne, Switzerland", Description: "An interactive museum dedicated to all forms of transportation in Switzerland, featuring exhibits on trains, planes, and automobiles."},
			},
		},
		{
			Name:        "Chillon Castle",
			Address:     "Avenue de Chillon 21, 1820 Veytaux, Switzerland",
			Lat:         46.4142,
			Lng:         6.9279,
			Image:       "assets/ph4.jpg",
			Description: "This medieval fortress sits on the shores of Lake Geneva, with a history dating back to the 12th century.",
			SecretSpots: []SecretSpot{
				{Name: "The Dungeon", Address: "Château de Chillon, 1820 Veytaux, Switzerland", Description: "The castle's dungeon, steeped in history, offers a glimpse into medieval life. Visitors can learn about the castle's past and its role as a prison."},
				{Name: "The Wine Cellar", Address: "Château de Chillon, 1820 Veytaux, Switzerland", Description: "The castle's wine cellar showcases the region's wine production history and features a selection of local wines, making it a hidden gem for wine enthusiasts."},
				{Name: "The Chapel", Address: "Château de Chillon, 1820 Veytaux, Switzerland", Description: "This beautifully preserved chapel within the castle features stunning stained glass windows and offers insight into the castle's religious history."},
			},
		},
		{
			Name:        "Bern Old Town",
			Address:     "3011 Bern, Switzerland",
			Lat:         46.9480,
			Lng:         7.4474,
			Image:       "assets/ph5.jpg",
			Description: "A UNESCO World Heritage site, Bern's Old Town is known for its medieval architecture, cobbled streets, and clock tower.",
			SecretSpots: []SecretSpot{
				{Name: "Rosengarten", Address: "Alter Aargauerstalden 31, 3005 Bern, Switzerland", Description: "A beautiful rose garden with over 200 varieties of roses, providing stunning views of Bern's Old Town and the Aare River."},
				{Name: "The Federal Palace (Bundeshaus)", Address: "Bundesplatz 3, 3005 Bern, Switzerland", Description: "Home to the Swiss Federal Assembly, the Federal Palace offers guided tours to explore Swiss politics and architecture."},
				{Name: "The Einstein Museum", Address: "Kramgasse 49, 3011 Bern, Switzerland", Description: "Dedicated to Albert Einstein, this museum showcases his life, work, and the impact of his theories on modern science."},
			},
		},
		{
			Name:        "Jungfraujoch",
			Address:     "Jungfrau Region, 3801 Lauterbrunnen, Switzerland",
			Lat:         46.6059,
			Lng:         7.9851,
			Image:       "assets/ph6.jpg",
			Description: "Known as the \"Top of Europe,\" Jungfraujoch is a high-altitude saddle offering breathtaking views and an ice palace.",
			SecretSpots: []SecretSpot{
				{Name: "Aletsch Glacier Viewpoint", Address: "Jungfraujoch, 3822 Lauterbrunnen, Switzerland", Description: "A breathtaking viewpoint overlooking the Aletsch Glacier, this spot is ideal for photography and experiencing the glacier's vastness up close."},
				{Name: "Ice Palace", Address: "Jungfraujoch, 3822 Lauterbrunnen, Switzerland", Description: "The Ice Palace features impressive ice sculptures and tunnels carved into the glacier, providing a unique experience beneath the icy surface."},
				{Name: "Sphinx Observatory", Address: "Jungfraujoch, 3822 Lauterbrunnen, Switzerland", Description: "Located at 3,571 meters, this research facility offers stunning panoramic views of the Alps and is one of the highest observatories in Europe."},
			},
		},
		{
			Name:        "Aletsch Glacier",
			Address:     "Aletsch Arena, 3984 Fiesch, Switzerland",
			Lat:         46.5291,
			Lng:         8.0610,
			Image:       "assets/ph7.jpg",
			Description: "The longest glacier in the Alps, Aletsch Glacier is a marvel of nature, stretching over 23 kilometers.",
			SecretSpots: []SecretSpot{
				{Name: "Bettmeralp", Address: "3992 Bettmeralp, Switzerland", Description: "A charming mountain village offering access to hiking trails and stunning views of the Aletsch Glacier, perfect for a tranquil escape."},
				{Name: "Fiescheralp", Address: "3992 Fiescheralp, Switzerland", Description: "This mountain plateau provides excellent hiking routes with breathtaking views of the glacier and surrounding peaks."},
				{Name: "Riederalp", Address: "3991 Riederalp, Switzerland", Description: "A serene village situated near the Aletsch Glacier, offering various hiking trails and a peaceful atmosphere surrounded by nature."},
			},
		},
		{
			Name:        "Zurich Old Town",
			Address:     "8001 Zurich, Switzerland",
			Lat:         47.3769,
			Lng:         8.5417,
			Image:       "assets/ph8.jpg",
			Description: "A blend of medieval and modern, Zurich's Old Town is filled with historic buildings, cozy cafes, and cultural landmarks.",
		},
		{
			Name:        "Lavaux Vineyards",
			Address:     "Route de la Corniche, 1096 Lavaux, Switzerland",
			Lat:         46.4844,
			Lng:         6.6854,
			Image:       "assets/ph9.jpg",
			Description: "The Lavaux Vineyards are a UNESCO World Heritage site, famous for their terraced vineyards and lakeside views.",
		},
		{
			Name:        "St. Moritz",
			Address:     "7500 St. Moritz, Switzerland",
			Lat:         46.4983,
			Lng:         9.8383,
			Image:       "assets/ph10.jpg",
			Description: "Known for luxury resorts and winter sports, St. Moritz is a favorite among the world's elite.",
			SecretSpots: []SecretSpot{
				{Name: "Lake St. Moritz", Address: "7500 St. Moritz, Switzerland", Description: "A picturesque lake popular for swimming, sailing, and scenic walks, especially in the summer months."},
				{Name: "Muottas Muragl", Address: "7500 St. Moritz, Switzerland", Description: "Accessible by funicular, Muottas Muragl offers stunning views of the Upper Engadine and is an ideal starting point for hiking trails."},
				{Name: "The Engadine Museum", Address: "Via dal Bagn 2, 7500 St. Moritz, Switzerland", Description: "This museum showcases the cultural history of the Engadine region, featuring traditional artifacts, art, and exhibitions on local life."},
			},
		},
	}
}

// FindAttraction looks up an attraction by name.
func FindAttraction(name string) (Attraction, bool) {
	for _, a := range Attractions() {
		if a.Name == name {
			return a, true
		}
	}
	return Attraction{}, false
}

// CollectibleCards returns the gallery catalog. Card titles are the join key
// against the unlock registry; note that the "Château de Chillon" card does
// not match the "Chillon Castle" attraction name, so completing that quest
// unlocks a title with no card behind it (kept as-is, see DESIGN.md).
func CollectibleCards() []Card {
	return []Card{
		{Title: "The Matterhorn", Subtitle: "Swiss Alps, Zermatt", Image: "assets/ph101.jpg", Description: "The Matterhorn, standing at 4,478 meters, is one of Switzerland's most iconic mountains and draws mountaineers and photographers from around the world for its distinctive shape.", Fact: "The mountain was first summited in 1865, though it came with a tragic descent, marking its place in history.", DidYouKnow: "The Matterhorn's faces align with the four cardinal directions, giving it an exceptional geometric appearance."},
		{Title: "Lake Lucerne", Subtitle: "Lucerne Region", Image: "assets/ph102.jpg", Description: "Lake Lucerne, also known as Vierwaldstättersee, is Switzerland's fourth-largest lake and renowned for its scenic views, boat trips, and historical sites along its shores.", Fact: "The lake gets its name from the four forested regions, or cantons, surrounding it.", DidYouKnow: "Paddle steamers have been running on Lake Lucerne since the late 19th century, offering panoramic lake cruises."},
		{Title: "Château de Chillon", Subtitle: "Lake Geneva, Montreux", Image: "assets/ph103.jpg", Description: "This medieval fortress, dating back to the 12th century, has inspired writers like Lord Byron and painters with its lakeside location and breathtaking architecture.", Fact: "Château de Chillon was a toll station for trade routes between Italy and northern Europe.", DidYouKnow: "The castle has 25 separate buildings, including an eerie dungeon once used as a prison."},
		{Title: "Jungfraujoch", Subtitle: "Bernese Oberland, Top of Europe", Image: "assets/ph104.jpg", Description: "Known as the \"Top of Europe,\" Jungfraujoch offers stunning alpine views and is accessible by the highest railway in Europe.", Fact: "The Jungfrau Railway was completed in 1912 after a 16-year construction period.", DidYouKnow: "The Sphinx Observatory here sits at 3,571 meters, providing a unique scientific research outpost."},
		{Title: "Swiss National Park", Subtitle: "Engadine Valley", Image: "assets/ph105.jpg", Description: "Established in 1914, this is Switzerland's only national park, protecting over 170 square kilometers of natural beauty and alpine biodiversity.", Fact: "It's the oldest national park in the Alps and has strict protection policies for its wildlife.", DidYouKnow: "Visitors must stay on marked trails to protect the environment and preserve wildlife habitats."},
		{Title: "Bern Old Town", Subtitle: "Bern, UNESCO World Heritage Site", Image: "assets/ph106.jpg", Description: "Bern's Old Town, with its medieval architecture, is a UNESCO World Heritage site and home to the famous Zytglogge clock tower.", Fact: "The city's characteristic sandstone buildings date back to the 15th and 16th centuries.", DidYouKnow: "Albert Einstein once lived here, and his apartment is now a museum."},
		{Title: "Grand Casino Luzern", Subtitle: "Lucerne", Image: "assets/ph107.jpg", Description: "Grand Casino Luzern is known for its elegant architecture, fine dining, and scenic lakeside location, offering entertainment and gaming in the heart of Lucerne.", Fact: "Opened in 1882, it remains one of Switzerland's most popular casinos.", DidYouKnow: "Besides gaming, it regularly hosts concerts and cultural events, blending modern entertainment with historic charm."},
		{Title: "Aletsch Glacier", Subtitle: "Jungfrau-Aletsch Protected Area", Image: "assets/ph108.jpg", Description: "The Aletsch Glacier, stretching over 23 km, is the largest glacier in the Alps and a UNESCO World Heritage Site.", Fact: "Scientists have monitored this glacier's gradual retreat due to climate change.", DidYouKnow: "It contains nearly 11 billion tons of ice, enough to fill 4 million Olympic swimming pools."},
		{Title: "St. Moritz", Subtitle: "Engadine Valley", Image: "assets/ph109.jpg", Description: "Known for its glamorous ski resorts, St. Moritz is a luxury destination famous for winter sports, luxury, and elegance.", Fact: "St. Moritz hosted the Winter Olympics twice, in 1928 and 1948.", DidYouKnow: "It's home to the famous Cresta Run, a natural ice skeleton racing track."},
		{Title: "Rhine Falls", Subtitle: "Schaffhausen", Image: "assets/ph110.jpg", Description: "The Rhine Falls is Europe's largest waterfall, attracting thousands of visitors for its roaring cascades and boat rides.", Fact: "The falls are over 15,000 years old, formed during the last Ice Age.", DidYouKnow: "In summer, more than 600,000 liters of water per second tumble over the falls."},
	}
}
