package fixture

// userEvents maps a fixture username to their ten events. Locations stay
// inside each user's home country so the map view shows distinct clusters.
var userEvents = map[string][]Event{
	"anna":   annaEvents,
	"marco":  marcoEvents,
	"sophie": sophieEvents,
	"hans":   hansEvents,
	"elena":  elenaEvents,
}

var annaEvents = []Event{
	{Location: "Warsaw, Poland", Latitude: 52.2297, Longitude: 21.0122, Title: "Playground Meetup for Toddlers", Description: "Looking for other moms with toddlers (2-4 years) to meet at the playground. Let's chat while kids play!", Category: "parents_kids", DaysAhead: 2, Hour: 10, MaxParticipants: 5, Gender: "any", AgeMin: 25, AgeMax: 45},
	{Location: "Krakow, Poland", Latitude: 50.0647, Longitude: 19.9450, Title: "Coffee Morning for New Moms", Description: "New to motherhood? Join us for coffee and support. Share experiences and make friends.", Category: "social_drinks", DaysAhead: 3, Hour: 9, MaxParticipants: 8, Gender: "female", AgeMin: 20, AgeMax: 50},
	{Location: "Gdansk, Poland", Latitude: 54.3520, Longitude: 18.6466, Title: "Baby Swimming Class", Description: "Infant swimming session at local pool. Certified instructor, fun and safe environment.", Category: "sports_fitness", DaysAhead: 5, Hour: 11, MaxParticipants: 10, Gender: "any", AgeMin: 0, AgeMax: 5},
	{Location: "Poznan, Poland", Latitude: 52.4064, Longitude: 16.9252, Title: "Kids Birthday Party Planning", Description: "Planning a birthday party? Let's share ideas, vendors, and tips for amazing kids parties.", Category: "social_drinks", DaysAhead: 4, Hour: 14, MaxParticipants: 6, Gender: "any", AgeMin: 25, AgeMax: 45},
	{Location: "Wroclaw, Poland", Latitude: 51.1079, Longitude: 17.0385, Title: "Stroller Fitness Walk", Description: "Power walking with strollers! Get fit while bonding with other moms. All fitness levels welcome.", Category: "sports_fitness", DaysAhead: 6, Hour: 10, MaxParticipants: 12, Gender: "female", AgeMin: 20, AgeMax: 45},
	{Location: "Lodz, Poland", Latitude: 51.7592, Longitude: 19.4560, Title: "Bilingual Playgroup (Polish-English)", Description: "Playgroup for kids to practice English. Songs, games, and fun activities.", Category: "parents_kids", DaysAhead: 7, Hour: 15, MaxParticipants: 8, Gender: "any", AgeMin: 0, AgeMax: 10},
	{Location: "Szczecin, Poland", Latitude: 53.4285, Longitude: 14.5528, Title: "Mom's Book Club", Description: "Monthly book club for mothers. This month: modern parenting books. Bring wine!", Category: "social_drinks", DaysAhead: 8, Hour: 19, MaxParticipants: 10, Gender: "female", AgeMin: 25, AgeMax: 55},
	{Location: "Lublin, Poland", Latitude: 51.2465, Longitude: 22.5684, Title: "Craft Afternoon for Kids", Description: "Arts and crafts session for children 5-10. Materials provided. Parents stay and chat!", Category: "business_networking", DaysAhead: 9, Hour: 14, MaxParticipants: 15, Gender: "any", AgeMin: 5, AgeMax: 12},
	{Location: "Bydgoszcz, Poland", Latitude: 53.1235, Longitude: 18.0084, Title: "Postpartum Support Group", Description: "Safe space for new mothers to discuss challenges, share experiences, and support each other.", Category: "social_drinks", DaysAhead: 10, Hour: 17, MaxParticipants: 8, Gender: "female", AgeMin: 20, AgeMax: 45},
	{Location: "Katowice, Poland", Latitude: 50.2649, Longitude: 19.0238, Title: "Family Picnic in the Park", Description: "Bring your family for a relaxed picnic. Kids can play, adults can network.", Category: "social_drinks", DaysAhead: 11, Hour: 12, MaxParticipants: 20, Gender: "any", AgeMin: 0, AgeMax: 99},
}

var marcoEvents = []Event{
	{Location: "Rome, Italy", Latitude: 41.9028, Longitude: 12.4964, Title: "Pickup Basketball Game", Description: "Looking for 5v5 basketball at outdoor court. All skill levels welcome. Bring water!", Category: "sports_fitness", DaysAhead: 2, Hour: 18, MaxParticipants: 10, Gender: "any", AgeMin: 18, AgeMax: 45},
	{Location: "Milan, Italy", Latitude: 45.4642, Longitude: 9.1900, Title: "Morning Cycling Tour", Description: "30km road cycling through city and countryside. Medium pace, coffee break included.", Category: "sports_fitness", DaysAhead: 3, Hour: 7, MaxParticipants: 8, Gender: "any", AgeMin: 20, AgeMax: 55},
	{Location: "Florence, Italy", Latitude: 43.7696, Longitude: 11.2558, Title: "Football/Soccer Kickabout", Description: "Casual soccer game in the park. Just for fun, no pressure. All ages and levels.", Category: "sports_fitness", DaysAhead: 4, Hour: 17, MaxParticipants: 22, Gender: "any", AgeMin: 16, AgeMax: 50},
	{Location: "Venice, Italy", Latitude: 45.4408, Longitude: 12.3155, Title: "Beach Volleyball Tournament", Description: "Beach volleyball at Lido. Form teams of 4. Prizes for winners! BBQ after.", Category: "sports_fitness", DaysAhead: 5, Hour: 15, MaxParticipants: 16, Gender: "any", AgeMin: 18, AgeMax: 40},
	{Location: "Naples, Italy", Latitude: 40.8518, Longitude: 14.2681, Title: "Tennis Doubles Match", Description: "Looking for tennis partners for doubles. Intermediate level. Courts reserved.", Category: "sports_fitness", DaysAhead: 6, Hour: 9, MaxParticipants: 4, Gender: "any", AgeMin: 25, AgeMax: 50},
	{Location: "Turin, Italy", Latitude: 45.0703, Longitude: 7.6869, Title: "Mountain Biking Trail", Description: "MTB ride through nearby trails. Moderate difficulty. Helmets required!", Category: "sports_fitness", DaysAhead: 7, Hour: 10, MaxParticipants: 6, Gender: "any", AgeMin: 20, AgeMax: 45},
	{Location: "Bologna, Italy", Latitude: 44.4949, Longitude: 11.3426, Title: "Climbing Gym Session", Description: "Indoor climbing at local gym. Beginners welcome, equipment available for rent.", Category: "sports_fitness", DaysAhead: 8, Hour: 19, MaxParticipants: 8, Gender: "any", AgeMin: 18, AgeMax: 55},
	{Location: "Genoa, Italy", Latitude: 44.4056, Longitude: 8.9463, Title: "Running Club Meetup", Description: "Weekly 10km run along the waterfront. All paces welcome. Stretching session after.", Category: "sports_fitness", DaysAhead: 9, Hour: 6, MaxParticipants: 15, Gender: "any", AgeMin: 18, AgeMax: 60},
	{Location: "Verona, Italy", Latitude: 45.4384, Longitude: 10.9916, Title: "Yoga in the Park", Description: "Outdoor yoga session at sunset. Bring your mat. Suitable for all levels.", Category: "sports_fitness", DaysAhead: 10, Hour: 18, MaxParticipants: 20, Gender: "any", AgeMin: 16, AgeMax: 65},
	{Location: "Palermo, Italy", Latitude: 38.1157, Longitude: 13.3615, Title: "Swim Training Group", Description: "Open water swimming practice. Lifeguard present. Intermediate swimmers.", Category: "sports_fitness", DaysAhead: 11, Hour: 8, MaxParticipants: 12, Gender: "any", AgeMin: 20, AgeMax: 50},
}

var sophieEvents = []Event{
	{Location: "Paris, France", Latitude: 48.8566, Longitude: 2.3522, Title: "Wine Tasting Evening", Description: "Discover French wines! Expert sommelier guides us through 6 wines and cheeses.", Category: "food_dining", DaysAhead: 2, Hour: 19, MaxParticipants: 12, Gender: "any", AgeMin: 21, AgeMax: 60},
	{Location: "Lyon, France", Latitude: 45.7640, Longitude: 4.8357, Title: "Cooking Class: French Pastries", Description: "Learn to make croissants and pain au chocolat from scratch. Take home your creations!", Category: "food_dining", DaysAhead: 3, Hour: 14, MaxParticipants: 8, Gender: "any", AgeMin: 18, AgeMax: 65},
	{Location: "Marseille, France", Latitude: 43.2965, Longitude: 5.3698, Title: "Food Market Tour", Description: "Explore local markets, taste regional specialties. Lunch at hidden gem bistro included.", Category: "food_dining", DaysAhead: 4, Hour: 10, MaxParticipants: 10, Gender: "any", AgeMin: 25, AgeMax: 70},
	{Location: "Nice, France", Latitude: 43.7102, Longitude: 7.2620, Title: "Picnic with French Delicacies", Description: "Bring your favorite French dish to share. Wine, cheese, and conversation by the sea.", Category: "food_dining", DaysAhead: 5, Hour: 12, MaxParticipants: 15, Gender: "any", AgeMin: 20, AgeMax: 55},
	{Location: "Bordeaux, France", Latitude: 44.8378, Longitude: -0.5792, Title: "Vineyard Visit & Lunch", Description: "Day trip to Bordeaux vineyard. Wine tasting, tour, and gourmet lunch.", Category: "food_dining", DaysAhead: 6, Hour: 11, MaxParticipants: 12, Gender: "any", AgeMin: 21, AgeMax: 65},
	{Location: "Toulouse, France", Latitude: 43.6047, Longitude: 1.4442, Title: "French Cinema Night", Description: "Watch classic French film (with subtitles) followed by discussion and drinks.", Category: "business_networking", DaysAhead: 7, Hour: 20, MaxParticipants: 20, Gender: "any", AgeMin: 18, AgeMax: 99},
	{Location: "Strasbourg, France", Latitude: 48.5734, Longitude: 7.7521, Title: "Museum & Gallery Hopping", Description: "Visit 3 art museums in one afternoon. Share impressions over coffee after.", Category: "business_networking", DaysAhead: 8, Hour: 14, MaxParticipants: 8, Gender: "any", AgeMin: 22, AgeMax: 70},
	{Location: "Nantes, France", Latitude: 47.2184, Longitude: -1.5536, Title: "Live Jazz & Dinner", Description: "Evening at jazz club. Dinner reservations at 7pm, music starts at 9pm.", Category: "business_networking", DaysAhead: 9, Hour: 19, MaxParticipants: 10, Gender: "any", AgeMin: 25, AgeMax: 60},
	{Location: "Lille, France", Latitude: 50.6292, Longitude: 3.0573, Title: "French Conversation Exchange", Description: "Practice French! Native speakers welcome. Casual café setting, order your own.", Category: "learning_skills", DaysAhead: 10, Hour: 18, MaxParticipants: 12, Gender: "any", AgeMin: 18, AgeMax: 99},
	{Location: "Montpellier, France", Latitude: 43.6108, Longitude: 3.8767, Title: "Chocolate Making Workshop", Description: "Learn chocolate making from artisan chocolatier. Taste and take home samples!", Category: "food_dining", DaysAhead: 11, Hour: 15, MaxParticipants: 10, Gender: "any", AgeMin: 18, AgeMax: 65},
}

var hansEvents = []Event{
	{Location: "Munich, Germany", Latitude: 48.1351, Longitude: 11.5820, Title: "Alpine Hiking Adventure", Description: "Full day hike in Bavarian Alps. 15km, moderate difficulty. Pack lunch and water.", Category: "adventure_travel", DaysAhead: 2, Hour: 8, MaxParticipants: 8, Gender: "any", AgeMin: 20, AgeMax: 55},
	{Location: "Berlin, Germany", Latitude: 52.5200, Longitude: 13.4050, Title: "Urban Nature Walk", Description: "Discover Berlin's hidden green spaces and parks. 2-hour easy walk with nature guide.", Category: "adventure_travel", DaysAhead: 3, Hour: 10, MaxParticipants: 15, Gender: "any", AgeMin: 16, AgeMax: 70},
	{Location: "Hamburg, Germany", Latitude: 53.5511, Longitude: 9.9937, Title: "Birdwatching by the Lake", Description: "Early morning birdwatching. Bring binoculars if you have them. Hot coffee provided!", Category: "adventure_travel", DaysAhead: 4, Hour: 6, MaxParticipants: 10, Gender: "any", AgeMin: 18, AgeMax: 75},
	{Location: "Frankfurt, Germany", Latitude: 50.1109, Longitude: 8.6821, Title: "Forest Bathing (Shinrin-yoku)", Description: "Mindful walk through forest. Reduce stress, connect with nature. Suitable for all.", Category: "adventure_travel", DaysAhead: 5, Hour: 14, MaxParticipants: 12, Gender: "any", AgeMin: 18, AgeMax: 65},
	{Location: "Cologne, Germany", Latitude: 50.9375, Longitude: 6.9603, Title: "Rhine River Kayaking", Description: "Kayaking trip on the Rhine. Equipment provided. Basic swimming skills required.", Category: "sports_fitness", DaysAhead: 6, Hour: 9, MaxParticipants: 8, Gender: "any", AgeMin: 18, AgeMax: 50},
	{Location: "Stuttgart, Germany", Latitude: 48.7758, Longitude: 9.1829, Title: "Camping Weekend Prep", Description: "Planning meeting for weekend camping trip. Discuss gear, location, and logistics.", Category: "adventure_travel", DaysAhead: 7, Hour: 19, MaxParticipants: 10, Gender: "any", AgeMin: 20, AgeMax: 55},
	{Location: "Dresden, Germany", Latitude: 51.0504, Longitude: 13.7373, Title: "Rock Climbing in Saxon Switzerland", Description: "Outdoor rock climbing for experienced climbers. Safety equipment required.", Category: "sports_fitness", DaysAhead: 8, Hour: 8, MaxParticipants: 6, Gender: "any", AgeMin: 21, AgeMax: 50},
	{Location: "Heidelberg, Germany", Latitude: 49.3988, Longitude: 8.6724, Title: "Photography Walk in Nature", Description: "Capture autumn colors! Bring your camera. Share tips and techniques.", Category: "business_networking", DaysAhead: 9, Hour: 15, MaxParticipants: 12, Gender: "any", AgeMin: 18, AgeMax: 70},
	{Location: "Nuremberg, Germany", Latitude: 49.4521, Longitude: 11.0767, Title: "Wild Mushroom Foraging", Description: "Learn to identify edible mushrooms with expert mycologist. Cook findings together!", Category: "adventure_travel", DaysAhead: 10, Hour: 9, MaxParticipants: 8, Gender: "any", AgeMin: 25, AgeMax: 65},
	{Location: "Leipzig, Germany", Latitude: 51.3397, Longitude: 12.3731, Title: "Bike Tour Through Countryside", Description: "40km easy cycling through villages and farmland. Stop at beer garden.", Category: "sports_fitness", DaysAhead: 11, Hour: 10, MaxParticipants: 10, Gender: "any", AgeMin: 18, AgeMax: 60},
}

var elenaEvents = []Event{
	{Location: "Madrid, Spain", Latitude: 40.4168, Longitude: -3.7038, Title: "Salsa Dancing Night", Description: "Salsa night at local club! Beginners welcome, free lesson at 8pm. Dance till midnight!", Category: "business_networking", DaysAhead: 2, Hour: 20, MaxParticipants: 20, Gender: "any", AgeMin: 18, AgeMax: 45},
	{Location: "Barcelona, Spain", Latitude: 41.3851, Longitude: 2.1734, Title: "Beach Party & BBQ", Description: "Sunset beach party at Barceloneta. Bring food to share. Music, dancing, swimming!", Category: "social_drinks", DaysAhead: 3, Hour: 18, MaxParticipants: 25, Gender: "any", AgeMin: 18, AgeMax: 50},
	{Location: "Valencia, Spain", Latitude: 39.4699, Longitude: -0.3763, Title: "Paella Cooking Party", Description: "Cook authentic Valencian paella together! Eat, drink wine, make friends.", Category: "food_dining", DaysAhead: 4, Hour: 17, MaxParticipants: 12, Gender: "any", AgeMin: 20, AgeMax: 60},
	{Location: "Seville, Spain", Latitude: 37.3891, Longitude: -5.9845, Title: "Flamenco Show & Tapas", Description: "Authentic flamenco performance followed by tapas bar crawl. Olé!", Category: "business_networking", DaysAhead: 5, Hour: 21, MaxParticipants: 15, Gender: "any", AgeMin: 21, AgeMax: 99},
	{Location: "Malaga, Spain", Latitude: 36.7213, Longitude: -4.4214, Title: "Girls Night Out", Description: "Ladies only! Dinner, drinks, dancing. Let's have fun and meet new friends!", Category: "social_drinks", DaysAhead: 6, Hour: 20, MaxParticipants: 12, Gender: "female", AgeMin: 21, AgeMax: 45},
	{Location: "Bilbao, Spain", Latitude: 43.2630, Longitude: -2.9350, Title: "Language Exchange: Spanish-English", Description: "Practice languages over coffee and pintxos. Native speakers of any language welcome!", Category: "learning_skills", DaysAhead: 7, Hour: 19, MaxParticipants: 15, Gender: "any", AgeMin: 18, AgeMax: 99},
	{Location: "Granada, Spain", Latitude: 37.1773, Longitude: -3.5986, Title: "Sunset at Alhambra", Description: "Watch sunset from Alhambra viewpoint. Bring wine and snacks. Magical experience!", Category: "social_drinks", DaysAhead: 8, Hour: 19, MaxParticipants: 10, Gender: "any", AgeMin: 18, AgeMax: 65},
	{Location: "Zaragoza, Spain", Latitude: 41.6488, Longitude: -0.8891, Title: "Karaoke Night", Description: "Sing your heart out! Private karaoke room reserved. All skill levels (no judgment!)", Category: "business_networking", DaysAhead: 9, Hour: 21, MaxParticipants: 15, Gender: "any", AgeMin: 18, AgeMax: 99},
	{Location: "Ibiza, Spain", Latitude: 38.9067, Longitude: 1.4206, Title: "Yoga & Meditation Retreat", Description: "Day retreat: yoga, meditation, healthy lunch. Find your zen by the sea.", Category: "sports_fitness", DaysAhead: 10, Hour: 9, MaxParticipants: 20, Gender: "any", AgeMin: 18, AgeMax: 70},
	{Location: "San Sebastian, Spain", Latitude: 43.3183, Longitude: -1.9812, Title: "Pintxos Bar Hopping Tour", Description: "Try the best pintxos in town! 5 bars, 5 pintxos, lots of laughs.", Category: "food_dining", DaysAhead: 11, Hour: 19, MaxParticipants: 12, Gender: "any", AgeMin: 21, AgeMax: 60},
}
