// internal/app/system/seeding/seeding.go

// Package seeding inserts the default site content (courses, partner
// offers, blog posts, testimonial reviews) on first boot. Existing
// documents are never overwritten, so operators can edit seeded content
// without it being reset on restart.
package seeding

import (
	"context"
	"errors"

	blogstore "github.com/dalemusser/fairway/internal/app/store/blog"
	coursestore "github.com/dalemusser/fairway/internal/app/store/courses"
	partnerstore "github.com/dalemusser/fairway/internal/app/store/partners"
	reviewstore "github.com/dalemusser/fairway/internal/app/store/reviews"
	"github.com/dalemusser/fairway/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// SeedAll inserts default content that is missing. Safe to run on every
// boot.
func SeedAll(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	if err := seedGolfCourses(ctx, coursestore.New(db), logger); err != nil {
		return err
	}
	if err := seedPartnerOffers(ctx, partnerstore.New(db), logger); err != nil {
		return err
	}
	if err := seedBlogPosts(ctx, blogstore.New(db), logger); err != nil {
		return err
	}
	return seedReviews(ctx, db, reviewstore.New(db), logger)
}

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func seedGolfCourses(ctx context.Context, store *coursestore.Store, logger *zap.Logger) error {
	courses := []models.GolfCourse{
		{
			ID:   "golf-alcanada",
			Name: "Golf Alcanada",
			Description: map[string]string{
				"en": "Nestled along the coast with breathtaking views of the iconic lighthouse, Alcanada is a true gem of Mediterranean golf.",
				"de": "An der Küste gelegen mit atemberaubendem Blick auf den ikonischen Leuchtturm, ist Alcanada ein wahres Juwel des mediterranen Golfs.",
				"fr": "Niché le long de la côte avec des vues imprenables sur le phare emblématique, Alcanada est un véritable joyau du golf méditerranéen.",
				"se": "Belägen längs kusten med hisnande utsikt över den ikoniska fyren, Alcanada är en sann pärla inom Medelhavsgolf.",
			},
			Image:      "https://images.unsplash.com/photo-1571928917219-478ae39b64ca?w=800",
			Holes:      18,
			Par:        72,
			PriceFrom:  floatPtr(115),
			Location:   "Alcúdia",
			Features:   []string{"Ocean Views", "Lighthouse Views", "Golf Academy", "Restaurant"},
			BookingURL: "https://golfinmallorca.greenfee365.com/golf-course/golf-alcanada",
		},
		{
			ID:   "golf-son-gual",
			Name: "Golf Son Gual Mallorca",
			Description: map[string]string{
				"en": "One of Europe's finest courses, Son Gual offers a world-class championship experience with stunning Mediterranean views.",
				"de": "Einer der besten Plätze Europas bietet Son Gual ein erstklassiges Championship-Erlebnis mit atemberaubendem Mittelmeerblick.",
				"fr": "L'un des meilleurs parcours d'Europe, Son Gual offre une expérience de championnat de classe mondiale.",
				"se": "En av Europas finaste banor, Son Gual erbjuder en världsklassig mästerskapsupplevelse.",
			},
			Image:      "https://images.unsplash.com/photo-1587174486073-ae5e5cff23aa?w=800",
			Holes:      18,
			Par:        72,
			PriceFrom:  floatPtr(85),
			Location:   "Palma de Mallorca",
			Features:   []string{"Championship Course", "Practice Range", "Pro Shop", "Restaurant"},
			BookingURL: "https://golfinmallorca.greenfee365.com/golf-course/golf-son-gual-mallorca",
		},
		{
			ID:   "pula-golf-resort",
			Name: "Pula Golf Resort",
			Description: map[string]string{
				"en": "A beautiful resort course surrounded by natural beauty, offering a relaxed yet challenging golfing experience.",
				"de": "Ein wunderschöner Resort-Platz umgeben von natürlicher Schönheit, bietet ein entspanntes aber anspruchsvolles Golferlebnis.",
				"fr": "Un magnifique parcours de resort entouré de beauté naturelle, offrant une expérience de golf détendue mais stimulante.",
				"se": "En vacker resortbana omgiven av naturlig skönhet, erbjuder en avslappnad men utmanande golfupplevelse.",
			},
			Image:      "https://images.unsplash.com/photo-1535131749006-b7f58c99034b?w=800",
			Holes:      18,
			Par:        72,
			PriceFrom:  floatPtr(74),
			Location:   "Son Servera",
			Features:   []string{"Resort Course", "Practice Facilities", "Clubhouse", "Restaurant"},
			BookingURL: "https://golfinmallorca.greenfee365.com/golf-course/pula-golf-resort",
		},
	}

	for i := range courses {
		courses[i].DisplayOrder = i

		_, err := store.GetByID(ctx, courses[i].ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, coursestore.ErrNotFound) {
			return err
		}

		if err := store.Create(ctx, &courses[i]); err != nil {
			return err
		}
		logger.Info("seeded golf course", zap.String("id", courses[i].ID))
	}
	return nil
}

func seedPartnerOffers(ctx context.Context, store *partnerstore.Store, logger *zap.Logger) error {
	offers := []models.PartnerOffer{
		{
			ID:   "hotel-playa-esperanza",
			Name: "Playa Esperanza Resort",
			Type: models.OfferTypeHotel,
			Description: map[string]string{
				"en": "Luxury beachfront resort with world-class amenities and exclusive golf packages.",
				"de": "Luxuriöses Strandresort mit erstklassiger Ausstattung und exklusiven Golfpaketen.",
				"fr": "Resort de luxe en bord de mer avec des équipements de classe mondiale et des forfaits golf exclusifs.",
				"se": "Lyxigt strandnära resort med faciliteter i världsklass och exklusiva golfpaket.",
			},
			Image:    "https://images.unsplash.com/photo-1520250497591-112f2f40a3f4?w=800",
			Location: "Playa de Muro",
			Deal: map[string]string{
				"en": "Stay 7 nights, play 3 rounds free",
				"de": "7 Nächte bleiben, 3 Runden gratis spielen",
				"fr": "Séjournez 7 nuits, jouez 3 parcours gratuits",
				"se": "Bo 7 nätter, spela 3 rundor gratis",
			},
			OriginalPrice:   floatPtr(1400),
			OfferPrice:      floatPtr(1120),
			DiscountPercent: intPtr(20),
			ContactURL:      "https://www.playaesperanza.com",
		},
		{
			ID:   "restaurant-es-fum",
			Name: "Es Fum",
			Type: models.OfferTypeRestaurant,
			Description: map[string]string{
				"en": "Michelin-starred dining on the edge of the Mediterranean, pairing modern cuisine with local produce.",
				"de": "Mit Michelin-Stern ausgezeichnete Küche am Rande des Mittelmeers, moderne Gerichte mit lokalen Produkten.",
				"fr": "Gastronomie étoilée au bord de la Méditerranée, mariant cuisine moderne et produits locaux.",
				"se": "Michelinstjärnig matupplevelse vid Medelhavet, modern mat med lokala råvaror.",
			},
			Image:    "https://images.unsplash.com/photo-1414235077428-338989a2e8c0?w=800",
			Location: "Costa d'en Blanes",
			Deal: map[string]string{
				"en": "Complimentary wine pairing with the tasting menu",
				"de": "Kostenlose Weinbegleitung zum Degustationsmenü",
				"fr": "Accord mets-vins offert avec le menu dégustation",
				"se": "Gratis vinpaket till avsmakningsmenyn",
			},
			ContactURL: "https://www.esfum.com",
		},
		{
			ID:   "beach-club-purobeach",
			Name: "Purobeach Palma",
			Type: models.OfferTypeBeachClub,
			Description: map[string]string{
				"en": "Iconic beach club with pool, spa, and sunset DJ sessions overlooking the Bay of Palma.",
				"de": "Ikonischer Beachclub mit Pool, Spa und Sunset-DJ-Sessions mit Blick auf die Bucht von Palma.",
				"fr": "Beach club emblématique avec piscine, spa et sessions DJ au coucher du soleil sur la baie de Palma.",
				"se": "Ikonisk beach club med pool, spa och DJ-kvällar med utsikt över Palmabukten.",
			},
			Image:    "https://images.unsplash.com/photo-1540541338287-41700207dee6?w=800",
			Location: "Palma de Mallorca",
			Deal: map[string]string{
				"en": "Golfer's day pass with lunch included",
				"de": "Golfer-Tagespass inklusive Mittagessen",
				"fr": "Pass journée golfeur avec déjeuner inclus",
				"se": "Dagpass för golfare med lunch inkluderad",
			},
			ContactURL: "https://www.purobeach.com",
		},
		{
			ID:   "cafe-bar-cappuccino",
			Name: "Cappuccino Grand Café",
			Type: models.OfferTypeCafeBar,
			Description: map[string]string{
				"en": "Elegant café on Palma's seafront, the classic stop after a morning round.",
				"de": "Elegantes Café an Palmas Uferpromenade, der klassische Stopp nach einer Morgenrunde.",
				"fr": "Café élégant sur le front de mer de Palma, l'arrêt classique après un parcours matinal.",
				"se": "Elegant kafé vid Palmas strandpromenad, det klassiska stoppet efter en morgonrunda.",
			},
			Image:    "https://images.unsplash.com/photo-1501339847302-ac426a4a7cbb?w=800",
			Location: "Palma de Mallorca",
			Deal: map[string]string{
				"en": "Show your scorecard for a free coffee with any breakfast",
				"de": "Scorekarte zeigen und einen Gratiskaffee zum Frühstück erhalten",
				"fr": "Présentez votre carte de score pour un café offert avec le petit-déjeuner",
				"se": "Visa ditt scorekort och få gratis kaffe till frukosten",
			},
			ContactURL: "https://www.cappuccinograndcafe.com",
		},
	}

	for i := range offers {
		offers[i].DisplayOrder = i

		_, err := store.GetByID(ctx, offers[i].ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, partnerstore.ErrNotFound) {
			return err
		}

		if err := store.Create(ctx, &offers[i]); err != nil {
			return err
		}
		logger.Info("seeded partner offer",
			zap.String("id", offers[i].ID),
			zap.String("type", offers[i].Type))
	}
	return nil
}

func seedBlogPosts(ctx context.Context, store *blogstore.Store, logger *zap.Logger) error {
	posts := []models.BlogPost{
		{
			Slug: "best-golf-courses-mallorca",
			Title: map[string]string{
				"en": "The Best Golf Courses in Mallorca",
				"de": "Die besten Golfplätze auf Mallorca",
				"fr": "Les meilleurs parcours de golf à Majorque",
				"se": "De bästa golfbanorna på Mallorca",
			},
			Excerpt: map[string]string{
				"en": "From coastal gems to championship layouts, here is where to play on the island.",
				"de": "Von Küstenjuwelen bis zu Championship-Plätzen, hier spielt man auf der Insel.",
				"fr": "Des joyaux côtiers aux parcours de championnat, voici où jouer sur l'île.",
				"se": "Från kustpärlor till mästerskapsbanor, här spelar du på ön.",
			},
			Content: map[string]string{
				"en": "Mallorca packs more than twenty courses into a single island. Golf Alcanada pairs sea breezes with lighthouse views, Son Gual brings tournament conditioning, and Pula Golf Resort rounds out a week of relaxed resort golf.",
				"de": "Mallorca bietet mehr als zwanzig Plätze auf einer einzigen Insel. Golf Alcanada kombiniert Meeresbrise mit Leuchtturmblick, Son Gual bietet Turnierbedingungen und das Pula Golf Resort rundet eine Woche entspannten Resort-Golfs ab.",
				"fr": "Majorque compte plus de vingt parcours sur une seule île. Golf Alcanada associe brise marine et vue sur le phare, Son Gual offre des conditions de tournoi et Pula Golf Resort complète une semaine de golf détendu.",
				"se": "Mallorca rymmer mer än tjugo banor på en enda ö. Golf Alcanada kombinerar havsbris med fyrutsikt, Son Gual bjuder på tävlingsförhållanden och Pula Golf Resort avrundar en vecka av avslappnad resortgolf.",
			},
			Image:    "https://images.unsplash.com/photo-1592919505780-303950717480?w=800",
			Author:   "James Thompson",
			Category: "course-guides",
			Tags:     []string{"courses", "guide", "mallorca"},
		},
		{
			Slug: "championship-courses-mallorca",
			Title: map[string]string{
				"en": "Championship Golf: Mallorca's Most Challenging Courses",
				"de": "Championship-Golf: Mallorcas anspruchsvollste Plätze",
				"fr": "Golf Championship: Les parcours les plus difficiles de Majorque",
				"se": "Championship Golf: Mallorcas mest utmanande banor",
			},
			Excerpt: map[string]string{
				"en": "Ready for a challenge? Discover the courses that test even the most experienced golfers.",
				"de": "Bereit für eine Herausforderung? Entdecken Sie die Plätze, die selbst erfahrene Golfer testen.",
				"fr": "Prêt pour un défi? Découvrez les parcours qui testent même les golfeurs les plus expérimentés.",
				"se": "Redo för en utmaning? Upptäck banorna som testar även de mest erfarna golfarna.",
			},
			Content: map[string]string{
				"en": "For experienced golfers seeking a true test of their skills, Mallorca delivers world-class championship courses. Golf Son Gual is widely considered one of Europe's finest with its immaculate conditioning and strategic design, while Golf Alcanada challenges players with coastal winds around the historic lighthouse.",
				"de": "Für erfahrene Golfer, die einen echten Test ihrer Fähigkeiten suchen, bietet Mallorca Weltklasse-Championship-Plätze. Golf Son Gual gilt als einer der besten Europas, während Golf Alcanada mit Küstenwinden rund um den historischen Leuchtturm fordert.",
				"fr": "Pour les golfeurs expérimentés à la recherche d'un véritable test, Majorque offre des parcours championship de classe mondiale. Golf Son Gual est considéré comme l'un des meilleurs d'Europe, tandis que Golf Alcanada défie les joueurs avec les vents côtiers.",
				"se": "För erfarna golfare som söker ett verkligt test levererar Mallorca mästerskapsbanor i världsklass. Golf Son Gual anses vara en av Europas finaste, medan Golf Alcanada utmanar med kustvindar kring den historiska fyren.",
			},
			Image:    "https://images.unsplash.com/photo-1592919505780-303950717480?w=800",
			Author:   "James Thompson",
			Category: "course-guides",
			Tags:     []string{"championship", "advanced", "challenge"},
		},
	}

	for i := range posts {
		posts[i].Published = true

		_, err := store.GetBySlug(ctx, posts[i].Slug)
		if err == nil {
			continue
		}
		if !errors.Is(err, blogstore.ErrNotFound) {
			return err
		}

		if err := store.Create(ctx, &posts[i]); err != nil {
			// Another instance may have seeded the slug between the check
			// and the insert.
			if errors.Is(err, blogstore.ErrDuplicateSlug) {
				continue
			}
			return err
		}
		logger.Info("seeded blog post", zap.String("slug", posts[i].Slug))
	}
	return nil
}

// seedReviews inserts approved testimonial reviews once, when the
// collection is empty.
func seedReviews(ctx context.Context, db *mongo.Database, store *reviewstore.Store, logger *zap.Logger) error {
	count, err := db.Collection("user_reviews").CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seeded := []models.UserReview{
		{
			UserName:   "Mark T.",
			UserEmail:  "mark.t@example.com",
			Rating:     5,
			Platform:   "Google Reviews",
			Language:   "EN",
			Country:    "UK",
			ReviewText: "Brilliant interface. Usually, booking golf abroad is a headache, but this was as easy as ordering a pizza. Got a great deal on a twilight round at Son Gual.",
		},
		{
			UserName:   "Hans-Jürgen S.",
			UserEmail:  "hans.s@example.com",
			Rating:     5,
			Platform:   "Google Reviews",
			Language:   "DE",
			Country:    "Germany",
			ReviewText: "Habe kurzfristig eine Startzeit für Alcanada gesucht. Die Webseite ist extrem übersichtlich und der Buchungsvorgang war in 2 Minuten erledigt. Sehr zu empfehlen.",
		},
		{
			UserName:   "Anders G.",
			UserEmail:  "anders.g@example.com",
			Rating:     5,
			Platform:   "Trustpilot",
			Language:   "SV",
			Country:    "Sweden",
			ReviewText: "Smidigaste bokningstjänsten jag testat. Bra priser och tydlig information om banorna.",
		},
		{
			UserName:   "Michel R.",
			UserEmail:  "michel.r@example.com",
			Rating:     5,
			Platform:   "TripAdvisor",
			Language:   "FR",
			Country:    "France",
			ReviewText: "Un choix incroyable de parcours. Le site est clair et les tarifs sont attractifs. Bravo pour la simplicité.",
		},
	}

	for i := range seeded {
		seeded[i].UserID = models.NewUserID()

		if err := store.Create(ctx, &seeded[i]); err != nil {
			return err
		}
		// Seeded testimonials go straight to approved.
		if err := store.SetStatus(ctx, seeded[i].ID, models.ReviewStatusApproved); err != nil {
			return err
		}
	}

	logger.Info("seeded testimonial reviews", zap.Int("count", len(seeded)))
	return nil
}
