package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"ticketlog/internal/likes"
	"ticketlog/internal/prompts"
	"ticketlog/internal/shared/config"
	"ticketlog/internal/shared/database"
	"ticketlog/internal/tickets"
	"ticketlog/internal/users"

	"github.com/google/uuid"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting Ticketlog Database Seeder...")

	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in the correct order (respecting foreign key constraints)
func (s *Seeder) CleanDatabase() error {
	// Delete in reverse dependency order
	tables := []string{
		"ticket_likes",
		"tickets",
		"musical_characters",
		"musical_shows",
		"band_profiles",
		"users",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Exec("SET CONSTRAINTS ALL DEFERRED").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to defer constraints: %w", err)
	}

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	if err := tx.Exec("SET CONSTRAINTS ALL IMMEDIATE").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to restore constraints: %w", err)
	}

	return tx.Commit().Error
}

// SeedAll seeds all required data
func (s *Seeder) SeedAll() error {
	ctx := context.Background()

	userIDs, err := s.SeedUsers()
	if err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	ticketIDs, err := s.SeedTickets(userIDs)
	if err != nil {
		return fmt.Errorf("failed to seed tickets: %w", err)
	}

	if err := s.SeedLikes(ticketIDs, userIDs); err != nil {
		return fmt.Errorf("failed to seed likes: %w", err)
	}

	if err := s.SeedMusicalShows(); err != nil {
		return fmt.Errorf("failed to seed musical shows: %w", err)
	}

	if err := s.SeedBandProfiles(); err != nil {
		return fmt.Errorf("failed to seed band profiles: %w", err)
	}

	// Clear Redis cache to ensure fresh state
	if s.db.Redis != nil {
		if err := s.db.Redis.FlushDB(ctx).Err(); err != nil {
			log.Printf("Warning: Failed to clear Redis cache: %v", err)
		}
	}

	return nil
}

// SeedUsers creates demo users
func (s *Seeder) SeedUsers() (map[string]string, error) {
	fmt.Println("  👤 Seeding users...")

	userIDs := make(map[string]string)
	userRepo := users.NewRepository(s.db.PostgreSQL)

	usersData := []struct {
		key      string
		nickname string
		email    string
	}{
		{"user1", "theatergoer", "theatergoer@example.com"},
		{"user2", "bandfan", "bandfan@example.com"},
		{"user3", "casualviewer", "casualviewer@example.com"},
	}

	for _, userData := range usersData {
		user := users.User{
			ID:        uuid.NewString(),
			Nickname:  userData.nickname,
			Email:     userData.email,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		if err := userRepo.Create(&user); err != nil {
			return nil, fmt.Errorf("failed to create user %s: %w", userData.email, err)
		}

		userIDs[userData.key] = user.ID
		fmt.Printf("    ✅ Created user: %s (%s)\n", user.Email, user.Nickname)
	}

	return userIDs, nil
}

// SeedTickets creates a spread of tickets across two years so the
// statistics and year-in-review endpoints have data to chew on
func (s *Seeder) SeedTickets(userIDs map[string]string) ([]uint, error) {
	fmt.Println("  🎫 Seeding tickets...")

	str := func(v string) *string { return &v }
	date := func(v string) time.Time {
		d, _ := time.Parse("2006-01-02", v)
		return d
	}

	ticketsData := []tickets.Ticket{
		{
			UserID:           userIDs["user1"],
			PerformanceTitle: "The Phantom of the Opera",
			Venue:            str("Blue Square"),
			Seat:             "1F A-12",
			Artist:           str("Kim Junsu"),
			Genre:            str("MUSICAL"),
			ReviewText:       str("The chandelier drop still gives me chills. Best cast I have seen so far."),
			IsPublic:         true,
			ViewDate:         date("2025-01-18"),
		},
		{
			UserID:           userIDs["user1"],
			PerformanceTitle: "Hedwig and the Angry Inch",
			Venue:            str("Blue Square"),
			Seat:             "2F B-3",
			Artist:           str("Cho Seung-woo"),
			Genre:            str("MUSICAL"),
			ReviewText:       str("Raw and intimate. The wig reveal landed perfectly."),
			IsPublic:         true,
			ViewDate:         date("2025-03-02"),
		},
		{
			UserID:           userIDs["user1"],
			PerformanceTitle: "Jannabi Live Tour",
			Venue:            str("Olympic Hall"),
			Seat:             "Standing 214",
			Artist:           str("Jannabi"),
			Genre:            str("BAND"),
			ReviewText:       str("Two hour encore. My voice is gone."),
			IsPublic:         true,
			ViewDate:         date("2025-07-12"),
		},
		{
			UserID:           userIDs["user1"],
			PerformanceTitle: "The Phantom of the Opera",
			Venue:            str("Blue Square"),
			Seat:             "1F C-7",
			Artist:           str("Kim Junsu"),
			Genre:            str("MUSICAL"),
			IsPublic:         false,
			ViewDate:         date("2024-11-23"),
		},
		{
			UserID:           userIDs["user2"],
			PerformanceTitle: "Silica Gel Concert",
			Venue:            str("Yes24 Live Hall"),
			Seat:             "Standing 88",
			Artist:           str("Silica Gel"),
			Genre:            str("BAND"),
			ReviewText:       str("The light design alone was worth the ticket."),
			IsPublic:         true,
			ViewDate:         date("2025-05-31"),
		},
	}

	var ticketIDs []uint
	for i := range ticketsData {
		if err := s.db.PostgreSQL.Create(&ticketsData[i]).Error; err != nil {
			return nil, fmt.Errorf("failed to create ticket %s: %w", ticketsData[i].PerformanceTitle, err)
		}
		ticketIDs = append(ticketIDs, ticketsData[i].ID)
		fmt.Printf("    ✅ Created ticket: %s (%s)\n", ticketsData[i].PerformanceTitle, ticketsData[i].ViewDate.Format("2006-01-02"))
	}

	return ticketIDs, nil
}

// SeedLikes creates a few likes on the public tickets
func (s *Seeder) SeedLikes(ticketIDs []uint, userIDs map[string]string) error {
	fmt.Println("  ❤️ Seeding likes...")

	likesData := []likes.TicketLike{
		{ID: uuid.New(), TicketID: ticketIDs[0], UserID: userIDs["user2"]},
		{ID: uuid.New(), TicketID: ticketIDs[0], UserID: userIDs["user3"]},
		{ID: uuid.New(), TicketID: ticketIDs[2], UserID: userIDs["user3"]},
		{ID: uuid.New(), TicketID: ticketIDs[4], UserID: userIDs["user1"]},
	}

	for _, like := range likesData {
		if err := s.db.PostgreSQL.Create(&like).Error; err != nil {
			return fmt.Errorf("failed to create like on ticket %d: %w", like.TicketID, err)
		}
	}

	fmt.Printf("    ✅ Created %d likes\n", len(likesData))
	return nil
}

// SeedMusicalShows creates curated musical reference data for prompt generation
func (s *Seeder) SeedMusicalShows() error {
	fmt.Println("  🎭 Seeding musical shows...")

	str := func(v string) *string { return &v }
	num := func(v int) *int { return &v }

	showsData := []prompts.MusicalShow{
		{
			Title:              "ThePhantomoftheOpera",
			Summary:            str("A disfigured musical genius haunts the Paris Opera House and falls into obsession with a young soprano."),
			Background:         str("The catacombs and gilded stage of the Paris Opera House in the late 19th century."),
			MainCharacterCount: num(3),
			Characters: []prompts.MusicalCharacter{
				{Name: "The Phantom", Age: str("40s"), Gender: str("male"), Occupation: str("composer"), Description: str("masked figure in a black cloak, commanding and wounded")},
				{Name: "Christine", Age: str("20s"), Gender: str("female"), Occupation: str("soprano"), Description: str("young singer torn between fear and fascination")},
				{Name: "Raoul", Age: str("20s"), Gender: str("male"), Occupation: str("viscount"), Description: str("devoted childhood friend turned protector")},
			},
		},
		{
			Title:              "HedwigandtheAngryInch",
			Summary:            str("A genderqueer rock singer from East Berlin tells her life story through a searing concert."),
			Background:         str("A rundown concert stage lit by a single follow spot."),
			MainCharacterCount: num(2),
			Characters: []prompts.MusicalCharacter{
				{Name: "Hedwig", Age: str("30s"), Gender: str("female"), Occupation: str("rock singer"), Description: str("glam wig, torn fishnets, defiant and fragile")},
				{Name: "Yitzhak", Age: str("30s"), Gender: str("male"), Occupation: str("backup singer"), Description: str("brooding presence at the edge of the stage")},
			},
		},
	}

	for i := range showsData {
		if err := s.db.PostgreSQL.Create(&showsData[i]).Error; err != nil {
			return fmt.Errorf("failed to create musical show %s: %w", showsData[i].Title, err)
		}
		fmt.Printf("    ✅ Created musical show: %s\n", showsData[i].Title)
	}

	return nil
}

// SeedBandProfiles creates curated band reference data for prompt generation
func (s *Seeder) SeedBandProfiles() error {
	fmt.Println("  🎸 Seeding band profiles...")

	str := func(v string) *string { return &v }

	bandsData := []prompts.BandProfile{
		{
			BandName:        "Jannabi",
			BandNameMeaning: str("monkey born in the year of the monkey, playful nostalgia"),
			PosterColor:     str("warm sepia and faded orange"),
			BandSymbol:      str("retro cassette tape"),
		},
		{
			BandName:        "Silica Gel",
			BandNameMeaning: str("a desiccant that keeps things fresh, psychedelic experimentation"),
			PosterColor:     str("acid green and chrome"),
			BandSymbol:      str("refracting prism"),
		},
	}

	for i := range bandsData {
		if err := s.db.PostgreSQL.Create(&bandsData[i]).Error; err != nil {
			return fmt.Errorf("failed to create band profile %s: %w", bandsData[i].BandName, err)
		}
		fmt.Printf("    ✅ Created band profile: %s\n", bandsData[i].BandName)
	}

	return nil
}
