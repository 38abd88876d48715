package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Kagankakao/tv-plus-social-watch/internal/domain"
	"github.com/Kagankakao/tv-plus-social-watch/internal/persistence/db"
)

var seedUsers = []domain.User{
	{ID: "user_ayse", Name: "Ayşe", Avatar: "🦊"},
	{ID: "user_mehmet", Name: "Mehmet", Avatar: "🐻"},
	{ID: "user_zeynep", Name: "Zeynep", Avatar: "🐱"},
	{ID: "user_can", Name: "Can", Avatar: "🦁"},
}

var seedCatalog = []domain.CatalogItem{
	{ContentID: "mov_001", Title: "Gece Yarısı Ekspresi", Type: "movie", DurationMin: 121, Tags: "drama,klasik"},
	{ContentID: "mov_002", Title: "Kış Uykusu", Type: "movie", DurationMin: 196, Tags: "drama,sanat"},
	{ContentID: "srs_001", Title: "Yabancı Damat", Type: "series", DurationMin: 90, Tags: "komedi,aile"},
	{ContentID: "srs_002", Title: "Behzat Ç.", Type: "series", DurationMin: 80, Tags: "polisiye,drama"},
	{ContentID: "doc_001", Title: "Anadolu'nun Kartalları", Type: "documentary", DurationMin: 95, Tags: "belgesel,tarih"},
}

const seedRoomID = "room_demo"

var seedCandidates = []string{"mov_001", "srs_002", "doc_001"}

// Seed loads the demo fixtures used by local development and smoke tests.
// Every insert is an upsert, so re-running it is harmless.
func Seed(ctx context.Context, conn db.DBTX) error {
	users := NewUserRepository(conn)
	catalog := NewCatalogRepository(conn)
	rooms := NewRoomRepository(conn)
	votes := NewVoteRepository(conn)

	for i := range seedUsers {
		if _, err := users.GetByID(ctx, seedUsers[i].ID); err == nil {
			continue
		}
		if err := users.Create(ctx, &seedUsers[i]); err != nil {
			return fmt.Errorf("failed to seed user %s: %w", seedUsers[i].ID, err)
		}
	}

	for i := range seedCatalog {
		if err := catalog.Upsert(ctx, &seedCatalog[i]); err != nil {
			return fmt.Errorf("failed to seed catalog item %s: %w", seedCatalog[i].ContentID, err)
		}
	}

	room := domain.Room{
		RoomID:  seedRoomID,
		Title:   "Cuma Film Gecesi",
		StartAt: time.Now().Add(2 * time.Hour).UTC().Truncate(time.Minute),
		HostID:  seedUsers[0].ID,
	}
	if err := rooms.Upsert(ctx, &room); err != nil {
		return fmt.Errorf("failed to seed room: %w", err)
	}

	if err := votes.AddCandidates(ctx, seedRoomID, seedCandidates); err != nil {
		return fmt.Errorf("failed to seed candidates: %w", err)
	}

	return nil
}
