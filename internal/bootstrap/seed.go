package bootstrap

import (
	"log"

	"anoa.com/arcadehub/internal/entity"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.GameRecord{},
		&entity.ReferencePlayer{},
		&entity.Notification{},
	)
}

// SeedReferencePlayers fills the reference population the live player is
// ranked against. TotalScore follows the snapshot's scoring model:
// 100 points per win, 25 per loss.
func SeedReferencePlayers(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.ReferencePlayer{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("Reference players already seeded, skipping")
		return nil
	}

	seeds := []struct {
		username    string
		totalCoins  int
		level       int
		gamesPlayed int
		gamesWon    int
	}{
		{"CryptoKing", 15420, 12, 89, 67},
		{"GameMaster", 12890, 10, 76, 58},
		{"ProPlayer", 11250, 9, 65, 48},
		{"CoinHunter", 9800, 8, 58, 41},
		{"SkillMaster", 8750, 7, 52, 36},
		{"QuickShot", 7600, 6, 45, 31},
		{"NumberWiz", 6800, 6, 41, 27},
		{"FastClick", 5900, 5, 38, 24},
		{"GameNinja", 5200, 5, 34, 21},
		{"CoinSeeker", 4500, 4, 31, 18},
	}

	players := make([]entity.ReferencePlayer, 0, len(seeds))
	for _, seed := range seeds {
		lost := seed.gamesPlayed - seed.gamesWon
		players = append(players, entity.ReferencePlayer{
			Username:    seed.username,
			TotalCoins:  seed.totalCoins,
			Level:       seed.level,
			GamesPlayed: seed.gamesPlayed,
			GamesWon:    seed.gamesWon,
			TotalScore:  seed.gamesWon*100 + lost*25,
		})
	}

	if err := db.Create(&players).Error; err != nil {
		return err
	}

	log.Printf("Seeded %d reference players", len(players))
	return nil
}
