package configs

import (
	"log"

	"github.com/7cknmad/Bulacan-Mapping-Flavors-sub000/entity"
	"golang.org/x/crypto/bcrypt"
)

// SeedCurator creates the first curator account from env.
func SeedCurator() error {
	db := DB()
	email := getEnv("CURATOR_EMAIL", "")
	pass := getEnv("CURATOR_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding curator: missing CURATOR_EMAIL/CURATOR_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.Curator{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("curator already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	curator := entity.Curator{
		Email:    email,
		Password: string(hash),
		Name:     "Seed Curator",
	}
	return db.Create(&curator).Error
}

// SeedMunicipalities fills in Bulacan's municipalities once.
func SeedMunicipalities() error {
	db := DB()

	towns := []entity.Municipality{
		{Name: "Angat", Slug: "angat"},
		{Name: "Balagtas", Slug: "balagtas"},
		{Name: "Baliwag", Slug: "baliwag"},
		{Name: "Bocaue", Slug: "bocaue"},
		{Name: "Bulakan", Slug: "bulakan"},
		{Name: "Bustos", Slug: "bustos"},
		{Name: "Calumpit", Slug: "calumpit"},
		{Name: "Doña Remedios Trinidad", Slug: "dona-remedios-trinidad"},
		{Name: "Guiguinto", Slug: "guiguinto"},
		{Name: "Hagonoy", Slug: "hagonoy"},
		{Name: "Malolos", Slug: "malolos"},
		{Name: "Marilao", Slug: "marilao"},
		{Name: "Meycauayan", Slug: "meycauayan"},
		{Name: "Norzagaray", Slug: "norzagaray"},
		{Name: "Obando", Slug: "obando"},
		{Name: "Pandi", Slug: "pandi"},
		{Name: "Paombong", Slug: "paombong"},
		{Name: "Plaridel", Slug: "plaridel"},
		{Name: "Pulilan", Slug: "pulilan"},
		{Name: "San Ildefonso", Slug: "san-ildefonso"},
		{Name: "San Jose del Monte", Slug: "san-jose-del-monte"},
		{Name: "San Miguel", Slug: "san-miguel"},
		{Name: "San Rafael", Slug: "san-rafael"},
		{Name: "Santa Maria", Slug: "santa-maria"},
	}

	for _, t := range towns {
		if err := db.FirstOrCreate(&entity.Municipality{}, entity.Municipality{Name: t.Name, Slug: t.Slug}).Error; err != nil {
			return err
		}
	}

	log.Println("municipalities seeded")
	return nil
}
