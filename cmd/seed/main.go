package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/imocasa/imocasa-backend/config"
	"github.com/imocasa/imocasa-backend/internal/app/model"
	"github.com/imocasa/imocasa-backend/internal/app/repository"
	"github.com/imocasa/imocasa-backend/internal/db"
)

// Seeds the geography tree, category tree and tag list from an XLSX
// workbook with three sheets:
//
//	Geografie: Județ | Oraș | Cartier (Cartier may be empty)
//	Categorii: Părinte | Nume | Grup (Grup 0-5, empty for structural nodes)
//	Etichete:  Nume
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/seed/main.go <xlsx_file_path>")
	}
	filePath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	f, err := excelize.OpenFile(filePath)
	if err != nil {
		log.Fatal("Failed to open XLSX file:", err)
	}
	defer f.Close()

	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	geoRepo := repository.NewGeoRepository(db.GetDB())
	categoryRepo := repository.NewCategoryRepository(db.GetDB())
	tagRepo := repository.NewTagRepository(db.GetDB())

	if err := seedGeography(f, geoRepo); err != nil {
		log.Fatal("Failed to seed geography:", err)
	}
	if err := seedCategories(f, categoryRepo); err != nil {
		log.Fatal("Failed to seed categories:", err)
	}
	if err := seedTags(f, tagRepo); err != nil {
		log.Fatal("Failed to seed tags:", err)
	}

	fmt.Println("Import completed successfully!")
}

func seedGeography(f *excelize.File, geoRepo repository.GeoRepository) error {
	rows, err := f.GetRows("Geografie")
	if err != nil {
		return fmt.Errorf("failed to read Geografie sheet: %w", err)
	}

	counties := 0
	cities := 0
	neighborhoods := 0

	for i, row := range rows {
		if i == 0 || len(row) < 2 {
			continue
		}

		countyName := strings.TrimSpace(row[0])
		cityName := strings.TrimSpace(row[1])
		if countyName == "" || cityName == "" {
			continue
		}

		county, err := geoRepo.FindCountyByName(countyName)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			county = &model.County{Name: countyName}
			if err := geoRepo.CreateCounty(county); err != nil {
				return err
			}
			counties++
		} else if err != nil {
			return err
		}

		city, err := geoRepo.FindCityByName(county.ID, cityName)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			city = &model.City{Name: cityName, CountyID: county.ID}
			if err := geoRepo.CreateCity(city); err != nil {
				return err
			}
			cities++
		} else if err != nil {
			return err
		}

		if len(row) >= 3 {
			hoodName := strings.TrimSpace(row[2])
			if hoodName != "" {
				if err := geoRepo.CreateNeighborhood(&model.Neighborhood{
					Name:   hoodName,
					CityID: city.ID,
				}); err != nil {
					return err
				}
				neighborhoods++
			}
		}
	}

	fmt.Printf("Geography seeded: %d counties, %d cities, %d neighborhoods\n",
		counties, cities, neighborhoods)
	return nil
}

func seedCategories(f *excelize.File, categoryRepo repository.CategoryRepository) error {
	rows, err := f.GetRows("Categorii")
	if err != nil {
		return fmt.Errorf("failed to read Categorii sheet: %w", err)
	}

	created := 0
	for i, row := range rows {
		if i == 0 || len(row) < 2 {
			continue
		}

		parentName := strings.TrimSpace(row[0])
		name := strings.TrimSpace(row[1])
		if name == "" {
			continue
		}

		if _, err := categoryRepo.FindByName(name); err == nil {
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		category := &model.Category{Name: name, IsActive: true}

		if parentName != "" {
			parent, err := categoryRepo.FindByName(parentName)
			if err != nil {
				return fmt.Errorf("parent category %q not found for %q", parentName, name)
			}
			category.ParentID = &parent.ID
		}

		if len(row) >= 3 {
			groupStr := strings.TrimSpace(row[2])
			if groupStr != "" {
				groupValue, err := strconv.Atoi(groupStr)
				if err != nil || groupValue < 0 || groupValue > 5 {
					return fmt.Errorf("invalid group %q for category %q", groupStr, name)
				}
				group := model.CategoryGroup(groupValue)
				category.Group = &group
			}
		}

		if err := categoryRepo.Create(category); err != nil {
			return err
		}
		created++
	}

	fmt.Printf("Categories seeded: %d\n", created)
	return nil
}

func seedTags(f *excelize.File, tagRepo repository.TagRepository) error {
	rows, err := f.GetRows("Etichete")
	if err != nil {
		return fmt.Errorf("failed to read Etichete sheet: %w", err)
	}

	created := 0
	for i, row := range rows {
		if i == 0 || len(row) < 1 {
			continue
		}

		name := strings.TrimSpace(row[0])
		if name == "" {
			continue
		}

		if _, err := tagRepo.FindByName(name); err == nil {
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tagRepo.Create(&model.Tag{Name: name, Status: model.TagActive}); err != nil {
			return err
		}
		created++
	}

	fmt.Printf("Tags seeded: %d\n", created)
	return nil
}
