package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/imocasa/imocasa-backend/internal/app/model"
	"github.com/imocasa/imocasa-backend/internal/app/repository"
	"github.com/imocasa/imocasa-backend/internal/db"
)

func setupCategoryServiceTest(t *testing.T) (CategoryService, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	return NewCategoryService(repository.NewCategoryRepository(testDB)), testDB
}

func TestCategoryService_FieldRules(t *testing.T) {
	svc, testDB := setupCategoryServiceTest(t)

	apartmentsGroup := model.GroupApartments
	apartments := &model.Category{Name: "Apartamente de vânzare", Group: &apartmentsGroup}
	require.NoError(t, testDB.Create(apartments).Error)

	landGroup := model.GroupLand
	land := &model.Category{Name: "Terenuri", Group: &landGroup}
	require.NoError(t, testDB.Create(land).Error)

	rules, err := svc.FieldRules(apartments.ID)
	require.NoError(t, err)
	assert.Contains(t, rules.Permitted, model.FieldFloor)
	assert.Contains(t, rules.Required, model.FieldRooms)
	assert.NotContains(t, rules.Permitted, model.FieldZoning)

	// enumerated permitted fields carry their label tables
	assert.Equal(t, "Parter", rules.Choices[model.FieldFloor][1])
	assert.Equal(t, "Decomandat", rules.Choices[model.FieldPartitioning][0])
	assert.Equal(t, "2 camere", rules.Choices[model.FieldRooms][2])
	assert.Equal(t, "Cărămidă", rules.Choices[model.FieldStructure][0])
	assert.Equal(t, "A (Foarte bună)", rules.Choices[model.FieldEnergyClass][1])
	assert.Contains(t, rules.Choices, model.FieldBedrooms)
	assert.Contains(t, rules.Choices, model.FieldBathrooms)
	assert.Contains(t, rules.Choices, model.FieldBalconies)

	// free-valued fields publish no table
	assert.NotContains(t, rules.Choices, model.FieldUsableSurface)
	assert.NotContains(t, rules.Choices, model.FieldYear)

	landRules, err := svc.FieldRules(land.ID)
	require.NoError(t, err)
	assert.Equal(t, "Intravilan", landRules.Choices[model.FieldZoning][0])
	assert.NotContains(t, landRules.Choices, model.FieldFloor)
}

func TestCategoryService_FieldRulesWithoutGroup(t *testing.T) {
	svc, testDB := setupCategoryServiceTest(t)

	structural := &model.Category{Name: "Imobiliare"}
	require.NoError(t, testDB.Create(structural).Error)

	rules, err := svc.FieldRules(structural.ID)
	require.NoError(t, err)
	assert.Nil(t, rules.Group)
	assert.Empty(t, rules.Permitted)
	assert.Empty(t, rules.Choices)
}

func TestCategoryService_FieldRulesUnknownCategory(t *testing.T) {
	svc, _ := setupCategoryServiceTest(t)

	_, err := svc.FieldRules(9999)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}
