package database

import (
	"log"

	"storecare-backend/internal/model"
	"storecare-backend/internal/timeutil"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SeedAll loads a small development dataset: one company with a day store and
// a night store, a staff account assigned to both, and today's checklists.
func SeedAll(db *gorm.DB) {
	company := model.Company{Name: "Hangang Retail Group", ReportEmail: "ops@hangang.example"}
	db.FirstOrCreate(&company, model.Company{Name: company.Name})

	dayStore := model.Store{
		CompanyID:      company.ID,
		Name:           "Gangnam Plaza",
		IsNightShift:   false,
		WorkStartHour:  9,
		WorkEndHour:    18,
		ManagementDays: "Mon,Wed,Fri",
		ServiceActive:  true,
	}
	db.FirstOrCreate(&dayStore, model.Store{Name: dayStore.Name})

	nightStore := model.Store{
		CompanyID:      company.ID,
		Name:           "Itaewon Lounge",
		IsNightShift:   true,
		WorkStartHour:  22,
		WorkEndHour:    6,
		ManagementDays: "",
		ServiceActive:  true,
	}
	db.FirstOrCreate(&nightStore, model.Store{Name: nightStore.Name})

	hashed, _ := bcrypt.GenerateFromPassword([]byte("staff123"), bcrypt.DefaultCost)
	staff := model.User{
		Name:      "Kim Jiwoo",
		Email:     "staff@storecare.local",
		Password:  string(hashed),
		Role:      model.RoleStaff,
		CompanyID: &company.ID,
	}
	db.FirstOrCreate(&staff, model.User{Email: staff.Email})

	ownerHashed, _ := bcrypt.GenerateFromPassword([]byte("owner123"), bcrypt.DefaultCost)
	owner := model.User{
		Name:      "Park Dohyun",
		Email:     "owner@storecare.local",
		Password:  string(ownerHashed),
		Role:      model.RoleBusinessOwner,
		CompanyID: &company.ID,
	}
	db.FirstOrCreate(&owner, model.User{Email: owner.Email})

	for _, storeID := range []uint{dayStore.ID, nightStore.ID} {
		assign := model.StoreAssign{UserID: staff.ID, StoreID: storeID}
		db.FirstOrCreate(&assign, model.StoreAssign{UserID: staff.ID, StoreID: storeID})
	}

	today := timeutil.Today(timeutil.SystemClock{})
	items := model.ChecklistItems{
		{Area: "Entrance", Kind: model.ItemKindCheck},
		{Area: "Kitchen", Kind: model.ItemKindBeforeAfterPhoto},
		{Area: "Restroom", Kind: model.ItemKindBeforePhoto},
		{Area: "Storage", Kind: model.ItemKindAfterPhoto},
	}
	for _, storeID := range []uint{dayStore.ID, nightStore.ID} {
		var existing model.Checklist
		err := db.Where("store_id = ? AND work_date = ?", storeID, today).First(&existing).Error
		if err == nil {
			continue
		}
		cl := model.Checklist{
			StoreID:        storeID,
			WorkDate:       today,
			AssignedUserID: &staff.ID,
			Items:          datatypes.NewJSONType(items),
			ReviewStatus:   model.ReviewPending,
		}
		if err := db.Create(&cl).Error; err != nil {
			log.Printf("seeding checklist for store %d failed: %v", storeID, err)
		}
	}

	log.Println("Seed data ready: staff@storecare.local / staff123, owner@storecare.local / owner123")
}
